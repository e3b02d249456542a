package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/gallery-shop/internal/db"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
	"github.com/shopspring/decimal"
)

// maxPrice is the first amount that does not fit products.price_amount NUMERIC(12,2).
var maxPrice = decimal.New(1, 10)

type productRepository struct {
	q *db.Queries
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q: db.New(pool),
	}
}

func (r *productRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := validateProduct(product); err != nil {
		return domain.Product{}, err
	}

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if product.Slug == "" {
		product.Slug = domain.Slugify(product.Name)
	}
	if product.Slug == "" {
		return domain.Product{}, &domain.ValidationError{Field: "slug", Reason: "cannot be derived from name"}
	}

	row, err := r.q.CreateProduct(ctx, db.CreateProductParams{
		ID:            product.ID,
		PhotoID:       product.PhotoID,
		Name:          product.Name,
		Slug:          product.Slug,
		Description:   product.Description,
		Type:          product.Type,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		Stock:         int32(product.Stock),
		IsAvailable:   product.Available,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Product{}, &domain.ValidationError{Field: "slug", Reason: fmt.Sprintf("%q is already taken", product.Slug)}
		}
		return domain.Product{}, fmt.Errorf("q.CreateProduct: %w", err)
	}

	return mapProductToDomain(row)
}

func (r *productRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, notFoundOr(err, "q.GetProduct")
	}

	return mapProductToDomain(row)
}

func (r *productRepository) GetProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	if slug == "" {
		return domain.Product{}, fmt.Errorf("slug is empty")
	}

	row, err := r.q.GetProductBySlug(ctx, slug)
	if err != nil {
		return domain.Product{}, notFoundOr(err, "q.GetProductBySlug")
	}

	return mapProductToDomain(row)
}

func (r *productRepository) ListProducts(ctx context.Context, filter port.ProductFilter) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx, db.ListProductsParams{
		AvailableOnly: filter.AvailableOnly,
		Type:          filter.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := mapProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := validateProduct(product); err != nil {
		return domain.Product{}, err
	}
	if product.Slug == "" {
		product.Slug = domain.Slugify(product.Name)
	}
	if product.Slug == "" {
		return domain.Product{}, &domain.ValidationError{Field: "slug", Reason: "cannot be derived from name"}
	}

	row, err := r.q.UpdateProduct(ctx, db.UpdateProductParams{
		ID:            product.ID,
		PhotoID:       product.PhotoID,
		Name:          product.Name,
		Slug:          product.Slug,
		Description:   product.Description,
		Type:          product.Type,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		Stock:         int32(product.Stock),
		IsAvailable:   product.Available,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Product{}, &domain.ValidationError{Field: "slug", Reason: fmt.Sprintf("%q is already taken", product.Slug)}
		}
		return domain.Product{}, notFoundOr(err, "q.UpdateProduct")
	}

	return mapProductToDomain(row)
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	rowsAffected, err := r.q.DeleteProduct(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.DeleteProduct: %w", err)
	}

	return rowsAffected > 0, nil
}

func validateProduct(product domain.Product) error {
	switch {
	case product.Name == "":
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	case product.Stock < 0:
		return &domain.ValidationError{Field: "stock", Reason: "must not be negative"}
	case product.Stock > math.MaxInt32:
		return &domain.ValidationError{Field: "stock", Reason: fmt.Sprintf("must be at most %d", math.MaxInt32)}
	case product.Price.Amount.IsNegative():
		return &domain.ValidationError{Field: "price", Reason: "must not be negative"}
	case product.Price.Amount.GreaterThanOrEqual(maxPrice):
		return &domain.ValidationError{Field: "price", Reason: "must be less than " + maxPrice.String()}
	case !product.Price.Amount.Equal(product.Price.Amount.Round(domain.CurrencyPlaces)):
		return &domain.ValidationError{Field: "price", Reason: "must have at most 2 decimal places"}
	}
	return nil
}

func mapProductToDomain(row db.Product) (domain.Product, error) {
	price, err := toMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{
		ID:          row.ID,
		PhotoID:     row.PhotoID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		Type:        row.Type,
		Price:       price,
		Stock:       int(row.Stock),
		Available:   row.IsAvailable,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
