package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
	"golang.org/x/text/currency"
)

type CatalogService struct {
	products port.ProductRepository
	currency currency.Unit
}

// NewCatalog returns the catalog of a shop that sells in unit; products priced in any
// other currency are rejected.
func NewCatalog(products port.ProductRepository, unit currency.Unit) *CatalogService {
	return &CatalogService{
		products: products,
		currency: unit,
	}
}

// ListAvailable lists the products shown in the shop; productType "all" or empty lists
// every type.
func (s *CatalogService) ListAvailable(ctx context.Context, productType string) ([]domain.Product, error) {
	if productType == "all" {
		productType = ""
	}

	products, err := s.products.ListProducts(ctx, port.ProductFilter{
		AvailableOnly: true,
		Type:          productType,
	})
	if err != nil {
		return nil, classify(fmt.Errorf("products.ListProducts: %w", err))
	}

	return products, nil
}

// GetAvailable returns the shop product with slug; unavailable products are not found.
func (s *CatalogService) GetAvailable(ctx context.Context, slug string) (domain.Product, error) {
	product, err := s.products.GetProductBySlug(ctx, slug)
	if err != nil {
		return domain.Product{}, classify(fmt.Errorf("products.GetProductBySlug: %w", err))
	}
	if !product.Available {
		return domain.Product{}, domain.ErrNotFound
	}

	return product, nil
}

func (s *CatalogService) List(ctx context.Context, filter port.ProductFilter) ([]domain.Product, error) {
	products, err := s.products.ListProducts(ctx, filter)
	if err != nil {
		return nil, classify(fmt.Errorf("products.ListProducts: %w", err))
	}

	return products, nil
}

func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	product, err := s.products.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, classify(fmt.Errorf("products.GetProduct: %w", err))
	}

	return product, nil
}

func (s *CatalogService) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := s.checkCurrency(product); err != nil {
		return domain.Product{}, err
	}

	created, err := s.products.CreateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, classify(fmt.Errorf("products.CreateProduct: %w", err))
	}

	return created, nil
}

func (s *CatalogService) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := s.checkCurrency(product); err != nil {
		return domain.Product{}, err
	}

	updated, err := s.products.UpdateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, classify(fmt.Errorf("products.UpdateProduct: %w", err))
	}

	return updated, nil
}

func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.products.DeleteProduct(ctx, id)
	if err != nil {
		return classify(fmt.Errorf("products.DeleteProduct: %w", err))
	}
	if !deleted {
		return domain.ErrNotFound
	}

	return nil
}

func (s *CatalogService) checkCurrency(product domain.Product) error {
	if product.Price.Currency != s.currency {
		return &domain.ValidationError{
			Field:  "currency",
			Reason: fmt.Sprintf("must be %s, got %s", s.currency, product.Price.Currency),
		}
	}
	return nil
}
