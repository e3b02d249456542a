package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/gallery-shop/internal/db"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, sessionID string) (domain.Cart, error) {
	if sessionID == "" {
		return domain.Cart{}, fmt.Errorf("sessionID is empty")
	}

	dbCartItems, err := r.q.GetCart(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	items, err := mapGetCartRowsToDomain(dbCartItems)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		SessionID: sessionID,
		Items:     items,
	}, nil
}

func (r *cartRepository) GetItem(ctx context.Context, sessionID string, productID uuid.UUID) (domain.CartItem, error) {
	if sessionID == "" {
		return domain.CartItem{}, fmt.Errorf("sessionID is empty")
	}

	row, err := r.q.GetCartItem(ctx, db.GetCartItemParams{
		SessionID: sessionID,
		ProductID: productID,
	})
	if err != nil {
		return domain.CartItem{}, notFoundOr(err, "q.GetCartItem")
	}

	item, err := mapGetCartRowToDomain(db.GetCartRow(row))
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("mapGetCartRowToDomain: %w", err)
	}

	return item, nil
}

// AddItem inserts a cart line or, when the product is already in the cart, adds to its
// quantity keeping the originally captured price.
func (r *cartRepository) AddItem(ctx context.Context, sessionID string, item domain.CartItem) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is empty")
	}
	if item.Quantity < 1 {
		return fmt.Errorf("quantity must be positive")
	}

	err := r.q.AddItem(ctx, db.AddItemParams{
		SessionID:     sessionID,
		ProductID:     item.ProductID,
		Quantity:      int32(item.Quantity),
		PriceAmount:   item.Price.Amount,
		PriceCurrency: item.Price.Currency.String(),
	})
	if err != nil {
		return fmt.Errorf("q.AddItem: %w", err)
	}

	return nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (bool, error) {
	if sessionID == "" {
		return false, fmt.Errorf("sessionID is empty")
	}
	if quantity < 1 {
		return false, fmt.Errorf("quantity must be positive")
	}

	rowsAffected, err := r.q.UpdateItemQuantity(ctx, db.UpdateItemQuantityParams{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  int32(quantity),
	})
	if err != nil {
		return false, fmt.Errorf("q.UpdateItemQuantity: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, sessionID string, productID uuid.UUID) (bool, error) {
	if sessionID == "" {
		return false, fmt.Errorf("sessionID is empty")
	}

	rowsAffected, err := r.q.DeleteItem(ctx, db.DeleteItemParams{
		SessionID: sessionID,
		ProductID: productID,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteItem: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *cartRepository) ClearCart(ctx context.Context, sessionID string) (int64, error) {
	if sessionID == "" {
		return 0, fmt.Errorf("sessionID is empty")
	}

	rowsAffected, err := r.q.ClearCart(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("q.ClearCart: %w", err)
	}

	return rowsAffected, nil
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartItem, error) {
	price, err := toMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, err
	}

	return domain.CartItem{
		ProductID:   row.ProductID,
		Quantity:    int(row.Quantity),
		Price:       price,
		ProductName: row.ProductName,
		Stock:       int(row.Stock),
		Available:   row.IsAvailable,
		CreatedAt:   row.CreatedAt,
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
