package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
	"golang.org/x/text/currency"
)

type CartService struct {
	carts    port.CartRepository
	products port.ProductRepository
	currency currency.Unit
}

func NewCart(carts port.CartRepository, products port.ProductRepository, unit currency.Unit) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		currency: unit,
	}
}

type CartView struct {
	Cart     domain.Cart
	Subtotal domain.Money
}

func (s *CartService) View(ctx context.Context, sessionID string) (CartView, error) {
	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return CartView{}, classify(fmt.Errorf("carts.GetCart: %w", err))
	}

	totals, err := domain.CalculateTotals(cart.Items, domain.ZeroMoney(s.currency))
	if err != nil {
		return CartView{}, classify(fmt.Errorf("domain.CalculateTotals: %w", err))
	}

	return CartView{Cart: cart, Subtotal: totals.Subtotal}, nil
}

// Add puts quantity of the product into the cart at its current price. When the product
// is already in the cart the quantities are merged and the merged quantity must be in stock.
func (s *CartService) Add(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return &domain.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return classify(fmt.Errorf("products.GetProduct: %w", err))
	}
	if !product.Available {
		return fmt.Errorf("%w: %s", domain.ErrUnavailable, product.Name)
	}
	if product.Price.Currency != s.currency {
		return fmt.Errorf("%w: %s is priced in %s, the shop sells in %s",
			domain.ErrCurrencyMismatch, product.Name, product.Price.Currency, s.currency)
	}

	wanted := quantity
	existing, err := s.carts.GetItem(ctx, sessionID, productID)
	switch {
	case err == nil:
		wanted += existing.Quantity
	case !errors.Is(err, domain.ErrNotFound):
		return classify(fmt.Errorf("carts.GetItem: %w", err))
	}

	if product.Stock < wanted {
		return &domain.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Requested:   wanted,
			Available:   product.Stock,
		}
	}

	err = s.carts.AddItem(ctx, sessionID, domain.CartItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Price:     product.Price,
	})
	if err != nil {
		return classify(fmt.Errorf("carts.AddItem: %w", err))
	}

	return nil
}

// UpdateQuantity sets the quantity of a line already in the session's cart.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return &domain.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	item, err := s.carts.GetItem(ctx, sessionID, productID)
	if err != nil {
		return classify(fmt.Errorf("carts.GetItem: %w", err))
	}

	if item.Stock < quantity {
		return &domain.InsufficientStockError{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Requested:   quantity,
			Available:   item.Stock,
		}
	}

	updated, err := s.carts.UpdateQuantity(ctx, sessionID, productID, quantity)
	if err != nil {
		return classify(fmt.Errorf("carts.UpdateQuantity: %w", err))
	}
	if !updated {
		return domain.ErrNotFound
	}

	return nil
}

func (s *CartService) Remove(ctx context.Context, sessionID string, productID uuid.UUID) error {
	deleted, err := s.carts.DeleteItem(ctx, sessionID, productID)
	if err != nil {
		return classify(fmt.Errorf("carts.DeleteItem: %w", err))
	}
	if !deleted {
		return domain.ErrNotFound
	}

	return nil
}
