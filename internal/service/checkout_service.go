package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
)

type CheckoutService struct {
	carts    port.CartRepository
	orders   port.OrderRepository
	shipping domain.ShippingPolicy
	events   port.OrderEventPublisher
	logger   *slog.Logger
}

func NewCheckout(
	carts port.CartRepository,
	orders port.OrderRepository,
	shipping domain.ShippingPolicy,
	events port.OrderEventPublisher,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		orders:   orders,
		shipping: shipping,
		events:   events,
		logger:   logger.With("component", "checkout"),
	}
}

type CheckoutPreview struct {
	Cart   domain.Cart
	Totals domain.Totals
}

// Preview returns the cart with its totals as they would be charged right now.
func (s *CheckoutService) Preview(ctx context.Context, sessionID string) (CheckoutPreview, error) {
	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return CheckoutPreview{}, classify(fmt.Errorf("carts.GetCart: %w", err))
	}
	if cart.IsEmpty() {
		return CheckoutPreview{}, domain.ErrEmptyCart
	}

	shippingCost, err := s.shipping.ShippingCost(ctx, cart.Items)
	if err != nil {
		return CheckoutPreview{}, classify(fmt.Errorf("shipping.ShippingCost: %w", err))
	}

	totals, err := domain.CalculateTotals(cart.Items, shippingCost)
	if err != nil {
		return CheckoutPreview{}, classify(fmt.Errorf("domain.CalculateTotals: %w", err))
	}

	return CheckoutPreview{Cart: cart, Totals: totals}, nil
}

// PlaceOrder turns the session's cart into a pending order. On any error the cart,
// the stock and the order tables are left untouched.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, form CheckoutForm) (domain.Order, error) {
	if err := form.Validate(); err != nil {
		return domain.Order{}, err
	}
	if sessionID == "" {
		return domain.Order{}, &domain.ValidationError{Field: "session", Reason: "is missing"}
	}

	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return domain.Order{}, classify(fmt.Errorf("carts.GetCart: %w", err))
	}
	if cart.IsEmpty() {
		return domain.Order{}, domain.ErrEmptyCart
	}

	shippingCost, err := s.shipping.ShippingCost(ctx, cart.Items)
	if err != nil {
		return domain.Order{}, classify(fmt.Errorf("shipping.ShippingCost: %w", err))
	}

	order, err := s.orders.PlaceOrder(ctx, domain.OrderDraft{
		SessionID:    sessionID,
		Customer:     form.customer(),
		Notes:        form.Notes,
		ShippingCost: shippingCost,
	})
	if err != nil {
		err = classify(fmt.Errorf("orders.PlaceOrder: %w", err))

		var stockErr *domain.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			s.logger.InfoContext(ctx, "checkout rejected: insufficient stock",
				"product_id", stockErr.ProductID, "requested", stockErr.Requested, "available", stockErr.Available)
		case errors.Is(err, domain.ErrPersistence):
			s.logger.ErrorContext(ctx, "checkout failed", "error", err)
		}

		return domain.Order{}, err
	}

	s.logger.InfoContext(ctx, "order placed",
		"order_number", order.Number, "items", len(order.Items), "total", order.Total.String())

	if err := s.events.PublishOrderPlaced(ctx, order); err != nil {
		s.logger.WarnContext(ctx, "publish order placed", "order_number", order.Number, "error", err)
	}

	return order, nil
}

// Confirmation looks an order up by its number for the success page.
func (s *CheckoutService) Confirmation(ctx context.Context, number string) (domain.Order, error) {
	order, err := s.orders.GetOrderByNumber(ctx, number)
	if err != nil {
		return domain.Order{}, classify(fmt.Errorf("orders.GetOrderByNumber: %w", err))
	}

	return order, nil
}
