package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
)

// OrderService backs the admin order pages. Orders are only created by checkout.
type OrderService struct {
	orders port.OrderRepository
	logger *slog.Logger
}

func NewOrders(orders port.OrderRepository, logger *slog.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		logger: logger.With("component", "orders"),
	}
}

// List returns orders newest first; status "all" or empty lists every order.
func (s *OrderService) List(ctx context.Context, status string) ([]domain.Order, error) {
	var filter port.OrderFilter

	if status != "" && status != "all" {
		parsed, err := domain.ParseOrderStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = parsed
	}

	orders, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		return nil, classify(fmt.Errorf("orders.ListOrders: %w", err))
	}

	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, classify(fmt.Errorf("orders.GetOrder: %w", err))
	}

	return order, nil
}

// UpdateStatus applies an admin status change; notes are left as is when nil.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string, notes *string) (domain.Order, error) {
	parsed, err := domain.ParseOrderStatus(status)
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.orders.UpdateOrderStatus(ctx, id, parsed, notes)
	if err != nil {
		return domain.Order{}, classify(fmt.Errorf("orders.UpdateOrderStatus: %w", err))
	}

	s.logger.InfoContext(ctx, "order status updated", "order_number", order.Number, "status", order.Status)

	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.orders.DeleteOrder(ctx, id)
	if err != nil {
		return classify(fmt.Errorf("orders.DeleteOrder: %w", err))
	}
	if !deleted {
		return domain.ErrNotFound
	}

	return nil
}
