package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/gallery-shop/internal/domain"
)

type OrderFilter struct {
	Status domain.OrderStatus
}

type OrderRepository interface {
	// PlaceOrder converts the session's cart into a pending order in one transaction:
	// stock is decremented, the order and its items are written and the cart is cleared.
	// Nothing is persisted when it returns an error.
	PlaceOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error)

	GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (domain.Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, notes *string) (domain.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) (bool, error)
}
