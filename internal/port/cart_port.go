package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/gallery-shop/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, sessionID string) (domain.Cart, error)
	GetItem(ctx context.Context, sessionID string, productID uuid.UUID) (domain.CartItem, error)
	AddItem(ctx context.Context, sessionID string, item domain.CartItem) error
	UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (bool, error)
	DeleteItem(ctx context.Context, sessionID string, productID uuid.UUID) (bool, error)
	ClearCart(ctx context.Context, sessionID string) (int64, error)
}
