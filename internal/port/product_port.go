package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/gallery-shop/internal/domain"
)

type ProductFilter struct {
	AvailableOnly bool
	Type          string
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (domain.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error)
}
