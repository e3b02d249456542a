package domain

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	SessionID string
	Items     []CartItem
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CartItem is a cart line. Price is captured when the product is added and is not
// refreshed afterwards; ProductName, Stock and Available reflect the live product.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
	Price     Money

	ProductName string
	Stock       int
	Available   bool

	CreatedAt time.Time
}

func (i CartItem) LineTotal() Money {
	return i.Price.Mul(i.Quantity)
}
