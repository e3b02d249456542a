package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(s); status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return status, nil
	default:
		return "", &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown order status %q", s)}
	}
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Customer struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Country    string
}

type Order struct {
	ID       uuid.UUID
	Number   string
	Customer Customer

	Subtotal     Money
	ShippingCost Money
	Total        Money

	Status OrderStatus
	Notes  string
	Items  []OrderItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem snapshots the product name and price at checkout time. ProductID is nil
// once the product has been deleted.
type OrderItem struct {
	ProductID   *uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   Money
	TotalPrice  Money
}

// OrderDraft carries everything PlaceOrder needs besides the cart itself.
type OrderDraft struct {
	SessionID    string
	Customer     Customer
	Notes        string
	ShippingCost Money
}

const orderNumberPrefix = "ORD-"

// NewOrderNumber returns a unique order number derived from a time-ordered UUIDv7.
func NewOrderNumber() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("uuid.NewV7: %w", err)
	}

	return orderNumberPrefix + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")), nil
}
