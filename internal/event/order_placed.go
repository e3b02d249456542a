package event

import (
	"time"

	"github.com/nikolayk812/gallery-shop/internal/domain"
)

// OrderPlaced is the message published after a checkout commits.
type OrderPlaced struct {
	OrderID      string            `json:"order_id"`
	Number       string            `json:"number"`
	CustomerName string            `json:"customer_name"`
	Email        string            `json:"customer_email"`
	Currency     string            `json:"currency"`
	Subtotal     string            `json:"subtotal"`
	ShippingCost string            `json:"shipping_cost"`
	Total        string            `json:"total"`
	Items        []OrderPlacedItem `json:"items"`
	PlacedAt     time.Time         `json:"placed_at"`
}

type OrderPlacedItem struct {
	ProductID   string `json:"product_id,omitempty"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
}

func NewOrderPlaced(order domain.Order) OrderPlaced {
	msg := OrderPlaced{
		OrderID:      order.ID.String(),
		Number:       order.Number,
		CustomerName: order.Customer.Name,
		Email:        order.Customer.Email,
		Currency:     order.Total.Currency.String(),
		Subtotal:     order.Subtotal.Amount.StringFixed(domain.CurrencyPlaces),
		ShippingCost: order.ShippingCost.Amount.StringFixed(domain.CurrencyPlaces),
		Total:        order.Total.Amount.StringFixed(domain.CurrencyPlaces),
		Items:        make([]OrderPlacedItem, 0, len(order.Items)),
		PlacedAt:     order.CreatedAt,
	}

	for _, item := range order.Items {
		var productID string
		if item.ProductID != nil {
			productID = item.ProductID.String()
		}

		msg.Items = append(msg.Items, OrderPlacedItem{
			ProductID:   productID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.Amount.StringFixed(domain.CurrencyPlaces),
			TotalPrice:  item.TotalPrice.Amount.StringFixed(domain.CurrencyPlaces),
		})
	}

	return msg
}
