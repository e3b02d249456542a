package domain

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Totals struct {
	Subtotal     Money
	ShippingCost Money
	Total        Money
}

// ShippingPolicy prices the shipping of a cart.
type ShippingPolicy interface {
	ShippingCost(ctx context.Context, items []CartItem) (Money, error)
}

// FlatShipping charges the same amount for every cart.
type FlatShipping struct {
	Cost Money
}

func NewFlatShipping(amount decimal.Decimal, unit currency.Unit) FlatShipping {
	return FlatShipping{Cost: NewMoney(amount, unit)}
}

func (f FlatShipping) ShippingCost(context.Context, []CartItem) (Money, error) {
	return f.Cost, nil
}

// CalculateTotals sums price-at-add-time times quantity over items and adds shipping.
// All amounts share shipping's currency.
func CalculateTotals(items []CartItem, shipping Money) (Totals, error) {
	subtotal := ZeroMoney(shipping.Currency)

	for _, item := range items {
		if item.Quantity < 1 {
			return Totals{}, &ValidationError{Field: "quantity", Reason: fmt.Sprintf("must be at least 1 for product %s", item.ProductID)}
		}

		var err error
		subtotal, err = subtotal.Add(item.LineTotal())
		if err != nil {
			return Totals{}, fmt.Errorf("product %s: %w", item.ProductID, err)
		}
	}

	subtotal = subtotal.Round()
	shipping = shipping.Round()

	total, err := subtotal.Add(shipping)
	if err != nil {
		return Totals{}, fmt.Errorf("shipping: %w", err)
	}

	return Totals{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        total.Round(),
	}, nil
}
