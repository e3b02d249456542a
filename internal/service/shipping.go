package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/shopspring/decimal"
)

// ShippingCostKey is the setting that overrides the configured flat shipping cost.
const ShippingCostKey = "checkout.shipping_cost"

// SettingShipping charges a flat amount per cart. Admins can change the amount through
// the ShippingCostKey setting; while it is unset the configured cost applies.
type SettingShipping struct {
	settings *SettingService
	fallback domain.FlatShipping
}

func NewSettingShipping(settings *SettingService, fallback domain.FlatShipping) *SettingShipping {
	return &SettingShipping{
		settings: settings,
		fallback: fallback,
	}
}

func (p *SettingShipping) ShippingCost(ctx context.Context, items []domain.CartItem) (domain.Money, error) {
	value, err := p.settings.Value(ctx, ShippingCostKey, "")
	if err != nil {
		return domain.Money{}, err
	}
	if strings.TrimSpace(value) == "" {
		return p.fallback.ShippingCost(ctx, items)
	}

	amount, err := parseShippingCost(value)
	if err != nil {
		return domain.Money{}, err
	}

	return domain.NewMoney(amount, p.fallback.Cost.Currency), nil
}

func parseShippingCost(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || amount.IsNegative() {
		return decimal.Zero, &domain.ValidationError{
			Field:  ShippingCostKey,
			Reason: fmt.Sprintf("%q is not a non-negative amount", value),
		}
	}
	return amount, nil
}
