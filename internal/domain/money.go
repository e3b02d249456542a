package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// CurrencyPlaces is the number of fraction digits stored and displayed for every amount.
const CurrencyPlaces = 2

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

func ZeroMoney(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}

	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

func (m Money) Mul(quantity int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(quantity))), Currency: m.Currency}
}

// Round rounds half away from zero to CurrencyPlaces.
func (m Money) Round() Money {
	return Money{Amount: m.Amount.Round(CurrencyPlaces), Currency: m.Currency}
}

func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) String() string {
	return m.Amount.StringFixed(CurrencyPlaces) + " " + m.Currency.String()
}
