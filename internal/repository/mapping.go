package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const pgUniqueViolation = "23505"

func toMoney(amount decimal.Decimal, code string) (domain.Money, error) {
	parsedCurrency, err := currency.ParseISO(code)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}

	return domain.Money{Amount: amount, Currency: parsedCurrency}, nil
}

// notFoundOr maps pgx.ErrNoRows to domain.ErrNotFound and wraps everything else.
func notFoundOr(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
