package service

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/nikolayk812/gallery-shop/internal/domain"
)

const maxFieldLength = 255

// CheckoutForm is the customer and shipping data submitted at checkout.
type CheckoutForm struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	ShippingAddress string `json:"shipping_address"`
	City            string `json:"city"`
	PostalCode      string `json:"postal_code"`
	Country         string `json:"country"`
	Notes           string `json:"notes"`
}

// Validate returns all field errors joined; each of them matches domain.ErrValidation.
func (f CheckoutForm) Validate() error {
	var errs []error

	required := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, &domain.ValidationError{Field: field, Reason: "is required"})
		}
	}
	bounded := func(field, value string) {
		if utf8.RuneCountInString(value) > maxFieldLength {
			errs = append(errs, &domain.ValidationError{Field: field, Reason: "must be at most 255 characters"})
		}
	}

	required("customer_name", f.CustomerName)
	required("customer_email", f.CustomerEmail)
	required("shipping_address", f.ShippingAddress)
	required("city", f.City)
	required("postal_code", f.PostalCode)
	required("country", f.Country)

	bounded("customer_name", f.CustomerName)
	bounded("customer_email", f.CustomerEmail)
	bounded("customer_phone", f.CustomerPhone)
	bounded("city", f.City)
	bounded("postal_code", f.PostalCode)
	bounded("country", f.Country)

	if email := strings.TrimSpace(f.CustomerEmail); email != "" {
		if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			errs = append(errs, &domain.ValidationError{Field: "customer_email", Reason: "must be a valid email address"})
		}
	}

	return errors.Join(errs...)
}

func (f CheckoutForm) customer() domain.Customer {
	return domain.Customer{
		Name:       strings.TrimSpace(f.CustomerName),
		Email:      strings.TrimSpace(f.CustomerEmail),
		Phone:      strings.TrimSpace(f.CustomerPhone),
		Address:    strings.TrimSpace(f.ShippingAddress),
		City:       strings.TrimSpace(f.City),
		PostalCode: strings.TrimSpace(f.PostalCode),
		Country:    strings.TrimSpace(f.Country),
	}
}
