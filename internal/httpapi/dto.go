package httpapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/service"
)

type moneyDTO struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func toMoneyDTO(m domain.Money) moneyDTO {
	return moneyDTO{
		Amount:   m.Amount.StringFixed(domain.CurrencyPlaces),
		Currency: m.Currency.String(),
	}
}

type productDTO struct {
	ID          uuid.UUID  `json:"id"`
	PhotoID     *uuid.UUID `json:"photo_id,omitempty"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Price       moneyDTO   `json:"price"`
	Stock       int        `json:"stock"`
	Available   bool       `json:"is_available"`
}

func toProductDTO(p domain.Product) productDTO {
	return productDTO{
		ID:          p.ID,
		PhotoID:     p.PhotoID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Type:        p.Type,
		Price:       toMoneyDTO(p.Price),
		Stock:       p.Stock,
		Available:   p.Available,
	}
}

func toProductDTOs(products []domain.Product) []productDTO {
	out := make([]productDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out
}

type cartItemDTO struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       moneyDTO  `json:"price"`
	LineTotal   moneyDTO  `json:"line_total"`
	Stock       int       `json:"stock"`
	Available   bool      `json:"is_available"`
}

type cartDTO struct {
	Items    []cartItemDTO `json:"items"`
	Subtotal moneyDTO      `json:"subtotal"`
}

func toCartItemDTOs(items []domain.CartItem) []cartItemDTO {
	out := make([]cartItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, cartItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       toMoneyDTO(item.Price),
			LineTotal:   toMoneyDTO(item.LineTotal()),
			Stock:       item.Stock,
			Available:   item.Available,
		})
	}
	return out
}

func toCartDTO(view service.CartView) cartDTO {
	return cartDTO{
		Items:    toCartItemDTOs(view.Cart.Items),
		Subtotal: toMoneyDTO(view.Subtotal),
	}
}

type checkoutPreviewDTO struct {
	Items        []cartItemDTO `json:"items"`
	Subtotal     moneyDTO      `json:"subtotal"`
	ShippingCost moneyDTO      `json:"shipping_cost"`
	Total        moneyDTO      `json:"total"`
}

func toCheckoutPreviewDTO(preview service.CheckoutPreview) checkoutPreviewDTO {
	return checkoutPreviewDTO{
		Items:        toCartItemDTOs(preview.Cart.Items),
		Subtotal:     toMoneyDTO(preview.Totals.Subtotal),
		ShippingCost: toMoneyDTO(preview.Totals.ShippingCost),
		Total:        toMoneyDTO(preview.Totals.Total),
	}
}

type orderItemDTO struct {
	ProductID   *uuid.UUID `json:"product_id"`
	ProductName string     `json:"product_name"`
	Quantity    int        `json:"quantity"`
	UnitPrice   moneyDTO   `json:"unit_price"`
	TotalPrice  moneyDTO   `json:"total_price"`
}

type orderDTO struct {
	ID              uuid.UUID      `json:"id"`
	Number          string         `json:"order_number"`
	CustomerName    string         `json:"customer_name"`
	CustomerEmail   string         `json:"customer_email"`
	CustomerPhone   string         `json:"customer_phone,omitempty"`
	ShippingAddress string         `json:"shipping_address"`
	City            string         `json:"city"`
	PostalCode      string         `json:"postal_code"`
	Country         string         `json:"country"`
	Subtotal        moneyDTO       `json:"subtotal"`
	ShippingCost    moneyDTO       `json:"shipping_cost"`
	Total           moneyDTO       `json:"total"`
	Status          string         `json:"status"`
	Notes           string         `json:"notes,omitempty"`
	Items           []orderItemDTO `json:"items,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

func toOrderDTO(o domain.Order) orderDTO {
	dto := orderDTO{
		ID:              o.ID,
		Number:          o.Number,
		CustomerName:    o.Customer.Name,
		CustomerEmail:   o.Customer.Email,
		CustomerPhone:   o.Customer.Phone,
		ShippingAddress: o.Customer.Address,
		City:            o.Customer.City,
		PostalCode:      o.Customer.PostalCode,
		Country:         o.Customer.Country,
		Subtotal:        toMoneyDTO(o.Subtotal),
		ShippingCost:    toMoneyDTO(o.ShippingCost),
		Total:           toMoneyDTO(o.Total),
		Status:          o.Status.String(),
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
	}

	for _, item := range o.Items {
		dto.Items = append(dto.Items, orderItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   toMoneyDTO(item.UnitPrice),
			TotalPrice:  toMoneyDTO(item.TotalPrice),
		})
	}

	return dto
}

type settingDTO struct {
	Key         string    `json:"key"`
	Text        string    `json:"text"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toSettingDTO(s domain.Setting) settingDTO {
	return settingDTO{
		Key:         s.Key,
		Text:        s.Text,
		Description: s.Description,
		UpdatedAt:   s.UpdatedAt,
	}
}
