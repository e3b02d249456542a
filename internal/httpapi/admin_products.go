package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type productRequest struct {
	PhotoID     *uuid.UUID      `json:"photo_id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       int             `json:"stock"`
	Available   *bool           `json:"is_available"`
}

func (r productRequest) toDomain(id uuid.UUID) (domain.Product, error) {
	unit, err := currency.ParseISO(strings.ToUpper(r.Currency))
	if err != nil {
		return domain.Product{}, &domain.ValidationError{Field: "currency", Reason: "must be an ISO 4217 code"}
	}

	available := true
	if r.Available != nil {
		available = *r.Available
	}

	return domain.Product{
		ID:          id,
		PhotoID:     r.PhotoID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Type:        r.Type,
		Price:       domain.NewMoney(r.Price, unit),
		Stock:       r.Stock,
		Available:   available,
	}, nil
}

func (s *server) adminListProducts(c *fiber.Ctx) error {
	filter := port.ProductFilter{
		AvailableOnly: c.QueryBool("available"),
		Type:          c.Query("type"),
	}

	products, err := s.Catalog.List(c.UserContext(), filter)
	if err != nil {
		return err
	}

	return c.JSON(toProductDTOs(products))
}

func (s *server) adminCreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("malformed request body")
	}

	product, err := req.toDomain(uuid.Nil)
	if err != nil {
		return err
	}

	created, err := s.Catalog.Create(c.UserContext(), product)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toProductDTO(created))
}

func (s *server) adminShowProduct(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	product, err := s.Catalog.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(toProductDTO(product))
}

func (s *server) adminUpdateProduct(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("malformed request body")
	}

	product, err := req.toDomain(id)
	if err != nil {
		return err
	}

	updated, err := s.Catalog.Update(c.UserContext(), product)
	if err != nil {
		return err
	}

	return c.JSON(toProductDTO(updated))
}

func (s *server) adminDeleteProduct(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.Catalog.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
