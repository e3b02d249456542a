package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type addToCartRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (s *server) showCart(c *fiber.Ctx) error {
	view, err := s.Cart.View(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}

	return c.JSON(toCartDTO(view))
}

func (s *server) addToCart(c *fiber.Ctx) error {
	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("malformed request body")
	}
	if req.ProductID == uuid.Nil {
		return badRequest("product_id is required")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := s.Cart.Add(c.UserContext(), sessionID(c), req.ProductID, req.Quantity); err != nil {
		return err
	}

	return s.showCart(c)
}

func (s *server) updateCartItem(c *fiber.Ctx) error {
	productID, err := uuidParam(c, "productID")
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("malformed request body")
	}

	if err := s.Cart.UpdateQuantity(c.UserContext(), sessionID(c), productID, req.Quantity); err != nil {
		return err
	}

	return s.showCart(c)
}

func (s *server) removeCartItem(c *fiber.Ctx) error {
	productID, err := uuidParam(c, "productID")
	if err != nil {
		return err
	}

	if err := s.Cart.Remove(c.UserContext(), sessionID(c), productID); err != nil {
		return err
	}

	return s.showCart(c)
}

func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, badRequest(name + " must be a valid UUID")
	}
	return id, nil
}
