package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

type orderStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func (s *server) adminListOrders(c *fiber.Ctx) error {
	orders, err := s.Orders.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return err
	}

	out := make([]orderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDTO(o))
	}

	return c.JSON(out)
}

func (s *server) adminShowOrder(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	order, err := s.Orders.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(toOrderDTO(order))
}

func (s *server) adminUpdateOrderStatus(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req orderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("malformed request body")
	}

	order, err := s.Orders.UpdateStatus(c.UserContext(), id, req.Status, req.Notes)
	if err != nil {
		return err
	}

	return c.JSON(toOrderDTO(order))
}

func (s *server) adminDeleteOrder(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.Orders.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
