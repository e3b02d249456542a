package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

func (s *server) listShop(c *fiber.Ctx) error {
	products, err := s.Catalog.ListAvailable(c.UserContext(), c.Query("type"))
	if err != nil {
		return err
	}

	return c.JSON(toProductDTOs(products))
}

func (s *server) showProduct(c *fiber.Ctx) error {
	product, err := s.Catalog.GetAvailable(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}

	return c.JSON(toProductDTO(product))
}
