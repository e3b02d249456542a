package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nikolayk812/gallery-shop/internal/service"
)

const successPath = "/checkout/success/"

type placeOrderResponse struct {
	Number   string `json:"order_number"`
	Redirect string `json:"redirect"`
}

func (s *server) showCheckout(c *fiber.Ctx) error {
	preview, err := s.Checkout.Preview(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}

	return c.JSON(toCheckoutPreviewDTO(preview))
}

// placeOrder answers 201 with the order number; the client follows Location to the
// confirmation page.
func (s *server) placeOrder(c *fiber.Ctx) error {
	var form service.CheckoutForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest("malformed request body")
	}

	order, err := s.Checkout.PlaceOrder(c.UserContext(), sessionID(c), form)
	if err != nil {
		return err
	}

	redirect := successPath + order.Number
	c.Location(redirect)

	return c.Status(fiber.StatusCreated).JSON(placeOrderResponse{
		Number:   order.Number,
		Redirect: redirect,
	})
}

func (s *server) showConfirmation(c *fiber.Ctx) error {
	order, err := s.Checkout.Confirmation(c.UserContext(), c.Params("number"))
	if err != nil {
		return err
	}

	return c.JSON(toOrderDTO(order))
}
