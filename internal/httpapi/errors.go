package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nikolayk812/gallery-shop/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Product string `json:"product,omitempty"`
}

const retryMessage = "Something went wrong while saving your request. Please try again."

func (s *server) handleError(c *fiber.Ctx, err error) error {
	var (
		fe       *fiber.Error
		stockErr *domain.InsufficientStockError
	)

	switch {
	case errors.As(err, &fe):
		return c.Status(fe.Code).JSON(errorResponse{Error: "http_error", Message: fe.Message})
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusConflict).JSON(errorResponse{
			Error:   "insufficient_stock",
			Message: stockErr.Error(),
			Product: stockErr.ProductName,
		})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(errorResponse{Error: "validation_failed", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusConflict).JSON(errorResponse{Error: "empty_cart", Message: "Your cart is empty."})
	case errors.Is(err, domain.ErrUnavailable):
		return c.Status(fiber.StatusConflict).JSON(errorResponse{Error: "unavailable", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(errorResponse{Error: "invalid_transition", Message: err.Error()})
	case errors.Is(err, domain.ErrCurrencyMismatch):
		return c.Status(fiber.StatusConflict).JSON(errorResponse{Error: "currency_mismatch", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: "not_found", Message: "Not found."})
	}

	s.logger.ErrorContext(c.UserContext(), "request failed", "path", c.Path(), "error", err)

	return c.Status(fiber.StatusServiceUnavailable).JSON(errorResponse{Error: "retry", Message: retryMessage})
}

func badRequest(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}
