package httpapi

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
	"github.com/nikolayk812/gallery-shop/internal/service"
)

type CheckoutService interface {
	Preview(ctx context.Context, sessionID string) (service.CheckoutPreview, error)
	PlaceOrder(ctx context.Context, sessionID string, form service.CheckoutForm) (domain.Order, error)
	Confirmation(ctx context.Context, number string) (domain.Order, error)
}

type CartService interface {
	View(ctx context.Context, sessionID string) (service.CartView, error)
	Add(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) error
	UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) error
	Remove(ctx context.Context, sessionID string, productID uuid.UUID) error
}

type CatalogService interface {
	ListAvailable(ctx context.Context, productType string) ([]domain.Product, error)
	GetAvailable(ctx context.Context, slug string) (domain.Product, error)
	List(ctx context.Context, filter port.ProductFilter) ([]domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Product, error)
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	Update(ctx context.Context, product domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderService interface {
	List(ctx context.Context, status string) ([]domain.Order, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, notes *string) (domain.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SettingService interface {
	Get(ctx context.Context, key string) (domain.Setting, error)
	Set(ctx context.Context, setting domain.Setting) (domain.Setting, error)
	List(ctx context.Context) ([]domain.Setting, error)
	Delete(ctx context.Context, key string) error
}

type Services struct {
	Checkout CheckoutService
	Cart     CartService
	Catalog  CatalogService
	Orders   OrderService
	Settings SettingService
}

type Options struct {
	AdminAPIKey   string
	SecureCookies bool
	Logger        *slog.Logger
}

type server struct {
	Services
	logger *slog.Logger
}

// New builds the fiber application with all public and admin routes.
func New(services Services, opts Options) *fiber.App {
	s := &server{
		Services: services,
		logger:   opts.Logger,
	}

	app := fiber.New(fiber.Config{
		AppName:      "gallery-shop",
		ErrorHandler: s.handleError,
	})

	app.Use(requestLogger(opts.Logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	shop := app.Group("/shop")
	shop.Get("/", s.listShop)
	shop.Get("/:slug", s.showProduct)

	session := sessionMiddleware(opts.SecureCookies)

	cart := app.Group("/cart", session)
	cart.Get("/", s.showCart)
	cart.Post("/", s.addToCart)
	cart.Patch("/:productID", s.updateCartItem)
	cart.Delete("/:productID", s.removeCartItem)

	checkout := app.Group("/checkout", session)
	checkout.Get("/", s.showCheckout)
	checkout.Post("/", s.placeOrder)
	checkout.Get("/success/:number", s.showConfirmation)

	admin := app.Group("/admin", adminKeyMiddleware(opts.AdminAPIKey))

	admin.Get("/products", s.adminListProducts)
	admin.Post("/products", s.adminCreateProduct)
	admin.Get("/products/:id", s.adminShowProduct)
	admin.Put("/products/:id", s.adminUpdateProduct)
	admin.Delete("/products/:id", s.adminDeleteProduct)

	admin.Get("/orders", s.adminListOrders)
	admin.Get("/orders/:id", s.adminShowOrder)
	admin.Patch("/orders/:id/status", s.adminUpdateOrderStatus)
	admin.Delete("/orders/:id", s.adminDeleteOrder)

	admin.Get("/settings", s.adminListSettings)
	admin.Get("/settings/:key", s.adminShowSetting)
	admin.Put("/settings/:key", s.adminSetSetting)
	admin.Delete("/settings/:key", s.adminDeleteSetting)

	return app
}
