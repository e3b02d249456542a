package httpapi_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
	"github.com/nikolayk812/gallery-shop/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Preview(ctx context.Context, sessionID string) (service.CheckoutPreview, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(service.CheckoutPreview), args.Error(1)
}

func (m *MockCheckoutService) PlaceOrder(ctx context.Context, sessionID string, form service.CheckoutForm) (domain.Order, error) {
	args := m.Called(ctx, sessionID, form)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockCheckoutService) Confirmation(ctx context.Context, number string) (domain.Order, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(domain.Order), args.Error(1)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) View(ctx context.Context, sessionID string) (service.CartView, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(service.CartView), args.Error(1)
}

func (m *MockCartService) Add(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) error {
	args := m.Called(ctx, sessionID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) error {
	args := m.Called(ctx, sessionID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartService) Remove(ctx context.Context, sessionID string, productID uuid.UUID) error {
	args := m.Called(ctx, sessionID, productID)
	return args.Error(0)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListAvailable(ctx context.Context, productType string) ([]domain.Product, error) {
	args := m.Called(ctx, productType)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogService) GetAvailable(ctx context.Context, slug string) (domain.Product, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockCatalogService) List(ctx context.Context, filter port.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockCatalogService) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockCatalogService) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockCatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) List(ctx context.Context, status string) ([]domain.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string, notes *string) (domain.Order, error) {
	args := m.Called(ctx, id, status, notes)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSettingService struct {
	mock.Mock
}

func (m *MockSettingService) Get(ctx context.Context, key string) (domain.Setting, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.Setting), args.Error(1)
}

func (m *MockSettingService) Set(ctx context.Context, setting domain.Setting) (domain.Setting, error) {
	args := m.Called(ctx, setting)
	return args.Get(0).(domain.Setting), args.Error(1)
}

func (m *MockSettingService) List(ctx context.Context) ([]domain.Setting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Setting), args.Error(1)
}

func (m *MockSettingService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
