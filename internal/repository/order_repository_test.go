package repository_test

import (
	"errors"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
	"github.com/nikolayk812/gallery-shop/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

var flatShipping = domain.NewMoney(decimal.RequireFromString("5.00"), currency.USD)

func (suite *repositorySuite) TestPlaceOrder_Success() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	printA := suite.createProduct("Print A", "10.00", 5)
	sessionID := gofakeit.UUID()
	suite.addToCart(sessionID, printA, 2)

	draft := randomDraft(sessionID)
	order, err := suite.orders.PlaceOrder(ctx, draft)
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-[0-9A-F]{32}$`, order.Number)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, draft.Customer, order.Customer)
	assert.Equal(t, draft.Notes, order.Notes)
	assert.Equal(t, "20.00", order.Subtotal.Amount.StringFixed(2))
	assert.Equal(t, "5.00", order.ShippingCost.Amount.StringFixed(2))
	assert.Equal(t, "25.00", order.Total.Amount.StringFixed(2))

	require.Len(t, order.Items, 1)
	assert.Equal(t, "Print A", order.Items[0].ProductName)
	assert.Equal(t, 2, order.Items[0].Quantity)
	require.NotNil(t, order.Items[0].ProductID)
	assert.Equal(t, printA.ID, *order.Items[0].ProductID)

	assert.Equal(t, 3, suite.stockOf(printA.ID))

	cart, err := suite.carts.GetCart(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	stored, err := suite.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assertTotalsReproducible(suite, stored)
}

func (suite *repositorySuite) TestPlaceOrder_InsufficientStock() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	printB := suite.createProduct("Print B", "8.00", 1)
	sessionID := gofakeit.UUID()
	suite.addToCart(sessionID, printB, 3)

	_, err := suite.orders.PlaceOrder(ctx, randomDraft(sessionID))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Print B", stockErr.ProductName)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)

	suite.assertNoOrders()
	assert.Equal(t, 1, suite.stockOf(printB.ID))

	cart, err := suite.carts.GetCart(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func (suite *repositorySuite) TestPlaceOrder_NoPartialDecrement() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	plenty := suite.createProduct(gofakeit.ProductName(), "3.00", 10)
	scarce := suite.createProduct(gofakeit.ProductName(), "4.00", 1)

	sessionID := gofakeit.UUID()
	suite.addToCart(sessionID, plenty, 4)
	suite.addToCart(sessionID, scarce, 2)

	_, err := suite.orders.PlaceOrder(ctx, randomDraft(sessionID))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, suite.stockOf(plenty.ID))
	assert.Equal(t, 1, suite.stockOf(scarce.ID))
	suite.assertNoOrders()

	cart, err := suite.carts.GetCart(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func (suite *repositorySuite) TestPlaceOrder_UnavailableProduct() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct(gofakeit.ProductName(), "3.00", 10)
	sessionID := gofakeit.UUID()
	suite.addToCart(sessionID, product, 1)

	product.Available = false
	_, err := suite.products.UpdateProduct(ctx, product)
	require.NoError(t, err)

	_, err = suite.orders.PlaceOrder(ctx, randomDraft(sessionID))

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 0, stockErr.Available)
	assert.Equal(t, 10, suite.stockOf(product.ID))
}

func (suite *repositorySuite) TestPlaceOrder_EmptyCart() {
	defer suite.deleteAll()

	_, err := suite.orders.PlaceOrder(suite.T().Context(), randomDraft(gofakeit.UUID()))
	suite.Require().ErrorIs(err, domain.ErrEmptyCart)

	suite.assertNoOrders()
}

func (suite *repositorySuite) TestPlaceOrder_ConcurrentCheckouts() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	const quantity = 3
	product := suite.createProduct(gofakeit.ProductName(), "15.00", quantity)

	sessions := []string{gofakeit.UUID(), gofakeit.UUID()}
	for _, sessionID := range sessions {
		suite.addToCart(sessionID, product, quantity)
	}

	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, len(sessions))
	)

	for i, sessionID := range sessions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, errs[i] = suite.orders.PlaceOrder(ctx, randomDraft(sessionID))
		}()
	}
	close(start)
	wg.Wait()

	var succeeded, outOfStock int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrInsufficientStock):
			outOfStock++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, outOfStock)
	assert.Equal(t, 0, suite.stockOf(product.ID))

	orders, err := suite.orders.ListOrders(ctx, port.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func (suite *repositorySuite) TestPlaceOrder_RolledBackByOuterTx() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct(gofakeit.ProductName(), "2.00", 5)
	sessionID := gofakeit.UUID()
	suite.addToCart(sessionID, product, 2)

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	_, err = repository.NewOrderWithTx(tx).PlaceOrder(ctx, randomDraft(sessionID))
	require.NoError(t, err)

	inTx, err := repository.NewCartWithTx(tx).GetCart(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, inTx.IsEmpty())

	require.NoError(t, tx.Rollback(ctx))

	cart, err := suite.carts.GetCart(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, suite.stockOf(product.ID))
	suite.assertNoOrders()
}

func (suite *repositorySuite) TestPlaceOrder_SnapshotSurvivesProductDeletion() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct("Limited Print", "30.00", 2)
	sessionID := gofakeit.UUID()
	suite.addToCart(sessionID, product, 1)

	order, err := suite.orders.PlaceOrder(ctx, randomDraft(sessionID))
	require.NoError(t, err)

	deleted, err := suite.products.DeleteProduct(ctx, product.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	stored, err := suite.orders.GetOrderByNumber(ctx, order.Number)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Nil(t, stored.Items[0].ProductID)
	assert.Equal(t, "Limited Print", stored.Items[0].ProductName)
	assert.Equal(t, "30.00", stored.Items[0].UnitPrice.Amount.StringFixed(2))
	assertTotalsReproducible(suite, stored)
}

func (suite *repositorySuite) TestUpdateOrderStatus() {
	defer suite.deleteAll()

	order := suite.placeRandomOrder()
	notes := "left at the door"

	tests := []struct {
		name    string
		id      uuid.UUID
		status  domain.OrderStatus
		notes   *string
		wantErr error
	}{
		{
			name:   "pending to processing: ok",
			id:     order.ID,
			status: domain.OrderStatusProcessing,
		},
		{
			name:   "keep status and edit notes: ok",
			id:     order.ID,
			status: domain.OrderStatusProcessing,
			notes:  &notes,
		},
		{
			name:    "processing to pending: invalid transition",
			id:      order.ID,
			status:  domain.OrderStatusPending,
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:   "processing to completed: ok",
			id:     order.ID,
			status: domain.OrderStatusCompleted,
		},
		{
			name:    "completed to cancelled: invalid transition",
			id:      order.ID,
			status:  domain.OrderStatusCancelled,
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:    "unknown order: not found",
			id:      uuid.New(),
			status:  domain.OrderStatusProcessing,
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			updated, err := suite.orders.UpdateOrderStatus(t.Context(), tt.id, tt.status, tt.notes)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, updated.Status)
			assert.Len(t, updated.Items, len(order.Items))
			if tt.notes != nil {
				assert.Equal(t, *tt.notes, updated.Notes)
			}
		})
	}
}

func (suite *repositorySuite) TestListOrders() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	first := suite.placeRandomOrder()
	second := suite.placeRandomOrder()

	_, err := suite.orders.UpdateOrderStatus(ctx, second.ID, domain.OrderStatusCancelled, nil)
	require.NoError(t, err)

	all, err := suite.orders.ListOrders(ctx, port.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")

	pending, err := suite.orders.ListOrders(ctx, port.OrderFilter{Status: domain.OrderStatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	completed, err := suite.orders.ListOrders(ctx, port.OrderFilter{Status: domain.OrderStatusCompleted})
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func (suite *repositorySuite) TestDeleteOrder() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	order := suite.placeRandomOrder()

	deleted, err := suite.orders.DeleteOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = suite.orders.DeleteOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = suite.orders.GetOrder(ctx, order.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *repositorySuite) placeRandomOrder() domain.Order {
	sessionID := gofakeit.UUID()
	product := suite.createProduct(gofakeit.ProductName(), "9.99", 10)
	suite.addToCart(sessionID, product, gofakeit.IntRange(1, 3))

	order, err := suite.orders.PlaceOrder(suite.T().Context(), randomDraft(sessionID))
	suite.Require().NoError(err)

	return order
}

func (suite *repositorySuite) assertNoOrders() {
	orders, err := suite.orders.ListOrders(suite.T().Context(), port.OrderFilter{})
	suite.Require().NoError(err)
	suite.Empty(orders)
}

// assertTotalsReproducible recomputes the totals from the stored item snapshots.
func assertTotalsReproducible(suite *repositorySuite, order domain.Order) {
	sum := decimal.Zero
	for _, item := range order.Items {
		suite.True(item.UnitPrice.Amount.Mul(decimal.NewFromInt(int64(item.Quantity))).Equal(item.TotalPrice.Amount))
		sum = sum.Add(item.TotalPrice.Amount)
	}

	suite.True(sum.Equal(order.Subtotal.Amount), "sum of items %s != subtotal %s", sum, order.Subtotal.Amount)
	suite.True(order.Subtotal.Amount.Add(order.ShippingCost.Amount).Equal(order.Total.Amount))
}

func randomDraft(sessionID string) domain.OrderDraft {
	address := gofakeit.Address()

	return domain.OrderDraft{
		SessionID: sessionID,
		Customer: domain.Customer{
			Name:       gofakeit.Name(),
			Email:      gofakeit.Email(),
			Phone:      gofakeit.Phone(),
			Address:    address.Street,
			City:       address.City,
			PostalCode: address.Zip,
			Country:    address.Country,
		},
		Notes:        gofakeit.Sentence(5),
		ShippingCost: flatShipping,
	}
}
