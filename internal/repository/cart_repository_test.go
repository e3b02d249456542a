package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func (suite *repositorySuite) TestAddItem() {
	defer suite.deleteAll()

	product := suite.createProduct(gofakeit.ProductName(), "12.50", 10)

	tests := []struct {
		name      string
		sessionID string
		item      domain.CartItem
		wantError string
	}{
		{
			name:      "add item to cart: ok",
			sessionID: gofakeit.UUID(),
			item:      suite.randomCartItem(product),
		},
		{
			name:      "add item with empty session ID: error",
			sessionID: "",
			item:      suite.randomCartItem(product),
			wantError: "sessionID is empty",
		},
		{
			name:      "add item with zero quantity: error",
			sessionID: gofakeit.UUID(),
			item: domain.CartItem{
				ProductID: product.ID,
				Price:     randomMoney(),
			},
			wantError: "quantity must be positive",
		},
		{
			name:      "add item with zero price amount: ok",
			sessionID: gofakeit.UUID(),
			item: domain.CartItem{
				ProductID: product.ID,
				Quantity:  1,
				Price: domain.Money{
					Amount:   decimal.Zero,
					Currency: randomCurrency(),
				},
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.carts.AddItem(ctx, tt.sessionID, tt.item)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			// Verify the item was added
			cart, err := suite.carts.GetCart(ctx, tt.sessionID)
			require.NoError(t, err)

			require.Len(t, cart.Items, 1)
			assertCartItem(t, withProduct(tt.item, product), cart.Items[0])
		})
	}
}

func (suite *repositorySuite) TestAddItem_MergesQuantity() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct(gofakeit.ProductName(), "7.00", 10)
	sessionID := gofakeit.UUID()

	first := domain.CartItem{ProductID: product.ID, Quantity: 2, Price: product.Price}
	require.NoError(t, suite.carts.AddItem(ctx, sessionID, first))

	// a later add at a different price keeps the price captured first
	second := domain.CartItem{ProductID: product.ID, Quantity: 3, Price: domain.NewMoney(decimal.RequireFromString("9.00"), currency.USD)}
	require.NoError(t, suite.carts.AddItem(ctx, sessionID, second))

	cart, err := suite.carts.GetCart(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.True(t, cart.Items[0].Price.Equal(product.Price))
}

func (suite *repositorySuite) TestGetItem() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct(gofakeit.ProductName(), "3.30", 4)
	sessionID := gofakeit.UUID()
	suite.addToCart(sessionID, product, 2)

	item, err := suite.carts.GetItem(ctx, sessionID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, product.Name, item.ProductName)
	assert.Equal(t, 4, item.Stock)

	_, err = suite.carts.GetItem(ctx, gofakeit.UUID(), product.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *repositorySuite) TestUpdateQuantity() {
	defer suite.deleteAll()

	product := suite.createProduct(gofakeit.ProductName(), "1.00", 10)
	sessionID := gofakeit.UUID()
	suite.addToCart(sessionID, product, 1)

	tests := []struct {
		name        string
		sessionID   string
		productID   uuid.UUID
		quantity    int
		wantUpdated bool
		wantError   string
	}{
		{
			name:        "update existing item: ok",
			sessionID:   sessionID,
			productID:   product.ID,
			quantity:    4,
			wantUpdated: true,
		},
		{
			name:        "update item of another session: not found",
			sessionID:   gofakeit.UUID(),
			productID:   product.ID,
			quantity:    4,
			wantUpdated: false,
		},
		{
			name:      "update to zero quantity: error",
			sessionID: sessionID,
			productID: product.ID,
			quantity:  0,
			wantError: "quantity must be positive",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			updated, err := suite.carts.UpdateQuantity(ctx, tt.sessionID, tt.productID, tt.quantity)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUpdated, updated)
		})
	}

	cart, err := suite.carts.GetCart(suite.T().Context(), sessionID)
	suite.Require().NoError(err)
	suite.Require().Len(cart.Items, 1)
	suite.Equal(4, cart.Items[0].Quantity)
}

func (suite *repositorySuite) TestDeleteItem() {
	defer suite.deleteAll()

	product := suite.createProduct(gofakeit.ProductName(), "2.00", 10)
	other := suite.createProduct(gofakeit.ProductName(), "3.00", 10)

	tests := []struct {
		name        string
		sessionID   string
		productID   uuid.UUID
		setupItems  []domain.CartItem
		wantDeleted bool
		wantError   string
	}{
		{
			name:        "delete existing item: ok",
			sessionID:   gofakeit.UUID(),
			productID:   product.ID,
			setupItems:  []domain.CartItem{suite.randomCartItem(product)},
			wantDeleted: true,
		},
		{
			name:        "delete non-existing item: not found",
			sessionID:   gofakeit.UUID(),
			productID:   product.ID,
			setupItems:  []domain.CartItem{suite.randomCartItem(other)},
			wantDeleted: false,
		},
		{
			name:        "delete from empty cart: not found",
			sessionID:   gofakeit.UUID(),
			productID:   product.ID,
			setupItems:  []domain.CartItem{},
			wantDeleted: false,
		},
		{
			name:      "delete with empty session ID: error",
			sessionID: "",
			productID: product.ID,
			wantError: "sessionID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			for _, item := range tt.setupItems {
				err := suite.carts.AddItem(ctx, tt.sessionID, item)
				require.NoError(t, err)
			}

			deleted, err := suite.carts.DeleteItem(ctx, tt.sessionID, tt.productID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)
		})
	}
}

func (suite *repositorySuite) TestGetCart() {
	defer suite.deleteAll()

	first := suite.createProduct(gofakeit.ProductName(), "4.00", 10)
	second := suite.createProduct(gofakeit.ProductName(), "5.00", 10)

	tests := []struct {
		name       string
		sessionID  string
		setupItems []domain.CartItem
		products   []domain.Product
		wantError  string
	}{
		{
			name:       "get cart with items: ok",
			sessionID:  gofakeit.UUID(),
			setupItems: []domain.CartItem{suite.randomCartItem(first), suite.randomCartItem(second)},
			products:   []domain.Product{first, second},
		},
		{
			name:       "get empty cart: ok",
			sessionID:  gofakeit.UUID(),
			setupItems: []domain.CartItem{},
		},
		{
			name:      "get cart with empty session ID: error",
			sessionID: "",
			wantError: "sessionID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			for _, item := range tt.setupItems {
				err := suite.carts.AddItem(ctx, tt.sessionID, item)
				require.NoError(t, err)
			}

			cart, err := suite.carts.GetCart(ctx, tt.sessionID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.sessionID, cart.SessionID)
			require.Len(t, cart.Items, len(tt.setupItems))

			for i, expectedItem := range tt.setupItems {
				assertCartItem(t, withProduct(expectedItem, tt.products[i]), cart.Items[i])
			}
		})
	}
}

func (suite *repositorySuite) TestClearCart() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	sessionID := gofakeit.UUID()
	otherSessionID := gofakeit.UUID()
	product := suite.createProduct(gofakeit.ProductName(), "6.00", 10)
	other := suite.createProduct(gofakeit.ProductName(), "6.00", 10)

	suite.addToCart(sessionID, product, 1)
	suite.addToCart(sessionID, other, 2)
	suite.addToCart(otherSessionID, product, 1)

	cleared, err := suite.carts.ClearCart(ctx, sessionID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, cleared)

	cart, err := suite.carts.GetCart(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	cart, err = suite.carts.GetCart(ctx, otherSessionID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func (suite *repositorySuite) TestDeleteProduct_RemovesCartLines() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	sessionID := gofakeit.UUID()
	product := suite.createProduct(gofakeit.ProductName(), "6.00", 10)
	suite.addToCart(sessionID, product, 1)

	deleted, err := suite.products.DeleteProduct(ctx, product.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	cart, err := suite.carts.GetCart(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func (suite *repositorySuite) randomCartItem(product domain.Product) domain.CartItem {
	return domain.CartItem{
		ProductID: product.ID,
		Quantity:  gofakeit.IntRange(1, 5),
		Price:     randomMoney(),
	}
}

func withProduct(item domain.CartItem, product domain.Product) domain.CartItem {
	item.ProductName = product.Name
	item.Stock = product.Stock
	item.Available = product.Available
	return item
}

func assertCartItem(t *testing.T, expected, actual domain.CartItem) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})

	// Ignore the CreatedAt field in CartItem
	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartItem{}, "CreatedAt"),
		currencyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.False(t, actual.CreatedAt.IsZero())
}
