package repository

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/gallery-shop/internal/db"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

// PlaceOrder locks the session's cart lines, reserves stock with a conditional decrement
// per product, writes the order with its item snapshots and clears the cart, all in one
// transaction.
func (r *orderRepository) PlaceOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	if draft.SessionID == "" {
		return domain.Order{}, fmt.Errorf("sessionID is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		rows, err := q.GetCartForUpdate(ctx, draft.SessionID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.GetCartForUpdate: %w", err)
		}
		if len(rows) == 0 {
			return domain.Order{}, domain.ErrEmptyCart
		}

		items := make([]domain.CartItem, 0, len(rows))
		for _, row := range rows {
			item, err := mapGetCartRowToDomain(db.GetCartRow(row))
			if err != nil {
				return domain.Order{}, fmt.Errorf("mapGetCartRowToDomain: %w", err)
			}
			items = append(items, item)
		}

		if err := reserveStock(ctx, q, items); err != nil {
			return domain.Order{}, err
		}

		totals, err := domain.CalculateTotals(items, draft.ShippingCost)
		if err != nil {
			return domain.Order{}, fmt.Errorf("domain.CalculateTotals: %w", err)
		}

		number, err := domain.NewOrderNumber()
		if err != nil {
			return domain.Order{}, fmt.Errorf("domain.NewOrderNumber: %w", err)
		}

		dbOrder, err := q.CreateOrder(ctx, db.CreateOrderParams{
			ID:              uuid.New(),
			Number:          number,
			CustomerName:    draft.Customer.Name,
			CustomerEmail:   draft.Customer.Email,
			CustomerPhone:   draft.Customer.Phone,
			ShippingAddress: draft.Customer.Address,
			City:            draft.Customer.City,
			PostalCode:      draft.Customer.PostalCode,
			Country:         draft.Customer.Country,
			Currency:        totals.Total.Currency.String(),
			SubtotalAmount:  totals.Subtotal.Amount,
			ShippingAmount:  totals.ShippingCost.Amount,
			TotalAmount:     totals.Total.Amount,
			Status:          domain.OrderStatusPending.String(),
			Notes:           draft.Notes,
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.CreateOrder: %w", err)
		}

		dbItems := make([]db.OrderItem, 0, len(items))
		for i, item := range items {
			productID := item.ProductID
			dbItem := db.OrderItem{
				OrderID:     dbOrder.ID,
				Position:    int32(i + 1),
				ProductID:   &productID,
				ProductName: item.ProductName,
				Quantity:    int32(item.Quantity),
				UnitPrice:   item.Price.Amount,
				TotalPrice:  item.LineTotal().Amount,
			}

			if err := q.CreateOrderItem(ctx, db.CreateOrderItemParams(dbItem)); err != nil {
				return domain.Order{}, fmt.Errorf("q.CreateOrderItem: %w", err)
			}
			dbItems = append(dbItems, dbItem)
		}

		if _, err := q.ClearCart(ctx, draft.SessionID); err != nil {
			return domain.Order{}, fmt.Errorf("q.ClearCart: %w", err)
		}

		return mapOrderToDomain(dbOrder, dbItems)
	})
}

// reserveStock decrements stock in product id order so that concurrent checkouts lock
// products in the same order.
func reserveStock(ctx context.Context, q *db.Queries, items []domain.CartItem) error {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b domain.CartItem) int {
		return bytes.Compare(a.ProductID[:], b.ProductID[:])
	})

	for _, item := range sorted {
		rowsAffected, err := q.DecrementStock(ctx, db.DecrementStockParams{
			Quantity: int32(item.Quantity),
			ID:       item.ProductID,
		})
		if err != nil {
			return fmt.Errorf("q.DecrementStock: %w", err)
		}
		if rowsAffected == 1 {
			continue
		}

		stockErr := &domain.InsufficientStockError{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Requested:   item.Quantity,
		}

		product, err := q.GetProduct(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("q.GetProduct: %w", err)
		}
		if product.IsAvailable {
			stockErr.Available = int(product.Stock)
		}

		return stockErr
	}

	return nil
}

func (r *orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	row, err := r.q.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, notFoundOr(err, "q.GetOrder")
	}

	return r.withItems(ctx, r.q, row)
}

func (r *orderRepository) GetOrderByNumber(ctx context.Context, number string) (domain.Order, error) {
	if number == "" {
		return domain.Order{}, fmt.Errorf("number is empty")
	}

	row, err := r.q.GetOrderByNumber(ctx, number)
	if err != nil {
		return domain.Order{}, notFoundOr(err, "q.GetOrderByNumber")
	}

	return r.withItems(ctx, r.q, row)
}

// ListOrders returns orders newest first without their items.
func (r *orderRepository) ListOrders(ctx context.Context, filter port.OrderFilter) ([]domain.Order, error) {
	rows, err := r.q.ListOrders(ctx, filter.Status.String())
	if err != nil {
		return nil, fmt.Errorf("q.ListOrders: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := mapOrderToDomain(row, nil)
		if err != nil {
			return nil, fmt.Errorf("mapOrderToDomain: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// UpdateOrderStatus moves the order to status, optionally replacing its notes. Keeping
// the current status is allowed so that notes can be edited on their own.
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, notes *string) (domain.Order, error) {
	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		current, err := q.GetOrderForUpdate(ctx, id)
		if err != nil {
			return domain.Order{}, notFoundOr(err, "q.GetOrderForUpdate")
		}

		from := domain.OrderStatus(current.Status)
		if from != status && !from.CanTransitionTo(status) {
			return domain.Order{}, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, from, status)
		}

		var pgNotes pgtype.Text
		if notes != nil {
			pgNotes = pgtype.Text{String: *notes, Valid: true}
		}

		row, err := q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
			Status: status.String(),
			Notes:  pgNotes,
			ID:     id,
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.UpdateOrderStatus: %w", err)
		}

		return r.withItems(ctx, q, row)
	})
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id uuid.UUID) (bool, error) {
	rowsAffected, err := r.q.DeleteOrder(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.DeleteOrder: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *orderRepository) withItems(ctx context.Context, q *db.Queries, row db.Order) (domain.Order, error) {
	items, err := q.ListOrderItems(ctx, row.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.ListOrderItems: %w", err)
	}

	return mapOrderToDomain(row, items)
}

func mapOrderToDomain(row db.Order, items []db.OrderItem) (domain.Order, error) {
	subtotal, err := toMoney(row.SubtotalAmount, row.Currency)
	if err != nil {
		return domain.Order{}, err
	}
	unit := subtotal.Currency

	order := domain.Order{
		ID:     row.ID,
		Number: row.Number,
		Customer: domain.Customer{
			Name:       row.CustomerName,
			Email:      row.CustomerEmail,
			Phone:      row.CustomerPhone,
			Address:    row.ShippingAddress,
			City:       row.City,
			PostalCode: row.PostalCode,
			Country:    row.Country,
		},
		Subtotal:     subtotal,
		ShippingCost: domain.NewMoney(row.ShippingAmount, unit),
		Total:        domain.NewMoney(row.TotalAmount, unit),
		Status:       domain.OrderStatus(row.Status),
		Notes:        row.Notes,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	for _, item := range items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    int(item.Quantity),
			UnitPrice:   domain.NewMoney(item.UnitPrice, unit),
			TotalPrice:  domain.NewMoney(item.TotalPrice, unit),
		})
	}

	return order, nil
}
