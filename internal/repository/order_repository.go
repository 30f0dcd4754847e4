package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/atozgarments/garmenttrack/internal/models"
)

const orderColumns = "id, order_number, description, quantity, status, priority, client_id, due_date, " +
	"subtotal_amount, gst_amount, total_amount, creator_name, creator_phone, photo_urls, created_at, updated_at"

type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// OrderInput carries the fields for a new order. Amount fields are expected
// to already satisfy total = subtotal + gst; the intake layer computes them.
type OrderInput struct {
	OrderNumber    string
	Description    *string
	Quantity       int
	Status         string
	Priority       string
	ClientID       *string
	DueDate        *time.Time
	SubtotalAmount float64
	GSTAmount      float64
	TotalAmount    float64
	CreatorName    *string
	CreatorPhone   *string
	PhotoURLs      []string
}

// OrderUpdateInput carries a partial update; nil fields are left untouched.
// Amount fields are applied as given, with no recomputation.
type OrderUpdateInput struct {
	OrderNumber    *string
	Description    *string
	Quantity       *int
	Status         *string
	Priority       *string
	ClientID       *string
	DueDate        *time.Time
	SubtotalAmount *float64
	GSTAmount      *float64
	TotalAmount    *float64
	PhotoURLs      []string
}

// List returns all orders owned by ownerID, newest first.
func (r *OrderRepository) List(ctx context.Context, ownerID string) ([]models.Order, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM orders WHERE user_id = $1 ORDER BY created_at DESC",
		orderColumns,
	)

	var orders []models.Order
	if err := r.db.SelectContext(ctx, &orders, query, ownerID); err != nil {
		return nil, remoteErr("list orders", err)
	}
	return orders, nil
}

// Insert creates an order stamped with ownerID and returns the stored row.
func (r *OrderRepository) Insert(ctx context.Context, ownerID string, in OrderInput) (*models.Order, error) {
	query := fmt.Sprintf(`
		INSERT INTO orders (id, user_id, order_number, description, quantity, status, priority, client_id, due_date,
			subtotal_amount, gst_amount, total_amount, creator_name, creator_phone, photo_urls, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())
		RETURNING %s`, orderColumns)

	var order models.Order
	err := r.db.GetContext(ctx, &order, query,
		uuid.NewString(), ownerID, in.OrderNumber, in.Description, in.Quantity,
		in.Status, in.Priority, in.ClientID, in.DueDate,
		in.SubtotalAmount, in.GSTAmount, in.TotalAmount,
		in.CreatorName, in.CreatorPhone, pq.StringArray(in.PhotoURLs),
	)
	if err != nil {
		return nil, remoteErr("insert order", err)
	}
	return &order, nil
}

// Update applies the non-nil fields of in to the order with the given id,
// scoped to ownerID, and returns the updated row.
func (r *OrderRepository) Update(ctx context.Context, ownerID, id string, in OrderUpdateInput) (*models.Order, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{}
	next := 1

	set := func(col string, v interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, next))
		args = append(args, v)
		next++
	}

	if in.OrderNumber != nil {
		set("order_number", *in.OrderNumber)
	}
	if in.Description != nil {
		set("description", *in.Description)
	}
	if in.Quantity != nil {
		set("quantity", *in.Quantity)
	}
	if in.Status != nil {
		set("status", *in.Status)
	}
	if in.Priority != nil {
		set("priority", *in.Priority)
	}
	if in.ClientID != nil {
		set("client_id", *in.ClientID)
	}
	if in.DueDate != nil {
		set("due_date", *in.DueDate)
	}
	if in.SubtotalAmount != nil {
		set("subtotal_amount", *in.SubtotalAmount)
	}
	if in.GSTAmount != nil {
		set("gst_amount", *in.GSTAmount)
	}
	if in.TotalAmount != nil {
		set("total_amount", *in.TotalAmount)
	}
	if in.PhotoURLs != nil {
		set("photo_urls", pq.StringArray(in.PhotoURLs))
	}

	query := fmt.Sprintf(
		"UPDATE orders SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		strings.Join(sets, ", "), next, next+1, orderColumns,
	)
	args = append(args, id, ownerID)

	var order models.Order
	if err := r.db.GetContext(ctx, &order, query, args...); err != nil {
		return nil, remoteErr("update order", err)
	}
	return &order, nil
}

// Delete removes the order with the given id within the owner's scope.
func (r *OrderRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM orders WHERE id = $1 AND user_id = $2", id, ownerID)
	if err != nil {
		return remoteErr("delete order", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
