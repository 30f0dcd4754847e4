package models

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID             string         `db:"id"`
	OrderNumber    string         `db:"order_number"`
	Description    sql.NullString `db:"description"`
	Quantity       int            `db:"quantity"`
	Status         string         `db:"status"`
	Priority       string         `db:"priority"`
	ClientID       sql.NullString `db:"client_id"`
	DueDate        sql.NullTime   `db:"due_date"`
	SubtotalAmount float64        `db:"subtotal_amount"`
	GSTAmount      float64        `db:"gst_amount"`
	TotalAmount    float64        `db:"total_amount"`
	CreatorName    sql.NullString `db:"creator_name"`
	CreatorPhone   sql.NullString `db:"creator_phone"`
	PhotoURLs      pq.StringArray `db:"photo_urls"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

// orderTransitions is the allowed status transition table. An order moves
// pending -> in_progress -> completed, or is cancelled while still pending.
// Completed and cancelled are terminal.
var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusCompleted},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// CanTransitionOrder reports whether an order may move from one status to
// another according to the transition table.
func CanTransitionOrder(from, to string) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// Editable reports whether the order's descriptive fields may still be
// changed. Only pending orders are editable.
func (o *Order) Editable() bool {
	return o.Status == OrderStatusPending
}

// NewOrderNumber builds a human-readable, time-derived order number such as
// ORD-20250830-142501.
func NewOrderNumber(t time.Time) string {
	return fmt.Sprintf("ORD-%s", t.Format("20060102-150405"))
}

// StatusMessage returns the user-facing description of an order status
// change, used when composing status notifications.
func StatusMessage(status string) string {
	switch status {
	case OrderStatusPending:
		return "Order is now pending"
	case OrderStatusInProgress:
		return "Order is now being processed"
	case OrderStatusCompleted:
		return "Order has been completed"
	case OrderStatusCancelled:
		return "Order has been cancelled"
	default:
		return "Order status updated"
	}
}
