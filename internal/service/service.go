// Package service implements the cached entity accessors behind the
// dashboard: each service mirrors one remote collection, applies mutations
// through the store, patches its local cache on success and reports
// outcomes through the notification center and the alert boundary.
//
// The cache is a mirror, never the source of truth. Mutations are applied
// only after the remote call resolves; there is no optimistic state and no
// rollback to perform on failure. Overlapping mutations race last-write-wins,
// which is accepted for a single user editing their own data.
package service

import (
	"context"
	"errors"

	"github.com/atozgarments/garmenttrack/internal/models"
	"github.com/atozgarments/garmenttrack/internal/repository"
)

var (
	// ErrNotEditable is returned when a descriptive edit or delete is
	// attempted on an order that is no longer pending.
	ErrNotEditable = errors.New("order is no longer editable")

	// ErrBadTransition is returned for a status change the transition
	// table does not allow.
	ErrBadTransition = errors.New("status transition not allowed")

	// ErrInvalidQuantity is returned when an order is created or updated
	// with a quantity that is not a positive number.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// TaskStore is the slice of the entity store client the task service needs.
type TaskStore interface {
	List(ctx context.Context, ownerID string) ([]models.Task, error)
	Insert(ctx context.Context, ownerID string, in repository.TaskInput) (*models.Task, error)
	Update(ctx context.Context, ownerID, id string, in repository.TaskUpdateInput) (*models.Task, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// OrderStore is the slice of the entity store client the order service needs.
type OrderStore interface {
	List(ctx context.Context, ownerID string) ([]models.Order, error)
	Insert(ctx context.Context, ownerID string, in repository.OrderInput) (*models.Order, error)
	Update(ctx context.Context, ownerID, id string, in repository.OrderUpdateInput) (*models.Order, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// ClientStore is the slice of the entity store client the client service needs.
type ClientStore interface {
	List(ctx context.Context, ownerID string) ([]models.Client, error)
	Insert(ctx context.Context, ownerID string, in repository.ClientInput) (*models.Client, error)
	Update(ctx context.Context, ownerID, id string, in repository.ClientUpdateInput) (*models.Client, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// NotifyPolicy controls which mutation outcomes land in the notification
// center. Orders notify on create and status change; tasks and clients do
// not notify at all. That asymmetry is the product's observed behavior,
// expressed here as configuration rather than hard-coded branches.
type NotifyPolicy struct {
	OnCreate       bool
	OnStatusChange bool
}

var (
	OrderNotifyPolicy  = NotifyPolicy{OnCreate: true, OnStatusChange: true}
	TaskNotifyPolicy   = NotifyPolicy{}
	ClientNotifyPolicy = NotifyPolicy{}
)
