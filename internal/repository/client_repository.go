package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/atozgarments/garmenttrack/internal/models"
)

const clientColumns = "id, name, email, phone, address, created_at, updated_at"

type ClientRepository struct {
	db *sqlx.DB
}

func NewClientRepository(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type ClientInput struct {
	Name    string
	Email   *string
	Phone   *string
	Address *string
}

type ClientUpdateInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// List returns all clients owned by ownerID, newest first.
func (r *ClientRepository) List(ctx context.Context, ownerID string) ([]models.Client, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM clients WHERE user_id = $1 ORDER BY created_at DESC",
		clientColumns,
	)

	var clients []models.Client
	if err := r.db.SelectContext(ctx, &clients, query, ownerID); err != nil {
		return nil, remoteErr("list clients", err)
	}
	return clients, nil
}

// Insert creates a client stamped with ownerID and returns the stored row.
func (r *ClientRepository) Insert(ctx context.Context, ownerID string, in ClientInput) (*models.Client, error) {
	query := fmt.Sprintf(`
		INSERT INTO clients (id, user_id, name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING %s`, clientColumns)

	var client models.Client
	err := r.db.GetContext(ctx, &client, query,
		uuid.NewString(), ownerID, in.Name, in.Email, in.Phone, in.Address,
	)
	if err != nil {
		return nil, remoteErr("insert client", err)
	}
	return &client, nil
}

// Update applies the non-nil fields of in to the client with the given id,
// scoped to ownerID, and returns the updated row.
func (r *ClientRepository) Update(ctx context.Context, ownerID, id string, in ClientUpdateInput) (*models.Client, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{}
	next := 1

	set := func(col string, v interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, next))
		args = append(args, v)
		next++
	}

	if in.Name != nil {
		set("name", *in.Name)
	}
	if in.Email != nil {
		set("email", *in.Email)
	}
	if in.Phone != nil {
		set("phone", *in.Phone)
	}
	if in.Address != nil {
		set("address", *in.Address)
	}

	query := fmt.Sprintf(
		"UPDATE clients SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		strings.Join(sets, ", "), next, next+1, clientColumns,
	)
	args = append(args, id, ownerID)

	var client models.Client
	if err := r.db.GetContext(ctx, &client, query, args...); err != nil {
		return nil, remoteErr("update client", err)
	}
	return &client, nil
}

// Delete removes the client with the given id within the owner's scope.
func (r *ClientRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM clients WHERE id = $1 AND user_id = $2", id, ownerID)
	if err != nil {
		return remoteErr("delete client", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
