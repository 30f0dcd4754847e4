package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atozgarments/garmenttrack/internal/alert"
	"github.com/atozgarments/garmenttrack/internal/models"
	"github.com/atozgarments/garmenttrack/internal/repository"
	"github.com/atozgarments/garmenttrack/internal/session"
	"github.com/atozgarments/garmenttrack/pkg/auth"
)

// newTestSession returns a provider with a signed-in identity, going through
// the real token validation path.
func newTestSession(t *testing.T) *session.Provider {
	t.Helper()
	tokens := auth.NewTokenManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	provider := session.NewProvider(tokens)

	access, _, _, err := tokens.GenerateTokenPair("user-1", "owner@example.com", "Owner")
	require.NoError(t, err)

	_, err = provider.Authenticate(access)
	require.NoError(t, err)
	return provider
}

// newSignedOutSession returns a ready provider with no identity.
func newSignedOutSession(t *testing.T) *session.Provider {
	t.Helper()
	tokens := auth.NewTokenManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	provider := session.NewProvider(tokens)
	provider.Clear()
	return provider
}

type alertEntry struct {
	kind    alert.Kind
	title   string
	message string
}

// recordingAlerter captures alerts for assertions.
type recordingAlerter struct {
	mu      sync.Mutex
	entries []alertEntry
}

func (r *recordingAlerter) Show(kind alert.Kind, title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, alertEntry{kind: kind, title: title, message: message})
}

func (r *recordingAlerter) errorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, e := range r.entries {
		if e.kind == alert.Error {
			count++
		}
	}
	return count
}

var errBoom = errors.New("boom")

// memTaskStore is an in-memory stand-in for the remote task collection.
type memTaskStore struct {
	mu    sync.Mutex
	seq   int
	rows  []models.Task
	calls int

	failList   bool
	failInsert bool
	failUpdate bool
	failDelete bool
}

func (s *memTaskStore) List(ctx context.Context, ownerID string) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failList {
		return nil, &repository.RemoteError{Op: "list tasks", Err: errBoom}
	}
	out := make([]models.Task, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *memTaskStore) Insert(ctx context.Context, ownerID string, in repository.TaskInput) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failInsert {
		return nil, &repository.RemoteError{Op: "insert task", Err: errBoom}
	}
	s.seq++
	task := models.Task{
		ID:        fmt.Sprintf("task-%d", s.seq),
		Title:     in.Title,
		Status:    in.Status,
		Priority:  in.Priority,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.rows = append(s.rows, task)
	return &task, nil
}

func (s *memTaskStore) Update(ctx context.Context, ownerID, id string, in repository.TaskUpdateInput) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failUpdate {
		return nil, &repository.RemoteError{Op: "update task", Err: errBoom}
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			if in.Title != nil {
				s.rows[i].Title = *in.Title
			}
			if in.Status != nil {
				s.rows[i].Status = *in.Status
			}
			if in.Priority != nil {
				s.rows[i].Priority = *in.Priority
			}
			s.rows[i].UpdatedAt = time.Now()
			task := s.rows[i]
			return &task, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memTaskStore) Delete(ctx context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failDelete {
		return &repository.RemoteError{Op: "delete task", Err: errBoom}
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// memOrderStore is an in-memory stand-in for the remote order collection.
type memOrderStore struct {
	mu    sync.Mutex
	seq   int
	rows  []models.Order
	calls int

	failList   bool
	failInsert bool
	failUpdate bool
	failDelete bool
}

func (s *memOrderStore) List(ctx context.Context, ownerID string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failList {
		return nil, &repository.RemoteError{Op: "list orders", Err: errBoom}
	}
	out := make([]models.Order, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *memOrderStore) Insert(ctx context.Context, ownerID string, in repository.OrderInput) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failInsert {
		return nil, &repository.RemoteError{Op: "insert order", Err: errBoom}
	}
	s.seq++
	order := models.Order{
		ID:             fmt.Sprintf("order-%d", s.seq),
		OrderNumber:    in.OrderNumber,
		Quantity:       in.Quantity,
		Status:         in.Status,
		Priority:       in.Priority,
		SubtotalAmount: in.SubtotalAmount,
		GSTAmount:      in.GSTAmount,
		TotalAmount:    in.TotalAmount,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if in.Description != nil {
		order.Description.String = *in.Description
		order.Description.Valid = true
	}
	if in.ClientID != nil {
		order.ClientID.String = *in.ClientID
		order.ClientID.Valid = true
	}
	s.rows = append(s.rows, order)
	return &order, nil
}

func (s *memOrderStore) Update(ctx context.Context, ownerID, id string, in repository.OrderUpdateInput) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failUpdate {
		return nil, &repository.RemoteError{Op: "update order", Err: errBoom}
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			if in.Description != nil {
				s.rows[i].Description.String = *in.Description
				s.rows[i].Description.Valid = true
			}
			if in.Status != nil {
				s.rows[i].Status = *in.Status
			}
			if in.Quantity != nil {
				s.rows[i].Quantity = *in.Quantity
			}
			if in.TotalAmount != nil {
				s.rows[i].TotalAmount = *in.TotalAmount
			}
			s.rows[i].UpdatedAt = time.Now()
			order := s.rows[i]
			return &order, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memOrderStore) Delete(ctx context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failDelete {
		return &repository.RemoteError{Op: "delete order", Err: errBoom}
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// memClientStore is an in-memory stand-in for the remote client collection.
type memClientStore struct {
	mu    sync.Mutex
	seq   int
	rows  []models.Client
	calls int

	failInsert bool
}

func (s *memClientStore) List(ctx context.Context, ownerID string) ([]models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	out := make([]models.Client, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *memClientStore) Insert(ctx context.Context, ownerID string, in repository.ClientInput) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failInsert {
		return nil, &repository.RemoteError{Op: "insert client", Err: errBoom}
	}
	s.seq++
	client := models.Client{
		ID:        fmt.Sprintf("client-%d", s.seq),
		Name:      in.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.rows = append(s.rows, client)
	return &client, nil
}

func (s *memClientStore) Update(ctx context.Context, ownerID, id string, in repository.ClientUpdateInput) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for i := range s.rows {
		if s.rows[i].ID == id {
			if in.Name != nil {
				s.rows[i].Name = *in.Name
			}
			client := s.rows[i]
			return &client, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memClientStore) Delete(ctx context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
