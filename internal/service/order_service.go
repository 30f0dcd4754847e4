package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/atozgarments/garmenttrack/internal/alert"
	"github.com/atozgarments/garmenttrack/internal/models"
	"github.com/atozgarments/garmenttrack/internal/notify"
	"github.com/atozgarments/garmenttrack/internal/repository"
	"github.com/atozgarments/garmenttrack/internal/session"
)

// searchDateLayout is how creation dates are rendered for search matching.
const searchDateLayout = "Jan 2, 2006"

type OrderService struct {
	store   OrderStore
	session *session.Provider
	alerts  alert.Alerter
	notices *notify.Center
	policy  NotifyPolicy

	mu          sync.Mutex
	orders      []models.Order
	loading     bool
	searchQuery string
}

func NewOrderService(store OrderStore, sess *session.Provider, alerts alert.Alerter, notices *notify.Center, policy NotifyPolicy) *OrderService {
	return &OrderService{
		store:   store,
		session: sess,
		alerts:  alerts,
		notices: notices,
		policy:  policy,
		loading: true,
	}
}

// Load fetches the full collection and replaces the cache wholesale. Runs
// once per identity change; nothing else triggers a re-fetch.
func (s *OrderService) Load(ctx context.Context) error {
	if !s.session.Ready() {
		return nil
	}
	ident := s.session.Current()
	if ident == nil {
		return nil
	}

	orders, err := s.store.List(ctx, ident.ID)

	s.mu.Lock()
	s.loading = false
	if err == nil {
		s.orders = orders
	}
	s.mu.Unlock()

	if err != nil {
		log.Printf("load orders: %v", err)
		s.alerts.Show(alert.Error, "Error", "Failed to load orders. Please try again.")
		return err
	}
	return nil
}

// Orders returns the raw cache snapshot, newest first. Analytics reads this
// view, not the search-filtered one.
func (s *OrderService) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// SetSearch sets the search query used by Filtered.
func (s *OrderService) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

func (s *OrderService) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// Filtered returns the cache filtered by a case-insensitive substring match
// of the search query against order number, description, status, or the
// creation date string. It is recomputed on every call; an empty query
// passes everything through.
func (s *OrderService) Filtered() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.searchQuery == "" {
		out := make([]models.Order, len(s.orders))
		copy(out, s.orders)
		return out
	}

	query := strings.ToLower(s.searchQuery)
	var out []models.Order
	for _, o := range s.orders {
		if matchesOrder(&o, query) {
			out = append(out, o)
		}
	}
	return out
}

func matchesOrder(o *models.Order, query string) bool {
	if strings.Contains(strings.ToLower(o.OrderNumber), query) {
		return true
	}
	if o.Description.Valid && strings.Contains(strings.ToLower(o.Description.String), query) {
		return true
	}
	if strings.Contains(strings.ToLower(o.Status), query) {
		return true
	}
	return strings.Contains(strings.ToLower(o.CreatedAt.Format(searchDateLayout)), query)
}

// Recent returns the first n orders of the filtered view.
func (s *OrderService) Recent(n int) []models.Order {
	filtered := s.Filtered()
	if len(filtered) > n {
		filtered = filtered[:n]
	}
	return filtered
}

// Add creates an order and prepends it to the cache. An empty order number
// is filled in with a generated, time-derived one.
func (s *OrderService) Add(ctx context.Context, in repository.OrderInput) (*models.Order, error) {
	ident, err := s.session.Require()
	if err != nil {
		s.alerts.Show(alert.Error, "Authentication required", "Please sign in to create orders.")
		return nil, err
	}

	if in.Quantity <= 0 {
		s.alerts.Show(alert.Error, "Error", "Quantity must be a positive number.")
		return nil, ErrInvalidQuantity
	}

	if in.OrderNumber == "" {
		in.OrderNumber = models.NewOrderNumber(time.Now())
	}
	if in.Status == "" {
		in.Status = models.OrderStatusPending
	}

	created, err := s.store.Insert(ctx, ident.ID, in)
	if err != nil {
		log.Printf("add order: %v", err)
		s.alerts.Show(alert.Error, "Error", "Failed to create order. Please try again.")
		return nil, err
	}

	s.mu.Lock()
	s.orders = append([]models.Order{*created}, s.orders...)
	s.mu.Unlock()

	if s.policy.OnCreate {
		s.notices.Add(notify.TypeSuccess, "New Order Created",
			fmt.Sprintf("Order %s has been created successfully.", created.OrderNumber))
	}
	s.alerts.Show(alert.Success, "Order created", "Your order has been created successfully.")
	return created, nil
}

// Update applies a partial update and replaces the matching cache entry in
// place. Descriptive edits are refused locally once the order has left
// pending; status changes are validated against the transition table. A
// status change that lands emits at most one notification.
func (s *OrderService) Update(ctx context.Context, id string, in repository.OrderUpdateInput) (*models.Order, error) {
	ident, err := s.session.Require()
	if err != nil {
		s.alerts.Show(alert.Error, "Authentication required", "Please sign in to update orders.")
		return nil, err
	}

	if in.Quantity != nil && *in.Quantity <= 0 {
		s.alerts.Show(alert.Error, "Error", "Quantity must be a positive number.")
		return nil, ErrInvalidQuantity
	}

	s.mu.Lock()
	var prev *models.Order
	for i := range s.orders {
		if s.orders[i].ID == id {
			copied := s.orders[i]
			prev = &copied
			break
		}
	}
	s.mu.Unlock()

	if prev != nil {
		if in.Status != nil && *in.Status != prev.Status && !models.CanTransitionOrder(prev.Status, *in.Status) {
			s.alerts.Show(alert.Error, "Error",
				fmt.Sprintf("Order cannot move from %s to %s.", prev.Status, *in.Status))
			return nil, ErrBadTransition
		}
		if touchesDescriptiveFields(in) && !prev.Editable() {
			s.alerts.Show(alert.Error, "Error", "Only pending orders can be edited.")
			return nil, ErrNotEditable
		}
	}

	updated, err := s.store.Update(ctx, ident.ID, id, in)
	if err != nil {
		log.Printf("update order %s: %v", id, err)
		s.alerts.Show(alert.Error, "Error", "Failed to update order. Please try again.")
		return nil, err
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	if s.policy.OnStatusChange && in.Status != nil && (prev == nil || prev.Status != *in.Status) {
		kind := notify.TypeInfo
		if *in.Status == models.OrderStatusCompleted {
			kind = notify.TypeSuccess
		}
		s.notices.Add(kind, "Order Status Updated",
			fmt.Sprintf("Order %s: %s", updated.OrderNumber, models.StatusMessage(*in.Status)))
	}
	s.alerts.Show(alert.Success, "Order updated", "Order has been updated successfully.")
	return updated, nil
}

// touchesDescriptiveFields reports whether the update carries anything
// beyond a status change.
func touchesDescriptiveFields(in repository.OrderUpdateInput) bool {
	return in.OrderNumber != nil || in.Description != nil || in.Quantity != nil ||
		in.Priority != nil || in.ClientID != nil || in.DueDate != nil ||
		in.SubtotalAmount != nil || in.GSTAmount != nil || in.TotalAmount != nil ||
		in.PhotoURLs != nil
}

// Delete removes a pending order from the store and the cache.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	ident, err := s.session.Require()
	if err != nil {
		s.alerts.Show(alert.Error, "Authentication required", "Please sign in to delete orders.")
		return err
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id && !s.orders[i].Editable() {
			s.mu.Unlock()
			s.alerts.Show(alert.Error, "Error", "Only pending orders can be deleted.")
			return ErrNotEditable
		}
	}
	s.mu.Unlock()

	if err := s.store.Delete(ctx, ident.ID, id); err != nil {
		log.Printf("delete order %s: %v", id, err)
		s.alerts.Show(alert.Error, "Error", "Failed to delete order. Please try again.")
		return err
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.alerts.Show(alert.Success, "Order deleted", "Order has been deleted successfully.")
	return nil
}
