package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/atozgarments/garmenttrack/internal/alert"
	"github.com/atozgarments/garmenttrack/internal/models"
	"github.com/atozgarments/garmenttrack/internal/notify"
	"github.com/atozgarments/garmenttrack/internal/repository"
	"github.com/atozgarments/garmenttrack/internal/session"
)

type ClientService struct {
	store   ClientStore
	session *session.Provider
	alerts  alert.Alerter
	notices *notify.Center
	policy  NotifyPolicy

	mu      sync.Mutex
	clients []models.Client
	loading bool
}

func NewClientService(store ClientStore, sess *session.Provider, alerts alert.Alerter, notices *notify.Center, policy NotifyPolicy) *ClientService {
	return &ClientService{
		store:   store,
		session: sess,
		alerts:  alerts,
		notices: notices,
		policy:  policy,
		loading: true,
	}
}

// Load fetches the full collection and replaces the cache wholesale.
func (s *ClientService) Load(ctx context.Context) error {
	if !s.session.Ready() {
		return nil
	}
	ident := s.session.Current()
	if ident == nil {
		return nil
	}

	clients, err := s.store.List(ctx, ident.ID)

	s.mu.Lock()
	s.loading = false
	if err == nil {
		s.clients = clients
	}
	s.mu.Unlock()

	if err != nil {
		log.Printf("load clients: %v", err)
		s.alerts.Show(alert.Error, "Error", "Failed to load clients. Please try again.")
		return err
	}
	return nil
}

// Clients returns a snapshot of the cache, newest first.
func (s *ClientService) Clients() []models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *ClientService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Add creates a client and prepends it to the cache.
func (s *ClientService) Add(ctx context.Context, in repository.ClientInput) (*models.Client, error) {
	ident, err := s.session.Require()
	if err != nil {
		s.alerts.Show(alert.Error, "Authentication required", "Please sign in to add clients.")
		return nil, err
	}

	created, err := s.store.Insert(ctx, ident.ID, in)
	if err != nil {
		log.Printf("add client: %v", err)
		s.alerts.Show(alert.Error, "Error", "Failed to add client. Please try again.")
		return nil, err
	}

	s.mu.Lock()
	s.clients = append([]models.Client{*created}, s.clients...)
	s.mu.Unlock()

	if s.policy.OnCreate {
		s.notices.Add(notify.TypeSuccess, "New Client Added",
			fmt.Sprintf("Client %q has been added.", created.Name))
	}
	s.alerts.Show(alert.Success, "Client added", "Client has been added successfully.")
	return created, nil
}

// Update applies a partial update and replaces the matching cache entry in
// place.
func (s *ClientService) Update(ctx context.Context, id string, in repository.ClientUpdateInput) (*models.Client, error) {
	ident, err := s.session.Require()
	if err != nil {
		s.alerts.Show(alert.Error, "Authentication required", "Please sign in to update clients.")
		return nil, err
	}

	updated, err := s.store.Update(ctx, ident.ID, id, in)
	if err != nil {
		log.Printf("update client %s: %v", id, err)
		s.alerts.Show(alert.Error, "Error", "Failed to update client. Please try again.")
		return nil, err
	}

	s.mu.Lock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	return updated, nil
}

// Delete removes a client from the store and the cache.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	ident, err := s.session.Require()
	if err != nil {
		s.alerts.Show(alert.Error, "Authentication required", "Please sign in to delete clients.")
		return err
	}

	if err := s.store.Delete(ctx, ident.ID, id); err != nil {
		log.Printf("delete client %s: %v", id, err)
		s.alerts.Show(alert.Error, "Error", "Failed to delete client. Please try again.")
		return err
	}

	s.mu.Lock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return nil
}
