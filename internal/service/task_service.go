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

type TaskService struct {
	store   TaskStore
	session *session.Provider
	alerts  alert.Alerter
	notices *notify.Center
	policy  NotifyPolicy

	mu      sync.Mutex
	tasks   []models.Task
	loading bool
}

func NewTaskService(store TaskStore, sess *session.Provider, alerts alert.Alerter, notices *notify.Center, policy NotifyPolicy) *TaskService {
	return &TaskService{
		store:   store,
		session: sess,
		alerts:  alerts,
		notices: notices,
		policy:  policy,
		loading: true,
	}
}

// Load fetches the full collection and replaces the cache wholesale. It is
// the only re-fetch point and runs once per identity change; nothing else
// triggers it.
func (s *TaskService) Load(ctx context.Context) error {
	if !s.session.Ready() {
		return nil
	}
	ident := s.session.Current()
	if ident == nil {
		return nil
	}

	tasks, err := s.store.List(ctx, ident.ID)

	s.mu.Lock()
	s.loading = false
	if err == nil {
		s.tasks = tasks
	}
	s.mu.Unlock()

	if err != nil {
		log.Printf("load tasks: %v", err)
		s.alerts.Show(alert.Error, "Error", "Failed to load tasks. Please try again.")
		return err
	}
	return nil
}

// Tasks returns a snapshot of the cache, newest first.
func (s *TaskService) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *TaskService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Add creates a task and prepends it to the cache.
func (s *TaskService) Add(ctx context.Context, in repository.TaskInput) (*models.Task, error) {
	ident, err := s.session.Require()
	if err != nil {
		s.alerts.Show(alert.Error, "Authentication required", "Please sign in to add tasks.")
		return nil, err
	}

	created, err := s.store.Insert(ctx, ident.ID, in)
	if err != nil {
		log.Printf("add task: %v", err)
		s.alerts.Show(alert.Error, "Error", "Failed to create task. Please try again.")
		return nil, err
	}

	s.mu.Lock()
	s.tasks = append([]models.Task{*created}, s.tasks...)
	s.mu.Unlock()

	if s.policy.OnCreate {
		s.notices.Add(notify.TypeSuccess, "New Task Created",
			fmt.Sprintf("Task %q has been created.", created.Title))
	}
	s.alerts.Show(alert.Success, "Task created", "Your task has been created successfully.")
	return created, nil
}

// Update applies a partial update and replaces the matching cache entry in
// place. A task missing from the cache leaves the cache untouched.
func (s *TaskService) Update(ctx context.Context, id string, in repository.TaskUpdateInput) (*models.Task, error) {
	ident, err := s.session.Require()
	if err != nil {
		s.alerts.Show(alert.Error, "Authentication required", "Please sign in to update tasks.")
		return nil, err
	}

	updated, err := s.store.Update(ctx, ident.ID, id, in)
	if err != nil {
		log.Printf("update task %s: %v", id, err)
		s.alerts.Show(alert.Error, "Error", "Failed to update task. Please try again.")
		return nil, err
	}

	s.mu.Lock()
	var prevStatus string
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			prevStatus = s.tasks[i].Status
			s.tasks[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	if s.policy.OnStatusChange && in.Status != nil && *in.Status != prevStatus {
		s.notices.Add(notify.TypeInfo, "Task Status Updated",
			fmt.Sprintf("Task %q is now %s.", updated.Title, updated.Status))
	}
	return updated, nil
}

// Toggle advances the task's status along the todo -> in_progress ->
// completed cycle.
func (s *TaskService) Toggle(ctx context.Context, id string) (*models.Task, error) {
	s.mu.Lock()
	current := ""
	found := false
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			current = s.tasks[i].Status
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return nil, repository.ErrNotFound
	}
	next, ok := models.NextTaskStatus(current)
	if !ok {
		return nil, fmt.Errorf("task %s has unknown status %q", id, current)
	}
	return s.Update(ctx, id, repository.TaskUpdateInput{Status: &next})
}

// Delete removes a task from the store and the cache. Deleting an already
// deleted task reports not-found and leaves the cache alone.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	ident, err := s.session.Require()
	if err != nil {
		s.alerts.Show(alert.Error, "Authentication required", "Please sign in to delete tasks.")
		return err
	}

	if err := s.store.Delete(ctx, ident.ID, id); err != nil {
		log.Printf("delete task %s: %v", id, err)
		s.alerts.Show(alert.Error, "Error", "Failed to delete task. Please try again.")
		return err
	}

	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.alerts.Show(alert.Success, "Task deleted", "Task has been deleted successfully.")
	return nil
}
