package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/atozgarments/garmenttrack/internal/models"
)

const taskColumns = "id, title, description, status, priority, assignee_id, order_id, due_date, created_at, updated_at"

type TaskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// TaskInput carries the fields for a new task.
type TaskInput struct {
	Title       string
	Description *string
	Status      string
	Priority    string
	AssigneeID  *string
	OrderID     *string
	DueDate     *time.Time
}

// TaskUpdateInput carries a partial update; nil fields are left untouched.
type TaskUpdateInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	AssigneeID  *string
	DueDate     *time.Time
}

// List returns all tasks owned by ownerID, newest first.
func (r *TaskRepository) List(ctx context.Context, ownerID string) ([]models.Task, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE user_id = $1 ORDER BY created_at DESC",
		taskColumns,
	)

	var tasks []models.Task
	if err := r.db.SelectContext(ctx, &tasks, query, ownerID); err != nil {
		return nil, remoteErr("list tasks", err)
	}
	return tasks, nil
}

// Insert creates a task stamped with ownerID and returns the stored row.
func (r *TaskRepository) Insert(ctx context.Context, ownerID string, in TaskInput) (*models.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, user_id, title, description, status, priority, assignee_id, order_id, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		RETURNING %s`, taskColumns)

	var task models.Task
	err := r.db.GetContext(ctx, &task, query,
		uuid.NewString(), ownerID, in.Title, in.Description,
		in.Status, in.Priority, in.AssigneeID, in.OrderID, in.DueDate,
	)
	if err != nil {
		return nil, remoteErr("insert task", err)
	}
	return &task, nil
}

// Update applies the non-nil fields of in to the task with the given id,
// scoped to ownerID, and returns the updated row.
func (r *TaskRepository) Update(ctx context.Context, ownerID, id string, in TaskUpdateInput) (*models.Task, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{}
	next := 1

	set := func(col string, v interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, next))
		args = append(args, v)
		next++
	}

	if in.Title != nil {
		set("title", *in.Title)
	}
	if in.Description != nil {
		set("description", *in.Description)
	}
	if in.Status != nil {
		set("status", *in.Status)
	}
	if in.Priority != nil {
		set("priority", *in.Priority)
	}
	if in.AssigneeID != nil {
		set("assignee_id", *in.AssigneeID)
	}
	if in.DueDate != nil {
		set("due_date", *in.DueDate)
	}

	query := fmt.Sprintf(
		"UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		strings.Join(sets, ", "), next, next+1, taskColumns,
	)
	args = append(args, id, ownerID)

	var task models.Task
	if err := r.db.GetContext(ctx, &task, query, args...); err != nil {
		return nil, remoteErr("update task", err)
	}
	return &task, nil
}

// Delete removes the task with the given id within the owner's scope.
func (r *TaskRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, ownerID)
	if err != nil {
		return remoteErr("delete task", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
