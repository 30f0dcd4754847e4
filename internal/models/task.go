package models

import (
	"database/sql"
	"time"
)

// Task status constants
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Priority constants, shared by tasks and orders
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type Task struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	AssigneeID  sql.NullString `db:"assignee_id"`
	OrderID     sql.NullString `db:"order_id"`
	DueDate     sql.NullTime   `db:"due_date"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// taskToggleCycle drives the quick status toggle:
// todo -> in_progress -> completed -> todo.
var taskToggleCycle = map[string]string{
	TaskStatusTodo:       TaskStatusInProgress,
	TaskStatusInProgress: TaskStatusCompleted,
	TaskStatusCompleted:  TaskStatusTodo,
}

// NextTaskStatus returns the next status in the toggle cycle. The second
// return value is false when the current status is not a known task status.
func NextTaskStatus(current string) (string, bool) {
	next, ok := taskToggleCycle[current]
	return next, ok
}

// ValidTaskStatus reports whether s is a known task status.
func ValidTaskStatus(s string) bool {
	_, ok := taskToggleCycle[s]
	return ok
}

// ValidPriority reports whether p is a known priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
