// Package notify holds the in-memory notification center: a process-lifetime
// list of user-visible alerts produced by entity mutations. Nothing here is
// persisted; the list starts empty on every run.
package notify

import (
	"fmt"
	"sync"
	"time"
)

// Notification types
const (
	TypeInfo    = "info"
	TypeSuccess = "success"
	TypeWarning = "warning"
	TypeError   = "error"
)

type Notification struct {
	ID        int64
	Type      string
	Title     string
	Message   string
	CreatedAt time.Time
	Read      bool
}

// Center is an explicitly scoped notification container. Construct one per
// application session and inject it; it is deliberately not a package global.
type Center struct {
	mu     sync.Mutex
	nextID int64
	items  []Notification
}

func NewCenter() *Center {
	return &Center{}
}

// Add appends a notification at the head of the list (newest first) and
// returns it. Concurrent adds are serialized; both survive in arrival order.
func (c *Center) Add(kind, title, message string) Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	n := Notification{
		ID:        c.nextID,
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
	c.items = append([]Notification{n}, c.items...)
	return n
}

// List returns a copy of the notifications, newest first.
func (c *Center) List() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// UnreadCount returns the number of unread notifications.
func (c *Center) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, n := range c.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flags one notification as read. Returns false for unknown ids.
func (c *Center) MarkRead(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead flags every notification as read.
func (c *Center) MarkAllRead() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		c.items[i].Read = true
	}
}

// Remove deletes one notification. Returns false for unknown ids.
func (c *Center) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every notification.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// RelativeTime renders a timestamp the way the notification panel shows it:
// "just now", "5m ago", "3h ago", "2d ago", or the date for older entries.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
