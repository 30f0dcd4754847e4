package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter_AddNewestFirst(t *testing.T) {
	c := NewCenter()
	c.Add(TypeInfo, "first", "a")
	c.Add(TypeSuccess, "second", "b")
	c.Add(TypeError, "third", "c")

	items := c.List()
	require.Len(t, items, 3)
	assert.Equal(t, "third", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
	assert.Equal(t, "first", items[2].Title)
}

func TestCenter_IDsAreMonotonic(t *testing.T) {
	c := NewCenter()
	a := c.Add(TypeInfo, "a", "")
	b := c.Add(TypeInfo, "b", "")
	assert.Greater(t, b.ID, a.ID)
}

func TestCenter_UnreadCountAndMarkRead(t *testing.T) {
	c := NewCenter()
	first := c.Add(TypeInfo, "a", "")
	c.Add(TypeInfo, "b", "")
	assert.Equal(t, 2, c.UnreadCount())

	assert.True(t, c.MarkRead(first.ID))
	assert.Equal(t, 1, c.UnreadCount())

	assert.False(t, c.MarkRead(9999), "unknown id is a no-op")
	assert.Equal(t, 1, c.UnreadCount())

	c.MarkAllRead()
	assert.Equal(t, 0, c.UnreadCount())
}

func TestCenter_RemoveAndClear(t *testing.T) {
	c := NewCenter()
	first := c.Add(TypeInfo, "a", "")
	c.Add(TypeInfo, "b", "")

	assert.True(t, c.Remove(first.ID))
	assert.Len(t, c.List(), 1)
	assert.False(t, c.Remove(first.ID))

	c.Clear()
	assert.Empty(t, c.List())
	assert.Equal(t, 0, c.UnreadCount())
}

func TestCenter_ConcurrentAdds(t *testing.T) {
	c := NewCenter()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(TypeInfo, "concurrent", "")
		}()
	}
	wg.Wait()

	items := c.List()
	require.Len(t, items, n)

	seen := make(map[int64]bool, n)
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
		seen[item.ID] = true
	}
}

func TestCenter_ListReturnsCopy(t *testing.T) {
	c := NewCenter()
	c.Add(TypeInfo, "a", "")

	items := c.List()
	items[0].Read = true

	assert.Equal(t, 1, c.UnreadCount(), "mutating the returned slice does not touch the center")
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "seconds ago", at: now.Add(-30 * time.Second), want: "just now"},
		{name: "minutes ago", at: now.Add(-5 * time.Minute), want: "5m ago"},
		{name: "hours ago", at: now.Add(-3 * time.Hour), want: "3h ago"},
		{name: "days ago", at: now.Add(-48 * time.Hour), want: "2d ago"},
		{name: "older than a week", at: now.Add(-10 * 24 * time.Hour), want: "Aug 20, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(tt.at, now))
		})
	}
}
