// Package analytics derives chart and dashboard figures from the cached
// order and task snapshots. Everything here is pure: callers pass the
// current cache and a reference time and get values back.
package analytics

import (
	"strings"
	"time"

	"github.com/atozgarments/garmenttrack/internal/models"
)

// targetFactor is the fixed 20% stretch applied to monthly sales to derive
// the target line.
const targetFactor = 1.2

// MonthSales is one entry of the trailing six-month sales series.
type MonthSales struct {
	Month  string
	Sales  float64
	Target float64
	Orders int
}

// MonthlySales computes the trailing six calendar months ending at now's
// month. Months with no orders are present with zero sales, target and
// count; they are never omitted.
func MonthlySales(orders []models.Order, now time.Time) []MonthSales {
	series := make([]MonthSales, 0, 6)

	for i := 5; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)

		var sales float64
		count := 0
		for _, o := range orders {
			if o.CreatedAt.Year() == first.Year() && o.CreatedAt.Month() == first.Month() {
				sales += o.TotalAmount
				count++
			}
		}

		series = append(series, MonthSales{
			Month:  first.Format("Jan"),
			Sales:  sales,
			Target: sales * targetFactor,
			Orders: count,
		})
	}
	return series
}

// Count is one histogram bucket. Name is the display form of the bucket
// (underscores replaced with spaces).
type Count struct {
	Name  string
	Value int
}

// StatusCounts returns per-status order counts in first-seen order.
func StatusCounts(orders []models.Order) []Count {
	keys := make([]string, 0)
	counts := make(map[string]int)
	for _, o := range orders {
		if _, seen := counts[o.Status]; !seen {
			keys = append(keys, o.Status)
		}
		counts[o.Status]++
	}
	return buckets(keys, counts)
}

// PriorityCounts returns per-priority order counts in first-seen order.
func PriorityCounts(orders []models.Order) []Count {
	keys := make([]string, 0)
	counts := make(map[string]int)
	for _, o := range orders {
		if _, seen := counts[o.Priority]; !seen {
			keys = append(keys, o.Priority)
		}
		counts[o.Priority]++
	}
	return buckets(keys, counts)
}

// TaskStatusCounts returns per-status task counts in first-seen order.
func TaskStatusCounts(tasks []models.Task) []Count {
	keys := make([]string, 0)
	counts := make(map[string]int)
	for _, t := range tasks {
		if _, seen := counts[t.Status]; !seen {
			keys = append(keys, t.Status)
		}
		counts[t.Status]++
	}
	return buckets(keys, counts)
}

func buckets(keys []string, counts map[string]int) []Count {
	out := make([]Count, 0, len(keys))
	for _, k := range keys {
		out = append(out, Count{
			Name:  strings.ReplaceAll(k, "_", " "),
			Value: counts[k],
		})
	}
	return out
}

// Stats is the dashboard headline block.
type Stats struct {
	TotalSales     float64
	PendingOrders  int
	CompletedTasks int
	OverdueItems   int
}

// Snapshot computes the headline numbers from the current caches. Overdue
// items are orders or tasks whose due date has passed and which are not yet
// completed (or cancelled, for orders).
func Snapshot(orders []models.Order, tasks []models.Task, now time.Time) Stats {
	var s Stats

	for _, o := range orders {
		s.TotalSales += o.TotalAmount
		if o.Status == models.OrderStatusPending {
			s.PendingOrders++
		}
		if o.DueDate.Valid && o.DueDate.Time.Before(now) &&
			o.Status != models.OrderStatusCompleted && o.Status != models.OrderStatusCancelled {
			s.OverdueItems++
		}
	}

	for _, t := range tasks {
		if t.Status == models.TaskStatusCompleted {
			s.CompletedTasks++
		}
		if t.DueDate.Valid && t.DueDate.Time.Before(now) && t.Status != models.TaskStatusCompleted {
			s.OverdueItems++
		}
	}

	return s
}
