package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/atozgarments/garmenttrack/internal/analytics"
	"github.com/atozgarments/garmenttrack/pkg/money"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show sales and workload analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		orders := a.orders.Orders()
		tasks := a.tasks.Tasks()

		stats := analytics.Snapshot(orders, tasks, now)
		fmt.Printf("Total sales: %s   Pending orders: %d   Completed tasks: %d   Overdue: %d\n\n",
			money.FormatINR(stats.TotalSales), stats.PendingOrders, stats.CompletedTasks, stats.OverdueItems)

		sales := table.NewWriter()
		sales.SetOutputMirror(os.Stdout)
		sales.SetStyle(table.StyleLight)
		sales.SetTitle("Sales Performance (last 6 months)")
		sales.AppendHeader(table.Row{"Month", "Sales", "Target", "Orders"})
		for _, m := range analytics.MonthlySales(orders, now) {
			sales.AppendRow(table.Row{m.Month, money.FormatINR(m.Sales), money.FormatINR(m.Target), m.Orders})
		}
		sales.Render()

		renderCounts("Order Status Distribution", analytics.StatusCounts(orders))
		renderCounts("Order Priority Distribution", analytics.PriorityCounts(orders))
		renderCounts("Task Status Distribution", analytics.TaskStatusCounts(tasks))
		return nil
	},
}

func renderCounts(title string, counts []analytics.Count) {
	if len(counts) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Name", "Count"})
	for _, c := range counts {
		t.AppendRow(table.Row{c.Name, c.Value})
	}
	t.Render()
}
