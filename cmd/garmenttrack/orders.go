package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/atozgarments/garmenttrack/internal/models"
	"github.com/atozgarments/garmenttrack/internal/repository"
	"github.com/atozgarments/garmenttrack/pkg/money"
)

var (
	orderSearch       string
	orderDescription  string
	orderQuantity     int
	orderSubtotal     float64
	orderPriority     string
	orderDue          string
	orderStatus       string
	orderUpdDesc      string
	orderUpdQuantity  int
	orderTotal        float64
	orderClientName   string
	orderClientEmail  string
	orderClientPhone  string
	orderCreatorName  string
	orderCreatorPhone string
	orderPhotos       []string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage garment orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, optionally filtered by a search query",
	RunE: func(cmd *cobra.Command, args []string) error {
		a.orders.SetSearch(orderSearch)
		renderOrders(a.orders.Filtered())
		return nil
	},
}

var ordersRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recent orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderOrders(a.orders.Recent(a.cfg.App.RecentLimit))
		return nil
	},
}

var ordersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a client and an order for them",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(orderClientName) == "" {
			return nil
		}

		clientIn := repository.ClientInput{Name: orderClientName}
		if orderClientEmail != "" {
			clientIn.Email = &orderClientEmail
		}
		if orderClientPhone != "" {
			clientIn.Phone = &orderClientPhone
		}

		orderIn := repository.OrderInput{
			Quantity:       orderQuantity,
			Priority:       orderPriority,
			SubtotalAmount: orderSubtotal,
			PhotoURLs:      orderPhotos,
		}
		if orderDescription != "" {
			orderIn.Description = &orderDescription
		}
		if orderCreatorName != "" {
			orderIn.CreatorName = &orderCreatorName
		}
		if orderCreatorPhone != "" {
			orderIn.CreatorPhone = &orderCreatorPhone
		}
		if orderDue != "" {
			due, err := time.Parse("2006-01-02", orderDue)
			if err != nil {
				return fmt.Errorf("invalid due date %q: %w", orderDue, err)
			}
			orderIn.DueDate = &due
		}

		order, err := a.intake.CreateOrder(cmd.Context(), clientIn, orderIn)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s (%s)\n", order.OrderNumber, money.FormatINR(order.TotalAmount))
		return nil
	},
}

var ordersUpdateCmd = &cobra.Command{
	Use:   "update <order-id>",
	Short: "Update an order's status or descriptive fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := repository.OrderUpdateInput{}
		if orderStatus != "" {
			if !models.ValidOrderStatus(orderStatus) {
				return fmt.Errorf("unknown status %q", orderStatus)
			}
			in.Status = &orderStatus
		}
		if orderUpdDesc != "" {
			in.Description = &orderUpdDesc
		}
		if orderUpdQuantity > 0 {
			in.Quantity = &orderUpdQuantity
		}
		if orderTotal > 0 {
			in.TotalAmount = &orderTotal
		}

		order, err := a.orders.Update(cmd.Context(), args[0], in)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %s (%s)\n", order.OrderNumber, order.Status)
		return nil
	},
}

var ordersDeleteCmd = &cobra.Command{
	Use:   "delete <order-id>",
	Short: "Delete a pending order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return a.orders.Delete(cmd.Context(), args[0])
	},
}

func init() {
	ordersListCmd.Flags().StringVar(&orderSearch, "search", "", "filter by number, description, status or date")

	ordersAddCmd.Flags().StringVar(&orderClientName, "client-name", "", "client name (required)")
	ordersAddCmd.Flags().StringVar(&orderClientEmail, "client-email", "", "client email")
	ordersAddCmd.Flags().StringVar(&orderClientPhone, "client-phone", "", "client phone")
	ordersAddCmd.Flags().StringVar(&orderDescription, "description", "", "order description")
	ordersAddCmd.Flags().IntVar(&orderQuantity, "quantity", 1, "quantity")
	ordersAddCmd.Flags().Float64Var(&orderSubtotal, "subtotal", 0, "subtotal amount in INR")
	ordersAddCmd.Flags().StringVar(&orderPriority, "priority", models.PriorityMedium, "low|medium|high|urgent")
	ordersAddCmd.Flags().StringVar(&orderDue, "due", "", "due date (YYYY-MM-DD)")
	ordersAddCmd.Flags().StringVar(&orderCreatorName, "creator-name", "", "creator name")
	ordersAddCmd.Flags().StringVar(&orderCreatorPhone, "creator-phone", "", "creator phone")
	ordersAddCmd.Flags().StringSliceVar(&orderPhotos, "photo", nil, "photo URL (repeatable)")

	ordersUpdateCmd.Flags().StringVar(&orderStatus, "status", "", "pending|in_progress|completed|cancelled")
	ordersUpdateCmd.Flags().StringVar(&orderUpdDesc, "description", "", "order description")
	ordersUpdateCmd.Flags().IntVar(&orderUpdQuantity, "quantity", 0, "quantity")
	ordersUpdateCmd.Flags().Float64Var(&orderTotal, "total", 0, "override total amount")

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersRecentCmd)
	ordersCmd.AddCommand(ordersAddCmd)
	ordersCmd.AddCommand(ordersUpdateCmd)
	ordersCmd.AddCommand(ordersDeleteCmd)
}

func renderOrders(orders []models.Order) {
	if len(orders) == 0 {
		fmt.Println("No orders yet. Create your first order to get started.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Number", "Status", "Priority", "Qty", "Total", "Created"})
	for _, o := range orders {
		t.AppendRow(table.Row{
			o.OrderNumber,
			colorStatus(o.Status),
			o.Priority,
			o.Quantity,
			money.FormatINR(o.TotalAmount),
			o.CreatedAt.Format("Jan 2, 15:04"),
		})
	}
	t.Render()
}

func colorStatus(status string) string {
	switch status {
	case models.OrderStatusCompleted:
		return color.GreenString(status)
	case models.OrderStatusInProgress:
		return color.YellowString(status)
	case models.OrderStatusCancelled:
		return color.RedString(status)
	default:
		return status
	}
}
