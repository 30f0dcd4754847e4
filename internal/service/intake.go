package service

import (
	"context"
	"log"

	"github.com/atozgarments/garmenttrack/internal/models"
	"github.com/atozgarments/garmenttrack/internal/repository"
	"github.com/atozgarments/garmenttrack/pkg/money"
)

// Intake runs the two-step order creation flow: create the client, then the
// order referencing it. The two writes are independent remote calls with no
// transaction across them. When the order write fails after the client write
// succeeded, the client is kept; the orphan is logged and accepted.
type Intake struct {
	clients *ClientService
	orders  *OrderService
}

func NewIntake(clients *ClientService, orders *OrderService) *Intake {
	return &Intake{clients: clients, orders: orders}
}

// CreateOrder creates the client, fills in the order's GST split from its
// subtotal, and creates the order. Amount fields already set on the input
// are left alone.
func (i *Intake) CreateOrder(ctx context.Context, clientIn repository.ClientInput, orderIn repository.OrderInput) (*models.Order, error) {
	client, err := i.clients.Add(ctx, clientIn)
	if err != nil {
		return nil, err
	}

	orderIn.ClientID = &client.ID
	if orderIn.GSTAmount == 0 && orderIn.TotalAmount == 0 && orderIn.SubtotalAmount > 0 {
		split := money.CalculateGST(orderIn.SubtotalAmount)
		orderIn.GSTAmount = split.GST
		orderIn.TotalAmount = split.Total
	}

	order, err := i.orders.Add(ctx, orderIn)
	if err != nil {
		log.Printf("order creation failed after client %s was created; keeping the client", client.ID)
		return nil, err
	}
	return order, nil
}
