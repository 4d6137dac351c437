package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/adjei-dev/stagepress/internal/models"
	"github.com/adjei-dev/stagepress/internal/monitoring"
)

// PurchaseService fronts the purchase transaction coordinator. All atomicity
// lives in the repository; this layer validates input and classifies
// outcomes. Failed purchases are surfaced directly, never retried.
type PurchaseService struct {
	orders models.OrdersRepo
}

func NewPurchaseService(orders models.OrdersRepo) *PurchaseService {
	return &PurchaseService{orders: orders}
}

func (ps *PurchaseService) Purchase(ctx context.Context, in models.PurchaseInput) (*models.Order, error) {
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: missing required fields", models.ErrValidation)
	}

	order, err := ps.orders.CreatePurchase(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInsufficientInventory):
			monitoring.RecordPurchase(monitoring.PurchaseInsufficient, 0)
		default:
			monitoring.RecordPurchase(monitoring.PurchaseRejected, 0)
		}
		return nil, err
	}

	monitoring.RecordPurchase(monitoring.PurchaseCompleted, order.Quantity)
	return order, nil
}

func (ps *PurchaseService) ListOrders(ctx context.Context, ticketID *uuid.UUID) ([]models.Order, error) {
	return ps.orders.List(ctx, ticketID)
}
