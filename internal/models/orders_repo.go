package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOrdersRepo struct {
	db *gorm.DB
}

func NewGormOrdersRepo(db *gorm.DB) *GormOrdersRepo {
	return &GormOrdersRepo{db: db}
}

// CreatePurchase is the one operation in the system that needs a multi-
// statement atomic unit. The ticket row is locked for the duration of the
// transaction so two buyers racing for the last units cannot both pass the
// availability check; the guarded decrement is a second line of defense.
func (r *GormOrdersRepo) CreatePurchase(ctx context.Context, in PurchaseInput) (*Order, error) {
	var order *Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ticket Ticket
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ticket, "id = ?", in.TicketID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: ticket %s", ErrNotFound, in.TicketID)
			}
			return err
		}

		if ticket.Available < in.Quantity {
			return fmt.Errorf("%w: %d requested, %d available",
				ErrInsufficientInventory, in.Quantity, ticket.Available)
		}

		order = &Order{
			ID:            uuid.New(),
			TicketID:      ticket.ID,
			UserID:        in.UserID,
			Quantity:      in.Quantity,
			TotalAmount:   ticket.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
			CustomerName:  in.CustomerName,
			CustomerEmail: in.CustomerEmail,
			Status:        OrderCompleted,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		res := tx.Model(&Ticket{}).
			Where("id = ? AND available >= ?", ticket.ID, in.Quantity).
			Update("available", gorm.Expr("available - ?", in.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: inventory changed during purchase", ErrInsufficientInventory)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormOrdersRepo) List(ctx context.Context, ticketID *uuid.UUID) ([]Order, error) {
	q := r.db.WithContext(ctx).Preload("Ticket")
	if ticketID != nil {
		q = q.Where("ticket_id = ?", *ticketID)
	}
	var orders []Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
