package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

// Payment is simulated; orders are recorded completed at purchase time.
const OrderCompleted OrderStatus = "COMPLETED"

// Order is an immutable purchase record. TotalAmount snapshots price x
// quantity at purchase time and is never recomputed.
type Order struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TicketID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"ticketId"`
	Ticket        *Ticket         `gorm:"foreignKey:TicketID" json:"ticket,omitempty"`
	UserID        *uuid.UUID      `gorm:"type:uuid;index" json:"userId"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"totalAmount"`
	CustomerName  string          `gorm:"not null" json:"customerName"`
	CustomerEmail string          `gorm:"not null" json:"customerEmail"`
	Status        OrderStatus     `gorm:"type:varchar(16);not null" json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PurchaseInput is the body of POST /api/tickets/purchase.
type PurchaseInput struct {
	TicketID      uuid.UUID  `json:"ticketId" validate:"required"`
	Quantity      int        `json:"quantity" validate:"required,gt=0"`
	CustomerName  string     `json:"customerName" validate:"required"`
	CustomerEmail string     `json:"customerEmail" validate:"required,email"`
	UserID        *uuid.UUID `json:"userId"`
}
