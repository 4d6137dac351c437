package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// EventStage is the lifecycle stage derived from the persisted flags.
// The columns stay as three flags for compatibility with the admin edit
// surface; every mutation goes through the transition methods below so the
// flags cannot drift into contradictory combinations.
type EventStage string

const (
	StagePendingPayment  EventStage = "pending_payment"
	StagePendingApproval EventStage = "pending_approval"
	StageLive            EventStage = "live"
)

type Event struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string        `gorm:"not null" json:"title"`
	Slug          string        `gorm:"uniqueIndex;not null" json:"slug"`
	Description   string        `gorm:"type:text" json:"description"`
	Date          time.Time     `gorm:"not null;index" json:"date"`
	Location      string        `gorm:"not null" json:"location"`
	Image         string        `json:"image"`
	Category      string        `gorm:"index" json:"category"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(16);not null;default:PENDING" json:"paymentStatus"`
	AdminApproved bool          `gorm:"not null;default:false" json:"adminApproved"`
	Published     bool          `gorm:"not null;default:false" json:"published"`
	CreatorID     *uuid.UUID    `gorm:"type:uuid;index" json:"creatorId"`
	Creator       *User         `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Tickets       []Ticket      `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"tickets"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// PubliclyVisible reports whether the event passes the public gate: paid,
// approved and published all at once.
func (e *Event) PubliclyVisible() bool {
	return e.PaymentStatus == PaymentPaid && e.AdminApproved && e.Published
}

func (e *Event) Stage() EventStage {
	switch {
	case e.PaymentStatus != PaymentPaid:
		return StagePendingPayment
	case !e.AdminApproved || !e.Published:
		return StagePendingApproval
	default:
		return StageLive
	}
}

// ConfirmPayment moves the event out of pending_payment. Confirming twice is
// rejected so a later gateway callback cannot silently re-run the transition.
func (e *Event) ConfirmPayment() error {
	if e.PaymentStatus == PaymentPaid {
		return fmt.Errorf("%w: event payment already confirmed", ErrConflict)
	}
	e.PaymentStatus = PaymentPaid
	return nil
}

// Approve grants admin approval and publishes in one step. Payment status is
// left alone; an unpaid approved event stays invisible until paid.
func (e *Event) Approve() {
	e.AdminApproved = true
	e.Published = true
}

type Ticket struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	EventID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"eventId"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Available   int             `gorm:"not null" json:"available"`
}

// TierInput is one ticket tier in an event create/update payload. A nil ID
// means a new tier; existing tiers absent from the payload are deleted.
type TierInput struct {
	ID          *uuid.UUID      `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"gt=0"`
	// Available, when set, is an explicit inventory adjustment. When nil the
	// sold count is preserved across quantity changes.
	Available *int `json:"available"`
}

// ReconcileTier applies a tier edit to an existing ticket without losing the
// sold history: the quantity delta shifts availability, clamped into
// [0, quantity]. An explicit Available in the input overrides the result.
func ReconcileTier(existing *Ticket, in TierInput) {
	delta := in.Quantity - existing.Quantity
	available := existing.Available + delta
	if in.Available != nil {
		available = *in.Available
	}
	if available < 0 {
		available = 0
	}
	if available > in.Quantity {
		available = in.Quantity
	}
	existing.Name = in.Name
	existing.Description = in.Description
	existing.Price = in.Price
	existing.Quantity = in.Quantity
	existing.Available = available
}

// EventInput is the create payload.
type EventInput struct {
	Title       string      `json:"title" validate:"required"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date" validate:"required"`
	Location    string      `json:"location" validate:"required"`
	Image       string      `json:"image"`
	Category    string      `json:"category"`
	Tickets     []TierInput `json:"tickets" validate:"required,min=1,dive"`
	CreatorID   *uuid.UUID  `json:"creatorId"`
}

// EventUpdate carries only the fields present in a PATCH body.
type EventUpdate struct {
	Title         *string        `json:"title"`
	Slug          *string        `json:"slug"`
	Description   *string        `json:"description"`
	Date          *time.Time     `json:"date"`
	Location      *string        `json:"location"`
	Image         *string        `json:"image"`
	Category      *string        `json:"category"`
	Published     *bool          `json:"published"`
	AdminApproved *bool          `json:"adminApproved"`
	PaymentStatus *PaymentStatus `json:"paymentStatus"`
	Tickets       []TierInput    `json:"tickets"`
}

// EventFilter narrows the listing. AdminMode bypasses the public gate and is
// only honored for admin sessions.
type EventFilter struct {
	Category  string
	CreatorID *uuid.UUID
	AdminMode bool
}
