package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adjei-dev/stagepress/internal/helpers"
	"github.com/adjei-dev/stagepress/internal/models"
	"github.com/adjei-dev/stagepress/internal/monitoring"
)

type EventService struct {
	events models.EventsRepo
}

func NewEventService(events models.EventsRepo) *EventService {
	return &EventService{events: events}
}

func (es *EventService) ListEvents(ctx context.Context, f models.EventFilter) ([]models.Event, error) {
	return es.events.List(ctx, f)
}

// GetEvent applies the public gate unless the caller is an admin or the
// event's own creator (the payment and checkout pages need pending events).
func (es *EventService) GetEvent(ctx context.Context, idOrSlug string, viewer *helpers.SessionClaims) (*models.Event, error) {
	event, err := es.events.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if event.PubliclyVisible() {
		return event, nil
	}
	if viewer != nil {
		if viewer.IsAdmin() {
			return event, nil
		}
		if event.CreatorID != nil && *event.CreatorID == viewer.MustUserID() {
			return event, nil
		}
	}
	return nil, fmt.Errorf("%w: event %q", models.ErrNotFound, idOrSlug)
}

// CreateEvent routes the new event through the lifecycle gate: creator-
// submitted events start pending payment and approval, admin-created events
// go live immediately.
func (es *EventService) CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error) {
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	slug := in.Slug
	if slug == "" {
		slug = helpers.GenerateSlug(in.Title)
	}

	event := &models.Event{
		ID:          uuid.New(),
		Title:       in.Title,
		Slug:        slug,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		Image:       in.Image,
		Category:    in.Category,
		CreatorID:   in.CreatorID,
	}
	if in.CreatorID != nil {
		event.PaymentStatus = models.PaymentPending
		event.AdminApproved = false
		event.Published = false
	} else {
		event.PaymentStatus = models.PaymentPaid
		event.AdminApproved = true
		event.Published = true
	}

	for _, t := range in.Tickets {
		event.Tickets = append(event.Tickets, models.Ticket{
			ID:          uuid.New(),
			Name:        t.Name,
			Description: t.Description,
			Price:       t.Price,
			Quantity:    t.Quantity,
			Available:   t.Quantity,
		})
	}

	if err := es.events.Create(ctx, event); err != nil {
		return nil, err
	}
	monitoring.RecordTransition("created_" + string(event.Stage()))
	return event, nil
}

func (es *EventService) UpdateEvent(ctx context.Context, idOrSlug string, patch models.EventUpdate) (*models.Event, error) {
	event, err := es.events.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	for _, t := range patch.Tickets {
		if t.Name == "" || t.Quantity <= 0 {
			return nil, fmt.Errorf("%w: ticket tiers need a name and a positive quantity", models.ErrValidation)
		}
	}
	return es.events.Update(ctx, event.ID, patch)
}

func (es *EventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: invalid event ID", models.ErrValidation)
	}
	return es.events.Delete(ctx, id)
}

// ConfirmPayment is the simulated payment confirmation: it flips the payment
// flag and nothing else, so visibility still waits on admin approval.
func (es *EventService) ConfirmPayment(ctx context.Context, eventID uuid.UUID) (*models.Event, error) {
	event, err := es.events.GetByIDOrSlug(ctx, eventID.String())
	if err != nil {
		return nil, err
	}
	if err := event.ConfirmPayment(); err != nil {
		return nil, err
	}
	if err := es.events.Save(ctx, event); err != nil {
		return nil, err
	}
	monitoring.RecordTransition("payment_confirmed")
	return event, nil
}

// Approve grants approval and publishes in one irrevocable step.
func (es *EventService) Approve(ctx context.Context, eventID uuid.UUID) (*models.Event, error) {
	event, err := es.events.GetByIDOrSlug(ctx, eventID.String())
	if err != nil {
		return nil, err
	}
	event.Approve()
	if err := es.events.Save(ctx, event); err != nil {
		return nil, err
	}
	monitoring.RecordTransition("approved")
	return event, nil
}
