package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adjei-dev/stagepress/internal/helpers"
	"github.com/adjei-dev/stagepress/internal/models"
)

type fakeEventsRepo struct {
	events map[uuid.UUID]*models.Event
}

func newFakeEventsRepo() *fakeEventsRepo {
	return &fakeEventsRepo{events: map[uuid.UUID]*models.Event{}}
}

func (f *fakeEventsRepo) Create(_ context.Context, e *models.Event) error {
	f.events[e.ID] = e
	return nil
}

func (f *fakeEventsRepo) GetByIDOrSlug(_ context.Context, idOrSlug string) (*models.Event, error) {
	if id, err := uuid.Parse(idOrSlug); err == nil {
		if e, ok := f.events[id]; ok {
			return e, nil
		}
		return nil, fmt.Errorf("%w: event %s", models.ErrNotFound, idOrSlug)
	}
	for _, e := range f.events {
		if e.Slug == idOrSlug {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: event %s", models.ErrNotFound, idOrSlug)
}

func (f *fakeEventsRepo) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	return f.GetByIDOrSlug(ctx, slug)
}

func (f *fakeEventsRepo) List(_ context.Context, filter models.EventFilter) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.events {
		if !filter.AdminMode && !e.PubliclyVisible() {
			continue
		}
		if filter.CreatorID != nil && (e.CreatorID == nil || *e.CreatorID != *filter.CreatorID) {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEventsRepo) Save(_ context.Context, e *models.Event) error {
	stored, ok := f.events[e.ID]
	if !ok {
		return fmt.Errorf("%w: event %s", models.ErrNotFound, e.ID)
	}
	stored.PaymentStatus = e.PaymentStatus
	stored.AdminApproved = e.AdminApproved
	stored.Published = e.Published
	return nil
}

func (f *fakeEventsRepo) Update(_ context.Context, id uuid.UUID, patch models.EventUpdate) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, fmt.Errorf("%w: event %s", models.ErrNotFound, id)
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Tickets != nil {
		var next []models.Ticket
		for _, in := range patch.Tickets {
			if in.ID != nil {
				for i := range e.Tickets {
					if e.Tickets[i].ID == *in.ID {
						models.ReconcileTier(&e.Tickets[i], in)
						next = append(next, e.Tickets[i])
					}
				}
				continue
			}
			next = append(next, models.Ticket{
				ID:        uuid.New(),
				EventID:   e.ID,
				Name:      in.Name,
				Price:     in.Price,
				Quantity:  in.Quantity,
				Available: in.Quantity,
			})
		}
		e.Tickets = next
	}
	return e, nil
}

func (f *fakeEventsRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.events[id]; !ok {
		return fmt.Errorf("%w: event %s", models.ErrNotFound, id)
	}
	delete(f.events, id)
	return nil
}

func validEventInput() models.EventInput {
	return models.EventInput{
		Title:    "Summer Jam",
		Date:     time.Now().Add(30 * 24 * time.Hour),
		Location: "Accra Sports Stadium",
		Tickets: []models.TierInput{
			{Name: "GA", Price: decimal.NewFromInt(100), Quantity: 200},
		},
	}
}

func TestCreateEventByCreatorStartsPending(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventService(repo)

	creator := uuid.New()
	in := validEventInput()
	in.CreatorID = &creator

	event, err := svc.CreateEvent(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPending, event.PaymentStatus)
	assert.False(t, event.AdminApproved)
	assert.False(t, event.Published)
	assert.Equal(t, models.StagePendingPayment, event.Stage())
	assert.Equal(t, "summer-jam", event.Slug)
	require.Len(t, event.Tickets, 1)
	assert.Equal(t, 200, event.Tickets[0].Available, "new tiers start fully available")
}

func TestCreateEventByAdminGoesLive(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventService(repo)

	event, err := svc.CreateEvent(context.Background(), validEventInput())
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPaid, event.PaymentStatus)
	assert.True(t, event.AdminApproved)
	assert.True(t, event.Published)
	assert.True(t, event.PubliclyVisible())
}

func TestCreateEventValidation(t *testing.T) {
	svc := NewEventService(newFakeEventsRepo())

	in := validEventInput()
	in.Tickets = nil
	_, err := svc.CreateEvent(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))

	in = validEventInput()
	in.Location = ""
	_, err = svc.CreateEvent(context.Background(), in)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestGetEventGate(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventService(repo)

	creator := uuid.New()
	in := validEventInput()
	in.CreatorID = &creator
	event, err := svc.CreateEvent(context.Background(), in)
	require.NoError(t, err)

	// Anonymous viewers see a pending event as missing.
	_, err = svc.GetEvent(context.Background(), event.Slug, nil)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	// Another editor is no better off.
	stranger := &helpers.SessionClaims{UserID: uuid.New().String(), Role: models.RoleEditor}
	_, err = svc.GetEvent(context.Background(), event.Slug, stranger)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	// The creator and any admin see it.
	owner := &helpers.SessionClaims{UserID: creator.String(), Role: models.RoleEditor}
	got, err := svc.GetEvent(context.Background(), event.Slug, owner)
	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)

	admin := &helpers.SessionClaims{UserID: uuid.New().String(), Role: models.RoleAdmin}
	_, err = svc.GetEvent(context.Background(), event.ID.String(), admin)
	assert.NoError(t, err)
}

func TestConfirmPaymentThenApprove(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventService(repo)

	creator := uuid.New()
	in := validEventInput()
	in.CreatorID = &creator
	event, err := svc.CreateEvent(context.Background(), in)
	require.NoError(t, err)

	paid, err := svc.ConfirmPayment(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StagePendingApproval, paid.Stage())
	assert.False(t, paid.PubliclyVisible())

	// Paying twice is a conflict.
	_, err = svc.ConfirmPayment(context.Background(), event.ID)
	assert.True(t, errors.Is(err, models.ErrConflict))

	live, err := svc.Approve(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageLive, live.Stage())
	assert.True(t, live.PubliclyVisible())
}

func TestApproveBeforePaymentStaysHidden(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventService(repo)

	creator := uuid.New()
	in := validEventInput()
	in.CreatorID = &creator
	event, err := svc.CreateEvent(context.Background(), in)
	require.NoError(t, err)

	approved, err := svc.Approve(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, approved.PaymentStatus)
	assert.False(t, approved.PubliclyVisible())
	assert.Equal(t, models.StagePendingPayment, approved.Stage())
}

func TestListEventsRespectsGate(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventService(repo)

	_, err := svc.CreateEvent(context.Background(), validEventInput())
	require.NoError(t, err)

	creator := uuid.New()
	pending := validEventInput()
	pending.Title = "Pending Show"
	pending.CreatorID = &creator
	_, err = svc.CreateEvent(context.Background(), pending)
	require.NoError(t, err)

	public, err := svc.ListEvents(context.Background(), models.EventFilter{})
	require.NoError(t, err)
	assert.Len(t, public, 1)

	all, err := svc.ListEvents(context.Background(), models.EventFilter{AdminMode: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateEventTierValidation(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventService(repo)

	event, err := svc.CreateEvent(context.Background(), validEventInput())
	require.NoError(t, err)

	_, err = svc.UpdateEvent(context.Background(), event.ID.String(), models.EventUpdate{
		Tickets: []models.TierInput{{Name: "", Quantity: 10}},
	})
	assert.True(t, errors.Is(err, models.ErrValidation))

	_, err = svc.UpdateEvent(context.Background(), event.ID.String(), models.EventUpdate{
		Tickets: []models.TierInput{{Name: "VIP", Quantity: 0}},
	})
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestUpdateEventReconcilesTiers(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventService(repo)

	in := validEventInput()
	in.Tickets = []models.TierInput{
		{Name: "GA", Price: decimal.NewFromInt(100), Quantity: 100},
		{Name: "VIP", Price: decimal.NewFromInt(300), Quantity: 20},
	}
	event, err := svc.CreateEvent(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, event.Tickets, 2)

	// Simulate 30 GA sales, then resize GA, drop VIP and add a new tier.
	event.Tickets[0].Available = 70
	gaID := event.Tickets[0].ID

	updated, err := svc.UpdateEvent(context.Background(), event.Slug, models.EventUpdate{
		Tickets: []models.TierInput{
			{ID: &gaID, Name: "GA", Price: decimal.NewFromInt(120), Quantity: 150},
			{Name: "Balcony", Price: decimal.NewFromInt(200), Quantity: 40},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Tickets, 2)

	assert.Equal(t, 150, updated.Tickets[0].Quantity)
	assert.Equal(t, 120, updated.Tickets[0].Available, "30 sold seats survive the resize")
	assert.Equal(t, "Balcony", updated.Tickets[1].Name)
	assert.Equal(t, 40, updated.Tickets[1].Available)
}
