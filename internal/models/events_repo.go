package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormEventsRepo struct {
	db *gorm.DB
}

func NewGormEventsRepo(db *gorm.DB) *GormEventsRepo {
	return &GormEventsRepo{db: db}
}

func (r *GormEventsRepo) Create(ctx context.Context, e *Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	for i := range e.Tickets {
		if e.Tickets[i].ID == uuid.Nil {
			e.Tickets[i].ID = uuid.New()
		}
		e.Tickets[i].EventID = e.ID
	}
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: an event with this slug already exists", ErrConflict)
		}
		return err
	}
	return nil
}

func (r *GormEventsRepo) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*Event, error) {
	var e Event
	q := r.db.WithContext(ctx).Preload("Tickets")
	if id, err := uuid.Parse(idOrSlug); err == nil {
		q = q.Where("id = ? OR slug = ?", id, idOrSlug)
	} else {
		q = q.Where("slug = ?", idOrSlug)
	}
	if err := q.First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: event %q", ErrNotFound, idOrSlug)
		}
		return nil, err
	}
	return &e, nil
}

func (r *GormEventsRepo) GetBySlug(ctx context.Context, slug string) (*Event, error) {
	var e Event
	if err := r.db.WithContext(ctx).First(&e, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: event %q", ErrNotFound, slug)
		}
		return nil, err
	}
	return &e, nil
}

func (r *GormEventsRepo) List(ctx context.Context, f EventFilter) ([]Event, error) {
	q := r.db.WithContext(ctx).Preload("Tickets")
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.CreatorID != nil {
		q = q.Where("creator_id = ?", *f.CreatorID)
	}
	if f.AdminMode {
		q = q.Preload("Creator")
	} else {
		q = q.Where("payment_status = ? AND admin_approved = ? AND published = ?",
			PaymentPaid, true, true)
	}

	var events []Event
	if err := q.Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *GormEventsRepo) Save(ctx context.Context, e *Event) error {
	res := r.db.WithContext(ctx).Model(&Event{}).Where("id = ?", e.ID).Updates(map[string]any{
		"payment_status": e.PaymentStatus,
		"admin_approved": e.AdminApproved,
		"published":      e.Published,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: event %s", ErrNotFound, e.ID)
	}
	return nil
}

// Update patches the event row and reconciles the tier list in a single
// transaction: omitted tiers are deleted, known tiers are edited with their
// sold history preserved, new tiers start fully available.
func (r *GormEventsRepo) Update(ctx context.Context, id uuid.UUID, patch EventUpdate) (*Event, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Event
		if err := tx.Preload("Tickets").First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: event %s", ErrNotFound, id)
			}
			return err
		}

		fields := map[string]any{}
		if patch.Title != nil {
			fields["title"] = *patch.Title
		}
		if patch.Slug != nil {
			fields["slug"] = *patch.Slug
		}
		if patch.Description != nil {
			fields["description"] = *patch.Description
		}
		if patch.Date != nil {
			fields["date"] = *patch.Date
		}
		if patch.Location != nil {
			fields["location"] = *patch.Location
		}
		if patch.Image != nil {
			fields["image"] = *patch.Image
		}
		if patch.Category != nil {
			fields["category"] = *patch.Category
		}
		if patch.Published != nil {
			fields["published"] = *patch.Published
		}
		if patch.AdminApproved != nil {
			fields["admin_approved"] = *patch.AdminApproved
		}
		if patch.PaymentStatus != nil {
			fields["payment_status"] = *patch.PaymentStatus
		}
		if len(fields) > 0 {
			if err := tx.Model(&Event{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				if isDuplicateKey(err) {
					return fmt.Errorf("%w: an event with this slug already exists", ErrConflict)
				}
				return err
			}
		}

		if patch.Tickets == nil {
			return nil
		}

		incoming := map[uuid.UUID]bool{}
		for _, in := range patch.Tickets {
			if in.ID != nil {
				incoming[*in.ID] = true
			}
		}
		for _, t := range existing.Tickets {
			if !incoming[t.ID] {
				if err := tx.Delete(&Ticket{}, "id = ?", t.ID).Error; err != nil {
					return err
				}
			}
		}

		byID := map[uuid.UUID]*Ticket{}
		for i := range existing.Tickets {
			byID[existing.Tickets[i].ID] = &existing.Tickets[i]
		}
		for _, in := range patch.Tickets {
			if in.ID != nil {
				current, ok := byID[*in.ID]
				if !ok {
					return fmt.Errorf("%w: ticket %s", ErrNotFound, *in.ID)
				}
				ReconcileTier(current, in)
				if err := tx.Model(&Ticket{}).Where("id = ?", current.ID).Updates(map[string]any{
					"name":        current.Name,
					"description": current.Description,
					"price":       current.Price,
					"quantity":    current.Quantity,
					"available":   current.Available,
				}).Error; err != nil {
					return err
				}
				continue
			}
			t := Ticket{
				ID:          uuid.New(),
				EventID:     id,
				Name:        in.Name,
				Description: in.Description,
				Price:       in.Price,
				Quantity:    in.Quantity,
				Available:   in.Quantity,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var updated Event
	if err := r.db.WithContext(ctx).Preload("Tickets").First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete cascades to the event's tickets.
func (r *GormEventsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Ticket{}, "event_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&Event{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: event %s", ErrNotFound, id)
		}
		return nil
	})
}
