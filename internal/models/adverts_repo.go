package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormAdvertsRepo struct {
	db *gorm.DB
}

func NewGormAdvertsRepo(db *gorm.DB) *GormAdvertsRepo {
	return &GormAdvertsRepo{db: db}
}

func (r *GormAdvertsRepo) Create(ctx context.Context, a *Advert) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *GormAdvertsRepo) GetByID(ctx context.Context, id uuid.UUID) (*Advert, error) {
	var a Advert
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: advert %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &a, nil
}

// List orders published adverts newest-updated first so the latest published
// advert per slot wins on the client.
func (r *GormAdvertsRepo) List(ctx context.Context, publishedOnly bool) ([]Advert, error) {
	q := r.db.WithContext(ctx)
	if publishedOnly {
		q = q.Where("published = ?", true).Order("updated_at DESC")
	} else {
		q = q.Order("created_at DESC")
	}
	var adverts []Advert
	if err := q.Find(&adverts).Error; err != nil {
		return nil, err
	}
	return adverts, nil
}

func (r *GormAdvertsRepo) Update(ctx context.Context, a *Advert) error {
	res := r.db.WithContext(ctx).Model(&Advert{}).Where("id = ?", a.ID).Updates(map[string]any{
		"type":      a.Type,
		"image":     a.Image,
		"link":      a.Link,
		"alt":       a.Alt,
		"published": a.Published,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: advert %s", ErrNotFound, a.ID)
	}
	return nil
}

func (r *GormAdvertsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Advert{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: advert %s", ErrNotFound, id)
	}
	return nil
}
