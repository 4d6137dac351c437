package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adjei-dev/stagepress/internal/models"
)

type AdvertService struct {
	adverts models.AdvertsRepo
}

func NewAdvertService(adverts models.AdvertsRepo) *AdvertService {
	return &AdvertService{adverts: adverts}
}

func (as *AdvertService) ListAdverts(ctx context.Context, publishedOnly bool) ([]models.Advert, error) {
	return as.adverts.List(ctx, publishedOnly)
}

func (as *AdvertService) CreateAdvert(ctx context.Context, in models.AdvertInput) (*models.Advert, error) {
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	published := true
	if in.Published != nil {
		published = *in.Published
	}
	advert := &models.Advert{
		ID:        uuid.New(),
		Type:      in.Type,
		Image:     in.Image,
		Link:      in.Link,
		Alt:       in.Alt,
		Published: published,
	}
	if err := as.adverts.Create(ctx, advert); err != nil {
		return nil, err
	}
	return advert, nil
}

func (as *AdvertService) UpdateAdvert(ctx context.Context, id uuid.UUID, in models.AdvertInput) (*models.Advert, error) {
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	advert, err := as.adverts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	advert.Type = in.Type
	advert.Image = in.Image
	advert.Link = in.Link
	advert.Alt = in.Alt
	if in.Published != nil {
		advert.Published = *in.Published
	}
	if err := as.adverts.Update(ctx, advert); err != nil {
		return nil, err
	}
	return advert, nil
}

func (as *AdvertService) DeleteAdvert(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: invalid advert ID", models.ErrValidation)
	}
	return as.adverts.Delete(ctx, id)
}
