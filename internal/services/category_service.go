package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adjei-dev/stagepress/internal/helpers"
	"github.com/adjei-dev/stagepress/internal/models"
)

type CategoryService struct {
	categories models.CategoriesRepo
}

func NewCategoryService(categories models.CategoriesRepo) *CategoryService {
	return &CategoryService{categories: categories}
}

func (cs *CategoryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	cat := &models.Category{
		ID:   uuid.New(),
		Name: name,
		Slug: helpers.GenerateSlug(name),
	}
	if err := cs.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (cs *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return cs.categories.List(ctx)
}

// RenameCategory re-derives the slug from the new name.
func (cs *CategoryService) RenameCategory(ctx context.Context, id uuid.UUID, name string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	cat, err := cs.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cat.Name = name
	cat.Slug = helpers.GenerateSlug(name)
	if err := cs.categories.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (cs *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: invalid category ID", models.ErrValidation)
	}
	return cs.categories.Delete(ctx, id)
}
