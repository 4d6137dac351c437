package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormCategoriesRepo struct {
	db *gorm.DB
}

func NewGormCategoriesRepo(db *gorm.DB) *GormCategoriesRepo {
	return &GormCategoriesRepo{db: db}
}

func (r *GormCategoriesRepo) Create(ctx context.Context, cat *Category) error {
	if cat.ID == uuid.Nil {
		cat.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(cat).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: category %q already exists", ErrConflict, cat.Slug)
		}
		return err
	}
	return nil
}

func (r *GormCategoriesRepo) GetByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	var cat Category
	if err := r.db.WithContext(ctx).First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &cat, nil
}

func (r *GormCategoriesRepo) List(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	for i := range cats {
		var count int64
		if err := r.db.WithContext(ctx).Model(&Post{}).
			Where("category_id = ?", cats[i].ID).Count(&count).Error; err != nil {
			return nil, err
		}
		cats[i].PostCount = count
	}
	return cats, nil
}

func (r *GormCategoriesRepo) Update(ctx context.Context, cat *Category) error {
	res := r.db.WithContext(ctx).Model(&Category{}).Where("id = ?", cat.ID).Updates(map[string]any{
		"name": cat.Name,
		"slug": cat.Slug,
	})
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return fmt.Errorf("%w: category %q already exists", ErrConflict, cat.Slug)
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: category %s", ErrNotFound, cat.ID)
	}
	return nil
}

// Delete removes the category only; posts keep living with a nulled key.
func (r *GormCategoriesRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Post{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&Category{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: category %s", ErrNotFound, id)
		}
		return nil
	})
}
