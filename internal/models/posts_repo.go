package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormPostsRepo struct {
	db *gorm.DB
}

func NewGormPostsRepo(db *gorm.DB) *GormPostsRepo {
	return &GormPostsRepo{db: db}
}

func (r *GormPostsRepo) Create(ctx context.Context, p *Post) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: a post with this title already exists", ErrConflict)
		}
		return err
	}
	return r.db.WithContext(ctx).Preload("Author").Preload("Category").
		First(p, "id = ?", p.ID).Error
}

func (r *GormPostsRepo) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*Post, error) {
	var p Post
	q := r.db.WithContext(ctx).Preload("Author").Preload("Category")
	if id, err := uuid.Parse(idOrSlug); err == nil {
		q = q.Where("id = ? OR slug = ?", id, idOrSlug)
	} else {
		q = q.Where("slug = ?", idOrSlug)
	}
	if err := q.First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %q", ErrNotFound, idOrSlug)
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormPostsRepo) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	var p Post
	if err := r.db.WithContext(ctx).First(&p, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %q", ErrNotFound, slug)
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormPostsRepo) List(ctx context.Context, f PostFilter) ([]Post, int64, error) {
	q := r.db.WithContext(ctx).Model(&Post{})

	if f.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.slug = ?", f.CategorySlug)
	}
	if f.Published != nil {
		q = q.Where("posts.published = ?", *f.Published)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("posts.title ILIKE ? OR posts.content ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []Post
	err := q.Preload("Author").Preload("Category").
		Order("posts.created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *GormPostsRepo) Update(ctx context.Context, p *Post) error {
	res := r.db.WithContext(ctx).Model(&Post{}).Where("id = ?", p.ID).Updates(map[string]any{
		"title":          p.Title,
		"slug":           p.Slug,
		"content":        p.Content,
		"excerpt":        p.Excerpt,
		"featured_image": p.FeaturedImage,
		"published":      p.Published,
		"published_at":   p.PublishedAt,
		"category_id":    p.CategoryID,
	})
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return fmt.Errorf("%w: a post with this title already exists", ErrConflict)
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: post %s", ErrNotFound, p.ID)
	}
	return r.db.WithContext(ctx).Preload("Author").Preload("Category").
		First(p, "id = ?", p.ID).Error
}

func (r *GormPostsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Post{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: post %s", ErrNotFound, id)
	}
	return nil
}
