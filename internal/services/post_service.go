package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adjei-dev/stagepress/internal/helpers"
	"github.com/adjei-dev/stagepress/internal/models"
)

const (
	defaultPostPage  = 1
	defaultPostLimit = 10
)

type PostService struct {
	posts models.PostsRepo
}

func NewPostService(posts models.PostsRepo) *PostService {
	return &PostService{posts: posts}
}

func (ps *PostService) ListPosts(ctx context.Context, f models.PostFilter) (*models.PostsPage, error) {
	if f.Page <= 0 {
		f.Page = defaultPostPage
	}
	if f.Limit <= 0 {
		f.Limit = defaultPostLimit
	}
	posts, total, err := ps.posts.List(ctx, f)
	if err != nil {
		return nil, err
	}
	totalPages := int((total + int64(f.Limit) - 1) / int64(f.Limit))
	return &models.PostsPage{
		Posts:      posts,
		Total:      total,
		Page:       f.Page,
		TotalPages: totalPages,
	}, nil
}

// GetPost hides unpublished posts from non-admin callers.
func (ps *PostService) GetPost(ctx context.Context, idOrSlug string, isAdmin bool) (*models.Post, error) {
	post, err := ps.posts.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if !post.Published && !isAdmin {
		return nil, fmt.Errorf("%w: post %q", models.ErrNotFound, idOrSlug)
	}
	return post, nil
}

func (ps *PostService) CreatePost(ctx context.Context, authorID uuid.UUID, in models.PostInput) (*models.Post, error) {
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	post := &models.Post{
		ID:            uuid.New(),
		Title:         in.Title,
		Slug:          helpers.GenerateSlug(in.Title),
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		FeaturedImage: in.FeaturedImage,
		Published:     in.Published,
		AuthorID:      authorID,
		CategoryID:    in.CategoryID,
	}
	if in.Published {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := ps.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost replaces the post wholesale; the slug follows the title.
func (ps *PostService) UpdatePost(ctx context.Context, id uuid.UUID, in models.PostInput) (*models.Post, error) {
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	post, err := ps.posts.GetByIDOrSlug(ctx, id.String())
	if err != nil {
		return nil, err
	}
	post.Title = in.Title
	post.Slug = helpers.GenerateSlug(in.Title)
	post.Content = in.Content
	post.Excerpt = in.Excerpt
	post.FeaturedImage = in.FeaturedImage
	post.CategoryID = in.CategoryID
	if in.Published && !post.Published {
		now := time.Now()
		post.PublishedAt = &now
	}
	post.Published = in.Published
	if err := ps.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (ps *PostService) DeletePost(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: invalid post ID", models.ErrValidation)
	}
	return ps.posts.Delete(ctx, id)
}
