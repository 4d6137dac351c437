package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adjei-dev/stagepress/internal/models"
)

type fakePostsRepo struct {
	posts map[uuid.UUID]*models.Post
}

func newFakePostsRepo() *fakePostsRepo {
	return &fakePostsRepo{posts: map[uuid.UUID]*models.Post{}}
}

func (f *fakePostsRepo) Create(_ context.Context, p *models.Post) error {
	f.posts[p.ID] = p
	return nil
}

func (f *fakePostsRepo) GetByIDOrSlug(_ context.Context, idOrSlug string) (*models.Post, error) {
	if id, err := uuid.Parse(idOrSlug); err == nil {
		if p, ok := f.posts[id]; ok {
			return p, nil
		}
		return nil, fmt.Errorf("%w: post %s", models.ErrNotFound, idOrSlug)
	}
	for _, p := range f.posts {
		if p.Slug == idOrSlug {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: post %s", models.ErrNotFound, idOrSlug)
}

func (f *fakePostsRepo) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return f.GetByIDOrSlug(ctx, slug)
}

func (f *fakePostsRepo) List(_ context.Context, filter models.PostFilter) ([]models.Post, int64, error) {
	var matched []models.Post
	for _, p := range f.posts {
		if filter.Published != nil && p.Published != *filter.Published {
			continue
		}
		matched = append(matched, *p)
	}
	total := int64(len(matched))

	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakePostsRepo) Update(_ context.Context, p *models.Post) error {
	f.posts[p.ID] = p
	return nil
}

func (f *fakePostsRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.posts[id]; !ok {
		return fmt.Errorf("%w: post %s", models.ErrNotFound, id)
	}
	delete(f.posts, id)
	return nil
}

func seedPosts(t *testing.T, svc *PostService, n int, published bool) {
	t.Helper()
	catID := uuid.New()
	for i := 0; i < n; i++ {
		_, err := svc.CreatePost(context.Background(), uuid.New(), models.PostInput{
			Title:      fmt.Sprintf("Post %d %v", i, published),
			Content:    "body",
			Published:  published,
			CategoryID: &catID,
		})
		require.NoError(t, err)
	}
}

func TestListPostsPagination(t *testing.T) {
	svc := NewPostService(newFakePostsRepo())
	seedPosts(t, svc, 25, true)

	page, err := svc.ListPosts(context.Background(), models.PostFilter{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Posts, 10)

	// Defaults kick in for zero values.
	page, err = svc.ListPosts(context.Background(), models.PostFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Posts, 10)
}

func TestListPostsPublishedFilter(t *testing.T) {
	svc := NewPostService(newFakePostsRepo())
	seedPosts(t, svc, 3, true)
	seedPosts(t, svc, 2, false)

	published := true
	page, err := svc.ListPosts(context.Background(), models.PostFilter{Published: &published})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
}

func TestGetPostHidesDrafts(t *testing.T) {
	svc := NewPostService(newFakePostsRepo())

	catID := uuid.New()
	draft, err := svc.CreatePost(context.Background(), uuid.New(), models.PostInput{
		Title:      "Unfinished Draft",
		Content:    "wip",
		CategoryID: &catID,
	})
	require.NoError(t, err)
	assert.Nil(t, draft.PublishedAt)

	_, err = svc.GetPost(context.Background(), draft.Slug, false)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	got, err := svc.GetPost(context.Background(), draft.Slug, true)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)
}

func TestCreatePostSetsSlugAndPublishedAt(t *testing.T) {
	svc := NewPostService(newFakePostsRepo())

	catID := uuid.New()
	post, err := svc.CreatePost(context.Background(), uuid.New(), models.PostInput{
		Title:      "Go Modules Explained",
		Content:    "body",
		Published:  true,
		CategoryID: &catID,
	})
	require.NoError(t, err)
	assert.Equal(t, "go-modules-explained", post.Slug)
	require.NotNil(t, post.PublishedAt)
}

func TestUpdatePostSetsPublishedAtOnce(t *testing.T) {
	svc := NewPostService(newFakePostsRepo())

	catID := uuid.New()
	post, err := svc.CreatePost(context.Background(), uuid.New(), models.PostInput{
		Title:      "Draft",
		Content:    "body",
		CategoryID: &catID,
	})
	require.NoError(t, err)
	require.Nil(t, post.PublishedAt)

	updated, err := svc.UpdatePost(context.Background(), post.ID, models.PostInput{
		Title:      "Draft",
		Content:    "body",
		Published:  true,
		CategoryID: &catID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	first := *updated.PublishedAt

	// Publishing an already-published post keeps the original timestamp.
	updated, err = svc.UpdatePost(context.Background(), post.ID, models.PostInput{
		Title:      "Draft v2",
		Content:    "body",
		Published:  true,
		CategoryID: &catID,
	})
	require.NoError(t, err)
	assert.Equal(t, first, *updated.PublishedAt)
	assert.Equal(t, "draft-v2", updated.Slug)
}

func TestCreatePostValidation(t *testing.T) {
	svc := NewPostService(newFakePostsRepo())

	_, err := svc.CreatePost(context.Background(), uuid.New(), models.PostInput{Title: "No Body"})
	assert.True(t, errors.Is(err, models.ErrValidation))
}
