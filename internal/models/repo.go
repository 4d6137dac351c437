package models

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var Validate = validator.New()

type UsersRepo interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoriesRepo interface {
	Create(ctx context.Context, cat *Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, cat *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostsRepo interface {
	Create(ctx context.Context, p *Post) error
	GetByIDOrSlug(ctx context.Context, idOrSlug string) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	List(ctx context.Context, f PostFilter) ([]Post, int64, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventsRepo interface {
	Create(ctx context.Context, e *Event) error
	GetByIDOrSlug(ctx context.Context, idOrSlug string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context, f EventFilter) ([]Event, error)
	// Save persists lifecycle flag changes on the event row only.
	Save(ctx context.Context, e *Event) error
	// Update applies a field patch and reconciles the ticket tiers in one
	// transaction; tiers omitted from the patch are deleted.
	Update(ctx context.Context, id uuid.UUID, patch EventUpdate) (*Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrdersRepo interface {
	// CreatePurchase runs the whole purchase as one atomic unit: lock the
	// ticket row, check availability, snapshot the total, insert the order,
	// decrement the inventory. Either all of it commits or none of it does.
	CreatePurchase(ctx context.Context, in PurchaseInput) (*Order, error)
	List(ctx context.Context, ticketID *uuid.UUID) ([]Order, error)
}

type AdvertsRepo interface {
	Create(ctx context.Context, a *Advert) error
	GetByID(ctx context.Context, id uuid.UUID) (*Advert, error)
	List(ctx context.Context, publishedOnly bool) ([]Advert, error)
	Update(ctx context.Context, a *Advert) error
	Delete(ctx context.Context, id uuid.UUID) error
}
