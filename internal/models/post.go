package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	Slug          string     `gorm:"uniqueIndex;not null" json:"slug"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Excerpt       string     `gorm:"type:text" json:"excerpt"`
	FeaturedImage string     `json:"featuredImage"`
	Published     bool       `gorm:"not null;default:false" json:"published"`
	PublishedAt   *time.Time `json:"publishedAt"`
	AuthorID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"authorId"`
	Author        *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	// Category survives deletion of its parent; the key is nulled, the post stays.
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"categoryId"`
	Category   *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// PostInput is the write payload; posts are replaced whole on update.
type PostInput struct {
	Title         string     `json:"title" validate:"required"`
	Content       string     `json:"content" validate:"required"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featuredImage"`
	Published     bool       `json:"published"`
	CategoryID    *uuid.UUID `json:"categoryId"`
}

// PostFilter narrows the public listing.
type PostFilter struct {
	CategorySlug string
	Published    *bool
	Search       string
	Page         int
	Limit        int
}
