package models

import (
	"time"

	"github.com/google/uuid"
)

// Advert fills one of three named placement slots. No uniqueness is enforced
// per slot; the most recently updated published advert wins.
type Advert struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Type      string    `gorm:"type:varchar(16);not null" json:"type"`
	Image     string    `gorm:"not null" json:"image"`
	Link      string    `json:"link"`
	Alt       string    `json:"alt"`
	Published bool      `gorm:"not null;default:true" json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AdvertInput struct {
	Type      string `json:"type" validate:"required,oneof=header footer square"`
	Image     string `json:"image" validate:"required"`
	Link      string `json:"link"`
	Alt       string `json:"alt"`
	Published *bool  `json:"published"`
}
