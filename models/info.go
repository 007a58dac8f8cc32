package models

import (
	"time"

	"github.com/google/uuid"
)

// Info is a staff-facing knowledge-base entry (packing instructions,
// carrier contacts and the like) shown on the info board.
type Info struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"column:title;size:200;not null" json:"title"`
	Description string    `gorm:"column:description;not null" json:"description"`
	ImageURL    *string   `gorm:"column:image_url" json:"imageUrl,omitempty"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
