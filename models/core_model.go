package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jatinvaland/dwarka-getaways/utils"
	"gorm.io/gorm"
)

// Destination is a point of interest around Dwarka shown on the homepage.
type Destination struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Slug        string    `gorm:"size:220;not null;unique" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`

	DistanceFromTemple string `gorm:"size:100" json:"distance_from_temple"`
	IsFeatured         bool   `gorm:"default:false" json:"is_featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Destination) BeforeCreate(tx *gorm.DB) error {
	if d.Slug == "" {
		d.Slug = utils.Slugify(d.Name)
	}
	return nil
}

// ContactMessage is a contact-form submission.
type ContactMessage struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name    string    `gorm:"size:200;not null" json:"name"`
	Email   string    `gorm:"size:255;not null" json:"email"`
	Phone   string    `gorm:"size:20" json:"phone"`
	Message string    `gorm:"type:text;not null" json:"message"`

	IsRead bool `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
