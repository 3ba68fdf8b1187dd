package models

import (
	"time"

	"github.com/google/uuid"
)

// GuestDetail is the person record for a booking. Exactly one per booking,
// created in the same transaction and removed only by cascading delete.
type GuestDetail struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"not null;unique" json:"booking_id"`

	Title    string `gorm:"size:5;not null" json:"title"` // Mr, Mrs, Ms
	FullName string `gorm:"size:200;not null" json:"full_name"`
	Email    string `gorm:"size:255;not null" json:"email"`
	Phone    string `gorm:"size:20;not null" json:"phone"`

	IDType   string `gorm:"size:20;not null" json:"id_type"` // aadhaar, pan, license, passport
	IDNumber string `gorm:"size:50;not null" json:"id_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
