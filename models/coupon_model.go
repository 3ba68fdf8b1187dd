package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon is referenced by its typed code, never by foreign key. The discount
// actually granted is snapshotted onto the booking at creation time, so later
// edits to a coupon never change historical bookings.
type Coupon struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Code        string    `gorm:"size:50;not null;unique" json:"code"`
	Description string    `gorm:"size:200" json:"description"`

	DiscountType  string          `gorm:"size:20;not null;default:'percentage'" json:"discount_type"`
	DiscountValue decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"discount_value"`

	MinBookingAmount decimal.Decimal  `gorm:"type:numeric(10,2);default:0" json:"min_booking_amount"`
	MaxDiscount      *decimal.Decimal `gorm:"type:numeric(10,2)" json:"max_discount"` // percentage type only

	ValidFrom  time.Time `gorm:"type:date;not null" json:"valid_from"`
	ValidUntil time.Time `gorm:"type:date;not null" json:"valid_until"`

	MaxUses   int `gorm:"default:100" json:"max_uses"`
	UsedCount int `gorm:"default:0" json:"used_count"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsValidOn reports whether the coupon can be applied on the given day.
// The validity window is inclusive on both boundary dates.
func (c *Coupon) IsValidOn(day time.Time) bool {
	d := dateOnly(day)
	return c.IsActive &&
		!d.Before(dateOnly(c.ValidFrom)) &&
		!d.After(dateOnly(c.ValidUntil)) &&
		c.UsedCount < c.MaxUses
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
