package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jatinvaland/dwarka-getaways/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID string    `gorm:"size:20;not null;unique" json:"booking_id"`

	UserID *uuid.UUID `json:"user_id"` // nil for guest checkout

	HotelID    uuid.UUID `gorm:"not null" json:"hotel_id"`
	RoomTypeID uuid.UUID `gorm:"not null" json:"room_type_id"`

	CheckIn  time.Time `gorm:"type:date;not null" json:"check_in"`
	CheckOut time.Time `gorm:"type:date;not null" json:"check_out"`
	Nights   int       `gorm:"not null" json:"nights"`

	NumAdults   int `gorm:"default:2" json:"num_adults"`
	NumChildren int `gorm:"default:0" json:"num_children"`
	NumRooms    int `gorm:"default:1" json:"num_rooms"`

	BasePrice      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"base_price"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"discount_amount"`
	Taxes          decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"taxes"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`

	CouponCode     string          `gorm:"size:50" json:"coupon_code"`
	CouponDiscount decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"coupon_discount"`

	Status        string `gorm:"size:20;not null;default:'pending'" json:"status"`
	PaymentStatus string `gorm:"size:20;not null;default:'pending'" json:"payment_status"`

	SpecialRequests string `gorm:"type:text" json:"special_requests"`

	Hotel       Hotel       `gorm:"foreignkey:HotelID" json:"hotel,omitempty"`
	RoomType    RoomType    `gorm:"foreignkey:RoomTypeID" json:"room_type,omitempty"`
	GuestDetail GuestDetail `gorm:"foreignkey:BookingID;constraint:OnDelete:CASCADE" json:"guest_detail,omitempty"`
	Payment     Payment     `gorm:"foreignkey:BookingID;constraint:OnDelete:CASCADE" json:"payment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanTransitionStatus reports whether a booking may move from one lifecycle
// state to another. Transitions only move forward: a pending booking can be
// confirmed or cancelled, a confirmed stay can complete or be cancelled, and
// cancelled and completed are terminal.
func CanTransitionStatus(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case BookingStatusPending:
		return to == BookingStatusConfirmed || to == BookingStatusCancelled
	case BookingStatusConfirmed:
		return to == BookingStatusCompleted || to == BookingStatusCancelled
	default:
		return false
	}
}

// BeforeCreate assigns the public booking reference. It is never regenerated
// after the row exists.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == "" {
		b.BookingID = utils.GenerateBookingID()
	}
	return nil
}
