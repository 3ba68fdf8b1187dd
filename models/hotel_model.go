package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jatinvaland/dwarka-getaways/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PropertyTypeHotel      = "hotel"
	PropertyTypeResort     = "resort"
	PropertyTypeGuesthouse = "guesthouse"
	PropertyTypeHomestay   = "homestay"
)

type Hotel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"size:200;not null" json:"name"`
	Slug string    `gorm:"size:220;not null;unique" json:"slug"`
	City string    `gorm:"size:120;default:'Dwarka'" json:"city"`

	PropertyType string `gorm:"size:20;default:'hotel'" json:"property_type"`
	Description  string `gorm:"type:text" json:"description"`

	Address            string `gorm:"type:text" json:"address"`
	DistanceFromTemple string `gorm:"size:100" json:"distance_from_temple"`
	Landmark           string `gorm:"size:200" json:"landmark"`

	BasePrice          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"base_price"`
	DiscountPercentage int             `gorm:"default:0" json:"discount_percentage"` // 0-100

	Rating       decimal.Decimal `gorm:"type:numeric(3,2);default:0" json:"rating"`
	StarRating   int             `gorm:"default:3" json:"star_rating"`
	TotalReviews int             `gorm:"default:0" json:"total_reviews"`

	Amenities []*Amenity `gorm:"many2many:hotel_amenities;" json:"amenities,omitempty"`

	HasTempleView       bool `gorm:"default:false" json:"has_temple_view"`
	HasFreeCancellation bool `gorm:"default:true" json:"has_free_cancellation"`
	HasBreakfast        bool `gorm:"default:false" json:"has_breakfast"`
	HasParking          bool `gorm:"default:false" json:"has_parking"`
	HasWifi             bool `gorm:"default:false" json:"has_wifi"`
	HasAC               bool `gorm:"default:false" json:"has_ac"`

	IsActive   bool   `gorm:"default:true" json:"is_active"`
	IsFeatured bool   `gorm:"default:false" json:"is_featured"`
	Badge      string `gorm:"size:50" json:"badge"`

	RoomTypes []RoomType `gorm:"foreignkey:HotelID" json:"room_types,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.Slug == "" {
		h.Slug = utils.Slugify(h.Name)
	}
	return nil
}

// DiscountedPrice is the nightly base price after the hotel's own discount.
func (h *Hotel) DiscountedPrice() decimal.Decimal {
	if h.DiscountPercentage <= 0 {
		return h.BasePrice
	}
	discount := h.BasePrice.Mul(decimal.NewFromInt(int64(h.DiscountPercentage))).Div(decimal.NewFromInt(100))
	return h.BasePrice.Sub(discount)
}

type RoomType struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	HotelID uuid.UUID `gorm:"not null" json:"hotel_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:140" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	BedType     string `gorm:"size:20;default:'double'" json:"bed_type"` // single, double, twin, suite

	Capacity  int `gorm:"default:2" json:"capacity"`
	MaxGuests int `gorm:"default:2" json:"max_guests"`

	PricePerNight decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price_per_night"`

	SizeSqft    int  `gorm:"default:250" json:"size_sqft"`
	TotalRooms  int  `gorm:"default:1" json:"total_rooms"`
	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Amenity struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Icon     string    `gorm:"size:50" json:"icon"`
	Category string    `gorm:"size:20;default:'room'" json:"category"` // room, food, facility
}

type Review struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	HotelID  uuid.UUID  `gorm:"not null" json:"hotel_id"`
	AuthorID *uuid.UUID `json:"author_id"`

	GuestName string    `gorm:"size:200;not null" json:"guest_name"`
	Rating    int       `gorm:"not null" json:"rating"` // 1-5
	Comment   string    `gorm:"type:text" json:"comment"`
	StayDate  time.Time `gorm:"type:date" json:"stay_date"`

	IsApproved bool `gorm:"default:false" json:"is_approved"`

	CreatedAt time.Time `json:"created_at"`
}
