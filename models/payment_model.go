package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentMethodCard       = "card"
	PaymentMethodNetbanking = "netbanking"
	PaymentMethodUPI        = "upi"
	PaymentMethodRazorpay   = "razorpay"
	PaymentMethodPayAtHotel = "payathotel"
)

// IsGatewayMethod reports whether a payment method is collected online
// through the gateway. Everything except pay-at-hotel routes through the
// hosted checkout.
func IsGatewayMethod(method string) bool {
	return method != PaymentMethodPayAtHotel
}

// Payment is the single payment attempt attached to a booking. It is created
// pending alongside the booking and moved to a terminal state exactly once by
// the verification step.
type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"not null;unique" json:"booking_id"`

	PaymentMethod string `gorm:"size:20;not null" json:"payment_method"`

	TransactionID    string `gorm:"size:100" json:"transaction_id"`
	GatewayOrderID   string `gorm:"size:100" json:"gateway_order_id"`
	GatewayPaymentID string `gorm:"size:100" json:"gateway_payment_id"`
	GatewaySignature string `gorm:"size:200" json:"-"`

	Amount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`

	IsSuccessful bool       `gorm:"default:false" json:"is_successful"`
	PaymentDate  *time.Time `json:"payment_date"`

	Remarks string `gorm:"type:text" json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
