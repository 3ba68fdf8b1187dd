package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// GST applied on the post-discount subtotal. A single module-wide rate, not
// configurable per booking.
const TaxRatePercent = 12

var (
	taxRate = decimal.New(TaxRatePercent, -2) // 0.12
	hundred = decimal.NewFromInt(100)
)

// QuoteInput carries everything the pricing engine needs. CouponDiscount is
// the amount already granted by the coupon ledger; the engine clamps it to
// the remaining subtotal so taxes are never computed on a negative base.
type QuoteInput struct {
	NightlyRate          decimal.Decimal
	Nights               int
	Rooms                int
	HotelDiscountPercent int
	CouponDiscount       decimal.Decimal
}

// Quote is the full pricing breakdown shown to the guest and snapshotted
// onto the booking. All amounts carry two decimal places.
type Quote struct {
	BasePrice       decimal.Decimal `json:"base_price"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	CouponDiscount  decimal.Decimal `json:"coupon_discount"`
	TaxableSubtotal decimal.Decimal `json:"taxable_subtotal"`
	Taxes           decimal.Decimal `json:"taxes"`
	Total           decimal.Decimal `json:"total"`
}

// NightsBetween returns the chargeable nights for a stay. Same-day check-in
// and check-out still charges one night.
func NightsBetween(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// ComputeQuote prices a stay. Pure, no side effects.
//
//	base    = nightly rate x nights x rooms
//	hotel   = base x discount% / 100
//	coupon  = min(coupon discount, base - hotel)
//	taxable = base - hotel - coupon
//	taxes   = taxable x 12%
//	total   = taxable + taxes, rounded half-up to 2 decimals
func ComputeQuote(in QuoteInput) Quote {
	rooms := in.Rooms
	if rooms < 1 {
		rooms = 1
	}

	base := in.NightlyRate.
		Mul(decimal.NewFromInt(int64(in.Nights))).
		Mul(decimal.NewFromInt(int64(rooms))).
		Round(2)

	discount := decimal.Zero
	if in.HotelDiscountPercent > 0 {
		discount = base.
			Mul(decimal.NewFromInt(int64(in.HotelDiscountPercent))).
			Div(hundred).
			Round(2)
	}

	remaining := base.Sub(discount)

	coupon := in.CouponDiscount
	if coupon.IsNegative() {
		coupon = decimal.Zero
	}
	if coupon.GreaterThan(remaining) {
		coupon = remaining
	}

	taxable := remaining.Sub(coupon)
	taxes := taxable.Mul(taxRate).Round(2)
	total := taxable.Add(taxes).Round(2)

	return Quote{
		BasePrice:       base,
		DiscountAmount:  discount,
		CouponDiscount:  coupon.Round(2),
		TaxableSubtotal: taxable,
		Taxes:           taxes,
		Total:           total,
	}
}
