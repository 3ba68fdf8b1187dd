package services

import (
	"errors"
	"strings"
	"time"

	"github.com/jatinvaland/dwarka-getaways/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrCouponNotFound means no coupon exists for the given code.
	ErrCouponNotFound = errors.New("coupon code not found")
	// ErrCouponInvalid means the coupon exists but cannot be applied right
	// now (inactive, outside its validity window, usage cap reached, or the
	// booking is below its minimum amount). Callers treat this as a soft
	// failure: the booking proceeds without the discount.
	ErrCouponInvalid = errors.New("coupon is not currently valid")
)

// NormalizeCouponCode uppercases and trims a user-typed code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CouponDiscountFor computes the discount a coupon grants on a base price,
// applying the type-specific clamps. Pure.
func CouponDiscountFor(coupon *models.Coupon, basePrice decimal.Decimal) decimal.Decimal {
	if coupon.DiscountType == models.DiscountTypePercentage {
		discount := basePrice.Mul(coupon.DiscountValue).Div(decimal.NewFromInt(100)).Round(2)
		if coupon.MaxDiscount != nil && discount.GreaterThan(*coupon.MaxDiscount) {
			discount = *coupon.MaxDiscount
		}
		return discount
	}
	discount := coupon.DiscountValue
	if discount.GreaterThan(basePrice) {
		discount = basePrice
	}
	return discount
}

// ApplyCoupon validates a coupon code against a base price and returns the
// discount it would grant. It does not consume a use; RedeemCoupon does that
// inside the booking transaction once the discount is actually applied.
func ApplyCoupon(db *gorm.DB, code string, basePrice decimal.Decimal) (decimal.Decimal, *models.Coupon, error) {
	normalized := NormalizeCouponCode(code)
	if normalized == "" {
		return decimal.Zero, nil, ErrCouponNotFound
	}

	var coupon models.Coupon
	if err := db.Where("upper(code) = ?", normalized).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil, ErrCouponNotFound
		}
		return decimal.Zero, nil, err
	}

	if !coupon.IsValidOn(time.Now()) {
		return decimal.Zero, nil, ErrCouponInvalid
	}
	if basePrice.LessThan(coupon.MinBookingAmount) {
		return decimal.Zero, nil, ErrCouponInvalid
	}

	return CouponDiscountFor(&coupon, basePrice), &coupon, nil
}

// RedeemCoupon consumes one use of a coupon. The increment is guarded by the
// usage cap in a single UPDATE, so two bookings racing for the last use can
// never both succeed. Uses are never released, even if the booking is later
// cancelled.
func RedeemCoupon(tx *gorm.DB, code string) error {
	normalized := NormalizeCouponCode(code)

	result := tx.Model(&models.Coupon{}).
		Where("upper(code) = ? AND used_count < max_uses", normalized).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCouponInvalid
	}
	return nil
}
