package services

import (
	"testing"

	"github.com/jatinvaland/dwarka-getaways/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "FIRST500", NormalizeCouponCode("first500"))
	assert.Equal(t, "TEMPLE20", NormalizeCouponCode("  Temple20  "))
	assert.Equal(t, "", NormalizeCouponCode("   "))
}

func TestCouponDiscountFor(t *testing.T) {
	cap2000 := d("2000")

	tests := []struct {
		name   string
		coupon models.Coupon
		base   string
		want   string
	}{
		{
			name: "percentage",
			coupon: models.Coupon{
				DiscountType:  models.DiscountTypePercentage,
				DiscountValue: d("20"),
			},
			base: "7000",
			want: "1400.00",
		},
		{
			name: "percentage clamped to max discount",
			coupon: models.Coupon{
				DiscountType:  models.DiscountTypePercentage,
				DiscountValue: d("20"),
				MaxDiscount:   &cap2000,
			},
			base: "50000",
			want: "2000.00",
		},
		{
			name: "fixed",
			coupon: models.Coupon{
				DiscountType:  models.DiscountTypeFixed,
				DiscountValue: d("500"),
			},
			base: "7000",
			want: "500.00",
		},
		{
			name: "fixed clamped to base price",
			coupon: models.Coupon{
				DiscountType:  models.DiscountTypeFixed,
				DiscountValue: d("500"),
			},
			base: "300",
			want: "300.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CouponDiscountFor(&tt.coupon, d(tt.base))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestCouponDiscountForPercentageRounding(t *testing.T) {
	coupon := models.Coupon{
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: decimal.NewFromFloat(12.5),
	}
	got := CouponDiscountFor(&coupon, d("999.99"))
	// 999.99 x 12.5% = 124.99875, rounded half-up at two decimals
	assert.Equal(t, "125.00", got.StringFixed(2))
}
