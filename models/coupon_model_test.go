package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponIsValidOn(t *testing.T) {
	day := func(s string) time.Time {
		v, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %s: %v", s, err)
		}
		return v
	}

	base := Coupon{
		Code:       "TEMPLE20",
		ValidFrom:  day("2026-01-01"),
		ValidUntil: day("2026-03-31"),
		MaxUses:    100,
		UsedCount:  0,
		IsActive:   true,
	}

	tests := []struct {
		name   string
		mutate func(c *Coupon)
		on     string
		want   bool
	}{
		{"inside window", func(c *Coupon) {}, "2026-02-15", true},
		{"first valid day inclusive", func(c *Coupon) {}, "2026-01-01", true},
		{"last valid day inclusive", func(c *Coupon) {}, "2026-03-31", true},
		{"day before window", func(c *Coupon) {}, "2025-12-31", false},
		{"day after window", func(c *Coupon) {}, "2026-04-01", false},
		{"inactive", func(c *Coupon) { c.IsActive = false }, "2026-02-15", false},
		{"usage cap reached", func(c *Coupon) { c.UsedCount = 100 }, "2026-02-15", false},
		{"one use remaining", func(c *Coupon) { c.UsedCount = 99 }, "2026-02-15", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupon := base
			tt.mutate(&coupon)
			assert.Equal(t, tt.want, coupon.IsValidOn(day(tt.on)))
		})
	}
}

func TestCouponIsValidOnIgnoresTimeOfDay(t *testing.T) {
	day := func(s string) time.Time {
		v, _ := time.Parse("2006-01-02", s)
		return v
	}
	coupon := Coupon{
		ValidFrom:  day("2026-01-01"),
		ValidUntil: day("2026-01-31"),
		MaxUses:    10,
		IsActive:   true,
	}

	lastDayEvening := time.Date(2026, 1, 31, 23, 45, 0, 0, time.UTC)
	assert.True(t, coupon.IsValidOn(lastDayEvening))
}
