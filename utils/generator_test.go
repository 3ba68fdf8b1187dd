package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var bookingIDPattern = regexp.MustCompile(`^DWK[0-9A-F]{8}$`)

func TestGenerateBookingID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateBookingID()
		assert.Regexp(t, bookingIDPattern, id)
		assert.False(t, seen[id], "duplicate booking id %s", id)
		seen[id] = true
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hotel Dwarka Palace", "hotel-dwarka-palace"},
		{"  Gomti Ghat Residency  ", "gomti-ghat-residency"},
		{"Sea-View & Temple View!", "sea-view-temple-view"},
		{"Deluxe Room 101", "deluxe-room-101"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in))
	}
}
