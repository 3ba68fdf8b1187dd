package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionStatus(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending can be confirmed", BookingStatusPending, BookingStatusConfirmed, true},
		{"pending can be cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"pending cannot skip to completed", BookingStatusPending, BookingStatusCompleted, false},
		{"confirmed can complete", BookingStatusConfirmed, BookingStatusCompleted, true},
		{"confirmed can be cancelled", BookingStatusConfirmed, BookingStatusCancelled, true},
		{"confirmed never reverts to pending", BookingStatusConfirmed, BookingStatusPending, false},
		{"cancelled is terminal", BookingStatusCancelled, BookingStatusConfirmed, false},
		{"cancelled never reopens as pending", BookingStatusCancelled, BookingStatusPending, false},
		{"completed is terminal", BookingStatusCompleted, BookingStatusConfirmed, false},
		{"completed never cancels", BookingStatusCompleted, BookingStatusCancelled, false},
		{"same state is a no-op", BookingStatusConfirmed, BookingStatusConfirmed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionStatus(tt.from, tt.to))
		})
	}
}
