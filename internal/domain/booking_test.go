package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Overlaps(t *testing.T) {
	base := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	booking := &Booking{StartTime: base, EndTime: base.Add(time.Hour)} // [10:00, 11:00)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical interval", base, base.Add(time.Hour), true},
		{"partial overlap", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"contained", base.Add(15 * time.Minute), base.Add(45 * time.Minute), true},
		{"containing", base.Add(-time.Hour), base.Add(2 * time.Hour), true},
		{"back to back after", base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"back to back before", base.Add(-time.Hour), base, false},
		{"disjoint", base.Add(3 * time.Hour), base.Add(4 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.start, tt.end))
		})
	}
}
