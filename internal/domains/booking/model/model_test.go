package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/booking/model"
)

func TestStatus_Predecessor(t *testing.T) {
	tests := []struct {
		name    string
		status  model.Status
		want    model.Status
		hasPred bool
	}{
		{
			name:    "checked-in follows confirmed",
			status:  model.StatusCheckedIn,
			want:    model.StatusConfirmed,
			hasPred: true,
		},
		{
			name:    "checked-out follows checked-in",
			status:  model.StatusCheckedOut,
			want:    model.StatusCheckedIn,
			hasPred: true,
		},
		{
			name:    "confirmed is the entry state",
			status:  model.StatusConfirmed,
			hasPred: false,
		},
		{
			name:    "unknown status",
			status:  model.Status("Cancelled"),
			hasPred: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, ok := tt.status.Predecessor()

			assert.Equal(t, tt.hasPred, ok)
			if tt.hasPred {
				assert.Equal(t, tt.want, pred)
			}
		})
	}
}

func TestFormatRef(t *testing.T) {
	tests := []struct {
		name string
		seq  int64
		want string
	}{
		{name: "first booking", seq: 1, want: "BK0001"},
		{name: "mid-range", seq: 42, want: "BK0042"},
		{name: "padding exhausted", seq: 10000, want: "BK10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.FormatRef("BK", 4, tt.seq))
		})
	}
}

func TestNights(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int64
	}{
		{name: "two nights", checkIn: day(10), checkOut: day(12), want: 2},
		{name: "single night", checkIn: day(10), checkOut: day(11), want: 1},
		{name: "same day", checkIn: day(10), checkOut: day(10), want: 0},
		{name: "inverted range", checkIn: day(12), checkOut: day(10), want: -2},
		{name: "partial day rounds up", checkIn: day(10), checkOut: day(11).Add(6 * time.Hour), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Nights(tt.checkIn, tt.checkOut))
		})
	}
}
