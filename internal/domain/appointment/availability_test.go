package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
)

func TestWeekdayName(t *testing.T) {
	// 2026-01-05 is a Monday.
	d, err := time.Parse(DateLayout, "2026-01-05")
	assert.NoError(t, err)
	assert.Equal(t, "Monday", WeekdayName(d))

	d, _ = time.Parse(DateLayout, "2026-01-11")
	assert.Equal(t, "Sunday", WeekdayName(d))
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("09:00"))
	assert.True(t, ValidClock("00:00"))
	assert.True(t, ValidClock("23:59"))

	assert.False(t, ValidClock("9:00"))
	assert.False(t, ValidClock("24:00"))
	assert.False(t, ValidClock("09:60"))
	assert.False(t, ValidClock("09-00"))
	assert.False(t, ValidClock(""))
}

func TestValidateWindows(t *testing.T) {
	tests := []struct {
		name    string
		windows []WindowInput
		code    string
	}{
		{
			name: "valid weekly set",
			windows: []WindowInput{
				{Weekday: "Monday", StartTime: "09:00", EndTime: "17:00"},
				{Weekday: "Tuesday", StartTime: "10:00", EndTime: "14:00"},
			},
		},
		{
			name:    "empty set is valid",
			windows: nil,
		},
		{
			name: "unknown weekday",
			windows: []WindowInput{
				{Weekday: "Funday", StartTime: "09:00", EndTime: "17:00"},
			},
			code: "unknown_weekday",
		},
		{
			name: "lowercase weekday rejected",
			windows: []WindowInput{
				{Weekday: "monday", StartTime: "09:00", EndTime: "17:00"},
			},
			code: "unknown_weekday",
		},
		{
			name: "duplicate weekday",
			windows: []WindowInput{
				{Weekday: "Monday", StartTime: "09:00", EndTime: "12:00"},
				{Weekday: "Monday", StartTime: "13:00", EndTime: "17:00"},
			},
			code: "duplicate_weekday",
		},
		{
			name: "bad clock format",
			windows: []WindowInput{
				{Weekday: "Monday", StartTime: "9am", EndTime: "17:00"},
			},
			code: "invalid_time_format",
		},
		{
			name: "start equal to end",
			windows: []WindowInput{
				{Weekday: "Monday", StartTime: "09:00", EndTime: "09:00"},
			},
			code: "invalid_window_range",
		},
		{
			name: "start after end",
			windows: []WindowInput{
				{Weekday: "Monday", StartTime: "17:00", EndTime: "09:00"},
			},
			code: "invalid_window_range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWindows(tt.windows)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.code), "want code %q, got %v", tt.code, err)
		})
	}
}

func TestWindowCoversInclusiveEnds(t *testing.T) {
	w := &models.AvailabilityWindow{StartTime: "09:00", EndTime: "17:00"}

	assert.True(t, WindowCovers(w, "09:00"))
	assert.True(t, WindowCovers(w, "17:00"))
	assert.True(t, WindowCovers(w, "12:30"))

	assert.False(t, WindowCovers(w, "08:59"))
	assert.False(t, WindowCovers(w, "17:01"))
}
