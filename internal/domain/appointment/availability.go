package appointment

import (
	"time"

	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
)

// Weekday names match time.Weekday.String(), so the registry and the booking
// validator always agree on the calendar convention.
var weekdays = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
}

func WeekdayName(date time.Time) string {
	return date.Weekday().String()
}

func ValidClock(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

type WindowInput struct {
	Weekday   string `json:"weekday" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// ValidateWindows checks a full weekly set before it replaces the stored one.
// The whole set is rejected on the first bad window so a replace is always
// all-or-nothing.
func ValidateWindows(windows []WindowInput) error {
	seen := make(map[string]bool, len(windows))

	for _, w := range windows {
		if !weekdays[w.Weekday] {
			return httperr.ErrValidation("unknown_weekday")
		}
		if seen[w.Weekday] {
			return httperr.ErrValidation("duplicate_weekday")
		}
		seen[w.Weekday] = true

		if !ValidClock(w.StartTime) || !ValidClock(w.EndTime) {
			return httperr.ErrValidation("invalid_time_format")
		}
		if w.StartTime >= w.EndTime {
			return httperr.ErrValidation("invalid_window_range")
		}
	}

	return nil
}

// WindowCovers reports whether t falls inside the window. Both ends are
// inclusive: booking exactly at start or end succeeds.
func WindowCovers(w *models.AvailabilityWindow, t string) bool {
	return w.StartTime <= t && t <= w.EndTime
}
