package handlers

import (
	"time"

	domain "github.com/CareSlotLabs/hospital-scheduler/internal/domain/appointment"
	"github.com/CareSlotLabs/hospital-scheduler/internal/timezone"
)

// Appointment dates are stored as "2006-01-02" strings, so range filters on
// them are plain string comparisons over dates formatted the same way.

func todayString(tz string) string {
	return timezone.Today(tz).Format(domain.DateLayout)
}

func daysFromToday(tz string, days int) string {
	return timezone.Today(tz).AddDate(0, 0, days).Format(domain.DateLayout)
}

func validDateString(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}
