package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/CareSlotLabs/hospital-scheduler/internal/domain/appointment"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
)

func TestSetWeeklyAvailabilityReplacesSchedule(t *testing.T) {
	repo := newMemRepo()
	repo.windows[2] = []models.AvailabilityWindow{
		{DoctorID: 2, Weekday: "Monday", StartTime: "08:00", EndTime: "12:00"},
	}
	recorder := &memAudit{}
	uc := NewSetWeeklyAvailability(repo, recorder)

	windows, err := uc.Execute(context.Background(), 2, []domain.WindowInput{
		{Weekday: "Tuesday", StartTime: "09:00", EndTime: "17:00"},
		{Weekday: "Thursday", StartTime: "10:00", EndTime: "14:00"},
	})

	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, "Tuesday", windows[0].Weekday)
	assert.Equal(t, "Thursday", windows[1].Weekday)
	assert.Equal(t, uint(2), windows[0].DoctorID)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, "availability_replaced", recorder.events[0].Action)
}

func TestSetWeeklyAvailabilityEmptySetClears(t *testing.T) {
	repo := newMemRepo()
	repo.windows[2] = fullWeek(2)
	uc := NewSetWeeklyAvailability(repo, &memAudit{})

	windows, err := uc.Execute(context.Background(), 2, nil)

	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestSetWeeklyAvailabilityRejectedSetLeavesScheduleUntouched(t *testing.T) {
	repo := newMemRepo()
	repo.windows[2] = []models.AvailabilityWindow{
		{DoctorID: 2, Weekday: "Monday", StartTime: "08:00", EndTime: "12:00"},
	}
	recorder := &memAudit{}
	uc := NewSetWeeklyAvailability(repo, recorder)

	tests := []struct {
		name    string
		windows []domain.WindowInput
		code    string
	}{
		{
			name: "inverted range",
			windows: []domain.WindowInput{
				{Weekday: "Tuesday", StartTime: "17:00", EndTime: "09:00"},
			},
			code: "invalid_window_range",
		},
		{
			name: "duplicate weekday",
			windows: []domain.WindowInput{
				{Weekday: "Tuesday", StartTime: "09:00", EndTime: "12:00"},
				{Weekday: "Tuesday", StartTime: "13:00", EndTime: "17:00"},
			},
			code: "duplicate_weekday",
		},
		{
			name: "unknown weekday",
			windows: []domain.WindowInput{
				{Weekday: "Someday", StartTime: "09:00", EndTime: "12:00"},
			},
			code: "unknown_weekday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), 2, tt.windows)
			assert.True(t, httperr.IsBusiness(err, tt.code))
		})
	}

	// The stored Monday window survived every rejected replace.
	stored, _ := repo.ListWindows(context.Background(), 2)
	require.Len(t, stored, 1)
	assert.Equal(t, "Monday", stored[0].Weekday)
	assert.Empty(t, recorder.events)
}

// Replacing the schedule takes effect for the next booking: a weekday that
// was open before the replace and closed after it rejects new bookings,
// while existing ones keep their slot.
func TestAvailabilityReplaceAffectsNextBooking(t *testing.T) {
	f := newBookingFixture()
	setUC := NewSetWeeklyAvailability(f.repo, f.recorder)

	date, weekday := futureDate(1)

	in := BookAppointmentInput{PatientID: 1, DoctorID: 2, Date: date, Time: "10:00"}
	booked, _, err := f.uc.Execute(context.Background(), in)
	require.NoError(t, err)

	var replacement []domain.WindowInput
	for _, w := range fullWeek(2) {
		if w.Weekday == weekday {
			continue
		}
		replacement = append(replacement, domain.WindowInput{
			Weekday:   w.Weekday,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}
	_, err = setUC.Execute(context.Background(), 2, replacement)
	require.NoError(t, err)

	in.Time = "11:00"
	_, _, err = f.uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "no_availability_for_day"))

	assert.Equal(t, string(domain.StatusBooked), f.repo.appointments[booked.ID].Status)
}

func TestGetAvailability(t *testing.T) {
	repo := newMemRepo()
	repo.windows[2] = fullWeek(2)
	uc := NewGetAvailability(repo)

	windows, err := uc.Execute(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, windows, 7)

	windows, err = uc.Execute(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, windows)
}
