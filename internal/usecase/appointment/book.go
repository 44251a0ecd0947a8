package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/CareSlotLabs/hospital-scheduler/internal/audit"
	domain "github.com/CareSlotLabs/hospital-scheduler/internal/domain/appointment"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
	"github.com/CareSlotLabs/hospital-scheduler/internal/notify"
	"github.com/CareSlotLabs/hospital-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	PatientID uint
	DoctorID  uint
	Date      string
	Time      string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	audit    audit.Recorder
	notifier *notify.Notifier
	tz       string
}

func NewBookAppointment(
	repo domain.Repository,
	audit audit.Recorder,
	notifier *notify.Notifier,
	tz string,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		tz:       tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the booking validation sequence in order, short-circuiting on
// the first failure, then inserts the appointment atomically against the
// slot. The returned warnings carry notification failures; they never fail
// the booking itself.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, []string, error) {

	patient, err := uc.repo.GetPatientByID(ctx, in.PatientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, httperr.ErrNotFound("patient_not_found")
		}
		return nil, nil, err
	}
	if patient.IsBlacklisted {
		return nil, nil, httperr.ErrPermission("patient_blocked")
	}

	// 1. Doctor must exist and not be blacklisted.
	doctor, err := uc.repo.GetDoctorByID(ctx, in.DoctorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, httperr.ErrValidation("doctor_unavailable")
		}
		return nil, nil, err
	}
	if doctor.IsBlacklisted {
		return nil, nil, httperr.ErrValidation("doctor_unavailable")
	}

	// 2. Date must be today or later in the server's local calendar.
	date, err := time.ParseInLocation(
		domain.DateLayout,
		in.Date,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, nil, httperr.ErrValidation("invalid_date")
	}
	if date.Before(timezone.Today(uc.tz)) {
		return nil, nil, httperr.ErrValidation("invalid_date")
	}

	if !domain.ValidClock(in.Time) {
		return nil, nil, httperr.ErrValidation("invalid_time")
	}

	// 3. No other active appointment may hold the slot.
	taken, err := uc.repo.HasActiveAppointment(ctx, in.DoctorID, in.Date, in.Time)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		return nil, nil, httperr.ErrConflict("slot_conflict")
	}

	// 4. The doctor must have a window for that weekday.
	window, err := uc.repo.GetWindow(ctx, in.DoctorID, domain.WeekdayName(date))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, httperr.ErrValidation("no_availability_for_day")
		}
		return nil, nil, err
	}

	// 5. The time must fall inside the window, both ends inclusive.
	if !domain.WindowCovers(window, in.Time) {
		return nil, nil, httperr.ErrValidation("outside_available_hours")
	}

	ap := &models.Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Date:      in.Date,
		Time:      in.Time,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointmentInSlot(ctx, ap); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: "patient",
		ActorID:   &in.PatientID,
		Action:    "appointment_booked",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	warnings := uc.notifier.BookingConfirmed(
		patient.Email,
		patient.Name,
		doctor.Name,
		in.Date,
		in.Time,
	)

	return ap, warnings, nil
}
