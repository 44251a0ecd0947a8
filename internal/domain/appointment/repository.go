package appointment

import (
	"context"

	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
)

type Repository interface {
	// -------- Participants --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	GetPatientByID(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)

	// -------- Appointment (create / conflict) --------
	HasActiveAppointment(
		ctx context.Context,
		doctorID uint,
		date string,
		clock string,
	) (bool, error)

	// CreateAppointmentInSlot re-checks the slot under a row lock and inserts
	// in one transaction; the partial unique index backs it up, so two
	// concurrent bookings for the same slot cannot both succeed.
	CreateAppointmentInSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// SaveCompletion persists the Completed status and the treatment record
	// in one transaction.
	SaveCompletion(
		ctx context.Context,
		ap *models.Appointment,
		tr *models.Treatment,
	) error

	GetTreatmentByAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Treatment, error)

	// -------- Availability --------
	GetWindow(
		ctx context.Context,
		doctorID uint,
		weekday string,
	) (*models.AvailabilityWindow, error)

	ListWindows(
		ctx context.Context,
		doctorID uint,
	) ([]models.AvailabilityWindow, error)

	// ReplaceWindows discards every stored window for the doctor and writes
	// the supplied set in one transaction.
	ReplaceWindows(
		ctx context.Context,
		doctorID uint,
		windows []models.AvailabilityWindow,
	) error
}
