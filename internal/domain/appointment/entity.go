package appointment

import (
	"time"

	"github.com/CareSlotLabs/hospital-scheduler/internal/domain/actor"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ===============================
// Domain Actions
// ===============================

// Cancel moves a Booked appointment to Cancelled. Only the assigned doctor or
// the owning patient may cancel; the check runs before any state mutation.
func Cancel(ap *models.Appointment, by actor.Actor, now time.Time) error {
	if !mayAct(ap, by) {
		return httperr.ErrPermission("permission_denied")
	}

	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Complete moves a Booked appointment to Completed and attaches the treatment
// record. Only the assigned doctor may complete.
func Complete(ap *models.Appointment, by actor.Actor, tr *models.Treatment, now time.Time) error {
	if by.Role != actor.RoleDoctor || ap.DoctorID != by.ID {
		return httperr.ErrPermission("permission_denied")
	}

	if tr == nil || tr.Diagnosis == "" {
		return httperr.ErrValidation("diagnosis_required")
	}

	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	tr.AppointmentID = ap.ID
	return nil
}

func mayAct(ap *models.Appointment, by actor.Actor) bool {
	switch by.Role {
	case actor.RoleDoctor:
		return ap.DoctorID == by.ID
	case actor.RolePatient:
		return ap.PatientID == by.ID
	}
	return false
}
