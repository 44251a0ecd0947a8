package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/CareSlotLabs/hospital-scheduler/internal/domain/actor"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
)

func bookedAppointment() *models.Appointment {
	return &models.Appointment{
		ID:        42,
		PatientID: 5,
		DoctorID:  3,
		Date:      "2026-09-14",
		Time:      "10:00",
		Status:    string(StatusBooked),
	}
}

func TestCancelByOwningPatient(t *testing.T) {
	ap := bookedAppointment()
	now := time.Now()

	err := Cancel(ap, actor.Actor{ID: 5, Role: actor.RolePatient}, now)

	assert.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestCancelByAssignedDoctor(t *testing.T) {
	ap := bookedAppointment()

	err := Cancel(ap, actor.Actor{ID: 3, Role: actor.RoleDoctor}, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), ap.Status)
}

func TestCancelPermissionDenied(t *testing.T) {
	cases := []actor.Actor{
		{ID: 99, Role: actor.RolePatient},
		{ID: 99, Role: actor.RoleDoctor},
		{ID: 1, Role: actor.RoleAdmin},
	}

	for _, by := range cases {
		ap := bookedAppointment()
		err := Cancel(ap, by, time.Now())

		assert.True(t, httperr.IsBusiness(err, "permission_denied"), "actor %+v", by)
		assert.Equal(t, string(StatusBooked), ap.Status)
		assert.Nil(t, ap.CancelledAt)
	}
}

func TestCancelCompletedAppointment(t *testing.T) {
	ap := bookedAppointment()
	ap.Status = string(StatusCompleted)

	err := Cancel(ap, actor.Actor{ID: 5, Role: actor.RolePatient}, time.Now())

	assert.True(t, httperr.IsBusiness(err, "cannot_cancel_completed"))
	assert.Equal(t, string(StatusCompleted), ap.Status)
}

func TestCancelTwice(t *testing.T) {
	ap := bookedAppointment()
	by := actor.Actor{ID: 5, Role: actor.RolePatient}

	assert.NoError(t, Cancel(ap, by, time.Now()))

	err := Cancel(ap, by, time.Now())
	assert.True(t, httperr.IsBusiness(err, "already_cancelled"))
}

func TestCompleteByAssignedDoctor(t *testing.T) {
	ap := bookedAppointment()
	tr := &models.Treatment{Diagnosis: "Seasonal flu"}
	now := time.Now()

	err := Complete(ap, actor.Actor{ID: 3, Role: actor.RoleDoctor}, tr, now)

	assert.NoError(t, err)
	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.Equal(t, now, *ap.CompletedAt)
	assert.Equal(t, ap.ID, tr.AppointmentID)
}

func TestCompleteRequiresAssignedDoctor(t *testing.T) {
	tr := &models.Treatment{Diagnosis: "Seasonal flu"}

	cases := []actor.Actor{
		{ID: 7, Role: actor.RoleDoctor},
		{ID: 5, Role: actor.RolePatient},
		{ID: 1, Role: actor.RoleAdmin},
	}

	for _, by := range cases {
		ap := bookedAppointment()
		err := Complete(ap, by, tr, time.Now())

		assert.True(t, httperr.IsBusiness(err, "permission_denied"), "actor %+v", by)
		assert.Equal(t, string(StatusBooked), ap.Status)
	}
}

func TestCompleteRequiresDiagnosis(t *testing.T) {
	ap := bookedAppointment()
	by := actor.Actor{ID: 3, Role: actor.RoleDoctor}

	err := Complete(ap, by, &models.Treatment{}, time.Now())
	assert.True(t, httperr.IsBusiness(err, "diagnosis_required"))

	err = Complete(ap, by, nil, time.Now())
	assert.True(t, httperr.IsBusiness(err, "diagnosis_required"))

	assert.Equal(t, string(StatusBooked), ap.Status)
}

func TestCompleteTwice(t *testing.T) {
	ap := bookedAppointment()
	by := actor.Actor{ID: 3, Role: actor.RoleDoctor}

	assert.NoError(t, Complete(ap, by, &models.Treatment{Diagnosis: "Seasonal flu"}, time.Now()))

	err := Complete(ap, by, &models.Treatment{Diagnosis: "Something else"}, time.Now())
	assert.True(t, httperr.IsBusiness(err, "already_completed"))
}
