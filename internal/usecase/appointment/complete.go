package appointment

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/CareSlotLabs/hospital-scheduler/internal/audit"
	"github.com/CareSlotLabs/hospital-scheduler/internal/domain/actor"
	domain "github.com/CareSlotLabs/hospital-scheduler/internal/domain/appointment"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
	"github.com/CareSlotLabs/hospital-scheduler/internal/timezone"
)

type CompleteAppointmentInput struct {
	AppointmentID uint
	Diagnosis     string
	Prescription  string
	Notes         string
}

type CompleteAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
	tz    string
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit audit.Recorder,
	tz string,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// Execute completes a Booked appointment and records its treatment in the
// same transaction. Exactly one treatment ever exists per appointment; a
// repeated call fails the transition guard before anything is written.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	by actor.Actor,
	in CompleteAppointmentInput,
) (*models.Appointment, *models.Treatment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, httperr.ErrNotFound("appointment_not_found")
		}
		return nil, nil, err
	}

	tr := &models.Treatment{
		Diagnosis:    strings.TrimSpace(in.Diagnosis),
		Prescription: in.Prescription,
		Notes:        in.Notes,
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Complete(ap, by, tr, now); err != nil {
		return nil, nil, err
	}

	if err := uc.repo.SaveCompletion(ctx, ap, tr); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: string(by.Role),
		ActorID:   &by.ID,
		Action:    "appointment_completed",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, tr, nil
}
