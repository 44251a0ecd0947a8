package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CareSlotLabs/hospital-scheduler/internal/audit"
	"github.com/CareSlotLabs/hospital-scheduler/internal/domain/actor"
	domain "github.com/CareSlotLabs/hospital-scheduler/internal/domain/appointment"
	"github.com/CareSlotLabs/hospital-scheduler/internal/httperr"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
	"github.com/CareSlotLabs/hospital-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
	tz    string
}

func NewCancelAppointment(
	repo domain.Repository,
	audit audit.Recorder,
	tz string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	by actor.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found")
		}
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(ap, by, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: string(by.Role),
		ActorID:   &by.ID,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
