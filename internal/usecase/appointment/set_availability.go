package appointment

import (
	"context"

	"github.com/CareSlotLabs/hospital-scheduler/internal/audit"
	domain "github.com/CareSlotLabs/hospital-scheduler/internal/domain/appointment"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
)

type SetWeeklyAvailability struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewSetWeeklyAvailability(
	repo domain.Repository,
	audit audit.Recorder,
) *SetWeeklyAvailability {
	return &SetWeeklyAvailability{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the doctor's entire weekly schedule. The supplied set is
// validated up front and written in one transaction, so a rejected window
// leaves the previous schedule untouched.
func (uc *SetWeeklyAvailability) Execute(
	ctx context.Context,
	doctorID uint,
	windows []domain.WindowInput,
) ([]models.AvailabilityWindow, error) {

	if err := domain.ValidateWindows(windows); err != nil {
		return nil, err
	}

	toCreate := make([]models.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		toCreate = append(toCreate, models.AvailabilityWindow{
			DoctorID:  doctorID,
			Weekday:   w.Weekday,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}

	if err := uc.repo.ReplaceWindows(ctx, doctorID, toCreate); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: "doctor",
		ActorID:   &doctorID,
		Action:    "availability_replaced",
		Entity:    "availability_window",
		Metadata:  map[string]any{"windows": len(toCreate)},
	})

	return uc.repo.ListWindows(ctx, doctorID)
}
