package appointment

import "github.com/CareSlotLabs/hospital-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "Booked"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// ===============================
// Transition guards
// ===============================

// CanComplete allows Booked -> Completed only. Completing twice is reported
// with its own code so callers can treat it as a no-op.
func CanComplete(current Status) error {
	switch current {
	case StatusBooked:
		return nil
	case StatusCompleted:
		return httperr.ErrState("already_completed")
	default:
		return httperr.ErrState("invalid_state")
	}
}

// CanCancel allows Booked -> Cancelled only. Completed is terminal and keeps
// its status; cancelling twice is a no-op with its own code.
func CanCancel(current Status) error {
	switch current {
	case StatusBooked:
		return nil
	case StatusCompleted:
		return httperr.ErrState("cannot_cancel_completed")
	case StatusCancelled:
		return httperr.ErrState("already_cancelled")
	default:
		return httperr.ErrState("invalid_state")
	}
}

func InitialStatus() Status {
	return StatusBooked
}
