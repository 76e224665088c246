package schedule

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ===============================
// Validations
// ===============================

// CanCancel decides whether an appointment may still be cancelled. A
// repeat cancel is reported distinctly so callers can treat it as a
// no-op if they want to.
func CanCancel(current Status) error {
	switch current {
	case StatusConfirmed:
		return nil
	case StatusCancelled:
		return ErrAlreadyCancelled
	default:
		return ErrInvalidState
	}
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return ErrInvalidState
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
