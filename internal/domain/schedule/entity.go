package schedule

import (
	"time"

	"github.com/docpoint/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Occupied reports whether the appointment still holds its slot.
// Cancellation is the only transition that frees a slot; a completed
// appointment keeps its label in the availability index.
func Occupied(ap *models.Appointment) bool {
	return ap.Status != string(StatusCancelled)
}
