package schedule

import "github.com/docpoint/clinic-scheduler/internal/httperr"

// Recoverable business conditions reported by the booking core. None of
// them is fatal to the serving process; the HTTP layer maps the codes
// to statuses.
var (
	// ErrSlotUnavailable: the slot is taken, or the caller lost a race
	// for it. Re-fetch the window and pick another slot.
	ErrSlotUnavailable = httperr.ErrBusiness("slot_unavailable")

	// ErrInvalidSlot: the (date, label) pair is not one the generator
	// currently produces — past slot, outside working hours, or beyond
	// the window horizon. Caller error, not retryable as-is.
	ErrInvalidSlot = httperr.ErrBusiness("invalid_slot")

	ErrNotFound         = httperr.ErrBusiness("appointment_not_found")
	ErrAlreadyCancelled = httperr.ErrBusiness("already_cancelled")
	ErrInvalidState     = httperr.ErrBusiness("invalid_state")
	ErrProviderNotFound = httperr.ErrBusiness("provider_not_found")
)
