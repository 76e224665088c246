package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/docpoint/clinic-scheduler/internal/httperr"
)

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return 0, false
	}
	return uint(v), true
}

// writeBusiness maps the core's recoverable conditions to HTTP
// statuses; anything unexpected becomes a 500.
func writeBusiness(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch be.Code {
	case "slot_unavailable":
		httperr.Conflict(c, be.Code, "Slot is already booked; pick another one.")
	case "already_cancelled":
		httperr.Conflict(c, be.Code, "Appointment is already cancelled.")
	case "invalid_state":
		httperr.Conflict(c, be.Code, "Appointment state does not allow this change.")
	case "invalid_slot":
		httperr.Unprocessable(c, be.Code, "Requested date/time is not a bookable slot.")
	case "appointment_not_found":
		httperr.NotFound(c, be.Code, "Appointment not found.")
	case "provider_not_found":
		httperr.NotFound(c, be.Code, "Provider not found.")
	default:
		httperr.BadRequest(c, be.Code, "Request rejected.")
	}
}
