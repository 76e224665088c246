package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/docpoint/clinic-scheduler/internal/httpresp"
	ucSchedule "github.com/docpoint/clinic-scheduler/internal/usecase/schedule"
)

type ScheduleHandler struct {
	windowUC *ucSchedule.GetWindow
}

func NewScheduleHandler(windowUC *ucSchedule.GetWindow) *ScheduleHandler {
	return &ScheduleHandler{windowUC: windowUC}
}

// Window renders the provider's bookable slots over the rolling horizon
// with a free/busy flag per slot.
func (h *ScheduleHandler) Window(c *gin.Context) {
	providerID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	days, _ := strconv.Atoi(c.Query("days"))

	window, err := h.windowUC.Execute(c.Request.Context(), providerID, days)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.List(c, window)
}
