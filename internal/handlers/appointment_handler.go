package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docpoint/clinic-scheduler/internal/httperr"
	"github.com/docpoint/clinic-scheduler/internal/httpresp"
	ucSchedule "github.com/docpoint/clinic-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC          *ucSchedule.BookSlot
	cancelUC        *ucSchedule.CancelAppointment
	completeUC      *ucSchedule.CompleteAppointment
	listByDateUC    *ucSchedule.ListByProviderDate
	listBySubjectUC *ucSchedule.ListBySubject
}

func NewAppointmentHandler(
	bookUC *ucSchedule.BookSlot,
	cancelUC *ucSchedule.CancelAppointment,
	completeUC *ucSchedule.CompleteAppointment,
	listByDateUC *ucSchedule.ListByProviderDate,
	listBySubjectUC *ucSchedule.ListBySubject,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:          bookUC,
		cancelUC:        cancelUC,
		completeUC:      completeUC,
		listByDateUC:    listByDateUC,
		listBySubjectUC: listBySubjectUC,
	}
}

// ======================================================
// CREATE (book)
// ======================================================

type bookRequest struct {
	ProviderID uint   `json:"provider_id" binding:"required"`
	SubjectID  string `json:"subject_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
}

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "provider_id, subject_id, date and time are required.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucSchedule.BookSlotInput{
		ProviderID: req.ProviderID,
		SubjectID:  req.SubjectID,
		Date:       req.Date,
		Label:      req.Time,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.completeUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AppointmentHandler) ListByProvider(c *gin.Context) {
	providerID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter 'date' is required.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), providerID, date)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListBySubject(c *gin.Context) {
	out, err := h.listBySubjectUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.List(c, out)
}
