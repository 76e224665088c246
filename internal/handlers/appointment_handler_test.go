package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpoint/clinic-scheduler/internal/audit"
	"github.com/docpoint/clinic-scheduler/internal/cache"
	domain "github.com/docpoint/clinic-scheduler/internal/domain/schedule"
	"github.com/docpoint/clinic-scheduler/internal/handlers"
	"github.com/docpoint/clinic-scheduler/internal/infra/repository"
	"github.com/docpoint/clinic-scheduler/internal/models"
	ucSchedule "github.com/docpoint/clinic-scheduler/internal/usecase/schedule"
)

type nopRecorder struct{}

func (nopRecorder) Log(uint, string, string, string, string, any) error { return nil }

var fixedNow = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ledger := repository.NewMemoryLedger()
	ledger.AddProvider(models.Provider{
		ID:          1,
		Name:        "Dr. Verma",
		Timezone:    "UTC",
		OpenHour:    10,
		CloseHour:   21,
		SlotMinutes: 30,
		Active:      true,
	})

	index := domain.NewIndex()
	locks := domain.NewSlotLocks()
	clock := domain.Clock(func() time.Time { return fixedNow })
	dispatcher := audit.NewDispatcher(nopRecorder{})
	noCache := (*cache.WindowCache)(nil)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucSchedule.NewBookSlot(ledger, ledger, index, locks, dispatcher, noCache, clock, 7),
		ucSchedule.NewCancelAppointment(ledger, ledger, index, locks, dispatcher, noCache, clock),
		ucSchedule.NewCompleteAppointment(ledger, ledger, locks, dispatcher, clock),
		ucSchedule.NewListByProviderDate(ledger, ledger),
		ucSchedule.NewListBySubject(ledger),
	)
	scheduleHandler := handlers.NewScheduleHandler(
		ucSchedule.NewGetWindow(ledger, index, noCache, clock, 7),
	)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/providers/:id/window", scheduleHandler.Window)
	api.POST("/appointments", appointmentHandler.Book)
	api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
	api.GET("/subjects/:id/appointments", appointmentHandler.ListBySubject)

	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookPayload() map[string]any {
	return map[string]any{
		"provider_id": 1,
		"subject_id":  "subject-1",
		"date":        "2026-3-10",
		"time":        "10:00 AM",
	}
}

func TestBookEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/appointments", bookPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var ap models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))
	assert.NotEmpty(t, ap.ID)
	assert.Equal(t, "confirmed", ap.Status)
	assert.Equal(t, "2026-3-10", ap.SlotDate)

	t.Run("double booking conflicts", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/appointments", bookPayload())
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "slot_unavailable")
	})

	t.Run("subject sees the booking", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/subjects/subject-1/appointments", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), ap.ID)
	})
}

func TestBookEndpoint_Rejections(t *testing.T) {
	r := newTestRouter(t)

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/appointments", map[string]any{"provider_id": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("slot outside working hours", func(t *testing.T) {
		p := bookPayload()
		p["time"] = "09:00 AM"
		w := doJSON(r, http.MethodPost, "/api/appointments", p)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_slot")
	})

	t.Run("unknown provider", func(t *testing.T) {
		p := bookPayload()
		p["provider_id"] = 42
		w := doJSON(r, http.MethodPost, "/api/appointments", p)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCancelEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/appointments", bookPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var ap models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))

	w = doJSON(r, http.MethodPatch, "/api/appointments/"+ap.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("repeat cancel signals the condition", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/appointments/"+ap.ID+"/cancel", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already_cancelled")
	})

	t.Run("cancelled slot is bookable again", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/appointments", bookPayload())
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/appointments/missing/cancel", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWindowEndpoint(t *testing.T) {
	r := newTestRouter(t)

	// occupy one slot first
	w := doJSON(r, http.MethodPost, "/api/appointments", bookPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/providers/1/window?days=7", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Date  string `json:"date"`
			Slots []struct {
				Label     string `json:"label"`
				Available bool   `json:"available"`
			} `json:"slots"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 7, resp.Total)

	day1 := resp.Data[1]
	assert.Equal(t, "2026-3-10", day1.Date)
	require.Len(t, day1.Slots, 22)
	for _, slot := range day1.Slots {
		if slot.Label == "10:00 AM" {
			assert.False(t, slot.Available)
		} else {
			assert.True(t, slot.Available)
		}
	}

	t.Run("unknown provider", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/providers/9/window", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
