package routes

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/docpoint/clinic-scheduler/internal/audit"
	"github.com/docpoint/clinic-scheduler/internal/cache"
	"github.com/docpoint/clinic-scheduler/internal/config"
	domain "github.com/docpoint/clinic-scheduler/internal/domain/schedule"
	"github.com/docpoint/clinic-scheduler/internal/handlers"
	infraRepo "github.com/docpoint/clinic-scheduler/internal/infra/repository"
	"github.com/docpoint/clinic-scheduler/internal/middleware"
	ucSchedule "github.com/docpoint/clinic-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	windowCache *cache.WindowCache,
	cfg *config.Config,
) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	ledger := infraRepo.NewGormLedger(db)

	index := domain.NewIndex()
	locks := domain.NewSlotLocks()
	clock := domain.Clock(time.Now)

	if err := ucSchedule.RebuildIndex(context.Background(), ledger, index); err != nil {
		log.Fatalf("failed to rebuild availability index: %v", err)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	windowUC := ucSchedule.NewGetWindow(
		ledger,
		index,
		windowCache,
		clock,
		cfg.WindowDays,
	)

	bookUC := ucSchedule.NewBookSlot(
		ledger,
		ledger,
		index,
		locks,
		auditDispatcher,
		windowCache,
		clock,
		cfg.WindowDays,
	)

	cancelUC := ucSchedule.NewCancelAppointment(
		ledger,
		ledger,
		index,
		locks,
		auditDispatcher,
		windowCache,
		clock,
	)

	completeUC := ucSchedule.NewCompleteAppointment(
		ledger,
		ledger,
		locks,
		auditDispatcher,
		clock,
	)

	listByDateUC := ucSchedule.NewListByProviderDate(ledger, ledger)
	listBySubjectUC := ucSchedule.NewListBySubject(ledger)

	// ======================================================
	// HANDLERS
	// ======================================================
	providerHandler := handlers.NewProviderHandler(ledger)
	scheduleHandler := handlers.NewScheduleHandler(windowUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		completeUC,
		listByDateUC,
		listBySubjectUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/providers", providerHandler.List)
		api.GET("/providers/:id", providerHandler.Get)
		api.GET("/providers/:id/window", scheduleHandler.Window)
		api.GET("/providers/:id/appointments", appointmentHandler.ListByProvider)
		api.GET("/providers/:id/audit-logs", auditLogsHandler.List)

		api.POST("/appointments", appointmentHandler.Book)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

		api.GET("/subjects/:id/appointments", appointmentHandler.ListBySubject)
	}
}
