package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wellnesslane/session-scheduler/internal/audit"
	"github.com/wellnesslane/session-scheduler/internal/config"
	"github.com/wellnesslane/session-scheduler/internal/handlers"
	"github.com/wellnesslane/session-scheduler/internal/identity"
	infraRepo "github.com/wellnesslane/session-scheduler/internal/infra/repository"
	"github.com/wellnesslane/session-scheduler/internal/middleware"
	ucSchedule "github.com/wellnesslane/session-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	verifier identity.Verifier,
	cfg *config.Config,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	publishSlotUC := ucSchedule.NewPublishSlot(scheduleRepo, auditDispatcher)
	withdrawSlotUC := ucSchedule.NewWithdrawSlot(scheduleRepo, auditDispatcher)
	listWindowUC := ucSchedule.NewListWindow(scheduleRepo)

	bookSessionUC := ucSchedule.NewBookSession(scheduleRepo, verifier, auditDispatcher)
	cancelReservationUC := ucSchedule.NewCancelReservation(scheduleRepo, auditDispatcher)
	completeReservationUC := ucSchedule.NewCompleteReservation(scheduleRepo, auditDispatcher)
	listReservationsUC := ucSchedule.NewListReservationsByDate(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	slotHandler := handlers.NewSlotHandler(publishSlotUC, withdrawSlotUC, listWindowUC)
	bookingHandler := handlers.NewBookingHandler(bookSessionUC)
	reservationHandler := handlers.NewReservationHandler(
		cancelReservationUC,
		completeReservationUC,
		listReservationsUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(listWindowUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/vendors/:id/window", publicHandler.VendorWindow)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// VENDOR SURFACE
			// ------------------------------
			vendors := secured.Group("/vendors/me")
			vendors.Use(middleware.RequireRole(middleware.RoleVendor))
			{
				vendors.POST("/slots", slotHandler.Publish)
				vendors.DELETE("/slots/:id", slotHandler.Withdraw)
				vendors.GET("/slots/window", slotHandler.Window)

				vendors.GET("/reservations", reservationHandler.ListByDate)
				vendors.PATCH("/reservations/:id/cancel", reservationHandler.Cancel)
				vendors.PATCH("/reservations/:id/complete", reservationHandler.Complete)

				vendors.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// CLIENT SURFACE
			// ------------------------------
			clients := secured.Group("/")
			clients.Use(middleware.RequireRole(middleware.RoleClient))
			{
				clients.POST("/bookings", bookingHandler.Create)
			}
		}
	}
}
