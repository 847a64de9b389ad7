package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/court-scheduler/internal/audit"
	"github.com/BruksfildServices01/court-scheduler/internal/config"
	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/court-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/court-scheduler/internal/infra/slotlock"
	"github.com/BruksfildServices01/court-scheduler/internal/middleware"
	"github.com/BruksfildServices01/court-scheduler/internal/payments"
	ucBooking "github.com/BruksfildServices01/court-scheduler/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/court-scheduler/internal/usecase/schedule"
)

// RegisterRoutes monta toda a árvore de rotas e devolve o use case de
// expiração para o sweeper rodar fora do ciclo HTTP.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	redisClient *redis.Client,
	checkout payments.Checkout,
) *ucBooking.ExpireReservations {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	var lock ucBooking.SlotLock
	if redisClient != nil {
		lock = slotlock.New(redisClient, domain.ReservedHoldWindow)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	getSlotsUC := ucBooking.NewGetAvailableSlots(bookingRepo)
	checkSlotUC := ucBooking.NewCheckSlotAvailability(bookingRepo)

	reserveUC := ucBooking.NewReserveSlot(bookingRepo, lock, auditDispatcher)
	confirmUC := ucBooking.NewConfirmBooking(bookingRepo, auditDispatcher)
	cancelUC := ucBooking.NewCancelBooking(bookingRepo, lock, auditDispatcher)
	expireUC := ucBooking.NewExpireReservations(bookingRepo, lock, auditDispatcher)

	listMineUC := ucBooking.NewListUserBookings(bookingRepo)
	listByCourtUC := ucBooking.NewListCourtBookings(bookingRepo)

	// ======================================================
	// USE CASES — SCHEDULE (ADMIN)
	// ======================================================
	updateHoursUC := ucSchedule.NewUpdateOperatingHours(scheduleRepo, auditDispatcher)
	addSpecialUC := ucSchedule.NewAddSpecialDate(scheduleRepo, auditDispatcher)
	removeSpecialUC := ucSchedule.NewRemoveSpecialDate(scheduleRepo, auditDispatcher)
	blockSlotUC := ucSchedule.NewBlockSlot(scheduleRepo, auditDispatcher)
	unblockSlotUC := ucSchedule.NewUnblockSlot(scheduleRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	courtHandler := handlers.NewCourtHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(getSlotsUC, checkSlotUC)
	bookingHandler := handlers.NewBookingHandler(
		reserveUC,
		confirmUC,
		cancelUC,
		listMineUC,
		listByCourtUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		scheduleRepo,
		updateHoursUC,
		addSpecialUC,
		removeSpecialUC,
		blockSlotUC,
		unblockSlotUC,
	)

	bookingLogsHandler := handlers.NewBookingLogsHandler(db)

	var paymentHandler *handlers.PaymentHandler
	if checkout != nil {
		paymentHandler = handlers.NewPaymentHandler(db, checkout, confirmUC, cancelUC, cfg.PaymentURL)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA
		// ------------------------------
		api.GET("/courts", courtHandler.List)
		api.GET("/courts/:id", courtHandler.Get)
		api.GET("/courts/:id/availability", availabilityHandler.GetSlots)
		api.GET("/courts/:id/availability/check", availabilityHandler.CheckSlot)

		if paymentHandler != nil {
			api.POST("/payments/webhook", paymentHandler.Webhook)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/bookings", bookingHandler.Reserve)
			secured.GET("/bookings", bookingHandler.ListMine)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			if paymentHandler != nil {
				secured.POST("/bookings/:id/checkout", paymentHandler.CreateCheckout)
			}
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole("admin", "manager"))
		{
			admin.POST("/courts", courtHandler.Create)
			admin.PATCH("/courts/:id", courtHandler.Update)

			admin.GET("/courts/:id/bookings", bookingHandler.ListByCourt)
			admin.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)

			admin.GET("/courts/:id/schedule", scheduleHandler.Get)
			admin.PUT("/courts/:id/schedule/:weekday", scheduleHandler.UpdateWeekday)

			admin.POST("/courts/:id/special-dates", scheduleHandler.AddSpecialDate)
			admin.DELETE("/courts/:id/special-dates/:date", scheduleHandler.RemoveSpecialDate)

			admin.POST("/courts/:id/blocked-slots", scheduleHandler.BlockSlot)
			admin.DELETE("/courts/:id/blocked-slots", scheduleHandler.UnblockSlot)

			admin.GET("/booking-logs", bookingLogsHandler.List)
		}
	}

	return expireUC
}
