package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CoachLinkServices/coach-scheduler/internal/cache"
	"github.com/CoachLinkServices/coach-scheduler/internal/config"
	"github.com/CoachLinkServices/coach-scheduler/internal/handlers"
	infraRepo "github.com/CoachLinkServices/coach-scheduler/internal/infra/repository"
	"github.com/CoachLinkServices/coach-scheduler/internal/middleware"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
	"github.com/CoachLinkServices/coach-scheduler/internal/notify"
	ucAvailability "github.com/CoachLinkServices/coach-scheduler/internal/usecase/availability"
	ucBooking "github.com/CoachLinkServices/coach-scheduler/internal/usecase/booking"
	ucSchedule "github.com/CoachLinkServices/coach-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	coachStore := infraRepo.NewCoachGormStore(db)
	packageStore := infraRepo.NewPackageGormStore(db)
	uow := infraRepo.NewGormUnitOfWork(db)

	notifyStore := notify.NewStore(db)
	notifyDispatcher := notify.NewDispatcher(notifyStore)

	slotCache := cache.NewSlotCache(cfg.RedisAddr, 30*time.Second)

	// ======================================================
	// USE CASES
	// ======================================================
	getSlotsUC := ucAvailability.NewGetSlots(scheduleRepo, bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		coachStore,
		scheduleRepo,
		bookingRepo,
		packageStore,
		uow,
		notifyDispatcher,
	)

	selfBlockUC := ucBooking.NewSelfBlock(
		coachStore,
		bookingRepo,
		uow,
		notifyDispatcher,
	)

	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, uow)

	listByDateUC := ucBooking.NewListByDate(bookingRepo)
	listByMonthUC := ucBooking.NewListByMonth(bookingRepo)

	createScheduleUC := ucSchedule.NewCreateSchedule(scheduleRepo)
	updateScheduleUC := ucSchedule.NewUpdateSchedule(scheduleRepo)
	deleteScheduleUC := ucSchedule.NewDeleteSchedule(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	scheduleHandler := handlers.NewScheduleHandler(
		scheduleRepo,
		createScheduleUC,
		updateScheduleUC,
		deleteScheduleUC,
		slotCache,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(getSlotsUC, slotCache)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		selfBlockUC,
		updateStatusUC,
		cancelBookingUC,
		listByDateUC,
		listByMonthUC,
		slotCache,
	)

	packageHandler := handlers.NewPackageHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/coaches/:id/availability", availabilityHandler.GetSlots)
		api.GET("/coaches/:id/packages", packageHandler.ListForCoach)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/notifications", meHandler.ListNotifications)

			// bookings (any authenticated user)
			secured.POST("/bookings", bookingHandler.Create)
			secured.POST("/bookings/:id/cancel", bookingHandler.Cancel)

			// packages (user side)
			secured.POST("/packages/:id/purchase", packageHandler.Purchase)
			secured.GET("/me/purchases", packageHandler.ListMyPurchases)

			// coach-only surface
			coachOnly := secured.Group("/me")
			coachOnly.Use(middleware.RequireRole(models.RoleCoach, models.RoleAdmin))
			{
				coachOnly.GET("/schedules", scheduleHandler.List)
				coachOnly.POST("/schedules", scheduleHandler.Create)
				coachOnly.PUT("/schedules/:id", scheduleHandler.Update)
				coachOnly.DELETE("/schedules/:id", scheduleHandler.Delete)

				coachOnly.GET("/packages", packageHandler.ListMine)
				coachOnly.POST("/packages", packageHandler.Create)
				coachOnly.PATCH("/packages/:id/deactivate", packageHandler.Deactivate)

				coachOnly.POST("/bookings/block", bookingHandler.SelfBlock)
				coachOnly.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
				coachOnly.GET("/bookings", bookingHandler.ListByDate)
				coachOnly.GET("/bookings/month", bookingHandler.ListByMonth)
			}
		}
	}
}
