package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucSalon "github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// Deps is everything the HTTP layer needs. Locker and Metrics may be nil.
type Deps struct {
	Config       *config.Config
	Logger       *slog.Logger
	Salons       domain.SalonRepository
	Appointments domain.AppointmentRepository
	Locker       domain.SlotLocker
	Audit        *audit.Dispatcher
	AuditReader  audit.Reader
	Metrics      *metrics.Metrics
	Clock        timezone.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	if err := validators.RegisterGin(); err != nil {
		panic(err)
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.MetricsMiddleware(d.Metrics))

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	checker := ucAppointment.NewConflictChecker(d.Appointments)

	bookUC := ucAppointment.NewBookAppointment(
		d.Salons,
		d.Appointments,
		d.Locker,
		cfg.SlotLockTTL,
		d.Audit,
		d.Metrics,
	)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(d.Salons, d.Appointments, d.Audit, d.Clock)
	cancelUC := ucAppointment.NewCancelAppointment(d.Appointments, d.Audit, d.Clock)
	getUC := ucAppointment.NewGetAppointment(d.Salons, d.Appointments)
	listCustomerUC := ucAppointment.NewListCustomerAppointments(d.Appointments)
	listSalonUC := ucAppointment.NewListSalonAppointments(d.Salons, d.Appointments)
	slotsUC := ucAppointment.NewListAvailableSlots(d.Salons, checker, cfg.SlotMinutes)

	// ======================================================
	// USE CASES - SALONS
	// ======================================================
	createSalonUC := ucSalon.NewCreateSalon(d.Salons, d.Clock)
	browseSalonsUC := ucSalon.NewBrowseSalons(d.Salons)
	profileUC := ucSalon.NewGetProfile(d.Salons)
	mySalonsUC := ucSalon.NewListOwnSalons(d.Salons)
	deactivateSalonUC := ucSalon.NewDeactivateSalon(d.Salons)
	addServiceUC := ucSalon.NewAddService(d.Salons, d.Clock)
	updateServiceUC := ucSalon.NewUpdateService(d.Salons)
	removeServiceUC := ucSalon.NewRemoveService(d.Salons)
	setHoursUC := ucSalon.NewSetWorkingHours(d.Salons)
	addHolidayUC := ucSalon.NewAddHoliday(d.Salons, d.Clock)
	setAvailabilityUC := ucSalon.NewSetAvailability(d.Salons)
	getAvailabilityUC := ucSalon.NewGetAvailability(d.Salons)
	auditLogsUC := ucSalon.NewListAuditLogs(d.Salons, d.AuditReader)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		updateStatusUC,
		cancelUC,
		getUC,
		listCustomerUC,
		listSalonUC,
		slotsUC,
	)
	salonHandler := handlers.NewSalonHandler(
		createSalonUC,
		browseSalonsUC,
		profileUC,
		mySalonsUC,
		deactivateSalonUC,
		addServiceUC,
		updateServiceUC,
		removeServiceUC,
	)
	workingHoursHandler := handlers.NewWorkingHoursHandler(
		setHoursUC,
		addHolidayUC,
		setAvailabilityUC,
		getAvailabilityUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogsUC)
	meHandler := handlers.NewMeHandler()

	// ======================================================
	// INFRA
	// ======================================================
	r.GET("/health", handlers.Health)
	if cfg.MetricsEnabled && d.Metrics != nil {
		r.GET(cfg.MetricsPath, gin.WrapH(d.Metrics.Handler()))
	}

	auth := middleware.AuthMiddleware(cfg)

	r.GET("/me", auth, meHandler.GetMe)

	// ======================================================
	// APPOINTMENTS
	// ======================================================
	appointments := r.Group("/appointments")
	{
		// public
		appointments.GET("/available-slots/:salonId", appointmentHandler.AvailableSlots)

		secured := appointments.Group("")
		secured.Use(auth)
		{
			secured.POST("/book", appointmentHandler.Book)
			secured.GET("/my-appointments", appointmentHandler.MyAppointments)
			secured.GET("/salon-appointments/:salonId", appointmentHandler.SalonAppointments)
			secured.PUT("/:id/status", appointmentHandler.UpdateStatus)
			secured.PUT("/:id/cancel", appointmentHandler.Cancel)
			secured.GET("/:id", appointmentHandler.Get)
		}
	}

	// ======================================================
	// SALONS
	// ======================================================
	salons := r.Group("/salons")
	{
		// public
		salons.GET("/all", salonHandler.All)
		salons.GET("/profile/:salonId", salonHandler.Profile)
		salons.GET("/:salonId/availability", workingHoursHandler.GetAvailability)

		owner := salons.Group("")
		owner.Use(auth)
		{
			owner.POST("", middleware.RequireRole(middleware.RoleSalonOwner), salonHandler.Create)
			owner.GET("/my-salons", salonHandler.MySalons)
			owner.DELETE("/:salonId", salonHandler.Delete)
			owner.POST("/:salonId/services", salonHandler.AddService)
			owner.PUT("/:salonId/services/:serviceId", salonHandler.UpdateService)
			owner.DELETE("/:salonId/services/:serviceId", salonHandler.DeleteService)
			owner.PUT("/:salonId/working-hours", workingHoursHandler.Update)
			owner.POST("/:salonId/holidays", workingHoursHandler.AddHoliday)
			owner.PUT("/:salonId/availability", workingHoursHandler.SetAvailability)
			owner.GET("/:salonId/audit-logs", auditLogsHandler.List)
		}
	}
}
