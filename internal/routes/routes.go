package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/CareSlotLabs/hospital-scheduler/internal/audit"
	"github.com/CareSlotLabs/hospital-scheduler/internal/config"
	"github.com/CareSlotLabs/hospital-scheduler/internal/domain/actor"
	"github.com/CareSlotLabs/hospital-scheduler/internal/handlers"
	infraRepo "github.com/CareSlotLabs/hospital-scheduler/internal/infra/repository"
	"github.com/CareSlotLabs/hospital-scheduler/internal/middleware"
	"github.com/CareSlotLabs/hospital-scheduler/internal/notify"
	ucAppointment "github.com/CareSlotLabs/hospital-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var sender notify.Sender
	if cfg.MailEnabled() {
		sender = notify.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.MailFrom)
	} else {
		sender = notify.LogSender{Log: log}
	}
	notifier := notify.NewNotifier(sender, log)

	// ======================================================
	// USE CASES — SCHEDULING CORE
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
		cfg.Timezone,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	setAvailabilityUC := ucAppointment.NewSetWeeklyAvailability(
		appointmentRepo,
		auditDispatcher,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	adminHandler := handlers.NewAdminHandler(db, notifier, auditDispatcher)
	departmentHandler := handlers.NewDepartmentHandler(db, auditDispatcher)
	doctorHandler := handlers.NewDoctorHandler(db, cfg.Timezone)
	patientHandler := handlers.NewPatientHandler(db, cfg.Timezone)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		completeUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		db,
		setAvailabilityUC,
		getAvailabilityUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PROTECTED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// ADMIN
			// ------------------------------
			adminAPI := secured.Group("/admin")
			adminAPI.Use(middleware.RequireRole(actor.RoleAdmin))
			{
				adminAPI.GET("/stats", adminHandler.Stats)

				adminAPI.POST("/doctors", adminHandler.CreateDoctor)
				adminAPI.GET("/doctors", adminHandler.ListDoctors)
				adminAPI.PATCH("/doctors/:id", adminHandler.UpdateDoctor)
				adminAPI.PATCH("/doctors/:id/blacklist", adminHandler.SetDoctorBlacklist)

				adminAPI.GET("/patients", adminHandler.ListPatients)
				adminAPI.PATCH("/patients/:id/blacklist", adminHandler.SetPatientBlacklist)

				adminAPI.POST("/departments", departmentHandler.Create)
				adminAPI.GET("/departments", departmentHandler.List)
				adminAPI.PATCH("/departments/:id", departmentHandler.Update)

				adminAPI.GET("/appointments", adminHandler.ListAppointments)
				adminAPI.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// DOCTOR
			// ------------------------------
			doctorAPI := secured.Group("/doctor")
			doctorAPI.Use(middleware.RequireRole(actor.RoleDoctor))
			{
				doctorAPI.GET("/dashboard", doctorHandler.Dashboard)
				doctorAPI.GET("/appointments", doctorHandler.ListAppointments)
				doctorAPI.GET("/appointments/:id/treatment", doctorHandler.GetTreatment)

				doctorAPI.PUT("/availability", availabilityHandler.Replace)
				doctorAPI.GET("/availability", availabilityHandler.Mine)

				doctorAPI.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
				doctorAPI.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			}

			// ------------------------------
			// PATIENT
			// ------------------------------
			patientAPI := secured.Group("/patient")
			patientAPI.Use(middleware.RequireRole(actor.RolePatient))
			{
				patientAPI.GET("/dashboard", patientHandler.Dashboard)
				patientAPI.GET("/doctors", patientHandler.SearchDoctors)
				patientAPI.GET("/doctors/:id/availability", availabilityHandler.ForDoctor)

				patientAPI.POST("/appointments", appointmentHandler.Book)
				patientAPI.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				patientAPI.GET("/appointments", patientHandler.ListAppointments)
				patientAPI.GET("/history", patientHandler.History)
			}
		}
	}
}
