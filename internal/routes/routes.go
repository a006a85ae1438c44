package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/keylock"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucActor "github.com/BruksfildServices01/salon-scheduler/internal/usecase/actor"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/salon-scheduler/internal/usecase/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

var (
	anyRole   = []domain.Role{domain.RoleClient, domain.RoleProfessional, domain.RoleReceptionist, domain.RoleAdministrator}
	staff     = []domain.Role{domain.RoleProfessional, domain.RoleReceptionist, domain.RoleAdministrator}
	frontDesk = []domain.Role{domain.RoleReceptionist, domain.RoleAdministrator}
	adminOnly = []domain.Role{domain.RoleAdministrator}
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	locker keylock.Locker,
	auditDispatcher *audit.Dispatcher,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewSchedulingGormRepository(db)
	clock := timezone.SystemClock(cfg.Timezone)
	auditLogger := audit.New(db)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(repo, locker, auditDispatcher, clock, cfg.AssignAttempts)
	cancelBookingUC := ucBooking.NewCancelBooking(repo, auditDispatcher, clock)
	completeBookingUC := ucBooking.NewCompleteBooking(repo, auditDispatcher, clock)
	ownership := ucBooking.NewOwnership(repo)

	scheduleLock := ucSchedule.NewScheduleLock(repo, locker, auditDispatcher)
	availabilityUC := ucSchedule.NewSlotAvailability(repo, locker)
	agendaQuery := ucSchedule.NewAgendaQuery(repo)

	registerUC := ucActor.NewRegisterActor(repo, auditDispatcher, validators.IsEmailDomainValid)
	loginUC := ucActor.NewLogin(repo, cfg.JWTSecret, cfg.TokenTTL)
	directory := ucActor.NewDirectory(repo)
	updateActorUC := ucActor.NewUpdateActor(repo, auditDispatcher, validators.IsEmailDomainValid)
	disableActorUC := ucActor.NewDisableActor(repo, auditDispatcher)
	currentActor := ucActor.NewCurrentActor(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	meHandler := handlers.NewMeHandler(agendaQuery)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, cancelBookingUC, completeBookingUC, ownership)
	scheduleHandler := handlers.NewScheduleHandler(scheduleLock, availabilityUC, agendaQuery)
	actorHandler := handlers.NewActorHandler(directory, updateActorUC, disableActorUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

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
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg), middleware.LoadActor(currentActor))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/agenda", meHandler.MyAgenda)

			// bookings
			secured.POST("/bookings", guard(anyRole), bookingHandler.Create)
			secured.GET("/bookings/:id", guard(anyRole), bookingHandler.Get)
			secured.PATCH("/bookings/:id/cancel", guard(anyRole), bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/complete", guard(staff), bookingHandler.Complete)

			// schedules
			secured.GET("/professionals/:id/availability", guard(anyRole), scheduleHandler.Availability)
			secured.GET("/professionals/:id/schedule", guard(anyRole), scheduleHandler.Status)
			secured.POST("/professionals/:id/schedule/close", guard(staff), scheduleHandler.Close)
			secured.POST("/professionals/:id/schedule/open", guard(staff), scheduleHandler.Open)
			secured.GET("/professionals/:id/agenda", guard(frontDesk), scheduleHandler.ProfessionalAgenda)
			secured.GET("/clients/:id/agenda", guard(staff), scheduleHandler.ClientAgenda)

			// actors
			secured.GET("/users", guard(staff), actorHandler.List)
			secured.GET("/users/:id", guard(staff), actorHandler.Get)
			secured.PATCH("/users/:id", guard(frontDesk), actorHandler.Update)
			secured.PATCH("/users/:id/disable", guard(frontDesk), actorHandler.Disable)

			// audit
			secured.GET("/audit-logs", guard(adminOnly), auditLogsHandler.List)
		}
	}
}

func guard(roles []domain.Role) gin.HandlerFunc {
	return middleware.RequireRoles(roles...)
}
