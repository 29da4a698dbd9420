// Package app wires repositories, services and handlers into the HTTP router.
package app

import (
	"context"
	"fmt"

	"patient-transport-backend/internal/config"
	"patient-transport-backend/internal/handler"
	"patient-transport-backend/internal/middleware"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"
	"patient-transport-backend/internal/service"
	"patient-transport-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const serviceName = "patient-transport-backend"

type App struct {
	Router   *gin.Engine
	Services *service.Services
	Sweeper  *service.SessionSweeper

	redis *redis.Client
}

// New builds the application over db. With SESSION_STORE=redis sessions are
// kept in Redis, otherwise in the sessions table.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *zap.Logger) (*App, error) {
	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenExpiry)

	repos := repository.NewRepositories(db)

	a := &App{}
	var sessions service.SessionStore = repos.Sessions
	if cfg.Session.Store == "redis" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := a.redis.Ping(ctx).Err(); err != nil {
			a.redis.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		logger.Info("using redis session store", zap.String("addr", cfg.Redis.Addr))
		sessions = repository.NewRedisSessionStore(a.redis)
	}

	a.Services = service.New(repos, sessions, logger)
	a.Sweeper = service.NewSessionSweeper(sessions, cfg.Session.SweepInterval, logger)
	a.Router = NewRouter(a.Services, logger)
	return a, nil
}

// Close releases the Redis client, if any
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}

// NewRouter registers every route on a new gin engine
func NewRouter(s *service.Services, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	authHandler := handler.NewAuthHandler(s.Auth, logger)
	countryHandler := handler.NewCountryHandler(s.Countries, logger)
	stateHandler := handler.NewStateHandler(s.States, logger)
	cityHandler := handler.NewCityHandler(s.Cities, logger)
	hospitalHandler := handler.NewHospitalHandler(s.Hospitals, logger)
	vehicleHandler := handler.NewVehicleHandler(s.Vehicles, logger)
	driverHandler := handler.NewDriverHandler(s.Drivers, logger)
	patientHandler := handler.NewPatientHandler(s.Patients, logger)
	appointmentHandler := handler.NewAppointmentHandler(s.Appointments, logger)
	groupHandler := handler.NewGroupHandler(s.Groups, logger)
	userHandler := handler.NewUserHandler(s.Users, logger)
	dashboardHandler := handler.NewDashboardHandler(s.Dashboard, logger)

	access := middleware.NewAccessControlMiddleware(s.Checker)
	guard := access.RequirePermission

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	})

	api := r.Group("/api")

	// Auth routes (public)
	api.POST("/login", authHandler.Login)
	api.PUT("/logout", authHandler.Logout)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(s.Auth))
	{
		protected.GET("/token_validate", authHandler.ValidateToken)
		protected.POST("/token_validate", authHandler.ValidateToken)

		protected.GET("/dashboard", guard(permission.ViewDashboard), dashboardHandler.GetDashboard)
		protected.GET("/permissions", guard(permission.ViewPermissions), groupHandler.ListPermissions)

		countryHandler.Register(protected.Group("/countries"), guard,
			permission.ViewCountries, permission.CreateCountries, permission.UpdateCountries)
		stateHandler.Register(protected.Group("/states"), guard,
			permission.ViewStates, permission.CreateStates, permission.UpdateStates)
		cityHandler.Register(protected.Group("/cities"), guard,
			permission.ViewCities, permission.CreateCities, permission.UpdateCities)
		hospitalHandler.Register(protected.Group("/hospitals"), guard,
			permission.ViewHospitals, permission.CreateHospitals, permission.UpdateHospitals)
		vehicleHandler.Register(protected.Group("/vehicles"), guard,
			permission.ViewVehicles, permission.CreateVehicles, permission.UpdateVehicles)
		driverHandler.Register(protected.Group("/drivers"), guard,
			permission.ViewDrivers, permission.CreateDrivers, permission.UpdateDrivers)
		patientHandler.Register(protected.Group("/patients"), guard,
			permission.ViewPatients, permission.CreatePatients, permission.UpdatePatients)
		appointmentHandler.Register(protected.Group("/appointments"), guard,
			permission.ViewAppointments, permission.CreateAppointments, permission.UpdateAppointments)
		userHandler.Register(protected.Group("/users"), guard,
			permission.ViewUsers, permission.CreateUsers, permission.UpdateUsers)

		groups := protected.Group("/groups")
		groupHandler.Register(groups, guard,
			permission.ViewGroups, permission.CreateGroups, permission.UpdateGroups)
		groups.GET("/permissions/:group_id", guard(permission.ViewPermissions), groupHandler.ListGroupPermissions)
		groups.POST("/permissions/:group_id/add", guard(permission.GrantPermissions), groupHandler.GrantPermission)
	}

	return r
}
