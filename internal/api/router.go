package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/carenet/carenet-api/docs"
	"github.com/carenet/carenet-api/internal/api/handler"
	"github.com/carenet/carenet-api/internal/api/middleware"
	"github.com/carenet/carenet-api/internal/core/domain"
	"github.com/carenet/carenet-api/internal/core/service"
	"github.com/carenet/carenet-api/internal/core/token"
	mongostore "github.com/carenet/carenet-api/internal/infrastructure/db/mongo"
	redisstore "github.com/carenet/carenet-api/internal/infrastructure/db/redis"
	"github.com/carenet/carenet-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, issuer *token.Issuer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("carenet"))
	// bearer tokens are verified once per request; failures degrade to an
	// anonymous request and the per-route guards below do the rejecting
	e.Use(middleware.Auth(issuer))

	// --- Repositories ---
	userRepo := mongostore.NewUserRepository(db)
	caregiverProfileRepo := mongostore.NewCaregiverProfileRepository(db)
	careSeekerProfileRepo := mongostore.NewCareSeekerProfileRepository(db)
	feedbackRepo := mongostore.NewFeedbackRepository(db)
	directoryCache := redisstore.NewDirectoryCache(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, issuer, log)
	caregiverProfiles := service.NewCaregiverProfileService(caregiverProfileRepo, userRepo, directoryCache, log)
	careSeekerProfiles := service.NewCareSeekerProfileService(careSeekerProfileRepo, userRepo, log)
	feedbackService := service.NewFeedbackService(feedbackRepo, log)
	adminService := service.NewAdminService(userRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	caregiverHandler := handler.NewCaregiverProfileHandler(caregiverProfiles)
	careSeekerHandler := handler.NewCareSeekerProfileHandler(careSeekerProfiles)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	adminHandler := handler.NewAdminHandler(adminService, feedbackService)

	// --- Auth ---
	v1 := e.Group("/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	// --- Caregiver profile (own) + public directory ---
	caregiver := v1.Group("/caregiver/profile", middleware.RequireAuthority(domain.RoleCaregiver))
	caregiver.GET("/me", caregiverHandler.GetOwn)
	caregiver.PUT("/me", caregiverHandler.UpdateOwn)

	v1.GET("/caregivers/public", caregiverHandler.ListPublic)
	v1.GET("/caregivers/public/:id", caregiverHandler.GetPublic)

	// --- Care-seeker profile (own) ---
	careSeeker := v1.Group("/careseeker/profile", middleware.RequireAuthority(domain.RoleCareSeeker))
	careSeeker.GET("/me", careSeekerHandler.GetOwn)
	careSeeker.PUT("/me", careSeekerHandler.UpdateOwn)

	// --- Feedback ---
	v1.POST("/feedback", feedbackHandler.Create)
	feedback := v1.Group("/feedback", middleware.RequireAuthenticated())
	feedback.GET("/my", feedbackHandler.ListOwn)
	feedback.GET("/:id", feedbackHandler.GetOwn)
	feedback.PUT("/:id", feedbackHandler.UpdateOwn)

	// --- Admin ---
	admin := v1.Group("/admin", middleware.RequireAuthority(domain.RoleAdmin))
	admin.GET("/caregivers", adminHandler.ListCaregivers)
	admin.PUT("/caregivers/:id/status", adminHandler.UpdateStatus)
	admin.GET("/careseekers", adminHandler.ListCareSeekers)
	admin.PUT("/careseekers/:id/status", adminHandler.UpdateStatus)
	admin.GET("/feedback", adminHandler.ListFeedback)
	admin.GET("/feedback/summary", adminHandler.FeedbackSummary)
	admin.DELETE("/feedback/:id", adminHandler.DeleteFeedback)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
