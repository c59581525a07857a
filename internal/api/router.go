package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/talenthub/job-portal-api/internal/api/handler"
	"github.com/talenthub/job-portal-api/internal/api/middleware"
	"github.com/talenthub/job-portal-api/internal/core/domain"
	"github.com/talenthub/job-portal-api/internal/core/service"
	"github.com/talenthub/job-portal-api/internal/infrastructure/config"
	mongodb "github.com/talenthub/job-portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/talenthub/job-portal-api/internal/infrastructure/db/redis"
	"github.com/talenthub/job-portal-api/internal/infrastructure/email"
	"github.com/talenthub/job-portal-api/internal/infrastructure/mail"
	"github.com/talenthub/job-portal-api/internal/infrastructure/storage"
	"github.com/talenthub/job-portal-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, mailQueue service.MailQueue) (*echo.Echo, error) {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobportal"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Infrastructure ---
	files, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	applicationRepo := mongodb.NewApplicationRepository(db)

	domainValidator := email.NewValidator(nil, redisdb.NewDomainVerdictCache(rdb), log)
	mailer := mail.NewMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		AppURL:   cfg.AppURL,
	})

	// --- Services ---
	authService := service.NewAuthService(userRepo, domainValidator, mailer, mailQueue, cfg.JWTSecret, time.Hour, log)
	jobService := service.NewJobService(jobRepo, userRepo, log)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, userRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService, files)
	uploadHandler := handler.NewUploadHandler(userRepo, files)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authRequired := middleware.Auth(cfg.JWTSecret)
	jobseekerOnly := middleware.RequireRole(userRepo, domain.RoleJobseeker)
	employerOnly := middleware.RequireRole(userRepo, domain.RoleEmployer)
	credentialLimit := middleware.NewRateLimiter(rate.Limit(1), 5).Middleware()

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/signup", authHandler.Signup, credentialLimit)
	auth.POST("/login", authHandler.Login, credentialLimit)
	auth.GET("/verify-email/:token", authHandler.VerifyEmail)
	auth.POST("/forgot-password", authHandler.ForgotPassword, credentialLimit)
	auth.POST("/reset-password/:token", authHandler.ResetPassword)
	auth.GET("/me", authHandler.Me, authRequired)

	// --- Job routes ---
	jobs := e.Group("/jobs", authRequired)
	jobs.POST("", jobHandler.Create)
	jobs.GET("", jobHandler.List)
	jobs.GET("/dashboard", jobHandler.Dashboard)

	// --- Application routes ---
	applications := e.Group("/applications", authRequired)
	applications.POST("/apply/:jobId", applicationHandler.Apply, jobseekerOnly)
	applications.GET("/my-applications", applicationHandler.ListMine)
	applications.GET("/job/:jobId/applications", applicationHandler.ListForJob, employerOnly)
	applications.PUT("/status/:applicationId", applicationHandler.UpdateStatus, employerOnly)
	applications.GET("/resume/:applicationId", applicationHandler.Resume, employerOnly)

	// --- Upload routes ---
	uploads := e.Group("/upload", authRequired)
	uploads.POST("/profile-photo", uploadHandler.ProfilePhoto)
	uploads.POST("/resume", uploadHandler.ResumeFile)

	// Stored files are served straight off disk.
	e.Static("/uploads", cfg.UploadDir)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
