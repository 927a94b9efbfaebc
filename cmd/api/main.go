package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/mom-ai/pkg/validator"

	"github.com/johnquangdev/mom-ai/internal/adapter/handler"
	"github.com/johnquangdev/mom-ai/internal/adapter/repository"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/external/calendar"
	httpmw "github.com/johnquangdev/mom-ai/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/mom-ai/internal/infrastructure/persistence"
	"github.com/johnquangdev/mom-ai/internal/usecase/auth"
	"github.com/johnquangdev/mom-ai/internal/usecase/mailer"
	"github.com/johnquangdev/mom-ai/internal/usecase/meeting"
	"github.com/johnquangdev/mom-ai/internal/usecase/transcription"
	"github.com/johnquangdev/mom-ai/pkg/config"
	"github.com/johnquangdev/mom-ai/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.EchoErrorHandler(logger)
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Hook-Key"},
		AllowCredentials: true,
	}))

	// Initialize persistence
	log.Println("📦 Loading data store...")
	store, err := persistence.NewFileStore(cfg.Data.Dir)
	if err != nil {
		log.Fatalf("Failed to open data store: %v", err)
	}

	// Initialize repositories
	meetingRepo := repository.NewMeetingRepository(store)
	userRepo := repository.NewUserRepository(store)
	jobRepo := repository.NewJobRepository(store)
	auditRepo := repository.NewAuditRepository(store)
	analyticsRepo := repository.NewAnalyticsRepository(store)

	// Initialize auth
	log.Println("🔑 Initializing auth...")
	jwtManager := jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	authService := auth.NewService(userRepo, auditRepo, analyticsRepo, jwtManager, logger)
	if err := authService.BootstrapAdmin(context.Background(), cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		log.Fatalf("Failed to bootstrap admin user: %v", err)
	}

	// Initialize meeting service
	calendarProvider := calendar.NewMockProvider()
	simulator := transcription.NewSimulator()
	meetingService := meeting.NewService(
		meetingRepo,
		jobRepo,
		auditRepo,
		analyticsRepo,
		calendarProvider,
		simulator,
		logger,
		meeting.Options{
			AutoNoteFromTranscript: cfg.Hook.AutoNoteFromTranscript,
			EmailJobMaxRetries:     cfg.Queue.MaxRetries,
		},
	)

	// Initialize email queue worker
	sender := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		Secure:   cfg.SMTP.Secure,
	}, logger)
	if !sender.Configured() {
		log.Println("⚠️  SMTP not configured; email jobs run in preview mode")
	}
	worker := mailer.NewWorker(jobRepo, auditRepo, analyticsRepo, sender, logger, cfg.Queue.WorkerInterval)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go worker.Run(workerCtx)

	// Setup router with handlers
	authMw := httpmw.NewAuthMiddleware(authService, cfg.Auth.Required)
	router := handler.NewRouter(
		authMw,
		handler.NewAuth(authService, logger),
		handler.NewMeeting(meetingService, logger),
		handler.NewTranscription(meetingService, logger),
		handler.NewIntegration(meetingService, calendarProvider, logger),
		handler.NewHook(meetingService, cfg.Hook.APIKey, logger),
		handler.NewAdmin(authService, meetingRepo, jobRepo, auditRepo, analyticsRepo, logger),
		handler.NewShare(meetingService, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Address()
		log.Printf("🚀 MoM AI running on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔐 Auth required: %v", cfg.Auth.Required)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
	log.Println("✅ Server stopped")
}
