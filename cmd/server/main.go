package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sdlccalendar/config"
	emailadapter "sdlccalendar/internal/adapters/email"
	delivery "sdlccalendar/internal/delivery/http"
	"sdlccalendar/internal/delivery/http/controllers"
	"sdlccalendar/internal/delivery/http/middleware"
	"sdlccalendar/internal/repository/postgres"
	"sdlccalendar/internal/services"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title SDLC Calendar API
// @version 1.0
// @description Calendar-based event tracking: validated event CRUD, time-window activity queries, and stakeholder email notifications.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	// The database connection is established lazily on first use; the
	// connector collapses concurrent first requests into one attempt.
	conn := postgres.NewConnector(postgres.Open(cfg.DBUrl))
	defer conn.Close()

	eventRepo := postgres.NewEventRepository(conn)
	eventService := services.NewEventService(eventRepo, serviceTimeout)
	activityService := services.NewActivityService(eventRepo, serviceTimeout)

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		},
	}, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer(), logger)

	mux := delivery.NewRouter(
		controllers.NewEventController(logger, eventService),
		controllers.NewActivityController(logger, activityService),
		controllers.NewNotificationController(logger, emailService),
	)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server started", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("server stopped")
}
