package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventmanagement/config"
	authadapter "eventmanagement/internal/adapters/auth"
	"eventmanagement/internal/adapters/email"
	httpdelivery "eventmanagement/internal/delivery/http"
	"eventmanagement/internal/delivery/http/controllers"
	"eventmanagement/internal/delivery/http/middleware"
	"eventmanagement/internal/repository/postgres"
	"eventmanagement/internal/services"
)

// @title Event Management API
// @version 1.0
// @description Management API for events, sessions, participants, registrations and ratings.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	// Pool-bound repositories serve reads; the unit of work opens
	// transaction-bound sets for mutations.
	uow := postgres.NewUnitOfWork(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	ratingRepo := postgres.NewRatingRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	tokens := authadapter.NewJWTTokens(cfg.JWTSecret)
	authService := services.NewAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, authadapter.NewBcryptComparer(), tokens, cfg.TokenTTL)

	timeout := cfg.ServiceTimeout
	ctrl := httpdelivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authService),
		Category:     controllers.NewCategoryController(logger, services.NewCategoryService(uow, categoryRepo, timeout)),
		Location:     controllers.NewLocationController(logger, services.NewLocationService(uow, locationRepo, timeout)),
		Room:         controllers.NewRoomController(logger, services.NewRoomService(uow, roomRepo, timeout)),
		Event:        controllers.NewEventController(logger, services.NewEventService(uow, eventRepo, timeout)),
		Registration: controllers.NewRegistrationController(logger, services.NewRegistrationService(uow, eventRepo, registrationRepo, emailService, logger, timeout)),
		Participant:  controllers.NewParticipantController(logger, services.NewParticipantService(uow, participantRepo, timeout)),
		Session:      controllers.NewSessionController(logger, services.NewSessionService(uow, sessionRepo, timeout)),
		Speaker:      controllers.NewSpeakerController(logger, services.NewSpeakerService(uow, speakerRepo, timeout)),
		Rating:       controllers.NewRatingController(logger, services.NewRatingService(uow, ratingRepo, timeout)),
	}

	mux := httpdelivery.NewRouter(ctrl, tokens, logger)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
