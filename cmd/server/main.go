package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"symposiumadmin/config"
	_ "symposiumadmin/docs"
	"symposiumadmin/internal/adapters/auth"
	"symposiumadmin/internal/adapters/email"
	delivery "symposiumadmin/internal/delivery/http"
	"symposiumadmin/internal/delivery/http/controllers"
	"symposiumadmin/internal/delivery/http/middleware"
	"symposiumadmin/internal/repository/postgres"
	"symposiumadmin/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("database ping failed", "err", err)
		os.Exit(1)
	}

	if err := postgres.Migrate(db, "migrations"); err != nil {
		logger.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	// Adapters
	codec := auth.NewCodec(cfg.SessionSecret, cfg.SessionTTL)
	passkeys := auth.NewPasskeyVerifier(cfg.AdminPasskey, cfg.AdminPasskeyHash)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretKey,
			InsecureSkipVerify: cfg.SESSkipTLSVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	rosterRepo := postgres.NewRosterRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	authService := services.NewAuthService(passkeys, codec)
	reviewService := services.NewReviewService(registrationRepo, emailService, logger)
	adminService := services.NewAdminService(userRepo, registrationRepo, paymentRepo)
	rosterService := services.NewRosterService(rosterRepo, userRepo, registrationRepo, paymentRepo, statsRepo)

	// Controllers
	secureCookie := cfg.Environment == "production"
	authController := controllers.NewAuthController(logger, authService, cfg.SessionTTL, secureCookie)
	adminController := controllers.NewAdminController(logger, adminService)
	reviewController := controllers.NewReviewController(logger, reviewService)
	rosterController := controllers.NewRosterController(logger, rosterService)

	mux := delivery.NewRouter(db, codec, logger,
		authController, adminController, reviewController, rosterController)

	var handler http.Handler = middleware.LoggingMiddleware(logger, mux)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-done
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	}()

	logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server closed unexpectedly", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
