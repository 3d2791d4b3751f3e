// Command server wires together all layers and runs the registration API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"communityregistration/config"
	_ "communityregistration/docs"
	"communityregistration/internal/adapters/catalog"
	"communityregistration/internal/adapters/email"
	deliveryhttp "communityregistration/internal/delivery/http"
	"communityregistration/internal/delivery/http/controllers"
	"communityregistration/internal/delivery/http/middleware"
	"communityregistration/internal/repository/postgres"
	"communityregistration/internal/services"
)

// @title Community Registration API
// @version 1.0
// @description Event registration backend for the community site.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx := context.Background()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error("schema migration failed", "err", err)
		os.Exit(1)
	}
	logger.Info("connected to postgres")

	eventCatalog, err := catalog.NewFileCatalog(cfg.CatalogPath, cfg.CatalogTTL)
	if err != nil {
		logger.Error("catalog load failed", "path", cfg.CatalogPath, "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("mailer setup failed", "err", err)
		os.Exit(1)
	}

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	registrationStore := postgres.NewRegistrationStore(db)
	registrationService := services.NewRegistrationService(registrationStore, eventCatalog, emailService, logger)
	eventService := services.NewEventService(postgres.NewEventRepository(db), postgres.NewRegistrationRepository(db))

	mux := deliveryhttp.NewRouter(
		controllers.NewRegistrationController(logger, registrationService),
		controllers.NewEventController(logger, eventService),
		controllers.NewHealthController(db),
	)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
