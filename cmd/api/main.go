package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	zlog "github.com/rs/zerolog/log"

	"github.com/amankhan2005/DecoderHealth/internal/application/career"
	"github.com/amankhan2005/DecoderHealth/internal/application/contact"
	"github.com/amankhan2005/DecoderHealth/internal/application/sitesettings"
	"github.com/amankhan2005/DecoderHealth/internal/config"
	"github.com/amankhan2005/DecoderHealth/internal/infrastructure/db/postgres"
	"github.com/amankhan2005/DecoderHealth/internal/infrastructure/email"
	"github.com/amankhan2005/DecoderHealth/internal/infrastructure/upload"
	"github.com/amankhan2005/DecoderHealth/internal/logger"
	"github.com/amankhan2005/DecoderHealth/internal/transport/http/handlers"
	appmw "github.com/amankhan2005/DecoderHealth/internal/transport/http/middleware"
	"github.com/amankhan2005/DecoderHealth/internal/transport/http/router"
)

// App holds all dependencies for the service.
type App struct {
	Config     *config.Config
	Server     *http.Server
	DB         *sql.DB
	Dispatcher *career.Service
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			zlog.Fatal().Err(err).Msg("db ping failed")
		}
	}

	app := NewApp(cfg, db)

	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server crashed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info().Msg("shutdown initiated")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownWait)
	defer cancel()
	if err := app.Server.Shutdown(ctx); err != nil {
		zlog.Error().Err(err).Msg("http shutdown failed")
	}

	// Drain in-flight notification dispatches before exit so no resume
	// file is leaked mid-cleanup.
	app.Dispatcher.Wait()

	zlog.Info().Msg("shutdown complete")
}

func NewApp(cfg *config.Config, db *sql.DB) *App {
	// 1) Infrastructure
	leadRepo := postgres.NewLeadRepo(db)
	settingsRepo := postgres.NewSettingsRepo(db)
	uploads := upload.NewStore(cfg.UploadDir, cfg.MaxUploadSize, logger.Logger)

	var sender career.Sender
	switch cfg.EmailSender {
	case "smtp":
		sender = email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.AdminEmail,
			FromName: cfg.SenderDisplay,
			Timeout:  cfg.SMTPTimeout,
			Insecure: cfg.SMTPInsecure,
		}, logger.Logger)
	default:
		sender = email.NewFakeSender(logger.Logger)
	}

	// 2) Application
	dispatcher := career.New(sender, career.Config{
		Brand:        cfg.SenderDisplay,
		AdminEmail:   cfg.AdminEmail,
		HRRecipients: cfg.HRRecipients,
	}, logger.Logger)
	contactSvc := contact.New(leadRepo, logger.Logger)
	settingsSvc := sitesettings.New(settingsRepo, logger.Logger)

	// 3) Transport
	careerH := handlers.NewCareerHandler(dispatcher, uploads, logger.Logger)
	contactH := handlers.NewContactHandler(contactSvc, logger.Logger)
	settingsH := handlers.NewSettingsHandler(settingsSvc, uploads, logger.Logger)
	healthH := handlers.NewHealthHandler()
	admin := appmw.NewAdminAuth(cfg.AdminUser, cfg.AdminPass)

	// 4) Router + server
	httpHandler := router.New(careerH, contactH, settingsH, healthH, admin, cfg)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:     cfg,
		Server:     srv,
		DB:         db,
		Dispatcher: dispatcher,
	}
}
