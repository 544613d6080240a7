package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/tournament-engine/brackets"
	"github.com/Dosada05/tournament-engine/config"
	"github.com/Dosada05/tournament-engine/db"
	"github.com/Dosada05/tournament-engine/handlers"
	"github.com/Dosada05/tournament-engine/notify"
	"github.com/Dosada05/tournament-engine/repositories"
	api "github.com/Dosada05/tournament-engine/routes"
	"github.com/Dosada05/tournament-engine/services"
	"github.com/Dosada05/tournament-engine/storage"
	"github.com/go-chi/chi/v5"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	presets, err := config.LoadPresets(cfg.SportPresetsFile)
	if err != nil {
		logger.Error("failed to load sport presets", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var tournamentRepo repositories.TournamentRepository
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			}
		}()
		if err := repositories.EnsureSchema(ctx, dbConn); err != nil {
			logger.Error("failed to prepare database schema", slog.Any("error", err))
			os.Exit(1)
		}
		tournamentRepo = repositories.NewPostgresTournamentRepository(dbConn)
		logger.Info("using postgres tournament store")
	} else {
		tournamentRepo = repositories.NewMemoryTournamentRepository()
		logger.Info("DATABASE_URL not set, using in-memory tournament store")
	}

	var uploader storage.FileUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, cfg.R2)
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("R2 settings incomplete, report export disabled")
	}

	rnd := brackets.NewRandom()
	if cfg.EngineSeed != nil {
		rnd = brackets.NewSeeded(*cfg.EngineSeed)
		logger.Info("engine randomness seeded", slog.Uint64("seed", *cfg.EngineSeed))
	}

	wsHub := notify.NewHub(logger)
	go wsHub.Run(ctx)

	tournamentService := services.NewTournamentService(services.TournamentServiceDeps{
		Repo:             tournamentRepo,
		Randomizer:       rnd,
		Notifier:         wsHub,
		Uploader:         uploader,
		Logger:           logger,
		DefaultGroupSize: cfg.DefaultGroupSize,
	})
	drawService := services.NewDrawService(presets, logger)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.CORSAllowedOrigins,
		handlers.NewTournamentHandler(tournamentService),
		handlers.NewDrawHandler(drawService),
		handlers.NewWebSocketHandler(wsHub, tournamentService, cfg.CORSAllowedOrigins, logger),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
		} else {
			logger.Info("server shutdown complete")
		}
	}
	stop()
	logger.Info("application exited")
}
