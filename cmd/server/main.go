package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/sportnest/sportscomplex-backend/internal/config"
	"github.com/sportnest/sportscomplex-backend/internal/database"
	"github.com/sportnest/sportscomplex-backend/internal/handler"
	"github.com/sportnest/sportscomplex-backend/internal/logger"
	"github.com/sportnest/sportscomplex-backend/internal/mailer"
	"github.com/sportnest/sportscomplex-backend/internal/repository"
	"github.com/sportnest/sportscomplex-backend/internal/router"
	"github.com/sportnest/sportscomplex-backend/internal/service"
	"github.com/sportnest/sportscomplex-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting SportsComplex Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	sportRepo := repository.NewSportRepository(pool)
	classRepo := repository.NewSportsClassRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	ratingRepo := repository.NewRatingRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	mail := mailer.New(cfg, log)
	authService := service.NewAuthService(cfg)
	userService := service.NewUserService(userRepo, authService, mail, log)
	sportService := service.NewSportService(sportRepo)
	classService := service.NewSportsClassService(classRepo, sportRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo)
	ratingService := service.NewRatingService(ratingRepo, rdb, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		User:       handler.NewUserHandler(userService),
		Sport:      handler.NewSportHandler(sportService),
		Class:      handler.NewSportsClassHandler(classService),
		Enrollment: handler.NewEnrollmentHandler(enrollmentService),
		Rating:     handler.NewRatingHandler(ratingService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, userService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
