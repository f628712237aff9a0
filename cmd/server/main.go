package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/timekeep/attendance-system/internal/api"
	"github.com/timekeep/attendance-system/internal/core/service"
	mongodb "github.com/timekeep/attendance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/timekeep/attendance-system/internal/infrastructure/db/redis"
	"github.com/timekeep/attendance-system/internal/pkg/config"
	"github.com/timekeep/attendance-system/pkg/logger"
)

// @title        Attendance System API
// @version      1.0
// @description  Check-in/check-out attendance tracking with QR location codes and daily wage summaries.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := bootstrapStore(ctx, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("store bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(db, rdb, cfg, log)

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Msg("attendance API listening")

	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

// bootstrapStore creates indexes and seeds the initial location codes.
func bootstrapStore(ctx context.Context, db *mongo.Database, cfg *config.Config, log zerolog.Logger) error {
	userRepo := mongodb.NewUserRepository(db)
	entryRepo := mongodb.NewEntryRepository(db)
	locationRepo := mongodb.NewLocationRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := entryRepo.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := locationRepo.EnsureIndexes(ctx); err != nil {
		return err
	}

	locations := service.NewLocationService(locationRepo, nil, log)
	if err := locations.Seed(ctx, cfg.SeedLocations); err != nil {
		return err
	}

	log.Info().Strs("codes", cfg.SeedLocations).Msg("location registry seeded")
	return nil
}
