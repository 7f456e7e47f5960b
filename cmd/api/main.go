package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/turmab/helpdesk/internal/api"
	"github.com/turmab/helpdesk/internal/core/service"
	"github.com/turmab/helpdesk/internal/infrastructure/config"
	mongodb "github.com/turmab/helpdesk/internal/infrastructure/db/mongo"
	redisdb "github.com/turmab/helpdesk/internal/infrastructure/db/redis"
	"github.com/turmab/helpdesk/internal/infrastructure/notify"
	"github.com/turmab/helpdesk/internal/infrastructure/queue"
	"github.com/turmab/helpdesk/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "helpdesk-api",
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	// Redis backs the login throttle only; the API stays up without it.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	dispatcher := queue.NewDispatcher(0, notify.NewLogNotifier(log), log)
	dispatcher.Start(ctx)

	if cfg.Seed {
		seeder := service.NewSeedService(mongodb.NewPersonRepository(db), mongodb.NewTicketRepository(db), log)
		if err := seeder.Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("database seeding failed")
		}
	}

	e := api.NewRouter(db, rdb, cfg, log, dispatcher)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}
}
