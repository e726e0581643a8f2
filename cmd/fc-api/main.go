package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/tuanvumaihuynh/food-catalog/internal/activity"
	"github.com/tuanvumaihuynh/food-catalog/internal/config"
	"github.com/tuanvumaihuynh/food-catalog/internal/http"
	"github.com/tuanvumaihuynh/food-catalog/internal/log"
	"github.com/tuanvumaihuynh/food-catalog/internal/repository"
	"github.com/tuanvumaihuynh/food-catalog/internal/service"
	"github.com/tuanvumaihuynh/food-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/food-catalog/internal/storage/mq"
	"github.com/tuanvumaihuynh/food-catalog/internal/telemetry"
	"github.com/tuanvumaihuynh/food-catalog/pkg/cmdutil"
	"github.com/tuanvumaihuynh/food-catalog/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
		HTTP     config.HTTP
		Catalog  config.Catalog
		Activity config.Activity
		Kafka    config.Kafka
		Otel     config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	dbClient, err := db.NewClient(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating db client: %w", err)
	}
	defer dbClient.Close()

	if pool := dbClient.Pool(); pool != nil {
		if err := db.RegisterPoolMetrics(registry, pool); err != nil {
			return fmt.Errorf("error registering pool metrics: %w", err)
		}
	}

	publisher, cleanupPublisher, err := newPublisher(ctx, cfg.Activity, cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("error creating activity publisher: %w", err)
	}
	defer cleanupPublisher()

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	foodRepository := repository.NewFoodRepository(dbClient, cfg.Postgres.FoodTable)
	foodService := service.NewFoodService(cfg.Catalog, foodRepository, publisher, v)

	svc, err := http.New(cfg.HTTP, logger, registry, foodService, dbClient)
	if err != nil {
		return fmt.Errorf("error creating http service: %w", err)
	}

	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}
	logger.InfoContext(ctx, "http service started",
		slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)),
		slog.Bool("pooled", cfg.Postgres.Pooled),
		slog.Bool("activity", cfg.Activity.Enabled),
	)

	<-cmdutil.InterruptChan()

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}
	logger.InfoContext(ctx, "http service is stopped")

	return nil
}

// newPublisher returns a Kafka backed publisher when activity events are
// enabled and brokers are configured, and a no-op one otherwise.
func newPublisher(
	ctx context.Context,
	cfg config.Activity,
	kafkaCfg config.Kafka,
	logger *slog.Logger,
) (activity.Publisher, func(), error) {
	if !cfg.Enabled || !kafkaCfg.Enabled() {
		if cfg.Enabled {
			logger.WarnContext(ctx, "activity publishing enabled without kafka brokers, events are dropped")
		}
		return activity.NopPublisher{}, func() {}, nil
	}

	producer, err := mq.NewKafkaProducer(ctx, kafkaCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("new kafka producer: %w", err)
	}

	cleanup := func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.PublishTimeout)
		defer cancel()
		if err := producer.Close(flushCtx); err != nil {
			logger.ErrorContext(ctx, "error closing kafka producer", slog.Any("error", err))
		}
	}

	return activity.NewKafkaPublisher(producer, logger, cfg.PublishTimeout), cleanup, nil
}
