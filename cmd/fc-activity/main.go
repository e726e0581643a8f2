package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/tuanvumaihuynh/food-catalog/internal/config"
	"github.com/tuanvumaihuynh/food-catalog/internal/event"
	"github.com/tuanvumaihuynh/food-catalog/internal/log"
	"github.com/tuanvumaihuynh/food-catalog/internal/storage/mq"
	"github.com/tuanvumaihuynh/food-catalog/internal/telemetry"
	"github.com/tuanvumaihuynh/food-catalog/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running activity consumer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Activity config.Activity
		Kafka    config.Kafka
		Otel     config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if !cfg.Kafka.Enabled() {
		return errors.New("KAFKA_ADDRESSES is required")
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

	kafkaConsumer, err := mq.NewKafkaConsumer(ctx, cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("error creating kafka consumer: %w", err)
	}

	svc, err := event.New(logger, kafkaConsumer, registry)
	if err != nil {
		return fmt.Errorf("error creating event service: %w", err)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Activity.MetricsPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cleanup, err := svc.Run(gctx)
		if err != nil {
			return fmt.Errorf("run event service: %w", err)
		}
		logger.InfoContext(ctx, "event service started")

		<-gctx.Done()

		logger.InfoContext(ctx, "event service is shutting down")
		cleanup()
		logger.InfoContext(ctx, "event service is stopped")
		return nil
	})

	g.Go(func() error {
		logger.InfoContext(ctx, "metrics server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-cmdutil.InterruptChan():
		case <-gctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer shutdownCancel()
		cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
