package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tuanvumaihuynh/food-catalog/internal/activity"
	"github.com/tuanvumaihuynh/food-catalog/internal/storage/mq"
)

// Service consumes catalog activity events.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
	metrics    *metrics
}

// New creates a new event service and registers its collectors on reg.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
	reg prometheus.Registerer,
) (*Service, error) {
	m, err := newMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("new metrics: %w", err)
	}

	return &Service{
		logger:     logger,
		mqConsumer: mqConsumer,
		metrics:    m,
	}, nil
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := s.mqConsumer.RegisterHandler(
		activity.TopicFoodViewed,
		jsonHandler(s.handleFoodViewed),
	); err != nil {
		return nil, fmt.Errorf("register food viewed handler: %w", err)
	}

	if err := s.mqConsumer.RegisterHandler(
		activity.TopicFoodsSearched,
		jsonHandler(s.handleFoodsSearched),
	); err != nil {
		return nil, fmt.Errorf("register foods searched handler: %w", err)
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}

func jsonHandler[T any](fn func(ctx context.Context, ev activity.Envelope[T]) error) mq.HandlerFunc {
	return func(ctx context.Context, topic string, payload []byte) error {
		var ev activity.Envelope[T]
		if err := json.Unmarshal(payload, &ev); err != nil {
			return fmt.Errorf("unmarshal %s event: %w", topic, err)
		}

		if err := fn(ctx, ev); err != nil {
			return fmt.Errorf("handle %s event: %w", topic, err)
		}

		return nil
	}
}
