package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/food-catalog/internal/storage/mq"
	"github.com/tuanvumaihuynh/food-catalog/pkg/mqheaders"
)

type Publisher interface {
	FoodViewed(ctx context.Context, ev FoodViewed)
	FoodsSearched(ctx context.Context, ev FoodsSearched)
}

var (
	_ Publisher = (*KafkaPublisher)(nil)
	_ Publisher = NopPublisher{}
)

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) FoodViewed(context.Context, FoodViewed) {}
func (NopPublisher) FoodsSearched(context.Context, FoodsSearched) {}

type KafkaPublisher struct {
	producer mq.Producer
	logger   *slog.Logger
	timeout  time.Duration
	now      func() time.Time
}

func NewKafkaPublisher(producer mq.Producer, logger *slog.Logger, timeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		logger:   logger,
		timeout:  timeout,
		now:      time.Now,
	}
}

func (p *KafkaPublisher) FoodViewed(ctx context.Context, ev FoodViewed) {
	p.publish(ctx, TopicFoodViewed, ev.Code, ev)
}

func (p *KafkaPublisher) FoodsSearched(ctx context.Context, ev FoodsSearched) {
	p.publish(ctx, TopicFoodsSearched, ev.Term, ev)
}

func (p *KafkaPublisher) publish(ctx context.Context, topic, key string, data any) {
	msg, err := p.buildMsg(ctx, topic, key, data)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to build activity event",
			slog.String("topic", topic),
			slog.Any("error", err),
		)
		return
	}

	// The request context is cancelled as soon as the response is written.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	p.producer.TryProduce(ctx, msg, func(err error) {
		defer cancel()
		if err != nil {
			p.logger.WarnContext(ctx, "failed to publish activity event",
				slog.String("topic", topic),
				slog.Any("error", err),
			)
		}
	})
}

func (p *KafkaPublisher) buildMsg(ctx context.Context, topic, key string, data any) (mq.ProduceMsg, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return mq.ProduceMsg{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	payload, err := json.Marshal(Envelope[any]{
		ID:         id.String(),
		OccurredAt: p.now().UTC(),
		Data:       data,
	})
	if err != nil {
		return mq.ProduceMsg{}, fmt.Errorf("marshal event: %w", err)
	}

	return mq.ProduceMsg{
		Topic:        topic,
		Headers:      mqheaders.Build(ctx),
		Payload:      payload,
		PartitionKey: &key,
	}, nil
}
