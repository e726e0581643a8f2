package mq

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/food-catalog/internal/config"
)

type ProduceMsg struct {
	Topic        string
	Headers      map[string]string
	Payload      []byte
	PartitionKey *string
}

// PromiseFunc is called once the broker acknowledged or rejected a record
// produced with TryProduce.
type PromiseFunc func(err error)

type Producer interface {
	// Produce blocks until the record is acknowledged or ctx is done.
	Produce(ctx context.Context, msg ProduceMsg) error
	// TryProduce buffers the record and returns immediately.
	TryProduce(ctx context.Context, msg ProduceMsg, promise PromiseFunc)
}

var (
	_ Producer = (*KafkaProducer)(nil)
)

type KafkaProducer struct {
	cl *kgo.Client
}

func NewKafkaProducer(ctx context.Context, cfg config.Kafka, opts ...kgo.Opt) (*KafkaProducer, error) {
	opts = append([]kgo.Opt{
		kgo.SeedBrokers(cfg.Addresses...),
		kgo.AllowAutoTopicCreation(),
		kgo.WithContext(ctx),
		kgo.WithHooks(kHooks...),
	}, opts...)

	cl, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := cl.Ping(pingCtx); err != nil {
		cl.Close()
		return nil, fmt.Errorf("ping kafka: %w", err)
	}

	return &KafkaProducer{cl: cl}, nil
}

func (p *KafkaProducer) Produce(ctx context.Context, msg ProduceMsg) error {
	ctx, span := tracer.Start(ctx, "KafkaProducer.Produce",
		trace.WithAttributes(
			attribute.String("topic", msg.Topic),
		),
	)
	defer span.End()

	if err := p.cl.ProduceSync(ctx, buildProduceRecord(msg)).FirstErr(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to produce message")
		return fmt.Errorf("produce sync: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

func (p *KafkaProducer) TryProduce(ctx context.Context, msg ProduceMsg, promise PromiseFunc) {
	ctx, span := tracer.Start(ctx, "KafkaProducer.TryProduce",
		trace.WithAttributes(
			attribute.String("topic", msg.Topic),
		),
	)

	p.cl.TryProduce(ctx, buildProduceRecord(msg), func(_ *kgo.Record, err error) {
		defer span.End()

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to produce message")
		} else {
			span.SetStatus(codes.Ok, "")
		}

		if promise != nil {
			promise(err)
		}
	})
}

// Close flushes buffered records, bounded by ctx, and closes the client.
func (p *KafkaProducer) Close(ctx context.Context) error {
	defer p.cl.Close()

	if err := p.cl.Flush(ctx); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func buildProduceRecord(msg ProduceMsg) *kgo.Record {
	headers := make([]kgo.RecordHeader, 0, len(msg.Headers))
	for k, v := range msg.Headers {
		headers = append(headers, kgo.RecordHeader{
			Key:   k,
			Value: []byte(v),
		})
	}

	r := &kgo.Record{
		Topic:   msg.Topic,
		Value:   msg.Payload,
		Headers: headers,
	}

	if msg.PartitionKey != nil {
		r.Key = []byte(*msg.PartitionKey)
	}

	return r
}
