package activity

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/food-catalog/internal/storage/mq"
	"github.com/tuanvumaihuynh/food-catalog/pkg/correlationid"
	"github.com/tuanvumaihuynh/food-catalog/pkg/ptr"
)

type mockProducer struct {
	mock.Mock
}

func (m *mockProducer) Produce(ctx context.Context, msg mq.ProduceMsg) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockProducer) TryProduce(ctx context.Context, msg mq.ProduceMsg, promise mq.PromiseFunc) {
	args := m.Called(ctx, msg, promise)
	promise(args.Error(0))
}

func newTestPublisher(producer mq.Producer) *KafkaPublisher {
	p := NewKafkaPublisher(producer, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Second)
	p.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return p
}

func TestKafkaPublisher_FoodViewed(t *testing.T) {
	producer := new(mockProducer)
	p := newTestPublisher(producer)

	var got mq.ProduceMsg
	producer.On("TryProduce", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(mq.ProduceMsg) }).
		Return(nil).Once()

	ctx := correlationid.NewContext(context.Background(), "corr-1")
	p.FoodViewed(ctx, FoodViewed{Code: "ABC123", ProductName: ptr.New("Greek Yogurt")})

	producer.AssertExpectations(t)
	assert.Equal(t, TopicFoodViewed, got.Topic)
	assert.Equal(t, "ABC123", *got.PartitionKey)
	assert.Equal(t, "corr-1", got.Headers[correlationid.Header])

	var env Envelope[FoodViewed]
	require.NoError(t, json.Unmarshal(got.Payload, &env))
	assert.NotEmpty(t, env.ID)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), env.OccurredAt)
	assert.Equal(t, FoodViewed{Code: "ABC123", ProductName: ptr.New("Greek Yogurt")}, env.Data)
}

func TestKafkaPublisher_FoodsSearched(t *testing.T) {
	producer := new(mockProducer)
	p := newTestPublisher(producer)

	var got mq.ProduceMsg
	producer.On("TryProduce", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(mq.ProduceMsg) }).
		Return(errors.New("broker down")).Once()

	// A failed publish is only logged.
	p.FoodsSearched(context.Background(), FoodsSearched{Term: "choco", ResultCount: 3})

	producer.AssertExpectations(t)
	assert.Equal(t, TopicFoodsSearched, got.Topic)

	var env Envelope[FoodsSearched]
	require.NoError(t, json.Unmarshal(got.Payload, &env))
	assert.Equal(t, FoodsSearched{Term: "choco", ResultCount: 3}, env.Data)
}

func TestKafkaPublisher_DetachesRequestContext(t *testing.T) {
	producer := new(mockProducer)
	p := newTestPublisher(producer)

	var produceCtx context.Context
	producer.On("TryProduce", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { produceCtx = args.Get(0).(context.Context) }).
		Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.FoodViewed(ctx, FoodViewed{Code: "ABC123"})

	require.NotNil(t, produceCtx)
	_, hasDeadline := produceCtx.Deadline()
	assert.True(t, hasDeadline)
}
