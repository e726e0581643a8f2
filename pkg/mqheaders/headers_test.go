package mqheaders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/tuanvumaihuynh/food-catalog/pkg/correlationid"
	"github.com/tuanvumaihuynh/food-catalog/pkg/mqheaders"
)

func TestBuildAndExtract(t *testing.T) {
	ctx := correlationid.NewContext(context.Background(), "corr-1")

	headers := mqheaders.Build(ctx)
	assert.Equal(t, "corr-1", headers[correlationid.Header])

	got, ok := correlationid.FromContext(mqheaders.ExtractContext(context.Background(), headers))
	assert.True(t, ok)
	assert.Equal(t, "corr-1", got)
}

func TestBuildWithoutCorrelationID(t *testing.T) {
	headers := mqheaders.Build(context.Background())
	_, ok := headers[correlationid.Header]
	assert.False(t, ok)
}

func TestFromRecord(t *testing.T) {
	rec := &kgo.Record{Headers: []kgo.RecordHeader{
		{Key: correlationid.Header, Value: []byte("a")},
		{Key: "traceparent", Value: []byte("b")},
	}}

	assert.Equal(t, map[string]string{
		correlationid.Header: "a",
		"traceparent":        "b",
	}, mqheaders.FromRecord(rec))
}
