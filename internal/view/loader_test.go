package view

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/food-catalog/internal/catalogclient"
)

func TestLoader(t *testing.T) {
	t.Run("Should start idle", func(t *testing.T) {
		var l Loader[int]
		assert.Equal(t, StatusIdle, l.Snapshot().Status)
	})

	t.Run("Should apply a successful load", func(t *testing.T) {
		var l Loader[int]

		applied := l.Load(context.Background(), "k", "Failed", func(context.Context) (int, error) {
			assert.True(t, l.Snapshot().Loading)
			assert.Equal(t, StatusLoading, l.Snapshot().Status)
			return 42, nil
		})

		snap := l.Snapshot()
		assert.True(t, applied)
		assert.Equal(t, Snapshot[int]{Status: StatusSuccess, Key: "k", Data: 42}, snap)
	})

	t.Run("Should collapse failures into one message", func(t *testing.T) {
		tests := []struct {
			err  error
			want string
		}{
			{err: &catalogclient.Error{StatusCode: 404, Message: "Food not found"}, want: "Failed: Food not found"},
			{err: fmt.Errorf("get food: %w", context.DeadlineExceeded), want: "Failed: request timed out"},
			{err: errors.New("connection refused"), want: "Failed: connection refused"},
		}

		for _, tt := range tests {
			var l Loader[int]
			l.Load(context.Background(), "k", "Failed", func(context.Context) (int, error) {
				return 1, tt.err
			})

			snap := l.Snapshot()
			assert.Equal(t, StatusError, snap.Status)
			assert.False(t, snap.Loading)
			assert.Zero(t, snap.Data)
			assert.Equal(t, tt.want, snap.Error)
		}
	})

	t.Run("Should end in error state when fetch panics", func(t *testing.T) {
		var l Loader[int]
		var fetchCtx context.Context

		applied := l.Load(context.Background(), "k", "Failed", func(ctx context.Context) (int, error) {
			fetchCtx = ctx
			panic("decoder blew up")
		})

		snap := l.Snapshot()
		assert.True(t, applied)
		assert.Equal(t, StatusError, snap.Status)
		assert.False(t, snap.Loading)
		assert.Zero(t, snap.Data)
		assert.Equal(t, "Failed: unexpected failure: decoder blew up", snap.Error)
		assert.ErrorIs(t, fetchCtx.Err(), context.Canceled)

		applied = l.Load(context.Background(), "k", "Failed", func(context.Context) (int, error) {
			return 7, nil
		})
		assert.True(t, applied)
		assert.Equal(t, Snapshot[int]{Status: StatusSuccess, Key: "k", Data: 7}, l.Snapshot())
	})

	t.Run("Should drop stale completions and cancel them", func(t *testing.T) {
		var l Loader[string]
		started := make(chan struct{})
		done := make(chan bool)

		go func() {
			done <- l.Load(context.Background(), "old", "Failed", func(ctx context.Context) (string, error) {
				close(started)
				<-ctx.Done()
				return "old", nil
			})
		}()

		<-started
		applied := l.Load(context.Background(), "new", "Failed", func(context.Context) (string, error) {
			return "new", nil
		})

		assert.True(t, applied)
		assert.False(t, <-done)

		snap := l.Snapshot()
		assert.Equal(t, "new", snap.Data)
		assert.Equal(t, "new", snap.Key)
		assert.False(t, snap.Loading)
	})

	t.Run("Should cancel in flight load on Set", func(t *testing.T) {
		var l Loader[string]
		started := make(chan struct{})
		done := make(chan bool)

		go func() {
			done <- l.Load(context.Background(), "old", "Failed", func(ctx context.Context) (string, error) {
				close(started)
				<-ctx.Done()
				return "", ctx.Err()
			})
		}()

		<-started
		l.Set("", "default")

		assert.False(t, <-done)
		assert.Equal(t, Snapshot[string]{Status: StatusSuccess, Data: "default"}, l.Snapshot())
	})
}
