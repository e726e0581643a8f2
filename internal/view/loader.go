// Package view holds the state machines behind the catalog screens: a grid
// of preview cards, a locally filtered and sorted table, and a detail view
// with a derived nutrient breakdown. Views are safe for concurrent use; when
// loads overlap, the most recently triggered one wins.
package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tuanvumaihuynh/food-catalog/internal/catalogclient"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Snapshot is a consistent copy of a Loader's state.
type Snapshot[T any] struct {
	Status Status
	// Key is the query key of the latest triggered load.
	Key     string
	Data    T
	Error   string
	Loading bool
}

// FetchFunc retrieves the data for one load. ctx is cancelled as soon as a
// newer load starts.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Loader runs fetches and applies only the result of the latest one. Every
// load takes a new token; a completion whose token is no longer current is
// dropped.
type Loader[T any] struct {
	mu     sync.Mutex
	token  uint64
	cancel context.CancelFunc
	state  Snapshot[T]
}

// Load fetches data for key and reports whether the result was applied.
// Errors are stored as errPrefix followed by a readable cause. A panicking
// fetch ends in the error state like any other failure.
func (l *Loader[T]) Load(ctx context.Context, key string, errPrefix string, fetch FetchFunc[T]) (applied bool) {
	ctx, token := l.begin(ctx, key)

	var (
		data T
		err  error
	)
	defer func() {
		if r := recover(); r != nil {
			var zero T
			data, err = zero, fmt.Errorf("unexpected failure: %v", r)
		}
		applied = l.finish(token, data, err, errPrefix)
	}()

	data, err = fetch(ctx)
	return
}

// Set applies data without fetching, cancelling any load in flight.
func (l *Loader[T]) Set(key string, data T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.token++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.state = Snapshot[T]{Status: StatusSuccess, Key: key, Data: data}
}

// Snapshot returns the current state.
func (l *Loader[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	st := l.state
	if st.Status == "" {
		st.Status = StatusIdle
	}
	return st
}

func (l *Loader[T]) begin(ctx context.Context, key string) (context.Context, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
	}

	l.token++
	ctx, l.cancel = context.WithCancel(ctx)
	l.state.Status = StatusLoading
	l.state.Key = key
	l.state.Loading = true

	return ctx, l.token
}

func (l *Loader[T]) finish(token uint64, data T, err error, errPrefix string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if token != l.token {
		return false
	}

	l.cancel()
	l.cancel = nil
	l.state.Loading = false

	if err != nil {
		var zero T
		l.state.Status = StatusError
		l.state.Data = zero
		l.state.Error = errPrefix + ": " + describe(err)
		return true
	}

	l.state.Status = StatusSuccess
	l.state.Data = data
	l.state.Error = ""
	return true
}

func describe(err error) string {
	var apiErr *catalogclient.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	return err.Error()
}
