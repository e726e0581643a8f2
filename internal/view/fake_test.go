package view_test

import (
	"context"
	"sync"

	"github.com/tuanvumaihuynh/food-catalog/internal/model"
)

// fakeSource serves canned data. A channel registered in gates blocks the
// matching search term or code until it is closed.
type fakeSource struct {
	mu    sync.Mutex
	calls map[string]int

	preview []model.FoodPreview
	table   []model.Food
	search  map[string][]model.FoodPreview
	foods   map[string]model.FoodNutrients
	err     error
	gates   map[string]chan struct{}
}

func (f *fakeSource) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeSource) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[name]
}

func (f *fakeSource) wait(ctx context.Context, key string) error {
	gate, ok := f.gates[key]
	if !ok {
		return nil
	}

	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeSource) ListPreviewFoods(context.Context) ([]model.FoodPreview, error) {
	f.record("preview")
	return f.preview, f.err
}

func (f *fakeSource) ListTableFoods(context.Context) ([]model.Food, error) {
	f.record("table")
	return f.table, f.err
}

func (f *fakeSource) SearchFoods(ctx context.Context, term string) ([]model.FoodPreview, error) {
	f.record("search")
	if err := f.wait(ctx, term); err != nil {
		return nil, err
	}
	return f.search[term], f.err
}

func (f *fakeSource) GetFood(ctx context.Context, code string) (model.FoodNutrients, error) {
	f.record("food")
	if err := f.wait(ctx, code); err != nil {
		return model.FoodNutrients{}, err
	}
	if f.err != nil {
		return model.FoodNutrients{}, f.err
	}
	return f.foods[code], nil
}
