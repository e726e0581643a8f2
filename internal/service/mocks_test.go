package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tuanvumaihuynh/food-catalog/internal/activity"
	"github.com/tuanvumaihuynh/food-catalog/internal/model"
	"github.com/tuanvumaihuynh/food-catalog/internal/repository"
)

type mockFoodRepository struct {
	mock.Mock
}

func (m *mockFoodRepository) ListPreviewFoods(ctx context.Context, params repository.ListPreviewFoodsParams) ([]model.FoodPreview, error) {
	args := m.Called(ctx, params)
	foods, _ := args.Get(0).([]model.FoodPreview)
	return foods, args.Error(1)
}

func (m *mockFoodRepository) ListTableFoods(ctx context.Context, limit int32) ([]model.Food, error) {
	args := m.Called(ctx, limit)
	foods, _ := args.Get(0).([]model.Food)
	return foods, args.Error(1)
}

func (m *mockFoodRepository) SearchFoodsByName(ctx context.Context, params repository.SearchFoodsParams) ([]model.FoodPreview, error) {
	args := m.Called(ctx, params)
	foods, _ := args.Get(0).([]model.FoodPreview)
	return foods, args.Error(1)
}

func (m *mockFoodRepository) GetFoodNutrients(ctx context.Context, code string) (model.FoodNutrients, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(model.FoodNutrients), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) FoodViewed(ctx context.Context, ev activity.FoodViewed) {
	m.Called(ctx, ev)
}

func (m *mockPublisher) FoodsSearched(ctx context.Context, ev activity.FoodsSearched) {
	m.Called(ctx, ev)
}
