package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tuanvumaihuynh/food-catalog/internal/model"
	"github.com/tuanvumaihuynh/food-catalog/internal/service"
)

type mockFoodService struct {
	mock.Mock
}

func (m *mockFoodService) ListPreviewFoods(ctx context.Context) ([]model.FoodPreview, error) {
	args := m.Called(ctx)
	foods, _ := args.Get(0).([]model.FoodPreview)
	return foods, args.Error(1)
}

func (m *mockFoodService) ListTableFoods(ctx context.Context) ([]model.Food, error) {
	args := m.Called(ctx)
	foods, _ := args.Get(0).([]model.Food)
	return foods, args.Error(1)
}

func (m *mockFoodService) SearchFoods(ctx context.Context, params service.SearchFoodsParams) ([]model.FoodPreview, error) {
	args := m.Called(ctx, params)
	foods, _ := args.Get(0).([]model.FoodPreview)
	return foods, args.Error(1)
}

func (m *mockFoodService) GetFood(ctx context.Context, params service.GetFoodParams) (model.FoodNutrients, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.FoodNutrients), args.Error(1)
}

type mockHealthChecker struct {
	mock.Mock
}

func (m *mockHealthChecker) IsHealthy(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
