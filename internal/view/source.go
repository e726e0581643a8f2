package view

import (
	"context"

	"github.com/tuanvumaihuynh/food-catalog/internal/catalogclient"
	"github.com/tuanvumaihuynh/food-catalog/internal/model"
)

// Source is the catalog API as seen by the views.
type Source interface {
	ListPreviewFoods(ctx context.Context) ([]model.FoodPreview, error)
	ListTableFoods(ctx context.Context) ([]model.Food, error)
	SearchFoods(ctx context.Context, term string) ([]model.FoodPreview, error)
	GetFood(ctx context.Context, code string) (model.FoodNutrients, error)
}

var _ Source = (*catalogclient.Client)(nil)
