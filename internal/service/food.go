package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tuanvumaihuynh/food-catalog/internal/activity"
	"github.com/tuanvumaihuynh/food-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/food-catalog/internal/config"
	"github.com/tuanvumaihuynh/food-catalog/internal/model"
	"github.com/tuanvumaihuynh/food-catalog/internal/repository"
	"github.com/tuanvumaihuynh/food-catalog/pkg/validator"
)

type SearchFoodsParams struct {
	Term string `validate:"printable,max=200"`
}

type GetFoodParams struct {
	// Codes are matched exactly, so any printable string is a candidate.
	Code string `validate:"max=512,printable"`
}

type FoodService interface {
	ListPreviewFoods(ctx context.Context) ([]model.FoodPreview, error)
	ListTableFoods(ctx context.Context) ([]model.Food, error)
	SearchFoods(ctx context.Context, params SearchFoodsParams) ([]model.FoodPreview, error)
	GetFood(ctx context.Context, params GetFoodParams) (model.FoodNutrients, error)
}

type foodService struct {
	cfg       config.Catalog
	foodRepo  repository.FoodRepository
	publisher activity.Publisher
	validator validator.Validator
}

func NewFoodService(
	cfg config.Catalog,
	foodRepo repository.FoodRepository,
	publisher activity.Publisher,
	validator validator.Validator,
) FoodService {
	return &foodService{
		cfg:       cfg,
		foodRepo:  foodRepo,
		publisher: publisher,
		validator: validator,
	}
}

func (s *foodService) ListPreviewFoods(ctx context.Context) ([]model.FoodPreview, error) {
	foods, err := s.foodRepo.ListPreviewFoods(ctx, repository.ListPreviewFoodsParams{
		Limit:               s.cfg.PreviewLimit,
		PlaceholderImageURL: s.cfg.Placeholder(),
	})
	if err != nil {
		return nil, apperr.FoodPreviewFetchFailedErr.WrapParent(
			fmt.Errorf("food repository list preview foods: %w", err),
		)
	}

	return nonNil(foods), nil
}

func (s *foodService) ListTableFoods(ctx context.Context) ([]model.Food, error) {
	foods, err := s.foodRepo.ListTableFoods(ctx, s.cfg.TableLimit)
	if err != nil {
		return nil, apperr.FoodTableFetchFailedErr.WrapParent(
			fmt.Errorf("food repository list table foods: %w", err),
		)
	}

	return nonNil(foods), nil
}

func (s *foodService) SearchFoods(ctx context.Context, params SearchFoodsParams) ([]model.FoodPreview, error) {
	if strings.TrimSpace(params.Term) == "" {
		return nil, apperr.FoodSearchTermRequiredErr
	}

	if err := s.validator.Validate(params); err != nil {
		return nil, apperr.ValidationErr.WrapParent(fmt.Errorf("validate params: %w", err))
	}

	foods, err := s.foodRepo.SearchFoodsByName(ctx, repository.SearchFoodsParams{
		Term:  params.Term,
		Limit: s.cfg.SearchLimit,
	})
	if err != nil {
		return nil, apperr.FoodSearchFailedErr.WrapParent(
			fmt.Errorf("food repository search foods by name: %w", err),
		)
	}

	s.publisher.FoodsSearched(ctx, activity.FoodsSearched{
		Term:        params.Term,
		ResultCount: len(foods),
	})

	return nonNil(foods), nil
}

func (s *foodService) GetFood(ctx context.Context, params GetFoodParams) (model.FoodNutrients, error) {
	if strings.TrimSpace(params.Code) == "" {
		return model.FoodNutrients{}, apperr.FoodCodeRequiredErr
	}

	// An oversized or non printable code cannot match a stored row.
	if err := s.validator.Validate(params); err != nil {
		return model.FoodNutrients{}, apperr.FoodNotFoundErr.WrapParent(err)
	}

	food, err := s.foodRepo.GetFoodNutrients(ctx, params.Code)
	if errors.Is(err, repository.ErrFoodNotFound) {
		return model.FoodNutrients{}, apperr.FoodNotFoundErr
	}
	if err != nil {
		return model.FoodNutrients{}, apperr.FoodFetchFailedErr.WrapParent(
			fmt.Errorf("food repository get food nutrients: %w", err),
		)
	}

	s.publisher.FoodViewed(ctx, activity.FoodViewed{
		Code:        food.Code,
		ProductName: food.ProductName,
	})

	return food, nil
}

// nonNil keeps empty results encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
