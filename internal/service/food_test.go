package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/food-catalog/internal/activity"
	"github.com/tuanvumaihuynh/food-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/food-catalog/internal/config"
	"github.com/tuanvumaihuynh/food-catalog/internal/model"
	"github.com/tuanvumaihuynh/food-catalog/internal/repository"
	"github.com/tuanvumaihuynh/food-catalog/internal/service"
	"github.com/tuanvumaihuynh/food-catalog/pkg/ptr"
	"github.com/tuanvumaihuynh/food-catalog/pkg/validator"
)

var testCatalog = config.Catalog{
	PreviewLimit: 20,
	TableLimit:   10,
	SearchLimit:  0,
}

func newTestService() (service.FoodService, *mockFoodRepository, *mockPublisher) {
	repo := new(mockFoodRepository)
	pub := new(mockPublisher)
	return service.NewFoodService(testCatalog, repo, pub, validator.MustNewDefaultValidator()), repo, pub
}

func TestFoodService_ListPreviewFoods(t *testing.T) {
	ctx := context.Background()

	t.Run("Should pass limit and placeholder", func(t *testing.T) {
		svc, repo, _ := newTestService()
		want := []model.FoodPreview{{Code: "ABC123", ImageURL: ptr.New("https://img/abc.png")}}
		repo.On("ListPreviewFoods", ctx, repository.ListPreviewFoodsParams{
			Limit:               20,
			PlaceholderImageURL: config.DefaultPlaceholderImageURL,
		}).Return(want, nil).Once()

		got, err := svc.ListPreviewFoods(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		repo.AssertExpectations(t)
	})

	t.Run("Should return empty slice instead of nil", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.On("ListPreviewFoods", ctx, mock.Anything).Return(nil, nil).Once()

		got, err := svc.ListPreviewFoods(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should map storage failure", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.On("ListPreviewFoods", ctx, mock.Anything).Return(nil, errors.New("connection refused")).Once()

		_, err := svc.ListPreviewFoods(ctx)
		assert.ErrorIs(t, err, apperr.FoodPreviewFetchFailedErr)
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestFoodService_ListTableFoods(t *testing.T) {
	ctx := context.Background()

	t.Run("Should pass table limit", func(t *testing.T) {
		svc, repo, _ := newTestService()
		want := []model.Food{{Code: "ABC123"}}
		repo.On("ListTableFoods", ctx, int32(10)).Return(want, nil).Once()

		got, err := svc.ListTableFoods(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Should map storage failure", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.On("ListTableFoods", ctx, int32(10)).Return(nil, errors.New("boom")).Once()

		_, err := svc.ListTableFoods(ctx)
		assert.ErrorIs(t, err, apperr.FoodTableFetchFailedErr)
	})
}

func TestFoodService_SearchFoods(t *testing.T) {
	ctx := context.Background()

	t.Run("Should require a term", func(t *testing.T) {
		for _, term := range []string{"", "   "} {
			svc, repo, _ := newTestService()

			_, err := svc.SearchFoods(ctx, service.SearchFoodsParams{Term: term})
			assert.ErrorIs(t, err, apperr.FoodSearchTermRequiredErr)
			repo.AssertNotCalled(t, "SearchFoodsByName", mock.Anything, mock.Anything)
		}
	})

	t.Run("Should reject control characters", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.SearchFoods(ctx, service.SearchFoodsParams{Term: "a\x00b"})
		assert.ErrorIs(t, err, apperr.ValidationErr)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("Should search and publish activity", func(t *testing.T) {
		svc, repo, pub := newTestService()
		want := []model.FoodPreview{{Code: "CHOC01"}, {Code: "CHOC02"}}
		repo.On("SearchFoodsByName", ctx, repository.SearchFoodsParams{Term: "choco"}).Return(want, nil).Once()
		pub.On("FoodsSearched", ctx, activity.FoodsSearched{Term: "choco", ResultCount: 2}).Once()

		got, err := svc.SearchFoods(ctx, service.SearchFoodsParams{Term: "choco"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
		repo.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("Should not publish on failure", func(t *testing.T) {
		svc, repo, pub := newTestService()
		repo.On("SearchFoodsByName", ctx, mock.Anything).Return(nil, errors.New("boom")).Once()

		_, err := svc.SearchFoods(ctx, service.SearchFoodsParams{Term: "choco"})
		assert.ErrorIs(t, err, apperr.FoodSearchFailedErr)
		pub.AssertNotCalled(t, "FoodsSearched", mock.Anything, mock.Anything)
	})
}

func TestFoodService_GetFood(t *testing.T) {
	ctx := context.Background()

	t.Run("Should require a code", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.GetFood(ctx, service.GetFoodParams{Code: " "})
		assert.ErrorIs(t, err, apperr.FoodCodeRequiredErr)
	})

	t.Run("Should return not found for non printable code without querying", func(t *testing.T) {
		svc, repo, _ := newTestService()

		_, err := svc.GetFood(ctx, service.GetFoodParams{Code: "abc\x00"})
		assert.ErrorIs(t, err, apperr.FoodNotFoundErr)

		_, err = svc.GetFood(ctx, service.GetFoodParams{Code: strings.Repeat("9", 513)})
		assert.ErrorIs(t, err, apperr.FoodNotFoundErr)

		repo.AssertNotCalled(t, "GetFoodNutrients", mock.Anything, mock.Anything)
	})

	t.Run("Should look up any printable code as stored", func(t *testing.T) {
		codes := []string{"ABC 123", "3017620422003/1", "café-01", "abc+1", "abc'; --"}

		for _, code := range codes {
			t.Run(code, func(t *testing.T) {
				svc, repo, pub := newTestService()
				want := model.FoodNutrients{Code: code, ProductName: ptr.New("Stored")}
				repo.On("GetFoodNutrients", ctx, code).Return(want, nil).Once()
				pub.On("FoodViewed", ctx, activity.FoodViewed{Code: code, ProductName: ptr.New("Stored")}).Once()

				got, err := svc.GetFood(ctx, service.GetFoodParams{Code: code})
				require.NoError(t, err)
				assert.Equal(t, want, got)
				repo.AssertExpectations(t)
			})
		}
	})

	t.Run("Should return not found for unknown code", func(t *testing.T) {
		svc, repo, pub := newTestService()
		repo.On("GetFoodNutrients", ctx, "MISSING").
			Return(model.FoodNutrients{}, errors.Join(errors.New("get food nutrients"), repository.ErrFoodNotFound)).Once()

		_, err := svc.GetFood(ctx, service.GetFoodParams{Code: "MISSING"})
		assert.ErrorIs(t, err, apperr.FoodNotFoundErr)
		pub.AssertNotCalled(t, "FoodViewed", mock.Anything, mock.Anything)
	})

	t.Run("Should return food and publish activity", func(t *testing.T) {
		svc, repo, pub := newTestService()
		want := model.FoodNutrients{Code: "ABC123", ProductName: ptr.New("Greek Yogurt"), Proteins100g: ptr.New(5.0)}
		repo.On("GetFoodNutrients", ctx, "ABC123").Return(want, nil).Once()
		pub.On("FoodViewed", ctx, activity.FoodViewed{Code: "ABC123", ProductName: ptr.New("Greek Yogurt")}).Once()

		got, err := svc.GetFood(ctx, service.GetFoodParams{Code: "ABC123"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
		pub.AssertExpectations(t)
	})

	t.Run("Should map storage failure", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.On("GetFoodNutrients", ctx, "ABC123").Return(model.FoodNutrients{}, errors.New("boom")).Once()

		_, err := svc.GetFood(ctx, service.GetFoodParams{Code: "ABC123"})
		assert.ErrorIs(t, err, apperr.FoodFetchFailedErr)
	})
}
