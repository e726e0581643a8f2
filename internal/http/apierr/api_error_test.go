package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/food-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/food-catalog/internal/http/apierr"
	"github.com/tuanvumaihuynh/food-catalog/pkg/validator"
	"github.com/tuanvumaihuynh/food-catalog/pkg/zerror"
)

func TestNew(t *testing.T) {
	v := validator.MustNewDefaultValidator()
	validationErr := v.Validate(struct {
		Term string `validate:"max=3"`
	}{Term: "toolong"})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "bad request",
			err:        fmt.Errorf("food service search foods: %w", apperr.FoodSearchTermRequiredErr),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Search term is required",
		},
		{
			name:       "not found",
			err:        apperr.FoodNotFoundErr,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Food not found",
		},
		{
			name:       "storage failure hides parent",
			err:        apperr.FoodFetchFailedErr.WrapParent(errors.New("dial tcp 10.0.0.1:5432: connect: connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to fetch data",
		},
		{
			name:       "timeout",
			err:        zerror.NewTimeout("TIMEOUT", "Request timed out"),
			wantStatus: http.StatusGatewayTimeout,
			wantMsg:    "Request timed out",
		},
		{
			name:       "validation",
			err:        fmt.Errorf("validate params: %w", validationErr),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Term must be at most 3",
		},
		{
			name:       "wrapped validation names the field",
			err:        apperr.ValidationErr.WrapParent(fmt.Errorf("validate params: %w", validationErr)),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Term must be at most 3",
		},
		{
			name:       "validation failed without details",
			err:        apperr.ValidationErr,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "validation error",
		},
		{
			name:       "not found wrapping validation stays not found",
			err:        apperr.FoodNotFoundErr.WrapParent(validationErr),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Food not found",
		},
		{
			name:       "rate limited",
			err:        apperr.RateLimitedErr,
			wantStatus: http.StatusTooManyRequests,
			wantMsg:    "Rate limit exceeded",
		},
		{
			name:       "database unavailable",
			err:        apperr.DBUnavailableErr.WrapParent(errors.New("ping: connection refused")),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "Database unavailable",
		},
		{
			name:       "param",
			err:        &apierr.ParamError{ParamName: "q", Err: errors.New("multiple values for single value parameter 'q'")},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid format for parameter q: multiple values for single value parameter 'q'",
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "an unknown error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := apierr.New(tt.err)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
			assert.Equal(t, tt.wantMsg, res.Error)
		})
	}
}
