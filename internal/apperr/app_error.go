package apperr

import "github.com/tuanvumaihuynh/food-catalog/pkg/zerror"

const (
	ValidationErrorCode = "VALIDATION_FAILED"
	RequestTimeoutCode  = "REQUEST_TIMEOUT"
	RateLimitedCode     = "RATE_LIMITED"
	DBUnavailableCode   = "DATABASE_UNAVAILABLE"

	FoodSearchTermRequiredCode = "FOOD_SEARCH_TERM_REQUIRED"
	FoodCodeRequiredCode       = "FOOD_CODE_REQUIRED"
	FoodNotFoundCode           = "FOOD_NOT_FOUND"

	FoodPreviewFetchFailedCode = "FOOD_PREVIEW_FETCH_FAILED"
	FoodTableFetchFailedCode   = "FOOD_TABLE_FETCH_FAILED"
	FoodSearchFailedCode       = "FOOD_SEARCH_FAILED"
	FoodFetchFailedCode        = "FOOD_FETCH_FAILED"
)

var (
	// ValidationErr wraps validator errors; the response names the failed field.
	ValidationErr     = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	RequestTimeoutErr = zerror.NewTimeout(RequestTimeoutCode, "Request timed out")
	RateLimitedErr    = zerror.NewTooManyRequests(RateLimitedCode, "Rate limit exceeded")
	DBUnavailableErr  = zerror.NewServiceUnavailable(DBUnavailableCode, "Database unavailable")

	FoodSearchTermRequiredErr = zerror.NewBadRequest(FoodSearchTermRequiredCode, "Search term is required")
	FoodCodeRequiredErr       = zerror.NewBadRequest(FoodCodeRequiredCode, "Food code is required")
	FoodNotFoundErr           = zerror.NewNotFound(FoodNotFoundCode, "Food not found")

	// Storage failures. The parent error is logged, only the message reaches the client.
	FoodPreviewFetchFailedErr = zerror.NewInternalServerError(FoodPreviewFetchFailedCode, "Failed to fetch preview data")
	FoodTableFetchFailedErr   = zerror.NewInternalServerError(FoodTableFetchFailedCode, "Failed to fetch table data")
	FoodSearchFailedErr       = zerror.NewInternalServerError(FoodSearchFailedCode, "Failed to search for data")
	FoodFetchFailedErr        = zerror.NewInternalServerError(FoodFetchFailedCode, "Failed to fetch data")
)
