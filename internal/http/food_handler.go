package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/tuanvumaihuynh/food-catalog/internal/http/apierr"
	"github.com/tuanvumaihuynh/food-catalog/internal/service"
)

type foodHandler struct {
	foodSvc service.FoodService
}

func newFoodHandler(foodSvc service.FoodService) *foodHandler {
	return &foodHandler{
		foodSvc: foodSvc,
	}
}

func (h *foodHandler) ListPreviewFoods(w http.ResponseWriter, r *http.Request) error {
	foods, err := h.foodSvc.ListPreviewFoods(r.Context())
	if err != nil {
		return fmt.Errorf("food service list preview foods: %w", err)
	}

	return writeOK(w, foods)
}

func (h *foodHandler) ListTableFoods(w http.ResponseWriter, r *http.Request) error {
	foods, err := h.foodSvc.ListTableFoods(r.Context())
	if err != nil {
		return fmt.Errorf("food service list table foods: %w", err)
	}

	return writeOK(w, foods)
}

func (h *foodHandler) SearchFoods(w http.ResponseWriter, r *http.Request) error {
	var q string
	if err := runtime.BindQueryParameter("form", true, false, "q", r.URL.Query(), &q); err != nil {
		return &apierr.ParamError{ParamName: "q", Err: err}
	}

	foods, err := h.foodSvc.SearchFoods(r.Context(), service.SearchFoodsParams{Term: q})
	if err != nil {
		return fmt.Errorf("food service search foods: %w", err)
	}

	return writeOK(w, foods)
}

func (h *foodHandler) GetFood(w http.ResponseWriter, r *http.Request) error {
	var code string
	if err := runtime.BindStyledParameterWithOptions("simple", "code", chi.URLParam(r, "code"), &code,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: false},
	); err != nil {
		return &apierr.ParamError{ParamName: "code", Err: err}
	}

	food, err := h.foodSvc.GetFood(r.Context(), service.GetFoodParams{Code: code})
	if err != nil {
		return fmt.Errorf("food service get food: %w", err)
	}

	return writeOK(w, food)
}

// writeOK encodes v before touching w so an encoding failure can still be
// answered with an error response.
func writeOK(w http.ResponseWriter, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(body)
	return nil
}
