package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/tuanvumaihuynh/food-catalog/internal/model"
	"github.com/tuanvumaihuynh/food-catalog/pkg/ptr"
)

const (
	DefaultDetailTitle = "Nutrition Sources"
	DetailErrorTitle   = "Could not load nutrition data"
	NoDataLabel        = "No Data"
)

// Slice is one labelled value of a chart series.
type Slice struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// DefaultBreakdown is shown when no food is selected or loading failed.
func DefaultBreakdown() []Slice {
	return []Slice{
		{Label: "pie 1", Value: 3500},
		{Label: "pie 2", Value: 2500},
		{Label: "pie 3", Value: 1500},
		{Label: "pie 4", Value: 500},
	}
}

// Summary holds the headline figures of a food. Nil means unknown.
type Summary struct {
	Calories   *float64 `json:"calories" yaml:"calories"`
	NutriScore *int     `json:"nutriscore" yaml:"nutriscore"`
	Sugars     *float64 `json:"sugars" yaml:"sugars"`
	Salt       *float64 `json:"salt" yaml:"salt"`
}

type DetailState struct {
	Status    Status  `json:"status" yaml:"status"`
	Loading   bool    `json:"loading" yaml:"loading"`
	Error     string  `json:"error,omitempty" yaml:"error,omitempty"`
	Code      string  `json:"code,omitempty" yaml:"code,omitempty"`
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	Title     string  `json:"title" yaml:"title"`
	Breakdown []Slice `json:"breakdown" yaml:"breakdown"`
	Summary   Summary `json:"summary" yaml:"summary"`
	// Profile is the detailed nutrient series, missing values read as 0.
	Profile []Slice `json:"profile" yaml:"profile"`
}

// Detail shows the nutrients of one food.
type Detail struct {
	src    Source
	loader Loader[*model.FoodNutrients]
}

func NewDetail(src Source) *Detail {
	return &Detail{src: src}
}

// Load selects a food by code. An empty code shows the default chart
// without fetching.
func (d *Detail) Load(ctx context.Context, code string) DetailState {
	code = strings.TrimSpace(code)
	if code == "" {
		d.loader.Set("", nil)
		return d.State()
	}

	d.loader.Load(ctx, code, "Failed to load food", func(ctx context.Context) (*model.FoodNutrients, error) {
		food, err := d.src.GetFood(ctx, code)
		if err != nil {
			return nil, err
		}
		return &food, nil
	})

	return d.State()
}

func (d *Detail) State() DetailState {
	snap := d.loader.Snapshot()

	st := DetailState{
		Status:    snap.Status,
		Loading:   snap.Loading,
		Error:     snap.Error,
		Code:      snap.Key,
		Title:     DefaultDetailTitle,
		Breakdown: DefaultBreakdown(),
		Profile:   Profile(model.FoodNutrients{}),
	}

	switch {
	case snap.Status == StatusError:
		st.Title = DetailErrorTitle
	case snap.Data != nil:
		food := *snap.Data
		st.Name = displayName(food)
		st.Title = fmt.Sprintf("Macronutrients for %s", st.Name)
		st.Breakdown = Breakdown(food)
		st.Summary = Summary{
			Calories:   food.EnergyKcal100g,
			NutriScore: food.NutriscoreScore,
			Sugars:     food.Sugars100g,
			Salt:       food.Salt100g,
		}
		st.Profile = Profile(food)
	}

	return st
}

// Breakdown returns the strictly positive macronutrients of food, or a
// single "No Data" slice when there is none.
func Breakdown(food model.FoodNutrients) []Slice {
	all := []Slice{
		{Label: "Protein (g)", Value: ptr.ValueOr(food.Proteins100g, 0)},
		{Label: "Carbs (g)", Value: ptr.ValueOr(food.Carbohydrates100g, 0)},
		{Label: "Fat (g)", Value: ptr.ValueOr(food.Fat100g, 0)},
	}

	out := make([]Slice, 0, len(all))
	for _, s := range all {
		if s.Value > 0 {
			out = append(out, s)
		}
	}

	if len(out) == 0 {
		return []Slice{{Label: NoDataLabel, Value: 1}}
	}
	return out
}

// Profile returns the extended nutrient series of food.
func Profile(food model.FoodNutrients) []Slice {
	return []Slice{
		{Label: "Fiber", Value: ptr.ValueOr(food.Fiber100g, 0)},
		{Label: "Sodium", Value: ptr.ValueOr(food.Sodium100g, 0)},
		{Label: "Calcium", Value: ptr.ValueOr(food.Calcium100g, 0)},
		{Label: "Iron", Value: ptr.ValueOr(food.Iron100g, 0)},
		{Label: "Vitamin C", Value: ptr.ValueOr(food.VitaminC100g, 0)},
	}
}

func displayName(food model.FoodNutrients) string {
	if food.ProductName != nil && *food.ProductName != "" {
		return *food.ProductName
	}
	return food.Code
}
