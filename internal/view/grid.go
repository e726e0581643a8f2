package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/tuanvumaihuynh/food-catalog/internal/model"
)

const (
	UnnamedFood = "Unnamed Food"

	gridTitle          = "Food"
	gridEmpty          = "No food items found."
	gridEmptyForSearch = "No food items found matching your search."
)

// Card is one tile of the grid.
type Card struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Cover string `json:"cover" yaml:"cover"`
}

type GridState struct {
	Status  Status `json:"status" yaml:"status"`
	Loading bool   `json:"loading" yaml:"loading"`
	Term    string `json:"term,omitempty" yaml:"term,omitempty"`
	Title   string `json:"title" yaml:"title"`
	Cards   []Card `json:"cards" yaml:"cards"`
	// Empty is set when the load succeeded with no card.
	Empty string `json:"empty,omitempty" yaml:"empty,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Grid shows preview cards, or search results when a term is set.
type Grid struct {
	src         Source
	placeholder string
	loader      Loader[[]model.FoodPreview]
}

// NewGrid creates a grid whose cards fall back to placeholder when a food
// has no picture.
func NewGrid(src Source, placeholder string) *Grid {
	return &Grid{
		src:         src,
		placeholder: placeholder,
	}
}

// Load shows the preview list for an empty term and search results otherwise.
func (g *Grid) Load(ctx context.Context, term string) GridState {
	term = strings.TrimSpace(term)

	if term == "" {
		g.loader.Load(ctx, term, "Failed to load foods", g.src.ListPreviewFoods)
	} else {
		g.loader.Load(ctx, term, fmt.Sprintf(`Failed to find results for "%s"`, term),
			func(ctx context.Context) ([]model.FoodPreview, error) {
				return g.src.SearchFoods(ctx, term)
			})
	}

	return g.State()
}

func (g *Grid) State() GridState {
	snap := g.loader.Snapshot()

	st := GridState{
		Status:  snap.Status,
		Loading: snap.Loading,
		Term:    snap.Key,
		Title:   gridTitle,
		Cards:   make([]Card, 0, len(snap.Data)),
		Error:   snap.Error,
	}
	if snap.Key != "" {
		st.Title = fmt.Sprintf(`Search Results for "%s"`, snap.Key)
	}

	for _, f := range snap.Data {
		st.Cards = append(st.Cards, g.card(f))
	}

	if snap.Status == StatusSuccess && len(st.Cards) == 0 {
		st.Empty = gridEmpty
		if snap.Key != "" {
			st.Empty = gridEmptyForSearch
		}
	}

	return st
}

func (g *Grid) card(f model.FoodPreview) Card {
	c := Card{
		ID:    f.Code,
		Name:  UnnamedFood,
		Cover: g.placeholder,
	}
	if f.ProductName != nil && *f.ProductName != "" {
		c.Name = *f.ProductName
	}
	if f.ImageURL != nil && *f.ImageURL != "" {
		c.Cover = *f.ImageURL
	}
	return c
}
