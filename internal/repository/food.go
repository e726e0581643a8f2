package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/food-catalog/internal/model"
	"github.com/tuanvumaihuynh/food-catalog/internal/storage/db"
)

// ErrFoodNotFound is returned when no row matches the requested code.
var ErrFoodNotFound = errors.New("food not found")

type ListPreviewFoodsParams struct {
	Limit int32
	// PlaceholderImageURL is excluded by exact string equality.
	PlaceholderImageURL string
}

type SearchFoodsParams struct {
	Term string
	// Limit caps the result set; zero means unlimited.
	Limit int32
}

type FoodRepository interface {
	ListPreviewFoods(ctx context.Context, params ListPreviewFoodsParams) ([]model.FoodPreview, error)
	ListTableFoods(ctx context.Context, limit int32) ([]model.Food, error)
	SearchFoodsByName(ctx context.Context, params SearchFoodsParams) ([]model.FoodPreview, error)
	GetFoodNutrients(ctx context.Context, code string) (model.FoodNutrients, error)
}

type foodRepository struct {
	conn    db.Connector
	queries foodQueries
}

// NewFoodRepository creates a repository reading from table, which may be
// schema qualified ("catalog.foodtbl").
func NewFoodRepository(conn db.Connector, table string) FoodRepository {
	return &foodRepository{
		conn:    conn,
		queries: newFoodQueries(table),
	}
}

func (r foodRepository) ListPreviewFoods(ctx context.Context, params ListPreviewFoodsParams) ([]model.FoodPreview, error) {
	var foods []model.FoodPreview
	err := r.conn.WithConn(ctx, func(conn db.DB) error {
		rows, err := conn.Query(ctx, r.queries.preview, params.PlaceholderImageURL, params.Limit)
		if err != nil {
			return fmt.Errorf("query: %w", err)
		}

		foods, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.FoodPreview])
		if err != nil {
			return fmt.Errorf("collect rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list preview foods: %w", err)
	}

	return foods, nil
}

func (r foodRepository) ListTableFoods(ctx context.Context, limit int32) ([]model.Food, error) {
	var foods []model.Food
	err := r.conn.WithConn(ctx, func(conn db.DB) error {
		rows, err := conn.Query(ctx, r.queries.table, limit)
		if err != nil {
			return fmt.Errorf("query: %w", err)
		}

		foods, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Food])
		if err != nil {
			return fmt.Errorf("collect rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list table foods: %w", err)
	}

	return foods, nil
}

func (r foodRepository) SearchFoodsByName(ctx context.Context, params SearchFoodsParams) ([]model.FoodPreview, error) {
	query, args := r.queries.search, []any{containsPattern(params.Term)}
	if params.Limit > 0 {
		query, args = r.queries.searchLimited, append(args, params.Limit)
	}

	var foods []model.FoodPreview
	err := r.conn.WithConn(ctx, func(conn db.DB) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("query: %w", err)
		}

		foods, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.FoodPreview])
		if err != nil {
			return fmt.Errorf("collect rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search foods by name: %w", err)
	}

	return foods, nil
}

func (r foodRepository) GetFoodNutrients(ctx context.Context, code string) (model.FoodNutrients, error) {
	var food model.FoodNutrients
	err := r.conn.WithConn(ctx, func(conn db.DB) error {
		rows, err := conn.Query(ctx, r.queries.nutrients, code)
		if err != nil {
			return fmt.Errorf("query: %w", err)
		}

		food, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.FoodNutrients])
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrFoodNotFound
		}
		if err != nil {
			return fmt.Errorf("collect row: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.FoodNutrients{}, fmt.Errorf("get food nutrients: %w", err)
	}

	return food, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term literally anywhere in
// the value.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
