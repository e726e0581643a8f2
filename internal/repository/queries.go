package repository

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

const (
	previewColumns = `code, product_name, image_url`

	tableColumns = `code, product_name, image_url, brands, categories, pnns_groups_1, nutriscore_score,
		energy_kcal_100g, proteins_100g, carbohydrates_100g, fat_100g, salt_100g, sugars_100g`

	nutrientColumns = `code, product_name, energy_kcal_100g, proteins_100g, carbohydrates_100g, fat_100g,
		salt_100g, sugars_100g, fiber_100g, sodium_100g, calcium_100g, iron_100g, vitamin_c_100g,
		nutriscore_score`
)

// foodQueries holds the statements for one product table. Only the table
// identifier is interpolated, every value is a bind parameter.
type foodQueries struct {
	preview       string
	table         string
	search        string
	searchLimited string
	nutrients     string
}

func newFoodQueries(table string) foodQueries {
	ident := pgx.Identifier(strings.Split(table, ".")).Sanitize()

	search := fmt.Sprintf(`SELECT %s FROM %s WHERE product_name ILIKE $1 ESCAPE '\' ORDER BY code`, previewColumns, ident)

	return foodQueries{
		preview: fmt.Sprintf(`SELECT %s FROM %s
		WHERE image_url IS NOT NULL
			AND image_url <> ''
			AND image_url <> $1
		ORDER BY code
		LIMIT $2`, previewColumns, ident),
		table:         fmt.Sprintf(`SELECT %s FROM %s ORDER BY code LIMIT $1`, tableColumns, ident),
		search:        search,
		searchLimited: search + ` LIMIT $2`,
		nutrients:     fmt.Sprintf(`SELECT %s FROM %s WHERE code = $1`, nutrientColumns, ident),
	}
}
