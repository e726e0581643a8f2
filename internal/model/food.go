package model

// FoodPreview is the card projection used by the grid and search results.
type FoodPreview struct {
	Code        string  `json:"code" db:"code"`
	ProductName *string `json:"product_name" db:"product_name"`
	ImageURL    *string `json:"image_url" db:"image_url"`
}

// Food is the table projection of a product row. Every column but Code is
// nullable in the source table.
type Food struct {
	Code              string   `json:"code" db:"code"`
	ProductName       *string  `json:"product_name" db:"product_name"`
	ImageURL          *string  `json:"image_url" db:"image_url"`
	Brands            *string  `json:"brands" db:"brands"`
	Categories        *string  `json:"categories" db:"categories"`
	PnnsGroups1       *string  `json:"pnns_groups_1" db:"pnns_groups_1"`
	NutriscoreScore   *int     `json:"nutriscore_score" db:"nutriscore_score"`
	EnergyKcal100g    *float64 `json:"energy_kcal_100g" db:"energy_kcal_100g"`
	Proteins100g      *float64 `json:"proteins_100g" db:"proteins_100g"`
	Carbohydrates100g *float64 `json:"carbohydrates_100g" db:"carbohydrates_100g"`
	Fat100g           *float64 `json:"fat_100g" db:"fat_100g"`
	Salt100g          *float64 `json:"salt_100g" db:"salt_100g"`
	Sugars100g        *float64 `json:"sugars_100g" db:"sugars_100g"`
}

// FoodNutrients is the detail projection of a single product.
type FoodNutrients struct {
	Code              string   `json:"code" db:"code"`
	ProductName       *string  `json:"product_name" db:"product_name"`
	EnergyKcal100g    *float64 `json:"energy_kcal_100g" db:"energy_kcal_100g"`
	Proteins100g      *float64 `json:"proteins_100g" db:"proteins_100g"`
	Carbohydrates100g *float64 `json:"carbohydrates_100g" db:"carbohydrates_100g"`
	Fat100g           *float64 `json:"fat_100g" db:"fat_100g"`
	Salt100g          *float64 `json:"salt_100g" db:"salt_100g"`
	Sugars100g        *float64 `json:"sugars_100g" db:"sugars_100g"`
	Fiber100g         *float64 `json:"fiber_100g" db:"fiber_100g"`
	Sodium100g        *float64 `json:"sodium_100g" db:"sodium_100g"`
	Calcium100g       *float64 `json:"calcium_100g" db:"calcium_100g"`
	Iron100g          *float64 `json:"iron_100g" db:"iron_100g"`
	VitaminC100g      *float64 `json:"vitamin_c_100g" db:"vitamin_c_100g"`
	NutriscoreScore   *int     `json:"nutriscore_score" db:"nutriscore_score"`
}
