package config

// DefaultPlaceholderImageURL is the stand-in "no image available" picture
// stored by the product import for rows without a real photo.
const DefaultPlaceholderImageURL = "https://static.wixstatic.com/media/69e890_7ac3191467e244b3845421625a7f9e11~mv2.png/v1/fill/w_319,h_321,al_c,q_85,enc_auto/IMG_1596.png"

type Catalog struct {
	PreviewLimit int32 `env:"CATALOG_PREVIEW_LIMIT" envDefault:"20" validate:"gte=1,lte=1000"`
	TableLimit   int32 `env:"CATALOG_TABLE_LIMIT" envDefault:"10" validate:"gte=1,lte=1000"`
	// SearchLimit caps search results; zero means unlimited.
	SearchLimit         int32  `env:"CATALOG_SEARCH_LIMIT" envDefault:"0" validate:"gte=0"`
	PlaceholderImageURL string `env:"CATALOG_PLACEHOLDER_IMAGE_URL" validate:"omitempty,url"`
}

// Placeholder returns the configured placeholder image URL or the default one.
func (c Catalog) Placeholder() string {
	if c.PlaceholderImageURL == "" {
		return DefaultPlaceholderImageURL
	}
	return c.PlaceholderImageURL
}
