package apicontract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/tuanvumaihuynh/food-catalog/api-contract"
)

func TestLoad(t *testing.T) {
	doc, err := apicontract.Load(context.Background())
	require.NoError(t, err)

	for _, path := range []string{"/api/foods/preview", "/api/foods/table", "/api/foods/search", "/api/food/{code}"} {
		item := doc.Paths.Find(path)
		require.NotNil(t, item, path)
		assert.NotNil(t, item.Get, path)
	}

	search := doc.Paths.Find("/api/foods/search").Get
	q := search.Parameters.GetByInAndName("query", "q")
	require.NotNil(t, q)
	assert.False(t, q.Required)

	errSchema := doc.Components.Schemas["ErrorResponse"].Value
	assert.Equal(t, []string{"error"}, errSchema.Required)
}
