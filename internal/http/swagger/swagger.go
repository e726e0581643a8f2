package swagger

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	apicontract "github.com/tuanvumaihuynh/food-catalog/api-contract"
)

const (
	// URL is the URL path where the Swagger UI is served.
	URL = "/docs"

	// SpecURL is the URL path of the YAML OpenAPI document.
	SpecURL = "/docs/openapi.yml"

	// SpecJSONURL is the URL path of the JSON OpenAPI document.
	SpecJSONURL = "/docs/openapi.json"
)

// Register validates the embedded contract and serves it, together with the
// Swagger UI, on r.
func Register(ctx context.Context, r chi.Router) error {
	doc, err := apicontract.Load(ctx)
	if err != nil {
		return fmt.Errorf("load api contract: %w", err)
	}

	specJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal api contract: %w", err)
	}

	var page strings.Builder
	if err := uiTemplate.Execute(&page, uiData{Title: doc.Info.Title, SpecURL: SpecURL}); err != nil {
		return fmt.Errorf("render swagger ui: %w", err)
	}
	pageBytes := []byte(page.String())

	r.Get(URL, serve("text/html; charset=utf-8", pageBytes))
	r.Get(SpecURL, serve("application/yaml", apicontract.GetSpecBytes()))
	r.Get(SpecJSONURL, serve("application/json", specJSON))

	return nil
}

func serve(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(body)
	}
}

type uiData struct {
	Title   string
	SpecURL string
}

var uiTemplate = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <meta name="description" content="{{.Title}}" />
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.29.3/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.29.3/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '{{.SpecURL}}',
      dom_id: '#swagger-ui',
      deepLinking: true,
    });
  };
</script>
</body>
</html>
`))
