// Package swagger serves the embedded API contract and a Swagger UI page
// rendering it.
package swagger

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	apicontract "github.com/tuanvumaihuynh/inventory-hub/api-contract"
)

const (
	docsPath = "/docs"
	specPath = "/docs/openapi.yml"

	uiVersion = "5.29.3"
)

var page = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@{{.Version}}/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@{{.Version}}/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: {{.SpecURL}},
      dom_id: '#swagger-ui',
      deepLinking: true,
    });
  };
</script>
</body>
</html>
`))

// Register mounts the UI at /docs and the raw contract at /docs/openapi.yml.
func Register(r chi.Router) {
	var html bytes.Buffer
	if err := page.Execute(&html, map[string]string{
		"Title":   "Inventory Hub API",
		"Version": uiVersion,
		"SpecURL": specPath,
	}); err != nil {
		panic(err)
	}
	htmlBytes := html.Bytes()

	spec := apicontract.GetSpecBytes()
	sum := sha256.Sum256(spec)
	etag := `"` + hex.EncodeToString(sum[:8]) + `"`

	r.Get(docsPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(htmlBytes)
	})

	r.Get(specPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(spec)
	})
}
