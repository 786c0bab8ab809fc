// Package swaggerkit mounts the Swagger UI and the OpenAPI document it reads
package swaggerkit

import (
	"net/http"

	phttp "cryptokit/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocPath is where the OpenAPI document is served
const DocPath = "/api/docs/doc.json"

// Mount serves the UI under /api/docs/ and the document at DocPath when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get(DocPath, serveDocJSON())
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(DocPath),
	))
}
