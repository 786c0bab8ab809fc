//go:build !swag

package swaggerkit

import "net/http"

// skeleton lets the UI load in builds without the generated document
const skeleton = `{"openapi":"3.0.3","info":{"title":"cryptokit API","version":"0.0.0"},"servers":[{"url":"/api/v1"}],"paths":{}}`

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(skeleton))
	}
}
