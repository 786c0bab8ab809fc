//go:build swag

package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"cryptokit/internal/platform/config"
	perr "cryptokit/internal/platform/errors"
	phttp "cryptokit/internal/platform/net/http"

	docs "cryptokit/internal/services/api/docs"
)

// docReader is a seam so tests can feed broken documents
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// defaultResponses are added to every operation that does not declare them
var defaultResponses = []struct {
	status  int
	code    perr.ErrorCode
	message string
}{
	{http.StatusBadRequest, perr.ErrorCodeValidation, "ciphertext is a required field"},
	{http.StatusInternalServerError, perr.ErrorCodePanic, "panic recovered"},
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			phttp.RespondError(w, r, perr.Wrap(err, perr.ErrorCodeFormat, "openapi document"))
			return
		}

		ensureOAS30(spec, "/api/v1")
		if v := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + v
				}
			}
		}
		ensureEnvelopeSchema(spec)
		for _, d := range defaultResponses {
			addDefaultResponse(spec, d.status, d.code, d.message)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureOAS30 pins the document to OpenAPI 3.0.3 since the bundled UI does not
// render 3.1, and adds a servers entry when none is declared
func ensureOAS30(spec map[string]any, url string) {
	if _, ok := spec["swagger"]; ok {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

// ensureEnvelopeSchema describes the error envelope written by phttp.RespondError
func ensureEnvelopeSchema(spec map[string]any) {
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["Envelope"]; ok {
		return
	}
	schemas["Envelope"] = map[string]any{
		"type":        "object",
		"description": "Response envelope; data on success, code and error on failure",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
			"data":        map[string]any{},
		},
		"required": []any{"status_code", "status"},
	}
}

func addDefaultResponse(spec map[string]any, status int, code perr.ErrorCode, message string) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	key := strconv.Itoa(status)
	resp := map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/Envelope"},
				"example": map[string]any{
					"status_code": status,
					"status":      http.StatusText(status),
					"code":        int(code),
					"error":       message,
					"request_id":  "host/abc-000001",
				},
			},
		},
	}
	for _, p := range paths {
		item, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, o := range item {
			op, ok := o.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			if _, ok := responses[key]; !ok {
				responses[key] = resp
			}
		}
	}
}
