package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "cryptokit/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, enabled bool, path string) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), enabled)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestMountDisabled(t *testing.T) {
	for _, p := range []string{"/api/docs", DocPath, "/api/docs/index.html"} {
		assert.Equal(t, http.StatusNotFound, serve(t, false, p).Code, p)
	}
}

func TestMountRedirect(t *testing.T) {
	rec := serve(t, true, "/api/docs")
	assert.Equal(t, http.StatusPermanentRedirect, rec.Code)
	assert.Equal(t, "/api/docs/", rec.Header().Get("Location"))
}

func TestMountDocJSON(t *testing.T) {
	rec := serve(t, true, DocPath)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var spec map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	assert.Equal(t, "3.0.3", spec["openapi"])
	servers, ok := spec["servers"].([]any)
	require.True(t, ok, "servers missing")
	require.Len(t, servers, 1)
	assert.Equal(t, "/api/v1", servers[0].(map[string]any)["url"])
}

func TestMountUI(t *testing.T) {
	rec := serve(t, true, "/api/docs/index.html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")
}
