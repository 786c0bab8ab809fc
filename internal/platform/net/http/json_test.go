package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "cryptokit/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

type echoReq struct {
	Text string `json:"text" validate:"required"`
}

func mountEcho() stdhttp.Handler {
	m := chi.NewRouter()
	r := AdaptChi(m)
	r.Route("/api", func(r Router) {
		PostJSON(r, "/echo", func(_ *stdhttp.Request, in echoReq) (any, error) {
			if in.Text == "fail" {
				return nil, perr.NotFoundf("nothing")
			}
			return map[string]string{"text": strings.ToUpper(in.Text)}, nil
		})
		GetJSON(r, "/ping", func(*stdhttp.Request) (any, error) { return "pong", nil })
	})
	return r.Mux()
}

func TestJSONHandlers(t *testing.T) {
	h := mountEcho()
	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		want   string
	}{
		{"ok", stdhttp.MethodPost, "/api/echo", `{"text":"hi"}`, 200, `"text":"HI"`},
		{"service error", stdhttp.MethodPost, "/api/echo", `{"text":"fail"}`, 404, `"error":"nothing"`},
		{"empty body", stdhttp.MethodPost, "/api/echo", ``, 400, `empty body`},
		{"bad json", stdhttp.MethodPost, "/api/echo", `{"text":`, 400, `invalid JSON`},
		{"unknown field", stdhttp.MethodPost, "/api/echo", `{"text":"a","x":1}`, 400, `invalid JSON`},
		{"trailing", stdhttp.MethodPost, "/api/echo", `{"text":"a"} {}`, 400, `trailing`},
		{"validation", stdhttp.MethodPost, "/api/echo", `{"text":""}`, 400, `"field":"text"`},
		{"get", stdhttp.MethodGet, "/api/ping", ``, 200, `"data":"pong"`},
		{"method", stdhttp.MethodGet, "/api/echo", ``, 405, ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tc.status, rec.Body.String())
			}
			if tc.want != "" && !strings.Contains(rec.Body.String(), tc.want) {
				t.Fatalf("body %q missing %q", rec.Body.String(), tc.want)
			}
		})
	}
}
