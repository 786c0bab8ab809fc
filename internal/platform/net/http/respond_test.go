package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "cryptokit/internal/platform/errors"
	pnet "cryptokit/internal/platform/net"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%q)", err, rec.Body.String())
	}
	return env
}

func TestHandleOK(t *testing.T) {
	h := Handle(func(*stdhttp.Request) Response {
		return Response{Body: map[string]int{"key": 7}, Header: stdhttp.Header{"X-Test": {"1"}}}
	})
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "rid-1", ""))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Test") != "1" {
		t.Fatalf("extra header missing")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
	env := decodeEnvelope(t, rec)
	if env.StatusCode != 200 || env.Status != "OK" || env.RequestID != "rid-1" {
		t.Fatalf("envelope = %+v", env)
	}
	if m, ok := env.Data.(map[string]any); !ok || m["key"] != float64(7) {
		t.Fatalf("data = %#v", env.Data)
	}
}

func TestHandleErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{perr.NotFoundf("message could not be decoded"), stdhttp.StatusNotFound},
		{perr.InvalidArgf("bad base64"), stdhttp.StatusUnprocessableEntity},
		{perr.WithField(perr.Validationf("threshold must be at most 1"), "threshold"), stdhttp.StatusBadRequest},
		{perr.Formatf("corrupt trie"), stdhttp.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		RespondError(rec, httptest.NewRequest(stdhttp.MethodGet, "/", nil), tc.err)
		if rec.Code != tc.status {
			t.Fatalf("%v: status = %d, want %d", tc.err, rec.Code, tc.status)
		}
		env := decodeEnvelope(t, rec)
		if env.Code != perr.CodeOf(tc.err) || env.Error == "" || env.Data != nil {
			t.Fatalf("%v: envelope = %+v", tc.err, env)
		}
	}
}

func TestErrorCarriesField(t *testing.T) {
	rec := httptest.NewRecorder()
	err := perr.WithField(perr.Validationf("limit must be at least 0"), "limit")
	Error(err).write(rec, httptest.NewRequest(stdhttp.MethodPost, "/", nil))
	if env := decodeEnvelope(t, rec); env.Field != "limit" {
		t.Fatalf("field = %q", env.Field)
	}
}
