// Package bind decodes JSON request bodies and validates them
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perr "cryptokit/internal/platform/errors"
	"cryptokit/internal/platform/logger"
	"cryptokit/internal/platform/validate"
)

// Options controls parsing behavior
type Options struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
}

// DefaultOptions is what ParseJSON uses when no options are given
func DefaultOptions() Options { return Options{MaxBytes: 1 << 20, DisallowUnknown: true} }

// ParseJSON decodes one JSON value into T and validates it.
// An empty body, malformed JSON, unknown fields and trailing data are JSON errors;
// tag failures are validation errors naming the field
func ParseJSON[T any](r *http.Request, opts ...Options) (T, error) {
	var zero T
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("close request body")
		}
	}()

	var body io.Reader = r.Body
	if o.MaxBytes > 0 {
		body = io.LimitReader(r.Body, o.MaxBytes)
	}
	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("empty body")
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := validate.Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}
