// Package net carries request-scoped values shared by transports
package net

import (
	"context"

	"cryptokit/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey uint8

const keyOp ctxKey = iota

// WithRequest stores the request id where chi's RequestID middleware keeps it,
// records the operation name, and mirrors both into the logger context
func WithRequest(ctx context.Context, reqID, op string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if op != "" {
		ctx = context.WithValue(ctx, keyOp, op)
	}
	return logger.WithRequest(ctx, reqID, op)
}

// RequestID returns the request id on the context, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// Op returns the operation name on the context, or ""
func Op(ctx context.Context) string {
	s, _ := ctx.Value(keyOp).(string)
	return s
}
