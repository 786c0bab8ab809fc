package httpkit

import (
	"net/http"
	"time"

	"cryptokit/internal/platform/config"
	"cryptokit/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	CORSOrigins []string
	// Throttle caps concurrent requests; 0 disables it
	Throttle int
}

// StackFromConfig reads TIMEOUT, CORS_ORIGINS and THROTTLE from a service scoped conf
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		Timeout:     cfg.MayDuration("TIMEOUT", 30*time.Second),
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		Throttle:    cfg.MayInt("THROTTLE", 0),
	}
}

// CommonStack returns the baseline middleware slice for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	mw := middleware.Defaults(o.Timeout)
	mw = append(mw,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins, MaxAge: 300}),
		middleware.StripSlashes(),
	)
	if o.Throttle > 0 {
		mw = append(mw, middleware.Throttle(o.Throttle))
	}
	return mw
}
