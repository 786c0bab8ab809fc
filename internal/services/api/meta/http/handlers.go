// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"cryptokit/internal/core/version"
	"cryptokit/internal/modkit/httpkit"
	"cryptokit/internal/services/crack/domain"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// Detector may be nil when the crack module is not mounted
	Detector domain.InfoPort
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/detector", h.detector)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
	Uptime  int64  `json:"uptime"`
}

// DetectorResponse reports the loaded dictionary and search settings
type DetectorResponse struct {
	domain.DetectorInfo
	Build version.BuildInfo `json:"build"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	now := time.Now().UTC()
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     now.Format(time.RFC3339),
		Uptime:  int64(now.Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// @Summary Loaded dictionary and search settings
// @Tags Meta
// @Produce json
// @Success 200 {object} DetectorResponse "ok"
// @Router /meta/detector [get]
func (h *handlers) detector(_ *http.Request) (any, error) {
	resp := DetectorResponse{Build: version.Info(h.deps.ServiceName)}
	if h.deps.Detector != nil {
		resp.DetectorInfo = h.deps.Detector.Info()
	}
	return resp, nil
}
