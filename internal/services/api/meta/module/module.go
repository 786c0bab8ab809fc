// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "cryptokit/internal/modkit"
	"cryptokit/internal/modkit/httpkit"
	"cryptokit/internal/services/crack/domain"

	metahttp "cryptokit/internal/services/api/meta/http"
)

// ServiceName is reported by health and version
const ServiceName = "cryptokit-api"

// Ports are the cross module ports meta consumes
type Ports struct {
	Detector domain.InfoPort
}

// Module implements the modkit.Module interface
type Module struct {
	b         modkit.Built
	detector  domain.InfoPort
	startedAt time.Time
}

// New constructs a meta module; pass the crack InfoPort with modkit.WithPorts(Ports{...})
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{b: b, startedAt: time.Now()}
	if p, ok := b.Ports.(Ports); ok {
		m.detector = p.Detector
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Detector:    m.detector,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
