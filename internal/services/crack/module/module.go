// Package module wires crack into the API using modkit
package module

import (
	modkit "cryptokit/internal/modkit"
	"cryptokit/internal/modkit/httpkit"
	crackhttp "cryptokit/internal/services/crack/http"
	cracksvc "cryptokit/internal/services/crack/service"
)

// Module implements the crack module
type Module struct {
	b     modkit.Built
	svc   cracksvc.Service
	ports Ports
}

// New constructs the crack module. deps.Detector is required; search
// settings come from CORE_CRACK_* unless WithPorts supplies Options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("crack"), modkit.WithPrefix("/crack")}, opts...)...)

	if deps.Detector == nil {
		panic("crack module requires deps.Detector")
	}
	so, ok := b.Ports.(cracksvc.Options)
	if !ok {
		so = cracksvc.FromConfig(deps.Cfg.Prefix("CORE_CRACK_"))
	}
	svc := cracksvc.New(deps.Detector, so)

	deps.Log.Debug().Int("workers", so.Workers).Int("limit", so.Limit).Msg("crack module ready")

	return &Module{
		b:     b,
		svc:   svc,
		ports: Ports{Service: svc, Info: svc},
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { crackhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }
