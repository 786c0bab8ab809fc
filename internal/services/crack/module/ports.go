package module

import "cryptokit/internal/services/crack/domain"

// Ports is the crack port bundle other modules pull with module.PortsOf
type Ports struct {
	Service domain.ServicePort
	Info    domain.InfoPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
