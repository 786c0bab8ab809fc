package modkit

import (
	"cryptokit/internal/core/detector"
	"cryptokit/internal/platform/config"
	"cryptokit/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log      logger.Logger
	Cfg      config.Conf
	Detector *detector.Detector
}

// Ready reports whether the deps can serve detection requests
func (d Deps) Ready() bool { return d.Detector != nil }
