// Package api provides the HTTP API for the application
package api

import (
	"cryptokit/internal/core/detector"
	"cryptokit/internal/platform/config"
	"cryptokit/internal/platform/logger"
	phttp "cryptokit/internal/platform/net/http"

	"cryptokit/internal/modkit"
	"cryptokit/internal/modkit/httpkit"
	"cryptokit/internal/modkit/module"
	"cryptokit/internal/modkit/swaggerkit"

	crackdomain "cryptokit/internal/services/crack/domain"
	crackmod "cryptokit/internal/services/crack/module"

	metamod "cryptokit/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	// Config is the root conf; modules scope it themselves (CORE_CRACK_*)
	Config config.Conf
	// Stack is the middleware for /api/v1
	Stack    httpkit.StackOptions
	Detector *detector.Detector
	Logger   *logger.Logger
	// EnableSwagger serves the UI under /api/docs/
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log:      *log,
		Cfg:      opt.Config,
		Detector: opt.Detector,
	}

	// crack owns the detector; meta reads its settings through the InfoPort
	crack := crackmod.New(deps)
	info := module.MustPortsOf[crackdomain.InfoPort](crack)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Detector: info})),
		crack,
	}

	swaggerkit.Mount(r, opt.EnableSwagger)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			log.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})
}
