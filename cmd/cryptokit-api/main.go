// @title         cryptokit API
// @version       0.1.0
// @description   English detection and dictionary brute force for classical ciphers

// Command cryptokit-api serves detection and brute force over HTTP
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cryptokit/internal/core/detector"
	"cryptokit/internal/core/version"
	"cryptokit/internal/modkit/httpkit"
	"cryptokit/internal/platform/config"
	"cryptokit/internal/platform/logger"
	phttp "cryptokit/internal/platform/net/http"
	"cryptokit/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")       // CORE_API_PORT, CORE_API_CORS_ORIGINS, ...
	detectCfg := root.Prefix("CORE_DETECT_") // CORE_DETECT_DICTIONARY, CORE_DETECT_THRESHOLD

	opt := logger.FromEnv()
	if opt.Service == "" {
		opt.Service = "cryptokit-api"
	}
	logger.Init(opt)
	l := logger.Get()
	l.Info().Str("version", version.Info("cryptokit-api").Version).Msg("starting")

	path := detectCfg.MayString("DICTIONARY", "data/trie_data.json.gz")
	dopts := detector.Options{}
	if detectCfg.MayString("THRESHOLD", "") != "" {
		dopts = detector.WithThreshold(detectCfg.MustFloat64("THRESHOLD"))
	}
	det, err := detector.NewWithOptions(path, dopts)
	if err != nil {
		l.Fatal().Err(err).Str("dictionary", path).Msg("detector load failed")
	}
	l.Info().Str("dictionary", path).Int("words", det.Len()).Float64("threshold", det.Threshold()).Msg("dictionary loaded")

	// http server (reads CORE_API_PORT / CORE_API_SHUTDOWN_TIMEOUT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config:   root,
		Stack:    httpkit.StackFromConfig(apiCfg),
		Detector: det,
		Logger:   l,
		// CORE_API_SWAGGER
		EnableSwagger: apiCfg.MayBool("SWAGGER", true),
	})

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
