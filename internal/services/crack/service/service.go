// Package service contains crack workflows
package service

import (
	"context"
	"iter"
	"runtime"
	"time"

	"cryptokit/internal/core/bruteforce"
	"cryptokit/internal/platform/config"
	perr "cryptokit/internal/platform/errors"
	"cryptokit/internal/platform/logger"
	"cryptokit/internal/services/crack/domain"
)

// Detector is the slice of detector.Detector the service needs
type Detector interface {
	IsEnglish(text string) bool
	Score(text string) float64
	Threshold() float64
	Words() iter.Seq[string]
	Len() int
}

// Service defines the crack service contract
type Service interface {
	domain.ServicePort
	domain.InfoPort
}

// Options tunes the polyalphabetic search
type Options struct {
	Workers int
	Limit   int
	Batch   int
}

// FromConfig reads WORKERS, LIMIT and BATCH from a CORE_CRACK_ scoped conf.
// WORKERS and BATCH are clamped to what the search will actually use
func FromConfig(cfg config.Conf) Options {
	return Options{
		Workers: cfg.MayInt("WORKERS", runtime.GOMAXPROCS(0)),
		Limit:   cfg.MayInt("LIMIT", 0),
		Batch:   cfg.MayInt("BATCH", 0),
	}.clamp()
}

func (o Options) clamp() Options {
	bo := bruteforce.Options{Workers: o.Workers, Batch: o.Batch}.Clamp()
	o.Workers, o.Batch = bo.Workers, bo.Batch
	return o
}

// Svc implements the crack service
type Svc struct {
	det  Detector
	opts Options
}

// New constructs a crack service
func New(det Detector, opts Options) *Svc {
	if det == nil {
		panic("crack.Service requires a non nil Detector")
	}
	return &Svc{det: det, opts: opts.clamp()}
}

// Detect scores text against the dictionary
func (s *Svc) Detect(_ context.Context, in domain.DetectInput) (domain.DetectResult, error) {
	return domain.DetectResult{
		English:   s.det.IsEnglish(in.Text),
		Score:     s.det.Score(in.Text),
		Threshold: s.det.Threshold(),
	}, nil
}

// Shift tries every shift key in order
func (s *Svc) Shift(ctx context.Context, in domain.ShiftInput) (domain.ShiftResult, error) {
	start := time.Now()
	res, err := bruteforce.Shift(s.det, in.Ciphertext)
	log := logger.C(ctx)
	if err != nil {
		log.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("shift not decoded")
		return domain.ShiftResult{}, err
	}
	log.Info().Uint8("key", res.Key).Dur("elapsed", time.Since(start)).Msg("shift decoded")
	return domain.ShiftResult{Plaintext: res.Plaintext, Key: res.Key}, nil
}

// Vigenere tries dictionary words as keys until one decodes to English
func (s *Svc) Vigenere(ctx context.Context, in domain.VigenereInput) (domain.VigenereResult, error) {
	opts := bruteforce.Options{Limit: s.limit(in.Limit), Workers: s.opts.Workers, Batch: s.opts.Batch}
	start := time.Now()
	res, err := bruteforce.Polyalphabetic(ctx, s.det, in.Ciphertext, opts)
	log := logger.C(ctx)
	switch {
	case err == nil:
		log.Info().Str("key", res.Key).Dur("elapsed", time.Since(start)).Msg("vigenere decoded")
		return domain.VigenereResult{Plaintext: res.Plaintext, Key: res.Key}, nil
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		log.Debug().Int("limit", opts.Limit).Dur("elapsed", time.Since(start)).Msg("vigenere not decoded")
	default:
		log.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("vigenere search aborted")
	}
	return domain.VigenereResult{}, err
}

// Info reports the detector and search settings
func (s *Svc) Info() domain.DetectorInfo {
	return domain.DetectorInfo{
		Threshold: s.det.Threshold(),
		Words:     s.det.Len(),
		Workers:   max(s.opts.Workers, 1),
		Limit:     s.opts.Limit,
	}
}

// limit lets a request lower the configured cap, never raise it
func (s *Svc) limit(req int) int {
	switch {
	case req <= 0:
		return s.opts.Limit
	case s.opts.Limit <= 0:
		return req
	default:
		return min(req, s.opts.Limit)
	}
}
