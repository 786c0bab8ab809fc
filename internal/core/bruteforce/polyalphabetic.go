package bruteforce

import (
	"context"
	"iter"
	"runtime"

	"cryptokit/internal/core/cipher"

	"golang.org/x/sync/errgroup"
)

// Options tunes Polyalphabetic
type Options struct {
	// Limit caps the number of keys tried after filtering; <= 0 tries them all
	Limit int
	// Workers > 1 decodes candidates in parallel batches
	Workers int
	// Batch is the number of candidates per parallel round; defaults to Workers*64
	Batch int
}

// MaxBatch caps Options.Batch
const MaxBatch = 1 << 16

// MaxWorkers is the most decoders a parallel search runs at once
func MaxWorkers() int { return runtime.GOMAXPROCS(0) * 4 }

// Clamp bounds Workers by MaxWorkers and Batch by MaxBatch
func (o Options) Clamp() Options {
	o.Workers = min(o.Workers, MaxWorkers())
	o.Batch = min(o.Batch, MaxBatch)
	return o
}

// Polyalphabetic uses each dictionary word as a repeating Vigenère key.
// Parallel and sequential runs return the same key: within a batch the lowest
// index hit wins, and later batches only run when earlier ones had no hit
func Polyalphabetic(ctx context.Context, dict Dictionary, ciphertext string, opts Options) (Result[string], error) {
	opts = opts.Clamp()
	keys := Candidates(dict.Words(), opts.Limit)
	if opts.Workers > 1 {
		return parallel(ctx, dict, ciphertext, keys, opts)
	}

	for key := range keys {
		if err := ctx.Err(); err != nil {
			return Result[string]{}, cancelled(err)
		}
		if pt := cipher.VigenereDecode(ciphertext, key); dict.IsEnglish(pt) {
			return Result[string]{Plaintext: pt, Key: key}, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return Result[string]{}, cancelled(err)
	}
	return Result[string]{}, ErrNotDecoded
}

func parallel(ctx context.Context, o Oracle, ciphertext string, keys iter.Seq[string], opts Options) (Result[string], error) {
	size := opts.Batch
	if size <= 0 {
		size = opts.Workers * 64
	}
	next, stop := iter.Pull(keys)
	defer stop()

	batch := make([]string, 0, size)
	plain := make([]string, size)
	hit := make([]bool, size)
	for {
		batch = batch[:0]
		for len(batch) < size {
			k, ok := next()
			if !ok {
				break
			}
			batch = append(batch, k)
		}
		if len(batch) == 0 {
			return Result[string]{}, ErrNotDecoded
		}
		clear(hit)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for i, key := range batch {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if pt := cipher.VigenereDecode(ciphertext, key); o.IsEnglish(pt) {
					plain[i], hit[i] = pt, true
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Result[string]{}, cancelled(err)
		}
		if err := ctx.Err(); err != nil {
			return Result[string]{}, cancelled(err)
		}

		for i, key := range batch {
			if hit[i] {
				return Result[string]{Plaintext: plain[i], Key: key}, nil
			}
		}
	}
}
