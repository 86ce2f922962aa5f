// SPDX-License-Identifier: EPL-2.0

package wacdec

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pair is one batch conversion job: a WAC source and a WAV destination.
type Pair struct {
	Src string
	Dst string
}

// Result is the outcome of one Pair. Err is nil on success.
type Result struct {
	Pair
	Err error
}

// ConvertBatch converts every pair, at most workers files at a time
// (defaulting to GOMAXPROCS when workers <= 0). Pairs share nothing: a
// failing conversion is recorded in its Result and never stops the
// siblings. Results are returned in input order. Cancelling ctx stops
// pairs that have not started yet; conversions already running finish.
func ConvertBatch(ctx context.Context, pairs []Pair, workers int, opts Options) []Result {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(pairs))

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i, p := range pairs {
		i, p := i, p
		results[i].Pair = p

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			results[i].Err = Convert(p.Src, p.Dst, opts)
			return nil
		})
	}

	// Workers record outcomes instead of returning errors, so Wait only
	// synchronizes.
	_ = g.Wait()

	return results
}
