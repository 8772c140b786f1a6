package tally

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/tally/anagram"
	"github.com/katalvlaran/tally/gptriplet"
	"github.com/katalvlaran/tally/point"
	"github.com/katalvlaran/tally/rectangle"
	"github.com/katalvlaran/tally/triangle"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Count runs the counter selected by req.Kind.
// Returns ErrUnknownKind for an unsupported kind, otherwise whatever the
// selected counter returns.
func Count(req Request) (int64, error) {
	switch req.Kind {
	case Anagrams:
		return anagram.CountSubstringPairs(req.Text)
	case Rectangles:
		return rectangle.Count(point.FromPairs(req.Points))
	case Triangles:
		return triangle.Count(point.FromPairs(req.Points))
	case GPTriplets:
		return gptriplet.Count(req.Values, req.Ratio)
	default:
		return 0, fmt.Errorf("%q: %w", req.Kind, ErrUnknownKind)
	}
}

// CountAll counts every request and returns one Result per request, in input
// order. Requests are independent and run on up to WithWorkers goroutines.
//
// A failing request records its error in Result.Err and does not stop the
// others. The returned error is non-nil only when ctx is cancelled before
// all requests were started; results of unstarted requests carry ctx.Err().
func CountAll(ctx context.Context, reqs []Request, opts ...Option) ([]Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for i := range reqs {
		i := i // per-iteration copy: go.mod targets go 1.21 loop semantics
		results[i] = Result{Index: i, Kind: reqs[i].Kind}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err

				return err
			}
			results[i].Count, results[i].Err = countLogged(cfg.log, i, reqs[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

// countLogged runs Count and records its outcome on log.
func countLogged(log logrus.FieldLogger, idx int, req Request) (int64, error) {
	start := time.Now()
	n, err := Count(req)
	entry := log.WithFields(logrus.Fields{
		"index":    idx,
		"kind":     req.Kind,
		"duration": time.Since(start),
	})
	if err != nil {
		entry.WithError(err).Warn("count rejected")

		return 0, err
	}
	entry.WithField("count", n).Debug("count done")

	return n, nil
}
