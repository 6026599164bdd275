package commentzwalter

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MinParallelRegion is the smallest region handed to a single worker.
// Inputs below workers*MinParallelRegion use fewer workers.
const MinParallelRegion = 64 * 1024

// ScanParallel scans input with up to workers goroutines. The range of
// possible match end positions is cut into contiguous regions; each worker
// scans its region with private cursor state against the shared tables and
// reports only matches ending inside it. Results are concatenated in region
// order, which is exactly the order Scan produces.
//
// Returns ctx.Err() if the context is cancelled before all regions finish.
func (cw *CommentzWalter) ScanParallel(ctx context.Context, input []byte, workers int) ([]MatchResult, error) {
	return cw.scanParallel(ctx, input, workers, MinParallelRegion)
}

func (cw *CommentzWalter) scanParallel(ctx context.Context, input []byte, workers, minRegion int) ([]MatchResult, error) {
	first := cw.pmin - 1
	span := len(input) - first
	if span <= 0 {
		return nil, ctx.Err()
	}

	workers = min(max(workers, 1), max(span/minRegion, 1))
	if workers == 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return cw.Scan(input), nil
	}

	regionSize := (span + workers - 1) / workers
	regions := make([][]MatchResult, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		from := first + w*regionSize
		to := min(from+regionSize, len(input))
		g.Go(func() error {
			cfg := scanConfig{done: gctx.Done()}
			var local []MatchResult
			complete := cw.scanRange(input, from, to, cfg, func(m MatchResult) bool {
				local = append(local, m)
				return true
			})
			if !complete {
				return gctx.Err()
			}
			regions[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range regions {
		total += len(r)
	}
	results := make([]MatchResult, 0, total)
	for _, r := range regions {
		results = append(results, r...)
	}
	return results, nil
}
