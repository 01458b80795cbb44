package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/mattmahin/authortrend/internal/contract"
	"github.com/mattmahin/authortrend/schema"
)

// aggregatePeriod computes one period's author totals by blaming every
// eligible file at the period's snapshot in parallel.
//
// Work fans out across a pool of min(len(files), cfg.Workers) goroutines and
// fans back in over a buffered results channel. The merge happens in a single
// goroutine after the pool joins, so workers never touch shared state and the
// total is complete before this function returns. Merge order is arbitrary
// but immaterial: per-author addition is commutative.
//
// A file whose blame fails is warned about and omitted from the total; it
// never aborts the period or the run.
func aggregatePeriod(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager, rev string, files []string) schema.AuthorCount {
	workers := min(len(files), cfg.Workers)
	fileCh := make(chan string, len(files))
	resultCh := make(chan schema.AuthorCount, len(files))
	var wg sync.WaitGroup

	// Start worker pool
	for range workers {
		wg.Go(func() {
			for f := range fileCh {
				counts, err := cachedBlameLineCounts(ctx, client, mgr, cfg.RepoPath, rev, f)
				if err != nil {
					contract.LogWarn(fmt.Sprintf("skipping %s at %.8s", f, rev), err)
					continue
				}
				resultCh <- counts
			}
		})
	}

	// Send files to worker channel
	for _, f := range files {
		fileCh <- f
	}
	close(fileCh)

	// Join: every dispatched worker must report before merging.
	wg.Wait()
	close(resultCh)

	total := make(schema.AuthorCount)
	for counts := range resultCh {
		total.Merge(counts)
	}
	return total
}
