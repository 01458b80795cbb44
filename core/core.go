// Package core has core logic for snapshot resolution, attribution and aggregation.
package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/mattmahin/authortrend/internal/contract"
	"github.com/mattmahin/authortrend/internal/outwriter"
	"github.com/mattmahin/authortrend/schema"
)

// ExecuteAuthorTrend runs the full attribution pipeline and prints the
// author-by-period matrix to stdout. It serves as the entry point for the
// root command.
func ExecuteAuthorTrend(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	perf, excluded, err := runReport(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}

	if cfg.ShowExcluded {
		if err := outwriter.PrintExcludedFiles(excluded, cfg); err != nil {
			return fmt.Errorf("error writing excluded-files table: %w", err)
		}
	}

	normalized := NormalizeAuthors(perf, NewNormalizer())
	duration := time.Since(start)
	return outwriter.PrintAuthorMatrix(normalized, cfg, duration)
}

// runReport walks every period in chronological order. Each period is
// resolved, listed, filtered and aggregated independently; no state carries
// over between periods.
func runReport(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) (schema.AuthorPerformance, []schema.ExcludedFile, error) {
	classifier := NewClassifier(cfg.GeneratedPrefixes, cfg.ImportedPrefixes)
	perf := make(schema.AuthorPerformance)
	excludedSeen := make(map[string]schema.ExclusionReason)

	for _, period := range PeriodsThrough(schema.EpochYear, time.Now().UTC()) {
		before := period.Boundary()
		if !cfg.Before.IsZero() && cfg.Before.Before(before) {
			before = cfg.Before
		}

		rev, err := client.ResolveRevision(ctx, cfg.RepoPath, cfg.Branch, before)
		if errors.Is(err, contract.ErrNoSnapshot) {
			continue // Repository did not exist yet; the period is omitted.
		}
		if err != nil {
			return nil, nil, fmt.Errorf("resolving snapshot for %s: %w", period.Label(), err)
		}

		files, err := client.ListFilesAtRef(ctx, cfg.RepoPath, rev)
		if err != nil {
			return nil, nil, fmt.Errorf("listing files for %s: %w", period.Label(), err)
		}

		eligible := filterEligible(classifier, files, excludedSeen)
		if len(eligible) == 0 {
			continue
		}

		perf[period] = aggregatePeriod(ctx, cfg, client, mgr, rev, eligible)
	}

	return perf, sortedExcluded(excludedSeen), nil
}

// filterEligible applies the classifier to a snapshot's file listing,
// recording exclusions for the diagnostic table.
func filterEligible(classifier *Classifier, files []string, excludedSeen map[string]schema.ExclusionReason) []string {
	eligible := make([]string, 0, len(files))
	for _, f := range files {
		if reason, excluded := classifier.Classify(f); excluded {
			excludedSeen[f] = reason
			continue
		}
		eligible = append(eligible, f)
	}
	return eligible
}

// sortedExcluded flattens the exclusion map into a path-sorted slice.
func sortedExcluded(seen map[string]schema.ExclusionReason) []schema.ExcludedFile {
	excluded := make([]schema.ExcludedFile, 0, len(seen))
	for path, reason := range seen {
		excluded = append(excluded, schema.ExcludedFile{Path: path, Reason: reason})
	}
	sort.Slice(excluded, func(i, j int) bool {
		return excluded[i].Path < excluded[j].Path
	})
	return excluded
}
