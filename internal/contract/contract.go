// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"errors"
	"time"

	"github.com/mattmahin/authortrend/schema"
)

// ErrNoSnapshot is returned by ResolveRevision when no commit qualifies for
// the requested branch and date. Callers skip the period; it is never fatal.
var ErrNoSnapshot = errors.New("no qualifying snapshot")

// GitClient defines the version-control operations the attribution pipeline
// depends on. This allows the core logic to be tested without needing a real
// git executable.
type GitClient interface {
	// Run executes a git command and returns its stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// ResolveRevision returns the hash of the most recent commit on branch
	// (default branch when empty) whose timestamp is at or before the given
	// time (latest commit when zero). Returns ErrNoSnapshot when no commit
	// qualifies, including when the branch does not exist yet.
	ResolveRevision(ctx context.Context, repoPath string, branch string, before time.Time) (string, error)

	// ListFilesAtRef returns all trackable files in the repository at a
	// specific revision, as unique paths relative to the repo root.
	ListFilesAtRef(ctx context.Context, repoPath string, rev string) ([]string, error)

	// BlameLineCounts attributes every line of the file at the given revision
	// to the author who introduced it, grouped by raw author identity.
	BlameLineCounts(ctx context.Context, repoPath string, rev string, path string) (schema.AuthorCount, error)
}

// CacheManager defines the interface for managing the blame cache store.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetBlameStore() CacheStore
}

// CacheStore defines the interface for cache data storage.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Clear() error
	Close() error
}
