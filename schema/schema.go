// Package schema has models and shared constants for all parts of authortrend.
package schema

import (
	"fmt"
	"time"
)

// Period identifies one calendar month sample point. Snapshots are resolved
// at the first instant of the month, so a period reflects the repository
// state accumulated through the end of the previous month.
type Period struct {
	Year  int
	Month time.Month
}

// Label returns the period identifier used for table columns, e.g. "2021-04".
func (p Period) Label() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Boundary returns the first instant of the period's month in UTC.
// Snapshot resolution looks for the most recent commit at or before it.
func (p Period) Boundary() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// AuthorCount maps an author identity string to a non-negative line count.
// Keys are raw identities during attribution and canonical display names
// after normalization.
type AuthorCount map[string]int

// Merge adds every count from other into the receiver. Addition is
// commutative, so merge order across workers never changes the result.
func (ac AuthorCount) Merge(other AuthorCount) {
	for author, count := range other {
		ac[author] += count
	}
}

// Total returns the sum of all counts, i.e. the attributed line total.
func (ac AuthorCount) Total() int {
	total := 0
	for _, count := range ac {
		total += count
	}
	return total
}

// AuthorPerformance is the accumulated result across the whole run: one
// AuthorCount per period that yielded at least one eligible file.
type AuthorPerformance map[Period]AuthorCount

// ExclusionReason tags a file path that is skipped during attribution.
type ExclusionReason string

// Exclusion reasons, ordered by classification precedence.
const (
	ReasonGenerated   ExclusionReason = "generated"
	ReasonImported    ExclusionReason = "mostly imported"
	ReasonBinaryExt   ExclusionReason = "binary extension"
	ReasonAutogenExt  ExclusionReason = "autogenerated"
	ReasonAutogenName ExclusionReason = "mostly autogenerated"
)

// ExcludedFile pairs a path with the reason it was skipped, for the
// show-excluded diagnostic table.
type ExcludedFile struct {
	Path   string
	Reason ExclusionReason
}

// DatabaseBackend identifies which database backend to use for the blame cache.
type DatabaseBackend string

// Supported cache backends.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// CacheStatus holds status information about the blame cache store.
type CacheStatus struct {
	Backend    DatabaseBackend
	Location   string
	EntryCount int64
	TotalBytes int64
}
