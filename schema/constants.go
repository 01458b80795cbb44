package schema

// EpochYear is the first year sampled. Periods run from January of this
// year through the current month.
const EpochYear = 2016

// DefaultWorkers caps the per-period blame worker pool. The effective pool
// size is min(eligible file count, workers).
const DefaultWorkers = 16

// DefaultPrecision is the decimal precision for percentage cells.
const DefaultPrecision = 1

// BlameCacheVersion stamps cache entries so stale encodings are recomputed
// rather than decoded.
const BlameCacheVersion = 1

// DateOnlyFormat parses the --before flag.
const DateOnlyFormat = "2006-01-02"
