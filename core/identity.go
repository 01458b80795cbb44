package core

import (
	"regexp"
	"strings"

	"github.com/mattmahin/authortrend/schema"
)

// Normalizer canonicalizes raw author identities into display names.
// The compiled patterns live on the value itself, so there is no
// process-wide mutable state and normalization stays a pure function of
// its input.
type Normalizer struct {
	separators *regexp.Regexp // runs of -, _ or . collapse to one space
	wordStart  *regexp.Regexp // lowercase letter at a word boundary
}

// NewNormalizer compiles the normalization patterns.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		separators: regexp.MustCompile(`[-_.]+`),
		wordStart:  regexp.MustCompile(`\b[a-z]`),
	}
}

// Normalize maps a raw author string to its canonical display form:
// separator runs become single spaces, the whole string is lower-cased,
// and each word's first letter is capitalized. Idempotent, so distinct raw
// spellings of the same name always converge regardless of processing order.
func (n *Normalizer) Normalize(raw string) string {
	s := strings.ToLower(n.separators.ReplaceAllString(raw, " "))
	return n.wordStart.ReplaceAllStringFunc(s, strings.ToUpper)
}

// NormalizeAuthors rewrites every period's counts onto canonical author
// names, summing counts for raw identities that normalize identically.
// Applied exactly once, at report-build time.
func NormalizeAuthors(perf schema.AuthorPerformance, n *Normalizer) schema.AuthorPerformance {
	normalized := make(schema.AuthorPerformance, len(perf))
	for period, counts := range perf {
		merged := make(schema.AuthorCount, len(counts))
		for raw, count := range counts {
			merged[n.Normalize(raw)] += count
		}
		normalized[period] = merged
	}
	return normalized
}
