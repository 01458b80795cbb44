package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mattmahin/authortrend/internal/contract"
	"github.com/mattmahin/authortrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	febPeriod = schema.Period{Year: 2016, Month: time.February}
	marPeriod = schema.Period{Year: 2016, Month: time.March}
)

// twoPeriodPerf mirrors the canonical fixture: X owns period one, Y owns
// period two.
func twoPeriodPerf() schema.AuthorPerformance {
	return schema.AuthorPerformance{
		febPeriod: {"X Dev": 8},
		marPeriod: {"Y Dev": 3},
	}
}

// splitRow finds the rendered table line containing label and returns its
// trimmed cell values.
func splitRow(out, label string) []string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, label) {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == '|' || r == '│'
		})
		var cells []string
		for _, f := range fields {
			if f = strings.TrimSpace(f); f != "" {
				cells = append(cells, f)
			}
		}
		return cells
	}
	return nil
}

func renderMatrix(t *testing.T, perf schema.AuthorPerformance, cfg *contract.Config) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteAuthorMatrix(&buf, perf, cfg, 250*time.Millisecond))
	return buf.String()
}

func TestWriteAuthorMatrixCounts(t *testing.T) {
	cfg := &contract.Config{Workers: 4, Precision: 1, Width: 120, CacheBackend: schema.NoneBackend}
	out := renderMatrix(t, twoPeriodPerf(), cfg)

	// Both period columns, chronological
	assert.Contains(t, out, "2016-02")
	assert.Contains(t, out, "2016-03")
	assert.Less(t, bytes.Index([]byte(out), []byte("2016-02")), bytes.Index([]byte(out), []byte("2016-03")))

	// Rows alphabetical with zero fills for absent cells
	lines := splitRow(out, "X Dev")
	assert.Equal(t, []string{"X Dev", "8", "0"}, lines)
	lines = splitRow(out, "Y Dev")
	assert.Equal(t, []string{"Y Dev", "0", "3"}, lines)

	assert.Contains(t, out, "Report completed")
}

// Header cells must carry the exact period labels, unreformatted.
func TestWriteAuthorMatrixHeaderLabels(t *testing.T) {
	cfg := &contract.Config{Workers: 4, Precision: 1, Width: 120, CacheBackend: schema.NoneBackend}
	out := renderMatrix(t, twoPeriodPerf(), cfg)

	assert.Equal(t, []string{"Author", "2016-02", "2016-03"}, splitRow(out, "Author"))
	assert.NotContains(t, out, "AUTHOR")
	assert.NotContains(t, out, "2016 - 02")
}

func TestWriteAuthorMatrixPercent(t *testing.T) {
	cfg := &contract.Config{Workers: 4, Precision: 1, Width: 120, AsPercent: true, CacheBackend: schema.NoneBackend}
	out := renderMatrix(t, twoPeriodPerf(), cfg)

	// Period one's column total is 8, so X holds 100% of it
	assert.Equal(t, []string{"X Dev", "100.0%", "0.0%"}, splitRow(out, "X Dev"))
	assert.Equal(t, []string{"Y Dev", "0.0%", "100.0%"}, splitRow(out, "Y Dev"))
}

// A period absent from the performance map contributes no column at all.
func TestWriteAuthorMatrixSkippedPeriod(t *testing.T) {
	perf := schema.AuthorPerformance{
		febPeriod: {"X Dev": 8},
	}
	cfg := &contract.Config{Workers: 4, Precision: 1, Width: 120, CacheBackend: schema.NoneBackend}
	out := renderMatrix(t, perf, cfg)

	assert.Contains(t, out, "2016-02")
	assert.NotContains(t, out, "2016-03")
}

func TestSortedPeriods(t *testing.T) {
	perf := schema.AuthorPerformance{
		{Year: 2017, Month: time.January}:  {},
		{Year: 2016, Month: time.December}: {},
		{Year: 2016, Month: time.February}: {},
	}
	periods := SortedPeriods(perf)
	assert.Equal(t, []schema.Period{
		{Year: 2016, Month: time.February},
		{Year: 2016, Month: time.December},
		{Year: 2017, Month: time.January},
	}, periods)
}

func TestSortedAuthors(t *testing.T) {
	perf := schema.AuthorPerformance{
		febPeriod: {"Carol": 10, "Ann": 1},
		marPeriod: {"Bob": 5, "Ann": 2},
	}

	assert.Equal(t, []string{"Ann", "Bob", "Carol"}, SortedAuthors(perf, false))

	// By volume: Carol 10, Bob 5, Ann 3
	assert.Equal(t, []string{"Carol", "Bob", "Ann"}, SortedAuthors(perf, true))
}

// Equal totals fall back to alphabetical order.
func TestSortedAuthorsVolumeTies(t *testing.T) {
	perf := schema.AuthorPerformance{
		febPeriod: {"Zoe": 5, "Amy": 5, "Mel": 9},
	}
	assert.Equal(t, []string{"Mel", "Amy", "Zoe"}, SortedAuthors(perf, true))
}

func TestFormatCellZeroTotal(t *testing.T) {
	fmtFloat := createFormatter(1)
	// An all-errored period renders zeros rather than dividing by zero
	assert.Equal(t, "0.0%", formatCell(schema.AuthorCount{}, "ann", true, fmtFloat))
	assert.Equal(t, "0", formatCell(schema.AuthorCount{}, "ann", false, fmtFloat))
}
