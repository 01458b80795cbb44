package outwriter

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/mattmahin/authortrend/internal/contract"
	"github.com/mattmahin/authortrend/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintAuthorMatrix renders the normalized author-by-period matrix as an
// aligned table on stdout.
func PrintAuthorMatrix(perf schema.AuthorPerformance, cfg *contract.Config, duration time.Duration) error {
	return WriteAuthorMatrix(os.Stdout, perf, cfg, duration)
}

// WriteAuthorMatrix writes the matrix table to w. Columns are periods in
// chronological order; rows are authors, alphabetical unless cfg.ByVolume
// asks for count-descending.
func WriteAuthorMatrix(w io.Writer, perf schema.AuthorPerformance, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)
	periods := SortedPeriods(perf)
	authors := SortedAuthors(perf, cfg.ByVolume)

	table := tablewriter.NewWriter(w)

	headers := []string{"Author"}
	for _, p := range periods {
		headers = append(headers, p.Label())
	}
	// Counts right-aligned. Header auto-formatting would rewrite the
	// period labels ("2016-02" becomes "2016 - 02"), so it stays off.
	// Must be configured before Header(): tablewriter formats headers
	// at Header()-call time.
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Header.Formatting.AutoFormat = tw.Off
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	table.Header(headers)

	maxAuthorWidth := GetMaxAuthorWidth(cfg, len(periods))
	var data [][]string
	for _, author := range authors {
		row := []string{contract.TruncateLabel(author, maxAuthorWidth)}
		for _, p := range periods {
			row = append(row, formatCell(perf[p], author, cfg.AsPercent, fmtFloat))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Report completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend)
	return err
}

// formatCell renders one author's cell for one period: the absolute count,
// or its share of the column total in percent mode. A missing author simply
// reads as zero; not every author has attributed lines in every period.
func formatCell(counts schema.AuthorCount, author string, asPercent bool, fmtFloat func(float64) string) string {
	count := counts[author]
	if !asPercent {
		return fmt.Sprintf("%d", count)
	}
	total := counts.Total()
	if total == 0 {
		return fmtFloat(0) + "%"
	}
	return fmtFloat(100*float64(count)/float64(total)) + "%"
}

// SortedPeriods returns the matrix columns in chronological order.
func SortedPeriods(perf schema.AuthorPerformance) []schema.Period {
	periods := make([]schema.Period, 0, len(perf))
	for p := range perf {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Year != periods[j].Year {
			return periods[i].Year < periods[j].Year
		}
		return periods[i].Month < periods[j].Month
	})
	return periods
}

// SortedAuthors returns the de-duplicated row labels: alphabetical by
// default, or by total attributed lines descending (ties alphabetical)
// when byVolume is set.
func SortedAuthors(perf schema.AuthorPerformance, byVolume bool) []string {
	totals := make(schema.AuthorCount)
	for _, counts := range perf {
		totals.Merge(counts)
	}

	authors := make([]string, 0, len(totals))
	for author := range totals {
		authors = append(authors, author)
	}
	sort.Strings(authors)

	if byVolume {
		sort.SliceStable(authors, func(i, j int) bool {
			return totals[authors[i]] > totals[authors[j]]
		})
	}
	return authors
}
