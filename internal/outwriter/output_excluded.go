package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/mattmahin/authortrend/internal/contract"
	"github.com/mattmahin/authortrend/schema"
	"github.com/olekukonko/tablewriter"
)

// maxExcludedPathWidth caps the path column in the excluded-files table.
const maxExcludedPathWidth = 60

// PrintExcludedFiles renders the excluded-files diagnostic table on stdout.
func PrintExcludedFiles(excluded []schema.ExcludedFile, cfg *contract.Config) error {
	return WriteExcludedFiles(os.Stdout, excluded, cfg)
}

// WriteExcludedFiles writes the table of every path the classifier dropped
// across the run, with the reason that won.
func WriteExcludedFiles(w io.Writer, excluded []schema.ExcludedFile, cfg *contract.Config) error {
	if len(excluded) == 0 {
		_, err := fmt.Fprintln(w, "No files were excluded from attribution.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Excluded File", "Reason"})

	var data [][]string
	for _, e := range excluded {
		reason := contract.GetPlainReasonLabel(e.Reason)
		if cfg.UseColors {
			reason = contract.GetColorReasonLabel(e.Reason)
		}
		data = append(data, []string{
			contract.TruncateLabel(e.Path, maxExcludedPathWidth),
			reason,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d files excluded from attribution\n\n", len(excluded))
	return err
}
