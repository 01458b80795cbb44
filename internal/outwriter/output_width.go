package outwriter

import (
	"os"

	"github.com/mattmahin/authortrend/internal/contract"
	"golang.org/x/term"
)

// periodColumnWidth is the rendered width of one period column: a "2006-01"
// label plus table borders and padding.
const periodColumnWidth = 10

// GetMaxAuthorWidth calculates the maximum width for author labels in the
// matrix table based on terminal width and the number of period columns.
func GetMaxAuthorWidth(cfg *contract.Config, numPeriods int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	available := termWidth - numPeriods*periodColumnWidth - 4
	if available < 15 {
		// Minimum reasonable author width
		return 15
	}
	if available > 40 {
		// Maximum author width to keep the matrix compact
		return 40
	}
	return available
}
