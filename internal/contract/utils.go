package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattmahin/authortrend/schema"
)

// Color variables for the excluded-files diagnostic table.
var (
	GeneratedColor = color.New(color.FgYellow)  // machine output, never hand-edited
	ImportedColor  = color.New(color.FgCyan)    // third-party code carried in-tree
	BinaryColor    = color.New(color.FgMagenta) // not line-attributable at all
)

// GetPlainReasonLabel returns the plain text label for an exclusion reason.
func GetPlainReasonLabel(reason schema.ExclusionReason) string {
	return string(reason)
}

// GetColorReasonLabel returns a colored label for console output.
func GetColorReasonLabel(reason schema.ExclusionReason) string {
	text := GetPlainReasonLabel(reason)
	switch reason {
	case schema.ReasonGenerated, schema.ReasonAutogenExt, schema.ReasonAutogenName:
		return GeneratedColor.Sprint(text)
	case schema.ReasonImported:
		return ImportedColor.Sprint(text)
	case schema.ReasonBinaryExt:
		return BinaryColor.Sprint(text)
	default:
		return text
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateLabel shortens a label from the left so the tail stays visible.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return label
}

// GetCacheDBFilePath returns the path to the SQLite DB file for the blame cache.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".authortrend_cache.db"
	}
	return filepath.Join(homeDir, ".authortrend_cache.db")
}
