package outwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattmahin/authortrend/internal/contract"
	"github.com/mattmahin/authortrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderExcluded(t *testing.T, excluded []schema.ExcludedFile, cfg *contract.Config) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteExcludedFiles(&buf, excluded, cfg))
	return buf.String()
}

func TestWriteExcludedFiles(t *testing.T) {
	excluded := []schema.ExcludedFile{
		{Path: "cache/blob.dat", Reason: schema.ReasonGenerated},
		{Path: "img/logo.png", Reason: schema.ReasonBinaryExt},
		{Path: "xip/vendor.c", Reason: schema.ReasonImported},
	}
	cfg := &contract.Config{}
	out := renderExcluded(t, excluded, cfg)

	assert.Equal(t, []string{"cache/blob.dat", "generated"}, splitRow(out, "cache/blob.dat"))
	assert.Equal(t, []string{"img/logo.png", "binary extension"}, splitRow(out, "img/logo.png"))
	assert.Equal(t, []string{"xip/vendor.c", "mostly imported"}, splitRow(out, "xip/vendor.c"))

	assert.Contains(t, out, "3 files excluded from attribution")
}

func TestWriteExcludedFilesEmpty(t *testing.T) {
	cfg := &contract.Config{}
	out := renderExcluded(t, nil, cfg)

	assert.Contains(t, out, "No files were excluded from attribution.")
	assert.NotContains(t, out, "Excluded File")
}

// Deep paths are left-truncated so the tail of the path stays visible.
func TestWriteExcludedFilesTruncatesLongPath(t *testing.T) {
	longPath := strings.Repeat("nested/", 12) + "leaf.png"
	excluded := []schema.ExcludedFile{
		{Path: longPath, Reason: schema.ReasonBinaryExt},
	}
	cfg := &contract.Config{}
	out := renderExcluded(t, excluded, cfg)

	assert.NotContains(t, out, longPath)
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "leaf.png")
}
