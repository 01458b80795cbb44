package core

import (
	"testing"

	"github.com/mattmahin/authortrend/schema"
	"github.com/stretchr/testify/assert"
)

// defaultClassifier builds a classifier with the stock prefixes.
func defaultClassifier() *Classifier {
	return NewClassifier([]string{"cache/"}, []string{"xip/"})
}

func TestClassify(t *testing.T) {
	c := defaultClassifier()

	tests := []struct {
		name     string
		path     string
		reason   schema.ExclusionReason
		excluded bool
	}{
		{
			name:     "generated prefix wins over binary extension",
			path:     "cache/out.bin",
			reason:   schema.ReasonGenerated,
			excluded: true,
		},
		{
			name:     "imported prefix",
			path:     "xip/fifo/fifo.vhd",
			reason:   schema.ReasonImported,
			excluded: true,
		},
		{
			name:     "binary extension",
			path:     "docs/report.pdf",
			reason:   schema.ReasonBinaryExt,
			excluded: true,
		},
		{
			name:     "generated source extension",
			path:     "src/thing.v",
			reason:   schema.ReasonAutogenExt,
			excluded: true,
		},
		{
			name:     "generated filename suffix",
			path:     "boards/top.bd.tcl",
			reason:   schema.ReasonAutogenName,
			excluded: true,
		},
		{
			name:     "regular source file",
			path:     "src/main.rs",
			excluded: false,
		},
		{
			name:     "extensionless file",
			path:     "Makefile",
			excluded: false,
		},
		{
			name:     "dotfile with no stem",
			path:     ".gitignore",
			excluded: false,
		},
		{
			name:     "empty path",
			path:     "",
			excluded: false,
		},
		{
			name:     "prefix must anchor at path start",
			path:     "src/cache/lru.go",
			excluded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, excluded := c.Classify(tt.path)
			assert.Equal(t, tt.excluded, excluded)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

// Classification is deterministic: repeated calls agree for any path.
func TestClassifyDeterministic(t *testing.T) {
	c := defaultClassifier()
	paths := []string{"cache/out.bin", "src/main.rs", "", "xip/a.b.c", "weird/\x00name.v", "日本語/メモ.txt"}
	for _, p := range paths {
		r1, e1 := c.Classify(p)
		r2, e2 := c.Classify(p)
		assert.Equal(t, r1, r2, "path %q", p)
		assert.Equal(t, e1, e2, "path %q", p)
	}
}

func TestClassifyConfiguredPrefixes(t *testing.T) {
	c := NewClassifier([]string{"gen/", "build/"}, nil)

	reason, excluded := c.Classify("build/out.txt")
	assert.True(t, excluded)
	assert.Equal(t, schema.ReasonGenerated, reason)

	// Stock prefixes are not baked in
	_, excluded = c.Classify("cache/out.txt")
	assert.False(t, excluded)
}
