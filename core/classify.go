package core

import (
	"path/filepath"
	"strings"

	"github.com/mattmahin/authortrend/schema"
)

// binaryExtensions are file types that have no meaningful line attribution.
var binaryExtensions = map[string]struct{}{
	"bin":    {},
	"data":   {},
	"elf":    {},
	"gz":     {},
	"hex128": {},
	"hex8":   {},
	"pdf":    {},
	"png":    {},
	"tar":    {},
	"wcfg":   {},
	"xlsx":   {},
}

// generatedExtensions are source types emitted by toolchains rather than
// written by hand, so blame would credit whoever ran the generator.
var generatedExtensions = map[string]struct{}{
	"v":    {},
	"xml":  {},
	"edif": {},
	"edf":  {},
	"rpt":  {},
	"xci":  {},
}

// generatedNameSuffix marks build-artifact scripts regenerated by the
// vendor toolchain.
const generatedNameSuffix = ".bd.tcl"

// Classifier decides whether a file path takes part in attribution.
// It is pure and total: the same path always yields the same answer,
// and no path can make it fail.
type Classifier struct {
	generatedPrefixes []string
	importedPrefixes  []string
}

// NewClassifier builds a classifier with the configured directory prefixes.
func NewClassifier(generatedPrefixes, importedPrefixes []string) *Classifier {
	return &Classifier{
		generatedPrefixes: generatedPrefixes,
		importedPrefixes:  importedPrefixes,
	}
}

// Classify returns the exclusion reason for a path, first match winning:
// generated-output prefix, imported/vendored prefix, binary extension,
// generated-source extension, generated filename suffix. The second return
// is false when the file is eligible for attribution.
func (c *Classifier) Classify(path string) (schema.ExclusionReason, bool) {
	for _, prefix := range c.generatedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return schema.ReasonGenerated, true
		}
	}
	for _, prefix := range c.importedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return schema.ReasonImported, true
		}
	}

	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		if _, ok := binaryExtensions[ext]; ok {
			return schema.ReasonBinaryExt, true
		}
		if _, ok := generatedExtensions[ext]; ok {
			return schema.ReasonAutogenExt, true
		}
	}

	if strings.HasSuffix(filepath.Base(path), generatedNameSuffix) {
		return schema.ReasonAutogenName, true
	}

	return "", false
}
