// Package rewriter implements the literal-extraction transform: it walks a
// parsed unit, replaces eligible Chinese literals with lookup calls, records
// each distinct text in the aggregation store and injects the lookup import.
package rewriter

import "github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/core"

// AutoImport configures the import injector.
type AutoImport struct {
	Enabled  bool
	Identity string
	Source   string
}

// Config carries the transform options for one run.
type Config struct {
	// LookupIdentity is the function called in place of each literal.
	LookupIdentity string
	AutoImport     AutoImport
	// Ranges is the qualifying-script test: text is eligible when at least
	// one rune falls inside one of these ranges.
	Ranges []core.RuneRange
}

// DefaultConfig returns the standard configuration: lookup and import both
// named "i18n", auto-import enabled, full Han ranges.
func DefaultConfig() Config {
	return Config{
		LookupIdentity: "i18n",
		AutoImport:     AutoImport{Enabled: true, Identity: "i18n", Source: "i18n"},
		Ranges:         core.HanRanges,
	}
}
