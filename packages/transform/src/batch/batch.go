// Package batch runs the transform over a set of files selected by glob
// patterns. A unit that fails to parse or print is logged and skipped; the
// batch never aborts on a unit error.
package batch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/renameio"
	"go.uber.org/zap"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/rewriter"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/store"
)

// sourceExts are the file extensions the transform accepts.
var sourceExts = map[string]bool{
	".js": true, ".jsx": true, ".ts": true, ".tsx": true,
}

// Options configures one batch run.
type Options struct {
	Patterns []string
	Excludes []string
	// Write rewrites files in place. Suffix, when non-empty, writes a copy
	// next to the original instead (e.g. ".i18n"). With neither set, output
	// is collected into Result.Outputs for the caller to print.
	Write  bool
	Suffix string
	Config rewriter.Config
	Logger *zap.SugaredLogger
}

// Result summarizes a batch run.
type Result struct {
	Processed int
	Rewritten int
	Skipped   int
	// Outputs holds rewritten code per path when neither Write nor Suffix
	// was requested.
	Outputs map[string]string
}

// Run expands the patterns, transforms each selected file and applies the
// configured write policy. The store accumulates discovered texts across the
// whole run.
func Run(opts Options, st *store.Store) (*Result, error) {
	files, err := selectFiles(opts.Patterns, opts.Excludes)
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	res := &Result{Outputs: map[string]string{}}
	for _, path := range files {
		res.Processed++
		src, err := os.ReadFile(path)
		if err != nil {
			log.Warnw("skipping unit", "file", path, "error", err)
			res.Skipped++
			continue
		}
		out, err := rewriter.Transform(string(src), path, opts.Config, st)
		if err != nil {
			log.Warnw("skipping unit", "file", path, "error", err)
			res.Skipped++
			continue
		}
		if out == string(src) {
			continue
		}
		res.Rewritten++
		switch {
		case opts.Suffix != "":
			target := suffixPath(path, opts.Suffix)
			if err := renameio.WriteFile(target, []byte(out), 0o644); err != nil {
				return res, err
			}
			log.Debugw("wrote copy", "file", target)
		case opts.Write:
			if err := renameio.WriteFile(path, []byte(out), 0o644); err != nil {
				return res, err
			}
			log.Debugw("rewrote", "file", path)
		default:
			res.Outputs[path] = out
		}
	}
	return res, nil
}

// selectFiles expands the glob patterns, filters by extension and exclusion
// patterns, and returns a sorted, deduplicated list.
func selectFiles(patterns, excludes []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if seen[m] || !sourceExts[filepath.Ext(m)] {
				continue
			}
			if info, err := os.Stat(m); err != nil || info.IsDir() {
				continue
			}
			if excluded(m, excludes) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

func excluded(path string, excludes []string) bool {
	slash := filepath.ToSlash(path)
	for _, pattern := range excludes {
		if ok, err := doublestar.Match(pattern, slash); err == nil && ok {
			return true
		}
	}
	return false
}

// suffixPath inserts the suffix before the file extension:
// "a/b.tsx" + ".i18n" -> "a/b.i18n.tsx".
func suffixPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}
