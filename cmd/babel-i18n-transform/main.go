// babel-i18n-transform extracts Chinese text literals from JS/TS/JSX source,
// replaces them with i18n lookup calls keyed by pinyin-derived identifiers
// and exports the aggregated translation table.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/batch"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/core"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/export"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/rewriter"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/store"
)

type options struct {
	lookup       string
	autoImport   bool
	importSource string
	strictHan    bool
	write        bool
	suffix       string
	table        string
	tableFormat  string
	excludes     []string
	verbose      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "babel-i18n-transform [globs...]",
		Short: "Replace Chinese literals with i18n lookup calls",
		Long: `babel-i18n-transform rewrites JavaScript/TypeScript/JSX sources, replacing
Chinese text literals with calls to an i18n lookup function keyed by a
pinyin-derived identifier, and exports the collected (text, key) table.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	addFlags(cmd.Flags(), opts)
	return cmd
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVar(&opts.lookup, "lookup", "i18n", "identifier of the lookup function to call")
	flags.BoolVar(&opts.autoImport, "auto-import", true, "inject the lookup import when missing")
	flags.StringVar(&opts.importSource, "import-source", "i18n", "module the lookup identifier is imported from")
	flags.BoolVar(&opts.strictHan, "strict-han", false, "restrict the qualifying test to U+4E00..U+9FA5")
	flags.BoolVarP(&opts.write, "write", "w", false, "rewrite files in place")
	flags.StringVar(&opts.suffix, "suffix", "", "write copies with this suffix instead of in place (e.g. .i18n)")
	flags.StringVar(&opts.table, "table", "", "path of the translation table to export")
	flags.StringVar(&opts.tableFormat, "table-format", "yaml", "translation table format (yaml|json|csv)")
	flags.StringArrayVar(&opts.excludes, "exclude", nil, "glob of files to skip (repeatable)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log per-file activity")
}

func run(opts *options, patterns []string) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg := rewriter.Config{
		LookupIdentity: opts.lookup,
		AutoImport: rewriter.AutoImport{
			Enabled:  opts.autoImport,
			Identity: opts.lookup,
			Source:   opts.importSource,
		},
		Ranges: core.HanRanges,
	}
	if opts.strictHan {
		cfg.Ranges = core.StrictHanRanges
	}

	st := store.New()
	res, err := batch.Run(batch.Options{
		Patterns: patterns,
		Excludes: opts.excludes,
		Write:    opts.write,
		Suffix:   opts.suffix,
		Config:   cfg,
		Logger:   logger.Sugar(),
	}, st)
	if err != nil {
		return err
	}

	if !opts.write && opts.suffix == "" {
		paths := make([]string, 0, len(res.Outputs))
		for path := range res.Outputs {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			if len(paths) > 1 {
				fmt.Printf("// %s\n", path)
			}
			fmt.Print(res.Outputs[path])
		}
	}

	if opts.table != "" {
		if err := export.Write(opts.table, opts.tableFormat, st.Entries()); err != nil {
			return err
		}
	}

	summary := color.New(color.FgGreen)
	if res.Skipped > 0 {
		summary = color.New(color.FgYellow)
	}
	summary.Fprintf(os.Stderr, "%d files processed, %d rewritten, %d skipped, %d texts collected\n",
		res.Processed, res.Rewritten, res.Skipped, st.Len())
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
