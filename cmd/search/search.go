package search

import (
	"context"
	"fmt"
	"io"

	"github.com/endorses/cwsearch/internal/pkg/cmdutil"
	"github.com/endorses/cwsearch/internal/pkg/commentzwalter"
	"github.com/endorses/cwsearch/internal/pkg/config"
	"github.com/endorses/cwsearch/internal/pkg/constants"
	"github.com/endorses/cwsearch/internal/pkg/logger"
	"github.com/endorses/cwsearch/internal/pkg/normalize"
	"github.com/endorses/cwsearch/internal/pkg/output"
	"github.com/endorses/cwsearch/internal/pkg/patternset"
	"github.com/endorses/cwsearch/internal/pkg/signals"
	"github.com/endorses/cwsearch/internal/pkg/source"
	"github.com/spf13/cobra"
)

// SearchCmd is the search command registered on the root command.
var SearchCmd = NewCommand()

type options struct {
	patternsFile string
	tables       bool
	count        bool
}

// NewCommand builds a fresh search command with its own flag state.
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "search [flags] PATTERN... FILE",
		Short: "Find every occurrence of a set of patterns in a file",
		Long: `Search one or more files for all occurrences of a set of patterns using
the Commentz-Walter algorithm.

Patterns are given either as positional arguments followed by exactly one
file, or with --patterns-file, in which case every positional argument is a
file. Pattern files ending in .yaml or .yml use the YAML format; any other
file holds one pattern per line.

Each match is printed as "<pattern>: <offset>" where offset is the 1-based
position of the first byte of the occurrence. Matches are reported in order
of their end position. Use "-" to read from standard input.

Example:
  cws search he she his hers input.txt
  cws search --patterns-file words.yaml --json a.txt b.txt
  cws search -v ab data.bin
  cws search --workers 8 --max-size 2G --patterns-file sigs.txt dump.bin`,
		Args:         opts.validateArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.patternsFile, "patterns-file", "p", "", "Read patterns from a file (.yaml/.yml or one per line)")
	flags.BoolVarP(&opts.tables, "tables", "v", false, "Print the per-state shift tables before the matches")
	flags.BoolVarP(&opts.count, "count", "c", false, "Print only the number of matches per file")

	flags.Int("workers", constants.DefaultWorkers, "Number of goroutines scanning each file")
	flags.String("max-size", constants.DefaultMaxInputSize, "Largest file accepted (e.g. 512K, 64M, 1G)")
	flags.String("normalize", normalize.ModeNone, "Unicode normalization of patterns and input: none, nfc, nfkc")
	flags.BoolP("ignore-case", "i", false, "Fold ASCII letters to lower case before matching")
	flags.Bool("json", false, "Write results as JSON")

	return cmd
}

func (o *options) validateArgs(cmd *cobra.Command, args []string) error {
	if o.patternsFile != "" {
		return cobra.MinimumNArgs(1)(cmd, args)
	}
	if len(args) < 2 {
		return fmt.Errorf("requires at least one pattern and a file, received %d argument(s)", len(args))
	}
	return nil
}

// split separates positional arguments into patterns and files.
func (o *options) split(args []string) (patterns, files []string) {
	if o.patternsFile != "" {
		return nil, args
	}
	return args[:len(args)-1], args[len(args)-1:]
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	config.SetDefaults()
	if err := cmdutil.BindFlags(cmd.Flags(), "search",
		"workers", "max-size", "normalize", "ignore-case", "json"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	patternArgs, files := o.split(args)
	patterns, err := patternset.Load(o.patternsFile, patternArgs)
	if err != nil {
		return err
	}

	norm, err := normalize.New(cfg.Normalize, cfg.IgnoreCase)
	if err != nil {
		return err
	}
	for i := range patterns {
		patterns[i].Text = norm.String(patterns[i].Text)
	}

	cw, err := commentzwalter.NewBuilder().Build(patterns)
	if err != nil {
		return err
	}
	logger.Debug("Matcher built",
		"patterns", cw.PatternCount(),
		"states", cw.StateCount(),
		"pmin", cw.MinLength(),
		"workers", cfg.Workers)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	cleanup := signals.SetupHandler(ctx, cancel)
	defer cleanup()

	out := cmd.OutOrStdout()
	if o.tables && !cfg.JSON {
		if err := output.WriteTables(out, cw.Tables()); err != nil {
			return err
		}
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("search interrupted: %w", err)
		}

		in, err := source.Read(file, cfg.MaxBytes())
		if err != nil {
			return err
		}
		data := norm.Bytes(in.Data)

		matches, err := cw.ScanParallel(ctx, data, cfg.Workers)
		if err != nil {
			return fmt.Errorf("search interrupted: %w", err)
		}
		logger.Debug("Scanned input", "file", in.Name, "size", len(data), "matches", len(matches))

		prefix := ""
		if len(files) > 1 {
			prefix = in.Name
		}
		if err := o.report(out, cw, cfg, in.Name, prefix, len(data), matches); err != nil {
			return err
		}
	}
	return nil
}

func (o *options) report(w io.Writer, cw *commentzwalter.CommentzWalter, cfg *config.SearchConfig,
	name, prefix string, size int, matches []commentzwalter.MatchResult) error {
	switch {
	case cfg.JSON:
		report := output.NewFileReport(name, size, matches)
		if o.count {
			report.Matches = nil
		}
		if o.tables {
			report.Tables = cw.Tables()
			report.BadChar = cw.BadCharEntries()
		}
		return output.WriteJSON(w, report)
	case o.count:
		return output.WriteCount(w, prefix, len(matches))
	default:
		return output.WriteMatches(w, prefix, matches)
	}
}
