package tables

import (
	"github.com/endorses/cwsearch/internal/pkg/commentzwalter"
	"github.com/endorses/cwsearch/internal/pkg/output"
	"github.com/endorses/cwsearch/internal/pkg/patternset"
	"github.com/spf13/cobra"
)

// TablesCmd is the tables command registered on the root command.
var TablesCmd = NewCommand()

type options struct {
	patternsFile string
	detailed     bool
	json         bool
}

// tablesReport is the JSON form of a table dump.
type tablesReport struct {
	Patterns  int                           `json:"patterns"`
	MinLength int                           `json:"min_length"`
	Tables    []commentzwalter.TableRow     `json:"tables"`
	BadChar   []commentzwalter.BadCharEntry `json:"bad_char"`
}

// NewCommand builds a fresh tables command with its own flag state.
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tables [flags] PATTERN...",
		Short: "Print the precomputed shift tables for a pattern set",
		Long: `Compile a pattern set and print one "<state>: <s1>,<s2>" line per automaton
state, without scanning any input.

With --detailed the dump also shows depth, parent, failure link and whether
the state ends a pattern. With --json the bad-character table is included.

Example:
  cws tables he she his hers
  cws tables --detailed abc xab
  cws tables --patterns-file words.txt --json`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.patternsFile, "patterns-file", "p", "", "Read patterns from a file (.yaml/.yml or one per line)")
	cmd.Flags().BoolVarP(&opts.detailed, "detailed", "d", false, "Include depth, parent, failure and terminal columns")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Write the tables as JSON")

	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	patterns, err := patternset.Load(o.patternsFile, args)
	if err != nil {
		return err
	}
	cw, err := commentzwalter.NewBuilder().Build(patterns)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case o.json:
		return output.WriteJSON(out, tablesReport{
			Patterns:  cw.PatternCount(),
			MinLength: cw.MinLength(),
			Tables:    cw.Tables(),
			BadChar:   cw.BadCharEntries(),
		})
	case o.detailed:
		return output.WriteTablesDetailed(out, cw.Tables())
	default:
		return output.WriteTables(out, cw.Tables())
	}
}
