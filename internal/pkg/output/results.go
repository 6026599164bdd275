package output

import (
	"fmt"
	"io"

	"github.com/endorses/cwsearch/internal/pkg/commentzwalter"
)

// Match is the JSON form of a single occurrence.
type Match struct {
	Text      string `json:"text"`
	Offset    int    `json:"offset"`
	End       int    `json:"end"`
	PatternID int    `json:"pattern_id"`
}

// FileReport is the JSON form of the results for one input.
type FileReport struct {
	File    string                        `json:"file"`
	Size    int                           `json:"size"`
	Count   int                           `json:"count"`
	Matches []Match                       `json:"matches,omitempty"`
	Tables  []commentzwalter.TableRow     `json:"tables,omitempty"`
	BadChar []commentzwalter.BadCharEntry `json:"bad_char,omitempty"`
}

// NewFileReport converts scan results into a FileReport.
func NewFileReport(file string, size int, matches []commentzwalter.MatchResult) FileReport {
	report := FileReport{
		File:    file,
		Size:    size,
		Count:   len(matches),
		Matches: make([]Match, len(matches)),
	}
	for i, m := range matches {
		report.Matches[i] = Match{
			Text:      m.Text,
			Offset:    m.Offset,
			End:       m.End,
			PatternID: m.PatternID,
		}
	}
	return report
}

// WriteMatches prints one "<text>: <offset>" line per match.
// A non-empty prefix (typically the file name) is prepended as "<prefix>:".
func WriteMatches(w io.Writer, prefix string, matches []commentzwalter.MatchResult) error {
	for _, m := range matches {
		var err error
		if prefix != "" {
			_, err = fmt.Fprintf(w, "%s:%s: %d\n", prefix, m.Text, m.Offset)
		} else {
			_, err = fmt.Fprintf(w, "%s: %d\n", m.Text, m.Offset)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteCount prints the number of matches, optionally prefixed.
func WriteCount(w io.Writer, prefix string, count int) error {
	var err error
	if prefix != "" {
		_, err = fmt.Fprintf(w, "%s:%d\n", prefix, count)
	} else {
		_, err = fmt.Fprintf(w, "%d\n", count)
	}
	return err
}

// WriteTables prints one "<state>: <s1>,<s2>" line per automaton state.
func WriteTables(w io.Writer, rows []commentzwalter.TableRow) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%d: %d,%d\n", r.State, r.S1, r.S2); err != nil {
			return err
		}
	}
	return nil
}

// WriteTablesDetailed prints the full table dump with depth, parent,
// failure link and terminal flag.
func WriteTablesDetailed(w io.Writer, rows []commentzwalter.TableRow) error {
	if _, err := fmt.Fprintln(w, "state\tdepth\tparent\tfailure\tterminal\ts1\ts2"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%t\t%d\t%d\n",
			r.State, r.Depth, r.Parent, r.Failure, r.Terminal, r.S1, r.S2); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON marshals v and writes it followed by a newline. Output is
// indented only when w is a terminal, so pipes get one document per line.
func WriteJSON(w io.Writer, v any) error {
	data, err := MarshalJSONPretty(v, IsTerminal(w))
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
