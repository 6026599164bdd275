// Package commentzwalter implements the Commentz-Walter multi-pattern string
// matching algorithm.
//
// Commentz-Walter combines an Aho-Corasick style automaton, built over the
// reversed patterns, with Boyer-Moore-Horspool style bad-character shifts.
// The scan compares right-to-left inside a window whose right edge moves
// through the input, and after every attempt the window may advance by more
// than one byte. With long patterns and a large alphabet most input bytes are
// never examined.
//
// The build pipeline is fixed: Automaton, failure links, shift tables (s1, s2)
// and the bad-character table. All of them are immutable once built, so a
// single *CommentzWalter may be shared by any number of goroutines.
package commentzwalter

// Pattern represents a pattern to be matched by the automaton.
type Pattern struct {
	// ID is a caller supplied identifier, returned in match results.
	ID int

	// Text is the literal pattern. It must not be empty.
	Text string
}

// MatchResult represents a single occurrence of a pattern in the input.
type MatchResult struct {
	// Text is the matched pattern text.
	Text string

	// PatternID is the ID of the matched pattern.
	PatternID int

	// PatternIndex is the index of the pattern in the slice given to Build.
	// When the same text was supplied more than once, the first index wins.
	PatternIndex int

	// Offset is the 1-based position in the input where the match starts.
	Offset int

	// End is the 0-based exclusive position where the match ends.
	End int
}

// Start returns the 0-based position where the match starts.
func (m MatchResult) Start() int {
	return m.Offset - 1
}

// Matcher is the interface for multi-pattern matching implementations.
type Matcher interface {
	// Build constructs the matcher from a set of patterns.
	// Returns a *ConfigError if the pattern set is unusable.
	Build(patterns []Pattern) error

	// Match finds every occurrence of every pattern in the input,
	// ordered by end position.
	Match(input []byte) []MatchResult

	// MatchBatch matches multiple inputs against the patterns.
	// Returns a slice of MatchResult slices, one per input.
	MatchBatch(inputs [][]byte) [][]MatchResult

	// PatternCount returns the number of patterns in the matcher.
	PatternCount() int
}

var _ Matcher = (*CommentzWalter)(nil)
