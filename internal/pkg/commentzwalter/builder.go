package commentzwalter

// Builder constructs Commentz-Walter matchers from patterns.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// CommentzWalter is a compiled, immutable Commentz-Walter matcher.
type CommentzWalter struct {
	automaton *Automaton
	failure   []int
	shifts    *ShiftTables
	rt        *BadCharTable

	// patterns stores the original patterns for result reporting.
	patterns []Pattern

	// pmin is the length of the shortest pattern.
	pmin int
}

// Build compiles the patterns. The pipeline runs in a fixed order:
//  1. Trie construction over the reversed patterns
//  2. Failure links (BFS)
//  3. Shift tables s1 and s2
//  4. Bad-character table from the raw patterns
//
// Returns a *ConfigError if the set is empty or contains an empty pattern.
func (b *Builder) Build(patterns []Pattern) (*CommentzWalter, error) {
	if err := validatePatterns(patterns); err != nil {
		return nil, err
	}

	cw := &CommentzWalter{
		automaton: NewAutomaton(),
		patterns:  make([]Pattern, len(patterns)),
		pmin:      len(patterns[0].Text),
	}
	copy(cw.patterns, patterns)

	for i, p := range cw.patterns {
		if len(p.Text) < cw.pmin {
			cw.pmin = len(p.Text)
		}
		cw.automaton.Insert([]byte(p.Text), i)
	}

	cw.failure = BuildFailureLinks(cw.automaton)
	cw.shifts = BuildShiftTables(cw.automaton, cw.failure, cw.pmin)
	cw.rt = BuildBadCharTable(cw.patterns, cw.pmin)

	return cw, nil
}

// Compile is a shorthand for building a matcher from plain strings.
// Pattern IDs are the positions in texts.
func Compile(texts ...string) (*CommentzWalter, error) {
	patterns := make([]Pattern, len(texts))
	for i, t := range texts {
		patterns[i] = Pattern{ID: i, Text: t}
	}
	return NewBuilder().Build(patterns)
}

// Build constructs the matcher in place. It exists to satisfy Matcher;
// the receiver must not be in use by concurrent scans.
func (cw *CommentzWalter) Build(patterns []Pattern) error {
	built, err := NewBuilder().Build(patterns)
	if err != nil {
		return err
	}
	*cw = *built
	return nil
}

// PatternCount returns the number of patterns given to Build.
func (cw *CommentzWalter) PatternCount() int {
	return len(cw.patterns)
}

// MinLength returns pmin, the length of the shortest pattern.
func (cw *CommentzWalter) MinLength() int {
	return cw.pmin
}

// StateCount returns the number of automaton states, root included.
func (cw *CommentzWalter) StateCount() int {
	if cw.automaton == nil {
		return 0
	}
	return cw.automaton.Len()
}

// Automaton returns the underlying trie. It must not be modified.
func (cw *CommentzWalter) Automaton() *Automaton {
	return cw.automaton
}

// Failure returns the failure link of state s.
func (cw *CommentzWalter) Failure(s int) int {
	return cw.failure[s]
}

// Shifts returns s1 and s2 for state s.
func (cw *CommentzWalter) Shifts(s int) (s1, s2 int) {
	return cw.shifts.S1[s], cw.shifts.S2[s]
}

// BadChar returns the bad-character shift for sym.
func (cw *CommentzWalter) BadChar(sym byte) int {
	return cw.rt.Lookup(sym)
}
