package commentzwalter

import "fmt"

// cancelCheckInterval is the number of window shifts between two checks of
// the cancellation channel.
const cancelCheckInterval = 4096

type scanConfig struct {
	singleStep bool
	done       <-chan struct{}
}

// ScanOption configures a scan.
type ScanOption func(*scanConfig)

// WithSingleStep disables shifting: the window always advances by one byte.
// The result must equal the shifted scan; this is how the shift tables are
// checked against a reference.
func WithSingleStep() ScanOption {
	return func(c *scanConfig) {
		c.singleStep = true
	}
}

// Match finds all occurrences of all patterns in input.
func (cw *CommentzWalter) Match(input []byte) []MatchResult {
	return cw.Scan(input)
}

// MatchBatch matches multiple inputs against the patterns.
func (cw *CommentzWalter) MatchBatch(inputs [][]byte) [][]MatchResult {
	results := make([][]MatchResult, len(inputs))
	for i, input := range inputs {
		results[i] = cw.Match(input)
	}
	return results
}

// Scan returns every occurrence of every pattern in input, in the order they
// were found: non-decreasing by end position. Overlapping occurrences are all
// reported. An input shorter than the shortest pattern yields no matches.
func (cw *CommentzWalter) Scan(input []byte, opts ...ScanOption) []MatchResult {
	var results []MatchResult
	cw.Visit(input, func(m MatchResult) bool {
		results = append(results, m)
		return true
	}, opts...)
	return results
}

// Visit calls fn for each match in scan order until fn returns false.
// It reports whether the scan ran to the end of the input.
func (cw *CommentzWalter) Visit(input []byte, fn func(MatchResult) bool, opts ...ScanOption) bool {
	var cfg scanConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cw.scanRange(input, 0, len(input), cfg, fn)
}

// Count returns the number of matches in input.
func (cw *CommentzWalter) Count(input []byte) int {
	n := 0
	cw.Visit(input, func(MatchResult) bool {
		n++
		return true
	})
	return n
}

// Contains reports whether any pattern occurs in input. It stops at the
// first match.
func (cw *CommentzWalter) Contains(input []byte) bool {
	return !cw.Visit(input, func(MatchResult) bool {
		return false
	})
}

// scanRange runs the scan loop for windows whose right edge lies in
// [from, to). Only matches ending inside that range are reported. Returns
// false if emit asked to stop or the scan was cancelled.
func (cw *CommentzWalter) scanRange(input []byte, from, to int, cfg scanConfig, emit func(MatchResult) bool) bool {
	if cw.automaton == nil {
		return true
	}
	if to > len(input) {
		to = len(input)
	}

	a := cw.automaton
	i := max(from, cw.pmin-1)
	steps := 0

	for i < to {
		if cfg.done != nil {
			steps++
			if steps%cancelCheckInterval == 0 {
				select {
				case <-cfg.done:
					return false
				default:
				}
			}
		}

		// Extend: read leftwards from i while the trie has a transition
		u, j := Root, 0
		for j <= i {
			next, ok := a.Child(u, input[i-j])
			if !ok {
				break
			}
			u = next
			j++
			if a.IsTerminal(u) {
				idx := a.PatternIndex(u)
				m := MatchResult{
					Text:         cw.patterns[idx].Text,
					PatternID:    cw.patterns[idx].ID,
					PatternIndex: idx,
					Offset:       i - j + 2,
					End:          i + 1,
				}
				if !emit(m) {
					return false
				}
			}
		}

		// Matched all the way to the start of the buffer
		if j > i {
			j = i
		}

		shift := cw.shift(u, j, input[i-j])
		if cfg.singleStep {
			shift = 1
		}
		if shift < 1 {
			panic(fmt.Sprintf("commentzwalter: non-positive shift %d at position %d (state %d)", shift, i, u))
		}
		i += shift
	}

	return true
}

// shift computes min(s2(u), max(s1(u), rt(sym) - j - 1)).
func (cw *CommentzWalter) shift(u, j int, sym byte) int {
	shift := cw.shifts.S1[u]
	if c := cw.rt.Lookup(sym) - j - 1; c > shift {
		shift = c
	}
	if s2 := cw.shifts.S2[u]; s2 < shift {
		shift = s2
	}
	return shift
}
