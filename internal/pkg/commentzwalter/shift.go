package commentzwalter

import "fmt"

// ShiftTables holds the per-state minimum safe shifts.
//
// S1[u] bounds the distance to the nearest deeper state whose failure link
// leads back to u: the suffix read so far could reappear no closer than that.
// S2[u] bounds the distance to the nearest terminal state that fails into u
// or into one of u's ancestors, so a whole pattern is never skipped.
type ShiftTables struct {
	S1 []int
	S2 []int
}

// failureGroups inverts the failure table.
//
// groups[k] lists, in ascending order, the states whose failure link is k.
// The root is never a key. terminals[k] is the shallowest terminal state
// whose failure chain passes through k, or NoState.
func failureGroups(a *Automaton, failure []int) (groups [][]int, terminals []int) {
	n := a.Len()
	groups = make([][]int, n)
	for v := 1; v < n; v++ {
		if k := failure[v]; k != Root {
			groups[k] = append(groups[k], v)
		}
	}

	// Collected separately from groups; the groups themselves stay untouched
	terminals = make([]int, n)
	for k := range terminals {
		terminals[k] = NoState
	}
	for t := 1; t < n; t++ {
		if !a.IsTerminal(t) {
			continue
		}
		for k := failure[t]; k != Root; k = failure[k] {
			if rep := terminals[k]; rep == NoState || a.Depth(t) < a.Depth(rep) {
				terminals[k] = t
			}
		}
	}

	return groups, terminals
}

// BuildShiftTables derives s1 and s2 from the failure table.
// pmin is the length of the shortest pattern and must be positive.
func BuildShiftTables(a *Automaton, failure []int, pmin int) *ShiftTables {
	if pmin < 1 {
		panic(fmt.Sprintf("commentzwalter: pmin must be positive, got %d", pmin))
	}

	n := a.Len()
	groups, terminals := failureGroups(a, failure)
	st := &ShiftTables{
		S1: make([]int, n),
		S2: make([]int, n),
	}

	st.S1[Root] = 1
	for u := 1; u < n; u++ {
		minimum := pmin
		for _, v := range groups[u] {
			if d := a.Depth(v) - a.Depth(u); d < minimum {
				minimum = d
			}
		}
		st.S1[u] = minimum
	}

	// Parents have smaller identifiers, so ascending order is top-down
	st.S2[Root] = pmin
	for u := 1; u < n; u++ {
		parent, _ := a.Parent(u)
		minimum := st.S2[parent]
		if t := terminals[u]; t != NoState {
			if d := a.Depth(t) - a.Depth(u); d < minimum {
				minimum = d
			}
		}
		st.S2[u] = minimum
	}

	for u := 1; u < n; u++ {
		if st.S1[u] < 1 || st.S1[u] > pmin || st.S2[u] < 1 || st.S2[u] > pmin {
			panic(fmt.Sprintf("commentzwalter: state %d has shifts s1=%d s2=%d outside [1, %d]",
				u, st.S1[u], st.S2[u], pmin))
		}
	}

	return st
}

// BadCharTable is the Horspool bad-character table merged across patterns.
type BadCharTable struct {
	shifts  [256]int
	present [256]bool
	pmin    int
}

// BuildBadCharTable builds the table from the raw, non-reversed patterns.
// For each symbol it keeps the smallest len(p)-i over all patterns p, where
// i is the rightmost index of the symbol in p.
func BuildBadCharTable(patterns []Pattern, pmin int) *BadCharTable {
	rt := &BadCharTable{pmin: pmin}

	for _, p := range patterns {
		var local [256]int
		var seen [256]bool
		n := len(p.Text)
		// Later occurrences overwrite earlier ones
		for i := 0; i < n; i++ {
			local[p.Text[i]] = n - i
			seen[p.Text[i]] = true
		}

		for sym := range local {
			if !seen[sym] {
				continue
			}
			if !rt.present[sym] || local[sym] < rt.shifts[sym] {
				rt.shifts[sym] = local[sym]
				rt.present[sym] = true
			}
		}
	}

	return rt
}

// Lookup returns the shift for sym. Symbols that occur in no pattern cannot
// be part of a match and map to pmin.
func (rt *BadCharTable) Lookup(sym byte) int {
	if rt.present[sym] {
		return rt.shifts[sym]
	}
	return rt.pmin
}

// Has reports whether sym occurs in any pattern.
func (rt *BadCharTable) Has(sym byte) bool {
	return rt.present[sym]
}
