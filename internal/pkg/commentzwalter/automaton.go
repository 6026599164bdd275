package commentzwalter

import (
	"maps"
	"slices"
)

const (
	// Root is the identifier of the automaton's root state.
	Root = 0

	// NoState is returned where a state has no parent or no child.
	NoState = -1
)

// state represents a node of the reversed-pattern trie.
type state struct {
	// transitions maps input bytes to child states.
	// Using a map for sparse alphabets (typical for text patterns).
	transitions map[byte]int

	// parent is a back-reference by identifier. NoState for the root.
	parent int

	// depth is the number of symbols between the root and this state.
	depth int

	// terminal is true iff a reversed pattern ends exactly here.
	terminal bool

	// pattern is the index of the first pattern that ended here.
	pattern int
}

// Automaton is a trie over reversed patterns. The identifier of a state is
// its index in the arena; identifiers are assigned in creation order, so a
// parent always has a smaller identifier than its children.
type Automaton struct {
	states []state
}

// NewAutomaton creates an automaton holding only the root state.
func NewAutomaton() *Automaton {
	return &Automaton{
		states: []state{newState(NoState, 0)},
	}
}

func newState(parent, depth int) state {
	return state{
		transitions: make(map[byte]int),
		parent:      parent,
		depth:       depth,
		pattern:     NoState,
	}
}

// Insert adds the reversed byte sequence of pattern, creating missing states
// along the path, and marks the final state terminal. Inserting the same
// pattern twice is a no-op apart from re-marking the terminal state.
// Returns the terminal state.
func (a *Automaton) Insert(pattern []byte, patternIndex int) int {
	current := Root
	for i := len(pattern) - 1; i >= 0; i-- {
		sym := pattern[i]
		if next, exists := a.states[current].transitions[sym]; exists {
			current = next
			continue
		}
		next := len(a.states)
		a.states = append(a.states, newState(current, a.states[current].depth+1))
		a.states[current].transitions[sym] = next
		current = next
	}

	st := &a.states[current]
	if !st.terminal {
		st.terminal = true
		st.pattern = patternIndex
	}
	return current
}

// Child returns the state reached from s on sym.
func (a *Automaton) Child(s int, sym byte) (int, bool) {
	next, ok := a.states[s].transitions[sym]
	return next, ok
}

// Children returns the outgoing symbols of s in ascending order.
func (a *Automaton) Children(s int) []byte {
	return slices.Sorted(maps.Keys(a.states[s].transitions))
}

// IsTerminal reports whether a reversed pattern ends at s.
func (a *Automaton) IsTerminal(s int) bool {
	return a.states[s].terminal
}

// Depth returns the distance of s from the root.
func (a *Automaton) Depth(s int) int {
	return a.states[s].depth
}

// Parent returns the parent of s. The root has no parent.
func (a *Automaton) Parent(s int) (int, bool) {
	p := a.states[s].parent
	return p, p != NoState
}

// PatternIndex returns the index of the first pattern ending at s,
// or NoState if s is not terminal.
func (a *Automaton) PatternIndex(s int) int {
	return a.states[s].pattern
}

// Len returns the number of states, root included.
func (a *Automaton) Len() int {
	return len(a.states)
}
