package commentzwalter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildAutomaton(patterns ...string) *Automaton {
	a := NewAutomaton()
	for i, p := range patterns {
		a.Insert([]byte(p), i)
	}
	return a
}

func TestBuildFailureLinks_Known(t *testing.T) {
	// States: 1=c 2=cb 3=cba 4=b 5=ba 6=bax
	a := buildAutomaton("abc", "xab")
	failure := BuildFailureLinks(a)

	assert.Equal(t, []int{0, 0, 4, 5, 0, 0, 0}, failure)
}

func TestBuildFailureLinks_HeShe(t *testing.T) {
	// States: 1=e 2=eh 3=ehs 4=s 5=si 6=sih 7=sr 8=sre 9=sreh
	a := buildAutomaton("he", "she", "his", "hers")
	failure := BuildFailureLinks(a)

	assert.Equal(t, []int{0, 0, 0, 4, 0, 0, 0, 0, 1, 2}, failure)
}

func TestBuildFailureLinks_ShallowStatesFailToRoot(t *testing.T) {
	a := buildAutomaton("abc", "bc", "c", "xyz")
	failure := BuildFailureLinks(a)

	for s := 0; s < a.Len(); s++ {
		if a.Depth(s) <= 1 {
			assert.Equal(t, Root, failure[s], "state %d", s)
		}
	}
}

func TestBuildFailureLinks_DepthDecreases(t *testing.T) {
	sets := [][]string{
		{"he", "she", "his", "hers"},
		{"aaaa", "aaa", "aa"},
		{"abab", "bab", "ab", "b"},
		{"cacbaa", "aba", "acb", "acbab", "ccbab"},
	}

	for _, patterns := range sets {
		a := buildAutomaton(patterns...)
		failure := BuildFailureLinks(a)
		for s := 1; s < a.Len(); s++ {
			assert.Less(t, a.Depth(failure[s]), a.Depth(s), "patterns %v state %d", patterns, s)
			assert.NotEqual(t, s, failure[s])
		}
	}
}

func TestBuildFailureLinks_RepeatedSymbol(t *testing.T) {
	// Reversed "aaa": 1=a 2=aa 3=aaa, each fails to the state one shorter
	a := buildAutomaton("aaa")
	failure := BuildFailureLinks(a)

	assert.Equal(t, []int{0, 0, 1, 2}, failure)
}
