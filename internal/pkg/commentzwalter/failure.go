package commentzwalter

import "fmt"

// BuildFailureLinks computes the failure table of a with a breadth-first pass.
// failure[s] is the state for the longest proper suffix of the word of s that
// is also a word of the trie; the root and its children fail to the root.
//
// Every state is resolved exactly once, after its parent.
func BuildFailureLinks(a *Automaton) []int {
	failure := make([]int, a.Len())

	// Depth 1 states fail to the root
	queue := make([]int, 0, a.Len())
	for _, sym := range a.Children(Root) {
		next, _ := a.Child(Root, sym)
		failure[next] = Root
		queue = append(queue, next)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, sym := range a.Children(current) {
			next, _ := a.Child(current, sym)
			queue = append(queue, next)

			// Walk failure links until a state has a transition on sym
			f := failure[current]
			for f != Root {
				if _, ok := a.Child(f, sym); ok {
					break
				}
				f = failure[f]
			}

			if target, ok := a.Child(f, sym); ok && target != next {
				failure[next] = target
			} else {
				failure[next] = Root
			}

			if a.Depth(failure[next]) >= a.Depth(next) {
				panic(fmt.Sprintf("commentzwalter: failure link %d -> %d does not decrease depth", next, failure[next]))
			}
		}
	}

	return failure
}
