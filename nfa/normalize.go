package nfa

import "github.com/coregx/formallang/automaton"

// Normalize renumbers n's states by BFS distance from the start state, so
// state IDs reflect discovery order rather than the arbitrary order
// Thompson construction happened to allocate them in. Unreachable states
// (dead ends left behind by union/star wiring, if any) are dropped.
//
// This gives callers (and the graphviz exporter) a stable, predictable
// numbering — state 0 is always the start, and IDs form a dense range
// with no gaps left by dropped states.
func Normalize(n *automaton.NFA) *automaton.NFA {
	order := make([]automaton.StateID, 0, n.NumStates())
	seen := make(map[automaton.StateID]bool)
	queue := []automaton.StateID{n.Start}
	seen[n.Start] = true

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		st := n.State(id)
		for _, sym := range st.Symbols() {
			for _, next := range st.Transitions(sym) {
				if !seen[next] {
					seen[next] = true
					queue = append(queue, next)
				}
			}
		}
		for _, next := range st.EpsilonTargets() {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	remap := make(map[automaton.StateID]automaton.StateID, len(order))
	out := automaton.NewNFA()
	for i, old := range order {
		remap[old] = automaton.StateID(i)
		out.AddState()
	}

	for _, old := range order {
		newID := remap[old]
		st := n.State(old)
		if n.IsFinal(old) {
			out.SetFinal(newID, true)
		}
		for _, sym := range st.Symbols() {
			for _, next := range st.Transitions(sym) {
				if target, ok := remap[next]; ok {
					out.AddTransition(newID, sym, target)
				}
			}
		}
		for _, next := range st.EpsilonTargets() {
			if target, ok := remap[next]; ok {
				out.AddEpsilon(newID, target)
			}
		}
	}

	out.Start = 0
	return out
}
