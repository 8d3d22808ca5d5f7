package nfa

import (
	"github.com/coregx/formallang/automaton"
	"github.com/coregx/formallang/internal/stateset"
)

// epsilonClosure returns the set of states reachable from any state in
// start by following zero or more epsilon edges.
func epsilonClosure(n *automaton.NFA, start []automaton.StateID) *stateset.Set {
	closure := stateset.New(n.NumStates())
	stack := append([]automaton.StateID(nil), start...)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if closure.Contains(int(id)) {
			continue
		}
		closure.Insert(int(id))

		st := n.State(id)
		if st == nil {
			continue
		}
		for _, next := range st.EpsilonTargets() {
			if !closure.Contains(int(next)) {
				stack = append(stack, next)
			}
		}
	}
	return closure
}

// Accepts simulates n against input by tracking the set of "currently
// active" states — the epsilon closure of the start state, then
// repeatedly stepping on each input byte and re-closing — and reports
// whether any active state is final once input is exhausted.
func Accepts(n *automaton.NFA, input string) bool {
	active := epsilonClosure(n, []automaton.StateID{n.Start})

	for i := 0; i < len(input); i++ {
		symbol := input[i]
		next := stateset.New(n.NumStates())
		for _, id := range active.Values() {
			st := n.State(automaton.StateID(id))
			if st == nil {
				continue
			}
			for _, target := range st.Transitions(symbol) {
				next.Insert(int(target))
			}
		}
		active = epsilonClosure(n, intsToStateIDs(next.Values()))
		if active.IsEmpty() {
			return false
		}
	}

	for _, id := range active.Values() {
		if n.IsFinal(automaton.StateID(id)) {
			return true
		}
	}
	return false
}

func intsToStateIDs(ids []int) []automaton.StateID {
	out := make([]automaton.StateID, len(ids))
	for i, id := range ids {
		out[i] = automaton.StateID(id)
	}
	return out
}
