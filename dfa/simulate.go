package dfa

import "github.com/coregx/formallang/automaton"

// Accepts simulates d against input: starting from the start state, it
// advances one byte at a time, rejecting immediately if a (state, byte)
// transition is undefined, and accepts iff the terminal state is final.
func Accepts(d *automaton.DFA, input string) bool {
	current := d.Start
	for i := 0; i < len(input); i++ {
		state := d.State(current)
		if state == nil {
			return false
		}
		next, ok := state.Transition(input[i])
		if !ok {
			return false
		}
		current = next
	}
	state := d.State(current)
	return state != nil && state.Final
}

// Trace simulates d against input and returns the sequence of state IDs
// visited: the start state first, then the successor after each byte
// consumed. The trace stops early — as a prefix of the full input — the
// moment a (state, byte) transition is undefined; it never records an
// undefined transition.
func Trace(d *automaton.DFA, input string) []automaton.StateID {
	path := []automaton.StateID{d.Start}
	current := d.Start

	for i := 0; i < len(input); i++ {
		state := d.State(current)
		if state == nil {
			break
		}
		next, ok := state.Transition(input[i])
		if !ok {
			break
		}
		current = next
		path = append(path, current)
	}

	return path
}
