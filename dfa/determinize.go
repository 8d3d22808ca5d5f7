// Package dfa implements subset construction over an automaton.NFA, plus
// the simulator and tracer that walk the resulting automaton.DFA against
// an input string.
//
// Determinization keeps a worklist of NFA-state subsets, each identified
// by a canonical key, and explores it breadth-first until every reachable
// subset has been turned into a DFA state.
package dfa

import (
	"github.com/coregx/formallang/automaton"
	"github.com/coregx/formallang/internal/stateset"
)

// epsilonClosure returns the set of NFA states reachable from any member of
// seeds by following zero or more epsilon edges.
func epsilonClosure(n *automaton.NFA, seeds []automaton.StateID) *stateset.Set {
	closure := stateset.New(n.NumStates())
	stack := append([]automaton.StateID(nil), seeds...)

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

func anyFinal(n *automaton.NFA, subset *stateset.Set) bool {
	for _, id := range subset.Values() {
		if n.IsFinal(automaton.StateID(id)) {
			return true
		}
	}
	return false
}

// Determinize converts n into a DFA by subset construction: each DFA
// state is the epsilon-closure of an NFA-state subset, keyed by the
// subset's sorted NFA-state-ID tuple so that two worklist entries
// reaching the same subset collapse to the same DFA id. DFA ids are
// assigned in first-discovery order starting from the start subset at id
// 0, and the NFA's alphabet is walked in ascending byte order so the
// result is fully deterministic.
func Determinize(n *automaton.NFA) *automaton.DFA {
	d := automaton.NewDFA()
	alphabet := n.Alphabet()

	startSubset := epsilonClosure(n, []automaton.StateID{n.Start})
	keyToID := make(map[string]automaton.StateID)

	startKey := startSubset.Key()
	d.Start = 0
	keyToID[startKey] = 0
	d.AddState(0, anyFinal(n, startSubset))

	type worklistEntry struct {
		id     automaton.StateID
		subset *stateset.Set
	}
	worklist := []worklistEntry{{id: 0, subset: startSubset}}

	for len(worklist) > 0 {
		entry := worklist[0]
		worklist = worklist[1:]

		for _, symbol := range alphabet {
			var targets []automaton.StateID
			for _, sid := range entry.subset.Values() {
				st := n.State(automaton.StateID(sid))
				if st == nil {
					continue
				}
				targets = append(targets, st.Transitions(symbol)...)
			}
			if len(targets) == 0 {
				continue
			}

			closure := epsilonClosure(n, targets)
			if closure.IsEmpty() {
				continue
			}
			key := closure.Key()

			id, known := keyToID[key]
			if !known {
				id = automaton.StateID(len(keyToID))
				keyToID[key] = id
				d.AddState(id, anyFinal(n, closure))
				worklist = append(worklist, worklistEntry{id: id, subset: closure})
			}

			d.AddTransition(entry.id, symbol, id)
		}
	}

	return d
}
