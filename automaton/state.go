// Package automaton provides the state-graph data model shared by the NFA
// and DFA built elsewhere in this module: states, labeled transitions, and
// epsilon transitions, plus the bookkeeping (alphabet, final-state sets)
// that both a Thompson NFA and a subset-constructed DFA need.
//
// NFA states live in a flat, NFA-owned slice indexed by StateID — an arena,
// not a graph of shared-ownership pointers — and DFA states in a DFA-owned
// map keyed by StateID. Edges reference states by ID,
// so an automaton can be copied, inspected, or garbage collected as one
// unit instead of an arbitrary tangle of cross-referencing pointers.
package automaton

import (
	"fmt"
	"sort"
)

// StateID identifies a state within the NFA or DFA that owns it. IDs are
// dense: a freshly built automaton with N states uses IDs [0, N).
type StateID int

// NoState marks "no such state" — it is the Start of a newly created NFA
// or DFA until a start state is set.
const NoState StateID = -1

// State is one node of the state graph: an identity, a finality flag, and
// its outgoing edges. A state may carry both byte-labeled transitions and
// epsilon transitions simultaneously — Thompson fragments for `*` commonly
// produce states with only epsilon edges, while literal fragments produce
// states with exactly one byte-labeled edge.
type State struct {
	ID    StateID
	Final bool

	trans map[byte][]StateID // symbol -> ordered successors
	eps   []StateID          // ordered epsilon successors
}

func newState(id StateID) *State {
	return &State{ID: id}
}

// AddTransition records an edge from this state to target on the given
// symbol. Multiple targets for the same symbol are preserved in insertion
// order, matching the "ordered collection of successor states" in the data
// model.
func (s *State) AddTransition(symbol byte, target StateID) {
	if s.trans == nil {
		s.trans = make(map[byte][]StateID, 1)
	}
	s.trans[symbol] = append(s.trans[symbol], target)
}

// AddEpsilon records an epsilon edge from this state to target.
func (s *State) AddEpsilon(target StateID) {
	s.eps = append(s.eps, target)
}

// Transitions returns the ordered successors on symbol, or nil if there are
// none.
func (s *State) Transitions(symbol byte) []StateID {
	return s.trans[symbol]
}

// Symbols returns the byte-labeled symbols this state transitions on, in
// ascending order.
func (s *State) Symbols() []byte {
	if len(s.trans) == 0 {
		return nil
	}
	out := make([]byte, 0, len(s.trans))
	for sym := range s.trans {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EpsilonTargets returns this state's epsilon successors in insertion order.
func (s *State) EpsilonTargets() []StateID {
	return s.eps
}

// HasEpsilon reports whether this state has any epsilon transitions.
func (s *State) HasEpsilon() bool {
	return len(s.eps) > 0
}

func (s *State) String() string {
	if s.Final {
		return fmt.Sprintf("State(%d, final)", s.ID)
	}
	return fmt.Sprintf("State(%d)", s.ID)
}
