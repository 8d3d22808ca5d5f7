package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// DFAState is one state of a DFA: an identity, a finality flag, and a
// partial, total-on-observed-alphabet mapping from symbol to successor. A
// missing (state, symbol) entry denotes implicit rejection, not an error.
type DFAState struct {
	ID    StateID
	Final bool

	trans map[byte]StateID
}

func newDFAState(id StateID, final bool) *DFAState {
	return &DFAState{ID: id, Final: final, trans: make(map[byte]StateID)}
}

// Transition returns the successor state for symbol and whether one is
// defined.
func (s *DFAState) Transition(symbol byte) (StateID, bool) {
	id, ok := s.trans[symbol]
	return id, ok
}

// Symbols returns the symbols this state has a defined transition for, in
// ascending order.
func (s *DFAState) Symbols() []byte {
	out := make([]byte, 0, len(s.trans))
	for b := range s.trans {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DFA is a deterministic finite automaton built by subset construction: a
// start state ID (NoState if absent), a map from state ID to state record,
// and the input alphabet. Every (state, symbol) maps to at most one
// successor — an absent entry means the DFA rejects on that symbol from
// that state.
type DFA struct {
	Start StateID

	states   map[StateID]*DFAState
	order    []StateID // insertion order; States sorts a copy
	alphabet map[byte]bool
}

// NewDFA returns an empty DFA with no start state.
func NewDFA() *DFA {
	return &DFA{
		Start:    NoState,
		states:   make(map[StateID]*DFAState),
		alphabet: make(map[byte]bool),
	}
}

// AddState creates a new DFA state record with the given ID and finality,
// and returns it. Calling AddState with an ID already present overwrites
// the prior record.
func (d *DFA) AddState(id StateID, final bool) *DFAState {
	if _, exists := d.states[id]; !exists {
		d.order = append(d.order, id)
	}
	s := newDFAState(id, final)
	d.states[id] = s
	return s
}

// State returns the state with the given ID, or nil if absent.
func (d *DFA) State(id StateID) *DFAState {
	return d.states[id]
}

// States returns all DFA states in ascending ID order.
func (d *DFA) States() []*DFAState {
	ids := make([]StateID, len(d.order))
	copy(ids, d.order)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*DFAState, len(ids))
	for i, id := range ids {
		out[i] = d.states[id]
	}
	return out
}

// NumStates returns the number of states in the DFA.
func (d *DFA) NumStates() int {
	return len(d.states)
}

// Finals returns the IDs of all final states, in ascending order.
func (d *DFA) Finals() []StateID {
	var out []StateID
	for _, s := range d.States() {
		if s.Final {
			out = append(out, s.ID)
		}
	}
	return out
}

// AddTransition records an edge from the state `from` to `to` on symbol,
// and extends the observed alphabet with symbol. It is a no-op if `from`
// has not been added via AddState.
func (d *DFA) AddTransition(from StateID, symbol byte, to StateID) {
	if s, ok := d.states[from]; ok {
		s.trans[symbol] = to
		d.alphabet[symbol] = true
	}
}

// Alphabet returns the symbols observed during construction, in ascending
// byte order.
func (d *DFA) Alphabet() []byte {
	out := make([]byte, 0, len(d.alphabet))
	for b := range d.alphabet {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (d *DFA) isAutomaton() {}

func (d *DFA) String() string {
	finals := d.Finals()
	parts := make([]string, len(finals))
	for i, f := range finals {
		parts[i] = fmt.Sprintf("%d", f)
	}
	return fmt.Sprintf("DFA{states=%d, start=%d, finals=[%s]}",
		len(d.states), d.Start, strings.Join(parts, ","))
}
