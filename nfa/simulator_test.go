package nfa

import (
	"testing"

	"github.com/coregx/formallang/automaton"
)

func TestAcceptsDirectEpsilonToFinal(t *testing.T) {
	n := automaton.NewNFA()
	s0 := n.AddState()
	s1 := n.AddState()
	n.AddEpsilon(s0, s1)
	n.SetFinal(s1, true)
	n.Start = s0

	if !Accepts(n, "") {
		t.Error("expected empty input to be accepted via epsilon closure")
	}
}

func TestAcceptsDeadEndOnUnknownSymbol(t *testing.T) {
	n := automaton.NewNFA()
	s0 := n.AddState()
	s1 := n.AddState()
	n.AddTransition(s0, 'a', s1)
	n.SetFinal(s1, true)
	n.Start = s0

	if Accepts(n, "z") {
		t.Error("expected no transition on 'z' to reject")
	}
}

func TestAcceptsBranchingAlternatives(t *testing.T) {
	n := automaton.NewNFA()
	s0 := n.AddState()
	s1 := n.AddState()
	s2 := n.AddState()
	n.AddTransition(s0, 'a', s1)
	n.AddTransition(s0, 'b', s2)
	n.SetFinal(s1, true)
	n.SetFinal(s2, true)
	n.Start = s0

	if !Accepts(n, "a") || !Accepts(n, "b") {
		t.Error("expected both branches to be accepted")
	}
	if Accepts(n, "c") {
		t.Error("expected unmatched symbol to be rejected")
	}
}
