package nfa

import (
	"testing"

	"github.com/coregx/formallang/automaton"
)

func TestNormalizeStartIsZero(t *testing.T) {
	n := automaton.NewNFA()
	s2 := n.AddState()
	s1 := n.AddState()
	s0 := n.AddState()
	n.AddEpsilon(s0, s1)
	n.AddTransition(s1, 'a', s2)
	n.SetFinal(s2, true)
	n.Start = s0

	out := Normalize(n)
	if out.Start != 0 {
		t.Fatalf("expected normalized start 0, got %d", out.Start)
	}
	if out.NumStates() != 3 {
		t.Fatalf("expected 3 reachable states, got %d", out.NumStates())
	}
	if !Accepts(out, "a") {
		t.Error("expected normalized NFA to still accept \"a\"")
	}
}

func TestNormalizeDropsUnreachableStates(t *testing.T) {
	n := automaton.NewNFA()
	start := n.AddState()
	reachable := n.AddState()
	unreachable := n.AddState()
	_ = unreachable
	n.AddTransition(start, 'x', reachable)
	n.SetFinal(reachable, true)
	n.Start = start

	out := Normalize(n)
	if out.NumStates() != 2 {
		t.Fatalf("expected unreachable state dropped, got %d states", out.NumStates())
	}
}

func TestNormalizeBFSOrdering(t *testing.T) {
	n := automaton.NewNFA()
	a := n.AddState()
	b := n.AddState()
	c := n.AddState()
	n.AddEpsilon(a, b)
	n.AddEpsilon(a, c)
	n.SetFinal(c, true)
	n.Start = a

	out := Normalize(n)
	if out.Start != 0 {
		t.Fatalf("expected start 0, got %d", out.Start)
	}
	if out.NumStates() != 3 {
		t.Fatalf("expected 3 states, got %d", out.NumStates())
	}
	eps := out.State(0).EpsilonTargets()
	if len(eps) != 2 || eps[0] != 1 || eps[1] != 2 {
		t.Errorf("expected start's epsilon targets numbered in discovery order [1 2], got %v", eps)
	}
	if !out.IsFinal(2) {
		t.Error("expected the final state, discovered second, to be numbered 2")
	}
}
