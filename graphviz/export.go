// Package graphviz renders an automaton.NFA or automaton.DFA as a DOT
// digraph description: a left-to-right layout hint, a circular default
// node shape with final states rendered as a double circle, and an
// invisible start node feeding an edge into the true start state.
package graphviz

import (
	"fmt"
	"strings"

	"github.com/coregx/formallang/automaton"
)

// Export produces a textual DOT digraph for a, following the transitions
// and epsilon edges (NFA only) in the order the data model already
// exposes them: all-states order for an NFA, ascending id order for a
// DFA, and ascending symbol order within a state.
func Export(a automaton.Automaton) string {
	switch v := a.(type) {
	case *automaton.NFA:
		return exportNFA(v)
	case *automaton.DFA:
		return exportDFA(v)
	default:
		return ""
	}
}

func exportNFA(n *automaton.NFA) string {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=circle];\n")

	finals := make(map[automaton.StateID]bool)
	for _, f := range n.Finals() {
		finals[f] = true
		fmt.Fprintf(&b, "  %d [shape=doublecircle];\n", f)
	}

	b.WriteString("  start [shape=none, label=\"\"];\n")
	fmt.Fprintf(&b, "  start -> %d;\n", n.Start)

	for _, s := range n.States() {
		for _, sym := range s.Symbols() {
			for _, target := range s.Transitions(sym) {
				fmt.Fprintf(&b, "  %d -> %d [label=%q];\n", s.ID, target, string(sym))
			}
		}
		for _, target := range s.EpsilonTargets() {
			fmt.Fprintf(&b, "  %d -> %d [label=\"ε\"];\n", s.ID, target)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func exportDFA(d *automaton.DFA) string {
	var b strings.Builder
	b.WriteString("digraph DFA {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=circle];\n")

	for _, f := range d.Finals() {
		fmt.Fprintf(&b, "  %d [shape=doublecircle];\n", f)
	}

	b.WriteString("  start [shape=none, label=\"\"];\n")
	fmt.Fprintf(&b, "  start -> %d;\n", d.Start)

	for _, s := range d.States() {
		for _, sym := range s.Symbols() {
			target, _ := s.Transition(sym)
			fmt.Fprintf(&b, "  %d -> %d [label=%q];\n", s.ID, target, string(sym))
		}
	}

	b.WriteString("}\n")
	return b.String()
}
