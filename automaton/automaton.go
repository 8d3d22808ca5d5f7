package automaton

// Automaton is satisfied by both *NFA and *DFA. It lets the graphviz
// exporter and other collaborators accept either kind of automaton through
// one operation, as in the collaborator-facing `export(auto)` signature.
type Automaton interface {
	isAutomaton()
}

var (
	_ Automaton = (*NFA)(nil)
	_ Automaton = (*DFA)(nil)
)
