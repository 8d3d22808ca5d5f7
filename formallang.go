// Package formallang is a small formal-language toolkit: a regular
// expression compiler and automaton simulator built from Thompson's
// construction and subset construction, plus two independent engines that
// share its surface without depending on its automata — an edit-distance
// approximate matcher and a pushdown-automaton demonstrator for aⁿbⁿ.
//
// Compile turns a regex string into an NFA; Determinize turns that NFA
// into a DFA. Either automaton can be simulated directly or exported to a
// textual graph description. ApproxMatch and RunPDA are unrelated to the
// regex pipeline and take raw strings.
package formallang

import (
	"github.com/coregx/formallang/approxmatch"
	"github.com/coregx/formallang/automaton"
	"github.com/coregx/formallang/dfa"
	"github.com/coregx/formallang/graphviz"
	"github.com/coregx/formallang/nfa"
	"github.com/coregx/formallang/pda"
	"github.com/coregx/formallang/syntax"
)

// Compile turns a regex source string into an NFA via the preprocessor,
// shunting-yard, and Thompson construction stages. It returns a
// *syntax.MalformedRegexError (checkable with errors.Is against one of
// syntax's sentinel causes) if the pattern is malformed.
func Compile(pattern string) (*automaton.NFA, error) {
	sanitized := syntax.Sanitize(pattern)
	withConcat := syntax.InsertConcatenation(sanitized)
	postfix, err := syntax.ToPostfix(withConcat)
	if err != nil {
		return nil, err
	}
	return nfa.BuildFromPostfix(postfix)
}

// Determinize builds a canonical DFA from an NFA via subset construction.
func Determinize(n *automaton.NFA) *automaton.DFA {
	return dfa.Determinize(n)
}

// NFAAccepts reports whether n accepts input, using ε-closure-based
// simulation.
func NFAAccepts(n *automaton.NFA, input string) bool {
	return nfa.Accepts(n, input)
}

// DFAAccepts reports whether d accepts input.
func DFAAccepts(d *automaton.DFA, input string) bool {
	return dfa.Accepts(d, input)
}

// DFATrace returns the sequence of state IDs d visits while consuming
// input, stopping early as soon as a transition is undefined.
func DFATrace(d *automaton.DFA, input string) []automaton.StateID {
	return dfa.Trace(d, input)
}

// Export produces a textual DOT digraph description of a, which may be
// either an *automaton.NFA or an *automaton.DFA.
func Export(a automaton.Automaton) string {
	return graphviz.Export(a)
}

// ApproxMatch reports whether pattern occurs in text within k edit
// operations, independent of the automaton pipeline above.
func ApproxMatch(text, pattern string, k int) bool {
	return approxmatch.Match(text, pattern, k)
}

// RunPDA recognizes aⁿbⁿ against input using a stack-based pushdown
// automaton, independent of the automaton pipeline above. It returns
// whether input was accepted and a step-by-step log of the decision.
func RunPDA(input string) (accepted bool, log []string) {
	return pda.Run(input)
}
