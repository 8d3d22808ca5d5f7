// Package nfa implements Thompson's construction: consuming a postfix regex
// and assembling a non-deterministic finite automaton one fragment at a
// time, plus BFS ID normalization and the NFA simulator that walks the
// result against an input string.
//
// Every fragment is built purely from literal, epsilon-split, and
// epsilon-loop states — the small set this toolkit's grammar
// (concatenation, alternation, Kleene star, literals) ever needs.
package nfa

import (
	"github.com/coregx/formallang/automaton"
	"github.com/coregx/formallang/syntax"
)

// fragment is an NFA-in-progress piece with a single start state and one or
// more final states. Fragments never copy state — "start" and "finals" are
// indices into the NFA arena under construction, so merging a fragment into
// its parent is a no-op: everything already lives in the same automaton.
type fragment struct {
	start  automaton.StateID
	finals []automaton.StateID
}

// Builder assembles an NFA from a postfix regex stream. Each Builder owns a
// fresh automaton.NFA and a fragment stack; state IDs come from that NFA's
// own state slice, so nothing about ID generation is shared across
// builders or across calls.
type Builder struct {
	nfa   *automaton.NFA
	stack []fragment
}

// NewBuilder returns a Builder with a fresh, empty NFA.
func NewBuilder() *Builder {
	return &Builder{nfa: automaton.NewNFA()}
}

func (b *Builder) push(f fragment) {
	b.stack = append(b.stack, f)
}

// pop removes and returns the top fragment, reporting ok=false if the stack
// is empty.
func (b *Builder) pop() (fragment, bool) {
	if len(b.stack) == 0 {
		return fragment{}, false
	}
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return f, true
}

func (b *Builder) clearFinals(f fragment) {
	for _, id := range f.finals {
		b.nfa.SetFinal(id, false)
	}
}

// literal pushes a two-state fragment `s --symbol--> f` for a single
// alphanumeric byte.
func (b *Builder) literal(symbol byte) {
	s := b.nfa.AddState()
	f := b.nfa.AddState()
	b.nfa.SetFinal(f, true)
	b.nfa.AddTransition(s, symbol, f)
	b.push(fragment{start: s, finals: []automaton.StateID{f}})
}

// concat pops `right` then `left`, wires left's finals to right's start via
// epsilon edges, and pushes the combined fragment. Requires two fragments
// on the stack.
func (b *Builder) concat() error {
	right, ok := b.pop()
	if !ok {
		return errOperandUnderflow()
	}
	left, ok := b.pop()
	if !ok {
		return errOperandUnderflow()
	}

	b.clearFinals(left)
	for _, lf := range left.finals {
		b.nfa.AddEpsilon(lf, right.start)
	}

	b.push(fragment{start: left.start, finals: right.finals})
	return nil
}

// union pops `bottom` then `top`, creates a new split start and a new
// shared final, and wires both operands' starts/finals to them. Requires
// two fragments on the stack.
func (b *Builder) union() error {
	bottom, ok := b.pop()
	if !ok {
		return errOperandUnderflow()
	}
	top, ok := b.pop()
	if !ok {
		return errOperandUnderflow()
	}

	s := b.nfa.AddState()
	f := b.nfa.AddState()
	b.nfa.SetFinal(f, true)

	b.nfa.AddEpsilon(s, top.start)
	b.nfa.AddEpsilon(s, bottom.start)

	b.clearFinals(top)
	for _, tf := range top.finals {
		b.nfa.AddEpsilon(tf, f)
	}
	b.clearFinals(bottom)
	for _, bf := range bottom.finals {
		b.nfa.AddEpsilon(bf, f)
	}

	b.push(fragment{start: s, finals: []automaton.StateID{f}})
	return nil
}

// star pops `inner`, creates a new split start/final pair that both bypass
// and loop back through inner, and pushes the result. Requires one fragment
// on the stack.
func (b *Builder) star() error {
	inner, ok := b.pop()
	if !ok {
		return errOperandUnderflow()
	}

	s := b.nfa.AddState()
	f := b.nfa.AddState()
	b.nfa.SetFinal(f, true)

	b.nfa.AddEpsilon(s, inner.start)
	b.nfa.AddEpsilon(s, f)

	b.clearFinals(inner)
	for _, ifin := range inner.finals {
		b.nfa.AddEpsilon(ifin, inner.start)
		b.nfa.AddEpsilon(ifin, f)
	}

	b.push(fragment{start: s, finals: []automaton.StateID{f}})
	return nil
}

func errOperandUnderflow() error {
	return &syntax.MalformedRegexError{Cause: syntax.ErrOperatorMissingOperand}
}

// BuildFromPostfix consumes a postfix regex stream left to right and
// returns the resulting NFA, with state IDs normalized by BFS from the
// start state.
//
// Returns a *syntax.MalformedRegexError wrapping
// syntax.ErrOperatorMissingOperand if a binary operator is applied with
// fewer than two fragments on the stack, if '*' is applied with none, or if
// the stream finishes with a stack depth other than one. Empty input is a
// degenerate success case: it yields a single-state NFA with no final
// states, which accepts nothing.
func BuildFromPostfix(postfix string) (*automaton.NFA, error) {
	b := NewBuilder()

	if len(postfix) == 0 {
		b.nfa.Start = b.nfa.AddState()
		return b.nfa, nil
	}

	for i := 0; i < len(postfix); i++ {
		c := postfix[i]
		switch c {
		case '.':
			if err := b.concat(); err != nil {
				return nil, err
			}
		case '|':
			if err := b.union(); err != nil {
				return nil, err
			}
		case '*':
			if err := b.star(); err != nil {
				return nil, err
			}
		default:
			b.literal(c)
		}
	}

	result, ok := b.pop()
	if !ok || len(b.stack) != 0 {
		return nil, errOperandUnderflow()
	}

	b.nfa.Start = result.start
	return Normalize(b.nfa), nil
}
