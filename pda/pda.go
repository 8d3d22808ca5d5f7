// Package pda demonstrates a stack-based pushdown automaton recognizing
// aⁿbⁿ, independent of the NFA/DFA pipeline built elsewhere in this
// module: push a marker for every leading 'a', pop one for every
// following 'b', and reject the moment a 'b' arrives with nothing left
// to pop.
package pda

import "fmt"

// Run recognizes aⁿbⁿ and returns whether input was accepted along with a
// step-by-step log of every push, pop, and the specific rejection reason
// when one occurs.
//
//  1. While the next input byte is 'a': push a marker, log "push".
//  2. Once a non-'a' byte is seen, while the next input byte is 'b': if the
//     stack is empty, log the rejection and stop; otherwise pop, log "pop".
//  3. Accept iff every input byte was consumed by one of the two runs above
//     and the stack is empty afterward; otherwise log which condition
//     failed.
func Run(input string) (accepted bool, log []string) {
	var stack []byte
	i := 0

	for i < len(input) && input[i] == 'a' {
		stack = append(stack, 'a')
		log = append(log, fmt.Sprintf("push (stack depth %d)", len(stack)))
		i++
	}

	for i < len(input) && input[i] == 'b' {
		if len(stack) == 0 {
			log = append(log, "reject: 'b' with empty stack")
			return false, log
		}
		stack = stack[:len(stack)-1]
		log = append(log, fmt.Sprintf("pop (stack depth %d)", len(stack)))
		i++
	}

	if i != len(input) {
		log = append(log, fmt.Sprintf("reject: input not fully consumed at byte %d", i))
		return false, log
	}
	if len(stack) != 0 {
		log = append(log, fmt.Sprintf("reject: stack not empty (depth %d)", len(stack)))
		return false, log
	}

	log = append(log, "accept")
	return true, log
}
