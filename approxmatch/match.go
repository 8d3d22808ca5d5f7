// Package approxmatch finds a pattern inside a text allowing up to k
// Levenshtein edit operations, independent of the NFA/DFA pipeline built
// elsewhere in this module. It runs a classic edit-distance table with
// its first column seeded to zero to allow the match to start at any text offset,
// rather than only at offset zero.
package approxmatch

// Match reports whether pattern occurs in text with at most k edit
// operations (insertion, deletion, substitution — unit cost each), i.e.
// substring search under Levenshtein distance.
//
// Builds an (n+1)x(m+1) table D where n = len(text), m = len(pattern):
//
//	D[0][j] = j                              (deleting the first j pattern bytes)
//	D[i][0] = 0                              (a match may start at any text offset)
//	D[i][j] = D[i-1][j-1]                    if text[i-1] == pattern[j-1]
//	D[i][j] = 1 + min(D[i-1][j], D[i][j-1], D[i-1][j-1])   otherwise
//
// and returns true iff D[i][m] <= k for some row i.
func Match(text, pattern string, k int) bool {
	n := len(text)
	m := len(pattern)

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}

	if prev[m] <= k {
		return true
	}

	for i := 1; i <= n; i++ {
		curr[0] = 0
		for j := 1; j <= m; j++ {
			if text[i-1] == pattern[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min3(prev[j], curr[j-1], prev[j-1])
			}
		}
		if curr[m] <= k {
			return true
		}
		prev, curr = curr, prev
	}

	return false
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
