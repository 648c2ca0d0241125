package align

// similarity reports the normalised Levenshtein similarity of a and b: 1
// minus the edit distance divided by the longer string's length, so
// identical strings score 1.0 and completely disjoint strings of equal
// length score close to 0.0. Two empty strings are defined as identical
// (score 1.0).
//
// Used only by the ReplacedComment edge (spec §4.2), to decide whether two
// comment atoms are similar enough to treat as "the same comment, edited"
// rather than one deletion plus one insertion.
//
// Time complexity:   O(N*M) where N=len(a), M=len(b).
// Memory complexity: O(min(N,M)), using the same rolling-two-row technique
// as dtw.DTW rather than a full backtrace matrix — the caller only needs
// the final score, never an alignment path.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)

	if n == 0 && m == 0 {
		return 1.0
	}
	if n == 0 || m == 0 {
		return 0.0
	}

	// Keep ra the shorter sequence so prevRow/currRow are O(min(N,M)).
	if n > m {
		ra, rb = rb, ra
		n, m = m, n
	}

	prevRow := make([]int, n+1)
	currRow := make([]int, n+1)
	for i := 0; i <= n; i++ {
		prevRow[i] = i
	}

	for j := 1; j <= m; j++ {
		currRow[0] = j
		for i := 1; i <= n; i++ {
			substCost := 1
			if ra[i-1] == rb[j-1] {
				substCost = 0
			}
			currRow[i] = min3(
				prevRow[i]+1,        // deletion
				currRow[i-1]+1,      // insertion
				prevRow[i-1]+substCost, // substitution
			)
		}
		prevRow, currRow = currRow, prevRow
	}

	distance := prevRow[n]
	longest := m
	return 1.0 - float64(distance)/float64(longest)
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
