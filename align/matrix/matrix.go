/*
Package matrix provides the EDNAFULL (NUC4.4) nucleotide substitution matrix
used by the Smith-Waterman scoring kernel.

The matrix is specified sparsely, as pairs of IUPAC nucleotide codes and
their EMBOSS EDNAFULL scores, the same way poly/align/matrix builds a
SubstitutionMatrix from symbol/score tables rather than hand-writing a dense
grid. At package init time the sparse table is expanded into a dense
lookup indexed directly by ASCII byte value, so Score is a single array
read with no map lookup or branching on the hot path, with both the
canonical upper-case codes and their lower-case forms populated so Score
stays total over every byte a caller might pass.
*/
package matrix

// dimension spans the full byte range so Score can never index out of
// bounds, for either an uppercase IUPAC code or its lower-case form (the
// highest populated index is lower-case 'y' = 121).
const dimension = 256

// ednafull holds every (upper, upper) pair's score once; lower-case rows and
// columns, and the reverse of each pair, are filled in at init time from this
// list so the table only needs to be written down a single time.
var ednafull = []struct {
	a, b  byte
	score int64
}{
	{'A', 'A', 5}, {'A', 'T', -4}, {'A', 'G', -4}, {'A', 'C', -4},
	{'A', 'S', -4}, {'A', 'W', 1}, {'A', 'R', 1}, {'A', 'Y', -4},
	{'A', 'K', -4}, {'A', 'M', 1}, {'A', 'B', -4}, {'A', 'V', -1},
	{'A', 'H', -1}, {'A', 'D', -1}, {'A', 'N', -2}, {'A', 'U', -4},

	{'T', 'T', 5}, {'T', 'G', -4}, {'T', 'C', -4}, {'T', 'S', -4},
	{'T', 'W', 1}, {'T', 'R', -4}, {'T', 'Y', 1}, {'T', 'K', 1},
	{'T', 'M', -4}, {'T', 'B', -1}, {'T', 'V', -4}, {'T', 'H', -1},
	{'T', 'D', -1}, {'T', 'N', -2}, {'T', 'U', 5},

	{'G', 'G', 5}, {'G', 'C', -4}, {'G', 'S', 1}, {'G', 'W', -4},
	{'G', 'R', 1}, {'G', 'Y', -4}, {'G', 'K', 1}, {'G', 'M', -4},
	{'G', 'B', -1}, {'G', 'V', -1}, {'G', 'H', -4}, {'G', 'D', -1},
	{'G', 'N', -2}, {'G', 'U', -4},

	{'C', 'C', 5}, {'C', 'S', 1}, {'C', 'W', -4}, {'C', 'R', -4},
	{'C', 'Y', 1}, {'C', 'K', -4}, {'C', 'M', 1}, {'C', 'B', -1},
	{'C', 'V', -1}, {'C', 'H', -1}, {'C', 'D', -4}, {'C', 'N', -2},
	{'C', 'U', -4},

	{'S', 'S', -1}, {'S', 'W', -4}, {'S', 'R', -2}, {'S', 'Y', -2},
	{'S', 'K', -2}, {'S', 'M', -2}, {'S', 'B', -1}, {'S', 'V', -1},
	{'S', 'H', -3}, {'S', 'D', -3}, {'S', 'N', -1}, {'S', 'U', -4},

	{'W', 'W', -1}, {'W', 'R', -2}, {'W', 'Y', -2}, {'W', 'K', -2},
	{'W', 'M', -2}, {'W', 'B', -3}, {'W', 'V', -3}, {'W', 'H', -1},
	{'W', 'D', -1}, {'W', 'N', -1}, {'W', 'U', 1},

	{'R', 'R', -1}, {'R', 'Y', -4}, {'R', 'K', -2}, {'R', 'M', -2},
	{'R', 'B', -3}, {'R', 'V', -1}, {'R', 'H', -3}, {'R', 'D', -1},
	{'R', 'N', -1}, {'R', 'U', -4},

	{'Y', 'Y', -1}, {'Y', 'K', -2}, {'Y', 'M', -2}, {'Y', 'B', -1},
	{'Y', 'V', -3}, {'Y', 'H', -1}, {'Y', 'D', -3}, {'Y', 'N', -1},
	{'Y', 'U', 1},

	{'K', 'K', -1}, {'K', 'M', -4}, {'K', 'B', -1}, {'K', 'V', -3},
	{'K', 'H', -3}, {'K', 'D', -1}, {'K', 'N', -1}, {'K', 'U', 1},

	{'M', 'M', -1}, {'M', 'B', -3}, {'M', 'V', -1}, {'M', 'H', -1},
	{'M', 'D', -3}, {'M', 'N', -1}, {'M', 'U', -4},

	{'B', 'B', -1}, {'B', 'V', -2}, {'B', 'H', -2}, {'B', 'D', -2},
	{'B', 'N', -1}, {'B', 'U', -1},

	{'V', 'V', -1}, {'V', 'H', -2}, {'V', 'D', -2}, {'V', 'N', -1},
	{'V', 'U', -4},

	{'H', 'H', -1}, {'H', 'D', -2}, {'H', 'N', -1}, {'H', 'U', -1},

	{'D', 'D', -1}, {'D', 'N', -1}, {'D', 'U', -1},

	{'N', 'N', -1}, {'N', 'U', -2},

	{'U', 'U', 5},
}

// table is the dense, process-scope-immutable lookup. table[int(b)*dimension+int(a)]
// is the EDNAFULL score for the pair (a, b). Bytes outside the recognized
// alphabet, upper or lower case, index cells that default to zero.
var table [dimension * dimension]int64

func init() {
	lower := func(c byte) byte {
		if c >= 'A' && c <= 'Z' {
			return c - 'A' + 'a'
		}
		return c
	}
	set := func(a, b byte, score int64) {
		table[int(b)*dimension+int(a)] = score
		table[int(a)*dimension+int(b)] = score
	}
	for _, e := range ednafull {
		set(e.a, e.b, e.score)
		set(lower(e.a), e.b, e.score)
		set(e.a, lower(e.b), e.score)
		set(lower(e.a), lower(e.b), e.score)
	}
}

// Score returns the EDNAFULL (NUC4.4) substitution score for the ordered
// pair of ASCII byte codes (a, b). It is a total function: byte pairs
// outside the recognized IUPAC nucleotide alphabet return 0, which must not
// be relied on by callers as a dedicated "no match" sentinel, only as the
// bit-exact reproduction of the dense NUC4.4 table's unset cells.
func Score(a, b byte) int64 {
	return table[int(b)*dimension+int(a)]
}

// Name is the substitution matrix name as it appears in pair-format reports.
const Name = "EDNAFULL"
