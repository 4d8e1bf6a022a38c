package align

// Trace walks a scored Matrix backward from (i, j) — which must be the cell
// Argmax returned — and reconstructs the optimal local alignment as a pair
// of equal-length strings over the input alphabet plus '-'.
//
// At each cell the three possible predecessor-plus-edit moves are checked
// in a fixed priority order, and the first one that reproduces the current
// cell's score is taken. This order is semantic, not cosmetic: it is what
// picks a single alignment out of several equal-scoring ones, and swapping
// it changes the output.
//
//  1. left gap (gap in X):  Z[i, j-1] - gapPenalty == Z[i, j]
//  2. diagonal (match/mismatch): Z[i-1, j-1] + score(X[i], Y[j]) == Z[i, j]
//  3. up gap (gap in Y): Z[i-1, j] - gapPenalty == Z[i, j]
//
// Traceback stops when it reaches a matrix boundary, when the diagonal
// predecessor of an emitted match/mismatch column is zero, or when it would
// otherwise step onto a zero-valued cell. endI, endJ is the cell where the
// walk stopped — the lower-left corner of the local alignment.
func Trace(seqX, seqY []byte, z *Matrix, i, j int, score ScoreFunc, gapPenalty int64) (traceX, traceY string, endI, endJ int) {
	// Sized to the triangle-inequality upper bound on alignment length.
	bufX := make([]byte, 0, len(seqX)+len(seqY)+1)
	bufY := make([]byte, 0, len(seqX)+len(seqY)+1)

walk:
	for {
		// Boundary check happens before the recurrence rules even when a
		// rule would otherwise match; this is the source's own ambiguity
		// and is preserved rather than "fixed".
		if i == 0 || j == 0 {
			bufX = append(bufX, seqX[i])
			bufY = append(bufY, seqY[j])
			break
		}

		v := z.At(i, j)
		if v == 0 {
			break
		}

		switch {
		case z.At(i, j-1)-gapPenalty == v:
			bufX = append(bufX, '-')
			bufY = append(bufY, seqY[j])
			j--
		case z.At(i-1, j-1)+score(seqX[i], seqY[j]) == v:
			bufX = append(bufX, seqX[i])
			bufY = append(bufY, seqY[j])
			if z.At(i-1, j-1) == 0 {
				break walk
			}
			i--
			j--
		case z.At(i-1, j)-gapPenalty == v:
			bufX = append(bufX, seqX[i])
			bufY = append(bufY, '-')
			i--
		default:
			panic("align: inconsistent scoring matrix in traceback")
		}
	}

	reverse(bufX)
	reverse(bufY)
	return string(bufX), string(bufY), i, j
}

// reverse reverses b in place; applying it twice is an involution and
// restores the original order.
func reverse(b []byte) {
	for lo, hi := 0, len(b)-1; lo < hi; lo, hi = lo+1, hi-1 {
		b[lo], b[hi] = b[hi], b[lo]
	}
}
