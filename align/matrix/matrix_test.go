package matrix_test

import (
	"testing"

	"github.com/bebop/ednafull-sw/align/matrix"
)

func TestScoreIdenticalStandardBases(t *testing.T) {
	for _, b := range []byte{'A', 'C', 'G', 'T'} {
		if got := matrix.Score(b, b); got != 5 {
			t.Errorf("Score(%q, %q) = %d, want 5", b, b, got)
		}
	}
}

func TestScoreStandardMismatches(t *testing.T) {
	cases := []struct {
		a, b byte
		want int64
	}{
		{'A', 'C', -4},
		{'A', 'G', -4},
		{'C', 'T', -4},
		{'G', 'T', -4},
	}
	for _, c := range cases {
		if got := matrix.Score(c.a, c.b); got != c.want {
			t.Errorf("Score(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
		if got := matrix.Score(c.b, c.a); got != c.want {
			t.Errorf("Score(%q, %q) = %d, want %d (symmetry)", c.b, c.a, got, c.want)
		}
	}
}

func TestScoreAmbiguityCodes(t *testing.T) {
	cases := []struct {
		a, b byte
		want int64
	}{
		{'A', 'W', 1},
		{'A', 'R', 1},
		{'A', 'N', -2},
		{'G', 'S', 1},
		{'N', 'N', -1},
		{'Y', 'Y', -1},
	}
	for _, c := range cases {
		if got := matrix.Score(c.a, c.b); got != c.want {
			t.Errorf("Score(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestScoreCasePreservingLookup(t *testing.T) {
	if got := matrix.Score('a', 'a'); got != 5 {
		t.Errorf("Score('a','a') = %d, want 5", got)
	}
	if got := matrix.Score('a', 'A'); got != matrix.Score('A', 'a') {
		t.Errorf("Score('a','A') = %d != Score('A','a') = %d", got, matrix.Score('A', 'a'))
	}
}

func TestScoreUnrecognizedByteIsZero(t *testing.T) {
	if got := matrix.Score('!', 'A'); got != 0 {
		t.Errorf("Score('!','A') = %d, want 0", got)
	}
}
