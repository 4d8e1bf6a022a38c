/*
Package transform provides DNA sequence transformations needed to drive the
reverse-complement alignment pass: Complement, Reverse, and
ReverseComplement.

This is poly/transform's own complement table (one entry per IUPAC code,
both cases), adapted to the one behavior poly's version doesn't have: an
out-of-alphabet base is a fatal input error here rather than a silent
zero-value rune, per the reverse-complement table's documented contract.
*/
package transform

import "fmt"

// complementBaseRuneMap provides a 1:1 mapping between IUPAC nucleotide
// codes and their complements, case preserved.
var complementBaseRuneMap = map[rune]rune{
	'A': 'T',
	'B': 'V',
	'C': 'G',
	'D': 'H',
	'G': 'C',
	'H': 'D',
	'K': 'M',
	'M': 'K',
	'N': 'N',
	'R': 'Y',
	'S': 'S',
	'T': 'A',
	'U': 'A',
	'V': 'B',
	'W': 'W',
	'Y': 'R',
	'a': 't',
	'b': 'v',
	'c': 'g',
	'd': 'h',
	'g': 'c',
	'h': 'd',
	'k': 'm',
	'm': 'k',
	'n': 'n',
	'r': 'y',
	's': 's',
	't': 'a',
	'u': 'a',
	'v': 'b',
	'w': 'w',
	'y': 'r',
}

// ComplementBase returns the complement of a single IUPAC base, or an error
// if basePair is outside the recognized alphabet.
func ComplementBase(basePair rune) (rune, error) {
	complement, ok := complementBaseRuneMap[basePair]
	if !ok {
		return 0, fmt.Errorf("transform: %q is not a recognized IUPAC nucleotide code", basePair)
	}
	return complement, nil
}

// Complement returns sequence with every base swapped for its complement.
func Complement(sequence string) (string, error) {
	runes := []rune(sequence)
	out := make([]rune, len(runes))
	for i, base := range runes {
		complement, err := ComplementBase(base)
		if err != nil {
			return "", err
		}
		out[i] = complement
	}
	return string(out), nil
}

// Reverse returns sequence reversed.
func Reverse(sequence string) string {
	runes := []rune(sequence)
	for lo, hi := 0, len(runes)-1; lo < hi; lo, hi = lo+1, hi-1 {
		runes[lo], runes[hi] = runes[hi], runes[lo]
	}
	return string(runes)
}

// ReverseComplement returns the reverse complement of sequence: sequence
// reversed, then every base swapped for its complement.
func ReverseComplement(sequence string) (string, error) {
	complement, err := Complement(sequence)
	if err != nil {
		return "", err
	}
	return Reverse(complement), nil
}
