/*
Package ednafullsw implements the pieces of a Smith-Waterman local
alignment pipeline for aligning short sequencing reads against a single
reference sequence: the EDNAFULL substitution matrix (align/matrix), the
linear-gap scoring kernel and traceback engine (align), DNA base
complementing (transform), minimal FASTA/FASTQ readers (bio/fasta,
bio/fastq), the TSV and EMBOSS-style pair report writers (report), and the
command-line driver that wires them together (cmd/ednafull-sw).

This root package exists only to host package-level documentation; all
functionality lives in the subpackages above.
*/
package ednafullsw
