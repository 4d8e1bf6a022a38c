package fasta_test

import (
	"strings"
	"testing"

	"github.com/bebop/ednafull-sw/bio/fasta"
)

func TestExtractQuerySingleRecord(t *testing.T) {
	input := ">ref1 a test reference\nACGTACGT\nACGT\n"
	record, err := fasta.ExtractQuery(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Identifier != ">ref1 a test reference" {
		t.Errorf("Identifier = %q, want leading '>' preserved", record.Identifier)
	}
	if record.Sequence != "ACGTACGTACGT" {
		t.Errorf("Sequence = %q, want %q", record.Sequence, "ACGTACGTACGT")
	}
}

func TestExtractQueryStopsAtBlankLine(t *testing.T) {
	input := ">ref1\nACGT\n\n>ref2\nTTTT\n"
	record, err := fasta.ExtractQuery(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Sequence != "ACGT" {
		t.Errorf("Sequence = %q, want %q", record.Sequence, "ACGT")
	}
}

func TestExtractQueryStopsAtNextIdentifier(t *testing.T) {
	input := ">ref1\nACGT\n>ref2\nTTTT\n"
	record, err := fasta.ExtractQuery(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Sequence != "ACGT" {
		t.Errorf("Sequence = %q, want %q", record.Sequence, "ACGT")
	}
}

func TestExtractQuerySkipsCommentsAndStripsCR(t *testing.T) {
	input := "; a comment\r\n>ref1\r\nACGT\r\nACGT\r\n"
	record, err := fasta.ExtractQuery(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Identifier != ">ref1" {
		t.Errorf("Identifier = %q, want %q", record.Identifier, ">ref1")
	}
	if record.Sequence != "ACGTACGT" {
		t.Errorf("Sequence = %q, want %q", record.Sequence, "ACGTACGT")
	}
}

func TestExtractQueryMissingIdentifierErrors(t *testing.T) {
	if _, err := fasta.ExtractQuery(strings.NewReader("ACGT\n")); err == nil {
		t.Fatal("expected an error for a sequence with no leading identifier")
	}
}

func TestToken(t *testing.T) {
	cases := map[string]string{
		">ref1 a test reference": "ref1",
		">ref1":                  "ref1",
		"ref1 extra":             "ref1",
		"":                       "",
	}
	for in, want := range cases {
		if got := fasta.Token(in); got != want {
			t.Errorf("Token(%q) = %q, want %q", in, got, want)
		}
	}
}
