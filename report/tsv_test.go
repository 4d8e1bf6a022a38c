package report_test

import (
	"strings"
	"testing"

	"github.com/bebop/ednafull-sw/align"
	"github.com/bebop/ednafull-sw/report"
	"github.com/google/go-cmp/cmp"
)

func TestWriteTSVHeader(t *testing.T) {
	var b strings.Builder
	if err := report.WriteTSVHeader(&b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.String(); got != report.TSVHeader {
		t.Errorf("header = %q, want %q", got, report.TSVHeader)
	}
	if !strings.HasSuffix(b.String(), "\n") {
		t.Error("header must end with a newline")
	}
}

func TestWriteTSVRow(t *testing.T) {
	var b strings.Builder
	row := report.TSVRow{
		ReferenceIdentifier: "ref1",
		SequenceIdentifier:  "read1",
		Score:               13,
		GapPenalty:          2,
		MatrixName:          "EDNAFULL",
		TraceX:              "GTTGAC",
		TraceY:              "GTT-AC",
		Stats:               align.CountStats("GTTGAC", "GTT-AC"),
		Quality:             "IIIIII",
	}
	if err := report.WriteTSVRow(&b, row); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "ref1\tread1\t13\t2\tEDNAFULL\t6\t4\t1\t1\tGTTGAC\tGTT-AC\tIIIIII\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTSVRowReverseComplementPrefix(t *testing.T) {
	var b strings.Builder
	row := report.TSVRow{
		ReferenceIdentifier: "Reverse_Complement_ref1",
		SequenceIdentifier:  "read1",
		TraceX:              "AC",
		TraceY:              "AC",
		Stats:               align.CountStats("AC", "AC"),
	}
	if err := report.WriteTSVRow(&b, row); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(b.String(), "Reverse_Complement_ref1\t") {
		t.Errorf("row = %q, want Reverse_Complement_ prefix", b.String())
	}
}
