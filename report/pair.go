/*
Package report formats one alignment result — the pair of trace strings and
the stats C5 computed from them — as either an EMBOSS-style "pair" report
(this file) or a TSV row (see tsv.go). Both writers take an already-produced
align.Stats and a pair of trace strings; neither touches the scoring matrix.

This package has no direct teacher ancestor in poly: poly/align and
poly/search/align return a score and nothing else, with no report writer at
all. It is grounded on the shape of poly's other text-emitting packages —
io.go's buffered-Writer-plus-Fprintf style of serialization and gff.go's
use of strings.Builder to assemble a multi-line block before a single write
— applied to the EMBOSS pair layout this driver must reproduce bit-exact.
*/
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bebop/ednafull-sw/align"
)

// rundateLayout reproduces C's "%a %b %d %H:%M:%S %Y" strftime format.
const rundateLayout = "Mon Jan 02 15:04:05 2006"

// PairRecord carries everything the pair writer needs to format one
// alignment. TraceX/StartX name the reference/query side of the alignment
// (the "query" identifier in EMBOSS terms); TraceY/StartY name the read
// side (the "sequence" identifier) — see the doc comment on WritePair for
// why those labels end up crossed in the emitted body.
type PairRecord struct {
	// SequenceIdentifier is the read's identifier token (FASTA/FASTQ '>' or
	// '@' already stripped), printed as "# 1:" and on the trace_Y line.
	SequenceIdentifier string
	// QueryIdentifier is the reference/query identifier token, printed as
	// "# 2:" and on the trace_X line.
	QueryIdentifier string
	MatrixName      string
	GapPenalty      int64
	Score           int64
	TraceX          string
	TraceY          string
	Stats           align.Stats
	// StartX, StartY are the zero-based matrix indices where traceback
	// terminated (align.Trace's endI, endJ) — the position, in the
	// original sequences, of the first character the alignment consumes.
	StartX, StartY int
	// Rundate is stamped by the caller (the driver makes one localtime
	// call per record, per the single-threaded resource model) rather
	// than read here, since this package must stay free of wall-clock
	// access to remain deterministically testable.
	Rundate time.Time
}

// WritePair writes r as one EMBOSS-style pairwise alignment report to w.
//
// The source emits the "sequence" identifier (#1) on the trace_Y line and
// the "query" identifier (#2) on the trace_X line in the body, even though
// X is the reference/query sequence and Y is the read. This crossed
// labelling is part of the wire format, not a bug to quietly fix here.
func WritePair(w io.Writer, r PairRecord) error {
	var b strings.Builder

	length := len(r.TraceX)
	gaps := r.Stats.GapsX + r.Stats.GapsY

	fmt.Fprintln(&b, "########################################")
	fmt.Fprintln(&b, "# Program:  ednafull_linear_smith_waterman")
	fmt.Fprintf(&b, "# Rundate:  %s\n", r.Rundate.Format(rundateLayout))
	fmt.Fprintln(&b, "# Report_file: stdout")
	fmt.Fprintln(&b, "########################################")
	fmt.Fprintln(&b, "#=======================================")
	fmt.Fprintln(&b, "#")
	fmt.Fprintln(&b, "# Aligned_sequences: 2")
	fmt.Fprintf(&b, "# 1: %s\n", r.SequenceIdentifier)
	fmt.Fprintf(&b, "# 2: %s\n", r.QueryIdentifier)
	fmt.Fprintf(&b, "# Matrix: %s\n", r.MatrixName)
	fmt.Fprintf(&b, "# Gap_penalty: %d.0\n", r.GapPenalty)
	fmt.Fprintf(&b, "# Extend_penalty: %d.0\n", r.GapPenalty)
	fmt.Fprintln(&b, "#")
	fmt.Fprintf(&b, "# Length: %d\n", length)
	writeCountLine(&b, "Identity:", r.Stats.Identical, length)
	writeCountLine(&b, "Similarity:", r.Stats.Identical, length)
	writeCountLine(&b, "Gaps:", gaps, length)
	writeCountLine(&b, "Mismatchs:", r.Stats.Mismatches, length)
	fmt.Fprintf(&b, "# Score: %d\n", r.Score)
	fmt.Fprintln(&b, "#")
	fmt.Fprintln(&b, "#")
	fmt.Fprintln(&b, "#=======================================")

	writeBody(&b, r)

	fmt.Fprintln(&b)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "#---------------------------------------")
	fmt.Fprintln(&b, "#---------------------------------------")

	_, err := io.WriteString(w, b.String())
	return err
}

// writeCountLine emits one "# Label:   n/len (pct%)" header line. Labels
// are padded on the right to a shared column width of 12 so the fractions after
// "Identity:", "Similarity:", "Gaps:" and "Mismatchs:" all line up.
func writeCountLine(b *strings.Builder, label string, n, length int) {
	pct := 0.0
	if length > 0 {
		pct = float64(n) / float64(length) * 100
	}
	fmt.Fprintf(b, "# %-12s%d/%d (%.1f%%)\n", label, n, length, pct)
}

func writeBody(b *strings.Builder, r PairRecord) {
	const width = 50
	w := len(r.SequenceIdentifier)
	if len(r.QueryIdentifier) > w {
		w = len(r.QueryIdentifier)
	}

	currentX, currentY := r.StartX, r.StartY
	length := len(r.TraceX)

	for offset := 0; offset < length; offset += width {
		end := offset + width
		if end > length {
			end = length
		}
		segX := r.TraceX[offset:end]
		segY := r.TraceY[offset:end]

		prevX, prevY := currentX, currentY
		currentX += countNonGap(segX)
		currentY += countNonGap(segY)

		startX, startY := prevX, prevY
		if countNonGap(segX) > 0 {
			startX = prevX + 1
		}
		if countNonGap(segY) > 0 {
			startY = prevY + 1
		}

		fmt.Fprintln(b)
		fmt.Fprintln(b)
		fmt.Fprintf(b, "%-*s %20d %s %20d\n", w, r.SequenceIdentifier, startY, segY, currentY)
		fmt.Fprintf(b, "%s %s\n", strings.Repeat(" ", w+21), matchIndicator(segX, segY))
		fmt.Fprintf(b, "%-*s %20d %s %20d\n", w, r.QueryIdentifier, startX, segX, currentX)
	}
}

func countNonGap(segment string) int {
	n := 0
	for i := 0; i < len(segment); i++ {
		if segment[i] != '-' {
			n++
		}
	}
	return n
}

func matchIndicator(segX, segY string) string {
	out := make([]byte, len(segX))
	for k := 0; k < len(segX); k++ {
		if segX[k] == segY[k] && segX[k] != '-' {
			out[k] = '|'
		} else {
			out[k] = ' '
		}
	}
	return string(out)
}
