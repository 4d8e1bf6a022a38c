package report

import (
	"fmt"
	"io"

	"github.com/bebop/ednafull-sw/align"
)

// TSVHeader is the single header line emitted once, before the first row,
// when the driver runs in TSV mode.
const TSVHeader = "Reference Sequence Identifier\tSequence Identifier\tSmith-Waterman Score\tLinear Gap Penalty\tSubstitution Matrix\tAlignment Length\tAlignment Identities\tAlignment Gaps\tAlignment Mismatches\tReference Sequence Alignment\tSequence Alignment\tSequence Alignment Base Quality\n"

// TSVRow is one alignment record in TSV form. ReferenceIdentifier already
// carries the "Reverse_Complement_" prefix for the reverse-complement pass,
// and Quality is the already-extracted substring of the read's FASTQ
// quality line spanning the alignment.
type TSVRow struct {
	ReferenceIdentifier string
	SequenceIdentifier  string
	Score               int64
	GapPenalty          int64
	MatrixName          string
	TraceX              string
	TraceY              string
	Stats               align.Stats
	Quality             string
}

// WriteTSVHeader writes the fixed TSV header line.
func WriteTSVHeader(w io.Writer) error {
	_, err := io.WriteString(w, TSVHeader)
	return err
}

// WriteTSVRow writes one tab-separated alignment record.
func WriteTSVRow(w io.Writer, row TSVRow) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
		row.ReferenceIdentifier,
		row.SequenceIdentifier,
		row.Score,
		row.GapPenalty,
		row.MatrixName,
		len(row.TraceX),
		row.Stats.Identical,
		row.Stats.GapsX+row.Stats.GapsY,
		row.Stats.Mismatches,
		row.TraceX,
		row.TraceY,
		row.Quality,
	)
	return err
}
