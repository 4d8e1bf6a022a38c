package main

import (
	"fmt"
	"io"
	"time"
)

// progressCheckpointEvery is how many reads (equivalently, FASTQ lines
// divided by four) pass between informational progress lines.
const progressCheckpointEvery = 256

// progressReporter emits a single-line timing checkpoint every
// progressCheckpointEvery reads. It is purely informational: nothing in
// the pipeline depends on it running or on its output being parsed.
type progressReporter struct {
	w     io.Writer
	start time.Time
}

func newProgressReporter(w io.Writer) *progressReporter {
	return &progressReporter{w: w, start: time.Now()}
}

// checkpoint prints a timing line once reads has advanced to a multiple of
// progressCheckpointEvery; it is a no-op otherwise.
func (p *progressReporter) checkpoint(reads uint64) {
	if reads == 0 || reads%progressCheckpointEvery != 0 {
		return
	}
	fmt.Fprintf(p.w, "processed %d reads in %s\n", reads, time.Since(p.start).Round(time.Millisecond))
}
