package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bebop/ednafull-sw/align"
	"github.com/bebop/ednafull-sw/align/matrix"
	"github.com/bebop/ednafull-sw/bio/fasta"
	"github.com/bebop/ednafull-sw/bio/fastq"
	"github.com/bebop/ednafull-sw/report"
	"github.com/bebop/ednafull-sw/transform"
	"github.com/urfave/cli/v2"
)

const defaultGapPenalty = 16

// UsageError is a missing/conflicting CLI option or an unrecognized
// --type value: reported to stdout with a --help suggestion, exit 1.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// IOError wraps a failure to open, read, or write a file, or a quality-line
// substring falling outside its read's bounds. Code is 1 for a setup
// failure (opening the query, reads, or output file, reading the query, or
// reverse-complementing it) and 2 for a failure writing output (the TSV
// header included) or during the per-record alignment loop, matching the
// exit-code contract in the external-interfaces section of this tool's
// design.
type IOError struct {
	Err  error
	Code int
}

func (e *IOError) Error() string { return e.Err.Error() }
func (e *IOError) Unwrap() error { return e.Err }

// alignCommand is the Action for the single top-level command. It is kept
// thin — flag validation and file plumbing only — with the actual pipeline
// living in alignReads so that pipeline can be exercised directly in tests
// without going through *cli.Context.
func alignCommand(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return &UsageError{"expected exactly one argument: the FASTQ reads file"}
	}
	queryPath := c.String("query")
	if queryPath == "" {
		return &UsageError{"missing required flag -q/--query"}
	}
	reportType := c.String("type")
	if reportType != "tsv" && reportType != "pair" {
		return &UsageError{fmt.Sprintf("unknown --type %q: want \"tsv\" or \"pair\"", reportType)}
	}
	gapPenalty := int64(c.Int("gap-penalty"))
	readsPath := c.Args().Get(0)

	queryFile, err := os.Open(queryPath)
	if err != nil {
		return &IOError{err, 1}
	}
	defer queryFile.Close()

	queryRecord, err := fasta.ExtractQuery(queryFile)
	if err != nil {
		return &IOError{fmt.Errorf("reading query %s: %w", queryPath, err), 1}
	}

	readsFile, err := os.Open(readsPath)
	if err != nil {
		return &IOError{err, 1}
	}
	defer readsFile.Close()

	outPath := readsPath + ".sw." + reportType
	outFile, err := os.Create(outPath)
	if err != nil {
		return &IOError{err, 1}
	}
	defer outFile.Close()

	out := bufio.NewWriter(outFile)
	if err := alignReads(c.App.ErrWriter, out, queryRecord, readsFile, reportType, gapPenalty); err != nil {
		return err
	}
	return out.Flush()
}

// alignReads runs the full pipeline: for every read in reads, align it
// against the query and against the query's reverse complement, and emit
// one output record per alignment in the requested reportType. progressW
// receives the informational timing checkpoints.
func alignReads(progressW io.Writer, out io.Writer, query fasta.Record, reads io.Reader, reportType string, gapPenalty int64) error {
	queryToken := fasta.Token(query.Identifier)
	querySeq := []byte(query.Sequence)

	rcQuerySeq, err := transform.ReverseComplement(query.Sequence)
	if err != nil {
		return &IOError{fmt.Errorf("reverse-complementing query: %w", err), 1}
	}
	rcQuerySeqBytes := []byte(rcQuerySeq)

	if reportType == "tsv" {
		if err := report.WriteTSVHeader(out); err != nil {
			return &IOError{err, 2}
		}
	}

	progress := newProgressReporter(progressW)
	parser := fastq.NewParser(reads)
	var count uint64

	for {
		record, err := parser.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return &IOError{fmt.Errorf("reading reads file: %w", err), 2}
		}

		readToken := fasta.Token(record.Identifier)

		if err := emitAlignment(out, alignmentJob{
			referenceIdentifier: queryToken,
			sequenceIdentifier:  readToken,
			seqX:                querySeq,
			seqY:                []byte(record.Sequence),
			quality:             record.Quality,
			gapPenalty:          gapPenalty,
			reportType:          reportType,
		}); err != nil {
			return err
		}

		if err := emitAlignment(out, alignmentJob{
			referenceIdentifier: "Reverse_Complement_" + queryToken,
			sequenceIdentifier:  readToken,
			seqX:                rcQuerySeqBytes,
			seqY:                []byte(record.Sequence),
			quality:             record.Quality,
			gapPenalty:          gapPenalty,
			reportType:          reportType,
		}); err != nil {
			return err
		}

		count++
		progress.checkpoint(count)
	}

	return nil
}

// alignmentJob is everything one forward-or-reverse-complement alignment
// needs. referenceIdentifier already carries the "Reverse_Complement_"
// prefix for the reverse-complement pass.
type alignmentJob struct {
	referenceIdentifier string
	sequenceIdentifier  string
	seqX, seqY          []byte
	quality             string
	gapPenalty          int64
	reportType          string
}

// emitAlignment runs C2+C3+C4+C5 for one job and writes the resulting
// record in the requested format.
func emitAlignment(out io.Writer, job alignmentJob) error {
	z := align.NewMatrix(len(job.seqX), len(job.seqY))
	align.Fill(job.seqX, job.seqY, z, matrix.Score, job.gapPenalty)
	i, j, ok := align.Argmax(z)
	if !ok {
		panic("ednafull-sw: Argmax returned no best cell for a non-empty matrix")
	}
	traceX, traceY, endI, endJ := align.Trace(job.seqX, job.seqY, z, i, j, matrix.Score, job.gapPenalty)
	stats := align.CountStats(traceX, traceY)
	score := z.At(i, j)

	switch job.reportType {
	case "tsv":
		quality, err := qualitySubstring(job.quality, endJ, j)
		if err != nil {
			return &IOError{err, 2}
		}
		err = report.WriteTSVRow(out, report.TSVRow{
			ReferenceIdentifier: job.referenceIdentifier,
			SequenceIdentifier:  job.sequenceIdentifier,
			Score:               score,
			GapPenalty:          job.gapPenalty,
			MatrixName:          matrix.Name,
			TraceX:              traceX,
			TraceY:              traceY,
			Stats:               stats,
			Quality:             quality,
		})
		if err != nil {
			return &IOError{err, 2}
		}
	case "pair":
		err := report.WritePair(out, report.PairRecord{
			SequenceIdentifier: job.sequenceIdentifier,
			QueryIdentifier:    job.referenceIdentifier,
			MatrixName:         matrix.Name,
			GapPenalty:         job.gapPenalty,
			Score:              score,
			TraceX:             traceX,
			TraceY:             traceY,
			Stats:              stats,
			StartX:             endI,
			StartY:             endJ,
			Rundate:            time.Now(),
		})
		if err != nil {
			return &IOError{err, 2}
		}
	}
	return nil
}

// qualitySubstring returns quality[start:stop+1], the FASTQ base-quality
// characters spanning the alignment in the read, and errors if that range
// falls outside the quality line the FASTQ record carried.
func qualitySubstring(quality string, start, stop int) (string, error) {
	if start < 0 || stop < start || stop >= len(quality) {
		return "", fmt.Errorf("quality line substring [%d:%d] out of bounds for a %d-character quality line", start, stop, len(quality))
	}
	return quality[start : stop+1], nil
}
