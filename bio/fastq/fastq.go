/*
Package fastq parses the strict four-line FASTQ records this aligner reads
sequencing reads from: identifier, sequence, separator, quality.

This is poly/bio/fastq's own parser with the nanopore-specific optionals
bookkeeping and base-alphabet validation removed — this aligner treats the
sequence line as opaque bytes to hand straight to the scoring kernel rather
than restricting it to a fixed base set — and with Reset/ParseAll trimmed
since the driver only ever walks a stream record by record.
*/
package fastq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Record is a single FASTQ entry.
type Record struct {
	Identifier string
	Sequence   string
	Quality    string
}

// Parser reads FASTQ records one at a time from an underlying reader.
type Parser struct {
	reader *bufio.Reader
	line   uint
}

// NewParser returns a Parser that reads FASTQ records from r.
func NewParser(r io.Reader) *Parser {
	const maxLineSize = 2 * 32 * 1024
	return &Parser{reader: bufio.NewReaderSize(r, maxLineSize)}
}

// LinesRead returns the count of FASTQ lines consumed so far, for progress
// reporting.
func (p *Parser) LinesRead() uint {
	return p.line
}

// Next reads the next four-line FASTQ record. It returns io.EOF, with a
// zero Record, once the underlying reader is exhausted between records.
// A record that stops partway through its four lines is a strict parsing
// error, not an EOF.
func (p *Parser) Next() (Record, error) {
	if _, err := p.reader.Peek(1); err != nil {
		return Record{}, err
	}

	identLine, err := p.readLine()
	if err != nil {
		return Record{}, err
	}
	if len(identLine) == 0 || identLine[0] != '@' {
		return Record{}, fmt.Errorf("fastq: line %d: expected identifier starting with '@'", p.line)
	}

	seqLine, err := p.readLine()
	if err != nil {
		return Record{}, err
	}
	if len(seqLine) == 0 {
		return Record{}, fmt.Errorf("fastq: line %d: empty sequence line", p.line)
	}

	sepLine, err := p.readLine()
	if err != nil {
		return Record{}, err
	}
	if len(sepLine) == 0 || sepLine[0] != '+' {
		return Record{}, fmt.Errorf("fastq: line %d: expected separator starting with '+'", p.line)
	}

	qualLine, err := p.readLine()
	if err != nil {
		return Record{}, err
	}
	if len(qualLine) == 0 {
		return Record{}, fmt.Errorf("fastq: line %d: empty quality line", p.line)
	}

	return Record{
		Identifier: strings.TrimPrefix(identLine, "@"),
		Sequence:   seqLine,
		Quality:    qualLine,
	}, nil
}

// readLine reads one line, strips its newline and any trailing '\r', and
// counts it against the parser's line number for error messages and
// progress reporting.
func (p *Parser) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	p.line++
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			// Final line in the file with no trailing newline.
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", fmt.Errorf("fastq: line %d: %w", p.line, err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
