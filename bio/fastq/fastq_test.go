package fastq_test

import (
	"io"
	"strings"
	"testing"

	"github.com/bebop/ednafull-sw/bio/fastq"
	"github.com/stretchr/testify/assert"
)

func TestParserNextSingleRecord(t *testing.T) {
	input := "@read1\nACGTACGT\n+\nIIIIIIII\n"
	parser := fastq.NewParser(strings.NewReader(input))

	record, err := parser.Next()
	assert.NoError(t, err)
	assert.Equal(t, "read1", record.Identifier)
	assert.Equal(t, "ACGTACGT", record.Sequence)
	assert.Equal(t, "IIIIIIII", record.Quality)

	_, err = parser.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestParserNextMultipleRecordsStripsCR(t *testing.T) {
	input := "@read1\r\nACGT\r\n+\r\nIIII\r\n@read2\r\nTTTT\r\n+\r\nJJJJ\r\n"
	parser := fastq.NewParser(strings.NewReader(input))

	first, err := parser.Next()
	assert.NoError(t, err)
	assert.Equal(t, "read1", first.Identifier)

	second, err := parser.Next()
	assert.NoError(t, err)
	assert.Equal(t, "read2", second.Identifier)
	assert.Equal(t, "TTTT", second.Sequence)
	assert.Equal(t, "JJJJ", second.Quality)
}

func TestParserNextRejectsMissingIdentifier(t *testing.T) {
	parser := fastq.NewParser(strings.NewReader("ACGT\n+\nIIII\n"))
	_, err := parser.Next()
	assert.Error(t, err)
}

func TestParserNextRejectsTruncatedRecord(t *testing.T) {
	parser := fastq.NewParser(strings.NewReader("@read1\nACGT\n"))
	_, err := parser.Next()
	assert.Error(t, err)
}

func TestParserLinesRead(t *testing.T) {
	parser := fastq.NewParser(strings.NewReader("@read1\nACGT\n+\nIIII\n"))
	_, err := parser.Next()
	assert.NoError(t, err)
	assert.EqualValues(t, 4, parser.LinesRead())
}
