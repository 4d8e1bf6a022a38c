package fastq_test

import (
	"fmt"
	"strings"

	"github.com/bebop/ednafull-sw/bio/fastq"
)

func ExampleParser_Next() {
	parser := fastq.NewParser(strings.NewReader("@read1\nACGTACGT\n+\nIIIIIIII\n"))
	record, err := parser.Next()
	if err != nil {
		panic(err)
	}
	fmt.Println(record.Identifier)
	fmt.Println(record.Sequence)
	fmt.Println(record.Quality)
	// Output:
	// read1
	// ACGTACGT
	// IIIIIIII
}
