package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// main is separated from run and application the same way poly's CLI
// entry point is, to keep each piece independently testable.
func main() {
	run(os.Args)
}

// run drives the app and translates its returned error, if any, into the
// exit-code and output-stream contract this command promises: usage errors
// go to stdout with exit 1, I/O errors go to stderr with the code the
// failing operation chose, and any other error is printed to stderr with
// exit 1.
func run(args []string) {
	app := application()
	err := app.Run(args)
	if err == nil {
		return
	}

	switch e := err.(type) {
	case *UsageError:
		fmt.Fprintln(os.Stdout, e.Error())
		fmt.Fprintln(os.Stdout, "See 'ednafull_linear_smith_waterman --help'.")
		os.Exit(1)
	case *IOError:
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(e.Code)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// application defines the single command this tool runs — the initial
// arg parsing and flag wiring lives here, matching poly's convention of
// keeping application() free of the actual command logic.
func application() *cli.App {
	return &cli.App{
		Name:      "ednafull_linear_smith_waterman",
		Usage:     "Smith-Waterman local alignment of FASTQ reads against a FASTA query, using EDNAFULL and a linear gap penalty.",
		ArgsUsage: "<reads.fastq>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "FASTA file containing the query sequence.",
			},
			&cli.IntFlag{
				Name:    "gap-penalty",
				Aliases: []string{"P"},
				Usage:   "Linear gap penalty subtracted once per gap character.",
				Value:   defaultGapPenalty,
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "Output report format: tsv or pair.",
				Value: "tsv",
			},
		},
		Action: alignCommand,
	}
}
