// Command jvgen generates random JSON documents, useful as parser test
// corpora and fixtures. Output is deterministic for a fixed seed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/jv"
	"github.com/jacoelho/jv/internal/gen"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)

	var (
		count   = fs.Int("count", 1, "number of documents to generate")
		depth   = fs.Int("depth", 4, "maximum container nesting depth")
		seed    = fs.Uint64("seed", 1, "random seed")
		compact = fs.Bool("compact", false, "compact output instead of indented")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *count < 1 || *depth < 1 {
		fmt.Fprintln(errOut, "Error: -count and -depth must be at least 1")
		return 2
	}

	g := gen.New(*seed)
	for range *count {
		doc := g.Document(*depth)

		var (
			data []byte
			err  error
		)
		if *compact {
			data, err = jv.Marshal(doc)
		} else {
			data, err = jv.MarshalIndent(doc, "", "  ")
		}
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(out, "%s\n", data)
	}
	return 0
}
