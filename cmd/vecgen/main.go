// Command vecgen prints reference filter test vectors as Go source.
//
// Usage:
//
//	vecgen [flags] [case-name ...]
//
// Without arguments it prints every case in the catalog.
//
// Examples:
//
//	vecgen iir-random
//	vecgen sma-10 sma-10-prefill > vectors_gen.go
//	vecgen -list
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-lfilter/internal/vectors"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vecgen: ")

	list := flag.Bool("list", false, "list available case names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecgen [flags] [case-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints reference filter test vectors as Go source.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints every case.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(os.Stdout, *list, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, list bool, names []string) error {
	if list {
		return printList(w)
	}

	vs, err := vectors.GenerateAll(names...)
	if err != nil {
		return fmt.Errorf("%w (use -list to see available)", err)
	}
	return vectors.RenderAll(w, vs)
}

func printList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tDESCRIPTION")
	for _, c := range vectors.Catalog() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.Kind, c.Description)
	}
	return tw.Flush()
}
