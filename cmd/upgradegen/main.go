// Command upgradegen prints From-conversion impls for the embedded SMBIOS
// enum datasets.
//
// Usage:
//
//	upgradegen [dataset ...]
//
// With no arguments, every embedded dataset is generated in registry order,
// separated by blank lines. With arguments, only the named datasets are
// generated, in the given order.
//
// When stdin is not a terminal, a raw variant block is read from stdin
// instead and rendered with the template of the single named dataset,
// defaulting to processor_upgrade:
//
//	upgradegen board_type <variants.txt
//
// The generated text goes to stdout for a human to paste into the
// enum-definition source file; no file is ever written.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/sublee/upgradegen"
	"github.com/sublee/upgradegen/internal/dataset"
)

func main() {
	names := os.Args[1:]

	var err error
	if isatty(os.Stdin) {
		err = generateDatasets(names)
	} else {
		err = generateStdin(names)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generateDatasets prints the conversion of each named dataset, or of every
// dataset when no name is given.
func generateDatasets(names []string) error {
	var ds []dataset.Dataset
	if len(names) == 0 {
		ds = dataset.All()
	} else {
		for _, name := range names {
			d, ok := dataset.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown dataset: %s", name)
			}
			ds = append(ds, d)
		}
	}

	for i, d := range ds {
		if i != 0 {
			fmt.Println()
		}
		fmt.Print(upgradegen.Generate(d.Template, d.Block))
	}
	return nil
}

// generateStdin reads one raw variant block from stdin and renders it with
// the template of the named dataset.
func generateStdin(names []string) error {
	if len(names) > 1 {
		return fmt.Errorf("at most one dataset can be named when reading stdin; got %d", len(names))
	}

	name := "processor_upgrade"
	if len(names) == 1 {
		name = names[0]
	}
	d, ok := dataset.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown dataset: %s", name)
	}

	block, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	// Shells terminate the block with a newline; without this the final
	// variant would be followed by an empty arm.
	fmt.Print(upgradegen.Generate(d.Template, strings.TrimSuffix(string(block), "\n")))
	return nil
}

// isatty reports whether f is attached to a terminal.
func isatty(f *os.File) bool {
	_, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	return err == nil
}
