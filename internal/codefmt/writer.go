// Package codefmt renders generated code text.
package codefmt

import (
	"fmt"
	"strings"
)

// indent is the indentation unit of generated code.
const indent = "    "

// Writer is a writer for generated code. It tracks the nesting depth and
// prefixes every line with the matching indentation. The generated text is
// handed to a human as-is, so nesting is not left to an external formatter.
//
// The zero value is ready to use.
type Writer struct {
	b     strings.Builder
	depth int
}

// In increases the nesting depth for subsequent lines.
func (w *Writer) In() { w.depth++ }

// Out decreases the nesting depth for subsequent lines.
//
// Panics if the depth is already zero.
func (w *Writer) Out() {
	if w.depth == 0 {
		panic("codefmt: negative depth")
	}
	w.depth--
}

// Printf writes one line of generated code at the current nesting depth. The
// format string carries its own trailing newline, and must not span multiple
// lines since only the first would be indented.
func (w *Writer) Printf(format string, args ...any) {
	for i := 0; i < w.depth; i++ {
		w.b.WriteString(indent)
	}
	fmt.Fprintf(&w.b, format, args...)
}

// String returns the generated text written so far.
func (w *Writer) String() string {
	return w.b.String()
}
