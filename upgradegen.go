// Package upgradegen generates From-conversions between structurally parallel
// SMBIOS enums.
//
// The smbioslib crate and our local DMI model declare the same enums twice:
// same variants, same order, different namespaces. Keeping the From impl that
// bridges them in sync by hand is error-prone for the large enums — the
// processor upgrade enum alone has over eighty variants — so this package
// generates the impl text from the variant list instead.
//
// The input is a raw variant block copied straight from the reference, one
// variant per line. Trailing commas and doubled-space artifacts of the copy
// are tolerated:
//
//	Other,
//	Unknown,
//	None
//
// [Generate] normalizes the block and renders one match arm per variant, in
// input order:
//
//	impl From<smbioslib::ProcessorUpgrade> for ProcessorUpgrade {
//	    fn from(value: smbioslib::ProcessorUpgrade) -> Self {
//	        match value {
//	            smbioslib::ProcessorUpgrade::Other => Self::Other,
//	            smbioslib::ProcessorUpgrade::Unknown => Self::Unknown,
//	            smbioslib::ProcessorUpgrade::None => Self::None,
//	        }
//	    }
//	}
//
// The output is text, nothing more. It is printed for a human to paste into
// the enum-definition source file; upgradegen never writes files and never
// checks that a variant exists in either namespace. Garbage in the block
// becomes garbage in the impl.
package upgradegen

import (
	"strings"

	"github.com/sublee/upgradegen/internal/codefmt"
	"github.com/sublee/upgradegen/internal/variant"
)

// Template names the two namespaces of a conversion.
type Template struct {
	// Source qualifies the left-hand variant of every arm. It is also the
	// external type in the impl header, e.g. "smbioslib::ProcessorUpgrade".
	Source string

	// Target qualifies the right-hand variant of every arm, e.g. "Self".
	Target string

	// Local is the local type name in the impl header. When empty, the last
	// "::" segment of Source is used.
	Local string
}

// local returns the local type name in the impl header.
func (t Template) local() string {
	if t.Local != "" {
		return t.Local
	}
	if i := strings.LastIndex(t.Source, "::"); i >= 0 {
		return t.Source[i+len("::"):]
	}
	return t.Source
}

// Render renders the conversion for the given variants. Every variant yields
// exactly one arm mapping Source::v to Target::v, in input order; variants
// are never renamed, reordered, or deduplicated, and the last one — the None
// sentinel by SMBIOS convention — is an ordinary arm like the rest. An empty
// variant list yields the header and footer with no arms.
//
// For the same variants and template the output is byte-identical on every
// call.
func (t Template) Render(variants []string) string {
	w := new(codefmt.Writer)

	w.Printf("impl From<%s> for %s {\n", t.Source, t.local())
	w.In()
	w.Printf("fn from(value: %s) -> Self {\n", t.Source)
	w.In()
	w.Printf("match value {\n")
	w.In()

	for _, v := range variants {
		w.Printf("%s::%s => %s::%s,\n", t.Source, v, t.Target, v)
	}

	w.Out()
	w.Printf("}\n")
	w.Out()
	w.Printf("}\n")
	w.Out()
	w.Printf("}\n")

	return w.String()
}

// Generate normalizes a raw variant block and renders its conversion.
func Generate(t Template, block string) string {
	return t.Render(variant.Split(block))
}
