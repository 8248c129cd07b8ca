// Package variant normalizes raw variant blocks copied from an SMBIOS
// reference into ordered identifier lists.
package variant

import "strings"

// Split splits a raw variant block into one identifier per line. Each line is
// stripped of a single trailing comma, then doubled spaces are collapsed into
// single spaces. Empty lines are kept as empty identifiers, so the result has
// exactly one entry per input line, in input order, duplicates included.
//
// Split performs no validation: whatever survives the stripping is the
// identifier, verbatim. It never fails.
func Split(block string) []string {
	lines := strings.Split(block, "\n")

	ids := make([]string, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, ",")
		ids[i] = strings.ReplaceAll(line, "  ", " ")
	}
	return ids
}
