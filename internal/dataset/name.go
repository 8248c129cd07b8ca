package dataset

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TypeName converts a snake_case dataset name into the enum type name shared
// by both namespaces: "system_wake_up_type" becomes "SystemWakeUpType".
func TypeName(name string) string {
	chunks := strings.Split(name, "_")
	for i := range chunks {
		chunks[i] = cases.Title(language.English).String(chunks[i])
	}
	return strings.Join(chunks, "")
}
