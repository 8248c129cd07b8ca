package upgradegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/upgradegen"
)

func TestGenerate(t *testing.T) {
	tmpl := upgradegen.Template{Source: "smbioslib::ProcessorUpgrade", Target: "Self"}
	got := upgradegen.Generate(tmpl, "Other,\nUnknown,\nNone")

	want := `impl From<smbioslib::ProcessorUpgrade> for ProcessorUpgrade {
    fn from(value: smbioslib::ProcessorUpgrade) -> Self {
        match value {
            smbioslib::ProcessorUpgrade::Other => Self::Other,
            smbioslib::ProcessorUpgrade::Unknown => Self::Unknown,
            smbioslib::ProcessorUpgrade::None => Self::None,
        }
    }
}
`
	assert.Equal(t, want, got)
}

// TestGenerateNamespaces re-templates the same block for another namespace
// pair and expects every arm to map a variant onto its own name.
func TestGenerateNamespaces(t *testing.T) {
	tmpl := upgradegen.Template{Source: "Ext", Target: "Local"}
	got := upgradegen.Generate(tmpl, "Other,\nUnknown,\nNone")

	assert.True(t, strings.HasPrefix(got, "impl From<Ext> for Ext {\n"))

	arms := []string{
		"Ext::Other => Local::Other,",
		"Ext::Unknown => Local::Unknown,",
		"Ext::None => Local::None,",
	}
	last := -1
	for _, arm := range arms {
		i := strings.Index(got, arm)
		assert.Greater(t, i, last, arm)
		last = i
	}
}

func TestRenderEmpty(t *testing.T) {
	tmpl := upgradegen.Template{Source: "Ext", Target: "Local"}

	want := `impl From<Ext> for Ext {
    fn from(value: Ext) -> Self {
        match value {
        }
    }
}
`
	assert.Equal(t, want, tmpl.Render(nil))
}

func TestRenderArmCount(t *testing.T) {
	tmpl := upgradegen.Template{Source: "Ext", Target: "Local"}

	tests := []struct {
		name     string
		variants []string
	}{
		{name: "None", variants: nil},
		{name: "One", variants: []string{"Other"}},
		{name: "Many", variants: []string{"Other", "Unknown", "None"}},
		{name: "Duplicates", variants: []string{"Unknown", "Unknown", "Unknown"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := tmpl.Render(test.variants)
			assert.Equal(t, len(test.variants), strings.Count(got, " => "))
		})
	}
}

func TestRenderLocalOverride(t *testing.T) {
	tmpl := upgradegen.Template{
		Source: "smbioslib::BoardType",
		Target: "Self",
		Local:  "Baseboard",
	}
	got := tmpl.Render([]string{"Motherboard"})

	assert.True(t, strings.HasPrefix(got, "impl From<smbioslib::BoardType> for Baseboard {\n"))
	assert.Contains(t, got, "smbioslib::BoardType::Motherboard => Self::Motherboard,")
}

func TestGenerateDeterministic(t *testing.T) {
	tmpl := upgradegen.Template{Source: "smbioslib::ProcessorUpgrade", Target: "Self"}
	block := "Other,\nUnknown,\nSocketAM4,\nNone"

	assert.Equal(t, upgradegen.Generate(tmpl, block), upgradegen.Generate(tmpl, block))
}

// TestGenerateNoValidation checks that malformed variants flow through into
// the output untouched rather than being rejected.
func TestGenerateNoValidation(t *testing.T) {
	tmpl := upgradegen.Template{Source: "Ext", Target: "Local"}
	got := upgradegen.Generate(tmpl, "not a legal identifier,\n\nNone")

	assert.Contains(t, got, "Ext::not a legal identifier => Local::not a legal identifier,")
	assert.Contains(t, got, "Ext:: => Local::,")
	assert.Equal(t, 3, strings.Count(got, " => "))
}
