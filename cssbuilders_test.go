package docbind

import (
	"strings"
	"testing"
)

func TestBuildDocumentCSS(t *testing.T) {
	t.Parallel()

	css := buildDocumentCSS()

	// Every class the template emits needs a rule.
	for _, selector := range []string{
		".title-page",
		".metadata",
		".doc-separator",
		".doc-section",
		".block-label",
		".table-caption",
		".failure",
		"table",
		"figure",
	} {
		if !strings.Contains(css, selector) {
			t.Errorf("stylesheet missing %q", selector)
		}
	}

	if !strings.Contains(css, defaultFontFamily) {
		t.Error("stylesheet missing the default font stack")
	}
	if !strings.Contains(css, "break-inside: avoid") {
		t.Error("tables and figures can split across pages")
	}
	if !strings.Contains(css, "max-width: 100%") {
		t.Error("images can overflow the content width")
	}
}
