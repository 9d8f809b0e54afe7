package selector_test

import (
	"testing"

	"cssel/selector"
)

func TestLint_CleanSelectors(t *testing.T) {
	chains := []selector.Renderable{
		selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus"),
		selector.ID("main").Class("container").Class("editable"),
		selector.Combine(selector.Element("p"), selector.AdjacentSibling, selector.Element("ul")),
		selector.Combine(selector.Element("ul"), selector.Descendant, selector.Element("li")),
	}

	for _, c := range chains {
		s := mustRender(t, c)
		if warnings := selector.Lint(s); len(warnings) != 0 {
			t.Errorf("Lint(%q) = %v, want none", s, warnings)
		}
	}
}

func TestLint_Findings(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"stray semicolon", "a;b"},
		{"rule block", "p { color: red }"},
		{"unterminated attribute", "a[href"},
		{"unbalanced bracket", "a]b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if warnings := selector.Lint(tt.input); len(warnings) == 0 {
				t.Errorf("Lint(%q) = none, want findings", tt.input)
			}
		})
	}
}
