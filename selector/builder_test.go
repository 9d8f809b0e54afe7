package selector_test

import (
	"errors"
	"strings"
	"testing"

	"cssel/selector"
)

func mustRender(t *testing.T, r selector.Renderable) string {
	t.Helper()
	s, err := r.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return s
}

func TestBuilder_FullGrammarOrder(t *testing.T) {
	got := mustRender(t, selector.Element("div").
		ID("main").
		Class("container").
		Class("editable").
		Attr(`href$=".png"`).
		PseudoClass("hover").
		PseudoElement("before"))

	want := `div#main.container.editable[href$=".png"]:hover::before`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestBuilder_IDWithClasses(t *testing.T) {
	got := mustRender(t, selector.ID("main").Class("container").Class("editable"))
	if got != "#main.container.editable" {
		t.Errorf("Render() = %q, want %q", got, "#main.container.editable")
	}
}

func TestBuilder_ElementAttrPseudoClass(t *testing.T) {
	got := mustRender(t, selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus"))
	if got != `a[href$=".png"]:focus` {
		t.Errorf("Render() = %q, want %q", got, `a[href$=".png"]:focus`)
	}
}

func TestBuilder_Duplicates(t *testing.T) {
	tests := []struct {
		name  string
		chain *selector.Builder
	}{
		{"element twice", selector.Element("p").Element("a")},
		{"id twice", selector.ID("one").ID("two")},
		{"pseudo-element twice", selector.PseudoElement("after").PseudoElement("before")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.chain.Render()
			var dup *selector.DuplicateError
			if !errors.As(err, &dup) {
				t.Fatalf("Render() error = %v, want *DuplicateError", err)
			}
			if !strings.Contains(dup.Error(), "not occur more than one time") {
				t.Errorf("unexpected message: %q", dup.Error())
			}
		})
	}
}

func TestBuilder_OrderViolations(t *testing.T) {
	tests := []struct {
		name  string
		chain *selector.Builder
	}{
		{"element after id", selector.ID("main").Element("div")},
		{"element after class", selector.Class("c").Element("div")},
		{"id after class", selector.Class("c").ID("main")},
		{"id after attribute", selector.Attr("checked").ID("main")},
		{"id after pseudo-class", selector.PseudoClass("hover").ID("main")},
		{"class after pseudo-element", selector.PseudoElement("before").Class("c")},
		{"attribute after pseudo-class", selector.PseudoClass("hover").Attr("checked")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.chain.Render()
			var ord *selector.OrderError
			if !errors.As(err, &ord) {
				t.Fatalf("Render() error = %v, want *OrderError", err)
			}
			if !strings.Contains(ord.Error(), "element, id, class, attribute, pseudo-class, pseudo-element") {
				t.Errorf("message does not state required order: %q", ord.Error())
			}
		})
	}
}

func TestBuilder_ErrorIsSticky(t *testing.T) {
	b := selector.ID("one").ID("two").Class("late")

	if b.Err() == nil {
		t.Fatal("Err() = nil after duplicate id")
	}
	// the first violation wins, later calls must not overwrite it
	var dup *selector.DuplicateError
	if !errors.As(b.Err(), &dup) {
		t.Fatalf("Err() = %v, want the original *DuplicateError", b.Err())
	}
	if s, err := b.Render(); err == nil || s != "" {
		t.Errorf("Render() = (%q, %v), want (\"\", error)", s, err)
	}
}

func TestBuilder_FreshStatePerFacadeCall(t *testing.T) {
	first := mustRender(t, selector.Class("one"))
	second := mustRender(t, selector.Class("two"))

	if first != ".one" || second != ".two" {
		t.Errorf("facade calls leak state: %q, %q", first, second)
	}
}

func TestBuilder_EmptyRendersEmpty(t *testing.T) {
	if got := mustRender(t, selector.New()); got != "" {
		t.Errorf("empty builder Render() = %q, want \"\"", got)
	}
}

func TestBuilder_RepeatableGroups(t *testing.T) {
	got := mustRender(t, selector.Element("input").
		Attr("type=checkbox").
		Attr("checked").
		PseudoClass("focus").
		PseudoClass("valid"))

	want := "input[type=checkbox][checked]:focus:valid"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestBuilder_WriteTo(t *testing.T) {
	var sb strings.Builder
	n, err := selector.Element("p").Class("note").WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if sb.String() != "p.note" {
		t.Errorf("WriteTo() wrote %q, want %q", sb.String(), "p.note")
	}
	if n != int64(len("p.note")) {
		t.Errorf("WriteTo() n = %d, want %d", n, len("p.note"))
	}
}

func TestBuilder_StringSwallowsError(t *testing.T) {
	if got := selector.ID("a").ID("b").String(); got != "" {
		t.Errorf("String() on failed chain = %q, want \"\"", got)
	}
}
