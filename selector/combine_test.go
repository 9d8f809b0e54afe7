package selector_test

import (
	"errors"
	"testing"

	"cssel/selector"
)

func TestCombine_AdjacentSibling(t *testing.T) {
	got := mustRender(t, selector.Combine(selector.Element("a"), selector.AdjacentSibling, selector.Element("b")))
	if got != "a + b" {
		t.Errorf("Render() = %q, want %q", got, "a + b")
	}
}

func TestCombine_DescendantKeepsWideGap(t *testing.T) {
	// descendant token is itself a space: one space either side of it gives a
	// three-space gap, and that is the contract
	got := mustRender(t, selector.Combine(selector.Element("ul"), selector.Descendant, selector.Element("li")))
	if got != "ul   li" {
		t.Errorf("Render() = %q, want %q", got, "ul   li")
	}
}

func TestCombine_Nested(t *testing.T) {
	inner := selector.Combine(selector.Element("p"), selector.AdjacentSibling, selector.Element("ul"))
	outer := selector.Combine(inner, selector.GeneralSibling, selector.ID("footer"))

	got := mustRender(t, outer)
	if got != "p + ul ~ #footer" {
		t.Errorf("Render() = %q, want %q", got, "p + ul ~ #footer")
	}
}

func TestCombine_ChildOfCompound(t *testing.T) {
	left := selector.Element("nav").Class("top")
	got := mustRender(t, selector.Combine(left, selector.Child, selector.Class("item")))
	if got != "nav.top > .item" {
		t.Errorf("Render() = %q, want %q", got, "nav.top > .item")
	}
}

func TestCombine_OperandErrorPropagates(t *testing.T) {
	bad := selector.ID("a").ID("b")
	c := selector.Combine(bad, selector.Child, selector.Element("p"))

	_, err := c.Render()
	var dup *selector.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("Render() error = %v, want operand *DuplicateError", err)
	}
	if c.String() != "" {
		t.Errorf("String() on failed combination = %q, want \"\"", c.String())
	}
}
