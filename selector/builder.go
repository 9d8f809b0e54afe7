// Package selector builds CSS selector strings forward from structured
// calls. It does not parse stylesheets - fragments are supplied one by one
// and rendered in fixed grammar order.
package selector

import (
	"fmt"
	"io"
	"strings"
)

// tier indexes fragment groups in grammar order.
type tier int

const (
	tierElement tier = iota
	tierID
	tierClass
	tierAttr
	tierPseudoClass
	tierPseudoElement
	tierCount
)

var tierNames = [tierCount]string{
	"element",
	"id",
	"class",
	"attribute",
	"pseudo-class",
	"pseudo-element",
}

func (t tier) String() string {
	return tierNames[t]
}

// singleton returns true for fragment kinds allowed at most once.
func (t tier) singleton() bool {
	return t == tierElement || t == tierID || t == tierPseudoElement
}

// prefixed returns the rendered form of a single fragment value.
func (t tier) prefixed(value string) string {
	switch t {
	case tierID:
		return "#" + value
	case tierClass:
		return "." + value
	case tierAttr:
		return "[" + value + "]"
	case tierPseudoClass:
		return ":" + value
	case tierPseudoElement:
		return "::" + value
	default:
		return value
	}
}

// Builder accumulates selector fragments and renders the canonical string.
// Fragments must arrive in grammar order (element, id, class, attribute,
// pseudo-class, pseudo-element); element, id and pseudo-element may occur at
// most once. The first violation is recorded and every later call becomes a
// no-op, so errors surface once at Render time and fluent chains stay intact.
//
// NOTE: once any fragment from class onward has been written, id is rejected
// with an OrderError. Plain grammar ordering already implies this, but the
// rule is kept explicit here because it is observable behavior callers rely
// on, not an accident of the order check.
//
// The zero value is not usable, call New or one of the package-level fragment
// constructors. A Builder is owned by a single chain and is not safe for
// concurrent use.
type Builder struct {
	groups [tierCount][]string
	err    error
}

// New returns an empty selector builder.
func New() *Builder {
	return &Builder{}
}

// add appends a prefixed fragment to its group after order and cardinality
// checks, in that exact order.
func (b *Builder) add(t tier, value string) *Builder {
	if b.err != nil {
		return b
	}
	for later := t + 1; later < tierCount; later++ {
		if len(b.groups[later]) > 0 {
			b.err = &OrderError{Kind: t.String()}
			return b
		}
	}
	if t.singleton() && len(b.groups[t]) > 0 {
		b.err = &DuplicateError{Kind: t.String()}
		return b
	}
	b.groups[t] = append(b.groups[t], t.prefixed(value))
	return b
}

// Element sets the element name. Allowed once, before everything else.
func (b *Builder) Element(name string) *Builder {
	return b.add(tierElement, name)
}

// ID sets the id fragment. Allowed once, before class and later fragments.
func (b *Builder) ID(id string) *Builder {
	return b.add(tierID, id)
}

// Class appends a class fragment. May repeat.
func (b *Builder) Class(name string) *Builder {
	return b.add(tierClass, name)
}

// Attr appends an attribute filter without the surrounding brackets,
// e.g. `href$=".png"`. May repeat.
func (b *Builder) Attr(filter string) *Builder {
	return b.add(tierAttr, filter)
}

// PseudoClass appends a pseudo-class fragment. May repeat.
func (b *Builder) PseudoClass(name string) *Builder {
	return b.add(tierPseudoClass, name)
}

// PseudoElement sets the pseudo-element fragment. Allowed once, last.
func (b *Builder) PseudoElement(name string) *Builder {
	return b.add(tierPseudoElement, name)
}

// Err returns the first violation recorded on the chain, if any.
func (b *Builder) Err() error {
	return b.err
}

// Render returns the canonical selector string: every group joined in
// grammar order with no separators. An empty builder renders to "".
func (b *Builder) Render() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	var sb strings.Builder
	for t := tierElement; t < tierCount; t++ {
		for _, frag := range b.groups[t] {
			sb.WriteString(frag)
		}
	}
	return sb.String(), nil
}

// WriteTo writes the rendered selector to w, implementing io.WriterTo.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	s, err := b.Render()
	if err != nil {
		return 0, err
	}
	n, err := fmt.Fprint(w, s)
	return int64(n), err
}

// String returns the rendered selector, or "" when the chain has failed.
func (b *Builder) String() string {
	s, _ := b.Render() //nolint:errcheck
	return s
}

// Package-level fragment constructors: each starts a fresh builder so no
// state leaks between chains.

// Element starts a new selector with an element name.
func Element(name string) *Builder {
	return New().Element(name)
}

// ID starts a new selector with an id fragment.
func ID(id string) *Builder {
	return New().ID(id)
}

// Class starts a new selector with a class fragment.
func Class(name string) *Builder {
	return New().Class(name)
}

// Attr starts a new selector with an attribute filter.
func Attr(filter string) *Builder {
	return New().Attr(filter)
}

// PseudoClass starts a new selector with a pseudo-class fragment.
func PseudoClass(name string) *Builder {
	return New().PseudoClass(name)
}

// PseudoElement starts a new selector with a pseudo-element fragment.
func PseudoElement(name string) *Builder {
	return New().PseudoElement(name)
}
