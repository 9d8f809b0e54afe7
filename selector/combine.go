package selector

import (
	"fmt"
	"io"
)

// Renderable is anything that can produce a selector string - a Builder or
// the result of a Combine.
type Renderable interface {
	Render() (string, error)
}

// Combinator is the CSS operator joining two selectors.
type Combinator string

const (
	Descendant      Combinator = " "
	Child           Combinator = ">"
	AdjacentSibling Combinator = "+"
	GeneralSibling  Combinator = "~"
)

// Combined is the stateless join of two rendered selectors. It is itself a
// Renderable, so joins nest as operands of further Combine calls.
type Combined struct {
	left  Renderable
	op    Combinator
	right Renderable
}

// Combine joins two selectors with a combinator token. Exactly one space is
// placed on each side of the token regardless of what the token is - with
// the descendant token (itself a space) the rendered gap is three spaces
// wide, which is the documented output, not something to collapse.
func Combine(left Renderable, op Combinator, right Renderable) *Combined {
	return &Combined{left: left, op: op, right: right}
}

// Render returns left, a space, the combinator token, a space, then right.
// A failed operand chain fails the whole combination.
func (c *Combined) Render() (string, error) {
	ls, err := c.left.Render()
	if err != nil {
		return "", err
	}
	rs, err := c.right.Render()
	if err != nil {
		return "", err
	}
	return ls + " " + string(c.op) + " " + rs, nil
}

// WriteTo writes the combined selector to w, implementing io.WriterTo.
func (c *Combined) WriteTo(w io.Writer) (int64, error) {
	s, err := c.Render()
	if err != nil {
		return 0, err
	}
	n, err := fmt.Fprint(w, s)
	return int64(n), err
}

// String returns the combined selector, or "" when an operand has failed.
func (c *Combined) String() string {
	s, _ := c.Render() //nolint:errcheck
	return s
}
