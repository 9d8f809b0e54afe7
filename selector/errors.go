package selector

import "fmt"

// DuplicateError reports a second occurrence of a fragment kind that is
// allowed at most once per selector.
type DuplicateError struct {
	Kind string // fragment kind that was added twice
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("element, id and pseudo-element should not occur more than one time inside the selector: %q added twice", e.Kind)
}

// OrderError reports a fragment added after a grammatically later fragment
// has already been written.
type OrderError struct {
	Kind string // fragment kind that arrived too late
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element: %q is out of order", e.Kind)
}
