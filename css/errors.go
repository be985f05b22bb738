package css

import "errors"

var (
	// ErrDuplicateFragment indicates that element, id or pseudo-element was
	// appended more than once to the same selector chain.
	ErrDuplicateFragment = errors.New("css: element, id and pseudo-element may occur at most once inside a selector")
	// ErrFragmentOrder indicates that selector parts were appended out of order.
	ErrFragmentOrder = errors.New("css: selector parts must follow the order: element, id, class, attribute, pseudo-class, pseudo-element")
)
