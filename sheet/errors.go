package sheet

import "errors"

var (
	// ErrEmptySelector indicates a selector spec with no parts at all.
	ErrEmptySelector = errors.New("sheet: selector spec has no parts")
	// ErrMixedSelector indicates a selector spec that sets both plain parts and a join.
	ErrMixedSelector = errors.New("sheet: selector spec cannot mix parts with a join")
	// ErrBadJoin indicates an incomplete join spec.
	ErrBadJoin = errors.New("sheet: join requires left, combinator and right")
	// ErrNoSelectors indicates a rule spec without any selector.
	ErrNoSelectors = errors.New("sheet: rule has no selectors")
)
