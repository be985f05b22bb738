// Package css builds CSS selectors and assembles stylesheets into their
// canonical textual form. It does not parse CSS and it does not match
// selectors against documents - it is a string assembly tool.
package css

import (
	"fmt"
	"strings"
)

// FragmentKind identifies one atomic selector part. The declaration order
// fixes the rank each kind has in the left-to-right sequence CSS requires
// inside a compound selector.
type FragmentKind int

const (
	FragmentElement FragmentKind = iota
	FragmentID
	FragmentClass
	FragmentAttribute
	FragmentPseudoClass
	FragmentPseudoElement

	fragmentKinds // number of kinds, keep last
)

// String returns the fragment kind name as used in error messages.
func (k FragmentKind) String() string {
	switch k {
	case FragmentElement:
		return "element"
	case FragmentID:
		return "id"
	case FragmentClass:
		return "class"
	case FragmentAttribute:
		return "attribute"
	case FragmentPseudoClass:
		return "pseudo-class"
	case FragmentPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// singleton reports whether the kind may occur at most once per selector.
func (k FragmentKind) singleton() bool {
	return k == FragmentElement || k == FragmentID || k == FragmentPseudoElement
}

// Selector is the chainable surface shared by every selector chain this
// package hands out. Fragment operations return the same chain so calls can
// be stacked; the first constraint violation is recorded and every later
// operation on the chain becomes a no-op until the error is observed.
type Selector interface {
	Element(name string) Selector
	ID(name string) Selector
	Class(name string) Selector
	Attr(spec string) Selector
	PseudoClass(name string) Selector
	PseudoElement(name string) Selector

	// Render returns the accumulated selector text, or the first
	// constraint violation recorded on the chain. Render does not consume
	// the chain, but a rendered chain is not meant to accumulate further
	// parts - start a new one instead.
	Render() (string, error)
	// Err reports the first constraint violation without rendering.
	Err() error
}

// Builder is the single Selector implementation. Zero value is not usable,
// chains are started through the package level functions.
type Builder struct {
	text strings.Builder
	seen [fragmentKinds]bool
	last FragmentKind // rank of the most recent part, -1 for an empty chain
	err  error
}

var _ Selector = (*Builder)(nil)

func newBuilder() *Builder {
	return &Builder{last: -1}
}

// append commits one part to the chain after checking cardinality and order.
func (b *Builder) append(kind FragmentKind, prefix, value, suffix string) *Builder {
	if b.err != nil {
		return b
	}
	if kind.singleton() && b.seen[kind] {
		b.err = fmt.Errorf("duplicate %s %q: %w", kind, value, ErrDuplicateFragment)
		return b
	}
	if kind < b.last {
		b.err = fmt.Errorf("%s %q after %s: %w", kind, value, b.last, ErrFragmentOrder)
		return b
	}
	b.text.WriteString(prefix)
	b.text.WriteString(value)
	b.text.WriteString(suffix)
	b.seen[kind] = true
	b.last = kind
	return b
}

// Element appends an element (tag) name, rendered without a delimiter.
func (b *Builder) Element(name string) Selector {
	return b.append(FragmentElement, "", name, "")
}

// ID appends an id part, rendered as #name.
func (b *Builder) ID(name string) Selector {
	return b.append(FragmentID, "#", name, "")
}

// Class appends a class part, rendered as .name. May be repeated.
func (b *Builder) Class(name string) Selector {
	return b.append(FragmentClass, ".", name, "")
}

// Attr appends an attribute part, spec is taken verbatim as the bracket
// contents, e.g. `href$=".png"`. May be repeated.
func (b *Builder) Attr(spec string) Selector {
	return b.append(FragmentAttribute, "[", spec, "]")
}

// PseudoClass appends a pseudo-class part, rendered as :name. May be repeated.
func (b *Builder) PseudoClass(name string) Selector {
	return b.append(FragmentPseudoClass, ":", name, "")
}

// PseudoElement appends a pseudo-element part, rendered as ::name.
func (b *Builder) PseudoElement(name string) Selector {
	return b.append(FragmentPseudoElement, "::", name, "")
}

// Err reports the first constraint violation recorded on the chain.
func (b *Builder) Err() error {
	return b.err
}

// Render returns the accumulated selector text.
func (b *Builder) Render() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.text.String(), nil
}

// Element starts a new selector chain with an element (tag) name.
func Element(name string) Selector {
	return newBuilder().Element(name)
}

// ID starts a new selector chain with an id part.
func ID(name string) Selector {
	return newBuilder().ID(name)
}

// Class starts a new selector chain with a class part.
func Class(name string) Selector {
	return newBuilder().Class(name)
}

// Attr starts a new selector chain with an attribute part.
func Attr(spec string) Selector {
	return newBuilder().Attr(spec)
}

// PseudoClass starts a new selector chain with a pseudo-class part.
func PseudoClass(name string) Selector {
	return newBuilder().PseudoClass(name)
}

// PseudoElement starts a new selector chain with a pseudo-element part.
func PseudoElement(name string) Selector {
	return newBuilder().PseudoElement(name)
}

// Combine joins two already built selectors with a combinator, producing
// "<left> <combinator> <right>". The combinator text is inserted verbatim
// between single spaces - typically one of ">", "+", "~" - and is not
// validated. The resulting chain starts with a fresh ordering state: the
// join is structural and does not participate in the part ordering rules.
// Errors recorded on either side propagate to the combined chain.
func Combine(left Selector, combinator string, right Selector) Selector {
	b := newBuilder()
	l, err := left.Render()
	if err != nil {
		b.err = err
		return b
	}
	r, err := right.Render()
	if err != nil {
		b.err = err
		return b
	}
	b.text.WriteString(l)
	b.text.WriteString(" ")
	b.text.WriteString(combinator)
	b.text.WriteString(" ")
	b.text.WriteString(r)
	return b
}
