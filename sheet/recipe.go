// Package sheet turns declarative YAML recipes into stylesheets. A recipe
// lists imports and rules; every rule selector is described structurally and
// built through the css selector builder, so recipe files can never produce
// a selector that violates CSS part ordering or cardinality.
package sheet

import (
	"fmt"
	"strings"

	"cssb/css"
)

// SelectorSpec describes a single selector. A spec is either plain - any of
// the part fields set, applied in the element, id, classes, attributes,
// pseudo_classes, pseudo_element order - or a join of two sub-selectors with
// a combinator. Mixing the two forms is an error.
type SelectorSpec struct {
	Element       string   `yaml:"element,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty"`
	Attributes    []string `yaml:"attributes,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty"`

	Left       *SelectorSpec `yaml:"left,omitempty"`
	Combinator string        `yaml:"combinator,omitempty"`
	Right      *SelectorSpec `yaml:"right,omitempty"`
}

// hasParts reports whether any plain part field is set.
func (s *SelectorSpec) hasParts() bool {
	return s.Element != "" || s.ID != "" || len(s.Classes) != 0 ||
		len(s.Attributes) != 0 || len(s.PseudoClasses) != 0 || s.PseudoElement != ""
}

// hasJoin reports whether any join field is set.
func (s *SelectorSpec) hasJoin() bool {
	return s.Left != nil || s.Right != nil || s.Combinator != ""
}

// Build produces a selector chain from the description.
func (s *SelectorSpec) Build() (css.Selector, error) {
	if s.hasJoin() {
		if s.hasParts() {
			return nil, ErrMixedSelector
		}
		if s.Left == nil || s.Right == nil || s.Combinator == "" {
			return nil, ErrBadJoin
		}
		left, err := s.Left.Build()
		if err != nil {
			return nil, fmt.Errorf("left side: %w", err)
		}
		right, err := s.Right.Build()
		if err != nil {
			return nil, fmt.Errorf("right side: %w", err)
		}
		return css.Combine(left, s.Combinator, right), nil
	}

	if !s.hasParts() {
		return nil, ErrEmptySelector
	}

	// Parts are applied in rank order, so a well-formed description can
	// never trip the builder ordering check. Cardinality violations
	// (several values for a singleton part) are not expressible here either.
	var sel css.Selector
	next := func(start func() css.Selector, cont func() css.Selector) {
		if sel == nil {
			sel = start()
		} else {
			sel = cont()
		}
	}
	if s.Element != "" {
		sel = css.Element(s.Element)
	}
	if s.ID != "" {
		next(func() css.Selector { return css.ID(s.ID) }, func() css.Selector { return sel.ID(s.ID) })
	}
	for _, c := range s.Classes {
		next(func() css.Selector { return css.Class(c) }, func() css.Selector { return sel.Class(c) })
	}
	for _, a := range s.Attributes {
		next(func() css.Selector { return css.Attr(a) }, func() css.Selector { return sel.Attr(a) })
	}
	for _, p := range s.PseudoClasses {
		next(func() css.Selector { return css.PseudoClass(p) }, func() css.Selector { return sel.PseudoClass(p) })
	}
	if s.PseudoElement != "" {
		next(func() css.Selector { return css.PseudoElement(s.PseudoElement) }, func() css.Selector { return sel.PseudoElement(s.PseudoElement) })
	}
	if err := sel.Err(); err != nil {
		return nil, err
	}
	return sel, nil
}

// RuleSpec describes one rule: a single selector or a group of them, plus
// property declarations. When both selector and selectors are present the
// single one comes first in the group.
type RuleSpec struct {
	Selector     *SelectorSpec     `yaml:"selector,omitempty"`
	Selectors    []SelectorSpec    `yaml:"selectors,omitempty"`
	Declarations map[string]string `yaml:"declarations,omitempty"`
}

// Build renders the rule's selectors into a css.Rule. Grouped selectors are
// joined with ", ".
func (r *RuleSpec) Build() (css.Rule, error) {
	specs := make([]*SelectorSpec, 0, len(r.Selectors)+1)
	if r.Selector != nil {
		specs = append(specs, r.Selector)
	}
	for i := range r.Selectors {
		specs = append(specs, &r.Selectors[i])
	}
	if len(specs) == 0 {
		return css.Rule{}, ErrNoSelectors
	}

	rendered := make([]string, 0, len(specs))
	for i, spec := range specs {
		sel, err := spec.Build()
		if err != nil {
			return css.Rule{}, fmt.Errorf("selector %d: %w", i+1, err)
		}
		text, err := sel.Render()
		if err != nil {
			return css.Rule{}, fmt.Errorf("selector %d: %w", i+1, err)
		}
		rendered = append(rendered, text)
	}

	return css.Rule{
		Selector:   strings.Join(rendered, ", "),
		Properties: r.Declarations,
	}, nil
}

// Document is a complete recipe file.
type Document struct {
	Imports []string   `yaml:"imports,omitempty"`
	Rules   []RuleSpec `yaml:"rules,omitempty"`
}
