package css

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// escapeDoubleQuoted escapes a string for use inside CSS double quotes.
// Backslashes and double quotes are escaped per CSS syntax: \" and \\.
func escapeDoubleQuoted(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Rule is a single CSS rule: an already rendered selector (possibly a
// grouped one, "a, b") plus its property declarations.
type Rule struct {
	Selector   string            // Rendered selector text
	Properties map[string]string // Property name -> raw value text
}

// GetProperty returns the value for a property and whether it is present.
func (r Rule) GetProperty(name string) (string, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule or Import is non-nil.
type StylesheetItem struct {
	Rule   *Rule   // A plain rule (selector + properties)
	Import *string // An @import URL
}

// Stylesheet is an assembled stylesheet ready to be written out.
type Stylesheet struct {
	Items   []StylesheetItem // All top-level items in source order
	Compact bool             // Render each rule on a single line
}

// AddRule appends a rule to the stylesheet.
func (s *Stylesheet) AddRule(r Rule) {
	s.Items = append(s.Items, StylesheetItem{Rule: &r})
}

// AddImport appends an @import line to the stylesheet.
func (s *Stylesheet) AddImport(url string) {
	s.Items = append(s.Items, StylesheetItem{Import: &url})
}

// Rules returns all rules in source order.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, item := range s.Items {
		if item.Rule != nil {
			rules = append(rules, *item.Rule)
		}
	}
	return rules
}

// Imports returns all @import URLs in source order.
func (s *Stylesheet) Imports() []string {
	var urls []string
	for _, item := range s.Items {
		if item.Import != nil {
			urls = append(urls, *item.Import)
		}
	}
	return urls
}

// RulesBySelector returns all rules matching the given selector text.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing
// io.WriterTo. Property order within a rule is sorted alphabetically for
// deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Import != nil:
			n, err = fmt.Fprintf(w, "@import url(\"%s\");\n", escapeDoubleQuoted(*item.Import))
		case item.Rule != nil:
			if s.Compact {
				n, err = writeRuleCompact(w, item.Rule)
			} else {
				n, err = writeRule(w, item.Rule)
			}
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Blank line between expanded items (except after last)
		if !s.Compact && i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// sortedPropertyNames returns the rule's property names in output order.
func sortedPropertyNames(props map[string]string) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// writeRule writes a single CSS rule to w, one declaration per line.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, name := range sortedPropertyNames(rule.Properties) {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", name, rule.Properties[name])
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeRuleCompact writes a single CSS rule to w on one line.
func writeRuleCompact(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s{", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, name := range sortedPropertyNames(rule.Properties) {
		n, err = fmt.Fprintf(w, "%s:%s;", name, rule.Properties[name])
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
