package css_test

import (
	"errors"
	"testing"

	"cssb/css"
)

func render(t *testing.T, s css.Selector) string {
	t.Helper()
	out, err := s.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return out
}

func TestSelector_SingleParts(t *testing.T) {
	tests := []struct {
		name string
		sel  css.Selector
		want string
	}{
		{"element", css.Element("div"), "div"},
		{"id", css.ID("main"), "#main"},
		{"class", css.Class("container"), ".container"},
		{"attribute", css.Attr(`href$=".png"`), `[href$=".png"]`},
		{"pseudo-class", css.PseudoClass("focus"), ":focus"},
		{"pseudo-element", css.PseudoElement("first-line"), "::first-line"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.sel); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelector_Chains(t *testing.T) {
	tests := []struct {
		name string
		sel  css.Selector
		want string
	}{
		{
			"full chain",
			css.Element("div").ID("main").Class("container").Class("draggable").
				Attr(`data-id="x"`).PseudoClass("hover").PseudoElement("first-letter"),
			`div#main.container.draggable[data-id="x"]:hover::first-letter`,
		},
		{
			"id with classes",
			css.ID("main").Class("container").Class("editable"),
			"#main.container.editable",
		},
		{
			"element with attribute and pseudo-class",
			css.Element("a").Attr(`href$=".png"`).PseudoClass("focus"),
			`a[href$=".png"]:focus`,
		},
		{
			"repeatable classes",
			css.Class("a").Class("b").Class("c"),
			".a.b.c",
		},
		{
			"repeatable attributes",
			css.Attr("disabled").Attr(`type="submit"`),
			`[disabled][type="submit"]`,
		},
		{
			"repeatable pseudo-classes",
			css.Element("li").PseudoClass("first-child").PseudoClass("hover"),
			"li:first-child:hover",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.sel); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelector_DuplicateSingletons(t *testing.T) {
	tests := []struct {
		name string
		sel  css.Selector
	}{
		{"element twice", css.Element("div").Element("span")},
		{"id twice", css.ID("a").ID("b")},
		{"pseudo-element twice", css.PseudoElement("before").PseudoElement("after")},
		{"element twice with parts between", css.Element("div").ID("main").Class("c").Element("span")},
		{"id twice with parts between", css.ID("main").Class("c").Attr("disabled").ID("other")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.sel.Render(); !errors.Is(err, css.ErrDuplicateFragment) {
				t.Errorf("Render() error = %v, want ErrDuplicateFragment", err)
			}
		})
	}
}

func TestSelector_OutOfOrder(t *testing.T) {
	tests := []struct {
		name string
		sel  css.Selector
	}{
		{"element after class", css.Class("a").Element("div")},
		{"element after id", css.ID("main").Element("div")},
		{"id after class", css.Class("a").ID("main")},
		{"class after attribute", css.Attr("disabled").Class("a")},
		{"attribute after pseudo-class", css.PseudoClass("hover").Attr("disabled")},
		{"pseudo-class after pseudo-element", css.PseudoElement("after").PseudoClass("hover")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.sel.Render(); !errors.Is(err, css.ErrFragmentOrder) {
				t.Errorf("Render() error = %v, want ErrFragmentOrder", err)
			}
		})
	}
}

func TestSelector_DuplicateBeatsOrderCheck(t *testing.T) {
	// A repeated singleton that is also out of order must be reported as a
	// duplicate - cardinality is checked before ordering.
	_, err := css.Element("div").Class("c").Element("span").Render()
	if !errors.Is(err, css.ErrDuplicateFragment) {
		t.Errorf("Render() error = %v, want ErrDuplicateFragment", err)
	}
}

func TestSelector_ErrSticks(t *testing.T) {
	sel := css.Class("a").Element("div")
	if sel.Err() == nil {
		t.Fatal("Err() = nil after out of order append")
	}
	first := sel.Err()

	// Later operations keep the chain failed with the original error and do
	// not commit anything.
	sel = sel.Class("b").ID("main").ID("other")
	if !errors.Is(sel.Err(), css.ErrFragmentOrder) {
		t.Errorf("Err() = %v, want ErrFragmentOrder", sel.Err())
	}
	if sel.Err() != first {
		t.Errorf("Err() = %v, want first recorded error %v", sel.Err(), first)
	}
}

func TestSelector_RenderIdempotent(t *testing.T) {
	sel := css.Element("td").PseudoClass("nth-of-type(even)")

	one := render(t, sel)
	two := render(t, sel)
	if one != two {
		t.Errorf("second Render() = %q, want %q", two, one)
	}
}

func TestCombine(t *testing.T) {
	got := render(t, css.Combine(css.Element("div").ID("main"), "+", css.Element("a")))
	if want := "div#main + a"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCombine_Nested(t *testing.T) {
	// Each sub-chain must be rendered fully before joining, with literal
	// space-combinator-space separators at every join point.
	sel := css.Combine(
		css.Element("div").ID("main").Class("container").Class("draggable"),
		"+",
		css.Combine(
			css.Element("table").ID("data"),
			"~",
			css.Combine(css.Element("tr").PseudoClass("nth-of-type(even)"), " ", css.Element("td").PseudoClass("nth-of-type(even)")),
		),
	)
	want := "div#main.container.draggable + table#data ~ tr:nth-of-type(even)   td:nth-of-type(even)"
	if got := render(t, sel); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCombine_CombinatorVerbatim(t *testing.T) {
	for _, op := range []string{">", "+", "~", " ", "||"} {
		got := render(t, css.Combine(css.Element("ul"), op, css.Element("li")))
		if want := "ul " + op + " li"; got != want {
			t.Errorf("Render() with %q = %q, want %q", op, got, want)
		}
	}
}

func TestCombine_PropagatesErrors(t *testing.T) {
	bad := css.Class("a").Element("div")

	if _, err := css.Combine(bad, ">", css.Element("p")).Render(); !errors.Is(err, css.ErrFragmentOrder) {
		t.Errorf("left side error = %v, want ErrFragmentOrder", err)
	}
	if _, err := css.Combine(css.Element("p"), ">", bad).Render(); !errors.Is(err, css.ErrFragmentOrder) {
		t.Errorf("right side error = %v, want ErrFragmentOrder", err)
	}
}

func TestCombine_DoesNotMutateSides(t *testing.T) {
	left := css.Element("div").ID("main")
	right := css.Element("a")

	if _, err := css.Combine(left, ">", right).Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Sides must render the same after being combined.
	if got := render(t, left); got != "div#main" {
		t.Errorf("left Render() = %q, want %q", got, "div#main")
	}
	if got := render(t, right); got != "a" {
		t.Errorf("right Render() = %q, want %q", got, "a")
	}
}

func TestFragmentKind_String(t *testing.T) {
	kinds := []struct {
		kind css.FragmentKind
		want string
	}{
		{css.FragmentElement, "element"},
		{css.FragmentID, "id"},
		{css.FragmentClass, "class"},
		{css.FragmentAttribute, "attribute"},
		{css.FragmentPseudoClass, "pseudo-class"},
		{css.FragmentPseudoElement, "pseudo-element"},
		{css.FragmentKind(42), "unknown"},
	}
	for _, tt := range kinds {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("FragmentKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
