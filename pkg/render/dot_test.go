package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/cardframe/pkg/template"
)

func testTemplate() template.Template {
	return template.Template{
		Name:      "front",
		Container: template.Container{Width: 800, Height: 600},
		Components: []template.ComponentSpec{
			{ID: 1, Width: template.Px(200), Height: template.Px(30), UseConstraints: true},
			{ID: 2, Width: template.Pct(50), Height: template.Auto(), MarginTop: 8},
		},
		Constraints: []template.ConstraintSpec{
			{Source: 1, Relation: "center_horizontal", Target: template.ParentTarget()},
			{Source: 2, Relation: "top_to_bottom", Target: template.ComponentTarget(1), Margin: 12},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testTemplate(), Options{})

	for _, want := range []string{
		"digraph constraints",
		`"c1"`,
		`"c2"`,
		"container\\n800x600",
		`"c1" -> "parent"`,
		`"c2" -> "c1"`,
		"center_horizontal",
		"top_to_bottom +12",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testTemplate(), Options{Detailed: true})

	if !strings.Contains(dot, "size: 200 x 30") {
		t.Errorf("detailed label missing fixed size:\n%s", dot)
	}
	if !strings.Contains(dot, "size: 50% x auto") {
		t.Errorf("detailed label missing percent/auto size:\n%s", dot)
	}
	if !strings.Contains(dot, "margin: 8 0 0 0") {
		t.Errorf("detailed label missing margins:\n%s", dot)
	}
}

func TestToDOTDanglingEdge(t *testing.T) {
	tmpl := testTemplate()
	tmpl.Constraints = append(tmpl.Constraints, template.ConstraintSpec{
		Source: 1, Relation: "left_to_right", Target: template.ComponentTarget(42),
	})

	dot := ToDOT(tmpl, Options{})
	if !strings.Contains(dot, "style=dashed") {
		t.Errorf("dangling edge should be dashed:\n%s", dot)
	}
}

func TestToDOTNonConstraintComponentGreyed(t *testing.T) {
	dot := ToDOT(testTemplate(), Options{})
	// Component 2 has not opted into constraints.
	if !strings.Contains(dot, "fillcolor=lightgrey") {
		t.Errorf("passive component should be greyed:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>` + "\n" +
		`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg">` +
		`<g></g></svg>`)

	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}

	// SVG without a viewBox passes through untouched
	plain := []byte(`<svg><rect/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should pass through")
	}
}

func TestLayoutSVG(t *testing.T) {
	res := template.Result{
		Container: template.Container{Width: 800, Height: 600},
		Components: []template.Placed{
			{ID: 1, X: 300, Y: 20, Width: 200, Height: 30},
			{ID: 2, X: 0, Y: 60, Width: 400, Height: 50},
		},
	}

	svg := string(LayoutSVG(res))
	for _, want := range []string{
		`viewBox="0 0 800 600"`,
		`<rect x="300" y="20" width="200" height="30"`,
		`<rect x="0" y="60" width="400" height="50"`,
		`#1 200x30@(300,20)`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q:\n%s", want, svg)
		}
	}
}
