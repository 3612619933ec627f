// Package render turns templates and resolved layouts into visual outputs.
//
// Two renderers are provided:
//
//   - [ToDOT] and [RenderSVG] draw the constraint graph of a template as a
//     node-link diagram via Graphviz, for debugging anchor chains.
//   - [LayoutSVG] draws a resolved layout as plain rectangles, a quick
//     preview of where components actually land.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/cardframe/pkg/template"
)

// Options configures constraint graph rendering.
type Options struct {
	// Detailed includes dimensions and margins in node labels.
	// When false, only the component id is shown.
	Detailed bool
}

// ToDOT converts a template's constraint graph to Graphviz DOT format.
// Components are boxes, the container is a distinguished house-shaped node,
// and each constraint becomes a labeled edge from source to target. Edges
// whose target component does not exist are drawn dashed, mirroring how the
// engine skips them.
func ToDOT(t template.Template, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph constraints {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  parent [shape=house, fillcolor=lightyellow, label=%q];\n",
		fmt.Sprintf("container\n%dx%d", t.Container.Width, t.Container.Height))

	known := make(map[int]bool, len(t.Components))
	for _, c := range t.Components {
		known[c.ID] = true
		attrs := []string{fmt.Sprintf("label=%q", componentLabel(c, opts.Detailed))}
		if !c.UseConstraints {
			attrs = append(attrs, "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(c.ID), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, cs := range t.Constraints {
		target := "parent"
		dangling := false
		if !cs.Target.Parent {
			target = nodeID(cs.Target.Component)
			dangling = !known[cs.Target.Component]
		}
		attrs := []string{fmt.Sprintf("label=%q", edgeLabel(cs))}
		if dangling {
			attrs = append(attrs, "style=dashed", "color=grey")
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", nodeID(cs.Source), target, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(id int) string {
	return fmt.Sprintf("c%d", id)
}

func componentLabel(c template.ComponentSpec, detailed bool) string {
	if !detailed {
		return fmt.Sprintf("#%d", c.ID)
	}
	w, _ := c.Width.MarshalJSON()
	h, _ := c.Height.MarshalJSON()
	parts := []string{
		fmt.Sprintf("#%d", c.ID),
		fmt.Sprintf("size: %s x %s", trimQuotes(string(w)), trimQuotes(string(h))),
	}
	if c.MarginTop != 0 || c.MarginRight != 0 || c.MarginBottom != 0 || c.MarginLeft != 0 {
		parts = append(parts, fmt.Sprintf("margin: %d %d %d %d",
			c.MarginTop, c.MarginRight, c.MarginBottom, c.MarginLeft))
	}
	return strings.Join(parts, "\n")
}

func edgeLabel(cs template.ConstraintSpec) string {
	if cs.Margin == 0 {
		return cs.Relation
	}
	return fmt.Sprintf("%s +%d", cs.Relation, cs.Margin)
}

func trimQuotes(s string) string {
	return strings.Trim(s, `"`)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's svg tag so the diagram starts at the
// origin and carries explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
