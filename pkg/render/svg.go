package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/cardframe/pkg/template"
)

// layoutPalette cycles over component fills so adjacent boxes are easy to
// tell apart in previews.
var layoutPalette = []string{
	"#cfe8fc", "#fcd9cf", "#d4f7d4", "#f7f3d4", "#e8d4f7", "#d4f0f7",
}

// LayoutSVG renders a resolved layout as an SVG of labeled rectangles on
// the container outline. It is a preview artifact, not a card renderer:
// components show their id, position, and size.
func LayoutSVG(res template.Result) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		res.Container.Width, res.Container.Height, res.Container.Width, res.Container.Height)
	fmt.Fprintf(&buf,
		`  <rect x="0" y="0" width="%d" height="%d" fill="white" stroke="#333" stroke-width="2"/>`+"\n",
		res.Container.Width, res.Container.Height)

	for i, p := range res.Components {
		fill := layoutPalette[i%len(layoutPalette)]
		fmt.Fprintf(&buf,
			`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="#666" stroke-width="1"/>`+"\n",
			p.X, p.Y, p.Width, p.Height, fill)
		fmt.Fprintf(&buf,
			`  <text x="%d" y="%d" font-family="monospace" font-size="12" fill="#333">#%d %dx%d@(%d,%d)</text>`+"\n",
			p.X+4, p.Y+14, p.ID, p.Width, p.Height, p.X, p.Y)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
