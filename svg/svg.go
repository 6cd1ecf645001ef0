// Package svg serializes a scene element list to a standalone SVG
// document. It is pure string assembly: same elements in, byte-identical
// document out. Used for export; generation never depends on it.
package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ImTheBus/insig/scene"
)

// ids reserved in the defs block.
const (
	gradientID = "bg"
	blurID     = "soften"
)

// Document renders elements into a complete SVG document with a square
// size-by-size pixel viewport over the logical scene coordinate space.
// Elements are emitted in list order, which already encodes layering.
func Document(elements []scene.Element, size int) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		size, size, int(scene.CanvasSize), int(scene.CanvasSize))
	for _, e := range elements {
		writeElement(&b, e)
	}
	b.WriteString("</svg>\n")
	return b.String()
}

func writeElement(b *strings.Builder, e scene.Element) {
	switch e.Type {
	case scene.TypeDefs:
		writeDefs(b, e)
	case scene.TypeCircle:
		fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s"%s/>`+"\n",
			fc(e.CX), fc(e.CY), fc(e.R), orNone(e.Fill), style(e))
	case scene.TypeRing:
		fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="none"%s/>`+"\n",
			fc(e.CX), fc(e.CY), fc(e.R), style(e))
	case scene.TypeLine:
		fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke-linecap="round"%s/>`+"\n",
			fc(e.X1), fc(e.Y1), fc(e.X2), fc(e.Y2), style(e))
	case scene.TypePath:
		fmt.Fprintf(b, `<path d="%s" fill="%s" stroke-linecap="round"%s/>`+"\n",
			e.Path, orNone(e.Fill), style(e))
	case scene.TypePolygon:
		fmt.Fprintf(b, `<polygon points="%s" fill="%s"%s/>`+"\n",
			points(e.Points), orNone(e.Fill), style(e))
	}
}

// writeDefs emits the gradient and blur definitions plus the full-canvas
// backdrop that references the gradient.
func writeDefs(b *strings.Builder, e scene.Element) {
	fmt.Fprintf(b, `<defs>`+
		`<radialGradient id="%s"><stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/></radialGradient>`+
		`<filter id="%s"><feGaussianBlur stdDeviation="2.5"/></filter>`+
		`</defs>`+"\n",
		gradientID, e.Gradient.Inner, e.Gradient.Outer, blurID)
	fmt.Fprintf(b, `<rect x="0" y="0" width="%d" height="%d" fill="url(#%s)"/>`+"\n",
		int(scene.CanvasSize), int(scene.CanvasSize), gradientID)
}

// orNone maps the empty fill to SVG's explicit "none".
func orNone(fill string) string {
	if fill == "" {
		return "none"
	}
	return fill
}

// style renders the stroke, opacity and blur attributes of an element;
// fill is handled per shape because its default differs.
func style(e scene.Element) string {
	var b strings.Builder
	if e.Stroke != "" {
		fmt.Fprintf(&b, ` stroke="%s"`, e.Stroke)
		if e.StrokeWidth > 0 {
			fmt.Fprintf(&b, ` stroke-width="%s"`, fc(e.StrokeWidth))
		}
	}
	if e.Opacity > 0 && e.Opacity < 1 {
		fmt.Fprintf(&b, ` opacity="%s"`, fc(e.Opacity))
	}
	if e.Blur {
		fmt.Fprintf(&b, ` filter="url(#%s)"`, blurID)
	}
	return b.String()
}

func points(pts []scene.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fc(p.X) + "," + fc(p.Y)
	}
	return strings.Join(parts, " ")
}

// fc formats coordinates and style numbers with fixed two-decimal
// precision, matching the precision the generators use in path data.
func fc(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
