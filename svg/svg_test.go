package svg

import (
	"strings"
	"testing"

	"github.com/ImTheBus/insig/scene"
)

func sampleElements() []scene.Element {
	return []scene.Element{
		{
			ID: "s1", Type: scene.TypeDefs, Layer: scene.LayerDefs,
			Gradient: scene.Gradient{Inner: "#2b1a17", Outer: "#120a09"},
		},
		{
			ID: "s2", Type: scene.TypeRing, Layer: scene.LayerRings,
			CX: 500, CY: 500, R: 200, Stroke: "#6b4a3f", StrokeWidth: 1.5, Opacity: 0.2,
		},
		{
			ID: "s3", Type: scene.TypeLine, Layer: scene.LayerSpokes,
			X1: 0, Y1: 0, X2: 10, Y2: 10, Stroke: "#f2a541", StrokeWidth: 1,
		},
		{
			ID: "s4", Type: scene.TypePath, Layer: scene.LayerCurves,
			Path: "M 0.00 0.00 Q 5.00 5.00 10.00 0.00", Stroke: "#d93b3b", StrokeWidth: 2,
		},
		{
			ID: "s5", Type: scene.TypePolygon, Layer: scene.LayerAccents,
			Points: []scene.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}},
			Fill:   "#ffd9a0",
		},
		{
			ID: "c0-1-ff", Type: scene.TypeCircle, Layer: scene.LayerAccents,
			CX: 50, CY: 60, R: 3, Fill: "#ffd9a0", Opacity: 0.8, Blur: true,
		},
	}
}

func TestDocument_Structure(t *testing.T) {
	doc := Document(sampleElements(), 800)

	wants := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="800" height="800" viewBox="0 0 1000 1000">`,
		`<radialGradient id="bg">`,
		`stop-color="#2b1a17"`,
		`<rect x="0" y="0" width="1000" height="1000" fill="url(#bg)"/>`,
		`<circle cx="500.00" cy="500.00" r="200.00" fill="none" stroke="#6b4a3f" stroke-width="1.50" opacity="0.20"/>`,
		`<line x1="0.00" y1="0.00" x2="10.00" y2="10.00" stroke-linecap="round" stroke="#f2a541" stroke-width="1.00"/>`,
		`<path d="M 0.00 0.00 Q 5.00 5.00 10.00 0.00" fill="none" stroke-linecap="round" stroke="#d93b3b" stroke-width="2.00"/>`,
		`<polygon points="1.00,2.00 3.00,4.00 5.00,6.00" fill="#ffd9a0"/>`,
		`filter="url(#soften)"`,
		`</svg>`,
	}
	for _, want := range wants {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestDocument_Deterministic(t *testing.T) {
	a := Document(sampleElements(), 512)
	b := Document(sampleElements(), 512)
	if a != b {
		t.Fatal("same elements produced different documents")
	}
}

func TestDocument_FullScene(t *testing.T) {
	els := scene.Build(scene.ParamsFromText("svg export", scene.ModeAuto))
	doc := Document(els, 1000)
	if !strings.HasPrefix(doc, "<svg ") || !strings.HasSuffix(doc, "</svg>\n") {
		t.Fatal("document is not a well-formed svg envelope")
	}
	for _, tag := range []string{"<circle ", "<line ", "<path ", "<polygon ", "<defs>"} {
		if !strings.Contains(doc, tag) {
			t.Errorf("full scene document missing %s elements", tag)
		}
	}
}
