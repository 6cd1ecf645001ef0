// Package scene provides the deterministic generative scene model for
// insignia rendering.
//
// A scene is an ordered list of Elements. Elements are produced two ways:
// a full build (Build) grows the complete structural insignia from a
// parameter bundle, and the stroke generators (StrokeArc, StrokeBranch,
// StrokePetals, StrokeRune, StrokeSparks) grow small motif batches for
// individual character edit events. The two families deliberately use
// distinct visual vocabularies: the full build speaks in rings, spokes
// and petals, the live strokes in arcs, twigs, sparks and runes.
//
// Everything in this package is pure computation: given the same inputs
// (and therefore the same RNG stream) the output is bit-for-bit identical.
package scene

import "strconv"

// ElementType tags the geometric kind of an element. Each type has a fixed
// set of meaningful geometry fields, documented on Element.
type ElementType uint8

const (
	// TypeCircle is a filled disc: CX, CY, R.
	TypeCircle ElementType = iota

	// TypeRing is a stroked, unfilled circle: CX, CY, R, StrokeWidth.
	TypeRing

	// TypeLine is a straight stroked segment: X1, Y1, X2, Y2, StrokeWidth.
	TypeLine

	// TypePath is a stroked or filled path: Path holds the data string
	// (M/L/Q/Z commands with absolute coordinates).
	TypePath

	// TypePolygon is a closed filled point list: Points.
	TypePolygon

	// TypeDefs is the scene's single background/gradient descriptor:
	// Gradient. It renders as the full-canvas backdrop.
	TypeDefs
)

// String returns the lower-case name of the type.
func (t ElementType) String() string {
	switch t {
	case TypeCircle:
		return "circle"
	case TypeRing:
		return "ring"
	case TypeLine:
		return "line"
	case TypePath:
		return "path"
	case TypePolygon:
		return "polygon"
	case TypeDefs:
		return "defs"
	}
	return "unknown(" + strconv.Itoa(int(t)) + ")"
}

// Layer names group elements for z-ordering and styling. Reconciliation
// never looks at layers; they exist for renderers.
const (
	LayerDefs     = "defs"
	LayerRings    = "rings"
	LayerSpokes   = "spokes"
	LayerBranches = "branches"
	LayerCurves   = "curves"
	LayerPetals   = "petals"
	LayerAccents  = "accents"
	LayerCenter   = "center"
)

// Point is a 2D coordinate in the logical 1000x1000 scene space.
type Point struct {
	X, Y float64
}

// Gradient describes the two-stop radial background gradient carried by
// the TypeDefs element.
type Gradient struct {
	Inner string // center color
	Outer string // edge color
}

// Element is the atomic unit of a scene.
//
// ID is assigned once at creation and never reused or mutated; it is the
// reconciliation key. Two elements in the same scene never share an ID.
// An ID present in both of two snapshots is treated as the same unchanged
// element even if its fields differ: in-place mutation of a persisting
// element is not supported.
type Element struct {
	ID    string
	Type  ElementType
	Layer string

	// Geometry. Which fields are meaningful depends on Type.
	CX, CY, R      float64
	X1, Y1, X2, Y2 float64
	Path           string
	Points         []Point
	Gradient       Gradient

	// Style. Stroke and Fill are CSS color strings ("" means none).
	Stroke      string
	Fill        string
	StrokeWidth float64
	Opacity     float64
	Blur        bool
}

// Canvas geometry shared by generators and renderers. The scene lives in
// a fixed logical coordinate space; renderers scale to device size.
const (
	CanvasSize  = 1000.0
	CenterX     = 500.0
	CenterY     = 500.0
	OuterRadius = 420.0
)
