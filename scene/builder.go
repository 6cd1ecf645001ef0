package scene

import (
	"math"
	"strconv"
	"strings"
)

const twoPi = 2 * math.Pi

// Structural caps. Generation must stay bounded-time regardless of how
// extreme the parameter knobs are.
const (
	maxRings       = 7
	maxSpokes      = 48
	maxAccents     = 24
	maxBranchDepth = 3
)

// Build grows the complete structural insignia for a parameter bundle.
//
// The element order is fixed: background descriptor, orbit rings, spokes,
// branches, curved bands, petals, accents, center assembly. Every count,
// radius and angle is a deterministic function of params, so two builds
// from the same bundle are bit-for-bit identical. The ID counter and RNG
// stream are scoped to the call; nothing leaks between builds.
func Build(p Params) []Element {
	b := &builder{rng: NewRNG(p.Seed), p: p}
	b.defs()
	b.orbitRings()
	b.spokes()
	b.branches()
	b.curveBands()
	b.petals()
	b.accents()
	b.center()
	return b.out
}

type builder struct {
	rng *RNG
	p   Params
	n   int
	out []Element
}

// id allocates the next structural element ID.
func (b *builder) id() string {
	b.n++
	return "s" + strconv.Itoa(b.n)
}

func (b *builder) emit(e Element) {
	e.ID = b.id()
	b.out = append(b.out, e)
}

func (b *builder) defs() {
	b.emit(Element{
		Type:  TypeDefs,
		Layer: LayerDefs,
		Gradient: Gradient{
			Inner: b.p.Palette.BackgroundInner,
			Outer: b.p.Palette.BackgroundOuter,
		},
		Opacity: 1,
	})
}

func (b *builder) orbitRings() {
	count := 2 + int(b.p.DetailLevel*3+b.p.StructureLevel*3)
	if count > maxRings {
		count = maxRings
	}
	for i := 0; i < count; i++ {
		t := float64(i+1) / float64(count)
		r := 140 + t*(OuterRadius-140) + b.rng.Range(-12, 12)
		b.emit(Element{
			Type:        TypeRing,
			Layer:       LayerRings,
			CX:          CenterX,
			CY:          CenterY,
			R:           r,
			Stroke:      b.p.Palette.Subtle,
			StrokeWidth: b.rng.Range(0.6, 1.8),
			Opacity:     b.rng.Range(0.10, 0.25),
		})
	}
}

func (b *builder) spokes() {
	count := b.p.Symmetry * (2 + int(b.p.DetailLevel*4))
	if count > maxSpokes {
		count = maxSpokes
	}
	for i := 0; i < count; i++ {
		a := twoPi * float64(i) / float64(count)
		inner := 90.0
		if i%2 == 1 {
			inner = 150 + b.rng.Range(0, 40)
		}
		outer := OuterRadius - b.rng.Range(0, 30)
		x1, y1 := polar(inner, a)
		x2, y2 := polar(outer, a)
		b.emit(Element{
			Type:        TypeLine,
			Layer:       LayerSpokes,
			X1:          x1,
			Y1:          y1,
			X2:          x2,
			Y2:          y2,
			Stroke:      b.p.Palette.Main2,
			StrokeWidth: b.rng.Range(0.5, 1.5),
			Opacity:     b.rng.Range(0.15, 0.4),
		})
	}
}

func (b *builder) branches() {
	for i := 0; i < b.p.Symmetry; i++ {
		a := twoPi*float64(i)/float64(b.p.Symmetry) + b.rng.Range(-0.1, 0.1)
		x, y := polar(110, a)
		length := 90 + b.p.StructureLevel*120
		b.branch(x, y, a, length, 3.2, maxBranchDepth)
	}
}

// branch grows one limb and recurses into two children until depth runs
// out. The RNG is consumed in a fixed order: angle jitter, then the whole
// left subtree, then the whole right subtree.
func (b *builder) branch(x, y, angle, length, width float64, depth int) {
	if depth <= 0 || length < 12 {
		return
	}
	jitter := b.rng.Range(-0.15, 0.15)
	x2 := x + math.Cos(angle+jitter)*length
	y2 := y + math.Sin(angle+jitter)*length
	b.emit(Element{
		Type:        TypeLine,
		Layer:       LayerBranches,
		X1:          x,
		Y1:          y,
		X2:          x2,
		Y2:          y2,
		Stroke:      b.p.Palette.Main1,
		StrokeWidth: width,
		Opacity:     0.85,
	})
	spread := 0.35 + b.p.DetailLevel*0.4
	b.branch(x2, y2, angle-spread, length*0.62, width*0.7, depth-1)
	b.branch(x2, y2, angle+spread, length*0.62, width*0.7, depth-1)
}

func (b *builder) curveBands() {
	count := 1 + int(b.p.CurveBias*3)
	const segs = 12
	for i := 0; i < count; i++ {
		base := b.rng.Range(170, OuterRadius-40)
		amp := 8 + b.p.CurveBias*26
		var sb strings.Builder
		x0, y0 := polar(base+b.rng.Range(-amp, amp), 0)
		sb.WriteString("M " + fc(x0) + " " + fc(y0))
		for s := 1; s <= segs; s++ {
			a := twoPi * float64(s) / segs
			mid := a - twoPi/(2*segs)
			cx, cy := polar(base+b.rng.Range(-amp, amp)*1.6, mid)
			var ex, ey float64
			if s == segs {
				ex, ey = x0, y0
			} else {
				ex, ey = polar(base+b.rng.Range(-amp, amp), a)
			}
			sb.WriteString(" Q " + fc(cx) + " " + fc(cy) + " " + fc(ex) + " " + fc(ey))
		}
		sb.WriteString(" Z")
		b.emit(Element{
			Type:        TypePath,
			Layer:       LayerCurves,
			Path:        sb.String(),
			Stroke:      b.p.Palette.Main3,
			StrokeWidth: b.rng.Range(1, 2.4),
			Opacity:     b.rng.Range(0.3, 0.55),
		})
	}
}

func (b *builder) petals() {
	count := 2 * b.p.Symmetry
	base := b.rng.Range(190, 300)
	size := 28 + b.p.DetailLevel*30
	for i := 0; i < count; i++ {
		a := twoPi * float64(i) / float64(count)
		r := base + b.rng.Range(-14, 14)
		b.emit(Element{
			Type:    TypePath,
			Layer:   LayerPetals,
			Path:    petalPath(r, a, size, b.rng.Range(0.5, 0.9)),
			Fill:    b.p.Palette.Main1,
			Opacity: b.rng.Range(0.35, 0.6),
		})
	}
}

// petalPath builds a closed two-curve petal rooted at polar (r, angle),
// pointing outward, width times its length wide.
func petalPath(r, angle, length, width float64) string {
	bx, by := polar(r, angle)
	tx, ty := polar(r+length, angle)
	mx, my := polar(r+length*0.5, angle)
	px, py := math.Cos(angle+math.Pi/2), math.Sin(angle+math.Pi/2)
	w := length * width * 0.5
	c1x, c1y := mx+px*w, my+py*w
	c2x, c2y := mx-px*w, my-py*w
	return "M " + fc(bx) + " " + fc(by) +
		" Q " + fc(c1x) + " " + fc(c1y) + " " + fc(tx) + " " + fc(ty) +
		" Q " + fc(c2x) + " " + fc(c2y) + " " + fc(bx) + " " + fc(by) +
		" Z"
}

func (b *builder) accents() {
	count := 3 + int(b.p.AccentLevel*21)
	if count > maxAccents {
		count = maxAccents
	}
	for i := 0; i < count; i++ {
		a := b.rng.Angle()
		r := b.rng.Range(130, OuterRadius-10)
		cx, cy := polar(r, a)
		size := b.rng.Range(3, 9)
		rot := b.rng.Angle()
		sides := 3
		if b.rng.Float() < 0.4 {
			sides = 4
		}
		b.emit(Element{
			Type:    TypePolygon,
			Layer:   LayerAccents,
			Points:  regularPoints(cx, cy, size, rot, sides),
			Fill:    b.p.Palette.Highlight,
			Opacity: b.rng.Range(0.4, 0.85),
		})
	}
}

// center emits the fixed assembly: backing disc, two concentric rings,
// the layout polygon and the center dot.
func (b *builder) center() {
	p := b.p.Palette
	b.emit(Element{
		Type: TypeCircle, Layer: LayerCenter,
		CX: CenterX, CY: CenterY, R: 92,
		Fill: p.BackgroundInner, Opacity: 0.92,
	})
	b.emit(Element{
		Type: TypeRing, Layer: LayerCenter,
		CX: CenterX, CY: CenterY, R: 74,
		Stroke: p.Main2, StrokeWidth: 2, Opacity: 0.9,
	})
	b.emit(Element{
		Type: TypeRing, Layer: LayerCenter,
		CX: CenterX, CY: CenterY, R: 56,
		Stroke: p.Main3, StrokeWidth: 1.2, Opacity: 0.7,
	})
	b.emit(Element{
		Type: TypePolygon, Layer: LayerCenter,
		Points:      regularPoints(CenterX, CenterY, 38, -math.Pi/2, b.p.CenterSides()),
		Stroke:      p.Main1,
		StrokeWidth: 2.4,
		Opacity:     0.95,
	})
	b.emit(Element{
		Type: TypeCircle, Layer: LayerCenter,
		CX: CenterX, CY: CenterY, R: 4 + b.p.CurveBias*6,
		Fill: p.Highlight, Opacity: 1,
	})
}

// polar converts scene-centered polar coordinates to canvas coordinates.
func polar(r, angle float64) (x, y float64) {
	return CenterX + math.Cos(angle)*r, CenterY + math.Sin(angle)*r
}

// regularPoints returns the vertices of a regular polygon.
func regularPoints(cx, cy, r, rot float64, sides int) []Point {
	pts := make([]Point, sides)
	for i := 0; i < sides; i++ {
		a := rot + twoPi*float64(i)/float64(sides)
		pts[i] = Point{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r}
	}
	return pts
}

// fc formats a coordinate for path data with fixed two-decimal precision
// so path strings are stable across platforms.
func fc(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
