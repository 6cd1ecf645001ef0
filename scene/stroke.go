package scene

import (
	"math"
	"strconv"
)

// stroke.go holds the live motif generators. Each one consumes its RNG in
// a fixed order and returns a small batch of elements for one character
// edit event. These are a separate visual vocabulary from Build: the full
// scene speaks in rings, spokes and petal wheels, live typing in arcs,
// twigs, sparks and runes. The split is deliberate and kept that way.
//
// A generator is a pure function of (rng, params, charIndex): replaying
// the same seed reproduces identical geometry and identical IDs.

// Stroke is the signature shared by the five motif generators.
type Stroke func(rng *RNG, p Params, charIndex int) []Element

// strokeID builds an element ID for a character event. The RNG seed (the
// session's running hash at the event) is folded in so that re-typing the
// same character at the same index after a deletion still mints fresh,
// non-colliding identifiers.
type strokeID struct {
	prefix string
	suffix string
	n      int
}

func newStrokeID(rng *RNG, charIndex int) *strokeID {
	return &strokeID{
		prefix: "c" + strconv.Itoa(charIndex) + "-",
		suffix: "-" + strconv.FormatUint(uint64(rng.Seed()), 16),
	}
}

func (s *strokeID) next() string {
	s.n++
	return s.prefix + strconv.Itoa(s.n) + s.suffix
}

// StrokeArc emits a short ring-hugging arc with a terminal bead.
func StrokeArc(rng *RNG, p Params, charIndex int) []Element {
	ids := newStrokeID(rng, charIndex)
	r := rng.Range(150, OuterRadius-30)
	start := rng.Angle()
	sweep := rng.Range(0.4, 1.3)

	x0, y0 := polar(r, start)
	m1x, m1y := polar(r*1.01, start+sweep*0.25)
	e1x, e1y := polar(r, start+sweep*0.5)
	m2x, m2y := polar(r*1.01, start+sweep*0.75)
	e2x, e2y := polar(r, start+sweep)
	path := "M " + fc(x0) + " " + fc(y0) +
		" Q " + fc(m1x) + " " + fc(m1y) + " " + fc(e1x) + " " + fc(e1y) +
		" Q " + fc(m2x) + " " + fc(m2y) + " " + fc(e2x) + " " + fc(e2y)

	els := []Element{{
		ID:          ids.next(),
		Type:        TypePath,
		Layer:       LayerCurves,
		Path:        path,
		Stroke:      p.Palette.Main3,
		StrokeWidth: rng.Range(1.2, 2.6),
		Opacity:     rng.Range(0.5, 0.85),
	}}
	if rng.Float() < 0.6 {
		els = append(els, Element{
			ID:      ids.next(),
			Type:    TypeCircle,
			Layer:   LayerCurves,
			CX:      e2x,
			CY:      e2y,
			R:       rng.Range(2, 4.5),
			Fill:    p.Palette.Highlight,
			Opacity: 0.9,
		})
	}
	return els
}

// StrokeBranch emits a radial twig: a trunk and two shrinking child
// generations, at most two levels deep.
func StrokeBranch(rng *RNG, p Params, charIndex int) []Element {
	ids := newStrokeID(rng, charIndex)
	angle := rng.Angle()
	x, y := polar(rng.Range(120, 260), angle)
	length := rng.Range(40, 70+p.StructureLevel*50)
	depth := 1 + rng.IntN(2)

	var els []Element
	var grow func(x, y, angle, length, width float64, depth int)
	grow = func(x, y, angle, length, width float64, depth int) {
		if depth < 0 || length < 8 {
			return
		}
		jitter := rng.Range(-0.2, 0.2)
		x2 := x + math.Cos(angle+jitter)*length
		y2 := y + math.Sin(angle+jitter)*length
		els = append(els, Element{
			ID:          ids.next(),
			Type:        TypeLine,
			Layer:       LayerBranches,
			X1:          x,
			Y1:          y,
			X2:          x2,
			Y2:          y2,
			Stroke:      p.Palette.Main1,
			StrokeWidth: width,
			Opacity:     0.8,
		})
		spread := rng.Range(0.3, 0.7)
		grow(x2, y2, angle-spread, length*0.6, width*0.7, depth-1)
		grow(x2, y2, angle+spread, length*0.6, width*0.7, depth-1)
	}
	grow(x, y, angle, length, 2.6, depth)
	return els
}

// StrokePetals emits a 3-5 petal cluster at a picked radius band.
func StrokePetals(rng *RNG, p Params, charIndex int) []Element {
	ids := newStrokeID(rng, charIndex)
	count := 3 + rng.IntN(3)
	base := rng.Range(160, 320)
	center := rng.Angle()
	size := rng.Range(18, 34)

	els := make([]Element, 0, count)
	for i := 0; i < count; i++ {
		a := center + (float64(i)-float64(count-1)/2)*0.28
		els = append(els, Element{
			ID:      ids.next(),
			Type:    TypePath,
			Layer:   LayerPetals,
			Path:    petalPath(base, a, size, rng.Range(0.45, 0.8)),
			Fill:    p.Palette.Main2,
			Opacity: rng.Range(0.4, 0.7),
		})
	}
	return els
}

// StrokeRune emits a single rotated bar polygon near the outer edge.
func StrokeRune(rng *RNG, p Params, charIndex int) []Element {
	ids := newStrokeID(rng, charIndex)
	a := rng.Angle()
	r := rng.Range(OuterRadius-70, OuterRadius-15)
	cx, cy := polar(r, a)
	long := rng.Range(14, 30)
	short := rng.Range(2.5, 5)
	rot := a + rng.Range(-0.5, 0.5)

	dx, dy := math.Cos(rot), math.Sin(rot)
	px, py := -dy, dx
	pts := []Point{
		{X: cx + dx*long + px*short, Y: cy + dy*long + py*short},
		{X: cx - dx*long + px*short, Y: cy - dy*long + py*short},
		{X: cx - dx*long - px*short, Y: cy - dy*long - py*short},
		{X: cx + dx*long - px*short, Y: cy + dy*long - py*short},
	}
	return []Element{{
		ID:      ids.next(),
		Type:    TypePolygon,
		Layer:   LayerAccents,
		Points:  pts,
		Fill:    p.Palette.Main3,
		Opacity: rng.Range(0.55, 0.9),
	}}
}

// StrokeSparks emits a scattered burst of small circles.
func StrokeSparks(rng *RNG, p Params, charIndex int) []Element {
	ids := newStrokeID(rng, charIndex)
	count := 4 + rng.IntN(6)
	center := rng.Angle()
	base := rng.Range(140, OuterRadius-20)

	els := make([]Element, 0, count)
	for i := 0; i < count; i++ {
		a := center + rng.Range(-0.45, 0.45)
		r := base + rng.Range(-50, 50)
		cx, cy := polar(r, a)
		blur := rng.Float() < 0.3
		els = append(els, Element{
			ID:      ids.next(),
			Type:    TypeCircle,
			Layer:   LayerAccents,
			CX:      cx,
			CY:      cy,
			R:       rng.Range(1.2, 4),
			Fill:    p.Palette.Highlight,
			Opacity: rng.Range(0.5, 1),
			Blur:    blur,
		})
	}
	return els
}
