// Package raster renders a scene element list to a raster image.
//
// It uses the golang.org/x/image/vector scanline rasterizer for all shape
// coverage, approximating circles with cubic Béziers and strokes with
// perpendicular-offset quads. Output is deterministic: the same element
// list and size always produce the same pixels.
//
// This is the export path, not a live renderer; animation is out of scope.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/ImTheBus/insig/scene"
)

// kappa is the cubic Bézier circle-approximation constant.
const kappa = 0.5522847498307936

// Render draws the element list onto a new size-by-size RGBA image.
func Render(elements []scene.Element, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := canvas{img: img, size: size, scale: float64(size) / scene.CanvasSize}
	for _, e := range elements {
		c.draw(e)
	}
	return img
}

// EncodePNG renders the elements and writes them to w as PNG.
func EncodePNG(w io.Writer, elements []scene.Element, size int) error {
	if err := png.Encode(w, Render(elements, size)); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG renders the elements to a PNG file.
func SavePNG(path string, elements []scene.Element, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer f.Close()
	if err := EncodePNG(f, elements, size); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: close %s: %w", path, err)
	}
	return nil
}

type canvas struct {
	img   *image.RGBA
	size  int
	scale float64
}

func (c *canvas) draw(e scene.Element) {
	switch e.Type {
	case scene.TypeDefs:
		c.background(e.Gradient)
	case scene.TypeCircle:
		c.fillCircle(e.CX, e.CY, e.R, e.Fill, e.Opacity)
	case scene.TypeRing:
		c.ring(e.CX, e.CY, e.R, e.StrokeWidth, e.Stroke, e.Opacity)
	case scene.TypeLine:
		c.strokeSegment(e.X1, e.Y1, e.X2, e.Y2, e.StrokeWidth, e.Stroke, e.Opacity)
	case scene.TypePath:
		c.path(e)
	case scene.TypePolygon:
		c.polygon(e)
	}
}

// background paints the full-canvas radial gradient of the defs element.
func (c *canvas) background(g scene.Gradient) {
	ir, ig, ib := parseColor(g.Inner)
	or, og, ob := parseColor(g.Outer)
	cx, cy := float64(c.size)/2, float64(c.size)/2
	maxD := math.Hypot(cx, cy)
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			t := math.Hypot(float64(x)-cx, float64(y)-cy) / maxD
			if t > 1 {
				t = 1
			}
			c.img.SetRGBA(x, y, color.RGBA{
				R: lerp8(ir, or, t),
				G: lerp8(ig, og, t),
				B: lerp8(ib, ob, t),
				A: 0xFF,
			})
		}
	}
}

// fill composites the accumulated rasterizer coverage with col.
func (c *canvas) fill(r *vector.Rasterizer, col color.Color) {
	r.DrawOp = draw.Over
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *canvas) newRasterizer() *vector.Rasterizer {
	return vector.NewRasterizer(c.size, c.size)
}

// circlePath appends a scaled circle to the rasterizer as four cubics.
// dir -1 reverses the winding, which is how rings cut their hole.
func (c *canvas) circlePath(r *vector.Rasterizer, cx, cy, rad float64, dir float64) {
	s := c.scale
	x, y, rr := cx*s, cy*s, rad*s
	k := rr * kappa
	r.MoveTo(float32(x+rr), float32(y))
	if dir >= 0 {
		r.CubeTo(float32(x+rr), float32(y+k), float32(x+k), float32(y+rr), float32(x), float32(y+rr))
		r.CubeTo(float32(x-k), float32(y+rr), float32(x-rr), float32(y+k), float32(x-rr), float32(y))
		r.CubeTo(float32(x-rr), float32(y-k), float32(x-k), float32(y-rr), float32(x), float32(y-rr))
		r.CubeTo(float32(x+k), float32(y-rr), float32(x+rr), float32(y-k), float32(x+rr), float32(y))
	} else {
		r.CubeTo(float32(x+rr), float32(y-k), float32(x+k), float32(y-rr), float32(x), float32(y-rr))
		r.CubeTo(float32(x-k), float32(y-rr), float32(x-rr), float32(y-k), float32(x-rr), float32(y))
		r.CubeTo(float32(x-rr), float32(y+k), float32(x-k), float32(y+rr), float32(x), float32(y+rr))
		r.CubeTo(float32(x+k), float32(y+rr), float32(x+rr), float32(y+k), float32(x+rr), float32(y))
	}
	r.ClosePath()
}

func (c *canvas) fillCircle(cx, cy, rad float64, fill string, opacity float64) {
	if fill == "" {
		return
	}
	r := c.newRasterizer()
	c.circlePath(r, cx, cy, rad, 1)
	c.fill(r, rgba(fill, opacity))
}

// ring fills the annulus between r±width/2 using opposite windings.
func (c *canvas) ring(cx, cy, rad, width float64, stroke string, opacity float64) {
	if stroke == "" || rad <= 0 {
		return
	}
	if width <= 0 {
		width = 1
	}
	outer := rad + width/2
	inner := rad - width/2
	if inner < 0 {
		inner = 0
	}
	r := c.newRasterizer()
	c.circlePath(r, cx, cy, outer, 1)
	c.circlePath(r, cx, cy, inner, -1)
	c.fill(r, rgba(stroke, opacity))
}

// strokeSegment fills the quad swept by offsetting the segment by half
// the stroke width to each side.
func (c *canvas) strokeSegment(x1, y1, x2, y2, width float64, stroke string, opacity float64) {
	if stroke == "" {
		return
	}
	if width <= 0 {
		width = 1
	}
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	px, py := -dy/length*width/2, dx/length*width/2
	s := c.scale
	r := c.newRasterizer()
	r.MoveTo(float32((x1+px)*s), float32((y1+py)*s))
	r.LineTo(float32((x2+px)*s), float32((y2+py)*s))
	r.LineTo(float32((x2-px)*s), float32((y2-py)*s))
	r.LineTo(float32((x1-px)*s), float32((y1-py)*s))
	r.ClosePath()
	c.fill(r, rgba(stroke, opacity))
}

func (c *canvas) path(e scene.Element) {
	pts := flattenPath(e.Path)
	if len(pts) < 2 {
		return
	}
	if e.Fill != "" {
		s := c.scale
		r := c.newRasterizer()
		r.MoveTo(float32(pts[0].X*s), float32(pts[0].Y*s))
		for _, p := range pts[1:] {
			r.LineTo(float32(p.X*s), float32(p.Y*s))
		}
		r.ClosePath()
		c.fill(r, rgba(e.Fill, e.Opacity))
	}
	if e.Stroke != "" {
		for i := 1; i < len(pts); i++ {
			c.strokeSegment(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y,
				e.StrokeWidth, e.Stroke, e.Opacity)
		}
	}
}

func (c *canvas) polygon(e scene.Element) {
	if len(e.Points) < 3 {
		return
	}
	s := c.scale
	if e.Fill != "" {
		r := c.newRasterizer()
		r.MoveTo(float32(e.Points[0].X*s), float32(e.Points[0].Y*s))
		for _, p := range e.Points[1:] {
			r.LineTo(float32(p.X*s), float32(p.Y*s))
		}
		r.ClosePath()
		c.fill(r, rgba(e.Fill, e.Opacity))
	}
	if e.Stroke != "" {
		n := len(e.Points)
		for i := 0; i < n; i++ {
			a, b := e.Points[i], e.Points[(i+1)%n]
			c.strokeSegment(a.X, a.Y, b.X, b.Y, e.StrokeWidth, e.Stroke, e.Opacity)
		}
	}
}

// rgba parses a "#rrggbb" color and applies opacity as alpha.
func rgba(hex string, opacity float64) color.Color {
	r, g, b := parseColor(hex)
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(opacity*255 + 0.5)}
}

func parseColor(hex string) (r, g, b uint8) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	return hexByte(hex[1], hex[2]), hexByte(hex[3], hex[4]), hexByte(hex[5], hex[6])
}

func hexByte(hi, lo byte) uint8 {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
