package raster

import (
	"strconv"
	"strings"

	"github.com/ImTheBus/insig/scene"
)

// quadSteps is the flattening resolution for quadratic segments.
const quadSteps = 8

// flattenPath converts generator path data (space-separated absolute
// M/L/Q/Z commands, the only commands the scene package emits) into a
// polyline. Malformed tokens terminate parsing at the last valid point;
// path data is produced in-module, so this is belt-and-braces only.
func flattenPath(data string) []scene.Point {
	tok := strings.Fields(data)
	var pts []scene.Point
	var cur scene.Point
	i := 0

	num := func() (float64, bool) {
		if i >= len(tok) {
			return 0, false
		}
		v, err := strconv.ParseFloat(tok[i], 64)
		if err != nil {
			return 0, false
		}
		i++
		return v, true
	}

	for i < len(tok) {
		cmd := tok[i]
		i++
		switch cmd {
		case "M", "L":
			x, okX := num()
			y, okY := num()
			if !okX || !okY {
				return pts
			}
			cur = scene.Point{X: x, Y: y}
			pts = append(pts, cur)
		case "Q":
			cx, ok1 := num()
			cy, ok2 := num()
			x, ok3 := num()
			y, ok4 := num()
			if !ok1 || !ok2 || !ok3 || !ok4 {
				return pts
			}
			for s := 1; s <= quadSteps; s++ {
				t := float64(s) / quadSteps
				u := 1 - t
				pts = append(pts, scene.Point{
					X: u*u*cur.X + 2*u*t*cx + t*t*x,
					Y: u*u*cur.Y + 2*u*t*cy + t*t*y,
				})
			}
			cur = scene.Point{X: x, Y: y}
		case "Z":
			if len(pts) > 0 {
				pts = append(pts, pts[0])
				cur = pts[0]
			}
		default:
			return pts
		}
	}
	return pts
}

// lerp8 linearly interpolates between two channel values.
func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
