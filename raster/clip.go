package raster

import (
	"math"

	"cubeview/scene"
)

const (
	// guardMargin keeps clip edges outside the image so anti-aliased
	// coverage along the border is unaffected.
	guardMargin = 8

	// farCoord stands in for infinities. Finite coordinates beyond it are
	// treated the same way.
	farCoord = 1e15
)

type rect struct {
	minX, minY, maxX, maxY float64
}

// finite maps NaN to 0 and clamps each coordinate to ±farCoord.
func finite(p scene.Point2) scene.Point2 {
	return scene.Point2{X: bounded(p.X), Y: bounded(p.Y)}
}

func bounded(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-farCoord, math.Min(farCoord, v))
}

// clipSegment clips a to b against r (Liang-Barsky). The clipped endpoints
// stay on the original line. ok is false when nothing of the segment is
// inside r.
func (r rect) clipSegment(a, b scene.Point2) (scene.Point2, scene.Point2, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, a.X - r.minX},
		{dx, r.maxX - a.X},
		{-dy, a.Y - r.minY},
		{dy, r.maxY - a.Y},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, t)
		}
	}
	if t1 < 1 {
		b = scene.Point2{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}
	if t0 > 0 {
		a = scene.Point2{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}
	return a, b, true
}

// clipPolygon clips a closed contour against r (Sutherland-Hodgman). The
// result covers the same area inside r. pts is reused for the output.
func (r rect) clipPolygon(pts []scene.Point2) []scene.Point2 {
	var in []scene.Point2
	for edge := 0; edge < 4 && len(pts) > 0; edge++ {
		in = append(in[:0], pts...)
		pts = pts[:0]
		prev := in[len(in)-1]
		for _, cur := range in {
			curIn, prevIn := r.inside(edge, cur), r.inside(edge, prev)
			if curIn != prevIn {
				pts = append(pts, r.cross(edge, prev, cur))
			}
			if curIn {
				pts = append(pts, cur)
			}
			prev = cur
		}
	}
	return pts
}

func (r rect) inside(edge int, p scene.Point2) bool {
	switch edge {
	case 0:
		return p.X >= r.minX
	case 1:
		return p.X <= r.maxX
	case 2:
		return p.Y >= r.minY
	default:
		return p.Y <= r.maxY
	}
}

// cross returns where a to b meets the given edge; a and b lie on opposite
// sides of it.
func (r rect) cross(edge int, a, b scene.Point2) scene.Point2 {
	switch edge {
	case 0, 1:
		x := r.minX
		if edge == 1 {
			x = r.maxX
		}
		t := (x - a.X) / (b.X - a.X)
		return scene.Point2{X: x, Y: a.Y + t*(b.Y-a.Y)}
	default:
		y := r.minY
		if edge == 3 {
			y = r.maxY
		}
		t := (y - a.Y) / (b.Y - a.Y)
		return scene.Point2{X: a.X + t*(b.X-a.X), Y: y}
	}
}
