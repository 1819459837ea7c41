package scene

import "math"

// maxArcStep is the largest angle covered by one segment of a flattened arc.
const maxArcStep = math.Pi / 16

// Subpath is a polyline, optionally closed back to its first point.
type Subpath struct {
	Points []Point2
	Closed bool
}

// Path records canvas-style path commands in flattened form. Surfaces embed
// it to get BeginPath, MoveTo, LineTo, ClosePath and Arc for free.
type Path struct {
	subs []Subpath
}

func (p *Path) BeginPath() { p.subs = p.subs[:0] }

func (p *Path) MoveTo(x, y float64) {
	p.subs = append(p.subs, Subpath{Points: []Point2{{x, y}}})
}

// LineTo starts a new subpath when there is no current point.
func (p *Path) LineTo(x, y float64) {
	cur := p.current()
	if cur == nil {
		p.MoveTo(x, y)
		return
	}
	cur.Points = append(cur.Points, Point2{x, y})
}

// ClosePath closes the current subpath and starts a new one at its first point.
func (p *Path) ClosePath() {
	cur := p.current()
	if cur == nil || len(cur.Points) == 0 {
		return
	}
	cur.Closed = true
	start := cur.Points[0]
	p.MoveTo(start.X, start.Y)
}

// Arc appends a circular arc around (x, y), joined to the current point by a
// straight line. Angles are in radians, increasing clockwise on screen.
func (p *Path) Arc(x, y, r, start, end float64) {
	n := int(math.Ceil(math.Abs(end-start) / maxArcStep))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		a := start + (end-start)*float64(i)/float64(n)
		px, py := x+r*math.Cos(a), y+r*math.Sin(a)
		if i == 0 && p.current() == nil {
			p.MoveTo(px, py)
			continue
		}
		p.LineTo(px, py)
	}
}

func (p *Path) current() *Subpath {
	if len(p.subs) == 0 {
		return nil
	}
	return &p.subs[len(p.subs)-1]
}

// Subpaths returns the recorded subpaths that have at least one segment.
func (p *Path) Subpaths() []Subpath {
	out := make([]Subpath, 0, len(p.subs))
	for _, s := range p.subs {
		if len(s.Points) > 1 {
			out = append(out, s)
		}
	}
	return out
}

// MiterLimit is the longest miter join, in multiples of the half width,
// before a corner falls back to a bevel.
const MiterLimit = 10

// StrokePolygons expands the path into convex polygons that together cover
// a stroke of the given width: one butt-ended quad per segment, then a join
// at every corner. Closed subpaths also join at their start point.
// Zero-length segments are skipped. All polygons share one winding, so
// nonzero and absolute-coverage fills never cancel where they overlap.
func (p *Path) StrokePolygons(width float64) [][]Point2 {
	hw := width / 2
	var polys [][]Point2
	for _, s := range p.Subpaths() {
		pts := distinct(s.Points, s.Closed)
		n := len(pts)
		if n < 2 {
			continue
		}
		segs := n - 1
		if s.Closed {
			segs = n
		}
		for i := 0; i < segs; i++ {
			polys = append(polys, segmentQuad(pts[i], pts[(i+1)%n], hw))
		}
		for i := 0; i < n; i++ {
			if !s.Closed && (i == 0 || i == n-1) {
				continue
			}
			if j := joinPolygon(pts[(i+n-1)%n], pts[i], pts[(i+1)%n], hw); j != nil {
				polys = append(polys, j)
			}
		}
	}
	return polys
}

// distinct drops repeated consecutive points, and the closing duplicate of a
// closed subpath.
func distinct(in []Point2, closed bool) []Point2 {
	out := make([]Point2, 0, len(in))
	for _, pt := range in {
		if len(out) > 0 && out[len(out)-1] == pt {
			continue
		}
		out = append(out, pt)
	}
	if closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

func segmentQuad(a, b Point2, hw float64) []Point2 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	nx, ny := -dy/l*hw, dx/l*hw
	return []Point2{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}
}

// joinPolygon fills the wedge the two quads leave open on the outside of the
// corner at p. It returns nil when a, p and b are collinear.
func joinPolygon(a, p, b Point2, hw float64) []Point2 {
	l0 := math.Hypot(p.X-a.X, p.Y-a.Y)
	l1 := math.Hypot(b.X-p.X, b.Y-p.Y)
	d0 := Point2{(p.X - a.X) / l0, (p.Y - a.Y) / l0}
	d1 := Point2{(b.X - p.X) / l1, (b.Y - p.Y) / l1}
	cross := d0.X*d1.Y - d0.Y*d1.X
	if cross == 0 {
		return nil
	}
	// Offset away from the turn.
	s := hw
	if cross > 0 {
		s = -hw
	}
	n0 := Point2{-d0.Y, d0.X}
	n1 := Point2{-d1.Y, d1.X}
	poly := []Point2{p, {p.X + n0.X*s, p.Y + n0.Y*s}}
	dot := n0.X*n1.X + n0.Y*n1.Y
	if 1+dot >= 2.0/(MiterLimit*MiterLimit) {
		k := s / (1 + dot)
		poly = append(poly, Point2{p.X + (n0.X+n1.X)*k, p.Y + (n0.Y+n1.Y)*k})
	}
	poly = append(poly, Point2{p.X + n1.X*s, p.Y + n1.Y*s})

	// Segment quads wind with negative signed area; match them.
	if signedArea(poly) > 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return poly
}

func signedArea(poly []Point2) float64 {
	var sum float64
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}
