package scene

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPath(t *testing.T) {
	Convey("Given an empty path", t, func() {
		var p Path

		Convey("a closed quad becomes one closed subpath", func() {
			p.MoveTo(0, 0)
			p.LineTo(10, 0)
			p.LineTo(10, 10)
			p.LineTo(0, 10)
			p.ClosePath()
			subs := p.Subpaths()
			So(subs, ShouldHaveLength, 1)
			So(subs[0].Closed, ShouldBeTrue)
			So(subs[0].Points, ShouldHaveLength, 4)

			Convey("and BeginPath discards it", func() {
				p.BeginPath()
				So(p.Subpaths(), ShouldBeEmpty)
			})
		})

		Convey("LineTo without a current point starts a subpath", func() {
			p.LineTo(3, 4)
			p.LineTo(5, 6)
			So(p.Subpaths()[0].Points, ShouldResemble, []Point2{{3, 4}, {5, 6}})
		})

		Convey("a full arc is a closed ring of points on the circle", func() {
			p.Arc(50, 50, 4, 0, 2*math.Pi)
			subs := p.Subpaths()
			So(subs, ShouldHaveLength, 1)
			pts := subs[0].Points
			So(len(pts), ShouldBeGreaterThan, 16)
			for _, pt := range pts {
				So(math.Hypot(pt.X-50, pt.Y-50), ShouldAlmostEqual, 4, 1e-9)
			}
			So(pts[0].X, ShouldAlmostEqual, pts[len(pts)-1].X, 1e-9)
			So(pts[0].Y, ShouldAlmostEqual, pts[len(pts)-1].Y, 1e-9)
		})

		Convey("stroking a closed triangle yields a quad per side and a join per corner", func() {
			p.MoveTo(0, 0)
			p.LineTo(10, 0)
			p.LineTo(0, 10)
			p.ClosePath()
			polys := p.StrokePolygons(2)
			So(polys, ShouldHaveLength, 6)
			// The first side runs along +x, so its quad spans y in [-1, 1].
			So(polys[0][0], ShouldResemble, Point2{0, 1})
			So(polys[0][2], ShouldResemble, Point2{10, -1})
		})

		Convey("a stroked square has mitered outer corners", func() {
			p.MoveTo(0, 0)
			p.LineTo(10, 0)
			p.LineTo(10, 10)
			p.LineTo(0, 10)
			p.ClosePath()
			polys := p.StrokePolygons(2)
			So(polys, ShouldHaveLength, 8)
			So(hasVertex(polys, Point2{-1, -1}), ShouldBeTrue)
			So(hasVertex(polys, Point2{11, 11}), ShouldBeTrue)

			Convey("and every polygon winds the same way", func() {
				for _, poly := range polys {
					So(signedArea(poly), ShouldBeLessThan, 0)
				}
			})
		})

		Convey("an open polyline joins interior corners only", func() {
			p.MoveTo(0, 0)
			p.LineTo(10, 0)
			p.LineTo(10, 10)
			polys := p.StrokePolygons(2)
			So(polys, ShouldHaveLength, 3)
			So(polys[2], ShouldHaveLength, 4)
		})

		Convey("a hairpin turn past the miter limit is bevelled", func() {
			p.MoveTo(0, 0)
			p.LineTo(100, 0)
			p.LineTo(0, 1)
			polys := p.StrokePolygons(2)
			So(polys, ShouldHaveLength, 3)
			So(polys[2], ShouldHaveLength, 3)
		})

		Convey("zero-length segments produce no stroke geometry", func() {
			p.MoveTo(5, 5)
			p.LineTo(5, 5)
			So(p.StrokePolygons(2), ShouldBeEmpty)
		})
	})
}

func hasVertex(polys [][]Point2, want Point2) bool {
	for _, poly := range polys {
		for _, pt := range poly {
			if pt == want {
				return true
			}
		}
	}
	return false
}
