package scene

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var samplePoints = []Vec3{
	{0, 0, 0},
	{1, 0, 0},
	{0.4, -0.4, 0.4},
	{1.85, 2.2, 1.0},
	{-3.5, 7.25, -0.125},
}

var sampleAngles = []float64{0, 0.01, 0.73, 1.2, math.Pi / 2, math.Pi, -2.5, 10}

func TestRotationPrimitives(t *testing.T) {
	rotations := map[string]func(Vec3, float64) Vec3{
		"X": Vec3.RotateX,
		"Y": Vec3.RotateY,
		"Z": Vec3.RotateZ,
	}

	Convey("Rotations are isometries", t, func() {
		for _, rot := range rotations {
			for _, p := range samplePoints {
				for _, a := range sampleAngles {
					got := rot(p, a)
					So(lenSq(got), ShouldAlmostEqual, lenSq(p), 1e-9)
				}
			}
		}
	})

	Convey("Rotating by -angle undoes the rotation", t, func() {
		for _, rot := range rotations {
			for _, p := range samplePoints {
				for _, a := range sampleAngles {
					got := rot(rot(p, a), -a)
					So(got.X, ShouldAlmostEqual, p.X, 1e-9)
					So(got.Y, ShouldAlmostEqual, p.Y, 1e-9)
					So(got.Z, ShouldAlmostEqual, p.Z, 1e-9)
				}
			}
		}
	})

	Convey("The rotation axis coordinate is unchanged", t, func() {
		p := Vec3{1.5, -2, 3}
		So(p.RotateX(0.8).X, ShouldEqual, p.X)
		So(p.RotateY(0.8).Y, ShouldEqual, p.Y)
		So(p.RotateZ(0.8).Z, ShouldEqual, p.Z)
	})

	Convey("Quarter turns follow the right-hand rule", t, func() {
		q := math.Pi / 2
		x := Vec3{1, 0, 0}
		y := Vec3{0, 1, 0}
		z := Vec3{0, 0, 1}
		assertNear := func(got, want Vec3) {
			So(got.X, ShouldAlmostEqual, want.X, 1e-12)
			So(got.Y, ShouldAlmostEqual, want.Y, 1e-12)
			So(got.Z, ShouldAlmostEqual, want.Z, 1e-12)
		}
		assertNear(y.RotateX(q), z)
		assertNear(z.RotateY(q), x)
		assertNear(x.RotateZ(q), y)
	})
}

func lenSq(v Vec3) float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }
