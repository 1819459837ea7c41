package scene

const (
	// PixelsPerUnit converts world units to pixels before Params.Scale is applied.
	PixelsPerUnit = 100

	// MinDepth is the smallest magnitude allowed for the perspective
	// denominator (Perspective + z).
	MinDepth = 1e-6
)

// Transform moves a base vertex into world space: translate first, then
// rotate about X, Y and Z in that order. The rotations pivot on the world
// origin, not on the cube center.
func Transform(v Vec3, p Params) Vec3 {
	w := v.Add(Vec3{p.TransX, p.TransY, p.TransZ})
	return w.RotateX(p.RotX).RotateY(p.RotY).RotateZ(p.RotZ)
}

// Project maps a world-space point onto a width x height surface.
//
//	factor = P / (P + z)
//	x' =  x * factor * scale * 100 + width/2
//	y' = -y * factor * scale * 100 + height/2
//
// A denominator closer to zero than MinDepth is pushed out to ±MinDepth so
// the result stays finite.
func Project(v Vec3, p Params, width, height int) Point2 {
	factor := p.Perspective / clampDepth(p.Perspective+v.Z)
	return Point2{
		X: v.X*factor*p.Scale*PixelsPerUnit + float64(width)/2,
		Y: -v.Y*factor*p.Scale*PixelsPerUnit + float64(height)/2,
	}
}

func clampDepth(d float64) float64 {
	switch {
	case d >= MinDepth || d <= -MinDepth:
		return d
	case d < 0:
		return -MinDepth
	default:
		return MinDepth
	}
}
