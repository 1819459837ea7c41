package scene

// Surface is a 2D drawing target with canvas-style path operations.
// Coordinates are in pixels with the origin at the top-left corner.
//
// A path is built with BeginPath, MoveTo, LineTo, ClosePath and Arc and is
// consumed by Fill or Stroke using the current fill color, stroke color and
// line width. Fill and Stroke leave the path in place.
type Surface interface {
	Size() (w, h int)
	Clear(c Color)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Arc(x, y, r, start, end float64)

	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	Fill()
	Stroke()
}
