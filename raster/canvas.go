// Package raster implements scene.Surface on an in-memory RGBA image.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"cubeview/scene"
)

// Canvas draws into an *image.RGBA. Fills and wide strokes are
// anti-aliased; hairlines (width <= 1) use a DDA walk.
type Canvas struct {
	scene.Path

	Img *image.RGBA

	z         *vector.Rasterizer
	scratch   []scene.Point2
	fill      scene.Color
	stroke    scene.Color
	lineWidth float64
}

// New allocates a w x h canvas.
func New(w, h int) *Canvas {
	return &Canvas{
		Img:       image.NewRGBA(image.Rect(0, 0, w, h)),
		z:         vector.NewRasterizer(w, h),
		fill:      scene.RGB(0, 0, 0),
		stroke:    scene.RGB(0, 0, 0),
		lineWidth: 1,
	}
}

func (c *Canvas) Size() (w, h int) {
	b := c.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear(col scene.Color) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) SetFillColor(col scene.Color)   { c.fill = col }
func (c *Canvas) SetStrokeColor(col scene.Color) { c.stroke = col }
func (c *Canvas) SetLineWidth(w float64)         { c.lineWidth = w }

// Fill paints the interior of every subpath; open subpaths are closed
// implicitly.
func (c *Canvas) Fill() {
	subs := c.Subpaths()
	if len(subs) == 0 {
		return
	}
	for _, s := range subs {
		c.polygon(s.Points)
	}
	c.flush(c.fill)
}

// Stroke outlines the path with the current line width.
func (c *Canvas) Stroke() {
	if c.lineWidth <= 1 {
		for _, s := range c.Subpaths() {
			for i := 1; i < len(s.Points); i++ {
				c.drawLine(s.Points[i-1], s.Points[i], c.stroke)
			}
			if s.Closed {
				c.drawLine(s.Points[len(s.Points)-1], s.Points[0], c.stroke)
			}
		}
		return
	}
	polys := c.StrokePolygons(c.lineWidth)
	if len(polys) == 0 {
		return
	}
	for _, p := range polys {
		c.polygon(p)
	}
	c.flush(c.stroke)
}

func (c *Canvas) flush(col scene.Color) {
	w, h := c.Size()
	c.z.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{})
	c.z.Reset(w, h)
}

// polygon adds one closed contour to the rasterizer, clipped to the guard
// band first. The rasterizer walks every row between a contour's extremes,
// so a vertex projected millions of pixels away would cost as many
// iterations; clipping keeps the on-screen part exact and the walk short.
func (c *Canvas) polygon(pts []scene.Point2) {
	c.scratch = c.scratch[:0]
	for _, p := range pts {
		c.scratch = append(c.scratch, finite(p))
	}
	c.scratch = c.band().clipPolygon(c.scratch)
	if len(c.scratch) < 3 {
		return
	}
	c.z.MoveTo(float32(c.scratch[0].X), float32(c.scratch[0].Y))
	for _, p := range c.scratch[1:] {
		c.z.LineTo(float32(p.X), float32(p.Y))
	}
	c.z.ClosePath()
}

// drawLine draws a hairline from a to b, blending col over the image.
func (c *Canvas) drawLine(a, b scene.Point2, col scene.Color) {
	a, b, ok := c.band().clipSegment(finite(a), finite(b))
	if !ok {
		return
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		c.blend(int(a.X), int(a.Y), col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := a.X
	y := a.Y

	for i := 0; i <= int(steps); i++ {
		c.blend(int(x), int(y), col)
		x += xInc
		y += yInc
	}
}

// band is the image rectangle grown by guardMargin on every side.
func (c *Canvas) band() rect {
	w, h := c.Size()
	return rect{
		minX: -guardMargin, minY: -guardMargin,
		maxX: float64(w) + guardMargin, maxY: float64(h) + guardMargin,
	}
}

func (c *Canvas) blend(x, y int, col scene.Color) {
	if !(image.Point{x, y}.In(c.Img.Bounds())) {
		return
	}
	offset := c.Img.PixOffset(x, y)
	pix := c.Img.Pix[offset : offset+4 : offset+4]
	a := uint32(col.A)
	ia := 255 - a
	pix[0] = uint8((uint32(col.R)*a + uint32(pix[0])*ia) / 255)
	pix[1] = uint8((uint32(col.G)*a + uint32(pix[1])*ia) / 255)
	pix[2] = uint8((uint32(col.B)*a + uint32(pix[2])*ia) / 255)
	pix[3] = uint8(a + uint32(pix[3])*ia/255)
}
