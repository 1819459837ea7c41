package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"

	"cubeview/scene"
)

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.Img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Animation collects frames for an animated GIF.
type Animation struct {
	// Delay between frames in 1/100 s.
	Delay int
	g     gif.GIF
}

func NewAnimation(delay int) *Animation {
	return &Animation{Delay: delay}
}

// Add quantizes the current canvas contents into a new frame.
func (a *Animation) Add(c *Canvas) {
	b := c.Img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, c.Img, image.Point{})
	a.g.Image = append(a.g.Image, p)
	a.g.Delay = append(a.g.Delay, a.Delay)
}

// Encode writes the frames as a looping GIF.
func (a *Animation) Encode(w io.Writer) error {
	if len(a.g.Image) == 0 {
		return fmt.Errorf("encode gif: no frames")
	}
	if err := gif.EncodeAll(w, &a.g); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// ExportOptions controls a headless render. At most one of PNG and GIF may
// be set.
type ExportOptions struct {
	PNG, GIF string

	Width, Height int
	HUD           bool

	// Frames > 1 renders that many animation ticks; only meaningful for GIF.
	Frames int
	Delay  int
}

// Validate rejects asking for both a still image and an animation.
func (o ExportOptions) Validate() error {
	if o.PNG != "" && o.GIF != "" {
		return errors.New("-export and -gif are mutually exclusive")
	}
	return nil
}

// Enabled reports whether a headless export was requested.
func (o ExportOptions) Enabled() bool { return o.PNG != "" || o.GIF != "" }

// Export renders to whichever output opt names and returns the path written.
func Export(ctl *scene.Controller, opt ExportOptions) (string, error) {
	if err := opt.Validate(); err != nil {
		return "", err
	}
	switch {
	case opt.PNG != "":
		return opt.PNG, RenderPNG(ctl, opt.PNG, opt)
	case opt.GIF != "":
		return opt.GIF, RenderGIF(ctl, opt.GIF, opt)
	}
	return "", errors.New("no export path given")
}

// RenderPNG draws the controller's current view once and writes it to path.
func RenderPNG(ctl *scene.Controller, path string, opt ExportOptions) error {
	c := New(opt.Width, opt.Height)
	drawFrame(ctl, c, opt.HUD)
	return writeFile(path, c.WritePNG)
}

// RenderGIF draws opt.Frames consecutive frames, ticking the controller
// between them, and writes an animated GIF to path. Auto-rotation is forced
// on for the duration and restored afterwards.
func RenderGIF(ctl *scene.Controller, path string, opt ExportOptions) error {
	frames := opt.Frames
	if frames < 1 {
		frames = 1
	}
	delay := opt.Delay
	if delay <= 0 {
		delay = 2
	}
	prev := ctl.AutoRotate
	ctl.AutoRotate = true
	defer func() { ctl.AutoRotate = prev }()

	anim := NewAnimation(delay)
	c := New(opt.Width, opt.Height)
	for i := 0; i < frames; i++ {
		if i > 0 {
			ctl.Tick()
		}
		drawFrame(ctl, c, opt.HUD)
		anim.Add(c)
	}
	return writeFile(path, anim.Encode)
}

func drawFrame(ctl *scene.Controller, c *Canvas, hud bool) {
	ctl.Redraw(c)
	if hud {
		h := NewHUD()
		ctl.Sync(h)
		h.Draw(c)
	}
}

func writeFile(path string, enc func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return enc(f)
}
