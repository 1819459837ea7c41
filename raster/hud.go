package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"cubeview/scene"
)

// HUD collects parameter readouts and prints them in the top-left corner of
// a canvas. It implements scene.Display.
type HUD struct {
	Color  color.Color
	labels [scene.NumParams]string
}

// NewHUD creates a HUD with light gray text.
func NewHUD() *HUD {
	return &HUD{Color: color.Gray{Y: 0xCC}}
}

func (h *HUD) ShowParam(id scene.ParamID, _ float64, label string) {
	if int(id) >= len(h.labels) {
		return
	}
	h.labels[id] = id.String() + " " + label
}

// Lines returns the readouts in slider order.
func (h *HUD) Lines() []string {
	out := make([]string, 0, len(h.labels))
	for _, l := range h.labels {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Draw prints one readout per line.
func (h *HUD) Draw(c *Canvas) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  c.Img,
		Src:  image.NewUniform(h.Color),
		Face: face,
	}
	lineH := face.Metrics().Height
	y := fixed.I(8) + face.Metrics().Ascent
	for _, l := range h.Lines() {
		d.Dot = fixed.Point26_6{X: fixed.I(8), Y: y}
		d.DrawString(l)
		y += lineH
	}
}
