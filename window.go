package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cubeview/scene"
)

const (
	title         = "cubeview"
	frameInterval = 1.0 / 60
)

// viewer wires glfw input to the controller and redraws when it is dirty.
type viewer struct {
	window  *glfw.Window
	surf    *glSurface
	ctl     *scene.Controller
	verbose bool

	readout string
	fps     int
}

func runWindow(cfg scene.Config, ctl *scene.Controller, verbose bool) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize gl: %w", err)
	}
	fmt.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	// One tick per displayed frame, like requestAnimationFrame.
	glfw.SwapInterval(1)
	gl.Enable(gl.MULTISAMPLE)

	surf, err := newGLSurface(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer surf.Delete()

	v := &viewer{window: window, surf: surf, ctl: ctl, verbose: verbose}
	v.bind()
	v.resize()
	v.loop()
	return nil
}

func (v *viewer) bind() {
	v.window.SetMouseButtonCallback(v.onMouseButton)
	v.window.SetCursorPosCallback(v.onCursorPos)
	v.window.SetCursorEnterCallback(v.onCursorEnter)
	v.window.SetKeyCallback(v.onKey)
	v.window.SetFramebufferSizeCallback(func(*glfw.Window, int, int) { v.resize() })
	v.window.SetRefreshCallback(func(*glfw.Window) { v.ctl.Invalidate() })
}

func (v *viewer) resize() {
	fbw, fbh := v.window.GetFramebufferSize()
	w, h := v.window.GetSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	v.surf.Resize(w, h)
	v.ctl.Invalidate()
}

func (v *viewer) loop() {
	lastFpsTime := glfw.GetTime()
	frameCount := 0

	for !v.window.ShouldClose() {
		currentTime := glfw.GetTime()
		if currentTime-lastFpsTime >= 1.0 {
			v.fps = frameCount
			frameCount = 0
			lastFpsTime = currentTime
			v.updateTitle()
		}

		v.ctl.Tick()
		if !v.ctl.Dirty() {
			// Nothing to draw; keep ticking at display rate.
			glfw.WaitEventsTimeout(frameInterval)
			continue
		}
		v.sync()
		v.ctl.Redraw(v.surf)
		frameCount++

		v.window.SwapBuffers()
		glfw.PollEvents()
	}
}

// sync refreshes the readouts shown in the window title.
func (v *viewer) sync() {
	r := &titleReadout{selected: v.ctl.Selected()}
	v.ctl.Sync(r)
	v.readout = r.String()
	v.updateTitle()
}

func (v *viewer) updateTitle() {
	v.window.SetTitle(fmt.Sprintf("%s | %s | FPS: %d", title, v.readout, v.fps))
}

func (v *viewer) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		x, y := w.GetCursorPos()
		v.ctl.BeginDrag(x, y)
		v.logf("drag start at %.0f,%.0f", x, y)
	case glfw.Release:
		v.ctl.EndDrag()
		v.logf("drag end")
	}
}

func (v *viewer) onCursorPos(_ *glfw.Window, x, y float64) {
	v.ctl.DragTo(x, y)
}

func (v *viewer) onCursorEnter(_ *glfw.Window, entered bool) {
	if !entered && v.ctl.Dragging() {
		v.ctl.EndDrag()
		v.logf("drag cancelled, cursor left window")
	}
}

var paramKeys = map[glfw.Key]scene.ParamID{
	glfw.Key1: scene.ParamRotX,
	glfw.Key2: scene.ParamRotY,
	glfw.Key3: scene.ParamRotZ,
	glfw.Key4: scene.ParamTransX,
	glfw.Key5: scene.ParamTransY,
	glfw.Key6: scene.ParamTransZ,
	glfw.Key7: scene.ParamScale,
	glfw.Key8: scene.ParamPerspective,
}

func (v *viewer) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	steps := 1
	if mods&glfw.ModShift != 0 {
		steps = 10
	}
	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyTab:
		if mods&glfw.ModShift != 0 {
			v.ctl.SelectNext(-1)
		} else {
			v.ctl.SelectNext(1)
		}
	case glfw.KeyUp, glfw.KeyRight:
		v.ctl.Nudge(v.ctl.Selected(), steps)
	case glfw.KeyDown, glfw.KeyLeft:
		v.ctl.Nudge(v.ctl.Selected(), -steps)
	case glfw.KeyR:
		if action == glfw.Press {
			v.ctl.Reset()
			v.logf("view reset")
		}
	case glfw.KeySpace:
		if action == glfw.Press {
			v.ctl.ToggleAutoRotate()
			v.logf("auto-rotate %v", v.ctl.AutoRotate)
		}
	default:
		if id, ok := paramKeys[key]; ok {
			v.ctl.Select(id)
		}
	}
}

func (v *viewer) logf(format string, args ...any) {
	if v.verbose {
		log.Printf(format, args...)
	}
}

// titleReadout renders the slider labels on one line, brackets around the
// parameter the arrow keys adjust.
type titleReadout struct {
	selected scene.ParamID
	parts    []string
}

func (t *titleReadout) ShowParam(id scene.ParamID, _ float64, label string) {
	s := id.String() + " " + label
	if id == t.selected {
		s = "[" + s + "]"
	}
	t.parts = append(t.parts, s)
}

func (t *titleReadout) String() string { return strings.Join(t.parts, " ") }
