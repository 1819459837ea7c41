package scene

const (
	// DragSensitivity converts cursor pixels to radians.
	DragSensitivity = 0.01

	// Per-tick increments applied while auto-rotation is on.
	AutoRotateStepY = 0.02
	AutoRotateStepX = 0.01
)

// Display receives parameter values for the UI readouts.
type Display interface {
	ShowParam(id ParamID, value float64, label string)
}

// Controller is the single owner of the view parameters. Input handlers and
// the animation tick mutate it and mark it dirty; the frame loop checks
// Dirty and calls Redraw. Mutators never draw.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	Params     Params
	AutoRotate bool

	renderer *Renderer
	selected ParamID

	dragging     bool
	lastX, lastY float64

	dirty bool
}

// NewController starts dirty so the first loop iteration draws.
func NewController(r *Renderer, p Params) *Controller {
	return &Controller{
		Params:   p,
		renderer: r,
		dirty:    true,
	}
}

// SetParam stores a value coming from a slider input.
func (c *Controller) SetParam(id ParamID, v float64) {
	if !id.valid() {
		return
	}
	c.Params.Set(id, v)
	c.dirty = true
}

// Nudge moves a parameter by whole slider steps, clamped to its range.
func (c *Controller) Nudge(id ParamID, steps int) {
	if !id.valid() || steps == 0 {
		return
	}
	r := id.Range()
	c.SetParam(id, r.clamp(c.Params.Get(id)+float64(steps)*r.Step))
}

// Selected is the parameter the keyboard slider currently targets.
func (c *Controller) Selected() ParamID { return c.selected }

// Select points the keyboard slider at id.
func (c *Controller) Select(id ParamID) {
	if !id.valid() {
		return
	}
	c.selected = id
	c.dirty = true
}

// SelectNext cycles the keyboard slider by delta positions.
func (c *Controller) SelectNext(delta int) {
	n := (int(c.selected) + delta) % NumParams
	if n < 0 {
		n += NumParams
	}
	c.selected = ParamID(n)
	c.dirty = true
}

// BeginDrag records the cursor position at mouse-down.
func (c *Controller) BeginDrag(x, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// DragTo turns cursor movement into rotation: horizontal motion spins about
// Y, vertical motion about X. It does nothing unless a drag is active.
func (c *Controller) DragTo(x, y float64) {
	if !c.dragging {
		return
	}
	dx, dy := x-c.lastX, y-c.lastY
	c.Params.RotY += dx * DragSensitivity
	c.Params.RotX += dy * DragSensitivity
	c.lastX, c.lastY = x, y
	c.dirty = true
}

// EndDrag handles both mouse-up and the cursor leaving the surface.
func (c *Controller) EndDrag() { c.dragging = false }

func (c *Controller) Dragging() bool { return c.dragging }

// Reset restores DefaultParams. Auto-rotation is left as is.
func (c *Controller) Reset() {
	c.Params = DefaultParams()
	c.dirty = true
}

// ToggleAutoRotate flips auto-rotation; it takes effect on the next Tick.
func (c *Controller) ToggleAutoRotate() {
	c.AutoRotate = !c.AutoRotate
}

// Tick advances the animation by one frame. It reports whether anything
// changed. The caller keeps ticking regardless of the result.
func (c *Controller) Tick() bool {
	if !c.AutoRotate {
		return false
	}
	c.Params.RotY += AutoRotateStepY
	c.Params.RotX += AutoRotateStepX
	c.dirty = true
	return true
}

// Invalidate requests a redraw without changing parameters, e.g. after the
// surface was resized or exposed.
func (c *Controller) Invalidate() { c.dirty = true }

// Dirty reports whether a redraw is pending.
func (c *Controller) Dirty() bool { return c.dirty }

// Redraw renders the current parameters to s and clears the dirty flag.
func (c *Controller) Redraw(s Surface) Frame {
	c.dirty = false
	return c.renderer.Render(s, c.Params)
}

// Sync pushes every parameter and its label to d, in slider order.
func (c *Controller) Sync(d Display) {
	for i := 0; i < NumParams; i++ {
		id := ParamID(i)
		v := c.Params.Get(id)
		d.ShowParam(id, v, Label(v))
	}
}
