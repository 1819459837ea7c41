package scene

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type displayLog struct {
	ids    []ParamID
	labels []string
}

func (d *displayLog) ShowParam(id ParamID, _ float64, label string) {
	d.ids = append(d.ids, id)
	d.labels = append(d.labels, label)
}

func newTestController() *Controller {
	return NewController(NewRenderer(DefaultSide), DefaultParams())
}

func TestControllerReset(t *testing.T) {
	Convey("Given a controller after a series of edits", t, func() {
		c := newTestController()
		c.SetParam(ParamRotX, 3)
		c.SetParam(ParamPerspective, 12.5)
		c.Nudge(ParamScale, -4)
		c.BeginDrag(10, 10)
		c.DragTo(60, -30)
		c.EndDrag()
		c.ToggleAutoRotate()
		c.Tick()
		So(c.Params, ShouldNotResemble, DefaultParams())

		Convey("Reset restores exactly the default values", func() {
			c.Reset()
			So(c.Params, ShouldResemble, Params{
				RotX: 0.73, RotY: 1.2, RotZ: 0.92,
				TransX: 1.45, TransY: 1.8, TransZ: 1.4,
				Scale: 1.6, Perspective: 5,
			})
			So(c.Dirty(), ShouldBeTrue)
		})
	})
}

func TestControllerAutoRotate(t *testing.T) {
	Convey("Given a controller with auto-rotation off", t, func() {
		c := newTestController()
		start := c.Params

		Convey("ticking changes nothing", func() {
			So(c.Tick(), ShouldBeFalse)
			So(c.Params, ShouldResemble, start)
		})

		Convey("toggling twice returns to the original state", func() {
			c.ToggleAutoRotate()
			So(c.AutoRotate, ShouldBeTrue)
			c.ToggleAutoRotate()
			So(c.AutoRotate, ShouldBeFalse)
		})

		Convey("when enabled each tick adds exactly one increment", func() {
			c.ToggleAutoRotate()
			So(c.Params, ShouldResemble, start)

			So(c.Tick(), ShouldBeTrue)
			So(c.Params.RotY, ShouldEqual, start.RotY+AutoRotateStepY)
			So(c.Params.RotX, ShouldEqual, start.RotX+AutoRotateStepX)

			c.Tick()
			So(c.Params.RotY, ShouldEqual, start.RotY+AutoRotateStepY+AutoRotateStepY)
			So(c.Params.RotZ, ShouldEqual, start.RotZ)
		})
	})
}

func TestControllerDrag(t *testing.T) {
	Convey("Given a controller", t, func() {
		c := newTestController()
		start := c.Params

		Convey("moving without a drag does nothing", func() {
			c.DragTo(100, 100)
			So(c.Params, ShouldResemble, start)
		})

		Convey("dragging maps dx to rotY and dy to rotX", func() {
			c.BeginDrag(100, 100)
			c.DragTo(130, 90)
			So(c.Params.RotY, ShouldAlmostEqual, start.RotY+0.3, 1e-12)
			So(c.Params.RotX, ShouldAlmostEqual, start.RotX-0.1, 1e-12)

			Convey("deltas are taken from the last cursor position", func() {
				c.DragTo(140, 90)
				So(c.Params.RotY, ShouldAlmostEqual, start.RotY+0.4, 1e-12)
			})

			Convey("ending the drag stops further rotation", func() {
				c.EndDrag()
				So(c.Dragging(), ShouldBeFalse)
				before := c.Params
				c.DragTo(500, 500)
				So(c.Params, ShouldResemble, before)
			})
		})
	})
}

func TestControllerRedraw(t *testing.T) {
	Convey("Given a fresh controller", t, func() {
		c := newTestController()
		rec := &recorder{w: 600, h: 600}

		Convey("it starts dirty and redraw clears the flag", func() {
			So(c.Dirty(), ShouldBeTrue)
			f := c.Redraw(rec)
			So(c.Dirty(), ShouldBeFalse)
			So(f.Projected[0].X, ShouldAlmostEqual, goldenProjected[0].X, 1e-9)
		})

		Convey("setters mark it dirty without drawing", func() {
			c.Redraw(rec)
			n := len(rec.ops)
			c.SetParam(ParamRotZ, 0)
			So(c.Dirty(), ShouldBeTrue)
			So(len(rec.ops), ShouldEqual, n)
		})

		Convey("toggling alone does not request a redraw", func() {
			c.Redraw(rec)
			c.ToggleAutoRotate()
			So(c.Dirty(), ShouldBeFalse)
			c.Tick()
			So(c.Dirty(), ShouldBeTrue)
		})
	})
}

func TestControllerSliders(t *testing.T) {
	Convey("Given a controller", t, func() {
		c := newTestController()

		Convey("Sync reports all eight values in slider order", func() {
			d := &displayLog{}
			c.Sync(d)
			So(d.ids, ShouldResemble, []ParamID{
				ParamRotX, ParamRotY, ParamRotZ,
				ParamTransX, ParamTransY, ParamTransZ,
				ParamScale, ParamPerspective,
			})
			So(d.labels, ShouldResemble, []string{"0.73", "1.20", "0.92", "1.45", "1.80", "1.40", "1.60", "5.00"})
		})

		Convey("SetParam takes slider values unvalidated", func() {
			c.SetParam(ParamScale, -40)
			So(c.Params.Scale, ShouldEqual, -40.0)
		})

		Convey("Nudge steps and clamps to the slider range", func() {
			c.Nudge(ParamPerspective, 2)
			So(c.Params.Perspective, ShouldEqual, 6.0)
			c.Nudge(ParamPerspective, -100)
			So(c.Params.Perspective, ShouldEqual, 1.0)
			c.Nudge(ParamTransX, 1000)
			So(c.Params.TransX, ShouldEqual, 5.0)
		})

		Convey("selection wraps in both directions", func() {
			So(c.Selected(), ShouldEqual, ParamRotX)
			c.SelectNext(-1)
			So(c.Selected(), ShouldEqual, ParamPerspective)
			c.SelectNext(1)
			So(c.Selected(), ShouldEqual, ParamRotX)
			c.Select(ParamTransZ)
			So(c.Selected(), ShouldEqual, ParamTransZ)
			c.Select(ParamID(99))
			So(c.Selected(), ShouldEqual, ParamTransZ)
		})
	})
}
