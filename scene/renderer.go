package scene

import (
	"math"
	"sort"
)

// Frame is everything derived from one set of Params. It is rebuilt on every
// redraw and never cached.
type Frame struct {
	Width, Height int

	// Transformed and Projected are indexed like Mesh.Vertices.
	Transformed [8]Vec3
	Projected   [8]Point2

	// Depths is the average world-space z of each face, indexed like
	// Mesh.Faces. Order lists face indices in draw order.
	Depths [6]float64
	Order  [6]int
}

// ComputeFrame transforms and projects every vertex of m and sorts the
// faces back to front by average pre-projection z.
func ComputeFrame(m Mesh, p Params, width, height int) Frame {
	f := Frame{Width: width, Height: height}
	for i, v := range m.Vertices {
		f.Transformed[i] = Transform(v, p)
		f.Projected[i] = Project(f.Transformed[i], p, width, height)
	}
	for i, face := range m.Faces {
		sum := 0.0
		for _, vi := range face {
			sum += f.Transformed[vi].Z
		}
		f.Depths[i] = sum / float64(len(face))
	}
	f.Order = SortFaces(f.Depths)
	return f
}

// SortFaces returns face indices ordered by ascending depth. Equal depths
// keep table order.
func SortFaces(depths [6]float64) [6]int {
	var order [6]int
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order[:], func(i, j int) bool {
		return depths[order[i]] < depths[order[j]]
	})
	return order
}

// Renderer draws the cube with the painter's algorithm.
type Renderer struct {
	Mesh  Mesh
	Style Style
}

// NewRenderer creates a renderer for a cube of the given side.
func NewRenderer(side float64) *Renderer {
	return &Renderer{
		Mesh:  NewCube(side),
		Style: DefaultStyle(),
	}
}

// Render computes a frame for p at the surface size and draws it.
func (r *Renderer) Render(s Surface, p Params) Frame {
	w, h := s.Size()
	f := ComputeFrame(r.Mesh, p, w, h)
	r.Draw(s, f)
	return f
}

// Draw paints background, faces in f.Order, edges and vertex markers, in
// that order. Nothing is culled or clipped.
func (r *Renderer) Draw(s Surface, f Frame) {
	st := r.Style
	s.Clear(st.Background)

	for _, fi := range f.Order {
		face := r.Mesh.Faces[fi]
		s.BeginPath()
		first := f.Projected[face[0]]
		s.MoveTo(first.X, first.Y)
		for _, vi := range face[1:] {
			pt := f.Projected[vi]
			s.LineTo(pt.X, pt.Y)
		}
		s.ClosePath()

		s.SetFillColor(st.FaceFill(fi))
		s.Fill()
		s.SetStrokeColor(st.FaceStroke)
		s.SetLineWidth(st.FaceStrokeWidth)
		s.Stroke()
	}

	s.SetStrokeColor(st.EdgeStroke)
	s.SetLineWidth(st.EdgeWidth)
	for _, e := range r.Mesh.Edges {
		a, b := f.Projected[e[0]], f.Projected[e[1]]
		s.BeginPath()
		s.MoveTo(a.X, a.Y)
		s.LineTo(b.X, b.Y)
		s.Stroke()
	}

	s.SetFillColor(st.VertexFill)
	for _, pt := range f.Projected {
		s.BeginPath()
		s.Arc(pt.X, pt.Y, st.VertexRadius, 0, 2*math.Pi)
		s.Fill()
	}
}
