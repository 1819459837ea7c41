package scene

// DefaultSide is the edge length of the cube in object space.
const DefaultSide = 0.8

// Mesh holds the fixed cube geometry. Faces index into Vertices and are
// closed loops of four vertices; their table position selects the fill color.
type Mesh struct {
	Vertices [8]Vec3
	Edges    [12][2]int
	Faces    [6][4]int
}

// NewCube builds a cube of the given side length centered at the origin.
func NewCube(side float64) Mesh {
	h := side / 2
	return Mesh{
		Vertices: [8]Vec3{
			{-h, -h, -h},
			{h, -h, -h},
			{h, h, -h},
			{-h, h, -h},
			{-h, -h, h},
			{h, -h, h},
			{h, h, h},
			{-h, h, h},
		},
		Edges: [12][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
			{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
			{0, 4}, {1, 5}, {2, 6}, {3, 7}, // sides
		},
		Faces: [6][4]int{
			{0, 1, 2, 3}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4}, // front
			{2, 3, 7, 6}, // back
			{0, 3, 7, 4}, // left
			{1, 2, 6, 5}, // right
		},
	}
}
