package scene

// Style is the fixed look of a frame.
type Style struct {
	Background Color

	// FaceColors is indexed by a face's position in Mesh.Faces, never by its
	// position in the sorted draw order. FaceAlpha replaces their alpha.
	FaceColors [6]Color
	FaceAlpha  uint8

	FaceStroke      Color
	FaceStrokeWidth float64

	EdgeStroke Color
	EdgeWidth  float64

	VertexFill   Color
	VertexRadius float64
}

// DefaultStyle is the dark blue palette of the viewer.
func DefaultStyle() Style {
	return Style{
		Background: MustHex("#0a0a0a"),
		FaceColors: [6]Color{
			MustHex("#1a4d6d"),
			MustHex("#2a5d7d"),
			MustHex("#1a5d4d"),
			MustHex("#2a4d5d"),
			MustHex("#3a4d5d"),
			MustHex("#2a5d4d"),
		},
		FaceAlpha:       0x99,
		FaceStroke:      MustHex("#4a9ddd"),
		FaceStrokeWidth: 2,
		EdgeStroke:      MustHex("#6ac5ff"),
		EdgeWidth:       2,
		VertexFill:      MustHex("#8addff"),
		VertexRadius:    4,
	}
}

// FaceFill returns the fill color of face i (table index).
func (s Style) FaceFill(i int) Color {
	return s.FaceColors[i%len(s.FaceColors)].WithAlpha(s.FaceAlpha)
}
