package programs

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/triangle.vert
var triangleVertexShader string

//go:embed shaders/triangle.frag
var triangleFragmentShader string

// Triangle returns the rotating triangle program. Each call returns fresh
// geometry, so callers can't modify another renderer's data.
func Triangle() Program {
	return Program{
		Name:           "triangle",
		VertexShader:   triangleVertexShader,
		FragmentShader: triangleFragmentShader,
		Geometry: Geometry{
			Positions: []float32{
				-1, -1, 0,
				0, 1, 0,
				1, -1, 0,
			},
			Colors: []float32{
				1, 0, 0,
				0, 1, 0,
				0, 0, 1,
			},
		},
		// Stored in upload order.
		ProjectionView: mgl32.Mat4{
			0.570908, -0.690559, -0.906345, -0.904534,
			0, 2.30186, -0.302115, -0.301511,
			-1.71273, -0.230186, -0.302115, -0.301511,
			1.07608e-07, -3.59746e-08, 3.123060, 3.31662,
		},
		Background: mgl32.Vec4{0, 0.3, 0.2, 0},
	}
}
