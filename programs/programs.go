package programs

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComponentsPerVertex is the number of floats per vertex in each attribute
// buffer of a Geometry.
const ComponentsPerVertex = 3

type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string

	Geometry       Geometry
	ProjectionView mgl32.Mat4
	Background     mgl32.Vec4
}

// Geometry is drawn as a triangle list.
type Geometry struct {
	Positions []float32
	Colors    []float32
}

func (g Geometry) VertexCount() int {
	return len(g.Positions) / ComponentsPerVertex
}
