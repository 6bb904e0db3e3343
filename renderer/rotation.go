package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Rotation is a model rotation about the Y axis, kept as the 4x4 matrix
// uploaded to the rotation uniform.
//
// It is updated incrementally and never renormalized, so the basis slowly
// drifts away from orthonormal as rotations accumulate.
type Rotation struct {
	m mgl32.Mat4
}

func NewRotation() Rotation {
	return Rotation{m: mgl32.Ident4()}
}

// Rotate turns the matrix by degrees, mixing the X and Z basis vectors.
func (r *Rotation) Rotate(degrees float32) {
	a := mgl32.DegToRad(degrees)
	c, s := math32.Cos(a), math32.Sin(a)

	x, z := r.m.Col(0), r.m.Col(2)
	r.m.SetCol(2, z.Mul(c).Add(x.Mul(s)))
	r.m.SetCol(0, x.Mul(c).Sub(z.Mul(s)))
}

func (r Rotation) Mat4() mgl32.Mat4 {
	return r.m
}

// Det3 is the determinant of the upper-left 3x3 block, 1 for an
// orthonormal rotation.
func (r Rotation) Det3() float32 {
	return r.m.Mat3().Det()
}
