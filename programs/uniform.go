package programs

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex attributes read by every program.
const (
	PositionAttribute = "vertex_position"
	ColorAttribute    = "color"
)

// Uniforms are the values a program reads, tagged with their GLSL names.
type Uniforms struct {
	ProjectionView mgl32.Mat4 `uniform:"projection_view"`
	Rotation       mgl32.Mat4 `uniform:"rotation"`
}

// Each calls fn with the GLSL name and value of every field, in field order.
func (u Uniforms) Each(fn func(name string, value mgl32.Mat4)) {
	v := reflect.ValueOf(u)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		m, ok := v.Field(i).Interface().(mgl32.Mat4)
		if !ok {
			continue
		}
		fn(t.Field(i).Tag.Get("uniform"), m)
	}
}

// UniformNames lists the GLSL names of all fields in Uniforms.
func UniformNames() []string {
	t := reflect.TypeOf(Uniforms{})
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		names = append(names, t.Field(i).Tag.Get("uniform"))
	}
	return names
}
