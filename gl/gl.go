// Package gl describes the OpenGL ES 2.0 calls needed to draw to a surface.
//
// Renderers talk to an OpenGL value instead of the cgo bindings directly,
// so a driver can be swapped for a recording fake in tests.
package gl

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// OpenGL is the subset of OpenGL ES 2.0 used by the renderer.
// All calls act on the context that is current on the calling thread.
type OpenGL interface {
	// Init loads the entry points. It must be called with a context current
	// and is safe to call more than once.
	Init() error

	GetError() uint32
	GetString(name uint32) string
	GetIntegerv(pname uint32) int32

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)

	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32
	UniformMatrix4fv(location int32, value mgl32.Mat4)

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	Viewport(x, y, width, height int32)
	ClearColor(red, green, blue, alpha float32)
	Clear(mask uint32)
	DrawArrays(mode uint32, first, count int32)
}

// OpenGL ES 2.0 enums.
const (
	False = 0
	True  = 1

	NoError                     = 0x0000
	InvalidEnum                 = 0x0500
	InvalidValue                = 0x0501
	InvalidOperation            = 0x0502
	OutOfMemory                 = 0x0505
	InvalidFramebufferOperation = 0x0506

	Triangles      = 0x0004
	ColorBufferBit = 0x4000
	Float          = 0x1406

	ArrayBuffer = 0x8892
	StaticDraw  = 0x88E4

	FragmentShader = 0x8B30
	VertexShader   = 0x8B31
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82
	ValidateStatus = 0x8B83
	InfoLogLength  = 0x8B84

	Vendor                 = 0x1F00
	Renderer               = 0x1F01
	Version                = 0x1F02
	ShadingLanguageVersion = 0x8B8C

	RedBits   = 0x0D52
	GreenBits = 0x0D53
	BlueBits  = 0x0D54
	AlphaBits = 0x0D55
	DepthBits = 0x0D56
)

// ErrorString names a code returned by GetError.
func ErrorString(code uint32) string {
	switch code {
	case NoError:
		return "NO_ERROR"
	case InvalidEnum:
		return "INVALID_ENUM"
	case InvalidValue:
		return "INVALID_VALUE"
	case InvalidOperation:
		return "INVALID_OPERATION"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("0x%x", code)
}

// ShaderTypeString names a shader type passed to CreateShader.
func ShaderTypeString(xtype uint32) string {
	switch xtype {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", xtype)
}
