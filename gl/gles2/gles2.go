// Package gles2 implements gl.OpenGL on top of the go-gl OpenGL ES 2 bindings.
package gles2

import (
	"runtime"
	"strings"
	"sync"
	"unsafe"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/juju/errors"

	"github.com/stewi1014/gltriangle/gl"
)

// Entry points are process wide, so they are loaded once no matter how many
// contexts are created.
var (
	initOnce sync.Once
	initErr  error
)

var _ gl.OpenGL = (*Driver)(nil)

// Driver forwards to the current OpenGL ES context.
type Driver struct{}

func New() *Driver {
	return &Driver{}
}

func (d *Driver) Init() error {
	initOnce.Do(func() {
		if err := gles2.Init(); err != nil {
			initErr = errors.Annotate(err, "gles2.Init")
			return
		}

		log.Info("OpenGL ES initialized",
			"version", d.GetString(gl.Version),
			"glsl", d.GetString(gl.ShadingLanguageVersion),
			"renderer", d.GetString(gl.Renderer),
			"vendor", d.GetString(gl.Vendor),
		)
	})
	return initErr
}

func (d *Driver) GetError() uint32 {
	return gles2.GetError()
}

func (d *Driver) GetString(name uint32) string {
	s := gles2.GetString(name)
	if s == nil {
		return ""
	}
	return gles2.GoStr(s)
}

func (d *Driver) GetIntegerv(pname uint32) int32 {
	var v int32
	gles2.GetIntegerv(pname, &v)
	return v
}

func (d *Driver) CreateShader(xtype uint32) uint32 {
	return gles2.CreateShader(xtype)
}

func (d *Driver) ShaderSource(shader uint32, source string) {
	source += "\x00"
	defer runtime.KeepAlive(source)
	cstring, free := gles2.Strs(source)
	defer free()

	gles2.ShaderSource(shader, 1, cstring, nil)
}

func (d *Driver) CompileShader(shader uint32) {
	gles2.CompileShader(shader)
}

func (d *Driver) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gles2.GetShaderiv(shader, pname, &v)
	return v
}

func (d *Driver) GetShaderInfoLog(shader uint32) string {
	l := d.GetShaderiv(shader, gl.InfoLogLength)
	if l <= 0 {
		return ""
	}

	log := strings.Repeat("\x00", int(l+1))
	gles2.GetShaderInfoLog(shader, l, nil, gles2.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Driver) DeleteShader(shader uint32) {
	gles2.DeleteShader(shader)
}

func (d *Driver) CreateProgram() uint32 {
	return gles2.CreateProgram()
}

func (d *Driver) AttachShader(program, shader uint32) {
	gles2.AttachShader(program, shader)
}

func (d *Driver) LinkProgram(program uint32) {
	gles2.LinkProgram(program)
}

func (d *Driver) ValidateProgram(program uint32) {
	gles2.ValidateProgram(program)
}

func (d *Driver) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gles2.GetProgramiv(program, pname, &v)
	return v
}

func (d *Driver) GetProgramInfoLog(program uint32) string {
	l := d.GetProgramiv(program, gl.InfoLogLength)
	if l <= 0 {
		return ""
	}

	log := strings.Repeat("\x00", int(l+1))
	gles2.GetProgramInfoLog(program, l, nil, gles2.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Driver) UseProgram(program uint32) {
	gles2.UseProgram(program)
}

func (d *Driver) GetAttribLocation(program uint32, name string) int32 {
	return gles2.GetAttribLocation(program, gles2.Str(name+"\x00"))
}

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	return gles2.GetUniformLocation(program, gles2.Str(name+"\x00"))
}

func (d *Driver) UniformMatrix4fv(location int32, value mgl32.Mat4) {
	gles2.UniformMatrix4fv(location, 1, false, &value[0])
}

func (d *Driver) GenBuffer() uint32 {
	var buffer uint32
	gles2.GenBuffers(1, &buffer)
	return buffer
}

func (d *Driver) BindBuffer(target, buffer uint32) {
	gles2.BindBuffer(target, buffer)
}

func (d *Driver) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gles2.BufferData(target, 0, nil, usage)
		return
	}
	gles2.BufferData(target, len(data)*int(unsafe.Sizeof(data[0])), gles2.Ptr(data), usage)
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gles2.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	gles2.EnableVertexAttribArray(index)
}

func (d *Driver) DisableVertexAttribArray(index uint32) {
	gles2.DisableVertexAttribArray(index)
}

func (d *Driver) Viewport(x, y, width, height int32) {
	gles2.Viewport(x, y, width, height)
}

func (d *Driver) ClearColor(red, green, blue, alpha float32) {
	gles2.ClearColor(red, green, blue, alpha)
}

func (d *Driver) Clear(mask uint32) {
	gles2.Clear(mask)
}

func (d *Driver) DrawArrays(mode uint32, first, count int32) {
	gles2.DrawArrays(mode, first, count)
}
