package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stewi1014/gltriangle/gl"
	"github.com/stewi1014/gltriangle/programs"
)

// InitializeProgram builds the triangle program, uploads its geometry and
// resolves attribute and uniform locations. It must be called once, with the
// renderer's context current, before the first frame.
//
// Compile and link failures are logged and leave the program unusable.
func (r *Renderer) InitializeProgram() {
	r.initializeProgram(programs.Triangle())
}

func (r *Renderer) initializeProgram(p programs.Program) {
	if r.ready {
		r.log.Warn("program already initialized", "program", r.program)
		return
	}

	if r.share != nil && r.share.ready {
		r.adoptProgram(r.share)
	} else {
		r.loadProgram(p)
	}

	// Attribute pointers belong to the context, so they are set even when
	// the program and buffers come from a shared context.
	r.attribPointer(r.positionAttrib, r.vertexBuffer)
	r.attribPointer(r.colorAttrib, r.colorBuffer)
	r.checkError("vertex attributes")

	r.ready = true
}

// adoptProgram reuses program objects owned by a context this one shares with.
func (r *Renderer) adoptProgram(from *Renderer) {
	r.program = from.program
	r.vertexBuffer = from.vertexBuffer
	r.colorBuffer = from.colorBuffer
	r.vertexCount = from.vertexCount
	r.background = from.background
	r.positionAttrib = from.positionAttrib
	r.colorAttrib = from.colorAttrib
	r.uniformLocations = from.uniformLocations
	r.uniforms.ProjectionView = from.uniforms.ProjectionView

	r.gl.UseProgram(r.program)
	r.checkError("use program")
	r.log.Debug("reusing shared program", "program", r.program, "from", from.display)
}

func (r *Renderer) loadProgram(p programs.Program) {
	r.program = r.gl.CreateProgram()
	r.checkError("create program")

	vertexShader := r.compileShader(p.VertexShader, gl.VertexShader)
	fragmentShader := r.compileShader(p.FragmentShader, gl.FragmentShader)
	defer r.gl.DeleteShader(vertexShader)
	defer r.gl.DeleteShader(fragmentShader)

	r.gl.AttachShader(r.program, vertexShader)
	r.gl.AttachShader(r.program, fragmentShader)
	r.checkError("attach shaders")
	r.gl.LinkProgram(r.program)
	r.checkError("link program")
	r.verifyProgram()

	r.gl.UseProgram(r.program)
	r.checkError("use program")

	r.uniformLocations = make(map[string]int32)
	for _, name := range programs.UniformNames() {
		r.uniformLocations[name] = r.gl.GetUniformLocation(r.program, name)
	}
	r.uniforms.ProjectionView = p.ProjectionView
	r.uniforms.Rotation = r.rotation.Mat4()
	r.loadUniforms()
	r.checkError("load uniforms")

	r.positionAttrib = r.attribLocation(programs.PositionAttribute)
	r.vertexBuffer = r.uploadBuffer(p.Geometry.Positions)
	r.colorAttrib = r.attribLocation(programs.ColorAttribute)
	r.colorBuffer = r.uploadBuffer(p.Geometry.Colors)
	r.vertexCount = int32(p.Geometry.VertexCount())
	r.background = p.Background

	r.log.Debug("loaded program", "name", p.Name, "program", r.program, "vertices", r.vertexCount)
}

// compileShader logs the driver's info log if compilation fails; the shader
// is returned either way.
func (r *Renderer) compileShader(source string, shaderType uint32) uint32 {
	shader := r.gl.CreateShader(shaderType)
	r.gl.ShaderSource(shader, source)
	r.checkError("shader source")
	r.gl.CompileShader(shader)

	if r.gl.GetShaderiv(shader, gl.CompileStatus) == gl.False {
		r.log.Error("shader failed to compile",
			"type", gl.ShaderTypeString(shaderType),
			"log", r.gl.GetShaderInfoLog(shader),
		)
	}
	r.checkError("compile shader")
	return shader
}

func (r *Renderer) verifyProgram() {
	if r.gl.GetProgramiv(r.program, gl.LinkStatus) == gl.False {
		r.log.Error("program failed to link",
			"program", r.program,
			"log", r.gl.GetProgramInfoLog(r.program),
		)
	}

	r.gl.ValidateProgram(r.program)
	if r.gl.GetProgramiv(r.program, gl.ValidateStatus) == gl.False {
		r.log.Debug("program failed validation", "log", r.gl.GetProgramInfoLog(r.program))
	}
	r.checkError("validate program")
}

func (r *Renderer) attribLocation(name string) int32 {
	location := r.gl.GetAttribLocation(r.program, name)
	if location < 0 {
		r.log.Error("attribute not found", "name", name)
	}
	return location
}

func (r *Renderer) uploadBuffer(data []float32) uint32 {
	buffer := r.gl.GenBuffer()
	r.gl.BindBuffer(gl.ArrayBuffer, buffer)
	r.gl.BufferData(gl.ArrayBuffer, data, gl.StaticDraw)
	r.checkError("buffer data")
	return buffer
}

func (r *Renderer) attribPointer(location int32, buffer uint32) {
	if location < 0 {
		return
	}
	r.gl.BindBuffer(gl.ArrayBuffer, buffer)
	r.gl.VertexAttribPointer(uint32(location), programs.ComponentsPerVertex, gl.Float, false, 0, 0)
}

// loadUniforms uploads every value in r.uniforms to the bound program.
func (r *Renderer) loadUniforms() {
	r.uniforms.Each(func(name string, value mgl32.Mat4) {
		r.gl.UniformMatrix4fv(r.uniformLocation(name), value)
	})
}

// uniformLocation is -1, which GL ignores, for names not resolved by
// InitializeProgram.
func (r *Renderer) uniformLocation(name string) int32 {
	if location, ok := r.uniformLocations[name]; ok {
		return location
	}
	return -1
}
