// Package renderer draws a rotating triangle to one display.
//
// A Renderer owns a surface, its context and the program state used to draw.
// Every method except New and Rotate issues GL calls and expects the
// renderer's context to be current, which MakeCurrent ensures.
package renderer

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/juju/errors"

	"github.com/stewi1014/gltriangle/gl"
	"github.com/stewi1014/gltriangle/programs"
)

var logger = log.Default()

type Renderer struct {
	display       int
	width, height int

	surface Surface
	gl      gl.OpenGL
	share   *Renderer
	log     *log.Logger

	// Set by InitializeProgram.
	ready            bool
	program          uint32
	vertexBuffer     uint32
	colorBuffer      uint32
	vertexCount      int32
	background       mgl32.Vec4
	positionAttrib   int32
	colorAttrib      int32
	uniformLocations map[string]int32
	uniforms         programs.Uniforms

	rotation Rotation
}

// New opens a renderer on the display at index.
//
// If shareWith is not nil the new context shares objects with shareWith's
// context, and InitializeProgram reuses its program instead of building
// another. New leaves the new context current.
func New(platform Platform, driver gl.OpenGL, display int, shareWith *Renderer) (*Renderer, error) {
	var share Surface
	if shareWith != nil {
		share = shareWith.surface
	}

	surface, err := platform.NewSurface(display, share)
	if err != nil {
		return nil, errors.Annotatef(err, "display %d", display)
	}

	r := &Renderer{
		display:        display,
		surface:        surface,
		gl:             driver,
		share:          shareWith,
		log:            logger.With("display", display),
		positionAttrib: -1,
		colorAttrib:    -1,
		rotation:       NewRotation(),
	}
	r.width, r.height = surface.Size()
	r.log.Info("opened display", "width", r.width, "height", r.height, "shared", shareWith != nil)

	if err := surface.MakeCurrent(); err != nil {
		return nil, errors.Annotatef(err, "display %d: make current", display)
	}

	if err := driver.Init(); err != nil {
		return nil, errors.Annotatef(err, "display %d: init gl", display)
	}

	r.logConfig()
	return r, nil
}

func (r *Renderer) logConfig() {
	r.log.Info("surface config",
		"red", r.gl.GetIntegerv(gl.RedBits),
		"green", r.gl.GetIntegerv(gl.GreenBits),
		"blue", r.gl.GetIntegerv(gl.BlueBits),
		"alpha", r.gl.GetIntegerv(gl.AlphaBits),
		"depth", r.gl.GetIntegerv(gl.DepthBits),
	)
	r.checkError("query config")
}

// MakeCurrent binds the renderer's surface and context to the calling thread.
// Failures are logged.
func (r *Renderer) MakeCurrent() {
	if err := r.surface.MakeCurrent(); err != nil {
		r.log.Error("make current failed", "err", err)
	}
}

// BindProgram activates the program and enables its vertex attributes.
func (r *Renderer) BindProgram() {
	r.gl.UseProgram(r.program)
	enableAttrib(r.gl, r.positionAttrib)
	enableAttrib(r.gl, r.colorAttrib)
}

// ReleaseProgram undoes BindProgram.
func (r *Renderer) ReleaseProgram() {
	disableAttrib(r.gl, r.colorAttrib)
	disableAttrib(r.gl, r.positionAttrib)
	r.gl.UseProgram(0)
}

func (r *Renderer) Rotate(degrees float32) {
	r.rotation.Rotate(degrees)
}

// RenderFrame clears the surface and draws the program's geometry with the
// current rotation.
func (r *Renderer) RenderFrame() {
	r.gl.Viewport(0, 0, int32(r.width), int32(r.height))
	r.gl.ClearColor(r.background.Elem())
	r.gl.Clear(gl.ColorBufferBit)
	r.uniforms.Rotation = r.rotation.Mat4()
	r.loadUniforms()
	r.gl.DrawArrays(gl.Triangles, 0, r.vertexCount)
	r.checkError("render frame")
}

// SwapBuffers presents the frame. Failures are logged.
func (r *Renderer) SwapBuffers() {
	if err := r.surface.SwapBuffers(); err != nil {
		r.log.Error("swap buffers failed", "err", err)
	}
}

func (r *Renderer) Display() int {
	return r.display
}

func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

func (r *Renderer) Rotation() Rotation {
	return r.rotation
}

// Program returns the GL program name, 0 before InitializeProgram.
func (r *Renderer) Program() uint32 {
	return r.program
}

// checkError logs the pending GL error flag, if any.
func (r *Renderer) checkError(op string) {
	if code := r.gl.GetError(); code != gl.NoError {
		r.log.Error("gl error", "op", op, "code", gl.ErrorString(code))
	}
}

func enableAttrib(driver gl.OpenGL, location int32) {
	if location >= 0 {
		driver.EnableVertexAttribArray(uint32(location))
	}
}

func disableAttrib(driver gl.OpenGL, location int32) {
	if location >= 0 {
		driver.DisableVertexAttribArray(uint32(location))
	}
}
