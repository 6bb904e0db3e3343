package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stewi1014/gltriangle/gl"
)

// captureLog sends package logging to a buffer for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	old := logger
	logger = log.New(buf)
	logger.SetLevel(log.DebugLevel)
	t.Cleanup(func() { logger = old })
	return buf
}

// record appends a call to trace when tracing is enabled.
func record(trace *[]string, format string, args ...any) {
	if trace != nil {
		*trace = append(*trace, fmt.Sprintf(format, args...))
	}
}

type fakePlatform struct {
	width, height int
	err           error

	// Surfaces handed out, and the share argument each was opened with.
	surfaces []*fakeSurface
	shares   []Surface

	// trace is given to every surface opened.
	trace *[]string
}

func (p *fakePlatform) NewSurface(index int, share Surface) (Surface, error) {
	if p.err != nil {
		return nil, p.err
	}
	s := &fakeSurface{index: index, width: p.width, height: p.height, trace: p.trace}
	p.surfaces = append(p.surfaces, s)
	p.shares = append(p.shares, share)
	return s, nil
}

type fakeSurface struct {
	index         int
	width, height int

	makeCurrentErr error
	swapErr        error

	makeCurrentCalls int
	swaps            int

	trace *[]string
}

func (s *fakeSurface) MakeCurrent() error {
	s.makeCurrentCalls++
	record(s.trace, "make current %d", s.index)
	return s.makeCurrentErr
}

func (s *fakeSurface) SwapBuffers() error {
	s.swaps++
	record(s.trace, "swap %d", s.index)
	return s.swapErr
}

func (s *fakeSurface) Size() (int, int) {
	return s.width, s.height
}

type drawCall struct {
	mode  uint32
	first int32
	count int32
}

type fakeShader struct {
	xtype    uint32
	source   string
	compiled bool
}

var (
	fakeAttribs  = map[string]int32{"vertex_position": 0, "color": 1}
	fakeUniforms = map[string]int32{"projection_view": 0, "rotation": 1}
)

// fakeGL records the calls a renderer makes. A shader fails to compile when
// its source contains badShaderMarker.
type fakeGL struct {
	initErr   error
	initCalls int

	names    uint32
	shaders  map[uint32]*fakeShader
	programs []uint32
	attached map[uint32][]uint32
	buffers  map[uint32][]float32

	current        uint32
	bound          uint32
	uniforms       map[int32]mgl32.Mat4
	attribPointers map[uint32]uint32
	enabled        map[uint32]bool
	viewports      [][4]int32
	clearColors    [][4]float32
	draws          []drawCall

	pendingErrors []uint32

	trace *[]string
}

const badShaderMarker = "syntax error here"

func newFakeGL() *fakeGL {
	return &fakeGL{
		shaders:        make(map[uint32]*fakeShader),
		attached:       make(map[uint32][]uint32),
		buffers:        make(map[uint32][]float32),
		uniforms:       make(map[int32]mgl32.Mat4),
		attribPointers: make(map[uint32]uint32),
		enabled:        make(map[uint32]bool),
	}
}

func (f *fakeGL) name() uint32 {
	f.names++
	return f.names
}

func (f *fakeGL) Init() error {
	f.initCalls++
	return f.initErr
}

func (f *fakeGL) GetError() uint32 {
	if len(f.pendingErrors) == 0 {
		return gl.NoError
	}
	code := f.pendingErrors[0]
	f.pendingErrors = f.pendingErrors[1:]
	return code
}

func (f *fakeGL) GetString(name uint32) string { return "fake" }

func (f *fakeGL) GetIntegerv(pname uint32) int32 {
	switch pname {
	case gl.RedBits, gl.GreenBits, gl.BlueBits:
		return 8
	}
	return 0
}

func (f *fakeGL) CreateShader(xtype uint32) uint32 {
	n := f.name()
	f.shaders[n] = &fakeShader{xtype: xtype}
	return n
}

func (f *fakeGL) ShaderSource(shader uint32, source string) {
	f.shaders[shader].source = source
}

func (f *fakeGL) CompileShader(shader uint32) {
	s := f.shaders[shader]
	s.compiled = !strings.Contains(s.source, badShaderMarker)
}

func (f *fakeGL) GetShaderiv(shader, pname uint32) int32 {
	if pname == gl.CompileStatus && f.shaders[shader].compiled {
		return gl.True
	}
	return gl.False
}

func (f *fakeGL) GetShaderInfoLog(shader uint32) string {
	if f.shaders[shader].compiled {
		return ""
	}
	return "0:1(1): error: " + badShaderMarker
}

func (f *fakeGL) DeleteShader(shader uint32) {}

func (f *fakeGL) CreateProgram() uint32 {
	n := f.name()
	f.programs = append(f.programs, n)
	return n
}

func (f *fakeGL) AttachShader(program, shader uint32) {
	f.attached[program] = append(f.attached[program], shader)
}

func (f *fakeGL) LinkProgram(program uint32) {}

func (f *fakeGL) ValidateProgram(program uint32) {}

func (f *fakeGL) linked(program uint32) bool {
	for _, s := range f.attached[program] {
		if !f.shaders[s].compiled {
			return false
		}
	}
	return len(f.attached[program]) == 2
}

func (f *fakeGL) GetProgramiv(program, pname uint32) int32 {
	switch pname {
	case gl.LinkStatus, gl.ValidateStatus:
		if f.linked(program) {
			return gl.True
		}
	}
	return gl.False
}

func (f *fakeGL) GetProgramInfoLog(program uint32) string {
	if f.linked(program) {
		return ""
	}
	return "error: linking with uncompiled shader"
}

func (f *fakeGL) UseProgram(program uint32) {
	f.current = program
	record(f.trace, "use %d", program)
}

func (f *fakeGL) GetAttribLocation(program uint32, name string) int32 {
	if l, ok := fakeAttribs[name]; ok {
		return l
	}
	return -1
}

func (f *fakeGL) GetUniformLocation(program uint32, name string) int32 {
	if l, ok := fakeUniforms[name]; ok {
		return l
	}
	return -1
}

func (f *fakeGL) UniformMatrix4fv(location int32, value mgl32.Mat4) {
	f.uniforms[location] = value
	record(f.trace, "uniform %d", location)
}

func (f *fakeGL) GenBuffer() uint32 { return f.name() }

func (f *fakeGL) BindBuffer(target, buffer uint32) { f.bound = buffer }

func (f *fakeGL) BufferData(target uint32, data []float32, usage uint32) {
	f.buffers[f.bound] = append([]float32(nil), data...)
}

func (f *fakeGL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	f.attribPointers[index] = f.bound
}

func (f *fakeGL) EnableVertexAttribArray(index uint32) {
	f.enabled[index] = true
	record(f.trace, "enable %d", index)
}

func (f *fakeGL) DisableVertexAttribArray(index uint32) {
	f.enabled[index] = false
	record(f.trace, "disable %d", index)
}

func (f *fakeGL) Viewport(x, y, width, height int32) {
	f.viewports = append(f.viewports, [4]int32{x, y, width, height})
}

func (f *fakeGL) ClearColor(red, green, blue, alpha float32) {
	f.clearColors = append(f.clearColors, [4]float32{red, green, blue, alpha})
}

func (f *fakeGL) Clear(mask uint32) {}

func (f *fakeGL) DrawArrays(mode uint32, first, count int32) {
	f.draws = append(f.draws, drawCall{mode: mode, first: first, count: count})
	record(f.trace, "draw %d", count)
}
