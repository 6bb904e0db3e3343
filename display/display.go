// Package display opens full screen OpenGL ES 2 surfaces on the connected
// monitors using GLFW with an EGL context.
//
// GLFW is not thread safe: everything here must run on the main thread,
// which must be locked with runtime.LockOSThread.
package display

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/juju/errors"

	"github.com/stewi1014/gltriangle/renderer"
)

const windowTitle = "GLTriangle"

// Init initializes GLFW. It must be called before any surface is created.
func Init() (err error) {
	defer catchPanic(&err)
	if err := glfw.Init(); err != nil {
		return errors.Annotate(err, "glfw.Init")
	}
	return nil
}

// PollEvents services the windowing system. Events themselves are ignored.
func PollEvents() {
	glfw.PollEvents()
}

var _ renderer.Platform = Platform{}

// Platform opens surfaces on GLFW monitors, indexed in the order GLFW
// reports them with the primary monitor first.
type Platform struct{}

func (Platform) NewSurface(index int, share renderer.Surface) (_ renderer.Surface, err error) {
	defer catchPanic(&err)

	var shareWindow *glfw.Window
	if share != nil {
		s, ok := share.(*Surface)
		if !ok {
			return nil, errors.Errorf("cannot share a context with %T", share)
		}
		shareWindow = s.window
	}

	monitors := glfw.GetMonitors()
	if index < 0 || index >= len(monitors) {
		return nil, errors.Annotatef(renderer.ErrNoDisplay, "index %d, %d connected", index, len(monitors))
	}
	monitor := monitors[index]

	mode := monitor.GetVideoMode()
	if mode == nil {
		return nil, errors.Errorf("monitor %q has no video mode", monitor.GetName())
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextCreationAPI, glfw.EGLContextAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	// Matching the current refresh rate keeps the monitor in its mode.
	glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
	// Both displays stay up while the other has focus.
	glfw.WindowHint(glfw.AutoIconify, glfw.False)

	window, err := glfw.CreateWindow(mode.Width, mode.Height, windowTitle, monitor, shareWindow)
	if err != nil {
		return nil, errors.Annotatef(err, "glfw.CreateWindow on %q", monitor.GetName())
	}

	log.Debug("created window",
		"monitor", monitor.GetName(),
		"width", mode.Width,
		"height", mode.Height,
		"refresh", mode.RefreshRate,
	)

	return &Surface{
		window: window,
		width:  mode.Width,
		height: mode.Height,
	}, nil
}

// Surface is a full screen GLFW window and its context.
type Surface struct {
	window        *glfw.Window
	width, height int
}

func (s *Surface) MakeCurrent() (err error) {
	defer catchPanic(&err)
	s.window.MakeContextCurrent()
	return nil
}

func (s *Surface) SwapBuffers() (err error) {
	defer catchPanic(&err)
	s.window.SwapBuffers()
	return nil
}

// Size is the geometry of the monitor when the surface was opened.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// GLFW reports most errors by panicking; catchPanic turns them into an error
// for the surrounding call.
func catchPanic(err *error) {
	if v := recover(); v != nil {
		e, ok := v.(error)
		if !ok {
			e = errors.Errorf("panic: %v", v)
		}
		*err = errors.Trace(e)
	}
}
