package renderer

import "github.com/juju/errors"

// ErrNoDisplay is returned when a display index doesn't name a connected display.
var ErrNoDisplay = errors.New("no such display")

// Platform creates drawing surfaces on native displays.
type Platform interface {
	// NewSurface opens a surface covering the display at index with an
	// OpenGL ES 2 context. If share is not nil the new context shares
	// objects such as programs and buffers with share's context.
	NewSurface(index int, share Surface) (Surface, error)
}

// Surface is a window backed drawing target and the context rendering to it.
// Only one surface can be current on a thread at a time.
type Surface interface {
	MakeCurrent() error
	SwapBuffers() error
	Size() (width, height int)
}
