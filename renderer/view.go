package renderer

import (
	"github.com/stewi1014/gltriangle/gl"
)

type ViewConfig struct {
	// Index of the display, primary first.
	Index int
	// Step is the rotation in degrees applied every frame.
	Step float32
	// ShareFirst shares the context, and with it the compiled program,
	// with the first view's renderer.
	ShareFirst bool
}

// View is a renderer and the rotation it advances each frame.
type View struct {
	*Renderer
	Step float32
}

// OpenViews creates a renderer per config, in order. A config with
// ShareFirst shares with the first view; on the first config it is ignored.
func OpenViews(platform Platform, driver gl.OpenGL, configs []ViewConfig) ([]View, error) {
	views := make([]View, 0, len(configs))
	for _, c := range configs {
		var share *Renderer
		if c.ShareFirst && len(views) > 0 {
			share = views[0].Renderer
		}

		r, err := New(platform, driver, c.Index, share)
		if err != nil {
			return nil, err
		}
		views = append(views, View{Renderer: r, Step: c.Step})
	}
	return views, nil
}

// DrawFrame renders and presents one frame on the view's display, leaving
// no program bound.
func (v View) DrawFrame() {
	v.MakeCurrent()
	v.BindProgram()
	v.Rotate(v.Step)
	v.RenderFrame()
	v.SwapBuffers()
	v.ReleaseProgram()
}
