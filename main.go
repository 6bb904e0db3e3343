package main

import (
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/stewi1014/gltriangle/display"
	"github.com/stewi1014/gltriangle/gl/gles2"
	"github.com/stewi1014/gltriangle/renderer"
)

func main() {
	// GLFW and GL contexts belong to the thread that created them.
	runtime.LockOSThread()
	ConfigureLogging()

	if err := display.Init(); err != nil {
		log.Fatal("failed to initialize display", "err", err)
	}

	views, err := renderer.OpenViews(display.Platform{}, gles2.New(), displays)
	if err != nil {
		log.Fatal("failed to create renderer", "err", err)
	}

	for _, v := range views {
		v.MakeCurrent()
		v.InitializeProgram()
	}

	for {
		for _, v := range views {
			v.DrawFrame()
		}
		display.PollEvents()
	}
}
