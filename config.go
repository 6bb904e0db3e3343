package main

import "github.com/stewi1014/gltriangle/renderer"

var displays = []renderer.ViewConfig{
	{Index: 0, Step: -1},
	{Index: 1, Step: 1, ShareFirst: true},
}
