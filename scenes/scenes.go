// Package scenes is the scene-construction glue the core never imports:
// a registry of named demo builders covering the primitive/material
// matrix and a few stress cases. cmd/render.go looks builders up by name
// and lets CLI flags override any camera.Builder field before Build().
package scenes

import (
	"github.com/mtandon-io/lumentrace/camera"
	"github.com/mtandon-io/lumentrace/scene"
)

// World pairs a constructed scene with the camera defaults its builder
// recommends; cmd layers CLI overrides onto the Camera builder before
// calling Build.
type World struct {
	Scene  *scene.Scene
	Camera *camera.Builder
}

// Entry is one registered demo scene.
type Entry struct {
	Name        string
	Description string
	Build       func() World
}

var registry []Entry

func register(e Entry) {
	registry = append(registry, e)
}

// List returns every registered scene, in registration order.
func List() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Get looks a scene builder up by name.
func Get(name string) (Entry, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
