package scenes

import "testing"

func TestEveryRegisteredSceneBuilds(t *testing.T) {
	entries := List()
	if len(entries) == 0 {
		t.Fatalf("expected at least one registered scene")
	}
	seen := map[string]bool{}
	for _, e := range entries {
		if seen[e.Name] {
			t.Fatalf("duplicate scene name %q", e.Name)
		}
		seen[e.Name] = true

		w := e.Build()
		if w.Scene == nil {
			t.Fatalf("scene %q: nil Scene", e.Name)
		}
		if len(w.Scene.Primitives) == 0 {
			t.Fatalf("scene %q: no primitives", e.Name)
		}
		if w.Camera == nil {
			t.Fatalf("scene %q: nil camera builder", e.Name)
		}
		if _, err := w.Camera.Build(); err != nil {
			t.Fatalf("scene %q: camera build failed: %v", e.Name, err)
		}
	}
}

func TestGetReturnsRegisteredScene(t *testing.T) {
	if _, ok := Get("two-spheres"); !ok {
		t.Fatalf("expected two-spheres to be registered")
	}
	if _, ok := Get("does-not-exist"); ok {
		t.Fatalf("expected lookup of unknown scene to fail")
	}
}
