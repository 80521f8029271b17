package render

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCameraSetScreenSize(t *testing.T) {
	c := NewCamera(640, 480, 0)
	c.Pos = cp.Vector{X: 100, Y: 100}

	cases := []struct {
		name         string
		w, h         int
		wantW, wantH float64
	}{
		{"grow", 1280, 720, 1280, 720},
		{"zero_width_ignored", 0, 300, 1280, 720},
		{"negative_height_ignored", 800, -1, 1280, 720},
		{"shrink", 320, 240, 320, 240},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c.SetScreenSize(tc.w, tc.h)
			w, h := c.Size()
			if w != tc.wantW || h != tc.wantH {
				t.Fatalf("size = %vx%v, want %vx%v", w, h, tc.wantW, tc.wantH)
			}
			want := cp.Vector{X: 100 - tc.wantW/2, Y: 100 - tc.wantH/2}
			if got := c.ViewTopLeft(); got != want {
				t.Fatalf("view top-left = %v, want %v", got, want)
			}
		})
	}
}

func TestCameraTransforms(t *testing.T) {
	c := NewCamera(200, 100, 0)
	c.Update(cp.Vector{X: 500.4, Y: 300.6})
	if c.Pos != (cp.Vector{X: 500, Y: 301}) {
		t.Fatalf("camera should snap to the target pixel, got %v", c.Pos)
	}
	world := c.ScreenToWorld(10, 20)
	if world != (cp.Vector{X: 410, Y: 271}) {
		t.Fatalf("ScreenToWorld = %v", world)
	}
	if back := c.WorldToScreen(world); back != (cp.Vector{X: 10, Y: 20}) {
		t.Fatalf("WorldToScreen = %v", back)
	}
}
