package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 32, Y: 32, Width: 32, Height: 32}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same", base, true},
		{"overlap", Rect{X: 50, Y: 50, Width: 32, Height: 32}, true},
		{"touch_left", Rect{X: 0, Y: 32, Width: 32, Height: 32}, false},
		{"touch_below", Rect{X: 32, Y: 64, Width: 32, Height: 32}, false},
		{"inside", Rect{X: 40, Y: 40, Width: 4, Height: 4}, true},
		{"apart", Rect{X: 200, Y: 200, Width: 32, Height: 32}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects = %v, want %v", got, c.want)
			}
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("Intersects not symmetric")
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Square(cp.Vector{X: 10, Y: 10}, 10)
	cases := []struct {
		p    cp.Vector
		want bool
	}{
		{cp.Vector{X: 10, Y: 10}, true},
		{cp.Vector{X: 15, Y: 19.9}, true},
		{cp.Vector{X: 20, Y: 15}, false},
		{cp.Vector{X: 9.9, Y: 15}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Fatalf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
	if r.Center() != (cp.Vector{X: 15, Y: 15}) {
		t.Fatalf("unexpected centre %v", r.Center())
	}
}

func TestFacing(t *testing.T) {
	origin := cp.Vector{}
	cases := []struct {
		name  string
		to    cp.Vector
		angle float64
		row   int
	}{
		{"right", cp.Vector{X: 10}, 0, RowRight},
		{"up", cp.Vector{Y: -10}, 90, RowUp},
		{"left", cp.Vector{X: -10}, 180, RowLeft},
		{"down", cp.Vector{Y: 10}, 270, RowDown},
		{"down_right", cp.Vector{X: 10, Y: 5}, 360 - math.Atan2(5, 10)*180/math.Pi, RowRight},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := FacingAngle(origin, c.to)
			if math.Abs(a-c.angle) > 1e-9 {
				t.Fatalf("angle %v, want %v", a, c.angle)
			}
			if a < 0 || a >= 360 {
				t.Fatalf("angle %v outside [0,360)", a)
			}
			if got := FacingRow(a); got != c.row {
				t.Fatalf("row %d, want %d", got, c.row)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	if d := Direction(cp.Vector{X: 3, Y: 3}, cp.Vector{X: 3, Y: 3}); d != (cp.Vector{}) {
		t.Fatalf("coincident points should give zero, got %v", d)
	}
	d := Direction(cp.Vector{}, cp.Vector{X: 3, Y: 4})
	if math.Abs(d.Length()-1) > 1e-9 || math.Abs(d.X-0.6) > 1e-9 {
		t.Fatalf("unexpected direction %v", d)
	}
	if Lerp(0, 10, 0.25) != 2.5 {
		t.Fatalf("Lerp(0,10,0.25) != 2.5")
	}
}
