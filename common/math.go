package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	// TileSize is the edge of one cell inside a sprite sheet, in pixels.
	TileSize = 16
	// Scale maps sprite-sheet pixels to world units.
	Scale = 2.0
	// ScreenTileSize is the edge of a placed tile or entity in world units.
	ScreenTileSize = TileSize * Scale
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Direction returns the unit vector from one point toward another, or the
// zero vector when both points coincide.
func Direction(from, to cp.Vector) cp.Vector {
	d := to.Sub(from)
	l := d.Length()
	if l == 0 {
		return cp.Vector{}
	}
	return d.Mult(1 / l)
}

// FacingAngle returns the angle in degrees, in [0, 360), of the line from one
// point to another. Screen y grows downward, so "up" is 90.
func FacingAngle(from, to cp.Vector) float64 {
	d := to.Sub(from)
	deg := -math.Atan2(d.Y, d.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Sprite sheet rows for the four facings.
const (
	RowDown  = 0
	RowUp    = 1
	RowRight = 2
	RowLeft  = 3
)

// FacingRow picks the sprite sheet row for a facing angle.
func FacingRow(angle float64) int {
	switch {
	case angle >= 45 && angle <= 135:
		return RowUp
	case angle >= 135 && angle <= 225:
		return RowLeft
	case angle >= 225 && angle <= 315:
		return RowDown
	default:
		return RowRight
	}
}
