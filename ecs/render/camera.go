package render

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/common"
)

// Camera follows a world point with linear smoothing.
type Camera struct {
	Pos cp.Vector

	screenW int
	screenH int
	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
}

func NewCamera(screenW, screenH int, smooth float64) *Camera {
	return &Camera{
		Pos:     cp.Vector{X: float64(screenW) / 2, Y: float64(screenH) / 2},
		screenW: screenW,
		screenH: screenH,
		smooth:  smooth,
	}
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

func (c *Camera) Size() (float64, float64) {
	return float64(c.screenW), float64(c.screenH)
}

// Update moves the camera toward target. Call from the fixed-rate Update loop
// to get consistent smoothing.
func (c *Camera) Update(target cp.Vector) {
	if c.smooth <= 0 || c.smooth >= 1 {
		c.Pos = target
	} else {
		c.Pos.X = common.Lerp(c.Pos.X, target.X, c.smooth)
		c.Pos.Y = common.Lerp(c.Pos.Y, target.Y, c.smooth)
	}
	// snap to whole pixels so tiles don't shimmer
	c.Pos.X = math.Round(c.Pos.X)
	c.Pos.Y = math.Round(c.Pos.Y)
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() cp.Vector {
	return cp.Vector{X: c.Pos.X - float64(c.screenW)/2, Y: c.Pos.Y - float64(c.screenH)/2}
}

func (c *Camera) ScreenToWorld(x, y int) cp.Vector {
	return c.ViewTopLeft().Add(cp.Vector{X: float64(x), Y: float64(y)})
}

func (c *Camera) WorldToScreen(p cp.Vector) cp.Vector {
	return p.Sub(c.ViewTopLeft())
}
