package component

// Animation is a two-variable frame counter over a sprite sheet. Col is the
// displayed frame, Row the sheet row (facing for entities).
type Animation struct {
	// Counter counts ticks since the last wrap.
	Counter int
	// Speed is the number of ticks each frame stays on screen.
	Speed int
	// Frames is the last frame index shown before wrapping to 0.
	Frames int

	Col int
	Row int
}

func NewAnimation(frames, speed int) Animation {
	return Animation{Frames: frames, Speed: speed}
}

// Advance counts one tick and recomputes the displayed frame. Once the frame
// index passes Frames both the counter and the frame wrap to 0.
func (a *Animation) Advance() {
	if a == nil {
		return
	}
	speed := a.Speed
	if speed <= 0 {
		speed = 1
	}
	a.Counter++
	a.Col = a.Counter / speed
	if a.Col > a.Frames {
		a.Col = 0
		a.Counter = 0
	}
}

// Idle forces the resting frame (0,0). The counter is left untouched.
func (a *Animation) Idle() {
	if a == nil {
		return
	}
	a.Col = 0
	a.Row = 0
}
