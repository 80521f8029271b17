package component

import "github.com/jakecoffman/cp"

// Input is the per-tick snapshot of the controls the simulation reads.
type Input struct {
	// Movement keys held down.
	Up, Down, Left, Right bool

	// Action keys pressed this tick.
	HealPressed    bool
	SpawnPressed   bool
	RespawnPressed bool
	QuitPressed    bool

	// Cursor is the pointer position in world space.
	Cursor cp.Vector
}

// Axis returns the requested direction per axis, each -1, 0 or 1.
func (in Input) Axis() (x, y float64) {
	if in.Left {
		x--
	}
	if in.Right {
		x++
	}
	if in.Up {
		y--
	}
	if in.Down {
		y++
	}
	return x, y
}

// Moving reports whether any movement key is held.
func (in Input) Moving() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// Diagonal reports whether movement is requested on both axes.
func (in Input) Diagonal() bool {
	x, y := in.Axis()
	return x != 0 && y != 0
}
