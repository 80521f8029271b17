package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/common"
)

// Tile is one placed grid cell.
type Tile struct {
	// Src is the top-left of the cell inside the sprite sheet.
	Src cp.Vector
	// Pos is the top-left of the tile in world space.
	Pos      cp.Vector
	Category Category
	Sprite   Sprite
	// Inactive tiles stay in storage until compacted but are skipped by
	// collision, combat and draw queries.
	Active    bool
	Animated  bool
	Animation Animation
}

// NewTile returns an active, static tile.
func NewTile(cat Category, src, pos cp.Vector, sprite Sprite) Tile {
	return Tile{Src: src, Pos: pos, Category: cat, Sprite: sprite, Active: true}
}

// Rect is the tile's footprint in world space.
func (t *Tile) Rect(size float64) common.Rect {
	return common.Square(t.Pos, size)
}

// SourceOffset is the sheet position of the frame currently displayed.
func (t *Tile) SourceOffset(cell float64) cp.Vector {
	if !t.Animated {
		return t.Src
	}
	return cp.Vector{X: t.Src.X + float64(t.Animation.Col)*cell, Y: t.Src.Y}
}
