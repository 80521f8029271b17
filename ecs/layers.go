package ecs

import (
	"fmt"

	"github.com/milk9111/tileworld/common"
	"github.com/milk9111/tileworld/ecs/component"
)

// Layers is the layered world store: one dense tile collection per category.
// Every category-specific operation dispatches through layer() so an unknown
// category is rejected in one place.
type Layers struct {
	layers   [component.CategoryCount]*Vector[component.Tile]
	tileSize float64
}

// NewLayers creates empty layers whose tiles are tileSize world units square.
func NewLayers(tileSize float64) *Layers {
	if tileSize <= 0 {
		tileSize = common.ScreenTileSize
	}
	l := &Layers{tileSize: tileSize}
	for i := range l.layers {
		l.layers[i] = NewVector[component.Tile]()
	}
	return l
}

func (l *Layers) layer(cat component.Category) *Vector[component.Tile] {
	if l == nil || !cat.Valid() {
		return nil
	}
	return l.layers[cat]
}

// TileSize returns the edge of every tile footprint.
func (l *Layers) TileSize() float64 {
	if l == nil {
		return common.ScreenTileSize
	}
	return l.tileSize
}

// AddTile appends tile to its category, stamping the category on it.
func (l *Layers) AddTile(cat component.Category, tile component.Tile) error {
	v := l.layer(cat)
	if v == nil {
		return fmt.Errorf("ecs: add tile: %w", component.ErrUnknownCategory)
	}
	tile.Category = cat
	v.Append(tile)
	return nil
}

// RemoveTile deletes the tile at index, shifting later tiles down. An empty
// category releases its storage back to the base capacity.
func (l *Layers) RemoveTile(cat component.Category, index int) bool {
	return l.layer(cat).RemoveAt(index)
}

// Tile returns the tile at index, or nil.
func (l *Layers) Tile(cat component.Category, index int) *component.Tile {
	return l.layer(cat).At(index)
}

// Len returns the number of stored tiles in a category, inactive ones included.
func (l *Layers) Len(cat component.Category) int {
	return l.layer(cat).Len()
}

// Cap returns the storage capacity of a category.
func (l *Layers) Cap(cat component.Category) int {
	return l.layer(cat).Cap()
}

// Total returns the number of stored tiles across all categories.
func (l *Layers) Total() int {
	n := 0
	for _, c := range component.Categories() {
		n += l.Len(c)
	}
	return n
}

// QueryCollision returns the index of the first active tile in cat whose
// footprint overlaps rect, or component.None. It is a linear scan.
func (l *Layers) QueryCollision(rect common.Rect, cat component.Category) int {
	v := l.layer(cat)
	if v == nil {
		return component.None
	}
	tiles := v.Items()
	for i := range tiles {
		if !tiles[i].Active {
			continue
		}
		if rect.Intersects(tiles[i].Rect(l.tileSize)) {
			return i
		}
	}
	return component.None
}

// Deactivate marks a tile as consumed without moving any other tile.
func (l *Layers) Deactivate(cat component.Category, index int) bool {
	t := l.Tile(cat, index)
	if t == nil || !t.Active {
		return false
	}
	t.Active = false
	return true
}

// Compact removes every inactive tile in cat and returns how many went.
func (l *Layers) Compact(cat component.Category) int {
	v := l.layer(cat)
	removed := 0
	for i := v.Len() - 1; i >= 0; i-- {
		if !v.At(i).Active {
			v.RemoveAt(i)
			removed++
		}
	}
	return removed
}

// ClearCategory drops every tile in cat along with its sprite handles.
func (l *Layers) ClearCategory(cat component.Category) {
	l.layer(cat).Reset()
}

// Clear empties every category.
func (l *Layers) Clear() {
	for _, c := range component.Categories() {
		l.ClearCategory(c)
	}
}

// Animate advances the frame counter of every active animated tile.
func (l *Layers) Animate() {
	for _, c := range component.Categories() {
		tiles := l.layer(c).Items()
		for i := range tiles {
			if tiles[i].Active && tiles[i].Animated {
				tiles[i].Animation.Advance()
			}
		}
	}
}

// Visible calls fn for every active tile in cat whose centre lies inside area.
func (l *Layers) Visible(cat component.Category, area common.Rect, fn func(*component.Tile)) {
	tiles := l.layer(cat).Items()
	for i := range tiles {
		if !tiles[i].Active {
			continue
		}
		if area.Contains(tiles[i].Rect(l.tileSize).Center()) {
			fn(&tiles[i])
		}
	}
}

// Each calls fn for every stored tile in cat, inactive ones included.
func (l *Layers) Each(cat component.Category, fn func(int, *component.Tile)) {
	tiles := l.layer(cat).Items()
	for i := range tiles {
		fn(i, &tiles[i])
	}
}
