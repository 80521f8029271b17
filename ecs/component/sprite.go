package component

// Sprite is an opaque handle to image data owned by the sprite cache. A handle
// whose load failed is still carried by tiles and entities so their geometry
// stays intact, but it must not be drawn.
type Sprite struct {
	ID     uint64
	Path   string
	Loaded bool
}

// Valid reports whether the handle refers to loaded image data.
func (s Sprite) Valid() bool {
	return s.Loaded && s.ID != 0
}
