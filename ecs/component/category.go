package component

import (
	"fmt"
	"strings"
)

// Category is the layer a tile lives in. The set is closed: the numeric values
// are the tags used by the world text format.
type Category uint8

const (
	Wall Category = iota
	Floor
	Door
	HealthBuff
	DamageBuff
	Interactable

	categoryCount
)

// CategoryCount is the number of tile categories.
const CategoryCount = int(categoryCount)

var categoryNames = [CategoryCount]string{
	Wall:         "wall",
	Floor:        "floor",
	Door:         "door",
	HealthBuff:   "health_buff",
	DamageBuff:   "damage_buff",
	Interactable: "interactable",
}

// Categories returns every category in tag order.
func Categories() []Category {
	out := make([]Category, 0, CategoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

func (c Category) Valid() bool {
	return c < categoryCount
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// ParseCategory converts a numeric tag from the world format.
func ParseCategory(tag int) (Category, error) {
	if tag < 0 || tag >= CategoryCount {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCategory, tag)
	}
	return Category(tag), nil
}

// CategoryByName resolves the lowercase name printed by String, as taken by
// the worldcheck -category flag.
func CategoryByName(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range categoryNames {
		if n == name {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}
