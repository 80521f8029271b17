package ecs

// BaseCapacity is the capacity a Vector starts with and falls back to when it
// is emptied.
const BaseCapacity = 25

// Vector is a dense, gap-free growable array. Appends double the backing
// storage when it is full; removals shift the tail down so indices stay
// contiguous. Storage only ever shrinks when the vector becomes empty.
type Vector[T any] struct {
	items []T
}

func NewVector[T any]() *Vector[T] {
	return &Vector[T]{items: make([]T, 0, BaseCapacity)}
}

// Len returns the number of stored elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.items)
}

// Cap returns the size of the backing storage.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return cap(v.items)
}

// Append adds item at the end.
func (v *Vector[T]) Append(item T) {
	if v == nil {
		return
	}
	if cap(v.items) == 0 {
		v.items = make([]T, 0, BaseCapacity)
	}
	if len(v.items) == cap(v.items) {
		grown := make([]T, len(v.items), cap(v.items)*2)
		copy(grown, v.items)
		v.items = grown
	}
	v.items = append(v.items, item)
}

// At returns a pointer to element i, or nil when i is out of range. The
// pointer is only valid until the next Append, RemoveAt or Reset.
func (v *Vector[T]) At(i int) *T {
	if v == nil || i < 0 || i >= len(v.items) {
		return nil
	}
	return &v.items[i]
}

// RemoveAt deletes element i, shifting every later element down by one.
// Out-of-range indices are ignored.
func (v *Vector[T]) RemoveAt(i int) bool {
	if v == nil || i < 0 || i >= len(v.items) {
		return false
	}
	last := len(v.items) - 1
	copy(v.items[i:], v.items[i+1:])
	var zero T
	v.items[last] = zero
	v.items = v.items[:last]
	if len(v.items) == 0 {
		v.Reset()
	}
	return true
}

// Reset drops every element and returns to the base capacity.
func (v *Vector[T]) Reset() {
	if v == nil {
		return
	}
	v.items = make([]T, 0, BaseCapacity)
}

// Index returns the position of the first element matching pred, or -1.
func (v *Vector[T]) Index(pred func(*T) bool) int {
	if v == nil {
		return -1
	}
	for i := range v.items {
		if pred(&v.items[i]) {
			return i
		}
	}
	return -1
}

// Items exposes the dense element slice. Callers must not append to it.
func (v *Vector[T]) Items() []T {
	if v == nil {
		return nil
	}
	return v.items
}
