package vista

import "reflect"

// Tag is a convenience alias for zero-size marker components, where presence
// is the only meaningful state.
type Tag = struct{}

const absent = -1

// Table is an entity-keyed column store for a single component type: a dense
// entity array, a parallel dense value array, and a sparse index from entity
// index to dense position. Membership tests, lookups and removals are O(1).
type Table[T any] struct {
	dense  []Entity
	values []T
	sparse []int32
	tag    bool
}

var _ EntitySet = &Table[int]{}

func NewTable[T any]() *Table[T] {
	return &Table[T]{tag: reflect.TypeFor[T]().Size() == 0}
}

func (t *Table[T]) Size() int {
	return len(t.dense)
}

func (t *Table[T]) Empty() bool {
	return len(t.dense) == 0
}

// IsTag reports whether the element type is zero-size. Tag tables track
// membership only; their Raw slice carries no state.
func (t *Table[T]) IsTag() bool {
	return t.tag
}

// position resolves e to its dense offset, or absent. The stored entity is
// compared back against e so a recycled index under a newer version never
// aliases the old entry.
func (t *Table[T]) position(e Entity) int {
	idx := e.Index()
	if int(idx) >= len(t.sparse) {
		return absent
	}
	pos := t.sparse[idx]
	if pos == absent || t.dense[pos] != e {
		return absent
	}
	return int(pos)
}

func (t *Table[T]) Contains(e Entity) bool {
	return t.position(e) != absent
}

// FindIndex returns e's dense offset, or -1 when absent.
func (t *Table[T]) FindIndex(e Entity) int {
	return t.position(e)
}

// At returns the entity stored at the given dense offset.
func (t *Table[T]) At(pos int) Entity {
	return t.dense[pos]
}

// Entities returns the dense entity array. The slice aliases table storage
// and is valid, possibly empty, until the table is structurally changed.
func (t *Table[T]) Entities() []Entity {
	return t.dense
}

// Raw returns the dense component array, parallel to Entities. Meaningless
// for tag tables beyond its length.
func (t *Table[T]) Raw() []T {
	return t.values
}

// Get returns a pointer to the component stored for e. The entity must be
// contained in the table; only debug builds check.
func (t *Table[T]) Get(e Entity) *T {
	if debugEnabled && !t.Contains(e) {
		panic(MissingEntityError{Entity: e})
	}
	return &t.values[t.sparse[e.Index()]]
}

// Set stores v for e, inserting a new entry or overwriting an existing one.
func (t *Table[T]) Set(e Entity, v T) {
	if pos := t.position(e); pos != absent {
		t.values[pos] = v
		return
	}
	idx := int(e.Index())
	for idx >= len(t.sparse) {
		t.sparse = append(t.sparse, absent)
	}
	t.sparse[idx] = int32(len(t.dense))
	t.dense = append(t.dense, e)
	t.values = append(t.values, v)
}

// Remove deletes e's entry by swapping the last dense entry into its slot.
// Reports whether anything was removed.
func (t *Table[T]) Remove(e Entity) bool {
	pos := t.position(e)
	if pos == absent {
		return false
	}
	last := len(t.dense) - 1
	moved := t.dense[last]
	t.dense[pos] = moved
	t.values[pos] = t.values[last]
	t.sparse[moved.Index()] = int32(pos)
	t.dense = t.dense[:last]
	t.values = t.values[:last]
	t.sparse[e.Index()] = absent
	return true
}

// Clear removes every entry while keeping the allocated capacity.
func (t *Table[T]) Clear() {
	t.dense = t.dense[:0]
	t.values = t.values[:0]
	for i := range t.sparse {
		t.sparse[i] = absent
	}
}

// Each visits every entry once in dense order.
func (t *Table[T]) Each(fn func(Entity, *T)) {
	for i, e := range t.dense {
		fn(e, &t.values[i])
	}
}
