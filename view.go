package vista

import "iter"

// View is a zero-overhead wrapper around one table. It adds no storage and
// no indirection beyond the table pointer: every accessor resolves to a
// direct dense-array or sparse-index operation. Views are values; copy them
// freely. A view is valid as long as its table is.
type View[T any] struct {
	tbl *Table[T]
}

var _ EntitySet = View[int]{}

func NewView[T any](tbl *Table[T]) View[T] {
	return View[T]{tbl: tbl}
}

func (v View[T]) Size() int {
	return v.tbl.Size()
}

func (v View[T]) Empty() bool {
	return v.tbl.Empty()
}

func (v View[T]) Contains(e Entity) bool {
	return v.tbl.Contains(e)
}

// Get returns a pointer to e's component. The entity must be contained in
// the view; only debug builds check.
func (v View[T]) Get(e Entity) *T {
	return v.tbl.Get(e)
}

// Raw returns the dense component array, parallel to Entities.
func (v View[T]) Raw() []T {
	return v.tbl.Raw()
}

// Entities returns the dense entity array in table order.
func (v View[T]) Entities() []Entity {
	return v.tbl.Entities()
}

// At returns the entity at the given dense offset.
func (v View[T]) At(pos int) Entity {
	return v.tbl.At(pos)
}

// FindIndex returns e's dense offset, or -1 when absent.
func (v View[T]) FindIndex(e Entity) int {
	return v.tbl.FindIndex(e)
}

// Front returns the first entity in table order, or Null when empty.
func (v View[T]) Front() Entity {
	if v.tbl.Empty() {
		return Null
	}
	return v.tbl.dense[0]
}

// Back returns the last entity in table order, or Null when empty.
func (v View[T]) Back() Entity {
	if v.tbl.Empty() {
		return Null
	}
	return v.tbl.dense[len(v.tbl.dense)-1]
}

// Each visits every entity once with its component.
func (v View[T]) Each(fn func(Entity, *T)) {
	v.tbl.Each(fn)
}

// EachValues visits every component without the entity.
func (v View[T]) EachValues(fn func(*T)) {
	values := v.tbl.values
	for i := range values {
		fn(&values[i])
	}
}

// EachEntity visits every entity without its component. This is the
// traversal form for tag tables.
func (v View[T]) EachEntity(fn func(Entity)) {
	for _, e := range v.tbl.dense {
		fn(e)
	}
}

// All returns a lazy entity+component sequence in table order, restartable
// per call.
func (v View[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		dense, values := v.tbl.dense, v.tbl.values
		for i, e := range dense {
			if !yield(e, &values[i]) {
				return
			}
		}
	}
}

// Backward returns the same sequence in reverse table order.
func (v View[T]) Backward() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		dense, values := v.tbl.dense, v.tbl.values
		for i := len(dense) - 1; i >= 0; i-- {
			if !yield(dense[i], &values[i]) {
				return
			}
		}
	}
}
