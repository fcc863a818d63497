package vista

import "iter"

// Row3 is one record of a View3 traversal.
type Row3[A, B, C any] struct {
	Entity Entity
	A      *A
	B      *B
	C      *C
}

// View3 joins three typed tables. See View2 for the traversal semantics; the
// two differ only in arity.
type View3[A, B, C any] struct {
	join
	a *Table[A]
	b *Table[B]
	c *Table[C]
}

func NewView3[A, B, C any](a *Table[A], b *Table[B], c *Table[C], opts ...ViewOption) *View3[A, B, C] {
	o := newViewOptions(opts)
	v := &View3[A, B, C]{a: a, b: b, c: c}
	v.join = newJoin(o.schema, append([]EntitySet{a, b, c}, o.with...), o.without)
	return v
}

// Get returns e's components with one O(1) lookup per type. The entity must
// be contained in the view; only debug builds check.
func (v *View3[A, B, C]) Get(e Entity) (*A, *B, *C) {
	if debugEnabled && !v.Contains(e) {
		panic(MissingEntityError{Entity: e})
	}
	return v.a.Get(e), v.b.Get(e), v.c.Get(e)
}

// Each visits every matching entity with its components, re-picking the
// smallest included set as the driver on every call.
func (v *View3[A, B, C]) Each(fn func(Entity, *A, *B, *C)) {
	v.eachUsing(v.smallest(), fn)
}

// EachValues is Each without the entity argument.
func (v *View3[A, B, C]) EachValues(fn func(*A, *B, *C)) {
	v.eachUsing(v.smallest(), func(_ Entity, a *A, b *B, c *C) { fn(a, b, c) })
}

// EachUsing pins the driving set, trading pool size for caller-controlled
// iteration order. The driver must be one of the view's included sets.
func (v *View3[A, B, C]) EachUsing(driver EntitySet, fn func(Entity, *A, *B, *C)) {
	v.requireIncluded(driver)
	v.eachUsing(driver, fn)
}

func (v *View3[A, B, C]) eachUsing(driver EntitySet, fn func(Entity, *A, *B, *C)) {
	switch {
	case driver == EntitySet(v.a):
		dense, raw := v.a.Entities(), v.a.Raw()
		for i, e := range dense {
			if v.validExcept(e, driver) {
				fn(e, &raw[i], v.b.Get(e), v.c.Get(e))
			}
		}
	case driver == EntitySet(v.b):
		dense, raw := v.b.Entities(), v.b.Raw()
		for i, e := range dense {
			if v.validExcept(e, driver) {
				fn(e, v.a.Get(e), &raw[i], v.c.Get(e))
			}
		}
	case driver == EntitySet(v.c):
		dense, raw := v.c.Entities(), v.c.Raw()
		for i, e := range dense {
			if v.validExcept(e, driver) {
				fn(e, v.a.Get(e), v.b.Get(e), &raw[i])
			}
		}
	default:
		for _, e := range driver.Entities() {
			if v.validExcept(e, driver) {
				fn(e, v.a.Get(e), v.b.Get(e), v.c.Get(e))
			}
		}
	}
}

// All returns a lazy record sequence in leading-table order, restartable per
// call.
func (v *View3[A, B, C]) All() iter.Seq[Row3[A, B, C]] {
	return func(yield func(Row3[A, B, C]) bool) {
		dense, raw := v.a.Entities(), v.a.Raw()
		for i, e := range dense {
			if !v.valid(e) {
				continue
			}
			if !yield(Row3[A, B, C]{Entity: e, A: &raw[i], B: v.b.Get(e), C: v.c.Get(e)}) {
				return
			}
		}
	}
}
