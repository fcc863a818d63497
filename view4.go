package vista

import "iter"

// Row4 is one record of a View4 traversal.
type Row4[A, B, C, D any] struct {
	Entity Entity
	A      *A
	B      *B
	C      *C
	D      *D
}

// View4 joins four typed tables. See View2 for the traversal semantics.
// Wider joins compose a View4 with membership-only With includes.
type View4[A, B, C, D any] struct {
	join
	a *Table[A]
	b *Table[B]
	c *Table[C]
	d *Table[D]
}

func NewView4[A, B, C, D any](a *Table[A], b *Table[B], c *Table[C], d *Table[D], opts ...ViewOption) *View4[A, B, C, D] {
	o := newViewOptions(opts)
	v := &View4[A, B, C, D]{a: a, b: b, c: c, d: d}
	v.join = newJoin(o.schema, append([]EntitySet{a, b, c, d}, o.with...), o.without)
	return v
}

// Get returns e's components with one O(1) lookup per type. The entity must
// be contained in the view; only debug builds check.
func (v *View4[A, B, C, D]) Get(e Entity) (*A, *B, *C, *D) {
	if debugEnabled && !v.Contains(e) {
		panic(MissingEntityError{Entity: e})
	}
	return v.a.Get(e), v.b.Get(e), v.c.Get(e), v.d.Get(e)
}

// Each visits every matching entity with its components, re-picking the
// smallest included set as the driver on every call.
func (v *View4[A, B, C, D]) Each(fn func(Entity, *A, *B, *C, *D)) {
	v.eachUsing(v.smallest(), fn)
}

// EachValues is Each without the entity argument.
func (v *View4[A, B, C, D]) EachValues(fn func(*A, *B, *C, *D)) {
	v.eachUsing(v.smallest(), func(_ Entity, a *A, b *B, c *C, d *D) { fn(a, b, c, d) })
}

// EachUsing pins the driving set, trading pool size for caller-controlled
// iteration order. The driver must be one of the view's included sets.
func (v *View4[A, B, C, D]) EachUsing(driver EntitySet, fn func(Entity, *A, *B, *C, *D)) {
	v.requireIncluded(driver)
	v.eachUsing(driver, fn)
}

func (v *View4[A, B, C, D]) eachUsing(driver EntitySet, fn func(Entity, *A, *B, *C, *D)) {
	switch {
	case driver == EntitySet(v.a):
		dense, raw := v.a.Entities(), v.a.Raw()
		for i, e := range dense {
			if v.validExcept(e, driver) {
				fn(e, &raw[i], v.b.Get(e), v.c.Get(e), v.d.Get(e))
			}
		}
	case driver == EntitySet(v.b):
		dense, raw := v.b.Entities(), v.b.Raw()
		for i, e := range dense {
			if v.validExcept(e, driver) {
				fn(e, v.a.Get(e), &raw[i], v.c.Get(e), v.d.Get(e))
			}
		}
	case driver == EntitySet(v.c):
		dense, raw := v.c.Entities(), v.c.Raw()
		for i, e := range dense {
			if v.validExcept(e, driver) {
				fn(e, v.a.Get(e), v.b.Get(e), &raw[i], v.d.Get(e))
			}
		}
	case driver == EntitySet(v.d):
		dense, raw := v.d.Entities(), v.d.Raw()
		for i, e := range dense {
			if v.validExcept(e, driver) {
				fn(e, v.a.Get(e), v.b.Get(e), v.c.Get(e), &raw[i])
			}
		}
	default:
		for _, e := range driver.Entities() {
			if v.validExcept(e, driver) {
				fn(e, v.a.Get(e), v.b.Get(e), v.c.Get(e), v.d.Get(e))
			}
		}
	}
}

// All returns a lazy record sequence in leading-table order, restartable per
// call.
func (v *View4[A, B, C, D]) All() iter.Seq[Row4[A, B, C, D]] {
	return func(yield func(Row4[A, B, C, D]) bool) {
		dense, raw := v.a.Entities(), v.a.Raw()
		for i, e := range dense {
			if !v.valid(e) {
				continue
			}
			if !yield(Row4[A, B, C, D]{Entity: e, A: &raw[i], B: v.b.Get(e), C: v.c.Get(e), D: v.d.Get(e)}) {
				return
			}
		}
	}
}
