package vista

import "iter"

// Row2 is one record of a View2 traversal.
type Row2[A, B any] struct {
	Entity Entity
	A      *A
	B      *B
}

// View2 joins two typed tables. Tag tables and other membership-only
// includes join through the With option so they never surface in callback
// arguments; excluded sets join through Without.
type View2[A, B any] struct {
	join
	a *Table[A]
	b *Table[B]
}

// NewView2 builds a view over the entities present in both a and b, in every
// set added with With, and in none of the sets added with Without. The first
// table leads: iterators and All follow its dense order.
func NewView2[A, B any](a *Table[A], b *Table[B], opts ...ViewOption) *View2[A, B] {
	o := newViewOptions(opts)
	v := &View2[A, B]{a: a, b: b}
	v.join = newJoin(o.schema, append([]EntitySet{a, b}, o.with...), o.without)
	return v
}

// Get returns e's components with one O(1) lookup per type. The entity must
// be contained in the view; only debug builds check.
func (v *View2[A, B]) Get(e Entity) (*A, *B) {
	if debugEnabled && !v.Contains(e) {
		panic(MissingEntityError{Entity: e})
	}
	return v.a.Get(e), v.b.Get(e)
}

// Each visits every matching entity with its components. The driving set is
// re-picked on every call: whichever included set currently has the fewest
// entries, so the predicate runs as few times as possible. Iteration order
// follows the driver and may change between calls as tables grow and shrink.
func (v *View2[A, B]) Each(fn func(Entity, *A, *B)) {
	v.eachUsing(v.smallest(), fn)
}

// EachValues is Each without the entity argument.
func (v *View2[A, B]) EachValues(fn func(*A, *B)) {
	v.eachUsing(v.smallest(), func(_ Entity, a *A, b *B) { fn(a, b) })
}

// EachUsing pins the driving set, trading pool size for caller-controlled
// iteration order. The driver must be one of the view's included sets.
func (v *View2[A, B]) EachUsing(driver EntitySet, fn func(Entity, *A, *B)) {
	v.requireIncluded(driver)
	v.eachUsing(driver, fn)
}

func (v *View2[A, B]) eachUsing(driver EntitySet, fn func(Entity, *A, *B)) {
	switch {
	case driver == EntitySet(v.a):
		dense, raw := v.a.Entities(), v.a.Raw()
		for i, e := range dense {
			if v.validExcept(e, driver) {
				fn(e, &raw[i], v.b.Get(e))
			}
		}
	case driver == EntitySet(v.b):
		dense, raw := v.b.Entities(), v.b.Raw()
		for i, e := range dense {
			if v.validExcept(e, driver) {
				fn(e, v.a.Get(e), &raw[i])
			}
		}
	default:
		for _, e := range driver.Entities() {
			if v.validExcept(e, driver) {
				fn(e, v.a.Get(e), v.b.Get(e))
			}
		}
	}
}

// All returns a lazy record sequence, restartable per call. Unlike Each it
// is always driven by the leading table, so the order is stable across calls
// at the cost of the optimal driver.
func (v *View2[A, B]) All() iter.Seq[Row2[A, B]] {
	return func(yield func(Row2[A, B]) bool) {
		dense, raw := v.a.Entities(), v.a.Raw()
		for i, e := range dense {
			if !v.valid(e) {
				continue
			}
			if !yield(Row2[A, B]{Entity: e, A: &raw[i], B: v.b.Get(e)}) {
				return
			}
		}
	}
}
