package vista

import "iter"

// Row1 is one record of a View1 traversal.
type Row1[A any] struct {
	Entity Entity
	A      *A
}

// View1 joins a single typed table with the membership-only includes and the
// exclusions added through options. With no options it behaves like View
// with a join surface; with options it is the one-component join.
type View1[A any] struct {
	join
	a *Table[A]
}

// NewView1 builds a view over the entities of a that are also present in
// every set added with With and absent from every set added with Without.
func NewView1[A any](a *Table[A], opts ...ViewOption) *View1[A] {
	o := newViewOptions(opts)
	v := &View1[A]{a: a}
	v.join = newJoin(o.schema, append([]EntitySet{a}, o.with...), o.without)
	return v
}

// Get returns e's component. The entity must be contained in the view; only
// debug builds check.
func (v *View1[A]) Get(e Entity) *A {
	if debugEnabled && !v.Contains(e) {
		panic(MissingEntityError{Entity: e})
	}
	return v.a.Get(e)
}

// Each visits every matching entity with its component, walking whichever
// included set is currently smallest.
func (v *View1[A]) Each(fn func(Entity, *A)) {
	v.eachUsing(v.smallest(), fn)
}

// EachValues is Each without the entity argument.
func (v *View1[A]) EachValues(fn func(*A)) {
	v.eachUsing(v.smallest(), func(_ Entity, a *A) { fn(a) })
}

// EachUsing pins the driving set, trading pool size for caller-controlled
// iteration order. The driver must be one of the view's included sets.
func (v *View1[A]) EachUsing(driver EntitySet, fn func(Entity, *A)) {
	v.requireIncluded(driver)
	v.eachUsing(driver, fn)
}

func (v *View1[A]) eachUsing(driver EntitySet, fn func(Entity, *A)) {
	if driver == EntitySet(v.a) {
		dense, raw := v.a.Entities(), v.a.Raw()
		for i, e := range dense {
			if v.validExcept(e, driver) {
				fn(e, &raw[i])
			}
		}
		return
	}
	for _, e := range driver.Entities() {
		if v.validExcept(e, driver) {
			fn(e, v.a.Get(e))
		}
	}
}

// All returns a lazy record sequence in leading-table order, restartable per
// call.
func (v *View1[A]) All() iter.Seq[Row1[A]] {
	return func(yield func(Row1[A]) bool) {
		dense, raw := v.a.Entities(), v.a.Raw()
		for i, e := range dense {
			if !v.valid(e) {
				continue
			}
			if !yield(Row1[A]{Entity: e, A: &raw[i]}) {
				return
			}
		}
	}
}
