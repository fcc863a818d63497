/*
Package vista provides non-owning views and joins over entity-keyed,
columnar component tables.

A Table stores at most one component per entity in a dense array with an
O(1) sparse index. A View wraps one table with zero overhead; View1 through
View4 join several tables, lazily yielding the entities present in every
included table and absent from every excluded one without ever copying the
result.

Core Concepts:

  - Entity: an opaque identifier, index plus recycling version.
  - Table: dense per-type component storage with O(1) membership.
  - View: a read/iterate handle over one table or a join across several.
  - Tag: a zero-size component whose presence, not value, matters.

Basic Usage:

	index := vista.Factory.NewEntryIndex()
	positions := vista.NewTable[Position]()
	velocities := vista.NewTable[Velocity]()

	e := index.New()
	positions.Set(e, Position{X: 1})
	velocities.Set(e, Velocity{X: 2})

	moving := vista.NewView2(positions, velocities)
	moving.Each(func(_ vista.Entity, pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	})

	for row := range moving.All() {
		fmt.Println(row.Entity, row.A, row.B)
	}

Tables are owned by the caller and must outlive every view built over them;
views hold no storage of their own and must outlive their iterators. The
engine performs no locking and no mutation: callers serialize concurrent
writes against iteration. While an iteration is in progress it is safe to
insert components of the involved types for any entity, and to remove an
involved component from, or destroy, the entity currently under the cursor.
Any other structural change to an involved table invalidates every live
iterator over that view.
*/
package vista
