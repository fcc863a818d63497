package vista

// Iterator is a bidirectional cursor over a join's leading dense array that
// skips entries failing the validity predicate. Iterators are values and
// compare with ==; comparing iterators from different views is meaningless.
//
// An iterator must not outlive its view, and the view must not outlive its
// tables. Within those bounds the mutations listed in the package
// documentation are permitted during iteration; any other structural change
// to an involved table invalidates every live iterator over the join.
type Iterator struct {
	j   *join
	pos int
}

func newIterator(j *join, pos int) Iterator {
	it := Iterator{j: j, pos: pos}
	if lead := j.lead(); it.pos < lead.Size() && !j.valid(lead.At(it.pos)) {
		it = it.Next()
	}
	return it
}

// Begin returns an iterator on the first matching entity, equal to End when
// the view matches nothing.
func (j *join) Begin() Iterator {
	return newIterator(j, 0)
}

// End returns the past-the-end iterator. Dereferencing it is invalid.
func (j *join) End() Iterator {
	return Iterator{j: j, pos: j.lead().Size()}
}

// Find returns an iterator on e, or End when e is not part of the view.
// The locate is O(1) through the leading set's sparse index; the wrapped
// result is re-checked against e before being returned.
func (j *join) Find(e Entity) Iterator {
	pos := j.lead().FindIndex(e)
	if pos == absent {
		return j.End()
	}
	it := newIterator(j, pos)
	if !it.Done() && it.Entity() == e {
		return it
	}
	return j.End()
}

// Front returns the first matching entity, or Null when the view is empty.
func (j *join) Front() Entity {
	if it := j.Begin(); !it.Done() {
		return it.Entity()
	}
	return Null
}

// Back returns the last matching entity, or Null when the view is empty.
func (j *join) Back() Entity {
	lead := j.lead()
	for pos := lead.Size() - 1; pos >= 0; pos-- {
		if e := lead.At(pos); j.valid(e) {
			return e
		}
	}
	return Null
}

// Done reports whether the iterator is past the last matching entity.
func (it Iterator) Done() bool {
	return it.pos >= it.j.lead().Size()
}

// Entity returns the identifier under the cursor. The iterator must not be
// Done.
func (it Iterator) Entity() Entity {
	return it.j.lead().At(it.pos)
}

// Next advances to the next valid position, or past the end.
func (it Iterator) Next() Iterator {
	lead := it.j.lead()
	it.pos++
	for it.pos < lead.Size() && !it.j.valid(lead.At(it.pos)) {
		it.pos++
	}
	return it
}

// Prev walks backward to the previous valid position. It stops at the start
// of the array even when that position fails the predicate.
func (it Iterator) Prev() Iterator {
	lead := it.j.lead()
	it.pos--
	for it.pos > 0 && !it.j.valid(lead.At(it.pos)) {
		it.pos--
	}
	return it
}
