package vista

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

// join is the untyped core shared by every multi-table view: the included
// and excluded sets, the validity predicate, and the traversal paths that
// don't need typed component access. ViewN embeds it and layers typed access
// on top.
//
// include holds every included set in declaration order; include[0] is the
// leading set, fixed at construction, which drives Begin/End/Find and the
// lazy record sequences. The callback traversals instead re-pick the
// smallest included set on every call.
type join struct {
	include   []EntitySet
	exclude   []EntitySet
	signature mask.Mask
}

var _ mask.Maskable = &join{}

func newJoin(schema *Schema, include, exclude []EntitySet) join {
	var inclMask, exclMask mask.Mask
	for _, set := range include {
		inclMask.Mark(schema.RowIndexFor(set))
	}
	for _, set := range exclude {
		exclMask.Mark(schema.RowIndexFor(set))
	}
	if inclMask.ContainsAny(exclMask) {
		panic(OverlappingViewError{})
	}
	return join{include: include, exclude: exclude, signature: inclMask}
}

// Mask returns the include signature of the view.
func (j *join) Mask() mask.Mask {
	return j.signature
}

func (j *join) lead() EntitySet {
	return j.include[0]
}

// SizeHint returns an upper bound on the number of matching entities: the
// size of the smallest included set. Excluded sets can only shrink the true
// count further.
func (j *join) SizeHint() int {
	hint := j.include[0].Size()
	for _, set := range j.include[1:] {
		if n := set.Size(); n < hint {
			hint = n
		}
	}
	return hint
}

// Contains evaluates the full membership predicate: e present in every
// included set and in none of the excluded ones. Nothing is cached.
func (j *join) Contains(e Entity) bool {
	for _, set := range j.include {
		if !set.Contains(e) {
			return false
		}
	}
	for _, set := range j.exclude {
		if set.Contains(e) {
			return false
		}
	}
	return true
}

// valid assumes e was produced by walking the leading set's dense array, so
// membership there is structural and not re-checked. Short-circuits on the
// first failing set in declaration order.
func (j *join) valid(e Entity) bool {
	for _, set := range j.include[1:] {
		if !set.Contains(e) {
			return false
		}
	}
	for _, set := range j.exclude {
		if set.Contains(e) {
			return false
		}
	}
	return true
}

// validExcept is valid with a caller-chosen driving set skipped instead of
// the leading one.
func (j *join) validExcept(e Entity, driver EntitySet) bool {
	for _, set := range j.include {
		if set != driver && !set.Contains(e) {
			return false
		}
	}
	for _, set := range j.exclude {
		if set.Contains(e) {
			return false
		}
	}
	return true
}

// smallest returns the included set with the fewest current entries, ties
// broken by declaration order.
func (j *join) smallest() EntitySet {
	driver := j.include[0]
	for _, set := range j.include[1:] {
		if set.Size() < driver.Size() {
			driver = set
		}
	}
	return driver
}

// requireIncluded panics unless driver is one of the included sets.
func (j *join) requireIncluded(driver EntitySet) {
	for _, set := range j.include {
		if set == driver {
			return
		}
	}
	panic(ForeignDriverError{})
}

// EachEntity visits each matching entity once, walking whichever included
// set is currently smallest.
func (j *join) EachEntity(fn func(Entity)) {
	driver := j.smallest()
	for _, e := range driver.Entities() {
		if j.validExcept(e, driver) {
			fn(e)
		}
	}
}

// EntitySeq returns a lazy sequence of the matching entities in leading-set
// order, restartable per call.
func (j *join) EntitySeq() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range j.lead().Entities() {
			if !j.valid(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns a lazy sequence of the matching entities in reverse
// leading-set order, the mirror of EntitySeq.
func (j *join) Backward() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		lead := j.lead()
		for pos := lead.Size() - 1; pos >= 0; pos-- {
			e := lead.At(pos)
			if !j.valid(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Entities materializes the matching entities into a fresh slice. This is
// the one traversal that copies; everything else stays lazy.
func (j *join) Entities() []Entity {
	return iter_util.Collect(j.EntitySeq())
}
