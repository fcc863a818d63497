package vista

import "math"

// Entity identifies an entry across component tables. The low half holds an
// index, the high half a version that is bumped every time the index is
// recycled, so a stale identifier never matches a live one. Entities are
// comparable and usable as map keys.
type Entity uint64

const (
	entityIndexBits = 32
	entityIndexMask = 1<<entityIndexBits - 1
)

// Null is the distinguished invalid identifier. It compares unequal to every
// identifier handed out by an EntryIndex.
const Null Entity = math.MaxUint64

func newEntity(index, version uint32) Entity {
	return Entity(index) | Entity(version)<<entityIndexBits
}

// Index returns the index half of the identifier.
func (e Entity) Index() uint32 {
	return uint32(e & entityIndexMask)
}

// Version returns the version half of the identifier.
func (e Entity) Version() uint32 {
	return uint32(e >> entityIndexBits)
}

// IsNull reports whether e is the null identifier.
func (e Entity) IsNull() bool {
	return e == Null
}

// EntryIndex allocates entity identifiers and recycles destroyed ones.
// Tables and views treat identifiers as opaque; the index is the only piece
// of the system that produces them.
type EntryIndex struct {
	versions []uint32
	free     []uint32
}

func newEntryIndex() *EntryIndex {
	return &EntryIndex{}
}

// New returns a live identifier, reusing the index of a previously destroyed
// entity when one is available.
func (ei *EntryIndex) New() Entity {
	if n := len(ei.free); n > 0 {
		idx := ei.free[n-1]
		ei.free = ei.free[:n-1]
		return newEntity(idx, ei.versions[idx])
	}
	idx := uint32(len(ei.versions))
	ei.versions = append(ei.versions, 0)
	return newEntity(idx, 0)
}

// Destroy retires the identifier and queues its index for reuse under a
// bumped version. Destroying a stale or foreign identifier is a no-op.
// Removing the entity's components from its tables is the caller's job.
func (ei *EntryIndex) Destroy(e Entity) {
	idx := e.Index()
	if int(idx) >= len(ei.versions) || ei.versions[idx] != e.Version() {
		return
	}
	ei.versions[idx]++
	ei.free = append(ei.free, idx)
}

// Alive reports whether e is a currently live identifier.
func (ei *EntryIndex) Alive(e Entity) bool {
	idx := e.Index()
	return int(idx) < len(ei.versions) && ei.versions[idx] == e.Version()
}
