package vista

// EntitySet is the read boundary every view is built over: an entity-keyed
// set with O(1) membership and a dense, indexable entity array. Table
// implements it with typed storage attached; any implementation honoring the
// contract can serve as a membership-only include or an exclude.
type EntitySet interface {
	Size() int
	Empty() bool
	Contains(e Entity) bool
	Entities() []Entity
	FindIndex(e Entity) int
	At(pos int) Entity
}
