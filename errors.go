package vista

import "fmt"

// MissingEntityError is the debug-build panic payload for Get on an entity
// the table or view does not contain.
type MissingEntityError struct {
	Entity Entity
}

func (e MissingEntityError) Error() string {
	return fmt.Sprintf("entity %d (version %d) is not contained", e.Entity.Index(), e.Entity.Version())
}

// OverlappingViewError is the panic payload when a view is built with the
// same set both included and excluded. Such a view can only ever be empty.
type OverlappingViewError struct{}

func (e OverlappingViewError) Error() string {
	return "view includes and excludes the same set"
}

// SchemaCapacityError is the panic payload when a schema runs out of mask
// rows. The limit is mask.MaxBits; build with the mask package's m256, m512
// or m1024 tag to raise it.
type SchemaCapacityError struct {
	Capacity int
}

func (e SchemaCapacityError) Error() string {
	return fmt.Sprintf("schema at maximum capacity (%d sets); build with a wider mask tag (m256, m512, m1024) to raise it", e.Capacity)
}

// ForeignDriverError is the panic payload when EachUsing is handed a set
// that is not one of the view's included sets.
type ForeignDriverError struct{}

func (e ForeignDriverError) Error() string {
	return "driver is not one of the view's included sets"
}
