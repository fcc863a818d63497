package vista

import "github.com/TheBitDrifter/mask"

// Schema assigns each set a stable row index, used to build the mask
// signatures views carry. Views built without InSchema share the package
// default; callers running several independent worlds can keep one schema
// per world through Factory.NewSchema.
//
// A schema holds at most mask.MaxBits rows (64 by default; the m256, m512
// and m1024 build tags of the mask package widen it). Registering a set
// beyond that panics with SchemaCapacityError rather than corrupting a
// signature.
type Schema struct {
	rows map[EntitySet]uint32
	next uint32
}

var defaultSchema = newSchema()

func newSchema() *Schema {
	return &Schema{rows: make(map[EntitySet]uint32)}
}

// Register assigns a row index to set if it doesn't have one yet and returns
// it.
func (s *Schema) Register(set EntitySet) uint32 {
	if row, ok := s.rows[set]; ok {
		return row
	}
	if int(s.next) >= int(mask.MaxBits) {
		panic(SchemaCapacityError{Capacity: int(mask.MaxBits)})
	}
	row := s.next
	s.rows[set] = row
	s.next++
	return row
}

// RowIndexFor returns set's row index, registering it on first use.
func (s *Schema) RowIndexFor(set EntitySet) uint32 {
	return s.Register(set)
}
