package vista

import (
	"testing"

	"github.com/TheBitDrifter/mask"
	"github.com/stretchr/testify/require"
)

// TestSchemaCapacity pins the mask row limit: a schema holds exactly
// mask.MaxBits sets, views over the highest rows still build and filter
// correctly, and one set past the cap fails loudly with the typed error
// instead of corrupting a signature.
func TestSchemaCapacity(t *testing.T) {
	ents := makeEntities(2)
	schema := Factory.NewSchema()

	tables := make([]*Table[int], int(mask.MaxBits))
	for i := range tables {
		tables[i] = NewTable[int]()
		schema.Register(tables[i])
	}

	a := tables[len(tables)-2]
	b := tables[len(tables)-1]
	fill(a, ents, 0, 1)
	fill(b, ents, 0)
	v := NewView2(a, b, InSchema(schema))
	if got := len(v.Entities()); got != 1 {
		t.Fatalf("view over the highest rows matched %d entities, want 1", got)
	}

	// Re-registering a known set never consumes a row.
	if row := schema.Register(a); row != uint32(len(tables)-2) {
		t.Fatalf("re-registration moved the set to row %d", row)
	}

	require.PanicsWithError(t, SchemaCapacityError{Capacity: int(mask.MaxBits)}.Error(), func() {
		schema.Register(NewTable[int]())
	})
}
