package vista

type factory struct{}

// Factory exposes constructors for the non-generic pieces of the package.
// The generic constructors (NewTable, NewView, NewView1..NewView4) are
// top-level functions since methods cannot introduce type parameters.
var Factory factory

func (f factory) NewSchema() *Schema {
	return newSchema()
}

func (f factory) NewEntryIndex() *EntryIndex {
	return newEntryIndex()
}
