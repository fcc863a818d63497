package vista

// ViewOption configures view construction.
type ViewOption func(*viewOptions)

type viewOptions struct {
	with    []EntitySet
	without []EntitySet
	schema  *Schema
}

func newViewOptions(opts []ViewOption) viewOptions {
	o := viewOptions{schema: defaultSchema}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// With adds membership-only included sets: entities must be present in each
// of them, they count toward SizeHint and driver selection, but no component
// reference is ever produced for them. This is how tag tables join a view.
func With(sets ...EntitySet) ViewOption {
	return func(o *viewOptions) {
		o.with = append(o.with, sets...)
	}
}

// Without adds excluded sets: entities present in any of them are filtered
// out of the view.
func Without(sets ...EntitySet) ViewOption {
	return func(o *viewOptions) {
		o.without = append(o.without, sets...)
	}
}

// InSchema registers the view's sets against the given schema instead of the
// package default. Passing nil keeps the default.
func InSchema(s *Schema) ViewOption {
	return func(o *viewOptions) {
		if s != nil {
			o.schema = s
		}
	}
}
