package pattern

// SpaceKind discriminates the variants of a projected Space.
type SpaceKind int

const (
	// SpaceEmpty covers nothing. Guarded arms, opaque-equality cases
	// and non-wildcard patterns over open shapes land here.
	SpaceEmpty SpaceKind = iota
	// SpaceFull covers the entire shape.
	SpaceFull
	// SpaceTag covers exactly one enumerator of an enum shape.
	SpaceTag
	// SpaceAlt covers one sum alternative, recursing into a space over
	// its payload.
	SpaceAlt
	// SpaceProduct covers the cartesian product of per-field spaces
	// over a product shape.
	SpaceProduct
)

// Space is the subset of a shape that one arm statically covers: the
// output of projection and the unit of subtraction in the reducer.
type Space struct {
	Kind   SpaceKind
	Tag    string  // SpaceTag
	Alt    string  // SpaceAlt
	Sub    *Space  // SpaceAlt payload
	Fields []Space // SpaceProduct, in field order
}

// Empty is the space covering nothing.
func Empty() Space {
	return Space{Kind: SpaceEmpty}
}

// Full is the space covering the whole shape.
func Full() Space {
	return Space{Kind: SpaceFull}
}

// IsEmpty reports whether the space covers nothing.
func (s Space) IsEmpty() bool {
	return s.Kind == SpaceEmpty
}
