package space

// Kind discriminates the variants of a Shape.
type Kind int

const (
	// KindEnum is a finite, statically known set of distinguished tags.
	// Booleans and declared enumerators live here. An out-of-range
	// underlying value is not a member of this space.
	KindEnum Kind = iota
	// KindProduct is an ordered sequence of named fields; its space is
	// the cartesian product of the field spaces.
	KindProduct
	// KindSum is a finite set of named alternatives, each carrying a
	// payload shape.
	KindSum
	// KindOpen is an unbounded or unenumerable space. Only a wildcard
	// arm can ever cover it.
	KindOpen
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindProduct:
		return "product"
	case KindSum:
		return "sum"
	case KindOpen:
		return "open"
	}
	return "unknown"
}

// Field is one component of a Product shape.
type Field struct {
	Name  string
	Shape *Shape
}

// Alt is one alternative of a Sum shape. A nil payload is normalized
// to the unit product by the Sum constructor.
type Alt struct {
	Name    string
	Payload *Shape
}

// Shape describes the value space of a scrutinee type, as supplied by
// the host's type system. A Shape is immutable once constructed; the
// checker never mutates it.
type Shape struct {
	Kind   Kind
	Name   string
	Tags   []string // KindEnum only
	Fields []Field  // KindProduct only
	Alts   []Alt    // KindSum only

	// Implicit marks a Sum that has an extra runtime state (e.g. a
	// valueless variant) excluded from the static value space. It is
	// never required for exhaustiveness and only a wildcard arm
	// absorbs it.
	Implicit bool
}

// Bool is the two-tag enum shape shared by every boolean scrutinee.
func Bool() *Shape {
	return Enum("bool", "false", "true")
}

// Enum builds a closed-enumerable shape from its declared tags,
// in declaration order.
func Enum(name string, tags ...string) *Shape {
	return &Shape{Kind: KindEnum, Name: name, Tags: tags}
}

// Product builds an aggregate shape from an ordered field list.
func Product(name string, fields ...Field) *Shape {
	return &Shape{Kind: KindProduct, Name: name, Fields: fields}
}

// Unit is the product with no fields; it has exactly one value.
func Unit() *Shape {
	return Product("unit")
}

// Sum builds a tagged-union shape. Alternatives without a payload get
// the unit product, so selecting the alternative alone covers it.
func Sum(name string, alts ...Alt) *Shape {
	for i := range alts {
		if alts[i].Payload == nil {
			alts[i].Payload = Unit()
		}
	}
	return &Shape{Kind: KindSum, Name: name, Alts: alts}
}

// Open builds the shape of an unenumerable space: open class
// hierarchies, custom-extractor types, unbounded primitives.
func Open(name string) *Shape {
	return &Shape{Kind: KindOpen, Name: name}
}

// HasTag reports whether tag is a declared enumerator of an enum shape.
func (s *Shape) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AltNamed returns the alternative with the given name, if any.
func (s *Shape) AltNamed(name string) (Alt, bool) {
	for _, a := range s.Alts {
		if a.Name == name {
			return a, true
		}
	}
	return Alt{}, false
}
