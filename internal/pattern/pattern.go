package pattern

import "github.com/gnolang/excheck/internal/space"

// Kind discriminates the variants of a Pattern.
type Kind int

const (
	// KindWildcard is `_` or a plain binding; it matches everything.
	KindWildcard Kind = iota
	// KindLiteral matches a single enumerator of an enum shape.
	KindLiteral
	// KindStruct destructures a product, one sub-pattern per field.
	KindStruct
	// KindAlt selects one sum alternative and recurses into its payload.
	KindAlt
	// KindCase compares the scrutinee against a concrete value with an
	// equality operator. Only a defaulted/generated (structural)
	// operator lets the checker reason about what the case covers.
	KindCase
)

func (k Kind) String() string {
	switch k {
	case KindWildcard:
		return "wildcard"
	case KindLiteral:
		return "literal"
	case KindStruct:
		return "struct"
	case KindAlt:
		return "alt"
	case KindCase:
		return "case"
	}
	return "unknown"
}

// Pattern is one arm's pattern tree, already resolved by the host.
type Pattern struct {
	Kind   Kind
	Tag    string       // KindLiteral: the matched enumerator
	Alt    string       // KindAlt: the selected alternative
	Sub    *Pattern     // KindAlt: payload pattern; nil means wildcard
	Fields []Pattern    // KindStruct: sub-pattern per field, in field order
	Value  *space.Value // KindCase: the compared value

	// StructuralEq reports whether the equality operator behind a
	// KindCase pattern is the defaulted/generated field-wise one, as
	// determined by the host. A user-defined operator is opaque: the
	// checker cannot soundly claim it covers or excludes anything.
	StructuralEq bool
}

// Wildcard matches any value of any shape.
func Wildcard() Pattern {
	return Pattern{Kind: KindWildcard}
}

// Literal matches one enumerator.
func Literal(tag string) Pattern {
	return Pattern{Kind: KindLiteral, Tag: tag}
}

// Struct destructures a product field-wise.
func Struct(fields ...Pattern) Pattern {
	return Pattern{Kind: KindStruct, Fields: fields}
}

// Alt selects a sum alternative. sub may be nil for a bare selection.
func Alt(name string, sub *Pattern) Pattern {
	return Pattern{Kind: KindAlt, Alt: name, Sub: sub}
}

// Case compares against a concrete value. structural is the host's
// verdict on the equality operator in play.
func Case(v space.Value, structural bool) Pattern {
	return Pattern{Kind: KindCase, Value: &v, StructuralEq: structural}
}

// Arm is one match arm: a pattern plus a guard presence flag. A guard
// is an opaque boolean predicate that may fail at runtime, so guarded
// arms never contribute static coverage.
type Arm struct {
	Pattern Pattern
	Guarded bool
}
