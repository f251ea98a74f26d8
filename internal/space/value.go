package space

import (
	"fmt"
	"strings"
)

// Value is one concrete value drawn from a Shape. The coverage reducer
// synthesizes a Value as the counterexample for a missing case.
type Value struct {
	Kind    Kind
	Name    string  // type name, used when rendering open values
	Tag     string  // KindEnum: the enumerator
	Alt     string  // KindSum: the selected alternative
	Payload *Value  // KindSum: the alternative's payload value
	Fields  []Value // KindProduct: one value per field, in field order
}

// TagValue is the enum value carrying the given tag.
func TagValue(tag string) Value {
	return Value{Kind: KindEnum, Tag: tag}
}

// ProductValue aggregates per-field values into a product value.
func ProductValue(fields ...Value) Value {
	return Value{Kind: KindProduct, Fields: fields}
}

// AltValue selects one sum alternative with the given payload.
func AltValue(alt string, payload Value) Value {
	return Value{Kind: KindSum, Alt: alt, Payload: &payload}
}

// OpenValue stands for an arbitrary member of an open space that no
// finite pattern can name.
func OpenValue(name string) Value {
	return Value{Kind: KindOpen, Name: name}
}

// String renders the value the way a diagnostic quotes it:
// enums as their tag, products as `[a, b]`, sum values as `Alt(payload)`
// (or just `Alt` for unit payloads), open values as `<Name>`.
func (v Value) String() string {
	switch v.Kind {
	case KindEnum:
		return v.Tag
	case KindProduct:
		parts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			parts[i] = f.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindSum:
		if v.Payload == nil || isUnit(*v.Payload) {
			return v.Alt
		}
		return fmt.Sprintf("%s(%s)", v.Alt, v.Payload)
	case KindOpen:
		if v.Name == "" {
			return "<_>"
		}
		return "<" + v.Name + ">"
	}
	return "?"
}

func isUnit(v Value) bool {
	return v.Kind == KindProduct && len(v.Fields) == 0
}
