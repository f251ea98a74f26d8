package pattern

import (
	"fmt"

	"github.com/gnolang/excheck/internal/space"
)

// MalformedError reports a pattern that does not fit the shape it is
// matched against: an unknown enumerator, alternative or field arity.
// It is a contract violation by the host and aborts analysis of the
// offending match expression only.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return "malformed pattern: " + e.Reason
}

func malformedf(format string, args ...any) error {
	return &MalformedError{Reason: fmt.Sprintf(format, args...)}
}

// Project maps one arm to the subspace of sh it statically covers.
// It is a pure function of (arm, shape). A guarded arm projects to the
// empty space regardless of its pattern: guard satisfiability is
// undecidable, so a guard may always fail.
func Project(arm Arm, sh *space.Shape) (Space, error) {
	if arm.Guarded {
		return Empty(), nil
	}
	return project(arm.Pattern, sh)
}

func project(p Pattern, sh *space.Shape) (Space, error) {
	if p.Kind == KindWildcard {
		return Full(), nil
	}

	// Anything but a wildcard contributes nothing toward closing an
	// open shape.
	if sh.Kind == space.KindOpen {
		return Empty(), nil
	}

	switch p.Kind {
	case KindLiteral:
		if sh.Kind != space.KindEnum {
			return Empty(), malformedf("literal %q against %s shape %s", p.Tag, sh.Kind, sh.Name)
		}
		if !sh.HasTag(p.Tag) {
			return Empty(), malformedf("%q is not an enumerator of %s", p.Tag, sh.Name)
		}
		return Space{Kind: SpaceTag, Tag: p.Tag}, nil

	case KindStruct:
		if sh.Kind != space.KindProduct {
			return Empty(), malformedf("destructuring pattern against %s shape %s", sh.Kind, sh.Name)
		}
		if len(p.Fields) != len(sh.Fields) {
			return Empty(), malformedf("%s has %d fields, pattern has %d", sh.Name, len(sh.Fields), len(p.Fields))
		}
		fields := make([]Space, len(p.Fields))
		for i := range p.Fields {
			sub, err := project(p.Fields[i], sh.Fields[i].Shape)
			if err != nil {
				return Empty(), err
			}
			// A product with one uncoverable component covers no cell.
			if sub.IsEmpty() {
				return Empty(), nil
			}
			fields[i] = sub
		}
		return Space{Kind: SpaceProduct, Fields: fields}, nil

	case KindAlt:
		if sh.Kind != space.KindSum {
			return Empty(), malformedf("alternative pattern %q against %s shape %s", p.Alt, sh.Kind, sh.Name)
		}
		alt, ok := sh.AltNamed(p.Alt)
		if !ok {
			return Empty(), malformedf("%q is not an alternative of %s", p.Alt, sh.Name)
		}
		subPat := Wildcard()
		if p.Sub != nil {
			subPat = *p.Sub
		}
		sub, err := project(subPat, alt.Payload)
		if err != nil {
			return Empty(), err
		}
		if sub.IsEmpty() {
			return Empty(), nil
		}
		return Space{Kind: SpaceAlt, Alt: p.Alt, Sub: &sub}, nil

	case KindCase:
		if p.Value == nil {
			return Empty(), malformedf("case pattern without a value")
		}
		if !p.StructuralEq {
			// User-defined equality need not correspond to value
			// identity; the checker treats it as an opaque predicate.
			return Empty(), nil
		}
		return valueSpace(*p.Value, sh)
	}

	return Empty(), malformedf("unknown pattern kind %d", p.Kind)
}

// valueSpace lowers a structurally-compared value to the singleton
// space it covers: one tag over an enum, a product of singletons over
// a product, a tagged singleton over a sum.
func valueSpace(v space.Value, sh *space.Shape) (Space, error) {
	switch sh.Kind {
	case space.KindEnum:
		if !sh.HasTag(v.Tag) {
			return Empty(), malformedf("%q is not an enumerator of %s", v.Tag, sh.Name)
		}
		return Space{Kind: SpaceTag, Tag: v.Tag}, nil

	case space.KindProduct:
		if len(v.Fields) != len(sh.Fields) {
			return Empty(), malformedf("%s has %d fields, case value has %d", sh.Name, len(sh.Fields), len(v.Fields))
		}
		fields := make([]Space, len(v.Fields))
		for i := range v.Fields {
			sub, err := valueSpace(v.Fields[i], sh.Fields[i].Shape)
			if err != nil {
				return Empty(), err
			}
			if sub.IsEmpty() {
				return Empty(), nil
			}
			fields[i] = sub
		}
		return Space{Kind: SpaceProduct, Fields: fields}, nil

	case space.KindSum:
		alt, ok := sh.AltNamed(v.Alt)
		if !ok {
			return Empty(), malformedf("%q is not an alternative of %s", v.Alt, sh.Name)
		}
		payload := space.ProductValue()
		if v.Payload != nil {
			payload = *v.Payload
		}
		sub, err := valueSpace(payload, alt.Payload)
		if err != nil {
			return Empty(), err
		}
		if sub.IsEmpty() {
			return Empty(), nil
		}
		return Space{Kind: SpaceAlt, Alt: v.Alt, Sub: &sub}, nil

	case space.KindOpen:
		// A single value never closes anything within an open space.
		return Empty(), nil
	}

	return Empty(), malformedf("unknown shape kind %d", sh.Kind)
}
