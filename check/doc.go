package check

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/excheck/internal/pattern"
	"github.com/gnolang/excheck/internal/space"
)

// Document is one match expression serialized at the host boundary:
// the scrutinee's static type description plus the ordered arm list.
// A .yaml file may hold several documents separated by `---`.
type Document struct {
	Name      string   `yaml:"name" validate:"required"`
	Scrutinee ShapeDoc `yaml:"scrutinee"`
	Arms      []ArmDoc `yaml:"arms" validate:"min=1,dive"`
}

// ShapeDoc describes a type's value space. `bool` is shorthand for the
// two-tag enum.
type ShapeDoc struct {
	Kind     string     `yaml:"kind" validate:"required,oneof=bool enum product sum open"`
	Name     string     `yaml:"name"`
	Tags     []string   `yaml:"tags"`
	Fields   []FieldDoc `yaml:"fields" validate:"dive"`
	Alts     []AltDoc   `yaml:"alts" validate:"dive"`
	Implicit bool       `yaml:"implicit"`
}

// FieldDoc is one product field.
type FieldDoc struct {
	Name  string   `yaml:"name" validate:"required"`
	Shape ShapeDoc `yaml:"shape"`
}

// AltDoc is one sum alternative. A nil payload means the alternative
// carries no data.
type AltDoc struct {
	Name    string    `yaml:"name" validate:"required"`
	Payload *ShapeDoc `yaml:"payload"`
}

// ArmDoc is one match arm.
type ArmDoc struct {
	Pattern PatternDoc `yaml:"pattern"`
	Guarded bool       `yaml:"guarded"`
}

// PatternDoc mirrors the host's resolved pattern tree.
type PatternDoc struct {
	Kind       string       `yaml:"kind" validate:"required,oneof=wildcard literal struct alt case"`
	Tag        string       `yaml:"tag"`
	Alt        string       `yaml:"alt"`
	Sub        *PatternDoc  `yaml:"sub"`
	Fields     []PatternDoc `yaml:"fields" validate:"dive"`
	Value      *ValueDoc    `yaml:"value"`
	Structural bool         `yaml:"structural_eq"`
}

// ValueDoc is the concrete value compared by a case pattern.
type ValueDoc struct {
	Tag     string     `yaml:"tag"`
	Alt     string     `yaml:"alt"`
	Payload *ValueDoc  `yaml:"payload"`
	Fields  []ValueDoc `yaml:"fields"`
}

var validate = validator.New()

// LoadDocuments reads all match documents from a YAML file and
// validates their structure. Shape-level problems (an unknown pattern
// kind for a shape, a missing enumerator) surface later as
// malformed-pattern issues; this only checks the serialization.
func LoadDocuments(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	var docs []Document
	decoder := yaml.NewDecoder(f)
	for {
		var doc Document
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
		if err := validate.Struct(doc); err != nil {
			return nil, fmt.Errorf("invalid match document %q in %s: %w", doc.Name, path, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Shape converts the serialized description into the engine's
// immutable value-space model.
func (d ShapeDoc) Shape() (*space.Shape, error) {
	switch d.Kind {
	case "bool":
		return space.Bool(), nil
	case "enum":
		if len(d.Tags) == 0 {
			return nil, fmt.Errorf("enum %q declares no tags", d.Name)
		}
		return space.Enum(d.Name, d.Tags...), nil
	case "product":
		fields := make([]space.Field, len(d.Fields))
		for i, f := range d.Fields {
			sub, err := f.Shape.Shape()
			if err != nil {
				return nil, err
			}
			fields[i] = space.Field{Name: f.Name, Shape: sub}
		}
		return space.Product(d.Name, fields...), nil
	case "sum":
		if len(d.Alts) == 0 {
			return nil, fmt.Errorf("sum %q declares no alternatives", d.Name)
		}
		alts := make([]space.Alt, len(d.Alts))
		for i, a := range d.Alts {
			alts[i] = space.Alt{Name: a.Name}
			if a.Payload != nil {
				sub, err := a.Payload.Shape()
				if err != nil {
					return nil, err
				}
				alts[i].Payload = sub
			}
		}
		sh := space.Sum(d.Name, alts...)
		sh.Implicit = d.Implicit
		return sh, nil
	case "open":
		return space.Open(d.Name), nil
	}
	return nil, fmt.Errorf("unknown shape kind %q", d.Kind)
}

// Arm converts one serialized arm into the engine's representation.
func (d ArmDoc) Arm() pattern.Arm {
	return pattern.Arm{Pattern: d.Pattern.Pattern(), Guarded: d.Guarded}
}

// Pattern converts the serialized pattern tree.
func (d PatternDoc) Pattern() pattern.Pattern {
	switch d.Kind {
	case "literal":
		return pattern.Literal(d.Tag)
	case "struct":
		fields := make([]pattern.Pattern, len(d.Fields))
		for i, f := range d.Fields {
			fields[i] = f.Pattern()
		}
		return pattern.Struct(fields...)
	case "alt":
		var sub *pattern.Pattern
		if d.Sub != nil {
			p := d.Sub.Pattern()
			sub = &p
		}
		return pattern.Alt(d.Alt, sub)
	case "case":
		var v space.Value
		if d.Value != nil {
			v = d.Value.Value()
		}
		return pattern.Case(v, d.Structural)
	default:
		return pattern.Wildcard()
	}
}

// Value converts the serialized case value. The kind is inferred from
// which fields are populated; shape agreement is checked by projection.
func (d ValueDoc) Value() space.Value {
	switch {
	case d.Alt != "":
		payload := space.ProductValue()
		if d.Payload != nil {
			payload = d.Payload.Value()
		}
		return space.AltValue(d.Alt, payload)
	case d.Fields != nil:
		fields := make([]space.Value, len(d.Fields))
		for i, f := range d.Fields {
			fields[i] = f.Value()
		}
		return space.ProductValue(fields...)
	default:
		return space.TagValue(d.Tag)
	}
}
