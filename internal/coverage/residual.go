package coverage

import (
	"github.com/gnolang/excheck/internal/pattern"
	"github.com/gnolang/excheck/internal/space"
)

// residual is the still-uncovered subspace of a shape: the single piece
// of state threaded through arm processing. It mirrors the shape's kind
// and only ever shrinks.
//
// Enum residuals keep the uncovered tags in declaration order, sum
// residuals keep one payload residual per alternative, and product
// residuals keep a union of rectangles (one per-field residual slice
// each), the classic decomposition for cartesian subtraction.
type residual struct {
	shape *space.Shape

	tags     []string             // enum: uncovered tags
	alts     map[string]*residual // sum: uncovered payload per alternative
	implicit bool                 // sum: implicit extra state not yet absorbed
	cells    [][]*residual        // product: union of uncovered rectangles
	open     bool                 // open: still uncovered
}

func newResidual(sh *space.Shape) *residual {
	r := &residual{shape: sh}
	switch sh.Kind {
	case space.KindEnum:
		r.tags = append([]string(nil), sh.Tags...)
	case space.KindSum:
		r.alts = make(map[string]*residual, len(sh.Alts))
		for _, a := range sh.Alts {
			r.alts[a.Name] = newResidual(a.Payload)
		}
		r.implicit = sh.Implicit
	case space.KindProduct:
		// A field with no values at all (an uninstantiable enum, say)
		// makes the whole product uninhabited: the cell would stand for
		// zero values, so it is never added.
		cell := make([]*residual, len(sh.Fields))
		inhabited := true
		for i, f := range sh.Fields {
			cell[i] = newResidual(f.Shape)
			if cell[i].empty() {
				inhabited = false
			}
		}
		if inhabited {
			r.cells = [][]*residual{cell}
		}
	case space.KindOpen:
		r.open = true
	}
	return r
}

func emptyResidual(sh *space.Shape) *residual {
	r := &residual{shape: sh}
	if sh.Kind == space.KindSum {
		r.alts = make(map[string]*residual, len(sh.Alts))
		for _, a := range sh.Alts {
			r.alts[a.Name] = emptyResidual(a.Payload)
		}
	}
	return r
}

// empty reports whether nothing required remains uncovered. The
// implicit extra state of a sum never counts: it is excluded from the
// static value space by design.
func (r *residual) empty() bool {
	switch r.shape.Kind {
	case space.KindEnum:
		return len(r.tags) == 0
	case space.KindSum:
		for _, a := range r.shape.Alts {
			if !r.alts[a.Name].empty() {
				return false
			}
		}
		return true
	case space.KindProduct:
		return len(r.cells) == 0
	case space.KindOpen:
		return !r.open
	}
	return true
}

func (r *residual) clone() *residual {
	c := &residual{shape: r.shape, implicit: r.implicit, open: r.open}
	if r.tags != nil {
		c.tags = append([]string(nil), r.tags...)
	}
	if r.alts != nil {
		c.alts = make(map[string]*residual, len(r.alts))
		for name, a := range r.alts {
			c.alts[name] = a.clone()
		}
	}
	if r.cells != nil {
		c.cells = make([][]*residual, len(r.cells))
		for i, cell := range r.cells {
			cc := make([]*residual, len(cell))
			for j, f := range cell {
				cc[j] = f.clone()
			}
			c.cells[i] = cc
		}
	}
	return c
}

// subtract removes the covered space s from the residual, in place.
// It reports whether anything actually shrank, which is what redundancy
// detection keys on.
func (r *residual) subtract(s pattern.Space) bool {
	switch s.Kind {
	case pattern.SpaceEmpty:
		return false
	case pattern.SpaceFull:
		return r.clearAll()
	}

	switch r.shape.Kind {
	case space.KindEnum:
		if s.Kind != pattern.SpaceTag {
			return false
		}
		for i, t := range r.tags {
			if t == s.Tag {
				r.tags = append(r.tags[:i], r.tags[i+1:]...)
				return true
			}
		}
		return false

	case space.KindSum:
		if s.Kind != pattern.SpaceAlt {
			return false
		}
		alt, ok := r.alts[s.Alt]
		if !ok {
			return false
		}
		return alt.subtract(*s.Sub)

	case space.KindProduct:
		if s.Kind != pattern.SpaceProduct {
			return false
		}
		return r.subtractProduct(s)

	case space.KindOpen:
		// Only a full space closes an open shape; handled above.
		return false
	}
	return false
}

// clearAll empties the residual entirely, absorbing any implicit sum
// state along the way.
func (r *residual) clearAll() bool {
	switch r.shape.Kind {
	case space.KindEnum:
		changed := len(r.tags) > 0
		r.tags = nil
		return changed
	case space.KindSum:
		changed := r.implicit
		r.implicit = false
		for _, a := range r.alts {
			if a.clearAll() {
				changed = true
			}
		}
		return changed
	case space.KindProduct:
		changed := len(r.cells) > 0
		r.cells = nil
		return changed
	case space.KindOpen:
		changed := r.open
		r.open = false
		return changed
	}
	return false
}

// subtractProduct removes a rectangle from the union of uncovered
// rectangles. Each overlapping cell is split into at most one remainder
// per field: the remainder in field i keeps cell∩s in the fields before
// i, cell−s in field i, and the untouched cell after i.
func (r *residual) subtractProduct(s pattern.Space) bool {
	var out [][]*residual
	changed := false
	for _, cell := range r.cells {
		if !overlaps(cell, s.Fields) {
			out = append(out, cell)
			continue
		}
		changed = true
		for i := range cell {
			diff := cell[i].clone()
			diff.subtract(s.Fields[i])
			if diff.empty() {
				continue
			}
			rest := make([]*residual, len(cell))
			for j := 0; j < i; j++ {
				rest[j] = intersect(cell[j], s.Fields[j])
			}
			rest[i] = diff
			for j := i + 1; j < len(cell); j++ {
				rest[j] = cell[j].clone()
			}
			out = append(out, rest)
		}
	}
	r.cells = out
	return changed
}

func overlaps(cell []*residual, fields []pattern.Space) bool {
	for i := range cell {
		if intersect(cell[i], fields[i]).empty() {
			return false
		}
	}
	return true
}

// intersect returns the part of the residual that the space also
// covers, as a fresh residual.
func intersect(r *residual, s pattern.Space) *residual {
	switch s.Kind {
	case pattern.SpaceEmpty:
		return emptyResidual(r.shape)
	case pattern.SpaceFull:
		return r.clone()
	}

	switch r.shape.Kind {
	case space.KindEnum:
		out := emptyResidual(r.shape)
		for _, t := range r.tags {
			if s.Kind == pattern.SpaceTag && t == s.Tag {
				out.tags = []string{t}
			}
		}
		return out

	case space.KindSum:
		out := emptyResidual(r.shape)
		if s.Kind == pattern.SpaceAlt {
			if alt, ok := r.alts[s.Alt]; ok {
				out.alts[s.Alt] = intersect(alt, *s.Sub)
			}
		}
		return out

	case space.KindProduct:
		out := emptyResidual(r.shape)
		if s.Kind != pattern.SpaceProduct {
			return out
		}
		for _, cell := range r.cells {
			meet := make([]*residual, len(cell))
			vacuous := false
			for i := range cell {
				meet[i] = intersect(cell[i], s.Fields[i])
				if meet[i].empty() {
					vacuous = true
					break
				}
			}
			if !vacuous {
				out.cells = append(out.cells, meet)
			}
		}
		return out

	case space.KindOpen:
		// A non-full space never pins down part of an open shape.
		return emptyResidual(r.shape)
	}
	return emptyResidual(r.shape)
}

// witness synthesizes one minimal uncovered value: the first uncovered
// tag or alternative, and the first uncovered field combination.
// Callers must ensure the residual is non-empty.
func (r *residual) witness() space.Value {
	switch r.shape.Kind {
	case space.KindEnum:
		return space.TagValue(r.tags[0])
	case space.KindSum:
		for _, a := range r.shape.Alts {
			if alt := r.alts[a.Name]; !alt.empty() {
				return space.AltValue(a.Name, alt.witness())
			}
		}
	case space.KindProduct:
		cell := r.cells[0]
		fields := make([]space.Value, len(cell))
		for i, f := range cell {
			fields[i] = f.witness()
		}
		return space.ProductValue(fields...)
	case space.KindOpen:
		return space.OpenValue(r.shape.Name)
	}
	return space.Value{}
}
