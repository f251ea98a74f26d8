// Package gotypes derives value-space shapes from Go's own type
// system, serving as a reference host for the coverage engine: booleans
// and const-enum types become closed enumerables, structs become
// products, marker-method interface sums become sums, and everything
// else that cannot be proven closed becomes open.
package gotypes

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/gnolang/excheck/internal/space"
)

// LoadShape loads the package matching pattern and derives the shape
// of the named type.
func LoadShape(pattern, typeName string) (*space.Shape, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
		obj := pkg.Types.Scope().Lookup(typeName)
		if obj == nil {
			continue
		}
		tn, ok := obj.(*types.TypeName)
		if !ok {
			return nil, fmt.Errorf("%s is not a type in %s", typeName, pkg.PkgPath)
		}
		return Derive(tn.Type(), pkg.Types), nil
	}
	return nil, fmt.Errorf("type %s not found in %s", typeName, pattern)
}

// Derive builds the value-space shape of a Go type. pkg is the package
// whose scope is consulted for enum constants and sum members; it may
// be nil, in which case every named non-struct type is open.
//
// The bias is deliberate: whenever closedness cannot be proven from
// what is visible here, the shape is open. Demanding more evidence than
// necessary is safe; demanding less is not.
func Derive(t types.Type, pkg *types.Package) *space.Shape {
	d := &deriver{pkg: pkg, seen: make(map[types.Type]bool)}
	return d.derive(t)
}

type deriver struct {
	pkg  *types.Package
	seen map[types.Type]bool
}

func (d *deriver) derive(t types.Type) *space.Shape {
	if basic, ok := t.(*types.Basic); ok {
		if basic.Kind() == types.Bool || basic.Kind() == types.UntypedBool {
			return space.Bool()
		}
		// Unbounded primitives: no finite set of literals covers them.
		return space.Open(basic.Name())
	}

	// Break recursive types: a cycle can never be finitely enumerated.
	if d.seen[t] {
		return space.Open(typeName(t))
	}
	d.seen[t] = true
	defer delete(d.seen, t)

	switch t := t.(type) {
	case *types.Named:
		return d.deriveNamed(t)
	case *types.Struct:
		return d.deriveStruct("", t)
	case *types.Interface:
		return space.Open(typeName(t))
	case *types.Pointer:
		// A pointer adds a nil state the static model does not
		// enumerate.
		return space.Open(typeName(t))
	}
	return space.Open(typeName(t))
}

func (d *deriver) deriveNamed(named *types.Named) *space.Shape {
	name := named.Obj().Name()

	if tags := d.enumTags(named); len(tags) > 0 {
		return space.Enum(name, tags...)
	}

	switch under := named.Underlying().(type) {
	case *types.Basic:
		if under.Kind() == types.Bool {
			return space.Bool()
		}
		return space.Open(name)
	case *types.Struct:
		return d.deriveStruct(name, under)
	case *types.Interface:
		return d.deriveInterface(name, under)
	}
	return space.Open(name)
}

func (d *deriver) deriveStruct(name string, s *types.Struct) *space.Shape {
	fields := make([]space.Field, 0, s.NumFields())
	for i := 0; i < s.NumFields(); i++ {
		f := s.Field(i)
		fields = append(fields, space.Field{Name: f.Name(), Shape: d.derive(f.Type())})
	}
	return space.Product(name, fields...)
}

// deriveInterface models an interface as a sum only when it follows
// the closed-hierarchy convention: at least one unexported method, so
// no package elsewhere can implement it, and every member is a named
// type in the defining package. Anything else stays open.
func (d *deriver) deriveInterface(name string, iface *types.Interface) *space.Shape {
	if d.pkg == nil || !hasUnexportedMethod(iface, d.pkg) {
		return space.Open(name)
	}

	var alts []space.Alt
	scope := d.pkg.Scope()
	for _, objName := range scope.Names() {
		tn, ok := scope.Lookup(objName).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		member := tn.Type()
		if types.IsInterface(member) {
			continue
		}
		if !types.Implements(member, iface) && !types.Implements(types.NewPointer(member), iface) {
			continue
		}
		alts = append(alts, space.Alt{Name: tn.Name(), Payload: d.derive(member.Underlying())})
	}
	if len(alts) == 0 {
		return space.Open(name)
	}
	sh := space.Sum(name, alts...)
	// The nil interface value is a real runtime possibility excluded
	// from the static space.
	sh.Implicit = true
	return sh
}

// enumTags collects the constants declared with this named type in the
// package scope. Scope names come back sorted, which fixes the tag
// order the checker reports.
func (d *deriver) enumTags(named *types.Named) []string {
	if d.pkg == nil {
		return nil
	}
	var tags []string
	scope := d.pkg.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}
		if types.Identical(c.Type(), named) {
			tags = append(tags, c.Name())
		}
	}
	return tags
}

func hasUnexportedMethod(iface *types.Interface, pkg *types.Package) bool {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if !m.Exported() && m.Pkg() == pkg {
			return true
		}
	}
	return false
}

func typeName(t types.Type) string {
	if named, ok := t.(*types.Named); ok {
		return named.Obj().Name()
	}
	return t.String()
}
