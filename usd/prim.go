// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package usd

import (
	"fmt"

	"github.com/PaulDoessel/usd-arnold/sdf"
)

// Specifier says whether a prim is defined or only overridden.
type Specifier uint8

const (
	SpecifierDef Specifier = iota
	SpecifierOver
)

// String returns the usda keyword.
func (s Specifier) String() string {
	if s == SpecifierOver {
		return "over"
	}
	return "def"
}

// Variability of an attribute.
type Variability uint8

const (
	Varying Variability = iota
	Uniform
)

// Attribute is a typed property of a prim. It may hold a value,
// connections, both, or neither (a bare declaration).
type Attribute struct {
	name        string
	typeName    sdf.ValueTypeName
	variability Variability
	value       sdf.Value
	connections []sdf.Path
}

// Name returns the attribute's namespaced name.
func (a *Attribute) Name() string { return a.name }

// TypeName returns the attribute's value type.
func (a *Attribute) TypeName() sdf.ValueTypeName { return a.typeName }

// Variability returns whether the attribute is uniform.
func (a *Attribute) Variability() Variability { return a.variability }

// SetVariability marks the attribute uniform or varying.
func (a *Attribute) SetVariability(v Variability) { a.variability = v }

// Get returns the authored value. The bool is false when nothing is
// authored.
func (a *Attribute) Get() (sdf.Value, bool) {
	return a.value, a.value != nil
}

// HasValue reports whether a value is authored.
func (a *Attribute) HasValue() bool { return a.value != nil }

// Set authors a value after checking it against the attribute type.
func (a *Attribute) Set(v sdf.Value) error {
	if err := sdf.CheckValue(a.typeName, v); err != nil {
		return fmt.Errorf("usd: attribute %s: %w", a.name, err)
	}
	a.value = v
	return nil
}

// Clear removes the authored value.
func (a *Attribute) Clear() { a.value = nil }

// Connections returns the connection source paths.
func (a *Attribute) Connections() []sdf.Path { return a.connections }

// HasConnections reports whether the attribute has connection sources.
func (a *Attribute) HasConnections() bool { return len(a.connections) > 0 }

// AddConnection adds a source property path. Adding the same source twice
// has no effect.
func (a *Attribute) AddConnection(source sdf.Path) error {
	if !source.IsPropertyPath() {
		return fmt.Errorf("usd: attribute %s: connection source %q is not a property path", a.name, source)
	}
	for _, c := range a.connections {
		if c == source {
			return nil
		}
	}
	a.connections = append(a.connections, source)
	return nil
}

// Relationship is a named list of target paths.
type Relationship struct {
	name    string
	targets []sdf.Path
}

// Name returns the relationship's name.
func (r *Relationship) Name() string { return r.name }

// Targets returns the relationship targets.
func (r *Relationship) Targets() []sdf.Path { return r.targets }

// AddTarget appends a target unless it is already present.
func (r *Relationship) AddTarget(target sdf.Path) {
	for _, t := range r.targets {
		if t == target {
			return
		}
	}
	r.targets = append(r.targets, target)
}

// Prim is a node of the stage hierarchy.
type Prim struct {
	path      sdf.Path
	typeName  string
	specifier Specifier

	attrs     []*Attribute
	attrIndex map[string]*Attribute
	rels      []*Relationship
	children  []*Prim
	childIdx  map[string]*Prim
}

func newPrim(path sdf.Path, typeName string, spec Specifier) *Prim {
	return &Prim{
		path:      path,
		typeName:  typeName,
		specifier: spec,
		attrIndex: make(map[string]*Attribute),
		childIdx:  make(map[string]*Prim),
	}
}

// Path returns the prim path.
func (p *Prim) Path() sdf.Path { return p.path }

// Name returns the last path element.
func (p *Prim) Name() string { return p.path.Name() }

// TypeName returns the schema type, or "" for typeless prims.
func (p *Prim) TypeName() string { return p.typeName }

// Specifier returns def or over.
func (p *Prim) Specifier() Specifier { return p.specifier }

// Children returns child prims in creation order.
func (p *Prim) Children() []*Prim { return p.children }

// Child finds a direct child by name.
func (p *Prim) Child(name string) (*Prim, bool) {
	c, ok := p.childIdx[name]
	return c, ok
}

// Attribute finds an attribute by name. This is the read side used by
// schema views: the attribute is either present or absent.
func (p *Prim) Attribute(name string) (*Attribute, bool) {
	a, ok := p.attrIndex[name]
	return a, ok
}

// Attributes returns the attributes in creation order.
func (p *Prim) Attributes() []*Attribute { return p.attrs }

// CreateAttribute declares an attribute. Declaring an existing attribute
// with the same type returns it; a different type is an error.
func (p *Prim) CreateAttribute(name string, typeName sdf.ValueTypeName) (*Attribute, error) {
	if !sdf.IsValidNamespacedName(name) {
		return nil, fmt.Errorf("usd: %s: invalid attribute name %q", p.path, name)
	}
	if typeName == sdf.TypeInvalid {
		return nil, fmt.Errorf("usd: %s.%s: invalid type", p.path, name)
	}
	if a, ok := p.attrIndex[name]; ok {
		if a.typeName != typeName {
			return nil, fmt.Errorf("usd: %s.%s: redeclared as %s, was %s", p.path, name, typeName, a.typeName)
		}
		return a, nil
	}
	a := &Attribute{name: name, typeName: typeName}
	p.attrs = append(p.attrs, a)
	p.attrIndex[name] = a
	return a, nil
}

// Relationship finds a relationship by name.
func (p *Prim) Relationship(name string) (*Relationship, bool) {
	for _, r := range p.rels {
		if r.name == name {
			return r, true
		}
	}
	return nil, false
}

// Relationships returns the relationships in creation order.
func (p *Prim) Relationships() []*Relationship { return p.rels }

// CreateRelationship returns the named relationship, creating it if needed.
func (p *Prim) CreateRelationship(name string) (*Relationship, error) {
	if !sdf.IsValidNamespacedName(name) {
		return nil, fmt.Errorf("usd: %s: invalid relationship name %q", p.path, name)
	}
	if r, ok := p.Relationship(name); ok {
		return r, nil
	}
	r := &Relationship{name: name}
	p.rels = append(p.rels, r)
	return r, nil
}

func (p *Prim) addChild(c *Prim) {
	p.children = append(p.children, c)
	p.childIdx[c.Name()] = c
}
