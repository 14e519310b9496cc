// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

// Package usd provides a minimal in-memory scene description stage.
//
// The stage is both the sink the exporter writes shading networks into
// and the source that schema views read typed attributes from. It keeps
// prims, attributes, connections and relationships in authoring order
// so that the usda output is deterministic.
package usd

import (
	"fmt"
	"strings"

	"github.com/PaulDoessel/usd-arnold/sdf"
)

// Stage is an in-memory prim hierarchy.
type Stage struct {
	root  *Prim
	prims map[sdf.Path]*Prim
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	root := newPrim(sdf.AbsoluteRoot, "", SpecifierDef)
	return &Stage{
		root:  root,
		prims: map[sdf.Path]*Prim{sdf.AbsoluteRoot: root},
	}
}

// PseudoRoot returns the prim at "/".
func (s *Stage) PseudoRoot() *Prim { return s.root }

// RootPrims returns the children of the pseudo-root.
func (s *Stage) RootPrims() []*Prim { return s.root.children }

// Prim finds a prim by path.
func (s *Stage) Prim(path sdf.Path) (*Prim, bool) {
	p, ok := s.prims[path]
	return p, ok
}

// DefinePrim defines the prim at path with the given type, defining any
// missing ancestors as typeless prims. Redefining an existing prim
// updates its specifier and, when typeName is not empty, its type.
func (s *Stage) DefinePrim(path sdf.Path, typeName string) (*Prim, error) {
	p, err := s.ensure(path, SpecifierDef)
	if err != nil {
		return nil, err
	}
	p.specifier = SpecifierDef
	if typeName != "" {
		p.typeName = typeName
	}
	return p, nil
}

// OverridePrim returns the prim at path, creating it and any missing
// ancestors as overrides.
func (s *Stage) OverridePrim(path sdf.Path) (*Prim, error) {
	return s.ensure(path, SpecifierOver)
}

func (s *Stage) ensure(path sdf.Path, spec Specifier) (*Prim, error) {
	if path.IsEmpty() || path.IsRoot() || path.IsPropertyPath() {
		return nil, fmt.Errorf("usd: %q is not a prim path", path)
	}
	if p, ok := s.prims[path]; ok {
		return p, nil
	}
	parent, err := s.ensureParent(path.Parent(), spec)
	if err != nil {
		return nil, err
	}
	p := newPrim(path, "", spec)
	parent.addChild(p)
	s.prims[path] = p
	return p, nil
}

func (s *Stage) ensureParent(path sdf.Path, spec Specifier) (*Prim, error) {
	if path.IsRoot() {
		return s.root, nil
	}
	p, err := s.ensure(path, spec)
	if err != nil {
		return nil, err
	}
	if spec == SpecifierDef {
		p.specifier = SpecifierDef
	}
	return p, nil
}

// Traverse returns every prim below the pseudo-root, depth first, in
// creation order.
func (s *Stage) Traverse() []*Prim {
	var out []*Prim
	var walk func(p *Prim)
	walk = func(p *Prim) {
		for _, c := range p.children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(s.root)
	return out
}

// CreateNode defines a new typed prim. Unlike DefinePrim it refuses to
// reuse a prim that is already defined.
func (s *Stage) CreateNode(path sdf.Path, typeName string) error {
	if p, ok := s.prims[path]; ok && p.specifier == SpecifierDef {
		return fmt.Errorf("usd: prim %s already defined", path)
	}
	_, err := s.DefinePrim(path, typeName)
	return err
}

// CreateAttribute declares an attribute without authoring a value.
func (s *Stage) CreateAttribute(path sdf.Path, name string, typeName sdf.ValueTypeName) error {
	p, ok := s.prims[path]
	if !ok {
		return fmt.Errorf("usd: no prim at %s", path)
	}
	_, err := p.CreateAttribute(name, typeName)
	return err
}

// SetAttribute declares an attribute and authors its value. Attributes in
// the info: namespace are uniform.
func (s *Stage) SetAttribute(path sdf.Path, name string, typeName sdf.ValueTypeName, v sdf.Value) error {
	p, ok := s.prims[path]
	if !ok {
		return fmt.Errorf("usd: no prim at %s", path)
	}
	a, err := p.CreateAttribute(name, typeName)
	if err != nil {
		return err
	}
	if strings.HasPrefix(name, "info:") {
		a.SetVariability(Uniform)
	}
	return a.Set(v)
}

// Connect declares an attribute and adds a connection to source.
func (s *Stage) Connect(path sdf.Path, name string, typeName sdf.ValueTypeName, source sdf.Path) error {
	p, ok := s.prims[path]
	if !ok {
		return fmt.Errorf("usd: no prim at %s", path)
	}
	a, err := p.CreateAttribute(name, typeName)
	if err != nil {
		return err
	}
	return a.AddConnection(source)
}

// ChildExists reports whether parent has a child prim called name.
func (s *Stage) ChildExists(parent sdf.Path, name string) bool {
	p, ok := s.prims[parent]
	if !ok {
		return false
	}
	_, ok = p.childIdx[name]
	return ok
}

// AddRelationshipTarget adds target to the named relationship of the prim
// at path. A missing prim is created as an override.
func (s *Stage) AddRelationshipTarget(path sdf.Path, name string, target sdf.Path) error {
	p, ok := s.prims[path]
	if !ok {
		var err error
		if p, err = s.OverridePrim(path); err != nil {
			return err
		}
	}
	r, err := p.CreateRelationship(name)
	if err != nil {
		return err
	}
	r.AddTarget(target)
	return nil
}
