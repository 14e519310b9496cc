// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package schema

import (
	"github.com/PaulDoessel/usd-arnold/sdf"
	"github.com/PaulDoessel/usd-arnold/usd"
)

// Prim type names written by the exporter.
const (
	MaterialType = "Material"
	ShaderType   = "AiShader"
	ScopeType    = "Scope"

	// ShaderIDAttr holds the renderer node type of a shader prim.
	ShaderIDAttr = "info:id"

	// MaterialBindingRel binds a shape to a material.
	MaterialBindingRel = "material:binding"
)

// MaterialAPI is a view of the renderer terminals of a material prim.
type MaterialAPI struct {
	prim *usd.Prim
}

// NewMaterialAPI wraps prim.
func NewMaterialAPI(prim *usd.Prim) MaterialAPI {
	return MaterialAPI{prim: prim}
}

// Prim returns the wrapped prim.
func (m MaterialAPI) Prim() *usd.Prim { return m.prim }

// SurfaceOutput returns the surface terminal, if declared.
func (m MaterialAPI) SurfaceOutput() (*usd.Attribute, bool) {
	return m.output(SurfaceOutput)
}

// DisplacementOutput returns the displacement terminal, if declared.
func (m MaterialAPI) DisplacementOutput() (*usd.Attribute, bool) {
	return m.output(DisplacementOutput)
}

// SurfaceSource returns the shader output the surface terminal is
// connected to.
func (m MaterialAPI) SurfaceSource() (sdf.Path, bool) {
	return m.source(SurfaceOutput)
}

// DisplacementSource returns the shader output the displacement terminal
// is connected to.
func (m MaterialAPI) DisplacementSource() (sdf.Path, bool) {
	return m.source(DisplacementOutput)
}

func (m MaterialAPI) output(name string) (*usd.Attribute, bool) {
	if m.prim == nil {
		return nil, false
	}
	return m.prim.Attribute(name)
}

func (m MaterialAPI) source(name string) (sdf.Path, bool) {
	a, ok := m.output(name)
	if !ok || !a.HasConnections() {
		return sdf.Path{}, false
	}
	return a.Connections()[0], true
}

// BoundMaterial returns the first material:binding target of prim.
func BoundMaterial(prim *usd.Prim) (sdf.Path, bool) {
	if prim == nil {
		return sdf.Path{}, false
	}
	r, ok := prim.Relationship(MaterialBindingRel)
	if !ok || len(r.Targets()) == 0 {
		return sdf.Path{}, false
	}
	return r.Targets()[0], true
}
