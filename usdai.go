// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

// Package usdai exports renderer shader graphs to scene description.
//
// A scene document names renderer nodes, the materials to build from
// them and the shapes to bind those materials to. Export walks each
// material's shader graph and writes AiShader prims, their inputs and
// their connections onto a stage, which can then be written as usda.
//
// Example usage:
//
//	res, err := usdai.ExportFile("scene.yaml", export.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res.USDA())
//
// For finer control, drive an export.Session directly:
//
//	session := export.NewSession(stage, opts)
//	path, err := session.ExportMaterial("chrome", surface, nil)
package usdai

import (
	"fmt"
	"io"

	"github.com/PaulDoessel/usd-arnold/export"
	"github.com/PaulDoessel/usd-arnold/katana"
	"github.com/PaulDoessel/usd-arnold/scenefile"
	"github.com/PaulDoessel/usd-arnold/sdf"
	"github.com/PaulDoessel/usd-arnold/usd"
)

// Material is an exported material.
type Material struct {
	Name string   `yaml:"name"`
	Path sdf.Path `yaml:"path"`
}

// Result is the outcome of one export.
type Result struct {
	// Stage holds the shapes of the document and everything exported.
	Stage *usd.Stage

	// Materials lists the exported materials in request order.
	Materials []Material

	// Report lists the parameters and connections that were skipped.
	Report export.Report

	// Bindings lists the material bindings made.
	Bindings []export.Binding
}

// Material finds an exported material by its requested name.
func (r *Result) Material(name string) (sdf.Path, bool) {
	for _, m := range r.Materials {
		if m.Name == name {
			return m.Path, true
		}
	}
	return sdf.Path{}, false
}

// USDA returns the stage as usda text.
func (r *Result) USDA() string {
	return usd.Write(r.Stage)
}

// WriteTo writes the stage as usda text to w.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	return usd.WriteTo(w, r.Stage)
}

// ExportFile loads, builds and exports the scene document at path.
func ExportFile(path string, opts *export.Options) (*Result, error) {
	doc, err := scenefile.Load(path)
	if err != nil {
		return nil, err
	}
	return ExportDocument(doc, opts)
}

// ExportDocument builds and exports a decoded scene document.
func ExportDocument(doc *scenefile.Document, opts *export.Options) (*Result, error) {
	b, err := doc.Build()
	if err != nil {
		return nil, err
	}
	return Export(b, opts)
}

// Export runs one export session over a built scene: every requested
// material is exported in order, then every binding is made. The first
// fatal error aborts the export.
func Export(b *scenefile.Build, opts *export.Options) (*Result, error) {
	session := export.NewSession(b.Stage, opts)
	res := &Result{Stage: b.Stage}

	for _, m := range b.Materials {
		path, err := session.ExportMaterial(m.Name, m.Surface, m.Displacement)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", m.Name, err)
		}
		res.Materials = append(res.Materials, Material{Name: m.Name, Path: path})
	}

	for _, bd := range b.Bindings {
		material := bd.MaterialPath
		if bd.MaterialName != "" {
			path, ok := res.Material(bd.MaterialName)
			if !ok {
				return nil, fmt.Errorf("binding %s: material %q was not exported", bd.Shape, bd.MaterialName)
			}
			material = path
		}
		if err := session.BindMaterial(material, bd.Shape); err != nil {
			return nil, fmt.Errorf("binding %s: %w", bd.Shape, err)
		}
	}

	res.Report = session.Report()
	res.Bindings = session.Bindings()
	return res, nil
}

// Statements is the host statements group of one prim.
type Statements struct {
	Path  sdf.Path
	Group katana.GroupAttribute
}

// CollectStatements translates the renderer attributes of every prim on
// stage into host statements groups, in traversal order. Prims with
// nothing to emit are left out.
func CollectStatements(stage *usd.Stage) []Statements {
	var out []Statements
	for _, p := range stage.Traverse() {
		if g, ok := katana.StatementsGroup(p); ok {
			out = append(out, Statements{Path: p.Path(), Group: g})
		}
	}
	return out
}
