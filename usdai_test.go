// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package usdai

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulDoessel/usd-arnold/export"
	"github.com/PaulDoessel/usd-arnold/katana"
	"github.com/PaulDoessel/usd-arnold/schema"
	"github.com/PaulDoessel/usd-arnold/scenefile"
	"github.com/PaulDoessel/usd-arnold/sdf"
)

const scene = `
nodes:
  - name: tex
    type: image
    params:
      filename: rust.tx
  - name: surf
    type: standard_surface
    params:
      metalness: 1
    links:
      base_color: tex
      specular_roughness:
        node: tex
        component: a
  - name: disp
    type: displacement
    links:
      input:
        node: tex
        component: r
materials:
  - name: rust
    surface: surf
    displacement: disp
  - name: rust
    surface: surf
bindings:
  - material: rust
    shape: /World/pipe
  - material: /Looks/elsewhere
    shape: /World/ghost
shapes:
  - path: /World/pipe
    attributes:
      ai:opaque: false
      ai:subdiv_iterations: 2
`

func exportScene(t *testing.T, src string, opts *export.Options) *Result {
	t.Helper()
	doc, err := scenefile.Decode(strings.NewReader(src))
	require.NoError(t, err)
	res, err := ExportDocument(doc, opts)
	require.NoError(t, err)
	return res
}

func TestExportDocument(t *testing.T) {
	res := exportScene(t, scene, nil)

	require.Len(t, res.Materials, 2)
	assert.Equal(t, Material{Name: "rust", Path: sdf.MustPath("/Looks/rust")}, res.Materials[0])
	assert.Equal(t, Material{Name: "rust", Path: sdf.MustPath("/Looks/rust_1")}, res.Materials[1])

	path, ok := res.Material("rust")
	require.True(t, ok)
	assert.Equal(t, "/Looks/rust", path.String())
	_, ok = res.Material("chrome")
	assert.False(t, ok)

	prim, ok := res.Stage.Prim(sdf.MustPath("/Looks/rust"))
	require.True(t, ok)
	mat := schema.NewMaterialAPI(prim)
	src, ok := mat.SurfaceSource()
	require.True(t, ok)
	assert.Equal(t, "/Looks/rust/surf.outputs:out", src.String())
	src, ok = mat.DisplacementSource()
	require.True(t, ok)
	assert.Equal(t, "/Looks/rust/disp.outputs:out", src.String())

	// The second material shares the shaders already exported.
	prim, ok = res.Stage.Prim(sdf.MustPath("/Looks/rust_1"))
	require.True(t, ok)
	src, ok = schema.NewMaterialAPI(prim).SurfaceSource()
	require.True(t, ok)
	assert.Equal(t, "/Looks/rust/surf.outputs:out", src.String())

	assert.Empty(t, res.Report)
	require.Len(t, res.Bindings, 2)
	assert.Equal(t, export.Binding{
		Material: sdf.MustPath("/Looks/rust"),
		Shape:    sdf.MustPath("/World/pipe"),
	}, res.Bindings[0])

	pipe, ok := res.Stage.Prim(sdf.MustPath("/World/pipe"))
	require.True(t, ok)
	bound, ok := schema.BoundMaterial(pipe)
	require.True(t, ok)
	assert.Equal(t, "/Looks/rust", bound.String())

	ghost, ok := res.Stage.Prim(sdf.MustPath("/World/ghost"))
	require.True(t, ok)
	bound, ok = schema.BoundMaterial(ghost)
	require.True(t, ok)
	assert.Equal(t, "/Looks/elsewhere", bound.String())
}

func TestExportDocument_Options(t *testing.T) {
	res := exportScene(t, scene, &export.Options{
		MaterialScope:    sdf.MustPath("/Materials"),
		ExportableParams: []string{"base_color"},
	})

	assert.Equal(t, "/Materials/rust", res.Materials[0].Path.String())
	surf, ok := res.Stage.Prim(sdf.MustPath("/Materials/rust/surf"))
	require.True(t, ok)
	_, ok = surf.Attribute("inputs:base_color")
	assert.True(t, ok)
	_, ok = surf.Attribute("inputs:metalness")
	assert.False(t, ok)
}

func TestExportDocument_Diagnostics(t *testing.T) {
	res := exportScene(t, `
nodes:
  - name: n
    type: noise
  - name: surf
    type: standard_surface
    links:
      base:
        node: n
        component: a
materials:
  - name: m
    surface: surf
`, nil)
	require.Len(t, res.Report, 1)
	assert.Equal(t, export.ErrInvalidComponentReference, res.Report[0].Kind)
	assert.Equal(t, "surf", res.Report[0].Node)
}

func TestExportDocument_Cycle(t *testing.T) {
	doc, err := scenefile.Decode(strings.NewReader(`
nodes:
  - name: a
    type: multiply
    links:
      input1: b
  - name: b
    type: multiply
    links:
      input1: a
materials:
  - name: loop
    surface: a
`))
	require.NoError(t, err)

	_, err = ExportDocument(doc, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, &export.Error{Kind: export.ErrCyclicDependency})
	assert.Contains(t, err.Error(), `material "loop"`)
	assert.Contains(t, err.Error(), "a -> b -> a")
}

func TestExportDocument_BuildError(t *testing.T) {
	doc, err := scenefile.Decode(strings.NewReader("nodes:\n  - {name: a, type: nope}\n"))
	require.NoError(t, err)
	_, err = ExportDocument(doc, nil)
	require.Error(t, err)
}

func TestExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scene), 0o644))

	res, err := ExportFile(path, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := res.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, res.USDA(), buf.String())
	assert.True(t, strings.HasPrefix(buf.String(), "#usda 1.0\n"))
	assert.Contains(t, buf.String(), `def AiShader "surf"`)

	_, err = ExportFile(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}

func TestCollectStatements(t *testing.T) {
	res := exportScene(t, scene, nil)

	stmts := CollectStatements(res.Stage)
	require.Len(t, stmts, 1)
	assert.Equal(t, "/World/pipe", stmts[0].Path.String())

	a, ok := stmts[0].Group.Lookup("opaque")
	require.True(t, ok)
	assert.Equal(t, katana.IntAttribute{Value: 0}, a)
	a, ok = stmts[0].Group.Lookup("iterations")
	require.True(t, ok)
	assert.Equal(t, katana.IntAttribute{Value: 2}, a)
}
