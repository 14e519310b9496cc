// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package scenefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulDoessel/usd-arnold/arnold"
	"github.com/PaulDoessel/usd-arnold/schema"
	"github.com/PaulDoessel/usd-arnold/sdf"
)

const chrome = `
entries:
  - name: switch_shader
    output: RGB
    params:
      - name: index
        type: INT
        default: 2
      - name: input
        type: NODE
      - name: mode
        type: ENUM
        enum: [first, last]
nodes:
  - name: tex
    type: image
    params:
      filename: chrome.tx
      uvcoords: [0.5, 0.25]
  - name: surf
    type: standard_surface
    params:
      metalness: 1
      thin_walled: true
      specular_roughness: 0.05
    links:
      base_color: tex
      specular:
        node: tex
        component: a
    user:
      - name: tag
        type: STRING
        value: hero
  - name: sw
    type: switch_shader
    params:
      input: surf
  - name: xf
    type: matrix_transform
    params:
      matrix:
        - [1, 0, 0, 0]
        - [0, 2, 0, 0]
        - [0, 0, 1, 0]
        - [0, 0, 0, 1]
materials:
  - name: chrome
    surface: surf
bindings:
  - material: chrome
    shape: /World/ball
  - material: /Looks/other
    shape: /World/floor
shapes:
  - path: /World/ball
    attributes:
      ai:opaque: false
      ai:subdiv_iterations: 3
      ai:subdiv_type: catclark
  - path: /World/floor
    type: Plane
`

func mustDecode(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestDecode(t *testing.T) {
	doc := mustDecode(t, chrome)

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "switch_shader", doc.Entries[0].Name)
	require.Len(t, doc.Nodes, 4)

	surf := doc.Nodes[1]
	assert.Equal(t, Link{Node: "tex"}, surf.Links["base_color"])
	assert.Equal(t, "tex", surf.Links["specular"].Node)
	assert.Equal(t, 3, surf.Links["specular"].Component.Index())
	assert.Equal(t, -1, surf.Links["base_color"].Component.Index())
	assert.Len(t, doc.Shapes, 2)
}

func TestDecode_Empty(t *testing.T) {
	doc, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Nodes)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("nodes:\n  - name: a\n    colour: red\n"))
	require.Error(t, err)
}

func TestDecode_Component(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"0", 0},
		{"2", 2},
		{"r", 0},
		{"g", 1},
		{"b", 2},
		{"a", 3},
		{"x", 0},
		{"y", 1},
		{"z", 2},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			doc := mustDecode(t, "nodes:\n  - name: n\n    links:\n      p: {node: s, component: "+tt.src+"}\n")
			assert.Equal(t, tt.want, doc.Nodes[0].Links["p"].Component.Index())
		})
	}

	for _, bad := range []string{"-1", "w", "[1]"} {
		_, err := Decode(strings.NewReader("nodes:\n  - name: n\n    links:\n      p: {node: s, component: " + bad + "}\n"))
		assert.Error(t, err, bad)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(chrome), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Materials, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	b, err := mustDecode(t, chrome).Build()
	require.NoError(t, err)

	surf, ok := b.Universe.Lookup("surf")
	require.True(t, ok)
	tex, _ := b.Universe.Lookup("tex")

	v, ok := surf.Value("metalness")
	require.True(t, ok)
	assert.Equal(t, arnold.Float(1), v)
	v, _ = surf.Value("thin_walled")
	assert.Equal(t, arnold.Bool(true), v)
	v, _ = surf.Value("tag")
	assert.Equal(t, arnold.String("hero"), v)
	assert.True(t, surf.IsUser("tag"))

	l, ok := surf.Link("base_color")
	require.True(t, ok)
	assert.Same(t, tex, l.Source)
	assert.False(t, l.HasComponent())
	l, _ = surf.Link("specular")
	assert.Equal(t, 3, l.Component)

	v, _ = tex.Value("uvcoords")
	assert.Equal(t, arnold.Point2{X: 0.5, Y: 0.25}, v)

	sw, _ := b.Universe.Lookup("sw")
	v, _ = sw.Value("input")
	assert.Equal(t, arnold.NodeRef{Node: surf}, v)
	p, ok := sw.Param("index")
	require.True(t, ok)
	assert.Equal(t, arnold.Int(2), p.Default)
	p, _ = sw.Param("mode")
	assert.Equal(t, arnold.Enum("first"), p.Default)

	xf, _ := b.Universe.Lookup("xf")
	v, _ = xf.Value("matrix")
	m := arnold.IdentityMatrix()
	m[1][1] = 2
	assert.Equal(t, m, v)

	require.Len(t, b.Materials, 1)
	assert.Equal(t, MaterialRequest{Name: "chrome", Surface: surf}, b.Materials[0])

	require.Len(t, b.Bindings, 2)
	assert.Equal(t, BindingRequest{MaterialName: "chrome", Shape: sdf.MustPath("/World/ball")}, b.Bindings[0])
	assert.Equal(t, BindingRequest{MaterialPath: sdf.MustPath("/Looks/other"), Shape: sdf.MustPath("/World/floor")}, b.Bindings[1])

	ball, ok := b.Stage.Prim(sdf.MustPath("/World/ball"))
	require.True(t, ok)
	assert.Equal(t, DefaultShapeType, ball.TypeName())
	api := schema.NewShapeAPI(ball)
	opaque, ok := api.Bool(schema.Opaque)
	require.True(t, ok)
	assert.False(t, opaque)
	iters, _ := api.UInt(schema.SubdivIterations)
	assert.Equal(t, uint32(3), iters)
	subdiv, _ := api.Token(schema.SubdivType)
	assert.Equal(t, "catclark", subdiv)

	floor, ok := b.Stage.Prim(sdf.MustPath("/World/floor"))
	require.True(t, ok)
	assert.Equal(t, "Plane", floor.TypeName())
}

func TestBuild_ForwardReferences(t *testing.T) {
	b, err := mustDecode(t, `
nodes:
  - name: surf
    type: standard_surface
    links:
      base_color: n
  - name: n
    type: noise
`).Build()
	require.NoError(t, err)
	surf, _ := b.Universe.Lookup("surf")
	n, _ := b.Universe.Lookup("n")
	l, ok := surf.Link("base_color")
	require.True(t, ok)
	assert.Same(t, n, l.Source)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown entry", "nodes:\n  - {name: a, type: nope}\n", "unknown node entry"},
		{"unknown param", "nodes:\n  - {name: a, type: flat, params: {shine: 1}}\n", "unknown parameter"},
		{"wrong value", "nodes:\n  - {name: a, type: flat, params: {color: [1, 2]}}\n", "cannot use"},
		{"int range", "nodes:\n  - {name: a, type: noise, params: {octaves: 3000000000}}\n", "cannot use"},
		{"bad enum", "nodes:\n  - {name: a, type: noise, params: {coord_space: moon}}\n", "does not match"},
		{"missing link", "nodes:\n  - {name: a, type: flat, links: {color: b}}\n", `link source "b" not found`},
		{"missing node ref", "entries:\n  - {name: s, output: RGB, params: [{name: in, type: NODE}]}\nnodes:\n  - {name: a, type: s, params: {in: b}}\n", `node "b" not found`},
		{"bad entry type", "entries:\n  - {name: s, output: RGB, params: [{name: in, type: HALF}]}\n", `unknown type "HALF"`},
		{"bad kind", "entries:\n  - {name: s, kind: volume, output: RGB}\n", `unknown kind "volume"`},
		{"missing surface", "materials:\n  - {name: m, surface: nope}\n", `surface "nope" not found`},
		{"undeclared material", "bindings:\n  - {material: m, shape: /a}\n", `material "m" is not declared`},
		{"bad shape path", "materials: []\nbindings:\n  - {material: /Looks/m, shape: a}\n", "invalid shape path"},
		{"unknown shape attr", "shapes:\n  - path: /a\n    attributes:\n      ai:shiny: true\n", `unknown attribute "ai:shiny"`},
		{"bad shape token", "shapes:\n  - path: /a\n    attributes:\n      ai:subdiv_type: loop\n", "is not one of"},
		{"duplicate node", "nodes:\n  - {name: a, type: flat}\n  - {name: a, type: flat}\n", "node name already in use"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mustDecode(t, tt.src).Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuild_JoinsErrors(t *testing.T) {
	_, err := mustDecode(t, `
nodes:
  - {name: a, type: nope}
  - {name: b, type: flat, params: {color: red}}
`).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `node "a"`)
	assert.Contains(t, err.Error(), `node "b"`)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		typ  arnold.Type
		raw  any
		want arnold.Value
	}{
		{arnold.TypeBoolean, 1, arnold.Bool(true)},
		{arnold.TypeByte, 255, arnold.Byte(255)},
		{arnold.TypeUInt, 7, arnold.UInt(7)},
		{arnold.TypeInt64, -5, arnold.Int64(-5)},
		{arnold.TypeUInt64, uint64(1 << 63), arnold.UInt64(1 << 63)},
		{arnold.TypeFloat, 2, arnold.Float(2)},
		{arnold.TypeRGBA, []any{0.1, 0.2, 0.3, 1}, arnold.RGBA{R: 0.1, G: 0.2, B: 0.3, A: 1}},
		{arnold.TypeVector, []any{1, 2, 3}, arnold.Vector{X: 1, Y: 2, Z: 3}},
		{arnold.TypePoint, []any{1, 2, 3}, arnold.Point{X: 1, Y: 2, Z: 3}},
		{arnold.TypeEnum, "srt", arnold.Enum("srt")},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got, err := convert(tt.typ, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []struct {
		typ arnold.Type
		raw any
	}{
		{arnold.TypeByte, 256},
		{arnold.TypeUInt, -1},
		{arnold.TypeInt, 1.5},
		{arnold.TypeString, 3},
		{arnold.TypePointer, "x"},
		{arnold.TypeMatrix, []any{1, 2}},
	} {
		_, err := convert(bad.typ, bad.raw)
		assert.Error(t, err, "%s %v", bad.typ, bad.raw)
	}
}
