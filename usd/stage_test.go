// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package usd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulDoessel/usd-arnold/sdf"
)

func TestStage_DefinePrimCreatesAncestors(t *testing.T) {
	s := NewStage()

	p, err := s.DefinePrim(sdf.MustPath("/Looks/chrome/surf"), "AiShader")
	require.NoError(t, err)
	assert.Equal(t, "AiShader", p.TypeName())
	assert.Equal(t, "surf", p.Name())

	looks, ok := s.Prim(sdf.MustPath("/Looks"))
	require.True(t, ok)
	assert.Equal(t, "", looks.TypeName())
	assert.Equal(t, SpecifierDef, looks.Specifier())

	var paths []string
	for _, prim := range s.Traverse() {
		paths = append(paths, prim.Path().String())
	}
	assert.Equal(t, []string{"/Looks", "/Looks/chrome", "/Looks/chrome/surf"}, paths)

	_, err = s.DefinePrim(sdf.MustPath("/Looks.attr"), "")
	assert.Error(t, err)
	_, err = s.DefinePrim(sdf.AbsoluteRoot, "")
	assert.Error(t, err)
}

func TestStage_CreateNodeRefusesRedefinition(t *testing.T) {
	s := NewStage()
	path := sdf.MustPath("/Looks")

	require.NoError(t, s.CreateNode(path, "Scope"))
	assert.Error(t, s.CreateNode(path, "Scope"))

	// An override can be upgraded to a definition.
	over := sdf.MustPath("/World/shape")
	_, err := s.OverridePrim(over)
	require.NoError(t, err)
	require.NoError(t, s.CreateNode(over, "Mesh"))
	p, _ := s.Prim(over)
	assert.Equal(t, SpecifierDef, p.Specifier())
	assert.Equal(t, "Mesh", p.TypeName())
}

func TestStage_Attributes(t *testing.T) {
	s := NewStage()
	path := sdf.MustPath("/Looks/surf")
	_, err := s.DefinePrim(path, "AiShader")
	require.NoError(t, err)

	require.NoError(t, s.SetAttribute(path, "info:id", sdf.TypeToken, sdf.Token("flat")))
	require.NoError(t, s.SetAttribute(path, "inputs:color", sdf.TypeColor3f, sdf.Vec3f{1, 1, 1}))
	assert.Error(t, s.SetAttribute(path, "inputs:color", sdf.TypeFloat, sdf.Float(1)))
	assert.Error(t, s.SetAttribute(path, "inputs:bad", sdf.TypeFloat, sdf.Int(1)))
	assert.Error(t, s.SetAttribute(sdf.MustPath("/nope"), "x", sdf.TypeFloat, sdf.Float(1)))

	p, _ := s.Prim(path)
	id, ok := p.Attribute("info:id")
	require.True(t, ok)
	assert.Equal(t, Uniform, id.Variability())

	color, ok := p.Attribute("inputs:color")
	require.True(t, ok)
	v, ok := color.Get()
	require.True(t, ok)
	assert.Equal(t, sdf.Vec3f{1, 1, 1}, v)

	require.NoError(t, s.CreateAttribute(path, "outputs:out", sdf.TypeColor3f))
	out, _ := p.Attribute("outputs:out")
	_, ok = out.Get()
	assert.False(t, ok)

	_, ok = p.Attribute("inputs:missing")
	assert.False(t, ok)
}

func TestStage_Connect(t *testing.T) {
	s := NewStage()
	dst := sdf.MustPath("/Looks/surf")
	_, _ = s.DefinePrim(dst, "AiShader")
	src := sdf.MustPath("/Looks/tex.outputs:out")

	require.NoError(t, s.Connect(dst, "inputs:base_color", sdf.TypeColor3f, src))
	require.NoError(t, s.Connect(dst, "inputs:base_color", sdf.TypeColor3f, src))
	assert.Error(t, s.Connect(dst, "inputs:base_color", sdf.TypeColor3f, sdf.MustPath("/Looks/tex")))

	p, _ := s.Prim(dst)
	a, _ := p.Attribute("inputs:base_color")
	assert.Equal(t, []sdf.Path{src}, a.Connections())
}

func TestStage_ChildExistsAndRelationships(t *testing.T) {
	s := NewStage()
	_, _ = s.DefinePrim(sdf.MustPath("/Looks/chrome"), "Material")

	assert.True(t, s.ChildExists(sdf.AbsoluteRoot, "Looks"))
	assert.True(t, s.ChildExists(sdf.MustPath("/Looks"), "chrome"))
	assert.False(t, s.ChildExists(sdf.MustPath("/Looks"), "gold"))
	assert.False(t, s.ChildExists(sdf.MustPath("/Nope"), "chrome"))

	shape := sdf.MustPath("/World/pSphere1")
	mat := sdf.MustPath("/Looks/chrome")
	require.NoError(t, s.AddRelationshipTarget(shape, "material:binding", mat))
	require.NoError(t, s.AddRelationshipTarget(shape, "material:binding", mat))

	p, ok := s.Prim(shape)
	require.True(t, ok)
	assert.Equal(t, SpecifierOver, p.Specifier())
	r, ok := p.Relationship("material:binding")
	require.True(t, ok)
	assert.Equal(t, []sdf.Path{mat}, r.Targets())
}

func TestWrite(t *testing.T) {
	s := NewStage()
	mat := sdf.MustPath("/Looks/chrome")
	surf := sdf.MustPath("/Looks/chrome/surf")
	require.NoError(t, s.CreateNode(sdf.MustPath("/Looks"), "Scope"))
	require.NoError(t, s.CreateNode(mat, "Material"))
	require.NoError(t, s.CreateNode(surf, "AiShader"))
	require.NoError(t, s.SetAttribute(surf, "info:id", sdf.TypeToken, sdf.Token("flat")))
	require.NoError(t, s.SetAttribute(surf, "inputs:color", sdf.TypeColor3f, sdf.Vec3f{1, 0.5, 0}))
	require.NoError(t, s.CreateAttribute(surf, "outputs:out", sdf.TypeColor3f))
	require.NoError(t, s.Connect(mat, "outputs:ai:surface", sdf.TypeToken, sdf.MustPath("/Looks/chrome/surf.outputs:out")))
	require.NoError(t, s.AddRelationshipTarget(sdf.MustPath("/World/ball"), "material:binding", mat))

	want := `#usda 1.0

def Scope "Looks"
{
    def Material "chrome"
    {
        token outputs:ai:surface.connect = </Looks/chrome/surf.outputs:out>

        def AiShader "surf"
        {
            uniform token info:id = "flat"
            color3f inputs:color = (1, 0.5, 0)
            color3f outputs:out
        }
    }
}

over "World"
{
    over "ball"
    {
        rel material:binding = </Looks/chrome>
    }
}
`
	assert.Equal(t, want, Write(s))

	var buf bytes.Buffer
	n, err := WriteTo(&buf, s)
	require.NoError(t, err)
	assert.Equal(t, int64(len(want)), n)
	assert.Equal(t, want, buf.String())
}

func TestWrite_ValueAndConnection(t *testing.T) {
	s := NewStage()
	p := sdf.MustPath("/n")
	require.NoError(t, s.CreateNode(p, "AiShader"))
	require.NoError(t, s.SetAttribute(p, "inputs:x", sdf.TypeFloat, sdf.Float(2)))
	require.NoError(t, s.Connect(p, "inputs:x", sdf.TypeFloat, sdf.MustPath("/a.outputs:out")))
	require.NoError(t, s.Connect(p, "inputs:x", sdf.TypeFloat, sdf.MustPath("/b.outputs:out")))

	want := `#usda 1.0

def AiShader "n"
{
    float inputs:x = 2
    float inputs:x.connect = [</a.outputs:out>, </b.outputs:out>]
}
`
	assert.Equal(t, want, Write(s))
}
