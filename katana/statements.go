// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package katana

import (
	"strings"

	"github.com/PaulDoessel/usd-arnold/schema"
	"github.com/PaulDoessel/usd-arnold/sdf"
	"github.com/PaulDoessel/usd-arnold/usd"
)

// TypeHint returns the renderer type hint for a scene attribute type, or
// "" when the host can infer the type on its own.
func TypeHint(t sdf.ValueTypeName) string {
	switch t {
	case sdf.TypeBool:
		return "boolean"
	case sdf.TypeUChar:
		return "byte"
	case sdf.TypeUInt, sdf.TypeUInt64:
		return "uint"
	case sdf.TypeMatrix4d:
		return "matrix"
	case sdf.TypeFloat3, sdf.TypeVector3f, sdf.TypeNormal3f:
		return "vector"
	case sdf.TypeFloat2:
		return "point2"
	case sdf.TypePoint3f:
		return "point"
	case sdf.TypeColor3f:
		return "rgb"
	case sdf.TypeColor4f:
		return "rgba"
	default:
		return ""
	}
}

// statement maps one shape attribute to a host parameter.
type statement[T comparable] struct {
	attr  string
	param string
	def   T
}

// rayParam is the host parameter suffix for a ray type.
func rayParam(ray schema.RayType) string {
	return "AI_RAY_" + strings.ToUpper(string(ray))
}

var boolStatements = func() []statement[bool] {
	var defs []statement[bool]
	for _, ray := range schema.RayTypes {
		defs = append(defs, statement[bool]{schema.Visibility(ray), "visibility." + rayParam(ray), true})
	}
	for _, ray := range schema.RayTypes {
		defs = append(defs, statement[bool]{schema.Sidedness(ray), "sidedness." + rayParam(ray), true})
	}
	return append(defs,
		statement[bool]{schema.Opaque, "opaque", true},
		statement[bool]{schema.ReceiveShadows, "receive_shadows", true},
		statement[bool]{schema.SelfShadows, "self_shadows", true},
		statement[bool]{schema.Matte, "matte", false},
		statement[bool]{schema.Smoothing, "smoothing", false},
		statement[bool]{schema.SubdivSmoothDerivs, "subdiv_smooth_derivs", false},
		statement[bool]{schema.DispAutobump, "disp_autobump", false},
		statement[bool]{schema.UseLightGroup, "use_light_group", false},
		statement[bool]{schema.UseShadowGroup, "use_shadow_group", false},
	)
}()

var floatStatements = []statement[float32]{
	{schema.SubdivAdaptiveError, "subdiv_adaptive_error", 0},
	{schema.DispPadding, "disp_padding", 0},
	{schema.DispHeight, "disp_height", 1},
	{schema.DispZeroValue, "disp_zero_value", 0},
}

var uintStatements = []statement[uint32]{
	{schema.SubdivIterations, "iterations", 1},
}

var tokenStatements = []statement[string]{
	{schema.SubdivType, "subdiv_type", schema.None},
	{schema.SubdivAdaptiveMetric, "subdiv_adaptive_metric", schema.Auto},
	{schema.SubdivAdaptiveSpace, "subdiv_adaptive_space", schema.Raster},
	{schema.SubdivUVSmoothing, "subdiv_uv_smoothing", schema.PinCorners},
}

// apply sets every authored value that differs from its default and
// reports whether anything was set.
func apply[T comparable](defs []statement[T], read func(string) (T, bool), attr func(T) Attribute, b *GroupBuilder) bool {
	set := false
	for _, d := range defs {
		v, ok := read(d.attr)
		if !ok || v == d.def {
			continue
		}
		// Table parameter names are well formed and distinct, so Set cannot fail.
		_ = b.Set(d.param, attr(v))
		set = true
	}
	return set
}

// StatementsGroup translates the ai: attributes of a shape prim into the
// host's arnoldStatements group. Values equal to their default are left
// out. The bool is false when nothing was authored.
func StatementsGroup(prim *usd.Prim) (GroupAttribute, bool) {
	shape := schema.NewShapeAPI(prim)
	b := NewGroupBuilder()

	set := apply(boolStatements, shape.Bool, func(v bool) Attribute {
		if v {
			return IntAttribute{Value: 1}
		}
		return IntAttribute{Value: 0}
	}, b)
	set = apply(floatStatements, shape.Float, func(v float32) Attribute {
		return FloatAttribute{Value: v}
	}, b) || set
	set = apply(uintStatements, shape.UInt, func(v uint32) Attribute {
		return IntAttribute{Value: int(v)}
	}, b) || set
	set = apply(tokenStatements, shape.Token, func(v string) Attribute {
		return StringAttribute{Value: v}
	}, b) || set

	if !set {
		return GroupAttribute{}, false
	}
	return b.Build(), true
}
