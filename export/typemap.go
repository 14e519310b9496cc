// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package export

import (
	"strconv"

	"github.com/PaulDoessel/usd-arnold/arnold"
	"github.com/PaulDoessel/usd-arnold/sdf"
)

// TargetType returns the attribute type used for a renderer parameter
// type. param names the parameter for error reporting.
func TargetType(param string, t arnold.Type) (sdf.ValueTypeName, error) {
	switch t {
	case arnold.TypeByte:
		return sdf.TypeUChar, nil
	case arnold.TypeInt:
		return sdf.TypeInt, nil
	case arnold.TypeUInt:
		return sdf.TypeUInt, nil
	case arnold.TypeInt64:
		return sdf.TypeInt64, nil
	case arnold.TypeUInt64:
		return sdf.TypeUInt64, nil
	case arnold.TypeBoolean:
		return sdf.TypeBool, nil
	case arnold.TypeFloat:
		return sdf.TypeFloat, nil
	case arnold.TypeRGB:
		return sdf.TypeColor3f, nil
	case arnold.TypeRGBA:
		return sdf.TypeColor4f, nil
	case arnold.TypeVector:
		return sdf.TypeVector3f, nil
	case arnold.TypePoint:
		return sdf.TypePoint3f, nil
	case arnold.TypePoint2:
		return sdf.TypeFloat2, nil
	case arnold.TypeString:
		return sdf.TypeString, nil
	case arnold.TypeEnum, arnold.TypeNode:
		return sdf.TypeToken, nil
	case arnold.TypeMatrix:
		return sdf.TypeMatrix4d, nil
	default:
		return sdf.TypeInvalid, newError(ErrUnsupportedType, "", param, "renderer type %s has no attribute equivalent", t)
	}
}

// ToTarget converts a renderer value of type t into an attribute value.
func ToTarget(param string, t arnold.Type, v arnold.Value) (sdf.ValueTypeName, sdf.Value, error) {
	typ, err := TargetType(param, t)
	if err != nil {
		return sdf.TypeInvalid, nil, err
	}
	if got := arnold.TypeOf(v); got != t {
		return sdf.TypeInvalid, nil, newError(ErrUnsupportedType, "", param, "value of type %s stored in %s parameter", got, t)
	}

	switch v := v.(type) {
	case arnold.Byte:
		return typ, sdf.UChar(v), nil
	case arnold.Int:
		return typ, sdf.Int(v), nil
	case arnold.UInt:
		return typ, sdf.UInt(v), nil
	case arnold.Int64:
		return typ, sdf.Int64(v), nil
	case arnold.UInt64:
		return typ, sdf.UInt64(v), nil
	case arnold.Bool:
		return typ, sdf.Bool(v), nil
	case arnold.Float:
		return typ, sdf.Float(v), nil
	case arnold.RGB:
		return typ, sdf.Vec3f{v.R, v.G, v.B}, nil
	case arnold.RGBA:
		return typ, sdf.Vec4f{v.R, v.G, v.B, v.A}, nil
	case arnold.Vector:
		return typ, sdf.Vec3f{v.X, v.Y, v.Z}, nil
	case arnold.Point:
		return typ, sdf.Vec3f{v.X, v.Y, v.Z}, nil
	case arnold.Point2:
		return typ, sdf.Vec2f{v.X, v.Y}, nil
	case arnold.String:
		return typ, sdf.String(v), nil
	case arnold.Enum:
		return typ, sdf.Token(v), nil
	case arnold.Matrix:
		var m sdf.Matrix4d
		for i := range v {
			for j := range v[i] {
				m[i][j] = widen(v[i][j])
			}
		}
		return typ, m, nil
	case arnold.NodeRef:
		if v.Node == nil {
			return typ, sdf.Token(""), nil
		}
		return typ, sdf.Token(v.Node.Name()), nil
	default:
		return sdf.TypeInvalid, nil, newError(ErrUnsupportedType, "", param, "renderer type %s has no attribute equivalent", t)
	}
}

// FromTarget converts an attribute value back into a renderer value of
// type want. Booleans may be stored numerically, where any non-zero value
// reads as true.
func FromTarget(param string, typ sdf.ValueTypeName, v sdf.Value, want arnold.Type) (arnold.Value, error) {
	mismatch := func() error {
		return newError(ErrUnsupportedType, "", param, "cannot read %s attribute as %s", typ, want)
	}
	if err := sdf.CheckValue(typ, v); err != nil {
		return nil, newError(ErrUnsupportedType, "", param, "%v", err)
	}

	switch want {
	case arnold.TypeBoolean:
		switch v := v.(type) {
		case sdf.Bool:
			return arnold.Bool(v), nil
		case sdf.UChar:
			return arnold.Bool(v != 0), nil
		case sdf.Int:
			return arnold.Bool(v != 0), nil
		case sdf.UInt:
			return arnold.Bool(v != 0), nil
		case sdf.Int64:
			return arnold.Bool(v != 0), nil
		case sdf.UInt64:
			return arnold.Bool(v != 0), nil
		}
	case arnold.TypeByte:
		switch v := v.(type) {
		case sdf.UChar:
			return arnold.Byte(v), nil
		case sdf.Int:
			if v >= 0 && v <= 0xff {
				return arnold.Byte(v), nil
			}
		}
	case arnold.TypeInt:
		switch v := v.(type) {
		case sdf.Int:
			return arnold.Int(v), nil
		case sdf.UChar:
			return arnold.Int(v), nil
		case sdf.Bool:
			if v {
				return arnold.Int(1), nil
			}
			return arnold.Int(0), nil
		}
	case arnold.TypeUInt:
		switch v := v.(type) {
		case sdf.UInt:
			return arnold.UInt(v), nil
		case sdf.UChar:
			return arnold.UInt(v), nil
		case sdf.Int:
			if v >= 0 {
				return arnold.UInt(v), nil
			}
		}
	case arnold.TypeInt64:
		switch v := v.(type) {
		case sdf.Int64:
			return arnold.Int64(v), nil
		case sdf.Int:
			return arnold.Int64(v), nil
		}
	case arnold.TypeUInt64:
		switch v := v.(type) {
		case sdf.UInt64:
			return arnold.UInt64(v), nil
		case sdf.UInt:
			return arnold.UInt64(v), nil
		}
	case arnold.TypeFloat:
		switch v := v.(type) {
		case sdf.Float:
			return arnold.Float(v), nil
		case sdf.Double:
			return arnold.Float(v), nil
		}
	case arnold.TypeRGB:
		if v, ok := v.(sdf.Vec3f); ok {
			return arnold.RGB{R: v[0], G: v[1], B: v[2]}, nil
		}
	case arnold.TypeRGBA:
		switch v := v.(type) {
		case sdf.Vec4f:
			return arnold.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
		case sdf.Vec3f:
			return arnold.RGBA{R: v[0], G: v[1], B: v[2], A: 1}, nil
		}
	case arnold.TypeVector:
		if v, ok := v.(sdf.Vec3f); ok {
			return arnold.Vector{X: v[0], Y: v[1], Z: v[2]}, nil
		}
	case arnold.TypePoint:
		if v, ok := v.(sdf.Vec3f); ok {
			return arnold.Point{X: v[0], Y: v[1], Z: v[2]}, nil
		}
	case arnold.TypePoint2:
		if v, ok := v.(sdf.Vec2f); ok {
			return arnold.Point2{X: v[0], Y: v[1]}, nil
		}
	case arnold.TypeString:
		switch v := v.(type) {
		case sdf.String:
			return arnold.String(v), nil
		case sdf.Token:
			return arnold.String(v), nil
		case sdf.Asset:
			return arnold.String(v), nil
		}
	case arnold.TypeEnum:
		switch v := v.(type) {
		case sdf.Token:
			return arnold.Enum(v), nil
		case sdf.String:
			return arnold.Enum(v), nil
		}
	case arnold.TypeMatrix:
		if v, ok := v.(sdf.Matrix4d); ok {
			var m arnold.Matrix
			for i := range v {
				for j := range v[i] {
					m[i][j] = float32(v[i][j])
				}
			}
			return m, nil
		}
	default:
		return nil, newError(ErrUnsupportedType, "", param, "renderer type %s has no attribute equivalent", want)
	}
	return nil, mismatch()
}

// widen converts a float32 to the float64 with the same shortest decimal
// form, so 0.1f is written as 0.1 rather than 0.10000000149011612.
func widen(f float32) float64 {
	d, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		return float64(f)
	}
	return d
}
