// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package sdf

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueTypeName is the scene description type of an attribute.
type ValueTypeName uint8

const (
	TypeInvalid ValueTypeName = iota
	TypeBool
	TypeUChar
	TypeInt
	TypeUInt
	TypeInt64
	TypeUInt64
	TypeFloat
	TypeDouble
	TypeFloat2
	TypeFloat3
	TypeVector3f
	TypePoint3f
	TypeNormal3f
	TypeColor3f
	TypeColor4f
	TypeMatrix4d
	TypeString
	TypeToken
	TypeAsset
)

var valueTypeNames = [...]string{
	TypeInvalid:  "",
	TypeBool:     "bool",
	TypeUChar:    "uchar",
	TypeInt:      "int",
	TypeUInt:     "uint",
	TypeInt64:    "int64",
	TypeUInt64:   "uint64",
	TypeFloat:    "float",
	TypeDouble:   "double",
	TypeFloat2:   "float2",
	TypeFloat3:   "float3",
	TypeVector3f: "vector3f",
	TypePoint3f:  "point3f",
	TypeNormal3f: "normal3f",
	TypeColor3f:  "color3f",
	TypeColor4f:  "color4f",
	TypeMatrix4d: "matrix4d",
	TypeString:   "string",
	TypeToken:    "token",
	TypeAsset:    "asset",
}

// String returns the usda spelling of the type name.
func (t ValueTypeName) String() string {
	if int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}
	return ""
}

// ParseValueTypeName parses a usda type name.
func ParseValueTypeName(s string) (ValueTypeName, bool) {
	for i, n := range valueTypeNames {
		if i != int(TypeInvalid) && n == s {
			return ValueTypeName(i), true
		}
	}
	return TypeInvalid, false
}

// Components returns the number of scalar channels of the type.
func (t ValueTypeName) Components() int {
	switch t {
	case TypeFloat2:
		return 2
	case TypeFloat3, TypeVector3f, TypePoint3f, TypeNormal3f, TypeColor3f:
		return 3
	case TypeColor4f:
		return 4
	case TypeMatrix4d:
		return 16
	default:
		return 1
	}
}

// Value is a typed attribute value. The set of implementations is closed.
type Value interface {
	sdfValue()
}

// Scalar values.
type (
	Bool   bool
	UChar  uint8
	Int    int32
	UInt   uint32
	Int64  int64
	UInt64 uint64
	Float  float32
	Double float64
	String string
	Token  string
	Asset  string
)

// Vec2f is a two-float tuple.
type Vec2f [2]float32

// Vec3f is a three-float tuple. Its role (vector, point, normal, color) is
// carried by the attribute's type name.
type Vec3f [3]float32

// Vec4f is a four-float tuple.
type Vec4f [4]float32

// Matrix4d is a row-major double 4x4 matrix.
type Matrix4d [4][4]float64

func (Bool) sdfValue()     {}
func (UChar) sdfValue()    {}
func (Int) sdfValue()      {}
func (UInt) sdfValue()     {}
func (Int64) sdfValue()    {}
func (UInt64) sdfValue()   {}
func (Float) sdfValue()    {}
func (Double) sdfValue()   {}
func (String) sdfValue()   {}
func (Token) sdfValue()    {}
func (Asset) sdfValue()    {}
func (Vec2f) sdfValue()    {}
func (Vec3f) sdfValue()    {}
func (Vec4f) sdfValue()    {}
func (Matrix4d) sdfValue() {}

// CheckValue reports an error unless v is a legal value for an attribute of
// type t.
func CheckValue(t ValueTypeName, v Value) error {
	ok := false
	switch v.(type) {
	case Bool:
		ok = t == TypeBool
	case UChar:
		ok = t == TypeUChar
	case Int:
		ok = t == TypeInt
	case UInt:
		ok = t == TypeUInt
	case Int64:
		ok = t == TypeInt64
	case UInt64:
		ok = t == TypeUInt64
	case Float:
		ok = t == TypeFloat
	case Double:
		ok = t == TypeDouble
	case String:
		ok = t == TypeString
	case Token:
		ok = t == TypeToken
	case Asset:
		ok = t == TypeAsset
	case Vec2f:
		ok = t == TypeFloat2
	case Vec3f:
		ok = t.Components() == 3
	case Vec4f:
		ok = t == TypeColor4f
	case Matrix4d:
		ok = t == TypeMatrix4d
	}
	if !ok {
		return fmt.Errorf("sdf: value of kind %T is not a %s", v, t)
	}
	return nil
}

// Format renders v using usda literal syntax. Booleans are written as 0
// and 1.
func Format(v Value) string {
	switch v := v.(type) {
	case Bool:
		if v {
			return "1"
		}
		return "0"
	case UChar:
		return strconv.FormatUint(uint64(v), 10)
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case UInt:
		return strconv.FormatUint(uint64(v), 10)
	case Int64:
		return strconv.FormatInt(int64(v), 10)
	case UInt64:
		return strconv.FormatUint(uint64(v), 10)
	case Float:
		return formatFloat32(float32(v))
	case Double:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case String:
		return strconv.Quote(string(v))
	case Token:
		return strconv.Quote(string(v))
	case Asset:
		return "@" + string(v) + "@"
	case Vec2f:
		return tuple32(v[:])
	case Vec3f:
		return tuple32(v[:])
	case Vec4f:
		return tuple32(v[:])
	case Matrix4d:
		rows := make([]string, 4)
		for i, row := range v {
			parts := make([]string, 4)
			for j, f := range row {
				parts[j] = strconv.FormatFloat(f, 'g', -1, 64)
			}
			rows[i] = "(" + strings.Join(parts, ", ") + ")"
		}
		return "( " + strings.Join(rows, ", ") + " )"
	default:
		return "None"
	}
}

func formatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func tuple32(fs []float32) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = formatFloat32(f)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
