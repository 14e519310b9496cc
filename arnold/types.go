// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package arnold

import "strings"

// Type is a renderer parameter type code.
type Type uint8

const (
	TypeByte Type = iota
	TypeInt
	TypeUInt
	TypeBoolean
	TypeFloat
	TypeRGB
	TypeRGBA
	TypeVector
	TypePoint
	TypePoint2
	TypeString
	TypePointer
	TypeNode
	TypeArray
	TypeMatrix
	TypeEnum
	TypeClosure
	TypeInt64
	TypeUInt64

	// TypeUnknown is returned for unrecognized type names.
	TypeUnknown Type = 0xff
)

var typeNames = [...]string{
	TypeByte:    "BYTE",
	TypeInt:     "INT",
	TypeUInt:    "UINT",
	TypeBoolean: "BOOL",
	TypeFloat:   "FLOAT",
	TypeRGB:     "RGB",
	TypeRGBA:    "RGBA",
	TypeVector:  "VECTOR",
	TypePoint:   "POINT",
	TypePoint2:  "POINT2",
	TypeString:  "STRING",
	TypePointer: "POINTER",
	TypeNode:    "NODE",
	TypeArray:   "ARRAY",
	TypeMatrix:  "MATRIX",
	TypeEnum:    "ENUM",
	TypeClosure: "CLOSURE",
	TypeInt64:   "INT64",
	TypeUInt64:  "UINT64",
}

// String returns the upper-case renderer name of the type.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "UNKNOWN"
}

// ParseType parses a type name. Matching is case-insensitive and accepts
// "BOOLEAN" as an alias of "BOOL".
func ParseType(name string) (Type, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "BOOLEAN" {
		return TypeBoolean, true
	}
	for i, n := range typeNames {
		if n == upper {
			return Type(i), true
		}
	}
	return TypeUnknown, false
}

// Components returns the number of scalar channels of a value of this type.
func (t Type) Components() int {
	switch t {
	case TypeRGB, TypeVector, TypePoint:
		return 3
	case TypeRGBA:
		return 4
	case TypePoint2:
		return 2
	default:
		return 1
	}
}

// ComponentName returns the channel name used for component i, or "" when
// the type has no such channel.
func (t Type) ComponentName(i int) string {
	var names string
	switch t {
	case TypeRGB:
		names = "rgb"
	case TypeRGBA:
		names = "rgba"
	case TypeVector, TypePoint:
		names = "xyz"
	case TypePoint2:
		names = "xy"
	default:
		return ""
	}
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i : i+1]
}

// ComponentIndex is the inverse of ComponentName. It returns -1 when name is
// not a channel of t.
func (t Type) ComponentIndex(name string) int {
	for i := 0; i < t.Components(); i++ {
		if t.ComponentName(i) == name {
			return i
		}
	}
	return -1
}
