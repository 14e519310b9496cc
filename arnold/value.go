// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package arnold

// Value is a typed parameter value. The set of implementations is closed.
type Value interface {
	arnoldValue()
}

// Scalar values.
type (
	Byte   uint8
	Int    int32
	UInt   uint32
	Int64  int64
	UInt64 uint64
	Bool   bool
	Float  float32
	String string

	// Enum holds the selected token of an enumerated parameter.
	Enum string
)

// RGB is a three-channel color.
type RGB struct{ R, G, B float32 }

// RGBA is a color with alpha.
type RGBA struct{ R, G, B, A float32 }

// Vector is a direction in 3D space.
type Vector struct{ X, Y, Z float32 }

// Point is a position in 3D space.
type Point struct{ X, Y, Z float32 }

// Point2 is a 2D position, usually a texture coordinate.
type Point2 struct{ X, Y float32 }

// Matrix is a row-major 4x4 transform.
type Matrix [4][4]float32

// NodeRef references another node through a NODE-typed parameter.
// A nil Node means the parameter is unset.
type NodeRef struct {
	Node *Node
}

func (Byte) arnoldValue()    {}
func (Int) arnoldValue()     {}
func (UInt) arnoldValue()    {}
func (Int64) arnoldValue()   {}
func (UInt64) arnoldValue()  {}
func (Bool) arnoldValue()    {}
func (Float) arnoldValue()   {}
func (String) arnoldValue()  {}
func (Enum) arnoldValue()    {}
func (RGB) arnoldValue()     {}
func (RGBA) arnoldValue()    {}
func (Vector) arnoldValue()  {}
func (Point) arnoldValue()   {}
func (Point2) arnoldValue()  {}
func (Matrix) arnoldValue()  {}
func (NodeRef) arnoldValue() {}

// IdentityMatrix returns the 4x4 identity.
func IdentityMatrix() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// TypeOf returns the type code carried by v, or TypeUnknown for nil.
func TypeOf(v Value) Type {
	switch v.(type) {
	case Byte:
		return TypeByte
	case Int:
		return TypeInt
	case UInt:
		return TypeUInt
	case Int64:
		return TypeInt64
	case UInt64:
		return TypeUInt64
	case Bool:
		return TypeBoolean
	case Float:
		return TypeFloat
	case String:
		return TypeString
	case Enum:
		return TypeEnum
	case RGB:
		return TypeRGB
	case RGBA:
		return TypeRGBA
	case Vector:
		return TypeVector
	case Point:
		return TypePoint
	case Point2:
		return TypePoint2
	case Matrix:
		return TypeMatrix
	case NodeRef:
		return TypeNode
	default:
		return TypeUnknown
	}
}

// Zero returns the zero value for t, or nil when t has no value
// representation (POINTER, ARRAY, CLOSURE).
func Zero(t Type) Value {
	switch t {
	case TypeByte:
		return Byte(0)
	case TypeInt:
		return Int(0)
	case TypeUInt:
		return UInt(0)
	case TypeInt64:
		return Int64(0)
	case TypeUInt64:
		return UInt64(0)
	case TypeBoolean:
		return Bool(false)
	case TypeFloat:
		return Float(0)
	case TypeString:
		return String("")
	case TypeEnum:
		return Enum("")
	case TypeRGB:
		return RGB{}
	case TypeRGBA:
		return RGBA{}
	case TypeVector:
		return Vector{}
	case TypePoint:
		return Point{}
	case TypePoint2:
		return Point2{}
	case TypeMatrix:
		return IdentityMatrix()
	case TypeNode:
		return NodeRef{}
	default:
		return nil
	}
}
