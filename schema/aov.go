// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package schema

import (
	"fmt"

	"github.com/PaulDoessel/usd-arnold/arnold"
	"github.com/PaulDoessel/usd-arnold/usd"
)

// DefaultAOVDataType is the data type of an AOV with no dataType authored.
const DefaultAOVDataType = "RGBA"

// aovDataTypes are the allowed values of an AOV's dataType attribute.
var aovDataTypes = map[string]arnold.Type{
	"ARRAY":   arnold.TypeArray,
	"BOOL":    arnold.TypeBoolean,
	"BYTE":    arnold.TypeByte,
	"FLOAT":   arnold.TypeFloat,
	"INT":     arnold.TypeInt,
	"MATRIX":  arnold.TypeMatrix,
	"NODE":    arnold.TypeNode,
	"POINT":   arnold.TypePoint,
	"POINT2":  arnold.TypePoint2,
	"POINTER": arnold.TypePointer,
	"RGB":     arnold.TypeRGB,
	"RGBA":    arnold.TypeRGBA,
	"UINT":    arnold.TypeUInt,
	"VECTOR":  arnold.TypeVector,
}

// AOVDataType maps an AOV data type token to a renderer type. Tokens are
// case-sensitive, as in the schema.
func AOVDataType(token string) (arnold.Type, bool) {
	t, ok := aovDataTypes[token]
	if !ok {
		return arnold.TypeUnknown, false
	}
	return t, true
}

// AOVAPI is a view of an AOV prim.
type AOVAPI struct {
	shape ShapeAPI
}

// NewAOVAPI wraps prim.
func NewAOVAPI(prim *usd.Prim) AOVAPI {
	return AOVAPI{shape: ShapeAPI{prim: prim}}
}

// Name returns the authored AOV name, or the prim name.
func (a AOVAPI) Name() string {
	if name, ok := a.shape.Token(Name); ok && name != "" {
		return name
	}
	if a.shape.prim == nil {
		return ""
	}
	return a.shape.prim.Name()
}

// DataType resolves the AOV data type, defaulting to RGBA.
func (a AOVAPI) DataType() (arnold.Type, error) {
	token, ok := a.shape.Token(DataType)
	if !ok {
		token = DefaultAOVDataType
	}
	t, ok := AOVDataType(token)
	if !ok {
		return arnold.TypeUnknown, fmt.Errorf("schema: unknown AOV data type %q", token)
	}
	return t, nil
}
