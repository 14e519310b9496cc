// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package schema

import (
	"fmt"
	"slices"

	"github.com/PaulDoessel/usd-arnold/sdf"
	"github.com/PaulDoessel/usd-arnold/usd"
)

// AttrDef describes one schema attribute.
type AttrDef struct {
	Name    string
	Type    sdf.ValueTypeName
	Default sdf.Value

	// Allowed lists the accepted values of a token attribute. Empty means
	// any token.
	Allowed []string
}

var shapeAttrs = buildShapeAttrs()

func buildShapeAttrs() []AttrDef {
	var defs []AttrDef
	for _, ray := range RayTypes {
		defs = append(defs, AttrDef{Name: Visibility(ray), Type: sdf.TypeBool, Default: sdf.Bool(true)})
	}
	for _, ray := range RayTypes {
		defs = append(defs, AttrDef{Name: Sidedness(ray), Type: sdf.TypeBool, Default: sdf.Bool(true)})
	}
	for _, ray := range RayTypes {
		defs = append(defs, AttrDef{Name: AutobumpVisibility(ray), Type: sdf.TypeBool, Default: sdf.Bool(ray == RayCamera)})
	}
	return append(defs,
		AttrDef{Name: Opaque, Type: sdf.TypeBool, Default: sdf.Bool(true)},
		AttrDef{Name: ReceiveShadows, Type: sdf.TypeBool, Default: sdf.Bool(true)},
		AttrDef{Name: SelfShadows, Type: sdf.TypeBool, Default: sdf.Bool(true)},
		AttrDef{Name: Matte, Type: sdf.TypeBool, Default: sdf.Bool(false)},
		AttrDef{Name: Smoothing, Type: sdf.TypeBool, Default: sdf.Bool(false)},
		AttrDef{Name: UseLightGroup, Type: sdf.TypeBool, Default: sdf.Bool(false)},
		AttrDef{Name: UseShadowGroup, Type: sdf.TypeBool, Default: sdf.Bool(false)},
		AttrDef{Name: RayBias, Type: sdf.TypeFloat, Default: sdf.Float(1e-6)},
		AttrDef{Name: TransformType, Type: sdf.TypeToken, Default: sdf.Token(RotateAboutCenter),
			Allowed: []string{Linear, RotateAboutOrigin, RotateAboutCenter}},
		AttrDef{Name: SubdivType, Type: sdf.TypeToken, Default: sdf.Token(None),
			Allowed: []string{None, Catclark, Linear}},
		AttrDef{Name: SubdivIterations, Type: sdf.TypeUInt, Default: sdf.UInt(1)},
		AttrDef{Name: SubdivAdaptiveError, Type: sdf.TypeFloat, Default: sdf.Float(0)},
		AttrDef{Name: SubdivAdaptiveMetric, Type: sdf.TypeToken, Default: sdf.Token(Auto),
			Allowed: []string{Auto, EdgeLength, Flatness}},
		AttrDef{Name: SubdivAdaptiveSpace, Type: sdf.TypeToken, Default: sdf.Token(Raster),
			Allowed: []string{Raster, Object}},
		AttrDef{Name: SubdivUVSmoothing, Type: sdf.TypeToken, Default: sdf.Token(PinCorners),
			Allowed: []string{PinCorners, PinBorders, Linear, Smooth}},
		AttrDef{Name: SubdivSmoothDerivs, Type: sdf.TypeBool, Default: sdf.Bool(false)},
		AttrDef{Name: SubdivDicingCamera, Type: sdf.TypeString, Default: sdf.String("")},
		AttrDef{Name: DispPadding, Type: sdf.TypeFloat, Default: sdf.Float(0)},
		AttrDef{Name: DispHeight, Type: sdf.TypeFloat, Default: sdf.Float(1)},
		AttrDef{Name: DispZeroValue, Type: sdf.TypeFloat, Default: sdf.Float(0)},
		AttrDef{Name: DispAutobump, Type: sdf.TypeBool, Default: sdf.Bool(false)},
	)
}

// ShapeAttributes returns the attribute definitions of the shape schema.
func ShapeAttributes() []AttrDef {
	return slices.Clone(shapeAttrs)
}

// ShapeAttribute finds a shape attribute definition by name.
func ShapeAttribute(name string) (AttrDef, bool) {
	for _, d := range shapeAttrs {
		if d.Name == name {
			return d, true
		}
	}
	return AttrDef{}, false
}

// ShapeAPI is a typed view of the ai: attributes of a shape prim.
type ShapeAPI struct {
	prim *usd.Prim
}

// NewShapeAPI wraps prim.
func NewShapeAPI(prim *usd.Prim) ShapeAPI {
	return ShapeAPI{prim: prim}
}

// Prim returns the wrapped prim.
func (s ShapeAPI) Prim() *usd.Prim { return s.prim }

func (s ShapeAPI) attr(name string) (*usd.Attribute, bool) {
	if s.prim == nil {
		return nil, false
	}
	return s.prim.Attribute(name)
}

func (s ShapeAPI) GetVisibilityAttr(ray RayType) (*usd.Attribute, bool) {
	return s.attr(Visibility(ray))
}

func (s ShapeAPI) GetSidednessAttr(ray RayType) (*usd.Attribute, bool) {
	return s.attr(Sidedness(ray))
}

func (s ShapeAPI) GetAutobumpVisibilityAttr(ray RayType) (*usd.Attribute, bool) {
	return s.attr(AutobumpVisibility(ray))
}

func (s ShapeAPI) GetOpaqueAttr() (*usd.Attribute, bool)         { return s.attr(Opaque) }
func (s ShapeAPI) GetMatteAttr() (*usd.Attribute, bool)          { return s.attr(Matte) }
func (s ShapeAPI) GetReceiveShadowsAttr() (*usd.Attribute, bool) { return s.attr(ReceiveShadows) }
func (s ShapeAPI) GetSelfShadowsAttr() (*usd.Attribute, bool)    { return s.attr(SelfShadows) }
func (s ShapeAPI) GetSmoothingAttr() (*usd.Attribute, bool)      { return s.attr(Smoothing) }
func (s ShapeAPI) GetSubdivTypeAttr() (*usd.Attribute, bool)     { return s.attr(SubdivType) }
func (s ShapeAPI) GetDispHeightAttr() (*usd.Attribute, bool)     { return s.attr(DispHeight) }
func (s ShapeAPI) GetDispPaddingAttr() (*usd.Attribute, bool)    { return s.attr(DispPadding) }
func (s ShapeAPI) GetDispZeroValueAttr() (*usd.Attribute, bool)  { return s.attr(DispZeroValue) }
func (s ShapeAPI) GetDispAutobumpAttr() (*usd.Attribute, bool)   { return s.attr(DispAutobump) }

func (s ShapeAPI) GetSubdivIterationsAttr() (*usd.Attribute, bool) {
	return s.attr(SubdivIterations)
}

func (s ShapeAPI) GetSubdivAdaptiveErrorAttr() (*usd.Attribute, bool) {
	return s.attr(SubdivAdaptiveError)
}

func (s ShapeAPI) GetSubdivSmoothDerivsAttr() (*usd.Attribute, bool) {
	return s.attr(SubdivSmoothDerivs)
}

// Set authors a schema attribute, declaring it with the schema type.
// Token attributes are checked against their allowed values.
func (s ShapeAPI) Set(name string, v sdf.Value) error {
	def, ok := ShapeAttribute(name)
	if !ok {
		return fmt.Errorf("schema: %q is not a shape attribute", name)
	}
	if tok, isToken := v.(sdf.Token); isToken && len(def.Allowed) > 0 && !slices.Contains(def.Allowed, string(tok)) {
		return fmt.Errorf("schema: %s: %q is not one of %v", name, tok, def.Allowed)
	}
	if s.prim == nil {
		return fmt.Errorf("schema: %s: no prim", name)
	}
	a, err := s.prim.CreateAttribute(name, def.Type)
	if err != nil {
		return err
	}
	return a.Set(v)
}

// Bool reads an authored boolean. Numeric values read as true when
// non-zero. The second result is false when nothing usable is authored.
func (s ShapeAPI) Bool(name string) (bool, bool) {
	v, ok := s.value(name)
	if !ok {
		return false, false
	}
	switch v := v.(type) {
	case sdf.Bool:
		return bool(v), true
	case sdf.UChar:
		return v != 0, true
	case sdf.Int:
		return v != 0, true
	case sdf.UInt:
		return v != 0, true
	}
	return false, false
}

// Float reads an authored float or double.
func (s ShapeAPI) Float(name string) (float32, bool) {
	v, ok := s.value(name)
	if !ok {
		return 0, false
	}
	switch v := v.(type) {
	case sdf.Float:
		return float32(v), true
	case sdf.Double:
		return float32(v), true
	}
	return 0, false
}

// UInt reads an authored unsigned integer. Non-negative ints are accepted.
func (s ShapeAPI) UInt(name string) (uint32, bool) {
	v, ok := s.value(name)
	if !ok {
		return 0, false
	}
	switch v := v.(type) {
	case sdf.UInt:
		return uint32(v), true
	case sdf.UChar:
		return uint32(v), true
	case sdf.Int:
		if v >= 0 {
			return uint32(v), true
		}
	}
	return 0, false
}

// Token reads an authored token or string.
func (s ShapeAPI) Token(name string) (string, bool) {
	v, ok := s.value(name)
	if !ok {
		return "", false
	}
	switch v := v.(type) {
	case sdf.Token:
		return string(v), true
	case sdf.String:
		return string(v), true
	}
	return "", false
}

func (s ShapeAPI) value(name string) (sdf.Value, bool) {
	a, ok := s.attr(name)
	if !ok {
		return nil, false
	}
	return a.Get()
}
