// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package arnold

// Builtins returns a small library of common shader entries. The
// parameter sets are a subset of the renderer's own; each call returns
// fresh copies.
func Builtins() []*NodeEntry {
	white := RGB{R: 1, G: 1, B: 1}
	black := RGB{}

	return []*NodeEntry{
		{
			Name:       "standard_surface",
			Kind:       KindShader,
			OutputType: TypeRGB,
			Params: []ParamEntry{
				{Name: "base", Type: TypeFloat, Default: Float(0.8)},
				{Name: "base_color", Type: TypeRGB, Default: white},
				{Name: "diffuse_roughness", Type: TypeFloat, Default: Float(0)},
				{Name: "metalness", Type: TypeFloat, Default: Float(0)},
				{Name: "specular", Type: TypeFloat, Default: Float(1)},
				{Name: "specular_color", Type: TypeRGB, Default: white},
				{Name: "specular_roughness", Type: TypeFloat, Default: Float(0.2)},
				{Name: "specular_IOR", Type: TypeFloat, Default: Float(1.5)},
				{Name: "transmission", Type: TypeFloat, Default: Float(0)},
				{Name: "emission", Type: TypeFloat, Default: Float(0)},
				{Name: "emission_color", Type: TypeRGB, Default: white},
				{Name: "opacity", Type: TypeRGB, Default: white},
				{Name: "normal", Type: TypeVector, Default: Vector{}},
				{Name: "thin_walled", Type: TypeBoolean, Default: Bool(false)},
			},
		},
		{
			Name:       "image",
			Kind:       KindShader,
			OutputType: TypeRGBA,
			Params: []ParamEntry{
				{Name: "filename", Type: TypeString, Default: String("")},
				{Name: "color_space", Type: TypeString, Default: String("auto")},
				{Name: "multiply", Type: TypeRGB, Default: white},
				{Name: "offset", Type: TypeRGB, Default: black},
				{Name: "uvcoords", Type: TypePoint2, Default: Point2{}},
				{Name: "swrap", Type: TypeEnum, Default: Enum("periodic"),
					EnumValues: []string{"periodic", "black", "clamp", "mirror", "file"}},
				{Name: "twrap", Type: TypeEnum, Default: Enum("periodic"),
					EnumValues: []string{"periodic", "black", "clamp", "mirror", "file"}},
				{Name: "ignore_missing_textures", Type: TypeBoolean, Default: Bool(false)},
			},
		},
		{
			Name:       "noise",
			Kind:       KindShader,
			OutputType: TypeRGB,
			Params: []ParamEntry{
				{Name: "octaves", Type: TypeInt, Default: Int(1)},
				{Name: "distortion", Type: TypeFloat, Default: Float(0)},
				{Name: "lacunarity", Type: TypeFloat, Default: Float(1.92)},
				{Name: "amplitude", Type: TypeFloat, Default: Float(1)},
				{Name: "scale", Type: TypeVector, Default: Vector{X: 1, Y: 1, Z: 1}},
				{Name: "offset", Type: TypeVector, Default: Vector{}},
				{Name: "coord_space", Type: TypeEnum, Default: Enum("object"),
					EnumValues: []string{"world", "object", "Pref"}},
				{Name: "color1", Type: TypeRGB, Default: black},
				{Name: "color2", Type: TypeRGB, Default: white},
			},
		},
		{
			Name:       "flat",
			Kind:       KindShader,
			OutputType: TypeRGB,
			Params: []ParamEntry{
				{Name: "color", Type: TypeRGB, Default: white},
			},
		},
		{
			Name:       "mix_rgba",
			Kind:       KindShader,
			OutputType: TypeRGBA,
			Params: []ParamEntry{
				{Name: "input1", Type: TypeRGBA, Default: RGBA{A: 1}},
				{Name: "input2", Type: TypeRGBA, Default: RGBA{R: 1, G: 1, B: 1, A: 1}},
				{Name: "mix", Type: TypeFloat, Default: Float(0.5)},
			},
		},
		{
			Name:       "multiply",
			Kind:       KindShader,
			OutputType: TypeRGB,
			Params: []ParamEntry{
				{Name: "input1", Type: TypeRGB, Default: white},
				{Name: "input2", Type: TypeRGB, Default: white},
			},
		},
		{
			Name:       "float_to_rgb",
			Kind:       KindShader,
			OutputType: TypeRGB,
			Params: []ParamEntry{
				{Name: "r", Type: TypeFloat, Default: Float(0)},
				{Name: "g", Type: TypeFloat, Default: Float(0)},
				{Name: "b", Type: TypeFloat, Default: Float(0)},
			},
		},
		{
			Name:       "bump2d",
			Kind:       KindShader,
			OutputType: TypeVector,
			Params: []ParamEntry{
				{Name: "bump_map", Type: TypeFloat, Default: Float(0)},
				{Name: "bump_height", Type: TypeFloat, Default: Float(1)},
				{Name: "normal", Type: TypeVector, Default: Vector{}},
			},
		},
		{
			Name:       "matrix_transform",
			Kind:       KindShader,
			OutputType: TypeVector,
			Params: []ParamEntry{
				{Name: "input", Type: TypeVector, Default: Vector{}},
				{Name: "matrix", Type: TypeMatrix, Default: IdentityMatrix()},
				{Name: "transform_order", Type: TypeEnum, Default: Enum("srt"),
					EnumValues: []string{"srt", "str", "rst", "rts", "tsr", "trs"}},
			},
		},
		{
			Name:       "user_data_int",
			Kind:       KindShader,
			OutputType: TypeInt,
			Params: []ParamEntry{
				{Name: "attribute", Type: TypeString, Default: String("")},
				{Name: "default", Type: TypeInt, Default: Int(0)},
			},
		},
		{
			Name:       "displacement",
			Kind:       KindShader,
			OutputType: TypeFloat,
			Params: []ParamEntry{
				{Name: "input", Type: TypeFloat, Default: Float(0)},
				{Name: "scale", Type: TypeFloat, Default: Float(1)},
			},
		},
	}
}
