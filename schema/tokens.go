// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package schema

// Attribute names of the ai: schema.
const (
	AOV                  = "ai:aov"
	DispAutobump         = "ai:disp_autobump"
	DispHeight           = "ai:disp_height"
	DispPadding          = "ai:disp_padding"
	DispZeroValue        = "ai:disp_zero_value"
	Displacement         = "ai:displacement"
	LightGroup           = "ai:light_group"
	Matte                = "ai:matte"
	Opaque               = "ai:opaque"
	RayBias              = "ai:ray_bias"
	ReceiveShadows       = "ai:receive_shadows"
	SelfShadows          = "ai:self_shadows"
	ShadowGroup          = "ai:shadow_group"
	Smoothing            = "ai:smoothing"
	SubdivAdaptiveError  = "ai:subdiv_adaptive_error"
	SubdivAdaptiveMetric = "ai:subdiv_adaptive_metric"
	SubdivAdaptiveSpace  = "ai:subdiv_adaptive_space"
	SubdivDicingCamera   = "ai:subdiv_dicing_camera"
	SubdivIterations     = "ai:subdiv_iterations"
	SubdivSmoothDerivs   = "ai:subdiv_smooth_derivs"
	SubdivType           = "ai:subdiv_type"
	SubdivUVSmoothing    = "ai:subdiv_uv_smoothing"
	Surface              = "ai:surface"
	TransformType        = "ai:transform_type"
	UseLightGroup        = "ai:use_light_group"
	UseShadowGroup       = "ai:use_shadow_group"
)

// AOV prim attributes.
const (
	Data       = "data"
	DataType   = "dataType"
	Driver     = "driver"
	Dso        = "dso"
	Filter     = "filter"
	Name       = "name"
	StepSize   = "step_size"
	UserPrefix = "user:"
)

// Allowed token values.
const (
	Auto              = "auto"
	Catclark          = "catclark"
	EdgeLength        = "edge_length"
	Flatness          = "flatness"
	Linear            = "linear"
	None              = "none"
	Object            = "object"
	PinBorders        = "pin_borders"
	PinCorners        = "pin_corners"
	Raster            = "raster"
	RotateAboutCenter = "rotate_about_center"
	RotateAboutOrigin = "rotate_about_origin"
	Smooth            = "smooth"
)

// Material terminal outputs.
const (
	SurfaceOutput      = "outputs:" + Surface
	DisplacementOutput = "outputs:" + Displacement
)

// RayType names a renderer ray type in per-ray attribute names.
type RayType string

const (
	RayCamera           RayType = "camera"
	RayShadow           RayType = "shadow"
	RayDiffuseReflect   RayType = "diffuse_reflect"
	RaySpecularReflect  RayType = "specular_reflect"
	RayDiffuseTransmit  RayType = "diffuse_transmit"
	RaySpecularTransmit RayType = "specular_transmit"
	RaySubsurface       RayType = "subsurface"
	RayVolume           RayType = "volume"
)

// RayTypes lists every ray type in schema order.
var RayTypes = []RayType{
	RayCamera,
	RayShadow,
	RayDiffuseReflect,
	RaySpecularReflect,
	RayDiffuseTransmit,
	RaySpecularTransmit,
	RaySubsurface,
	RayVolume,
}

// Visibility returns the visibility attribute name for a ray type.
func Visibility(ray RayType) string { return "ai:visibility:" + string(ray) }

// Sidedness returns the double-sidedness attribute name for a ray type.
func Sidedness(ray RayType) string { return "ai:sidedness:" + string(ray) }

// AutobumpVisibility returns the autobump visibility attribute name for a
// ray type.
func AutobumpVisibility(ray RayType) string { return "ai:autobump_visibility:" + string(ray) }
