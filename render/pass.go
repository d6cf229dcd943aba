// SPDX-FileCopyrightText : © 2022-2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package render

import "strings"

// CullMode selects which triangle winding is culled.
type CullMode int

// Supported cull modes.
const (
	CullBack CullMode = iota
	CullFront
	CullNone
)

// AlphaBlendMode selects the blend-factor equation applied to a draw.
type AlphaBlendMode int

// Supported alpha blend modes.
const (
	BlendNone AlphaBlendMode = iota
	BlendSrcAlpha
	BlendAdditive
)

// DepthFunc names a depth-comparison function.
type DepthFunc int

// Supported depth comparison functions.
const (
	DepthNever DepthFunc = iota
	DepthLess
	DepthEqual
	DepthLessEqual
	DepthGreater
	DepthNotEqual
	DepthGreaterEqual
	DepthAlways
)

// DepthSort selects how a render pass orders its meshes before dispatch.
type DepthSort int

// Supported depth-sort policies.
const (
	SortNone DepthSort = iota
	SortFrontToBack
	SortBackToFront
)

// BlendFactor names one operand of a GPU blend equation.
type BlendFactor int

// Supported blend factors.
const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
)

// BlendOp names the arithmetic combining a blend equation's two operands.
type BlendOp int

// Supported blend ops.
const (
	BlendOpAdd BlendOp = iota
)

// BlendState is the GPU blend-equation triple derived from an
// AlphaBlendMode: whether blending is enabled at all, and if so the
// source/destination factors and the op combining them.
type BlendState struct {
	Enabled bool
	Src     BlendFactor
	Dst     BlendFactor
	Op      BlendOp
}

// BlendState derives the blend-factor equation a Device applies for this
// mode: additive is (src=one, dst=one, op=add), blend_src (standard alpha)
// is (src=src_alpha, dst=one_minus_src_alpha, op=add), and none disables
// blending outright.
func (m AlphaBlendMode) BlendState() BlendState {
	switch m {
	case BlendAdditive:
		return BlendState{Enabled: true, Src: BlendFactorOne, Dst: BlendFactorOne, Op: BlendOpAdd}
	case BlendSrcAlpha:
		return BlendState{Enabled: true, Src: BlendFactorSrcAlpha, Dst: BlendFactorOneMinusSrcAlpha, Op: BlendOpAdd}
	default:
		return BlendState{}
	}
}

// PipelineOptions are the graphics-pipeline state fields that a material
// may override per-field from a render pass's defaults. A nil field means
// "not set at this level"; resolution walks material override, then pass
// default, then the engine default.
type PipelineOptions struct {
	CullMode         *CullMode
	FrontCCW         *bool
	AlphaBlend       *AlphaBlendMode
	DepthEnable      *bool
	DepthFunc        *DepthFunc
	DepthWriteEnable *bool
}

// engineDefaults are applied when neither a material override nor a pass
// default supplies a field: cull back, front CCW, no alpha blend, depth
// test less, depth write on.
func engineDefaults() PipelineOptions {
	cull, ccw, blend, depthOn, depthFn, depthWrite := CullBack, true, BlendNone, true, DepthLess, true
	return PipelineOptions{
		CullMode: &cull, FrontCCW: &ccw, AlphaBlend: &blend,
		DepthEnable: &depthOn, DepthFunc: &depthFn, DepthWriteEnable: &depthWrite,
	}
}

// resolveOptions combines a material's override over a pass's defaults
// over the engine defaults, field by field.
func resolveOptions(override, base *PipelineOptions) PipelineOptions {
	resolved := engineDefaults()
	apply := func(o *PipelineOptions) {
		if o == nil {
			return
		}
		if o.CullMode != nil {
			resolved.CullMode = o.CullMode
		}
		if o.FrontCCW != nil {
			resolved.FrontCCW = o.FrontCCW
		}
		if o.AlphaBlend != nil {
			resolved.AlphaBlend = o.AlphaBlend
		}
		if o.DepthEnable != nil {
			resolved.DepthEnable = o.DepthEnable
		}
		if o.DepthFunc != nil {
			resolved.DepthFunc = o.DepthFunc
		}
		if o.DepthWriteEnable != nil {
			resolved.DepthWriteEnable = o.DepthWriteEnable
		}
	}
	apply(base)
	apply(override)
	return resolved
}

// DepthPolicy configures depth-buffer testing for a render pass.
type DepthPolicy struct {
	Enable      bool
	Func        DepthFunc
	WriteEnable bool
}

// RenderPass is a material-type filter and a fixed block of graphics state
// (cull, blend, depth, depth-sort) consumed once per frame by the scene
// render loop.
type RenderPass struct {
	MaterialType string
	CullMode     CullMode
	DepthSort    DepthSort
	AlphaBlend   AlphaBlendMode
	Depth        *DepthPolicy
	Defaults     PipelineOptions
}

// matches reports whether a material's type tag matches this pass's
// filter, case-insensitively.
func (rp *RenderPass) matches(materialType string) bool {
	return strings.EqualFold(rp.MaterialType, materialType)
}

// RenderPipeline is an ordered list of render passes, rendered in declared
// order. Each pass is also assigned a dense, reused global index used as a
// key into every live material's per-pass state table.
type RenderPipeline struct {
	Name          string
	Passes        []RenderPass
	GlobalIndices []int
}
