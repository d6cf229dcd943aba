// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import "github.com/tacticus/engine/math/lin"

// BillboardMode is how a render-model part reorients itself relative to the
// camera, wind, or main light.
type BillboardMode uint32

// Supported billboard modes.
const (
	BillboardNone BillboardMode = iota
	BillboardParallel
	BillboardFace
	BillboardZView
	BillboardZWind
	BillboardZLight
	BillboardSunGlow
	BillboardSun
)

// RenderPart is one independently-parameterized piece of a render-model: a
// mesh bound to a material, with its own billboard behavior, per-part
// material-parameter overrides, a visibility flag, and the root/parent
// transforms it is attached under (root is the model's base transform,
// parent is the attachment bone's parent-relative transform).
type RenderPart struct {
	Mesh      *Mesh
	Material  *Material
	Billboard BillboardMode
	Overrides map[string]PropertyValue
	Visible   bool
	Root      *lin.M4
	Parent    *lin.M4
}

// RenderModel is the cacheable composite the asset cache hands back for
// get_render_model: an ordered list of render parts, each combining an
// already-cached mesh, material, and the material-parameter overrides and
// attachment data the source model declared for it. Unlike the
// render-pipeline and material registries, render-models are produced by
// the asset cache's lazy loader, composing already-cached meshes,
// materials, and textures rather than owning new GPU state itself.
type RenderModel struct {
	Name  string
	Parts []RenderPart
}

// NewRenderModel composites an already-resolved, ordered part list into a
// named, cacheable render-model.
func NewRenderModel(name string, parts []RenderPart) *RenderModel {
	return &RenderModel{Name: name, Parts: parts}
}
