// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package asset

import (
	"github.com/tacticus/engine/load"
	"github.com/tacticus/engine/math/lin"
	"github.com/tacticus/engine/render"
)

// DescribeModel flattens a parsed model binary (load.ParseModel's result)
// into a ModelDescriptor: one part per submesh, carrying the submesh's
// shader-info parameters as render overrides and the owning mesh's
// visibility, billboard mode, and bone attachment transforms. The model's
// root bone (index 0, if any) supplies every part's root-transform; a
// part's own attachment bone (ModelMesh.BoneIndex, if connected) supplies
// its parent-transform and billboard mode.
func DescribeModel(m load.Model) ModelDescriptor {
	var root *lin.M4
	if len(m.Bones) > 0 {
		root = m.Bones[0].Transform
	}

	var desc ModelDescriptor
	for _, mm := range m.Meshes {
		billboard := render.BillboardNone
		var parent *lin.M4
		if mm.BoneIndex >= 0 && int(mm.BoneIndex) < len(m.Bones) {
			bone := m.Bones[mm.BoneIndex]
			billboard = bone.Billboard
			parent = bone.Transform
		}
		for _, sm := range mm.Submeshes {
			overrides := make(map[string]render.PropertyValue, len(sm.Params))
			for _, p := range sm.Params {
				overrides[p.Name] = materialParamValue(p)
			}
			desc.Parts = append(desc.Parts, ModelPartDescriptor{
				Mesh:      sm.Mesh,
				Material:  sm.ShaderName,
				Billboard: billboard,
				Overrides: overrides,
				Visible:   mm.Visible,
				Root:      root,
				Parent:    parent,
			})
		}
	}
	return desc
}

// materialParamValue converts a chunk-format shader-info parameter into the
// render package's tagged property-value union.
func materialParamValue(p load.MaterialParam) render.PropertyValue {
	switch p.Kind {
	case load.ParamInt:
		return render.IntValue(p.Int)
	case load.ParamFloat:
		return render.FloatValue(p.Float)
	case load.ParamFloat3:
		return render.Vec3Value(p.Float3[0], p.Float3[1], p.Float3[2])
	case load.ParamFloat4:
		return render.Vec4Value(p.Float4[0], p.Float4[1], p.Float4[2], p.Float4[3])
	case load.ParamTexture:
		return render.TextureValue(p.Texture)
	default:
		return render.PropertyValue{}
	}
}
