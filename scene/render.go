// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"fmt"
	"sort"

	"github.com/tacticus/engine/math/lin"
	"github.com/tacticus/engine/render"
)

// MeshInstance is one drawable mesh placed in world space, ready to be
// filtered into whichever render passes its material's type matches.
type MeshInstance struct {
	Mesh     *render.Mesh
	Material *render.Material
	World    *lin.M4
	InvWorld *lin.M4
}

// DynamicLight is one directional light contributed to the renderer's
// per-frame light buffer.
type DynamicLight struct {
	Direction lin.V3
	Intensity float64
	Diffuse   lin.V3
	Specular  lin.V3
}

// Sprite is one screen-space billboard submitted to RenderSprites.
type Sprite struct {
	X, Y, W, H float32
	U0, V0     float32
	U1, V1     float32
	Scissor    render.ScissorRect
}

const spriteBatchSize = 1024

// Renderer walks a Scene (or a caller-supplied mesh-instance slice) each
// frame, filtering and depth-sorting per render pass and dispatching
// resolved draw calls through a Device.
type Renderer struct {
	Device   render.Device
	Registry *render.PipelineRegistry

	lights []DynamicLight

	meshParams []byte
}

// NewRenderer returns a Renderer dispatching through device, validating
// materials against registry's alive-material set.
func NewRenderer(device render.Device, registry *render.PipelineRegistry) *Renderer {
	return &Renderer{Device: device, Registry: registry}
}

// SetDynamicLights rewrites the renderer's directional-light buffer to size
// Registry.MaxDirectionalLights() over all alive materials: excess input
// lights are dropped, missing slots are zero-filled with direction (0,0,-1).
func (r *Renderer) SetDynamicLights(lights []DynamicLight) {
	r.lights = lightBuffer(lights, r.Registry.MaxDirectionalLights())
}

// Lights returns the renderer's current, size-normalized directional-light
// buffer.
func (r *Renderer) Lights() []DynamicLight { return r.lights }

// lightBuffer returns exactly n entries: lights truncated if it has more,
// zero-filled (direction 0,0,-1) if it has fewer.
func lightBuffer(lights []DynamicLight, n int) []DynamicLight {
	out := make([]DynamicLight, n)
	for i := 0; i < n; i++ {
		if i < len(lights) {
			out[i] = lights[i]
		} else {
			out[i] = DynamicLight{Direction: lin.V3{X: 0, Y: 0, Z: -1}}
		}
	}
	return out
}

func viewConstantsOf(cam *Camera) *render.ViewConstants {
	return &render.ViewConstants{
		View:        render.Mat4ToFloat32(cam.View()),
		ViewProj:    render.Mat4ToFloat32(cam.ViewProjection()),
		InvViewProj: render.Mat4ToFloat32(cam.InverseViewProjection()),
	}
}

// Render validates every instance, then for each pass in pipeline (in
// declared order) filters instances whose material has live state for that
// pass, depth-sorts them per the pass's policy, and dispatches one draw
// call per instance.
func (r *Renderer) Render(pipeline *render.RenderPipeline, instances []MeshInstance, cam *Camera) error {
	for _, mi := range instances {
		dc := render.DrawCall{Mesh: mi.Mesh, Material: mi.Material}
		if err := dc.ValidateArguments(r.Registry); err != nil {
			return err
		}
	}

	view := viewConstantsOf(cam)
	passMeshes := make([]MeshInstance, 0, len(instances))

	for i, pass := range pipeline.Passes {
		globalIndex := pipeline.GlobalIndices[i]
		passMeshes = passMeshes[:0]
		for _, mi := range instances {
			if mi.Material.HasPass(globalIndex) {
				passMeshes = append(passMeshes, mi)
			}
		}

		sortPassMeshes(passMeshes, pass.DepthSort, cam)

		for _, mi := range passMeshes {
			params, err := mi.Material.WriteParams(globalIndex, nil, r.meshParams)
			if err != nil {
				return err
			}
			r.meshParams = params

			instConsts := &render.InstanceConstants{
				World:    render.Mat4ToFloat32(mi.World),
				InvWorld: render.Mat4ToFloat32(mi.InvWorld),
			}
			dc := render.DrawCall{
				Mesh: mi.Mesh, Material: mi.Material, PassGlobalIndex: globalIndex,
				Params: params, View: view, Instance: instConsts,
			}
			if err := r.Device.Draw(dc); err != nil {
				return fmt.Errorf("%w: pass %d: %v", render.ErrResourceCreation, globalIndex, err)
			}
		}
	}
	return nil
}

// sortPassMeshes orders meshes in place per policy, using the clip-space Z
// of each mesh's world-space translation transformed by view×projection
// (Camera.Distance) as its view distance (larger is farther).
func sortPassMeshes(meshes []MeshInstance, policy render.DepthSort, cam *Camera) {
	if policy == render.SortNone {
		return
	}
	distance := func(mi MeshInstance) float64 {
		return cam.Distance(mi.World.Wx, mi.World.Wy, mi.World.Wz)
	}
	switch policy {
	case render.SortFrontToBack:
		sort.SliceStable(meshes, func(i, j int) bool { return distance(meshes[i]) < distance(meshes[j]) })
	case render.SortBackToFront:
		sort.SliceStable(meshes, func(i, j int) bool { return distance(meshes[i]) > distance(meshes[j]) })
	}
}

// RenderSprites batches sprites into groups of at most spriteBatchSize,
// additionally flushing a batch early whenever the scissor rect changes,
// and issues one indexed draw per batch (preceded by a Device.Scissor call
// for the batch's rect) per render pass where material has live state.
func (r *Renderer) RenderSprites(pipeline *render.RenderPipeline, sprites []Sprite, material *render.Material, overrides map[string]render.PropertyValue) error {
	if material == nil {
		return fmt.Errorf("%w: RenderSprites requires a material", render.ErrBadArgument)
	}

	batches := spriteBatches(sprites)
	for i := range pipeline.Passes {
		globalIndex := pipeline.GlobalIndices[i]
		if !material.HasPass(globalIndex) {
			continue
		}
		for _, batch := range batches {
			mesh, err := spriteBatchMesh(batch)
			if err != nil {
				return err
			}
			params, err := material.WriteParams(globalIndex, overrides, r.meshParams)
			if err != nil {
				return err
			}
			r.meshParams = params
			r.Device.Scissor(batch[0].Scissor)
			dc := render.DrawCall{
				Mesh: mesh, Material: material, PassGlobalIndex: globalIndex,
				Params: params, Overrides: overrides,
			}
			if err := r.Device.Draw(dc); err != nil {
				return fmt.Errorf("%w: sprite batch: %v", render.ErrResourceCreation, err)
			}
		}
	}
	return nil
}

// spriteBatches splits sprites into runs of at most spriteBatchSize that
// additionally break whenever the scissor rect changes, so each returned
// batch can be drawn under a single active scissor rect.
func spriteBatches(sprites []Sprite) [][]Sprite {
	var batches [][]Sprite
	for start := 0; start < len(sprites); {
		end := start + 1
		for end < len(sprites) && end-start < spriteBatchSize && sprites[end].Scissor == sprites[start].Scissor {
			end++
		}
		batches = append(batches, sprites[start:end])
		start = end
	}
	return batches
}

// spriteBatchMesh builds a ring-buffer-style quad mesh for one sprite
// batch: four position/uv vertices per sprite and six counter-clockwise
// winding indices forming two triangles.
func spriteBatchMesh(batch []Sprite) (*render.Mesh, error) {
	verts := make([]render.Vertex, 0, len(batch)*4)
	idx := make([]uint16, 0, len(batch)*6)
	for i, s := range batch {
		base := uint16(i * 4)
		verts = append(verts,
			render.Vertex{Position: [3]float32{s.X, s.Y, 0}, UV: [2]float32{s.U0, s.V0}},
			render.Vertex{Position: [3]float32{s.X + s.W, s.Y, 0}, UV: [2]float32{s.U1, s.V0}},
			render.Vertex{Position: [3]float32{s.X + s.W, s.Y + s.H, 0}, UV: [2]float32{s.U1, s.V1}},
			render.Vertex{Position: [3]float32{s.X, s.Y + s.H, 0}, UV: [2]float32{s.U0, s.V1}},
		)
		idx = append(idx, base, base+1, base+2, base, base+2, base+3)
	}
	return render.NewMesh("sprite-batch", verts, idx)
}
