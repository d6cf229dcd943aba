// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import "fmt"

// Device shields the material/pipeline state machine and the scene render
// loop from a concrete GPU API. All methods must be called from the
// rendering thread; there is no internal concurrency and no suspension
// point beyond the calls themselves.
//
// A Device implementation binds one of Direct3D, OpenGL, or Vulkan; none
// is provided here.
type Device interface {
	// CreateShader compiles s against the backend and marks it bound.
	CreateShader(s *Shader) error

	// CreateTexture uploads t's backing buffer and marks it bound.
	CreateTexture(t *Texture) error

	// CreateMesh uploads m's vertex and index buffers and marks it bound.
	CreateMesh(m *Mesh) error

	// Viewport sets the active render-target dimensions.
	Viewport(width, height int)

	// Scissor restricts subsequent draws to r, until the next Scissor call.
	Scissor(r ScissorRect)

	// Clear clears the active render target and depth buffer to color.
	Clear(r, g, b, a float32)

	// Draw issues one triangle-list draw call under the graphics state
	// compiled for (mesh.material × renderPassGlobalIndex), binding the
	// constant buffer bytes in params and the textures resolved by
	// material.ResolveTexture for every texture-kind property.
	Draw(call DrawCall) error
}

// ScissorRect restricts rendering to an axis-aligned pixel rectangle. The
// zero value (all fields 0) means "no scissor rect active" and disables
// scissoring.
type ScissorRect struct {
	MinX, MinY, MaxX, MaxY float32
}

// ViewConstants is the per-frame camera buffer a Device maps (with discard)
// once before walking a render pipeline's passes.
type ViewConstants struct {
	View        [16]float32
	ViewProj    [16]float32
	InvViewProj [16]float32
}

// InstanceConstants is the per-draw world-transform buffer a Device maps
// (with discard) before each indexed draw.
type InstanceConstants struct {
	World    [16]float32
	InvWorld [16]float32
}

// DrawCall is one fully-resolved unit of rendering work handed to a Device.
type DrawCall struct {
	Mesh            *Mesh
	Material        *Material
	PassGlobalIndex int
	Params          []byte
	Overrides       map[string]PropertyValue
	View            *ViewConstants
	Instance        *InstanceConstants
}

// ValidateArguments performs the BadArgument checks a scene render loop
// makes up front, before any pipeline pass is walked: a nil mesh or
// material, or a material produced by a different renderer (tracked via
// Owner()).
func (dc *DrawCall) ValidateArguments(owner interface{}) error {
	if dc.Mesh == nil {
		return fmt.Errorf("%w: draw call has a nil mesh", ErrBadArgument)
	}
	if dc.Material == nil {
		return fmt.Errorf("%w: draw call has a nil material", ErrBadArgument)
	}
	if dc.Material.Owner() != nil && dc.Material.Owner() != owner {
		return fmt.Errorf("%w: material %q was registered with a different renderer", ErrBadArgument, dc.Material.Name)
	}
	return nil
}

// Validate performs every ValidateArguments check plus a final check that
// the material has compiled state for PassGlobalIndex. A Device
// implementation calls this immediately before touching GPU state.
func (dc *DrawCall) Validate(owner interface{}) error {
	if err := dc.ValidateArguments(owner); err != nil {
		return err
	}
	if !dc.Material.HasPass(dc.PassGlobalIndex) {
		return fmt.Errorf("%w: material %q has no compiled state for pass %d", ErrBadArgument, dc.Material.Name, dc.PassGlobalIndex)
	}
	return nil
}
