// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"fmt"
	"strings"
)

// PipelineRegistry owns the dense, reused global render-pass index space
// and the set of currently alive materials, compiling per-(material×pass)
// state whenever a pipeline or a material becomes alive, and dropping it
// when either goes away. This is the single-threaded coordinator described
// by the invariant that a material's per-pass PSO exists iff a render
// pipeline containing a matching pass is currently alive.
type PipelineRegistry struct {
	freeIndices []int
	nextIndex   int

	materials map[string]*Material
	pipelines map[string]*RenderPipeline
}

// NewPipelineRegistry returns an empty registry.
func NewPipelineRegistry() *PipelineRegistry {
	return &PipelineRegistry{
		materials: map[string]*Material{},
		pipelines: map[string]*RenderPipeline{},
	}
}

func (r *PipelineRegistry) allocIndex() int {
	if n := len(r.freeIndices); n > 0 {
		idx := r.freeIndices[n-1]
		r.freeIndices = r.freeIndices[:n-1]
		return idx
	}
	idx := r.nextIndex
	r.nextIndex++
	return idx
}

func (r *PipelineRegistry) releaseIndex(idx int) {
	r.freeIndices = append(r.freeIndices, idx)
}

// RegisterMaterial adds a material to the alive set, compiling its state
// for every pass of every currently registered pipeline whose material-type
// filter matches. Lookup by Name is case-insensitive.
func (r *PipelineRegistry) RegisterMaterial(m *Material) error {
	key := strings.ToLower(m.Name)
	m.owner = r
	r.materials[key] = m
	for _, p := range r.pipelines {
		for i, pass := range p.Passes {
			if pass.matches(m.Type) {
				if err := m.compilePass(p.GlobalIndices[i], pass); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// GetMaterial returns the alive material registered under name, or
// ErrNotFound. Lookup is case-insensitive.
func (r *PipelineRegistry) GetMaterial(name string) (*Material, error) {
	if m, ok := r.materials[strings.ToLower(name)]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: material %q", ErrNotFound, name)
}

// DropMaterial removes a material from the alive set and clears its
// compiled per-pass state.
func (r *PipelineRegistry) DropMaterial(name string) {
	key := strings.ToLower(name)
	if m, ok := r.materials[key]; ok {
		for idx := range m.perPass {
			m.dropPass(idx)
		}
		delete(r.materials, key)
	}
}

// RegisterPipeline allocates global indices for each of passes (reusing
// freed indices first) and compiles state for every alive material whose
// type matches a pass's filter. Lookup by name is case-insensitive.
func (r *PipelineRegistry) RegisterPipeline(name string, passes []RenderPass) (*RenderPipeline, error) {
	p := &RenderPipeline{Name: name, Passes: passes, GlobalIndices: make([]int, len(passes))}
	for i := range passes {
		p.GlobalIndices[i] = r.allocIndex()
	}
	for i, pass := range passes {
		for _, m := range r.materials {
			if pass.matches(m.Type) {
				if err := m.compilePass(p.GlobalIndices[i], pass); err != nil {
					return nil, err
				}
			}
		}
	}
	r.pipelines[strings.ToLower(name)] = p
	return p, nil
}

// GetPipeline returns the registered pipeline named name, or ErrNotFound.
// Lookup is case-insensitive.
func (r *PipelineRegistry) GetPipeline(name string) (*RenderPipeline, error) {
	if p, ok := r.pipelines[strings.ToLower(name)]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: render pipeline %q", ErrNotFound, name)
}

// DropPipeline releases a pipeline's global indices back to the free list
// and drops every alive material's compiled state at those indices.
func (r *PipelineRegistry) DropPipeline(p *RenderPipeline) {
	delete(r.pipelines, strings.ToLower(p.Name))
	for _, idx := range p.GlobalIndices {
		for _, m := range r.materials {
			m.dropPass(idx)
		}
		r.releaseIndex(idx)
	}
}

// MaxDirectionalLights returns the largest NumDirectionalLights declared
// by any alive material, used to size the scene's directional-light
// constant buffer.
func (r *PipelineRegistry) MaxDirectionalLights() int {
	max := 0
	for _, m := range r.materials {
		if m.NumDirectionalLights > max {
			max = m.NumDirectionalLights
		}
	}
	return max
}

// MaxPointLights returns the largest NumPointLights declared by any alive
// material.
func (r *PipelineRegistry) MaxPointLights() int {
	max := 0
	for _, m := range r.materials {
		if m.NumPointLights > max {
			max = m.NumPointLights
		}
	}
	return max
}
