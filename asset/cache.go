// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package asset mediates between data loading (package load) and resource
// consumption by render and scene. It owns five typed caches keyed by a
// case-insensitive name: render-pipelines and materials are registries
// populated in bulk at startup (get never constructs a missing entry);
// shaders, textures, and render-models are lazy caches that invoke a
// loader closure on miss and memoize the result for the cache's lifetime.
package asset

import (
	"fmt"
	"log"
	"strings"

	"github.com/tacticus/engine/math/lin"
	"github.com/tacticus/engine/render"
)

// ShaderLoader constructs a Shader by name from its backing source.
type ShaderLoader func(name string) (*render.Shader, error)

// TextureLoader constructs a Texture by name from its backing source.
type TextureLoader func(name string) (*render.Texture, error)

// ModelPartDescriptor is the raw, unresolved data for one render-model
// part: a mesh plus the name of the material it binds to, its billboard
// mode, its per-part material-parameter overrides (keyed by shader
// property name, texture-kind overrides carrying an unresolved texture
// name), a visibility flag, and the root/parent transforms it is attached
// under.
type ModelPartDescriptor struct {
	Mesh      *render.Mesh
	Material  string
	Billboard render.BillboardMode
	Overrides map[string]render.PropertyValue
	Visible   bool
	Root      *lin.M4
	Parent    *lin.M4
}

// ModelDescriptor is the raw, unresolved data a ModelLoader returns for a
// render-model: an ordered list of parts. The cache resolves each part's
// material name through its own material registry, and eagerly warms the
// texture cache for every texture-kind override, respecting the
// cross-cache dependency order (materials and textures before
// render-models).
type ModelDescriptor struct {
	Parts []ModelPartDescriptor
}

// ModelLoader constructs a ModelDescriptor by name from its backing source.
type ModelLoader func(name string) (ModelDescriptor, error)

// Cache is the asset cache. Registry supplies the render-pipeline and
// material registries (populated in bulk by the host before first use);
// shaders, textures, and render-models are resolved lazily through the
// loader closures supplied to NewCache.
type Cache struct {
	Registry *render.PipelineRegistry

	loadShader  ShaderLoader
	loadTexture TextureLoader
	loadModel   ModelLoader

	shaders  map[string]*render.Shader
	textures map[string]*render.Texture
	models   map[string]*render.RenderModel

	loggedMisses map[string]bool
}

// NewCache returns an asset cache backed by registry and the three lazy
// loaders. Any loader may be nil, in which case its Get* always misses.
func NewCache(registry *render.PipelineRegistry, loadShader ShaderLoader, loadTexture TextureLoader, loadModel ModelLoader) *Cache {
	return &Cache{
		Registry:     registry,
		loadShader:   loadShader,
		loadTexture:  loadTexture,
		loadModel:    loadModel,
		shaders:      map[string]*render.Shader{},
		textures:     map[string]*render.Texture{},
		models:       map[string]*render.RenderModel{},
		loggedMisses: map[string]bool{},
	}
}

func cacheKey(name string) string { return strings.ToLower(name) }

// GetRenderPipeline returns the registered pipeline named name, or nil if
// it was never registered. Never constructs a new entry.
func (c *Cache) GetRenderPipeline(name string) *render.RenderPipeline {
	p, err := c.Registry.GetPipeline(name)
	if err != nil {
		return nil
	}
	return p
}

// GetMaterial returns the registered material named name, or nil if it was
// never registered. Never constructs a new entry.
func (c *Cache) GetMaterial(name string) *render.Material {
	m, err := c.Registry.GetMaterial(name)
	if err != nil {
		return nil
	}
	return m
}

// GetShader fetches from the shader cache, lazily loading and caching on
// first access. A load failure is logged at most once per name; nil is
// returned both on failure and on a name with no configured loader.
func (c *Cache) GetShader(name string) *render.Shader {
	k := cacheKey(name)
	if s, ok := c.shaders[k]; ok {
		return s
	}
	if c.loadShader == nil {
		c.logMiss("shader", name, fmt.Errorf("%w: no shader loader configured", ErrNotFound))
		return nil
	}
	s, err := c.loadShader(name)
	if err != nil {
		c.logMiss("shader", name, err)
		return nil
	}
	c.shaders[k] = s
	return s
}

// DropShader removes name from the shader cache.
func (c *Cache) DropShader(name string) { delete(c.shaders, cacheKey(name)) }

// GetTexture fetches from the texture cache, lazily loading and caching on
// first access. A load failure is logged at most once per name; nil is
// returned both on failure and on a name with no configured loader.
func (c *Cache) GetTexture(name string) *render.Texture {
	k := cacheKey(name)
	if t, ok := c.textures[k]; ok {
		return t
	}
	if c.loadTexture == nil {
		c.logMiss("texture", name, fmt.Errorf("%w: no texture loader configured", ErrNotFound))
		return nil
	}
	t, err := c.loadTexture(name)
	if err != nil {
		c.logMiss("texture", name, err)
		return nil
	}
	c.textures[k] = t
	return t
}

// DropTexture removes name from the texture cache.
func (c *Cache) DropTexture(name string) { delete(c.textures, cacheKey(name)) }

// GetRenderModel fetches from the render-model cache, lazily loading and
// composing on first access: the loader supplies an ordered part list,
// each part's material name resolved through the material registry and
// each part's texture-kind overrides warmed through the texture cache
// (cross-cache dependency composition). A load failure, or a part
// referencing an unregistered material, is logged at most once per name
// and fails the whole model; an unresolvable texture override is logged
// but does not fail the model, matching GetTexture's own miss handling.
func (c *Cache) GetRenderModel(name string) *render.RenderModel {
	k := cacheKey(name)
	if m, ok := c.models[k]; ok {
		return m
	}
	if c.loadModel == nil {
		c.logMiss("model", name, fmt.Errorf("%w: no render-model loader configured", ErrNotFound))
		return nil
	}
	desc, err := c.loadModel(name)
	if err != nil {
		c.logMiss("model", name, err)
		return nil
	}
	parts := make([]render.RenderPart, 0, len(desc.Parts))
	for _, pd := range desc.Parts {
		material := c.GetMaterial(pd.Material)
		if material == nil {
			c.logMiss("model", name, fmt.Errorf("%w: render-model %q references unregistered material %q", ErrNotFound, name, pd.Material))
			return nil
		}
		for _, ov := range pd.Overrides {
			if ov.Kind == render.PropTexture && ov.Texture != "" {
				c.GetTexture(ov.Texture)
			}
		}
		parts = append(parts, render.RenderPart{
			Mesh:      pd.Mesh,
			Material:  material,
			Billboard: pd.Billboard,
			Overrides: pd.Overrides,
			Visible:   pd.Visible,
			Root:      pd.Root,
			Parent:    pd.Parent,
		})
	}
	model := render.NewRenderModel(name, parts)
	c.models[k] = model
	return model
}

// DropRenderModel removes name from the render-model cache.
func (c *Cache) DropRenderModel(name string) { delete(c.models, cacheKey(name)) }

// logMiss logs a negative result at most once per (kind, name) pair per
// process, matching the cache's "first-occurrence only" negative-caching
// rule.
func (c *Cache) logMiss(kind, name string, err error) {
	k := kind + ":" + cacheKey(name)
	if c.loggedMisses[k] {
		return
	}
	c.loggedMisses[k] = true
	log.Printf("asset: could not fetch %s %q: %v", kind, name, err)
}
