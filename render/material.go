// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"fmt"
	"log/slog"
)

// PropertyKind is the type tag of a Material property value.
type PropertyKind int

// Supported material property kinds.
const (
	PropInt PropertyKind = iota
	PropFloat
	PropVec2
	PropVec3
	PropVec4
	PropMat4
	PropTexture
)

// PropertyValue is a tagged union over a material property's possible
// value types; only the field matching Kind is meaningful.
type PropertyValue struct {
	Kind    PropertyKind
	Int     int32
	Float   float32
	Vec2    [2]float32
	Vec3    [3]float32
	Vec4    [4]float32
	Mat4    [16]float32
	Texture string // referenced texture name; empty means "no override".
}

// IntValue constructs an int32-typed PropertyValue.
func IntValue(v int32) PropertyValue { return PropertyValue{Kind: PropInt, Int: v} }

// FloatValue constructs a float-typed PropertyValue.
func FloatValue(v float32) PropertyValue { return PropertyValue{Kind: PropFloat, Float: v} }

// Vec2Value constructs a vec2-typed PropertyValue.
func Vec2Value(x, y float32) PropertyValue { return PropertyValue{Kind: PropVec2, Vec2: [2]float32{x, y}} }

// Vec3Value constructs a vec3-typed PropertyValue.
func Vec3Value(x, y, z float32) PropertyValue {
	return PropertyValue{Kind: PropVec3, Vec3: [3]float32{x, y, z}}
}

// Vec4Value constructs a vec4-typed PropertyValue.
func Vec4Value(x, y, z, w float32) PropertyValue {
	return PropertyValue{Kind: PropVec4, Vec4: [4]float32{x, y, z, w}}
}

// Mat4Value constructs a mat4-typed PropertyValue from 16 row-major values.
func Mat4Value(m [16]float32) PropertyValue { return PropertyValue{Kind: PropMat4, Mat4: m} }

// TextureValue constructs a texture-typed PropertyValue naming a texture.
func TextureValue(name string) PropertyValue { return PropertyValue{Kind: PropTexture, Texture: name} }

// byteSize returns how many bytes this value's kind occupies in a constant
// buffer. Texture properties occupy zero constant-buffer bytes; they bind a
// shader resource view instead.
func (k PropertyKind) byteSize() int {
	switch k {
	case PropInt, PropFloat:
		return 4
	case PropVec2:
		return 8
	case PropVec3:
		return 12
	case PropVec4:
		return 16
	case PropMat4:
		return 64
	default:
		return 0
	}
}

// Property is one named, typed, default-valued material parameter.
type Property struct {
	Name    string
	Default PropertyValue
}

// predefined shader variable names the material/pipeline state machine
// reserves; a material property may not reuse one of these.
const (
	varInstanceConstants       = "InstanceConstants"
	varViewConstants           = "ViewConstants"
	varMaterialConstants       = "Material"
	varDirectionalLightConsts  = "DirectionalLightConstants"
)

func isPredefinedName(name string) bool {
	switch name {
	case varInstanceConstants, varViewConstants, varMaterialConstants, varDirectionalLightConsts:
		return true
	}
	return false
}

// passState is the compiled state for one (material × render pass)
// combination: the resolved pipeline options, the static/dynamic variable
// classification, and the byte layout of the material's constant buffer.
type passState struct {
	options PipelineOptions
	blend   BlendState
	static  []ShaderVar
	dynamic []ShaderVar
	layout  []propertyLayout
	bufSize int
}

// propertyLayout records the 16-byte-aligned byte offset assigned to one
// non-texture property, in declaration order.
type propertyLayout struct {
	name   string
	offset int
	size   int
}

// Material is a shader plus typed parameters plus pipeline-option
// overrides, realized lazily into a PSO and a binding layout for every
// render pass whose material-type filter it matches.
type Material struct {
	Name       string
	Type       string
	Shader     *Shader
	Properties []Property
	Options    *PipelineOptions

	NumDirectionalLights int
	NumPointLights       int

	// owner identifies the registry this material was compiled under, used
	// to reject draw calls for meshes produced by a different renderer.
	owner interface{}

	perPass map[int]*passState
}

// NewMaterial constructs a Material. Properties are validated against the
// shader's reflected variables when the material is registered with a
// PipelineRegistry, not at construction time.
func NewMaterial(name, materialType string, shader *Shader, props []Property) *Material {
	return &Material{
		Name:       name,
		Type:       materialType,
		Shader:     shader,
		Properties: props,
		perPass:    map[int]*passState{},
	}
}

// Owner reports the registry this material is alive under, or nil.
func (m *Material) Owner() interface{} { return m.owner }

// HasPass reports whether this material has compiled state for the global
// render-pass index i.
func (m *Material) HasPass(i int) bool {
	_, ok := m.perPass[i]
	return ok
}

// BlendState returns the GPU blend-equation triple compiled for the global
// render-pass index globalIndex, derived from the material's resolved
// AlphaBlend option. Returns the zero (disabled) BlendState if the material
// has no compiled state for globalIndex.
func (m *Material) BlendState(globalIndex int) BlendState {
	ps, ok := m.perPass[globalIndex]
	if !ok {
		return BlendState{}
	}
	return ps.blend
}

// compilePass builds this material's PSO/SRB layout for one render pass,
// classifying its shader's reflected variables into static (bound once)
// and dynamic (rebound per draw) groups, and laying out its non-texture
// properties into a 16-byte-aligned constant buffer.
func (m *Material) compilePass(globalIndex int, pass RenderPass) error {
	if err := m.validateProperties(); err != nil {
		return err
	}

	ps := &passState{options: resolveOptions(m.Options, &pass.Defaults)}
	ps.blend = (*ps.options.AlphaBlend).BlendState()

	declared := map[string]Property{}
	for _, p := range m.Properties {
		declared[p.Name] = p
	}

	matched := map[string]bool{}
	for _, v := range m.Shader.Vars() {
		switch v.Name {
		case varInstanceConstants, varViewConstants:
			ps.static = append(ps.static, v)
			continue
		case varDirectionalLightConsts:
			ps.dynamic = append(ps.dynamic, v)
			continue
		}
		if _, ok := declared[v.Name]; ok {
			ps.dynamic = append(ps.dynamic, v)
			matched[v.Name] = true
			continue
		}
		return fmt.Errorf("%w: material %q: unmatched shader variable %q", ErrConfiguration, m.Name, v.Name)
	}

	offset := 0
	for _, p := range m.Properties {
		if p.Default.Kind == PropTexture {
			continue
		}
		size := p.Default.Kind.byteSize()
		if offset%16 != 0 && offset/16 != (offset+size-1)/16 {
			offset = ((offset / 16) + 1) * 16
		}
		ps.layout = append(ps.layout, propertyLayout{name: p.Name, offset: offset, size: size})
		offset += size
	}
	ps.bufSize = offset

	m.perPass[globalIndex] = ps
	return nil
}

// validateProperties checks declared properties against the shader: a
// declared property with no matching shader variable is logged as a
// warning and ignored, matching shaders under development that may
// optimize unused variables away. A property whose name collides with a
// predefined name, or whose type disagrees with its matching shader
// variable, is an ErrConfiguration error.
func (m *Material) validateProperties() error {
	byName := map[string]ShaderVar{}
	for _, v := range m.Shader.Vars() {
		byName[v.Name] = v
	}
	for _, p := range m.Properties {
		if isPredefinedName(p.Name) {
			return fmt.Errorf("%w: material %q: property %q collides with a predefined name",
				ErrConfiguration, m.Name, p.Name)
		}
		if _, ok := byName[p.Name]; !ok {
			slog.Warn("material property has no matching shader variable; ignored",
				"material", m.Name, "property", p.Name)
		}
		if v, ok := byName[p.Name]; ok && !kindsAgree(p.Default.Kind, v.Kind) {
			return fmt.Errorf("%w: material %q: property %q type does not match shader variable type",
				ErrConfiguration, m.Name, p.Name)
		}
	}
	return nil
}

func kindsAgree(p PropertyKind, v VarKind) bool {
	switch p {
	case PropInt:
		return v == VarInt
	case PropFloat:
		return v == VarFloat
	case PropVec2:
		return v == VarVec2
	case PropVec3:
		return v == VarVec3
	case PropVec4:
		return v == VarVec4
	case PropMat4:
		return v == VarMat4
	case PropTexture:
		return v == VarTexture
	}
	return false
}

// dropPass discards compiled state for a global render-pass index, e.g.
// when the owning render pipeline is dropped.
func (m *Material) dropPass(globalIndex int) {
	delete(m.perPass, globalIndex)
}

// WriteParams writes this material's constant buffer for pass globalIndex
// into dst, sizing it if needed. overrides supplies per-draw values by
// property name; properties absent from overrides use the material's
// declared default. Returns ErrBadArgument if the pass has no compiled
// state (the material was never registered against it).
func (m *Material) WriteParams(globalIndex int, overrides map[string]PropertyValue, dst []byte) ([]byte, error) {
	ps, ok := m.perPass[globalIndex]
	if !ok {
		return dst, fmt.Errorf("%w: material %q has no compiled state for pass %d", ErrBadArgument, m.Name, globalIndex)
	}
	if cap(dst) < ps.bufSize {
		dst = make([]byte, ps.bufSize)
	}
	dst = dst[:ps.bufSize]

	byName := map[string]Property{}
	for _, p := range m.Properties {
		byName[p.Name] = p
	}
	for _, layout := range ps.layout {
		val := byName[layout.name].Default
		if ov, ok := overrides[layout.name]; ok {
			val = ov
		}
		writePropertyValue(dst[layout.offset:layout.offset+layout.size], val)
	}
	return dst, nil
}

// ResolveTexture returns the texture name bound to property name for a
// draw, honoring overrides first then the material's declared default.
func (m *Material) ResolveTexture(name string, overrides map[string]PropertyValue) (string, bool) {
	if ov, ok := overrides[name]; ok && ov.Kind == PropTexture {
		return ov.Texture, true
	}
	for _, p := range m.Properties {
		if p.Name == name && p.Default.Kind == PropTexture {
			return p.Default.Texture, true
		}
	}
	return "", false
}

// TextureProperties returns every texture-typed property name declared on
// this material.
func (m *Material) TextureProperties() []string {
	var names []string
	for _, p := range m.Properties {
		if p.Default.Kind == PropTexture {
			names = append(names, p.Name)
		}
	}
	return names
}
