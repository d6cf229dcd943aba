// Copyright © 2013-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"strings"
)

// VarKind is the reflected type of a shader-declared resource variable.
type VarKind int

// Supported reflected shader variable kinds.
const (
	VarInt VarKind = iota
	VarFloat
	VarVec2
	VarVec3
	VarVec4
	VarMat4
	VarTexture
)

// ShaderVar is one resource variable discovered by scanning a shader's
// source, keyed by its declared name.
type ShaderVar struct {
	Name string
	Kind VarKind
}

// Shader is the immutable, opaque handle pair (vertex stage + pixel stage)
// compiled from a single source file with entry points vs_main and
// ps_main. Reflected resource variables drive the material/pipeline state
// machine's static/dynamic classification.
type Shader struct {
	name   string
	source []string // source lines, entry points vs_main/ps_main.
	vars   []ShaderVar
	bound  bool // true once accepted by a graphics backend.
}

// NewShader parses source into a Shader named name, without yet binding it
// to any graphics backend.
func NewShader(name string, source []string) *Shader {
	s := &Shader{name: name, source: source}
	s.reflect()
	return s
}

// Name returns the shader's unique identifier.
func (s *Shader) Name() string { return s.name }

// Source returns the shader's single combined source, vs_main/ps_main included.
func (s *Shader) Source() []string { return s.source }

// Vars returns every resource variable reflected from the shader source.
func (s *Shader) Vars() []ShaderVar { return s.vars }

// Bound reports whether a graphics backend has accepted this shader.
func (s *Shader) Bound() bool { return s.bound }

// SetBound marks the shader as accepted (or rejected) by a backend. Called
// by a Device implementation after NewShader succeeds against the GPU.
func (s *Shader) SetBound(bound bool) { s.bound = bound }

// reflect scans declarations of the form:
//
//	uniform <kind> <name>;
//	texture <name>;
//
// into ShaderVar entries. This mirrors a real reflection pass closely
// enough to drive static/dynamic variable classification without needing
// an actual shader compiler in-process.
func (s *Shader) reflect() {
	for _, line := range s.source {
		fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "uniform":
			if len(fields) < 3 {
				continue
			}
			kind, ok := kindOf(fields[1])
			if !ok {
				continue
			}
			s.vars = append(s.vars, ShaderVar{Name: fields[2], Kind: kind})
		case "texture":
			s.vars = append(s.vars, ShaderVar{Name: fields[1], Kind: VarTexture})
		}
	}
}

func kindOf(token string) (VarKind, bool) {
	switch token {
	case "int":
		return VarInt, true
	case "float":
		return VarFloat, true
	case "vec2", "float2":
		return VarVec2, true
	case "vec3", "float3":
		return VarVec3, true
	case "vec4", "float4":
		return VarVec4, true
	case "mat4", "matrix":
		return VarMat4, true
	}
	return 0, false
}
