// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func testPass(materialType string) RenderPass {
	return RenderPass{MaterialType: materialType}
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func TestMaterialCompilePassLayoutAlignment(t *testing.T) {
	shader := NewShader("unlit", []string{
		"uniform mat4 ViewConstants;",
		"uniform vec3 Tint;",
		"uniform float Glossiness;",
		"uniform vec4 Fresnel;",
	})
	m := NewMaterial("Hull", "Opaque", shader, []Property{
		{Name: "Tint", Default: Vec3Value(1, 1, 1)},
		{Name: "Glossiness", Default: FloatValue(0.5)},
		{Name: "Fresnel", Default: Vec4Value(0, 0, 0, 1)},
	})

	if err := m.compilePass(0, testPass("Opaque")); err != nil {
		t.Fatalf("compilePass: %v", err)
	}
	ps := m.perPass[0]

	// Tint (vec3, 12 bytes) at 0; Glossiness (float, 4 bytes) fits in the
	// remainder of the 16-byte block at 12; Fresnel (vec4, 16 bytes) does
	// not fit in what remains of that block, so it bumps to 16.
	want := []propertyLayout{
		{name: "Tint", offset: 0, size: 12},
		{name: "Glossiness", offset: 12, size: 4},
		{name: "Fresnel", offset: 16, size: 16},
	}
	if len(ps.layout) != len(want) {
		t.Fatalf("layout length = %d, want %d", len(ps.layout), len(want))
	}
	for i, w := range want {
		if ps.layout[i] != w {
			t.Errorf("layout[%d] = %+v, want %+v", i, ps.layout[i], w)
		}
	}
	if ps.bufSize != 32 {
		t.Errorf("bufSize = %d, want 32", ps.bufSize)
	}
}

func TestMaterialCompilePassUnmatchedVariableIsConfigurationError(t *testing.T) {
	shader := NewShader("unlit", []string{"uniform float Missing;"})
	m := NewMaterial("Hull", "Opaque", shader, nil)
	err := m.compilePass(0, testPass("Opaque"))
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestMaterialPredefinedNameCollisionIsConfigurationError(t *testing.T) {
	shader := NewShader("unlit", []string{"uniform vec3 ViewConstants;"})
	m := NewMaterial("Hull", "Opaque", shader, []Property{
		{Name: varViewConstants, Default: Vec3Value(0, 0, 0)},
	})
	err := m.compilePass(0, testPass("Opaque"))
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestMaterialWriteParamsUsesOverrideThenDefault(t *testing.T) {
	shader := NewShader("unlit", []string{"uniform float Glossiness;"})
	m := NewMaterial("Hull", "Opaque", shader, []Property{
		{Name: "Glossiness", Default: FloatValue(0.25)},
	})
	if err := m.compilePass(0, testPass("Opaque")); err != nil {
		t.Fatalf("compilePass: %v", err)
	}

	dst, err := m.WriteParams(0, nil, nil)
	if err != nil {
		t.Fatalf("WriteParams: %v", err)
	}
	if got := readFloat32(dst); got != 0.25 {
		t.Errorf("default Glossiness = %v, want 0.25", got)
	}

	dst, err = m.WriteParams(0, map[string]PropertyValue{"Glossiness": FloatValue(0.75)}, dst)
	if err != nil {
		t.Fatalf("WriteParams with override: %v", err)
	}
	if got := readFloat32(dst); got != 0.75 {
		t.Errorf("overridden Glossiness = %v, want 0.75", got)
	}
}

func TestMaterialWriteParamsUnknownPassIsBadArgument(t *testing.T) {
	shader := NewShader("unlit", nil)
	m := NewMaterial("Hull", "Opaque", shader, nil)
	_, err := m.WriteParams(0, nil, nil)
	if !errors.Is(err, ErrBadArgument) {
		t.Fatalf("err = %v, want ErrBadArgument", err)
	}
}

func TestMaterialResolveTexture(t *testing.T) {
	shader := NewShader("unlit", []string{"texture Albedo;"})
	m := NewMaterial("Hull", "Opaque", shader, []Property{
		{Name: "Albedo", Default: TextureValue("default_albedo")},
	})
	name, ok := m.ResolveTexture("Albedo", nil)
	if !ok || name != "default_albedo" {
		t.Fatalf("default resolve = (%q, %v), want (default_albedo, true)", name, ok)
	}
	name, ok = m.ResolveTexture("Albedo", map[string]PropertyValue{"Albedo": TextureValue("hull_damaged")})
	if !ok || name != "hull_damaged" {
		t.Fatalf("override resolve = (%q, %v), want (hull_damaged, true)", name, ok)
	}
}
