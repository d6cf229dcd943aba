// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"errors"
	"testing"
)

func TestDrawCallValidateArgumentsRejectsNilFields(t *testing.T) {
	if err := (&DrawCall{}).ValidateArguments(nil); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("nil mesh+material: err = %v, want ErrBadArgument", err)
	}
	mesh, _ := NewMesh("m", []Vertex{{}, {}, {}}, []uint16{0, 1, 2})
	if err := (&DrawCall{Mesh: mesh}).ValidateArguments(nil); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("nil material: err = %v, want ErrBadArgument", err)
	}
}

func TestDrawCallValidateArgumentsRejectsForeignOwner(t *testing.T) {
	registry := NewPipelineRegistry()
	other := NewPipelineRegistry()
	shader := NewShader("unlit", nil)
	m := NewMaterial("hull", "Opaque", shader, nil)
	if err := other.RegisterMaterial(m); err != nil {
		t.Fatalf("RegisterMaterial: %v", err)
	}
	mesh, _ := NewMesh("m", []Vertex{{}, {}, {}}, []uint16{0, 1, 2})
	dc := DrawCall{Mesh: mesh, Material: m}
	if err := dc.ValidateArguments(registry); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("err = %v, want ErrBadArgument", err)
	}
}

func TestDrawCallValidateChecksPassState(t *testing.T) {
	registry := NewPipelineRegistry()
	shader := NewShader("unlit", nil)
	m := NewMaterial("hull", "Opaque", shader, nil)
	if err := registry.RegisterMaterial(m); err != nil {
		t.Fatalf("RegisterMaterial: %v", err)
	}
	mesh, _ := NewMesh("m", []Vertex{{}, {}, {}}, []uint16{0, 1, 2})
	dc := DrawCall{Mesh: mesh, Material: m, PassGlobalIndex: 5}
	if err := dc.Validate(registry); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("err = %v, want ErrBadArgument for an uncompiled pass", err)
	}
}
