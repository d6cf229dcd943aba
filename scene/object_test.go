// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/tacticus/engine/math/lin"
	"github.com/tacticus/engine/render"
)

func TestObjectWorldIdentityAtOrigin(t *testing.T) {
	o := NewObject()
	w := o.World()
	id := lin.NewM4I()
	if !w.Aeq(id) {
		t.Errorf("World() = %+v, want identity", w)
	}
}

func TestObjectWorldCarriesTranslation(t *testing.T) {
	o := NewObject()
	o.Translation = lin.V3{X: 1, Y: 2, Z: 3}
	w := o.World()
	if w.Wx != 1 || w.Wy != 2 || w.Wz != 3 {
		t.Errorf("World() translation row = (%v,%v,%v), want (1,2,3)", w.Wx, w.Wy, w.Wz)
	}
}

type testRenderBehavior struct{ layer Layer }

func (b testRenderBehavior) Kind() string             { return "render" }
func (b testRenderBehavior) Layer() Layer             { return b.layer }
func (b testRenderBehavior) Mesh() *render.Mesh       { return nil }
func (b testRenderBehavior) Material() *render.Material { return nil }

func TestSceneAddFilesByLayer(t *testing.T) {
	s := NewScene()
	bg := NewObject()
	bg.AddBehavior(testRenderBehavior{layer: Background})
	s.Add(bg)

	if len(s.Layer(Background)) != 1 {
		t.Fatalf("Background layer len = %d, want 1", len(s.Layer(Background)))
	}
	if len(s.Layer(Foreground)) != 0 {
		t.Fatalf("Foreground layer len = %d, want 0", len(s.Layer(Foreground)))
	}
}

func TestSceneRemove(t *testing.T) {
	s := NewScene()
	o := NewObject()
	s.Add(o)
	s.Remove(o)
	if len(s.Layer(Foreground)) != 0 {
		t.Fatalf("Foreground layer len = %d, want 0 after Remove", len(s.Layer(Foreground)))
	}
}
