// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import "testing"

func TestAlphaBlendModeBlendStateDerivation(t *testing.T) {
	cases := []struct {
		mode AlphaBlendMode
		want BlendState
	}{
		{BlendNone, BlendState{}},
		{BlendAdditive, BlendState{Enabled: true, Src: BlendFactorOne, Dst: BlendFactorOne, Op: BlendOpAdd}},
		{BlendSrcAlpha, BlendState{Enabled: true, Src: BlendFactorSrcAlpha, Dst: BlendFactorOneMinusSrcAlpha, Op: BlendOpAdd}},
	}
	for _, c := range cases {
		if got := c.mode.BlendState(); got != c.want {
			t.Errorf("AlphaBlendMode(%d).BlendState() = %+v, want %+v", c.mode, got, c.want)
		}
	}
}

func TestMaterialBlendStateMatchesCompiledPass(t *testing.T) {
	shader := NewShader("unlit", nil)
	m := NewMaterial("Glow", "Additive", shader, nil)
	additive := BlendAdditive
	m.Options = &PipelineOptions{AlphaBlend: &additive}

	if err := m.compilePass(0, testPass("Additive")); err != nil {
		t.Fatalf("compilePass: %v", err)
	}
	want := BlendState{Enabled: true, Src: BlendFactorOne, Dst: BlendFactorOne, Op: BlendOpAdd}
	if got := m.BlendState(0); got != want {
		t.Errorf("BlendState(0) = %+v, want %+v", got, want)
	}
	if got := m.BlendState(1); got != (BlendState{}) {
		t.Errorf("BlendState(1) for uncompiled pass = %+v, want zero value", got)
	}
}
