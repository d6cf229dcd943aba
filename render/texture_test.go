// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import "testing"

func TestDecodeRGBA8Passthrough(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50, 60, 70, 80}
	tex := NewTexture("flat", Tex2D, 2, 1, 1, 1, FormatRGBA8, data, []Subresource{
		{Mip: 0, Slice: 0, Offset: 0, RowStride: 8, Width: 2, Height: 1},
	})
	out, err := tex.DecodeRGBA8(tex.Subs[0])
	if err != nil {
		t.Fatalf("DecodeRGBA8: %v", err)
	}
	if len(out) != 8 {
		t.Fatalf("len(out) = %d, want 8", len(out))
	}
	for i, b := range data {
		if out[i] != b {
			t.Errorf("out[%d] = %d, want %d", i, out[i], b)
		}
	}
}

func TestDecodeBGRA8SwapsChannels(t *testing.T) {
	data := []byte{30, 20, 10, 255} // B=30 G=20 R=10 A=255
	tex := NewTexture("flat", Tex2D, 1, 1, 1, 1, FormatBGRA8, data, []Subresource{
		{Mip: 0, Slice: 0, Offset: 0, RowStride: 4, Width: 1, Height: 1},
	})
	out, err := tex.DecodeRGBA8(tex.Subs[0])
	if err != nil {
		t.Fatalf("DecodeRGBA8: %v", err)
	}
	want := []byte{10, 20, 30, 255}
	for i, b := range want {
		if out[i] != b {
			t.Errorf("out[%d] = %d, want %d", i, out[i], b)
		}
	}
}

func TestDecodeRGB8PromotedToOpaqueRGBA8(t *testing.T) {
	data := []byte{1, 2, 3}
	tex := NewTexture("flat", Tex2D, 1, 1, 1, 1, FormatRGB8, data, []Subresource{
		{Mip: 0, Slice: 0, Offset: 0, RowStride: 3, Width: 1, Height: 1},
	})
	out, err := tex.DecodeRGBA8(tex.Subs[0])
	if err != nil {
		t.Fatalf("DecodeRGBA8: %v", err)
	}
	want := []byte{1, 2, 3, 0xff}
	for i, b := range want {
		if out[i] != b {
			t.Errorf("out[%d] = %d, want %d", i, out[i], b)
		}
	}
}

// redColor565 packs pure red (255,0,0) into RGB565.
const redColor565 = 0xF800

func TestDecodeBC1SolidColorBlock(t *testing.T) {
	block := []byte{
		byte(redColor565 & 0xff), byte(redColor565 >> 8), // color0 = red
		0x00, 0x00, // color1 = black, color0 > color1 path
		0x00, 0x00, 0x00, 0x00, // all indices 0 -> color0 everywhere
	}
	tex := NewTexture("bc1", Tex2D, 4, 4, 1, 1, FormatBC1, block, []Subresource{
		{Mip: 0, Slice: 0, Offset: 0, Width: 4, Height: 4},
	})
	out, err := tex.DecodeRGBA8(tex.Subs[0])
	if err != nil {
		t.Fatalf("DecodeRGBA8: %v", err)
	}
	for px := 0; px < 16; px++ {
		i := px * 4
		if out[i] != 255 || out[i+1] != 0 || out[i+2] != 0 || out[i+3] != 255 {
			t.Fatalf("pixel %d = %v, want opaque red", px, out[i:i+4])
		}
	}
}

func TestDecodeBC1OneBitAlphaBlackWhenC0LessEqualC1(t *testing.T) {
	block := []byte{
		0x00, 0x00, // color0 = black
		byte(redColor565 & 0xff), byte(redColor565 >> 8), // color1 = red, color0 <= color1
		0xFF, 0xFF, 0xFF, 0xFF, // all indices 3 -> transparent black
	}
	tex := NewTexture("bc1", Tex2D, 4, 4, 1, 1, FormatBC1, block, []Subresource{
		{Mip: 0, Slice: 0, Offset: 0, Width: 4, Height: 4},
	})
	out, err := tex.DecodeRGBA8(tex.Subs[0])
	if err != nil {
		t.Fatalf("DecodeRGBA8: %v", err)
	}
	if out[3] != 0 {
		t.Errorf("alpha = %d, want 0 (transparent black index)", out[3])
	}
}
