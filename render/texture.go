// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import "fmt"

// TextureDim names a texture's addressing dimensionality.
type TextureDim int

// Supported texture dimensions.
const (
	Tex1D TextureDim = iota
	Tex2D
	Tex3D
	TexCube
)

// PixelFormat names a texture's source encoding. Linear vs sRGB is carried
// here rather than as a separate flag.
type PixelFormat int

// Supported pixel formats.
const (
	FormatRGBA8 PixelFormat = iota
	FormatRGBA8SRGB
	FormatBGRA8
	FormatBGRA8SRGB
	FormatRGB8 // 24-bit, promoted to 32-bit on decode.
	FormatBC1
	FormatBC1SRGB
	FormatBC2
	FormatBC2SRGB
	FormatBC3
	FormatBC3SRGB
)

// bytesPerBlock returns the compressed block size in bytes for BC formats,
// or 0 for uncompressed formats (which are sized per-pixel instead).
func (f PixelFormat) bytesPerBlock() int {
	switch f {
	case FormatBC1, FormatBC1SRGB:
		return 8
	case FormatBC2, FormatBC2SRGB, FormatBC3, FormatBC3SRGB:
		return 16
	default:
		return 0
	}
}

func (f PixelFormat) compressed() bool { return f.bytesPerBlock() > 0 }

func (f PixelFormat) srgb() bool {
	switch f {
	case FormatRGBA8SRGB, FormatBGRA8SRGB, FormatBC1SRGB, FormatBC2SRGB, FormatBC3SRGB:
		return true
	}
	return false
}

// Subresource locates one (mip-level × array-slice) image plane within a
// Texture's single backing byte buffer.
type Subresource struct {
	Mip         int
	Slice       int
	Offset      int
	RowStride   int
	DepthStride int
	Width       int
	Height      int
	Depth       int
}

// Texture is an opaque handle to image data: its dimensionality, extents,
// mip chain, pixel format, and the backing bytes addressed through a
// per-subresource offset/stride table. Immutable after NewTexture.
type Texture struct {
	Name        string
	Dim         TextureDim
	Width       int
	Height      int
	DepthOrSlices int
	MipLevels   int
	Format      PixelFormat
	Data        []byte
	Subs        []Subresource
	bound       bool
}

// NewTexture constructs a Texture around a pre-packed backing buffer and its
// subresource table, computed by a loader (e.g. a DDS/TGA reader) ahead of
// time. It performs no decoding itself.
func NewTexture(name string, dim TextureDim, width, height, depthOrSlices, mips int, format PixelFormat, data []byte, subs []Subresource) *Texture {
	return &Texture{
		Name: name, Dim: dim, Width: width, Height: height,
		DepthOrSlices: depthOrSlices, MipLevels: mips, Format: format,
		Data: data, Subs: subs,
	}
}

// Bound reports whether a graphics backend has accepted this texture.
func (t *Texture) Bound() bool { return t.bound }

// SetBound marks the texture as accepted (or rejected) by a backend.
func (t *Texture) SetBound(bound bool) { t.bound = bound }

// Sub returns the subresource for (mip, slice), or ErrNotFound.
func (t *Texture) Sub(mip, slice int) (Subresource, error) {
	for _, s := range t.Subs {
		if s.Mip == mip && s.Slice == slice {
			return s, nil
		}
	}
	return Subresource{}, fmt.Errorf("%w: texture %q has no mip %d slice %d", ErrNotFound, t.Name, mip, slice)
}

// DecodeRGBA8 decodes subresource sub of this texture's backing buffer into
// a tightly packed RGBA8 pixel array (4 bytes/pixel, row-major, no padding),
// regardless of the texture's source PixelFormat. sRGB source formats are
// not linearized; the caller interprets the encoding via t.Format.srgb().
func (t *Texture) DecodeRGBA8(sub Subresource) ([]byte, error) {
	switch t.Format {
	case FormatRGBA8, FormatRGBA8SRGB:
		return decodeRGBA8(t.Data, sub)
	case FormatBGRA8, FormatBGRA8SRGB:
		return decodeBGRA8(t.Data, sub)
	case FormatRGB8:
		return decodeRGB8(t.Data, sub)
	case FormatBC1, FormatBC1SRGB:
		return decodeBC1(t.Data, sub)
	case FormatBC2, FormatBC2SRGB:
		return decodeBC2(t.Data, sub)
	case FormatBC3, FormatBC3SRGB:
		return decodeBC3(t.Data, sub)
	default:
		return nil, fmt.Errorf("%w: texture %q: unsupported pixel format", ErrInvalidFormat, t.Name)
	}
}

func decodeRGBA8(src []byte, sub Subresource) ([]byte, error) {
	out := make([]byte, sub.Width*sub.Height*4)
	for y := 0; y < sub.Height; y++ {
		srcRow := sub.Offset + y*sub.RowStride
		dstRow := y * sub.Width * 4
		if srcRow+sub.Width*4 > len(src) {
			return nil, fmt.Errorf("%w: rgba8 subresource exceeds buffer", ErrInvalidFormat)
		}
		copy(out[dstRow:dstRow+sub.Width*4], src[srcRow:srcRow+sub.Width*4])
	}
	return out, nil
}

func decodeBGRA8(src []byte, sub Subresource) ([]byte, error) {
	out := make([]byte, sub.Width*sub.Height*4)
	for y := 0; y < sub.Height; y++ {
		srcRow := sub.Offset + y*sub.RowStride
		for x := 0; x < sub.Width; x++ {
			si := srcRow + x*4
			if si+4 > len(src) {
				return nil, fmt.Errorf("%w: bgra8 subresource exceeds buffer", ErrInvalidFormat)
			}
			di := (y*sub.Width + x) * 4
			b, g, r, a := src[si], src[si+1], src[si+2], src[si+3]
			out[di], out[di+1], out[di+2], out[di+3] = r, g, b, a
		}
	}
	return out, nil
}

func decodeRGB8(src []byte, sub Subresource) ([]byte, error) {
	out := make([]byte, sub.Width*sub.Height*4)
	for y := 0; y < sub.Height; y++ {
		srcRow := sub.Offset + y*sub.RowStride
		for x := 0; x < sub.Width; x++ {
			si := srcRow + x*3
			if si+3 > len(src) {
				return nil, fmt.Errorf("%w: rgb8 subresource exceeds buffer", ErrInvalidFormat)
			}
			di := (y*sub.Width + x) * 4
			out[di], out[di+1], out[di+2], out[di+3] = src[si], src[si+1], src[si+2], 0xff
		}
	}
	return out, nil
}

// decode565 splits a little-endian RGB565 color into 8-bit channels.
func decode565(c uint16) (r, g, b byte) {
	r = byte((c >> 11 & 0x1f) * 255 / 31)
	g = byte((c >> 5 & 0x3f) * 255 / 63)
	b = byte((c & 0x1f) * 255 / 31)
	return
}

// bc1Block decodes one 8-byte BC1 (DXT1) block into 16 RGBA8 texels,
// honoring the one-bit "color 3 is transparent black" variant when
// color0 <= color1.
func bc1Block(block []byte) [16][4]byte {
	c0 := uint16(block[0]) | uint16(block[1])<<8
	c1 := uint16(block[2]) | uint16(block[3])<<8
	r0, g0, b0 := decode565(c0)
	r1, g1, b1 := decode565(c1)

	var palette [4][4]byte
	palette[0] = [4]byte{r0, g0, b0, 0xff}
	palette[1] = [4]byte{r1, g1, b1, 0xff}
	if c0 > c1 {
		palette[2] = [4]byte{
			byte((2*int(r0) + int(r1)) / 3), byte((2*int(g0) + int(g1)) / 3), byte((2*int(b0) + int(b1)) / 3), 0xff,
		}
		palette[3] = [4]byte{
			byte((int(r0) + 2*int(r1)) / 3), byte((int(g0) + 2*int(g1)) / 3), byte((int(b0) + 2*int(b1)) / 3), 0xff,
		}
	} else {
		palette[2] = [4]byte{byte((int(r0) + int(r1)) / 2), byte((int(g0) + int(g1)) / 2), byte((int(b0) + int(b1)) / 2), 0xff}
		palette[3] = [4]byte{0, 0, 0, 0}
	}

	var texels [16][4]byte
	indices := uint32(block[4]) | uint32(block[5])<<8 | uint32(block[6])<<16 | uint32(block[7])<<24
	for i := 0; i < 16; i++ {
		idx := (indices >> uint(2*i)) & 0x3
		texels[i] = palette[idx]
	}
	return texels
}

// bc1BlockOpaque is used by BC2/BC3 which store color via a BC1-style
// block but always treat it as fully opaque (their alpha comes separately).
func bc1BlockOpaque(block []byte) [16][4]byte {
	c0 := uint16(block[0]) | uint16(block[1])<<8
	c1 := uint16(block[2]) | uint16(block[3])<<8
	r0, g0, b0 := decode565(c0)
	r1, g1, b1 := decode565(c1)
	palette := [4][4]byte{
		{r0, g0, b0, 0xff},
		{r1, g1, b1, 0xff},
		{byte((2*int(r0) + int(r1)) / 3), byte((2*int(g0) + int(g1)) / 3), byte((2*int(b0) + int(b1)) / 3), 0xff},
		{byte((int(r0) + 2*int(r1)) / 3), byte((int(g0) + 2*int(g1)) / 3), byte((int(b0) + 2*int(b1)) / 3), 0xff},
	}
	var texels [16][4]byte
	indices := uint32(block[4]) | uint32(block[5])<<8 | uint32(block[6])<<16 | uint32(block[7])<<24
	for i := 0; i < 16; i++ {
		texels[i] = palette[(indices>>uint(2*i))&0x3]
	}
	return texels
}

func decodeBlockCompressed(src []byte, sub Subresource, blockBytes int, decodeBlock func(block []byte) [16][4]byte) ([]byte, error) {
	out := make([]byte, sub.Width*sub.Height*4)
	blocksX := (sub.Width + 3) / 4
	blocksY := (sub.Height + 3) / 4
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			off := sub.Offset + (by*blocksX+bx)*blockBytes
			if off+blockBytes > len(src) {
				return nil, fmt.Errorf("%w: block-compressed subresource exceeds buffer", ErrInvalidFormat)
			}
			texels := decodeBlock(src[off : off+blockBytes])
			for ty := 0; ty < 4; ty++ {
				py := by*4 + ty
				if py >= sub.Height {
					continue
				}
				for tx := 0; tx < 4; tx++ {
					px := bx*4 + tx
					if px >= sub.Width {
						continue
					}
					di := (py*sub.Width + px) * 4
					t := texels[ty*4+tx]
					out[di], out[di+1], out[di+2], out[di+3] = t[0], t[1], t[2], t[3]
				}
			}
		}
	}
	return out, nil
}

func decodeBC1(src []byte, sub Subresource) ([]byte, error) {
	return decodeBlockCompressed(src, sub, 8, bc1Block)
}

// decodeBC2 decodes an 16-byte BC2 (DXT3) block: 8 bytes of explicit 4-bit
// alpha followed by an opaque BC1 color block.
func decodeBC2(src []byte, sub Subresource) ([]byte, error) {
	return decodeBlockCompressed(src, sub, 16, func(block []byte) [16][4]byte {
		texels := bc1BlockOpaque(block[8:16])
		for i := 0; i < 16; i++ {
			nibble := block[i/2]
			if i%2 == 0 {
				nibble &= 0x0f
			} else {
				nibble >>= 4
			}
			texels[i][3] = nibble * 17 // scale 4-bit [0,15] to 8-bit.
		}
		return texels
	})
}

// decodeBC3 decodes a 16-byte BC3 (DXT5) block: two 8-bit alpha endpoints
// plus a 3-bit-per-texel interpolated alpha index block, followed by an
// opaque BC1 color block.
func decodeBC3(src []byte, sub Subresource) ([]byte, error) {
	return decodeBlockCompressed(src, sub, 16, func(block []byte) [16][4]byte {
		texels := bc1BlockOpaque(block[8:16])

		a0, a1 := block[0], block[1]
		var alphas [8]byte
		alphas[0], alphas[1] = a0, a1
		if a0 > a1 {
			for i := 1; i <= 6; i++ {
				alphas[1+i] = byte((int(7-i)*int(a0) + int(i)*int(a1)) / 7)
			}
		} else {
			for i := 1; i <= 4; i++ {
				alphas[1+i] = byte((int(5-i)*int(a0) + int(i)*int(a1)) / 5)
			}
			alphas[6] = 0
			alphas[7] = 0xff
		}

		bits := uint64(0)
		for i := 0; i < 6; i++ {
			bits |= uint64(block[2+i]) << uint(8*i)
		}
		for i := 0; i < 16; i++ {
			idx := (bits >> uint(3*i)) & 0x7
			texels[i][3] = alphas[idx]
		}
		return texels
	})
}
