// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

// DDS and TGA decoding. DDS mip chains are kept in their native block or
// pixel encoding and handed to render.Texture as-is; render.Texture decodes
// a subresource to RGBA8 on demand. TGA source images carry no mip chain of
// their own, so one is synthesized down to 1x1 with a bilinear resample.

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"

	"golang.org/x/image/draw"

	"github.com/tacticus/engine/render"
)

const (
	ddsMagic       = 0x20534444 // "DDS " little endian
	ddsHeaderSize  = 124
	ddsPfSize      = 32
	ddsfCaps       = 0x1
	ddsfHeight     = 0x2
	ddsfWidth      = 0x4
	ddsfPixelFmt   = 0x1000
	ddsfMipmapCnt  = 0x20000
	ddsfDepth      = 0x800000
	ddsRequired    = ddsfCaps | ddsfHeight | ddsfWidth | ddsfPixelFmt
	ddpfAlphaPix   = 0x1
	ddpfFourCC     = 0x4
	ddpfRGB        = 0x40
	ddscaps2Cubemap = 0x200
)

func fourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

var (
	fourCCDXT1 = fourCC('D', 'X', 'T', '1')
	fourCCDXT2 = fourCC('D', 'X', 'T', '2')
	fourCCDXT3 = fourCC('D', 'X', 'T', '3')
	fourCCDXT4 = fourCC('D', 'X', 'T', '4')
	fourCCDXT5 = fourCC('D', 'X', 'T', '5')
	fourCCDX10 = fourCC('D', 'X', '1', '0')
)

type ddsHeader struct {
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PfSize            uint32
	PfFlags           uint32
	PfFourCC          uint32
	PfRGBBitCount     uint32
	PfRMask           uint32
	PfGMask           uint32
	PfBMask           uint32
	PfAMask           uint32
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}

// Dds decodes a DDS texture from r. srgb selects the color space a texture
// without a DX10 header is assumed to carry (true for albedo-like textures,
// false for normal/data maps); fully-uncompressed 24-bit textures have no
// sRGB-tagged pixel format and always decode as linear bytes.
func Dds(r io.Reader, name string, srgb bool) (*render.Texture, error) {
	var magic uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("%w: dds %q: %v", render.ErrIoFailure, name, err)
	}
	if magic != ddsMagic {
		return nil, fmt.Errorf("%w: dds %q: bad magic", render.ErrInvalidFormat, name)
	}

	var hdr ddsHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: dds %q header: %v", render.ErrIoFailure, name, err)
	}
	if hdr.Size != ddsHeaderSize || hdr.PfSize != ddsPfSize {
		return nil, fmt.Errorf("%w: dds %q: unexpected header size", render.ErrInvalidFormat, name)
	}
	if hdr.Flags&ddsRequired != ddsRequired {
		return nil, fmt.Errorf("%w: dds %q: missing required flags", render.ErrInvalidFormat, name)
	}
	if hdr.Width == 0 || hdr.Height == 0 {
		return nil, fmt.Errorf("%w: dds %q: zero extent", render.ErrInvalidFormat, name)
	}
	if hdr.PfFlags&ddpfFourCC != 0 && hdr.PfFourCC == fourCCDX10 {
		return nil, fmt.Errorf("%w: dds %q: DX10 extension header not supported", render.ErrInvalidFormat, name)
	}
	if hdr.Caps2&ddscaps2Cubemap != 0 {
		return nil, fmt.Errorf("%w: dds %q: cubemaps not supported", render.ErrInvalidFormat, name)
	}

	dim := render.Tex2D
	depth := 1
	if hdr.Flags&ddsfDepth != 0 {
		dim = render.Tex3D
		depth = int(hdr.Depth)
		if depth < 1 {
			depth = 1
		}
	}
	mips := 1
	if hdr.Flags&ddsfMipmapCnt != 0 && hdr.MipMapCount > 1 {
		mips = int(hdr.MipMapCount)
	}

	format, bytesPerTexel, blockBytes, swapRB, err := ddsPixelFormat(hdr, srgb)
	if err != nil {
		return nil, fmt.Errorf("%w: dds %q: %v", render.ErrInvalidFormat, name, err)
	}

	subs := make([]render.Subresource, 0, mips*depth)
	mipWidth, mipHeight, mipDepth := int(hdr.Width), int(hdr.Height), depth
	offset := 0
	for mip := 0; mip < mips; mip++ {
		var rowStride, planeSize int
		if blockBytes > 0 {
			blocksW := roundUp(mipWidth, 4)
			blocksH := roundUp(mipHeight, 4)
			if blocksW < 1 {
				blocksW = 1
			}
			if blocksH < 1 {
				blocksH = 1
			}
			rowStride = blocksW * blockBytes
			planeSize = rowStride * blocksH
		} else {
			rowStride = mipWidth * bytesPerTexel
			planeSize = rowStride * mipHeight
		}
		for slice := 0; slice < mipDepth; slice++ {
			subs = append(subs, render.Subresource{
				Mip: mip, Slice: slice, Offset: offset,
				RowStride: rowStride, DepthStride: planeSize,
				Width: mipWidth, Height: mipHeight, Depth: 1,
			})
			offset += planeSize
		}
		mipWidth = maxInt(1, mipWidth/2)
		mipHeight = maxInt(1, mipHeight/2)
		mipDepth = maxInt(1, mipDepth/2)
	}

	data := make([]byte, offset)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: dds %q pixel data: %v", render.ErrIoFailure, name, err)
	}
	if swapRB {
		swapRedBlue(data, bytesPerTexel)
	}

	return render.NewTexture(name, dim, int(hdr.Width), int(hdr.Height), depth, mips, format, data, subs), nil
}

// ddsPixelFormat maps a DDS pixel format descriptor onto a render.PixelFormat,
// returning the uncompressed bytes-per-texel (0 for block formats), the
// compressed block size in bytes (0 for uncompressed formats), and whether
// the caller must swap the red/blue channels of the loaded bytes (BGR-order
// 24-bit sources, which have no dedicated pixel format of their own).
func ddsPixelFormat(hdr ddsHeader, srgb bool) (format render.PixelFormat, bytesPerTexel, blockBytes int, swapRB bool, err error) {
	const (
		rgbaR, rgbaG, rgbaB, rgbaA = 0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000
		bgrR, bgrG, bgrB           = 0x00ff0000, 0x0000ff00, 0x000000ff
	)
	if hdr.PfFlags&ddpfRGB != 0 {
		switch hdr.PfRGBBitCount {
		case 24:
			switch {
			case hdr.PfRMask == rgbaR && hdr.PfGMask == rgbaG && hdr.PfBMask == rgbaB:
				return render.FormatRGB8, 3, 0, false, nil
			case hdr.PfRMask == bgrR && hdr.PfGMask == bgrG && hdr.PfBMask == bgrB:
				return render.FormatRGB8, 3, 0, true, nil
			}
		case 32:
			switch {
			case hdr.PfRMask == rgbaR && hdr.PfGMask == rgbaG && hdr.PfBMask == rgbaB && hdr.PfAMask == rgbaA:
				return pickSRGB(render.FormatRGBA8, render.FormatRGBA8SRGB, srgb), 4, 0, false, nil
			case hdr.PfRMask == bgrR && hdr.PfGMask == bgrG && hdr.PfBMask == bgrB && hdr.PfAMask == rgbaA:
				return pickSRGB(render.FormatBGRA8, render.FormatBGRA8SRGB, srgb), 4, 0, false, nil
			}
		}
		return 0, 0, 0, false, fmt.Errorf("unsupported RGB mask/bitcount combination")
	}
	if hdr.PfFlags&ddpfFourCC != 0 {
		switch hdr.PfFourCC {
		case fourCCDXT1:
			return pickSRGB(render.FormatBC1, render.FormatBC1SRGB, srgb), 0, 8, false, nil
		case fourCCDXT2, fourCCDXT3:
			return pickSRGB(render.FormatBC2, render.FormatBC2SRGB, srgb), 0, 16, false, nil
		case fourCCDXT4, fourCCDXT5:
			return pickSRGB(render.FormatBC3, render.FormatBC3SRGB, srgb), 0, 16, false, nil
		}
		return 0, 0, 0, false, fmt.Errorf("unsupported FourCC")
	}
	return 0, 0, 0, false, fmt.Errorf("neither DDPF_RGB nor DDPF_FOURCC set")
}

func pickSRGB(linear, srgbFmt render.PixelFormat, srgb bool) render.PixelFormat {
	if srgb {
		return srgbFmt
	}
	return linear
}

func swapRedBlue(data []byte, stride int) {
	for i := 0; i+stride <= len(data); i += stride {
		data[i], data[i+2] = data[i+2], data[i]
	}
}

func roundUp(v, divisor int) int { return (v + divisor - 1) / divisor }
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Tga decodes a 2D TGA image from r into a render.Texture, synthesizing a
// full mip chain since the format stores only one level. Only uncompressed
// (type 2) and run-length encoded (type 10) true-color images are supported,
// matching the kind of asset the pipeline actually ships.
func Tga(r io.Reader, name string, srgb bool) (*render.Texture, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: tga %q: %v", render.ErrIoFailure, name, err)
	}
	if len(data) < 18 {
		return nil, fmt.Errorf("%w: tga %q: too short for header", render.ErrInvalidFormat, name)
	}
	idLength := int(data[0])
	imageType := data[2]
	width := int(binary.LittleEndian.Uint16(data[12:14]))
	height := int(binary.LittleEndian.Uint16(data[14:16]))
	bpp := int(data[16])
	descriptor := data[17]

	if imageType != 2 && imageType != 10 {
		return nil, fmt.Errorf("%w: tga %q: unsupported image type %d", render.ErrInvalidFormat, name, imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("%w: tga %q: unsupported bit depth %d", render.ErrInvalidFormat, name, bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: tga %q: zero extent", render.ErrInvalidFormat, name)
	}

	pixels := data[18+idLength:]
	bytesPerPixel := bpp / 8
	pixelCount := width * height
	raw := make([]byte, pixelCount*bytesPerPixel)
	if imageType == 2 {
		if len(pixels) < len(raw) {
			return nil, fmt.Errorf("%w: tga %q: truncated pixel data", render.ErrInvalidFormat, name)
		}
		copy(raw, pixels[:len(raw)])
	} else {
		if err := decodeTgaRLE(pixels, raw, bytesPerPixel); err != nil {
			return nil, fmt.Errorf("%w: tga %q: %v", render.ErrInvalidFormat, name, err)
		}
	}

	out := make([]byte, pixelCount*4)
	for i := 0; i < pixelCount; i++ {
		si := i * bytesPerPixel
		di := i * 4
		b, g, r2 := raw[si], raw[si+1], raw[si+2]
		a := byte(0xff)
		if bytesPerPixel == 4 {
			a = raw[si+3]
		}
		out[di], out[di+1], out[di+2], out[di+3] = r2, g, b, a
	}
	// TGA's origin bit (descriptor bit 5) marks top-left storage; bottom-left
	// (the common default) is flipped to match the engine's top-left convention.
	if descriptor&0x20 == 0 {
		flipRowsRGBA8(out, width, height)
	}

	format := pickSRGB(render.FormatRGBA8, render.FormatRGBA8SRGB, srgb)
	mipData, subs := buildMipChain(out, width, height)
	return render.NewTexture(name, render.Tex2D, width, height, 1, len(subs), format, mipData, subs), nil
}

// buildMipChain bilinearly downsamples level0 (tightly packed RGBA8, width x
// height) down to a 1x1 level using golang.org/x/image/draw, since source TGA assets carry
// no mip chain of their own. Returns the concatenated level data and the
// matching subresource table.
func buildMipChain(level0 []byte, width, height int) ([]byte, []render.Subresource) {
	var data bytes.Buffer
	subs := make([]render.Subresource, 0, 1)

	w, h := width, height
	cur := level0
	for mip := 0; ; mip++ {
		offset := data.Len()
		data.Write(cur)
		subs = append(subs, render.Subresource{
			Mip: mip, Slice: 0, Offset: offset,
			RowStride: w * 4, DepthStride: w * 4 * h,
			Width: w, Height: h, Depth: 1,
		})
		if w == 1 && h == 1 {
			break
		}
		nw, nh := maxInt(1, w/2), maxInt(1, h/2)
		cur = downsampleRGBA8(cur, w, h, nw, nh)
		w, h = nw, nh
	}
	return data.Bytes(), subs
}

// downsampleRGBA8 resamples a tightly packed RGBA8 image from (sw,sh) to
// (dw,dh) with a bilinear filter.
func downsampleRGBA8(src []byte, sw, sh, dw, dh int) []byte {
	srcImg := &image.RGBA{Pix: src, Stride: sw * 4, Rect: image.Rect(0, 0, sw, sh)}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.BiLinear.Scale(dst, dst.Bounds(), srcImg, srcImg.Bounds(), draw.Over, nil)
	return dst.Pix
}

func decodeTgaRLE(src, dst []byte, bytesPerPixel int) error {
	si, di := 0, 0
	for di < len(dst) {
		if si >= len(src) {
			return fmt.Errorf("truncated RLE stream")
		}
		header := src[si]
		si++
		count := int(header&0x7f) + 1
		if header&0x80 != 0 {
			if si+bytesPerPixel > len(src) {
				return fmt.Errorf("truncated RLE packet")
			}
			pixel := src[si : si+bytesPerPixel]
			si += bytesPerPixel
			for i := 0; i < count && di < len(dst); i++ {
				copy(dst[di:di+bytesPerPixel], pixel)
				di += bytesPerPixel
			}
		} else {
			n := count * bytesPerPixel
			if si+n > len(src) {
				return fmt.Errorf("truncated raw packet")
			}
			copy(dst[di:di+n], src[si:si+n])
			si += n
			di += n
		}
	}
	return nil
}

func flipRowsRGBA8(data []byte, width, height int) {
	rowBytes := width * 4
	row := make([]byte, rowBytes)
	for y := 0; y < height/2; y++ {
		top := y * rowBytes
		bottom := (height - 1 - y) * rowBytes
		copy(row, data[top:top+rowBytes])
		copy(data[top:top+rowBytes], data[bottom:bottom+rowBytes])
		copy(data[bottom:bottom+rowBytes], row)
	}
}
