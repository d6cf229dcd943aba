// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"encoding/binary"
	"math"

	"github.com/tacticus/engine/math/lin"
)

// PutFloat32 writes f as four little-endian bytes at dst[0:4].
func PutFloat32(dst []byte, f float32) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(f))
}

// PutInt32 writes v as four little-endian bytes at dst[0:4].
func PutInt32(dst []byte, v int32) {
	binary.LittleEndian.PutUint32(dst, uint32(v))
}

// PutMatrix writes m's sixteen components, row-major, as consecutive
// little-endian float32s at dst[0:64].
func PutMatrix(dst []byte, m *lin.M4) {
	vals := [16]float64{
		m.Xx, m.Xy, m.Xz, m.Xw,
		m.Yx, m.Yy, m.Yz, m.Yw,
		m.Zx, m.Zy, m.Zz, m.Zw,
		m.Wx, m.Wy, m.Wz, m.Ww,
	}
	for i, v := range vals {
		PutFloat32(dst[i*4:], float32(v))
	}
}

// Mat4ToFloat32 flattens m's sixteen components, row-major, into a plain
// float32 array suitable for ViewConstants/InstanceConstants fields.
func Mat4ToFloat32(m *lin.M4) [16]float32 {
	return [16]float32{
		float32(m.Xx), float32(m.Xy), float32(m.Xz), float32(m.Xw),
		float32(m.Yx), float32(m.Yy), float32(m.Yz), float32(m.Yw),
		float32(m.Zx), float32(m.Zy), float32(m.Zz), float32(m.Zw),
		float32(m.Wx), float32(m.Wy), float32(m.Wz), float32(m.Ww),
	}
}

// writePropertyValue writes v's payload into dst, sized to exactly match
// v.Kind.byteSize(). Texture-kind values write nothing — they occupy no
// constant-buffer bytes.
func writePropertyValue(dst []byte, v PropertyValue) {
	switch v.Kind {
	case PropInt:
		PutInt32(dst, v.Int)
	case PropFloat:
		PutFloat32(dst, v.Float)
	case PropVec2:
		PutFloat32(dst[0:], v.Vec2[0])
		PutFloat32(dst[4:], v.Vec2[1])
	case PropVec3:
		PutFloat32(dst[0:], v.Vec3[0])
		PutFloat32(dst[4:], v.Vec3[1])
		PutFloat32(dst[8:], v.Vec3[2])
	case PropVec4:
		for i, f := range v.Vec4 {
			PutFloat32(dst[i*4:], f)
		}
	case PropMat4:
		for i, f := range v.Mat4 {
			PutFloat32(dst[i*4:], f)
		}
	}
}
