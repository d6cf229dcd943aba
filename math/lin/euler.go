// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// IntrinsicOrder names the axis sequence of a composed intrinsic rotation:
// each successive rotation happens about the body's own, already-rotated,
// axes rather than the fixed world axes.
type IntrinsicOrder int

// Intrinsic rotation orders, named by the axis rotated first, second, third.
const (
	XYZ IntrinsicOrder = iota
	XZY
	YXZ
	YZX
	ZXY
	ZYX
)

// ExtrinsicOrder names the axis sequence of a composed extrinsic rotation:
// each successive rotation happens about the fixed world axes.
type ExtrinsicOrder int

// Extrinsic rotation orders, named by the axis rotated first, second, third.
const (
	EXYZ ExtrinsicOrder = iota
	EXZY
	EYXZ
	EYZX
	EZXY
	EZYX
)

// intrinsicOf mirrors an extrinsic order as the equivalent intrinsic order
// with its axis sequence reversed: rotating a,b,c about fixed world axes
// is the same as rotating c,b,a about the body's own axes.
func intrinsicOf(order ExtrinsicOrder) IntrinsicOrder {
	switch order {
	case EXYZ:
		return ZYX
	case EXZY:
		return YZX
	case EYXZ:
		return ZXY
	case EYZX:
		return XZY
	case EZXY:
		return YXZ
	case EZYX:
		return XYZ
	}
	return XYZ
}

// SetEuler updates q to the rotation formed by composing a rotation of x
// radians about the X axis, y radians about the Y axis, and z radians
// about the Z axis, applied in the body-local axis sequence given by
// order. The updated q is returned.
func (q *Q) SetEuler(x, y, z float64, order IntrinsicOrder) *Q {
	qx := NewQ().SetAa(1, 0, 0, x)
	qy := NewQ().SetAa(0, 1, 0, y)
	qz := NewQ().SetAa(0, 0, 1, z)

	var first, second, third *Q
	switch order {
	case XYZ:
		first, second, third = qx, qy, qz
	case XZY:
		first, second, third = qx, qz, qy
	case YXZ:
		first, second, third = qy, qx, qz
	case YZX:
		first, second, third = qy, qz, qx
	case ZXY:
		first, second, third = qz, qx, qy
	case ZYX:
		first, second, third = qz, qy, qx
	default:
		first, second, third = qx, qy, qz
	}
	// Each successive rotation is intrinsic: it composes about the axes
	// already carried by the prior rotations, so the first rotation
	// applied ends up as the rightmost (innermost) factor.
	firstSecond := NewQ().Mult(second, first)
	return q.Mult(third, firstSecond)
}

// SetEulerExtrinsic updates q to the rotation formed by composing a
// rotation of x, y, z radians about the fixed world axes in the sequence
// given by order. The updated q is returned.
func (q *Q) SetEulerExtrinsic(x, y, z float64, order ExtrinsicOrder) *Q {
	return q.SetEuler(x, y, z, intrinsicOf(order))
}
