// Copyright © 2013-2026 Galvanized Logic Inc.

package lin

import "testing"

func TestSetEulerSingleAxisMatchesAxisAngle(t *testing.T) {
	angle := 0.7
	got := NewQ().SetEuler(angle, 0, 0, XYZ)
	want := NewQ().SetAa(1, 0, 0, angle)
	if !got.Aeq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}

	got = NewQ().SetEuler(0, angle, 0, XYZ)
	want = NewQ().SetAa(0, 1, 0, angle)
	if !got.Aeq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}

	got = NewQ().SetEuler(0, 0, angle, XYZ)
	want = NewQ().SetAa(0, 0, 1, angle)
	if !got.Aeq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}
}

func TestSetEulerIsUnitLength(t *testing.T) {
	q := NewQ().SetEuler(0.3, 0.6, 1.1, ZXY)
	if !Aeq(q.Len(), 1) {
		t.Errorf("expected unit length quaternion, got length %v", q.Len())
	}
}

func TestSetEulerOrderAffectsResult(t *testing.T) {
	xyz := NewQ().SetEuler(0.4, 0.5, 0.6, XYZ)
	zyx := NewQ().SetEuler(0.4, 0.5, 0.6, ZYX)
	if xyz.Aeq(zyx) {
		t.Errorf("expected different rotation order to produce different results")
	}
}

func TestSetEulerExtrinsicMatchesReversedIntrinsic(t *testing.T) {
	got := NewQ().SetEulerExtrinsic(0.2, 0.3, 0.4, EXYZ)
	want := NewQ().SetEuler(0.2, 0.3, 0.4, ZYX)
	if !got.Aeq(want) {
		t.Errorf(format, got.Dump(), want.Dump())
	}
}
