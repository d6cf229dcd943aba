// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scene walks a tree of scene objects and turns them into sorted
// draw calls per render pass, and holds the camera that observes them.
//
// Package scene is provided as part of the tacticus 3D engine.
package scene

import (
	"github.com/tacticus/engine/math/lin"
)

// Projection selects how a Camera's projection matrix is built.
type Projection int

// Supported camera projections.
const (
	Perspective Projection = iota
	Orthographic
)

// Camera tracks a world-space eye position, orientation, and projection,
// memoizing the derived view/projection matrices until a setter invalidates
// them.
type Camera struct {
	Kind Projection

	position lin.V3
	target   lin.V3
	up       lin.V3

	fov   float64 // vertical field of view, degrees; Perspective only.
	width float64 // viewport width in world units; Orthographic only.

	aspect, near, far float64

	dirty       bool
	view        *lin.M4
	proj        *lin.M4
	invView     *lin.M4
	invProj     *lin.M4
	viewProj    *lin.M4
	invViewProj *lin.M4
}

// NewCamera returns a default perspective camera at the origin looking down
// -Z with +Y up.
func NewCamera() *Camera {
	c := &Camera{
		Kind:     Perspective,
		position: lin.V3{X: 0, Y: 0, Z: 0},
		target:   lin.V3{X: 0, Y: 0, Z: -1},
		up:       lin.V3{X: 0, Y: 1, Z: 0},
		fov:      60,
		aspect:   1,
		near:     0.1,
		far:      1000,

		view:        lin.NewM4(),
		proj:        lin.NewM4(),
		invView:     lin.NewM4(),
		invProj:     lin.NewM4(),
		viewProj:    lin.NewM4(),
		invViewProj: lin.NewM4(),
	}
	c.dirty = true
	return c
}

// SetPosition moves the camera's eye point, invalidating derived matrices.
func (c *Camera) SetPosition(x, y, z float64) {
	c.position = lin.V3{X: x, Y: y, Z: z}
	c.dirty = true
}

// Position returns the camera's world-space eye point.
func (c *Camera) Position() (x, y, z float64) { return c.position.X, c.position.Y, c.position.Z }

// SetTarget points the camera at a world-space location, invalidating
// derived matrices.
func (c *Camera) SetTarget(x, y, z float64) {
	c.target = lin.V3{X: x, Y: y, Z: z}
	c.dirty = true
}

// SetUp sets the camera's up vector, invalidating derived matrices.
func (c *Camera) SetUp(x, y, z float64) {
	c.up = lin.V3{X: x, Y: y, Z: z}
	c.dirty = true
}

// SetPerspective configures this camera as a perspective projection with a
// vertical field of view in degrees.
func (c *Camera) SetPerspective(fovDegrees, aspect, near, far float64) {
	c.Kind = Perspective
	c.fov, c.aspect, c.near, c.far = fovDegrees, aspect, near, far
	c.dirty = true
}

// SetOrthographic configures this camera as an orthographic projection of
// the given viewport width; height follows from aspect.
func (c *Camera) SetOrthographic(width, aspect, near, far float64) {
	c.Kind = Orthographic
	c.width, c.aspect, c.near, c.far = width, aspect, near, far
	c.dirty = true
}

// Fov returns the configured vertical field of view, in degrees.
func (c *Camera) Fov() float64 { return c.fov }

// SetFov updates only the vertical field of view, in degrees, keeping the
// rest of the perspective configuration.
func (c *Camera) SetFov(fovDegrees float64) {
	c.fov = fovDegrees
	c.dirty = true
}

// recalc rebuilds view, projection, and their composites and inverses from
// the camera's current properties. Called lazily by the accessors.
func (c *Camera) recalc() {
	dir := lin.V3{}
	dir.Sub(&c.target, &c.position).Unit()
	right := lin.V3{}
	right.Cross(&dir, &c.up).Unit()
	camUp := lin.V3{}
	camUp.Cross(&right, &dir).Unit()

	c.view.Xx, c.view.Xy, c.view.Xz, c.view.Xw = right.X, camUp.X, -dir.X, 0
	c.view.Yx, c.view.Yy, c.view.Yz, c.view.Yw = right.Y, camUp.Y, -dir.Y, 0
	c.view.Zx, c.view.Zy, c.view.Zz, c.view.Zw = right.Z, camUp.Z, -dir.Z, 0
	c.view.Wx = -right.Dot(&c.position)
	c.view.Wy = -camUp.Dot(&c.position)
	c.view.Wz = dir.Dot(&c.position)
	c.view.Ww = 1

	c.invView.Xx, c.invView.Xy, c.invView.Xz, c.invView.Xw = right.X, right.Y, right.Z, 0
	c.invView.Yx, c.invView.Yy, c.invView.Yz, c.invView.Yw = camUp.X, camUp.Y, camUp.Z, 0
	c.invView.Zx, c.invView.Zy, c.invView.Zz, c.invView.Zw = -dir.X, -dir.Y, -dir.Z, 0
	c.invView.Wx, c.invView.Wy, c.invView.Wz, c.invView.Ww = c.position.X, c.position.Y, c.position.Z, 1

	switch c.Kind {
	case Orthographic:
		h := c.width / c.aspect
		c.proj.Ortho(-c.width/2, c.width/2, -h/2, h/2, c.near, c.far)
		c.invProj.Set(lin.M4I) // orthographic inverse is rarely needed; identity placeholder until requested.
	default:
		c.proj.Persp(c.fov, c.aspect, c.near, c.far)
		c.invProj.PerspInv(c.fov, c.aspect, c.near, c.far)
	}

	c.viewProj.Mult(c.view, c.proj)
	c.invViewProj.Mult(c.invProj, c.invView)
	c.dirty = false
}

// View returns the camera's world-to-view matrix.
func (c *Camera) View() *lin.M4 {
	if c.dirty {
		c.recalc()
	}
	return c.view
}

// Projection returns the camera's view-to-clip matrix.
func (c *Camera) Projection() *lin.M4 {
	if c.dirty {
		c.recalc()
	}
	return c.proj
}

// ViewProjection returns the camera's combined world-to-clip matrix.
func (c *Camera) ViewProjection() *lin.M4 {
	if c.dirty {
		c.recalc()
	}
	return c.viewProj
}

// InverseViewProjection returns the camera's clip-to-world matrix.
func (c *Camera) InverseViewProjection() *lin.M4 {
	if c.dirty {
		c.recalc()
	}
	return c.invViewProj
}

// Distance returns the Z of point p transformed into this camera's
// view×projection space, before the perspective divide. The camera looks
// down its view-space -Z, so this clip-space Z grows with distance: larger
// values are farther from the camera. Used to depth-sort meshes for a
// render pass.
func (c *Camera) Distance(x, y, z float64) float64 {
	vp := c.ViewProjection()
	v := lin.V4{X: x, Y: y, Z: z, W: 1}
	out := lin.V4{}
	out.MultvM(&v, vp)
	return out.Z
}
