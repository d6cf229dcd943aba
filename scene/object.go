// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"github.com/tacticus/engine/math/lin"
	"github.com/tacticus/engine/render"
)

// Layer names a scene's rendering bucket.
type Layer string

// Fixed layers every Scene carries. Skydome layers are additional,
// caller-named layers beyond these two.
const (
	Background Layer = "background"
	Foreground Layer = "foreground"
)

// Behavior is a capability a SceneObject may carry. Implementations
// typically satisfy Render, Marker, or both.
type Behavior interface {
	// Kind names the behavior for dispatch (e.g. by a caller's type switch
	// or by Object.Has).
	Kind() string
}

// RenderBehavior supplies an object's drawable mesh/material and chooses
// the layer it is filed under.
type RenderBehavior interface {
	Behavior
	Layer() Layer
	Mesh() *render.Mesh
	Material() *render.Material
}

// MarkerBehavior marks an object for non-drawing purposes (triggers,
// waypoints, attachment points) without contributing to any render pass.
type MarkerBehavior interface {
	Behavior
	Marker() string
}

// Object is a transform plus a set of behaviors plus an opaque user-data
// slot.
type Object struct {
	Translation lin.V3
	Rotation    lin.Q
	Scale       lin.V3

	behaviors []Behavior
	UserData  interface{}
}

// NewObject returns an Object at the origin, unrotated, at unit scale.
func NewObject() *Object {
	return &Object{Scale: lin.V3{X: 1, Y: 1, Z: 1}, Rotation: *lin.NewQ()}
}

// AddBehavior attaches b to the object.
func (o *Object) AddBehavior(b Behavior) { o.behaviors = append(o.behaviors, b) }

// Behaviors returns every behavior attached to the object.
func (o *Object) Behaviors() []Behavior { return o.behaviors }

// RenderBehavior returns the object's first RenderBehavior, if any.
func (o *Object) RenderBehavior() (RenderBehavior, bool) {
	for _, b := range o.behaviors {
		if rb, ok := b.(RenderBehavior); ok {
			return rb, true
		}
	}
	return nil, false
}

// World builds this object's world transform matrix from its translation,
// rotation, and scale.
func (o *Object) World() *lin.M4 {
	world := lin.NewM4()
	world.SetQ(&o.Rotation)
	world.ScaleSM(o.Scale.X, o.Scale.Y, o.Scale.Z)
	world.Wx, world.Wy, world.Wz = o.Translation.X, o.Translation.Y, o.Translation.Z
	world.Ww = 1
	return world
}

// Scene maps layer names to the set of objects filed under them. Two fixed
// layers (Background, Foreground) always exist; skydome layers are added
// on demand.
type Scene struct {
	layers map[Layer][]*Object
}

// NewScene returns a Scene with its two fixed layers initialized empty.
func NewScene() *Scene {
	return &Scene{layers: map[Layer][]*Object{Background: nil, Foreground: nil}}
}

// Add files o under the layer chosen by its RenderBehavior, or Foreground
// if it has none.
func (s *Scene) Add(o *Object) {
	layer := Foreground
	if rb, ok := o.RenderBehavior(); ok {
		layer = rb.Layer()
	}
	s.layers[layer] = append(s.layers[layer], o)
}

// Remove deletes the first occurrence of o from every layer.
func (s *Scene) Remove(o *Object) {
	for layer, objs := range s.layers {
		for i, candidate := range objs {
			if candidate == o {
				s.layers[layer] = append(objs[:i], objs[i+1:]...)
				break
			}
		}
	}
}

// Layer returns the objects filed under name, or nil if the layer does not
// exist.
func (s *Scene) Layer(name Layer) []*Object { return s.layers[name] }

// Layers returns every layer name currently holding objects, fixed layers
// included even when empty.
func (s *Scene) Layers() []Layer {
	names := make([]Layer, 0, len(s.layers))
	for name := range s.layers {
		names = append(names, name)
	}
	return names
}
