// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import "fmt"

// Vertex is one mesh vertex attribute set.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Tangent  [3]float32
	Binormal [3]float32
	UV       [2]float32
	Color    [4]float32
}

// Mesh is an immutable vertex buffer plus a 16-bit index buffer forming
// triangle lists.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint16
	bound    bool
}

// NewMesh validates and constructs a Mesh. Indices must reference valid
// vertex positions and form complete triangles (a multiple of three).
func NewMesh(name string, vertices []Vertex, indices []uint16) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: mesh %q: index count %d is not a multiple of 3", ErrInvalidFormat, name, len(indices))
	}
	for _, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("%w: mesh %q: index %d out of range for %d vertices", ErrInvalidFormat, name, idx, len(vertices))
		}
	}
	return &Mesh{Name: name, Vertices: vertices, Indices: indices}, nil
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Bound reports whether a graphics backend has uploaded this mesh's buffers.
func (m *Mesh) Bound() bool { return m.bound }

// SetBound marks the mesh as uploaded (or rejected) by a backend.
func (m *Mesh) SetBound(bound bool) { m.bound = bound }

// Centroid returns the unweighted average of all vertex positions. The
// scene render loop's depth sort does not use it: it sorts by each
// instance's world translation.
func (m *Mesh) Centroid() [3]float32 {
	var sum [3]float32
	if len(m.Vertices) == 0 {
		return sum
	}
	for _, v := range m.Vertices {
		sum[0] += v.Position[0]
		sum[1] += v.Position[1]
		sum[2] += v.Position[2]
	}
	n := float32(len(m.Vertices))
	return [3]float32{sum[0] / n, sum[1] / n, sum[2] / n}
}
