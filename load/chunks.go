// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

// Model and Map binary assets are both a sequence of tagged chunks: a
// 4-byte little-endian id, a 4-byte little-endian payload length, then
// that many bytes of payload. A chunk that is itself a container (a
// skeleton, a mesh, a submesh, the map's environment set, ...) stores a
// nested chunk stream as its payload; walkChunks recurses into it.

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tacticus/engine/math/lin"
	"github.com/tacticus/engine/render"
)

// Chunk ids for the Model binary format.
const (
	chunkSkeleton      = 0x200
	chunkSkeletonCount = 0x201
	chunkSkeletonBone  = 0x202
	chunkBoneName      = 0x203
	chunkBoneDataV1    = 0x205
	chunkBoneDataV2    = 0x206

	chunkMesh     = 0x400
	chunkMeshName = 0x401
	chunkMeshInfo = 0x402

	chunkSubmesh           = 0x10000
	chunkSubmeshInfo       = 0x10001
	chunkSubmeshIndices    = 0x10004
	chunkSubmeshVerticesV1 = 0x10005
	chunkSubmeshVerticesV2 = 0x10007

	chunkShaderInfo         = 0x10100
	chunkShaderName         = 0x10101
	chunkShaderParamInt     = 0x10102
	chunkShaderParamFloat   = 0x10103
	chunkShaderParamFloat3  = 0x10104
	chunkShaderParamTexture = 0x10105
	chunkShaderParamFloat4  = 0x10106

	chunkLight = 0x1300

	chunkConnections       = 0x600
	chunkConnectionsObject = 0x602
)

// Chunk ids for the Map binary format.
const (
	chunkMapInfo                  = 0x00
	chunkMapData                  = 0x01
	chunkMapDataEnvironmentSet    = 0x100
	chunkMapDataEnvironments      = 0x04
	chunkMapDataEnvironment       = 0x06
	chunkMapDataActiveEnvironment = 0x08
)

const mapFormatVersion = 0x201

// walkChunks iterates the tagged chunks in data, invoking visit with each
// chunk's id and payload in file order. A chunk whose declared length runs
// past the remaining bytes is an InvalidFormat error.
func walkChunks(data []byte, visit func(id uint32, payload []byte) error) error {
	r := bytes.NewReader(data)
	var hdr struct{ ID, Size uint32 }
	for r.Len() > 0 {
		if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
			return fmt.Errorf("%w: chunk header: %v", render.ErrInvalidFormat, err)
		}
		if int(hdr.Size) > r.Len() {
			return fmt.Errorf("%w: chunk 0x%x declares %d bytes, only %d remain", render.ErrInvalidFormat, hdr.ID, hdr.Size, r.Len())
		}
		payload := make([]byte, hdr.Size)
		if hdr.Size > 0 {
			if _, err := r.Read(payload); err != nil {
				return fmt.Errorf("%w: chunk 0x%x payload: %v", render.ErrInvalidFormat, hdr.ID, err)
			}
		}
		if err := visit(hdr.ID, payload); err != nil {
			return err
		}
	}
	return nil
}

// cString returns the NUL-terminated string at the start of b.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

func readFloat32(b []byte) (float32, error) {
	if len(b) < 4 {
		return 0, fmt.Errorf("%w: expected 4 bytes, got %d", render.ErrInvalidFormat, len(b))
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func readUint32(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, fmt.Errorf("%w: expected 4 bytes, got %d", render.ErrInvalidFormat, len(b))
	}
	return binary.LittleEndian.Uint32(b), nil
}

// BillboardMode is an alias for the render package's billboard enum; the
// chunk format's bone-data payload encodes the same values render-model
// parts carry.
type BillboardMode = render.BillboardMode

// Billboard mode values, aliased from the render package.
const (
	BillboardNone     = render.BillboardNone
	BillboardParallel = render.BillboardParallel
	BillboardFace     = render.BillboardFace
	BillboardZView    = render.BillboardZView
	BillboardZWind    = render.BillboardZWind
	BillboardZLight   = render.BillboardZLight
	BillboardSunGlow  = render.BillboardSunGlow
	BillboardSun      = render.BillboardSun
)

// Bone is one skeleton joint: its parent, visibility, billboard behavior,
// and parent-relative transform.
type Bone struct {
	Name      string
	Parent    int32 // -1 for the root bone
	Visible   bool
	Billboard BillboardMode
	Transform *lin.M4
}

// MaterialParamKind tags a shader-info parameter's value type.
type MaterialParamKind int

const (
	ParamInt MaterialParamKind = iota
	ParamFloat
	ParamFloat3
	ParamFloat4
	ParamTexture
)

// MaterialParam is one shader-info parameter baked into a model's submesh.
type MaterialParam struct {
	Name    string
	Kind    MaterialParamKind
	Int     int32
	Float   float32
	Float3  [3]float32
	Float4  [4]float32
	Texture string
}

// Submesh binds a contiguous vertex/index range to a shader and its params.
type Submesh struct {
	ShaderName string
	Params     []MaterialParam
	Mesh       *render.Mesh
}

// ModelMesh is one named section of a model.
type ModelMesh struct {
	Name      string
	LOD, Alt  int
	Visible   bool
	BoneIndex int32 // -1 if not connected to a bone
	Submeshes []Submesh
}

// Model is the parsed contents of a Model binary chunk stream: an optional
// skeleton, an ordered list of meshes, and the per-mesh bone connections.
type Model struct {
	Bones  []Bone
	Meshes []ModelMesh
}

// ParseModel parses a Model binary chunk stream.
func ParseModel(data []byte) (Model, error) {
	var model Model
	// objectMesh[i] is the index into model.Meshes for the i-th top-level
	// object (mesh or light, in file order); nil for a light, which is
	// counted but never rendered.
	var objectMesh []*int

	err := walkChunks(data, func(id uint32, payload []byte) error {
		switch id {
		case chunkSkeleton:
			bones, err := parseSkeleton(payload)
			if err != nil {
				return err
			}
			model.Bones = bones
		case chunkMesh:
			mesh, err := parseMesh(payload)
			if err != nil {
				return err
			}
			idx := len(model.Meshes)
			model.Meshes = append(model.Meshes, mesh)
			objectMesh = append(objectMesh, &idx)
		case chunkLight:
			objectMesh = append(objectMesh, nil)
		case chunkConnections:
			return parseConnections(payload, model.Meshes, objectMesh)
		}
		return nil
	})
	return model, err
}

func parseSkeleton(data []byte) ([]Bone, error) {
	var bones []Bone
	err := walkChunks(data, func(id uint32, payload []byte) error {
		switch id {
		case chunkSkeletonBone:
			bone, err := parseBone(payload)
			if err != nil {
				return err
			}
			if bone.Parent >= int32(len(bones)) {
				return fmt.Errorf("%w: skeleton bone %q: parent index %d out of range", render.ErrInvalidFormat, bone.Name, bone.Parent)
			}
			bones = append(bones, bone)
		}
		return nil
	})
	return bones, err
}

func parseBone(data []byte) (Bone, error) {
	bone := Bone{Parent: -1}
	err := walkChunks(data, func(id uint32, payload []byte) error {
		switch id {
		case chunkBoneName:
			bone.Name = cString(payload)
		case chunkBoneDataV1:
			return readBoneData(payload, &bone, false)
		case chunkBoneDataV2:
			return readBoneData(payload, &bone, true)
		}
		return nil
	})
	return bone, err
}

// readBoneData fills in a bone's parent index, visibility, billboard mode
// (v2 only; v1 bones are always BillboardNone), and parent-relative
// transform from a skeleton_bone_data_v1/v2 payload.
func readBoneData(data []byte, bone *Bone, hasBillboard bool) error {
	r := bytes.NewReader(data)
	var parent int32
	var visible uint32
	if err := binary.Read(r, binary.LittleEndian, &parent); err != nil {
		return fmt.Errorf("%w: bone data: %v", render.ErrInvalidFormat, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &visible); err != nil {
		return fmt.Errorf("%w: bone data: %v", render.ErrInvalidFormat, err)
	}
	bone.Parent, bone.Visible = parent, visible != 0
	if hasBillboard {
		var mode uint32
		if err := binary.Read(r, binary.LittleEndian, &mode); err != nil {
			return fmt.Errorf("%w: bone data: %v", render.ErrInvalidFormat, err)
		}
		bone.Billboard = BillboardMode(mode)
	} else {
		bone.Billboard = BillboardNone
	}
	transform, err := readBoneTransform(r)
	if err != nil {
		return err
	}
	bone.Transform = transform
	return nil
}

// readBoneTransform reads a 3x4 transform stored as three Vector4 columns
// (X, Y, Z); the implied W column is always (0, 0, 0, 1).
func readBoneTransform(r *bytes.Reader) (*lin.M4, error) {
	var cols [3][4]float32
	for i := range cols {
		if err := binary.Read(r, binary.LittleEndian, &cols[i]); err != nil {
			return nil, fmt.Errorf("%w: bone transform: %v", render.ErrInvalidFormat, err)
		}
	}
	m := lin.NewM4()
	m.Xx, m.Xy, m.Xz, m.Xw = float64(cols[0][0]), float64(cols[0][1]), float64(cols[0][2]), float64(cols[0][3])
	m.Yx, m.Yy, m.Yz, m.Yw = float64(cols[1][0]), float64(cols[1][1]), float64(cols[1][2]), float64(cols[1][3])
	m.Zx, m.Zy, m.Zz, m.Zw = float64(cols[2][0]), float64(cols[2][1]), float64(cols[2][2]), float64(cols[2][3])
	m.Wx, m.Wy, m.Wz, m.Ww = 0, 0, 0, 1
	return m, nil
}

func parseMesh(data []byte) (ModelMesh, error) {
	mesh := ModelMesh{BoneIndex: -1}
	submeshIdx, shaderIdx := 0, 0
	err := walkChunks(data, func(id uint32, payload []byte) error {
		switch id {
		case chunkMeshName:
			name, lod, alt := parseMeshName(cString(payload))
			mesh.Name, mesh.LOD, mesh.Alt = name, lod, alt
		case chunkMeshInfo:
			count, visible, err := parseMeshInfo(payload)
			if err != nil {
				return err
			}
			mesh.Submeshes = make([]Submesh, count)
			mesh.Visible = visible
		case chunkSubmesh:
			if submeshIdx >= len(mesh.Submeshes) {
				return fmt.Errorf("%w: mesh %q: more submeshes than materials declared", render.ErrInvalidFormat, mesh.Name)
			}
			sm, err := parseSubmesh(payload)
			if err != nil {
				return err
			}
			mesh.Submeshes[submeshIdx].Mesh = sm.Mesh
			submeshIdx++
		case chunkShaderInfo:
			if shaderIdx >= len(mesh.Submeshes) {
				return fmt.Errorf("%w: mesh %q: more shader-infos than materials declared", render.ErrInvalidFormat, mesh.Name)
			}
			name, params, err := parseShaderInfo(payload)
			if err != nil {
				return err
			}
			mesh.Submeshes[shaderIdx].ShaderName = name
			mesh.Submeshes[shaderIdx].Params = params
			shaderIdx++
		}
		return nil
	})
	return mesh, err
}

// parseMeshName splits trailing "_ALT<n>" and "_LOD<n>" suffixes (in that
// order) off a mesh name, returning the base name and the parsed levels.
func parseMeshName(name string) (base string, lod, alt int) {
	base = name
	if i := strings.Index(base, "_ALT"); i >= 0 {
		if v, err := strconv.Atoi(base[i+4:]); err == nil {
			base, alt = base[:i], v
		}
	}
	if i := strings.Index(base, "_LOD"); i >= 0 {
		if v, err := strconv.Atoi(base[i+4:]); err == nil {
			base, lod = base[:i], v
		}
	}
	return base, lod, alt
}

// parseMeshInfo reads a mesh_info payload: material count, a bounding-box
// min and max (unused by the engine, discarded), a reserved field, then a
// visibility flag where 0 means visible.
func parseMeshInfo(data []byte) (materialCount int, visible bool, err error) {
	r := bytes.NewReader(data)
	var count uint32
	if err = binary.Read(r, binary.LittleEndian, &count); err != nil {
		return 0, false, fmt.Errorf("%w: mesh info: %v", render.ErrInvalidFormat, err)
	}
	var bboxMin, bboxMax [3]float32
	var reserved, visibleFlag uint32
	if err = binary.Read(r, binary.LittleEndian, &bboxMin); err != nil {
		return 0, false, fmt.Errorf("%w: mesh info: %v", render.ErrInvalidFormat, err)
	}
	if err = binary.Read(r, binary.LittleEndian, &bboxMax); err != nil {
		return 0, false, fmt.Errorf("%w: mesh info: %v", render.ErrInvalidFormat, err)
	}
	if err = binary.Read(r, binary.LittleEndian, &reserved); err != nil {
		return 0, false, fmt.Errorf("%w: mesh info: %v", render.ErrInvalidFormat, err)
	}
	if err = binary.Read(r, binary.LittleEndian, &visibleFlag); err != nil {
		return 0, false, fmt.Errorf("%w: mesh info: %v", render.ErrInvalidFormat, err)
	}
	return int(count), visibleFlag == 0, nil
}

// rawVertexV1/V2 mirror the on-disk vertex record exactly, including the
// always-zeroed trailing bone-index/weight fields that a static (unskinned)
// mesh still carries for a uniform vertex layout.
type rawVertexV1 struct {
	Position    [3]float32
	Normal      [3]float32
	UV0, UV1    [2]float32
	Tangent     [3]float32
	Binormal    [3]float32
	Color       [4]float32
	BoneIndices [4]uint32
	BoneWeights [4]float32
}

type rawVertexV2 struct {
	Position    [3]float32
	Normal      [3]float32
	UV0, UV1    [2]float32
	Tangent     [3]float32
	Binormal    [3]float32
	Color       [4]float32
	_           [4]float32 // reserved Vector4 padding
	BoneIndices [4]uint32
	BoneWeights [4]float32
}

func parseSubmesh(data []byte) (Submesh, error) {
	var vertices []render.Vertex
	var indices []uint16
	err := walkChunks(data, func(id uint32, payload []byte) error {
		switch id {
		case chunkSubmeshInfo:
			r := bytes.NewReader(payload)
			var info struct{ VertexCount, TriangleCount uint32 }
			if err := binary.Read(r, binary.LittleEndian, &info); err != nil {
				return fmt.Errorf("%w: submesh info: %v", render.ErrInvalidFormat, err)
			}
			vertices = make([]render.Vertex, info.VertexCount)
			indices = make([]uint16, info.TriangleCount*3)
		case chunkSubmeshVerticesV1:
			return readVerticesV1(payload, vertices)
		case chunkSubmeshVerticesV2:
			return readVerticesV2(payload, vertices)
		case chunkSubmeshIndices:
			r := bytes.NewReader(payload)
			if err := binary.Read(r, binary.LittleEndian, indices); err != nil {
				return fmt.Errorf("%w: submesh indices: %v", render.ErrInvalidFormat, err)
			}
		}
		return nil
	})
	if err != nil {
		return Submesh{}, err
	}
	mesh, err := render.NewMesh("", vertices, indices)
	if err != nil {
		return Submesh{}, err
	}
	return Submesh{Mesh: mesh}, nil
}

func readVerticesV1(payload []byte, out []render.Vertex) error {
	r := bytes.NewReader(payload)
	for i := range out {
		var rv rawVertexV1
		if err := binary.Read(r, binary.LittleEndian, &rv); err != nil {
			return fmt.Errorf("%w: vertex %d: %v", render.ErrInvalidFormat, i, err)
		}
		out[i] = render.Vertex{
			Position: rv.Position, Normal: rv.Normal, UV: rv.UV0,
			Tangent: rv.Tangent, Binormal: rv.Binormal, Color: rv.Color,
		}
	}
	return nil
}

func readVerticesV2(payload []byte, out []render.Vertex) error {
	r := bytes.NewReader(payload)
	for i := range out {
		var rv rawVertexV2
		if err := binary.Read(r, binary.LittleEndian, &rv); err != nil {
			return fmt.Errorf("%w: vertex %d: %v", render.ErrInvalidFormat, i, err)
		}
		out[i] = render.Vertex{
			Position: rv.Position, Normal: rv.Normal, UV: rv.UV0,
			Tangent: rv.Tangent, Binormal: rv.Binormal, Color: rv.Color,
		}
	}
	return nil
}

func parseShaderInfo(data []byte) (name string, params []MaterialParam, err error) {
	err = walkChunks(data, func(id uint32, payload []byte) error {
		switch id {
		case chunkShaderName:
			name = cString(payload)
		case chunkShaderParamInt:
			p, err := parseMaterialParam(payload, ParamInt)
			if err != nil {
				return err
			}
			params = append(params, p)
		case chunkShaderParamFloat:
			p, err := parseMaterialParam(payload, ParamFloat)
			if err != nil {
				return err
			}
			params = append(params, p)
		case chunkShaderParamFloat3:
			p, err := parseMaterialParam(payload, ParamFloat3)
			if err != nil {
				return err
			}
			params = append(params, p)
		case chunkShaderParamFloat4:
			p, err := parseMaterialParam(payload, ParamFloat4)
			if err != nil {
				return err
			}
			params = append(params, p)
		case chunkShaderParamTexture:
			p, err := parseMaterialParam(payload, ParamTexture)
			if err != nil {
				return err
			}
			params = append(params, p)
		}
		return nil
	})
	return name, params, err
}

// parseMaterialParam reads a {name, value} pair nested inside one of the
// shader_param_* chunks; id 1 is the parameter name, id 2 its value, typed
// according to kind.
func parseMaterialParam(data []byte, kind MaterialParamKind) (MaterialParam, error) {
	p := MaterialParam{Kind: kind}
	err := walkChunks(data, func(id uint32, payload []byte) error {
		switch id {
		case 1:
			p.Name = cString(payload)
		case 2:
			return readMaterialParamValue(payload, &p)
		}
		return nil
	})
	return p, err
}

func readMaterialParamValue(payload []byte, p *MaterialParam) error {
	switch p.Kind {
	case ParamInt:
		v, err := readUint32(payload)
		if err != nil {
			return err
		}
		p.Int = int32(v)
	case ParamFloat:
		v, err := readFloat32(payload)
		if err != nil {
			return err
		}
		p.Float = v
	case ParamFloat3:
		if len(payload) < 12 {
			return fmt.Errorf("%w: float3 param: expected 12 bytes, got %d", render.ErrInvalidFormat, len(payload))
		}
		if err := binary.Read(bytes.NewReader(payload), binary.LittleEndian, &p.Float3); err != nil {
			return fmt.Errorf("%w: float3 param: %v", render.ErrInvalidFormat, err)
		}
	case ParamFloat4:
		if len(payload) < 16 {
			return fmt.Errorf("%w: float4 param: expected 16 bytes, got %d", render.ErrInvalidFormat, len(payload))
		}
		if err := binary.Read(bytes.NewReader(payload), binary.LittleEndian, &p.Float4); err != nil {
			return fmt.Errorf("%w: float4 param: %v", render.ErrInvalidFormat, err)
		}
	case ParamTexture:
		p.Texture = cString(payload)
	}
	return nil
}

// parseConnections maps object index -> bone index for each connections_object
// chunk, assigning the bone index onto the corresponding mesh. Objects that
// are lights are skipped; an object index past the known objects is an
// InvalidFormat error. The bone index is stored as given, without a range
// check against the skeleton.
func parseConnections(data []byte, meshes []ModelMesh, objectMesh []*int) error {
	return walkChunks(data, func(id uint32, payload []byte) error {
		if id != chunkConnectionsObject {
			return nil
		}
		var objectIndex, boneIndex uint32
		var haveObject, haveBone bool
		err := walkChunks(payload, func(id uint32, payload []byte) error {
			switch id {
			case 2:
				v, err := readUint32(payload)
				if err != nil {
					return err
				}
				objectIndex, haveObject = v, true
			case 3:
				v, err := readUint32(payload)
				if err != nil {
					return err
				}
				boneIndex, haveBone = v, true
			}
			return nil
		})
		if err != nil {
			return err
		}
		if !haveObject || !haveBone || int(objectIndex) >= len(objectMesh) {
			return fmt.Errorf("%w: connection references an unknown object", render.ErrInvalidFormat)
		}
		meshIdx := objectMesh[objectIndex]
		if meshIdx == nil {
			return nil // the object is a light, not a mesh; nothing to connect.
		}
		meshes[*meshIdx].BoneIndex = int32(boneIndex)
		return nil
	})
}

// DirectionalLight is one of an Environment's up-to-three sun lights.
type DirectionalLight struct {
	Color         [3]float32
	SpecularColor [3]float32
	Intensity     float32
	ZAngle        float32 // radians, azimuth around the up axis
	Tilt          float32 // radians, elevation above the ground plane
	Direction     [3]float32
}

// Skydome is one of an Environment's up-to-two sky backdrops.
type Skydome struct {
	Name   string
	Scale  float32
	Tilt   float32 // radians
	ZAngle float32 // radians
}

// Wind describes an environment's prevailing wind, used to drive billboard
// orientation and foliage sway.
type Wind struct {
	Speed     float32
	Direction [2]float32
}

// Environment is one lighting/sky/wind preset a map can activate.
type Environment struct {
	Name         string
	Lights       [3]DirectionalLight
	AmbientColor [3]float32
	Skydomes     [2]Skydome
	Wind         Wind
}

// Map is the parsed contents of a Map binary chunk stream.
type Map struct {
	Version           uint32
	Environments      []Environment
	ActiveEnvironment int
}

// ParseMap parses a Map binary chunk stream. The only supported version is
// 0x201; any other version is an InvalidFormat error.
func ParseMap(data []byte) (Map, error) {
	var m Map
	err := walkChunks(data, func(id uint32, payload []byte) error {
		switch id {
		case chunkMapInfo:
			version, err := parseMapVersion(payload)
			if err != nil {
				return err
			}
			if version != mapFormatVersion {
				return fmt.Errorf("%w: map version 0x%x, only 0x%x supported", render.ErrInvalidFormat, version, mapFormatVersion)
			}
			m.Version = version
		case chunkMapData:
			return parseMapData(payload, &m)
		}
		return nil
	})
	if err != nil {
		return Map{}, err
	}
	if m.ActiveEnvironment >= len(m.Environments) {
		m.ActiveEnvironment = 0
	}
	return m, nil
}

func parseMapVersion(data []byte) (uint32, error) {
	var version uint32
	err := walkChunks(data, func(id uint32, payload []byte) error {
		if id == 0 {
			v, err := readUint32(payload)
			if err != nil {
				return err
			}
			version = v
		}
		return nil
	})
	return version, err
}

func parseMapData(data []byte, m *Map) error {
	return walkChunks(data, func(id uint32, payload []byte) error {
		if id == chunkMapDataEnvironmentSet {
			return parseEnvironmentSet(payload, m)
		}
		return nil
	})
}

func parseEnvironmentSet(data []byte, m *Map) error {
	return walkChunks(data, func(id uint32, payload []byte) error {
		switch id {
		case chunkMapDataEnvironments:
			return walkChunks(payload, func(id uint32, payload []byte) error {
				if id != chunkMapDataEnvironment {
					return nil
				}
				env, err := parseEnvironment(payload)
				if err != nil {
					return err
				}
				m.Environments = append(m.Environments, env)
				return nil
			})
		case chunkMapDataActiveEnvironment:
			v, err := readUint32(payload)
			if err != nil {
				return err
			}
			m.ActiveEnvironment = int(v)
		}
		return nil
	})
}

// directionFromAngles converts a light's z-angle (azimuth, radians) and
// tilt (elevation above the ground plane, radians) into a unit direction
// vector in the Z-up world frame.
func directionFromAngles(zAngle, tilt float32) [3]float32 {
	cosTilt := float32(math.Cos(float64(tilt)))
	return [3]float32{
		cosTilt * float32(math.Cos(float64(zAngle))),
		cosTilt * float32(math.Sin(float64(zAngle))),
		float32(math.Sin(float64(tilt))),
	}
}

func parseEnvironment(data []byte) (Environment, error) {
	env := Environment{
		Lights: [3]DirectionalLight{{ZAngle: math.Pi / 4}, {ZAngle: math.Pi / 4}, {ZAngle: math.Pi / 4}},
	}
	err := walkChunks(data, func(id uint32, payload []byte) error {
		switch id {
		case 0:
			return readRGB(payload, &env.Lights[0].Color)
		case 1:
			return readRGB(payload, &env.Lights[1].Color)
		case 2:
			return readRGB(payload, &env.Lights[2].Color)
		case 3:
			return readRGB(payload, &env.Lights[0].SpecularColor)
		case 4:
			return readRGB(payload, &env.AmbientColor)
		case 5:
			return readScalar(payload, &env.Lights[0].Intensity)
		case 6:
			return readScalar(payload, &env.Lights[1].Intensity)
		case 7:
			return readScalar(payload, &env.Lights[2].Intensity)
		case 8:
			return readScalar(payload, &env.Lights[0].ZAngle)
		case 9:
			return readScalar(payload, &env.Lights[1].ZAngle)
		case 10:
			return readScalar(payload, &env.Lights[2].ZAngle)
		case 11:
			return readScalar(payload, &env.Lights[0].Tilt)
		case 12:
			return readScalar(payload, &env.Lights[1].Tilt)
		case 13:
			return readScalar(payload, &env.Lights[2].Tilt)
		case 20:
			env.Name = cString(payload)
		case 25:
			env.Skydomes[0].Name = cString(payload)
		case 26:
			env.Skydomes[1].Name = cString(payload)
		case 27:
			return readScalar(payload, &env.Skydomes[0].Scale)
		case 28:
			return readScalar(payload, &env.Skydomes[1].Scale)
		case 29:
			return readDegrees(payload, &env.Skydomes[0].Tilt)
		case 30:
			return readDegrees(payload, &env.Skydomes[1].Tilt)
		case 31:
			return readDegrees(payload, &env.Skydomes[0].ZAngle)
		case 32:
			return readDegrees(payload, &env.Skydomes[1].ZAngle)
		case 43:
			var windZAngleDeg float32
			if err := readScalar(payload, &windZAngleDeg); err != nil {
				return err
			}
			windAngle := windZAngleDeg * float32(degToRad)
			env.Wind.Direction = [2]float32{float32(math.Cos(float64(windAngle))), float32(math.Sin(float64(windAngle)))}
		case 44:
			return readScalar(payload, &env.Wind.Speed)
		}
		return nil
	})
	if err != nil {
		return Environment{}, err
	}
	for i := range env.Lights {
		env.Lights[i].Direction = directionFromAngles(env.Lights[i].ZAngle, env.Lights[i].Tilt)
	}
	return env, nil
}

func readRGB(payload []byte, out *[3]float32) error {
	if len(payload) < 12 {
		return fmt.Errorf("%w: rgb color: expected 12 bytes, got %d", render.ErrInvalidFormat, len(payload))
	}
	return binary.Read(bytes.NewReader(payload), binary.LittleEndian, out)
}

func readScalar(payload []byte, out *float32) error {
	v, err := readFloat32(payload)
	if err != nil {
		return err
	}
	*out = v
	return nil
}

// readDegrees reads a float32 stored in degrees and converts it to radians.
func readDegrees(payload []byte, out *float32) error {
	v, err := readFloat32(payload)
	if err != nil {
		return err
	}
	*out = v * float32(degToRad)
	return nil
}
