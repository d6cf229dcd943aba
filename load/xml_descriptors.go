// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

// xml_descriptors.go parses the Material, RenderPipeline, and
// TacticalCamera descriptor files into render/game-ready values. A
// descriptor that fails to parse is logged and skipped; it does not abort
// loading of the remaining descriptors in the same list. Unlike the asset
// cache's once-per-key miss logging, every skip is logged each time.

import (
	"encoding/xml"
	"fmt"
	"log"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tacticus/engine/render"
)

var nameFold = cases.Fold()

// FoldName returns the canonical case-insensitive form of a descriptor
// name, using Unicode case folding from golang.org/x/text/cases. The
// descriptor parsers in this file and asset.Cache do not call it;
// asset.Cache normalizes its keys with strings.ToLower.
func FoldName(name string) string { return nameFold.String(name) }

// materialXML mirrors a <Material> element.
type materialXML struct {
	XMLName xml.Name     `xml:"Material"`
	Name    string       `xml:"Name,attr"`
	Type    string       `xml:"Type,attr"`
	Shader  string       `xml:"Shader"`
	NumDL   *int         `xml:"Num_Directional_Lights"`
	NumPL   *int         `xml:"Num_Point_Lights"`
	Params  []paramXML   `xml:"Param"`
	pipelineOptionsXML
}

type paramXML struct {
	Name  string `xml:"Name,attr"`
	Type  string `xml:"Type,attr"`
	Value string `xml:",chardata"`
}

// pipelineOptionsXML is embedded into both Material and RenderPass
// descriptors, matching §6's shared graphics-pipeline-option attribute set.
type pipelineOptionsXML struct {
	CullMode         string `xml:"Cull_Mode,attr"`
	FrontCCW         string `xml:"Front_CCW,attr"`
	AlphaBlend       string `xml:"Alpha_Blend,attr"`
	DepthEnable      string `xml:"Depth_Enable,attr"`
	DepthFunc        string `xml:"Depth_Func,attr"`
	DepthWriteEnable string `xml:"Depth_Write_Enable,attr"`
}

// MaterialDescriptor is the parsed, render-ready form of a <Material>
// element, still needing its Shader field resolved by name through an
// asset cache before becoming a *render.Material.
type MaterialDescriptor struct {
	Name                 string
	Type                 string
	ShaderName           string
	NumDirectionalLights int
	NumPointLights       int
	Properties           []render.Property
	Options              render.PipelineOptions
}

// ParseMaterials parses a sequence of <Material> elements (wrapped in any
// root element named by the caller's document) out of data. Descriptors
// that fail to parse are logged and skipped.
func ParseMaterials(data []byte) []MaterialDescriptor {
	var doc struct {
		Materials []materialXML `xml:"Material"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		log.Printf("load: ParseMaterials: %v", err)
		return nil
	}
	var out []MaterialDescriptor
	for _, mx := range doc.Materials {
		md, err := toMaterialDescriptor(mx)
		if err != nil {
			log.Printf("load: skipping material %q: %v", mx.Name, err)
			continue
		}
		out = append(out, md)
	}
	return out
}

func toMaterialDescriptor(mx materialXML) (MaterialDescriptor, error) {
	if mx.Name == "" || mx.Shader == "" {
		return MaterialDescriptor{}, fmt.Errorf("%w: material missing Name or Shader", render.ErrParseFailure)
	}
	md := MaterialDescriptor{
		Name:       mx.Name,
		Type:       mx.Type,
		ShaderName: mx.Shader,
	}
	if mx.NumDL != nil {
		md.NumDirectionalLights = *mx.NumDL
	}
	if mx.NumPL != nil {
		md.NumPointLights = *mx.NumPL
	}
	opts, err := parsePipelineOptions(mx.pipelineOptionsXML)
	if err != nil {
		return MaterialDescriptor{}, err
	}
	md.Options = opts
	for _, p := range mx.Params {
		prop, err := toProperty(p)
		if err != nil {
			return MaterialDescriptor{}, err
		}
		md.Properties = append(md.Properties, prop)
	}
	return md, nil
}

func toProperty(p paramXML) (render.Property, error) {
	if p.Name == "" {
		return render.Property{}, fmt.Errorf("%w: param missing Name", render.ErrParseFailure)
	}
	value := strings.TrimSpace(p.Value)
	switch strings.ToLower(p.Type) {
	case "int":
		v, err := strconv.Atoi(value)
		if err != nil {
			return render.Property{}, fmt.Errorf("%w: param %q: %v", render.ErrParseFailure, p.Name, err)
		}
		return render.Property{Name: p.Name, Default: render.IntValue(int32(v))}, nil
	case "float":
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return render.Property{}, fmt.Errorf("%w: param %q: %v", render.ErrParseFailure, p.Name, err)
		}
		return render.Property{Name: p.Name, Default: render.FloatValue(float32(v))}, nil
	case "float2":
		f, err := parseFloats(value, 2)
		if err != nil {
			return render.Property{}, fmt.Errorf("%w: param %q: %v", render.ErrParseFailure, p.Name, err)
		}
		return render.Property{Name: p.Name, Default: render.Vec2Value(f[0], f[1])}, nil
	case "float3":
		f, err := parseFloats(value, 3)
		if err != nil {
			return render.Property{}, fmt.Errorf("%w: param %q: %v", render.ErrParseFailure, p.Name, err)
		}
		return render.Property{Name: p.Name, Default: render.Vec3Value(f[0], f[1], f[2])}, nil
	case "float4":
		f, err := parseFloats(value, 4)
		if err != nil {
			return render.Property{}, fmt.Errorf("%w: param %q: %v", render.ErrParseFailure, p.Name, err)
		}
		return render.Property{Name: p.Name, Default: render.Vec4Value(f[0], f[1], f[2], f[3])}, nil
	case "matrix":
		f, err := parseFloats(value, 16)
		if err != nil {
			return render.Property{}, fmt.Errorf("%w: param %q: %v", render.ErrParseFailure, p.Name, err)
		}
		var m [16]float32
		copy(m[:], f)
		return render.Property{Name: p.Name, Default: render.Mat4Value(m)}, nil
	case "texture":
		return render.Property{Name: p.Name, Default: render.TextureValue(value)}, nil
	}
	return render.Property{}, fmt.Errorf("%w: param %q: unknown type %q", render.ErrParseFailure, p.Name, p.Type)
}

func parseFloats(value string, n int) ([]float32, error) {
	fields := strings.Fields(value)
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}

// parsePipelineOptions parses only the fields actually present in o; an
// absent (empty-string) attribute leaves the corresponding
// render.PipelineOptions field nil, so resolveOptions falls through to the
// pass default or engine default, matching §4.2's override-then-default
// resolution.
func parsePipelineOptions(o pipelineOptionsXML) (render.PipelineOptions, error) {
	var opts render.PipelineOptions
	if strings.TrimSpace(o.CullMode) != "" {
		cull, err := parseCullMode(o.CullMode)
		if err != nil {
			return opts, err
		}
		opts.CullMode = &cull
	}
	if strings.TrimSpace(o.FrontCCW) != "" {
		ccw := parseBool(o.FrontCCW)
		opts.FrontCCW = &ccw
	}
	if strings.TrimSpace(o.AlphaBlend) != "" {
		blend, err := parseAlphaBlend(o.AlphaBlend)
		if err != nil {
			return opts, err
		}
		opts.AlphaBlend = &blend
	}
	if strings.TrimSpace(o.DepthEnable) != "" {
		enable := parseBool(o.DepthEnable)
		opts.DepthEnable = &enable
	}
	if strings.TrimSpace(o.DepthFunc) != "" {
		fn, err := parseDepthFunc(o.DepthFunc)
		if err != nil {
			return opts, err
		}
		opts.DepthFunc = &fn
	}
	if strings.TrimSpace(o.DepthWriteEnable) != "" {
		write := parseBool(o.DepthWriteEnable)
		opts.DepthWriteEnable = &write
	}
	return opts, nil
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(strings.TrimSpace(s))
	return b
}

func parseCullMode(s string) (render.CullMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return render.CullNone, nil
	case "back":
		return render.CullBack, nil
	case "front":
		return render.CullFront, nil
	}
	return 0, fmt.Errorf("%w: unknown Cull_Mode %q", render.ErrParseFailure, s)
}

func parseAlphaBlend(s string) (render.AlphaBlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return render.BlendNone, nil
	case "blend_src":
		return render.BlendSrcAlpha, nil
	case "additive":
		return render.BlendAdditive, nil
	}
	return 0, fmt.Errorf("%w: unknown Alpha_Blend %q", render.ErrParseFailure, s)
}

func parseDepthFunc(s string) (render.DepthFunc, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "never":
		return render.DepthNever, nil
	case "less":
		return render.DepthLess, nil
	case "equal":
		return render.DepthEqual, nil
	case "less_equal":
		return render.DepthLessEqual, nil
	case "greater":
		return render.DepthGreater, nil
	case "not_equal":
		return render.DepthNotEqual, nil
	case "greater_equal":
		return render.DepthGreaterEqual, nil
	case "always":
		return render.DepthAlways, nil
	}
	return 0, fmt.Errorf("%w: unknown Depth_Func %q", render.ErrParseFailure, s)
}

// renderPipelineXML mirrors a <RenderPipeline> element.
type renderPipelineXML struct {
	XMLName xml.Name        `xml:"RenderPipeline"`
	Name    string          `xml:"Name,attr"`
	Passes  []renderPassXML `xml:"RenderPass"`
}

type renderPassXML struct {
	MaterialType string `xml:"Material_Type,attr"`
	DepthSort    string `xml:"Depth_Sort,attr"`
	pipelineOptionsXML
}

// RenderPipelineDescriptor is the parsed form of a <RenderPipeline>
// element, ready to be registered via render.PipelineRegistry.RegisterPipeline.
type RenderPipelineDescriptor struct {
	Name   string
	Passes []render.RenderPass
}

// ParseRenderPipelines parses a sequence of <RenderPipeline> elements.
// Descriptors that fail to parse are logged and skipped.
func ParseRenderPipelines(data []byte) []RenderPipelineDescriptor {
	var doc struct {
		Pipelines []renderPipelineXML `xml:"RenderPipeline"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		log.Printf("load: ParseRenderPipelines: %v", err)
		return nil
	}
	var out []RenderPipelineDescriptor
	for _, px := range doc.Pipelines {
		pd, err := toRenderPipelineDescriptor(px)
		if err != nil {
			log.Printf("load: skipping render pipeline %q: %v", px.Name, err)
			continue
		}
		out = append(out, pd)
	}
	return out
}

func toRenderPipelineDescriptor(px renderPipelineXML) (RenderPipelineDescriptor, error) {
	if px.Name == "" {
		return RenderPipelineDescriptor{}, fmt.Errorf("%w: render pipeline missing Name", render.ErrParseFailure)
	}
	pd := RenderPipelineDescriptor{Name: px.Name}
	for _, rp := range px.Passes {
		sort, err := parseDepthSort(rp.DepthSort)
		if err != nil {
			return RenderPipelineDescriptor{}, err
		}
		opts, err := parsePipelineOptions(rp.pipelineOptionsXML)
		if err != nil {
			return RenderPipelineDescriptor{}, err
		}
		pd.Passes = append(pd.Passes, render.RenderPass{
			MaterialType: rp.MaterialType,
			DepthSort:    sort,
			Defaults:     opts,
		})
	}
	return pd, nil
}

func parseDepthSort(s string) (render.DepthSort, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return render.SortNone, nil
	case "front_to_back":
		return render.SortFrontToBack, nil
	case "back_to_front":
		return render.SortBackToFront, nil
	}
	return 0, fmt.Errorf("%w: unknown Depth_Sort %q", render.ErrParseFailure, s)
}

// TacticalCameraDescriptor is the parsed form of a per-camera XML element:
// per-property bounds, sensitivity, smoothing time, and optional spline
// control points, angles already converted from degrees to radians.
type TacticalCameraDescriptor struct {
	Name         string
	UseSplines   bool
	SplineSteps  int
	Pitch        PropertyDescriptor
	Distance     PropertyDescriptor
	Fov          PropertyDescriptor
	Yaw          PropertyDescriptor
}

// PropertyDescriptor is one smoothed/interpolated tactical-camera property's
// configuration: its bounds, input sensitivity, smoothing time constant,
// and (when the camera uses splines) control points as (x, y) pairs.
type PropertyDescriptor struct {
	Min, Max        float64
	PerMouseUnit    float64
	SmoothTime      float64
	SplinePoints    [][2]float64
}

type tacticalCameraXML struct {
	XMLName     xml.Name `xml:"TacticalCamera"`
	Name        string   `xml:"Name,attr"`
	UseSplines  string   `xml:"Use_Splines,attr"`
	SplineSteps string   `xml:"Spline_Steps,attr"`

	PitchMin           string `xml:"Pitch_Min"`
	PitchMax           string `xml:"Pitch_Max"`
	PitchPerMouseUnit  string `xml:"Pitch_Per_Mouse_Unit"`
	PitchSmoothTime    string `xml:"Pitch_Smooth_Time"`
	PitchSpline        string `xml:"Pitch_Spline"`

	DistanceMin          string `xml:"Distance_Min"`
	DistanceMax          string `xml:"Distance_Max"`
	DistancePerMouseUnit string `xml:"Distance_Per_Mouse_Unit"`
	DistanceSmoothTime   string `xml:"Distance_Smooth_Time"`
	DistanceSpline       string `xml:"Distance_Spline"`

	FovMin          string `xml:"Fov_Min"`
	FovMax          string `xml:"Fov_Max"`
	FovPerMouseUnit string `xml:"Fov_Per_Mouse_Unit"`
	FovSmoothTime   string `xml:"Fov_Smooth_Time"`
	FovSpline       string `xml:"Fov_Spline"`

	YawMin          string `xml:"Yaw_Min"`
	YawMax          string `xml:"Yaw_Max"`
	YawPerMouseUnit string `xml:"Yaw_Per_Mouse_Unit"`
	YawSmoothTime   string `xml:"Yaw_Smooth_Time"`
	YawSpline       string `xml:"Yaw_Spline"`
}

// ParseTacticalCameras parses a sequence of <TacticalCamera> elements.
// Descriptors that fail to parse are logged and skipped.
func ParseTacticalCameras(data []byte) []TacticalCameraDescriptor {
	var doc struct {
		Cameras []tacticalCameraXML `xml:"TacticalCamera"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		log.Printf("load: ParseTacticalCameras: %v", err)
		return nil
	}
	var out []TacticalCameraDescriptor
	for _, cx := range doc.Cameras {
		cd, err := toTacticalCameraDescriptor(cx)
		if err != nil {
			log.Printf("load: skipping tactical camera %q: %v", cx.Name, err)
			continue
		}
		out = append(out, cd)
	}
	return out
}

func toTacticalCameraDescriptor(cx tacticalCameraXML) (TacticalCameraDescriptor, error) {
	if cx.Name == "" {
		return TacticalCameraDescriptor{}, fmt.Errorf("%w: tactical camera missing Name", render.ErrParseFailure)
	}
	cd := TacticalCameraDescriptor{Name: cx.Name, UseSplines: parseBool(cx.UseSplines)}
	cd.SplineSteps = 1
	if cx.SplineSteps != "" {
		n, err := strconv.Atoi(strings.TrimSpace(cx.SplineSteps))
		if err != nil || n < 1 {
			return TacticalCameraDescriptor{}, fmt.Errorf("%w: tactical camera %q: invalid Spline_Steps", render.ErrParseFailure, cx.Name)
		}
		cd.SplineSteps = n
	}

	var err error
	if cd.Pitch, err = toPropertyDescriptor(cx.PitchMin, cx.PitchMax, cx.PitchPerMouseUnit, cx.PitchSmoothTime, cx.PitchSpline, true); err != nil {
		return TacticalCameraDescriptor{}, err
	}
	if cd.Distance, err = toPropertyDescriptor(cx.DistanceMin, cx.DistanceMax, cx.DistancePerMouseUnit, cx.DistanceSmoothTime, cx.DistanceSpline, false); err != nil {
		return TacticalCameraDescriptor{}, err
	}
	if cd.Fov, err = toPropertyDescriptor(cx.FovMin, cx.FovMax, cx.FovPerMouseUnit, cx.FovSmoothTime, cx.FovSpline, true); err != nil {
		return TacticalCameraDescriptor{}, err
	}
	if cd.Yaw, err = toPropertyDescriptor(cx.YawMin, cx.YawMax, cx.YawPerMouseUnit, cx.YawSmoothTime, cx.YawSpline, true); err != nil {
		return TacticalCameraDescriptor{}, err
	}
	return cd, nil
}

const degToRad = 3.14159265358979323846 / 180

// toPropertyDescriptor parses one property's bounds/sensitivity/spline
// fields. angleDegrees marks properties whose values are given in degrees
// in the XML and must be converted to radians on load.
func toPropertyDescriptor(min, max, perMouseUnit, smoothTime, spline string, angleDegrees bool) (PropertyDescriptor, error) {
	var pd PropertyDescriptor
	var err error
	scale := 1.0
	if angleDegrees {
		scale = degToRad
	}
	if pd.Min, err = parseOptionalFloat(min, 0); err != nil {
		return pd, err
	}
	if pd.Max, err = parseOptionalFloat(max, 0); err != nil {
		return pd, err
	}
	pd.Min *= scale
	pd.Max *= scale
	if pd.PerMouseUnit, err = parseOptionalFloat(perMouseUnit, 0); err != nil {
		return pd, err
	}
	pd.PerMouseUnit *= scale
	if pd.SmoothTime, err = parseOptionalFloat(smoothTime, 0); err != nil {
		return pd, err
	}
	spline = strings.TrimSpace(spline)
	if spline == "" {
		return pd, nil
	}
	fields := strings.Fields(spline)
	if len(fields)%2 != 0 {
		return pd, fmt.Errorf("%w: spline control points must come in (x,y) pairs", render.ErrParseFailure)
	}
	for i := 0; i < len(fields); i += 2 {
		x, err1 := strconv.ParseFloat(fields[i], 64)
		y, err2 := strconv.ParseFloat(fields[i+1], 64)
		if err1 != nil || err2 != nil {
			return pd, fmt.Errorf("%w: invalid spline control point %q %q", render.ErrParseFailure, fields[i], fields[i+1])
		}
		pd.SplinePoints = append(pd.SplinePoints, [2]float64{x, y * scale})
	}
	return pd, nil
}

func parseOptionalFloat(s string, fallback float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", render.ErrParseFailure, err)
	}
	return v, nil
}
