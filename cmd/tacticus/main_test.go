// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

const testManifest = `
default_pipeline: default
default_camera: overview
`

const testPipelines = `
<RenderPipelines>
  <RenderPipeline Name="default">
    <RenderPass Material_Type="opaque" Depth_Sort="none" />
  </RenderPipeline>
</RenderPipelines>
`

const testCameras = `
<TacticalCameras>
  <TacticalCamera Name="overview">
    <Pitch_Min>10</Pitch_Min>
    <Pitch_Max>80</Pitch_Max>
    <Pitch_Per_Mouse_Unit>1</Pitch_Per_Mouse_Unit>
    <Pitch_Smooth_Time>0.2</Pitch_Smooth_Time>
    <Distance_Min>10</Distance_Min>
    <Distance_Max>200</Distance_Max>
    <Distance_Per_Mouse_Unit>0.5</Distance_Per_Mouse_Unit>
    <Distance_Smooth_Time>0.2</Distance_Smooth_Time>
    <Fov_Min>30</Fov_Min>
    <Fov_Max>70</Fov_Max>
    <Fov_Per_Mouse_Unit>0</Fov_Per_Mouse_Unit>
    <Fov_Smooth_Time>0.2</Fov_Smooth_Time>
    <Yaw_Min>-180</Yaw_Min>
    <Yaw_Max>180</Yaw_Max>
    <Yaw_Per_Mouse_Unit>1</Yaw_Per_Mouse_Unit>
    <Yaw_Smooth_Time>0.2</Yaw_Smooth_Time>
  </TacticalCamera>
</TacticalCameras>
`

func writeModDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"mod_manifest.yaml":   testManifest,
		"render_pipelines.xml": testPipelines,
		"tactical_cameras.xml": testCameras,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestRunValidatesWellFormedModSet(t *testing.T) {
	dir := writeModDir(t)
	if code := run([]string{"--modpaths", dir}); code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
}

func TestRunFailsWhenModPathMissing(t *testing.T) {
	if code := run([]string{"--modpaths", "/does/not/exist"}); code == 0 {
		t.Errorf("run() = 0, want non-zero for a missing mod path")
	}
}

func TestRunFailsWhenManifestMissing(t *testing.T) {
	dir := t.TempDir()
	if code := run([]string{"--modpaths", dir}); code == 0 {
		t.Errorf("run() = 0, want non-zero when mod_manifest.yaml is absent")
	}
}

func TestRunFailsWhenDefaultPipelineAbsent(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "mod_manifest.yaml"), []byte("default_pipeline: missing\ndefault_camera: overview\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "render_pipelines.xml"), []byte(testPipelines), 0o644)
	os.WriteFile(filepath.Join(dir, "tactical_cameras.xml"), []byte(testCameras), 0o644)
	if code := run([]string{"--modpaths", dir}); code == 0 {
		t.Errorf("run() = 0, want non-zero when the manifest's default pipeline is not registered")
	}
}

func TestRunRequiresModPathsFlag(t *testing.T) {
	if code := run(nil); code == 0 {
		t.Errorf("run() = 0, want non-zero when --modpaths is omitted")
	}
}

func TestRunPrintsVersionAndExitsZero(t *testing.T) {
	if code := run([]string{"--version"}); code != 0 {
		t.Errorf("run() = %d, want 0 for --version", code)
	}
}

func TestModSetLaterPathOverridesEarlier(t *testing.T) {
	base := t.TempDir()
	override := t.TempDir()
	os.WriteFile(filepath.Join(base, "shared.txt"), []byte("base"), 0o644)
	os.WriteFile(filepath.Join(override, "shared.txt"), []byte("override"), 0o644)

	ms, err := openModSet([]string{base, override})
	if err != nil {
		t.Fatalf("openModSet: %v", err)
	}
	defer ms.Close()

	got, err := ms.Read("shared.txt")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "override" {
		t.Errorf("Read(shared.txt) = %q, want %q", got, "override")
	}
}
