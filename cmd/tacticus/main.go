// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command tacticus validates a mod content set: it resolves the mod path
// list, loads the mod manifest, registers the default render pipeline and
// checks the default tactical-camera preset exists, then reports success.
// It is the engine's equivalent of the teacher's vu_*.go platform entry
// points, minus the windowing run loop those own (out of scope here).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacticus/engine/asset"
	"github.com/tacticus/engine/internal/config"
	"github.com/tacticus/engine/internal/logx"
	"github.com/tacticus/engine/load"
	"github.com/tacticus/engine/render"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("tacticus", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	showVersion := fs.Bool("version", false, "print the version and exit")
	modPathsFlag := fs.String("modpaths", "", "comma-separated list of mod content directories or .meg archives")
	fs.Usage = func() {
		fmt.Fprintln(os.Stdout, "tacticus validates a mod content set and exits.")
		fmt.Fprintln(os.Stdout, "\nUsage: tacticus --modpaths <dir-or-.meg>[,<dir-or-.meg>...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Fprintln(os.Stdout, "tacticus", version)
		return 0
	}

	var modPaths []string
	for _, p := range strings.Split(*modPathsFlag, ",") {
		if p = strings.TrimSpace(p); p != "" {
			modPaths = append(modPaths, p)
		}
	}
	if len(modPaths) == 0 {
		fs.Usage()
		return 2
	}

	cfg := config.New(config.ModPaths(modPaths...))

	mods, err := openModSet(cfg.ModPaths)
	if err != nil {
		logx.Fatal("failed to open mod content", "err", err)
		return 1
	}
	defer mods.Close()

	manifestData, err := mods.Read("mod_manifest.yaml")
	if err != nil {
		logx.Fatal("failed to read mod_manifest.yaml", "err", err)
		return 1
	}
	manifest, err := asset.ParseManifest(manifestData)
	if err != nil {
		logx.Fatal("failed to parse mod_manifest.yaml", "err", err)
		return 1
	}
	if cfg.Pipeline == "default" && manifest.DefaultPipeline != "" {
		cfg.Pipeline = manifest.DefaultPipeline
	}
	if cfg.CameraPreset == "default" && manifest.DefaultCamera != "" {
		cfg.CameraPreset = manifest.DefaultCamera
	}

	registry := render.NewPipelineRegistry()
	pipelinesData, err := mods.Read("render_pipelines.xml")
	if err != nil {
		logx.Fatal("failed to read render_pipelines.xml", "err", err)
		return 1
	}
	pipelines := load.ParseRenderPipelines(pipelinesData)
	found := false
	for _, pd := range pipelines {
		if _, err := registry.RegisterPipeline(pd.Name, pd.Passes); err != nil {
			logx.Fatal("failed to register render pipeline", "name", pd.Name, "err", err)
			return 1
		}
		if pd.Name == cfg.Pipeline {
			found = true
		}
	}
	if !found {
		logx.Fatal("default render pipeline not found among mod content", "pipeline", cfg.Pipeline)
		return 1
	}

	camerasData, err := mods.Read("tactical_cameras.xml")
	if err != nil {
		logx.Fatal("failed to read tactical_cameras.xml", "err", err)
		return 1
	}
	cameras := load.ParseTacticalCameras(camerasData)
	cameraFound := false
	for _, c := range cameras {
		if c.Name == cfg.CameraPreset {
			cameraFound = true
			break
		}
	}
	if !cameraFound {
		logx.Fatal("default tactical camera preset not found among mod content", "preset", cfg.CameraPreset)
		return 1
	}

	fmt.Fprintf(os.Stdout, "mod content OK: %d pipeline(s), %d camera preset(s), default pipeline %q, default camera %q\n",
		len(pipelines), len(cameras), cfg.Pipeline, cfg.CameraPreset)
	return 0
}

// modSet resolves named content files against an ordered list of mod
// paths, later paths overriding earlier ones, each either a plain
// directory or a .meg mega archive.
type modSet struct {
	dirs     []string
	archives []*load.MegaArchive
}

func openModSet(paths []string) (*modSet, error) {
	ms := &modSet{}
	for _, p := range paths {
		if strings.EqualFold(filepath.Ext(p), ".meg") {
			arc, err := load.OpenMegaArchive(p)
			if err != nil {
				ms.Close()
				return nil, err
			}
			ms.archives = append(ms.archives, arc)
			ms.dirs = append(ms.dirs, "")
			continue
		}
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			ms.Close()
			return nil, fmt.Errorf("%w: mod path %q is not a directory or .meg archive", render.ErrBadArgument, p)
		}
		ms.dirs = append(ms.dirs, p)
		ms.archives = append(ms.archives, nil)
	}
	return ms, nil
}

// Read returns name's bytes from the last mod path that provides it.
func (m *modSet) Read(name string) ([]byte, error) {
	for i := len(m.dirs) - 1; i >= 0; i-- {
		if arc := m.archives[i]; arc != nil {
			sub, err := arc.OpenFile(name)
			if err != nil {
				continue
			}
			data := make([]byte, sub.Size())
			if _, err := sub.Read(data); err != nil {
				return nil, err
			}
			return data, nil
		}
		data, err := os.ReadFile(filepath.Join(m.dirs[i], name))
		if err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: %q not found in any mod path", render.ErrNotFound, name)
}

func (m *modSet) Close() {
	for _, arc := range m.archives {
		if arc != nil {
			arc.Close()
		}
	}
}
