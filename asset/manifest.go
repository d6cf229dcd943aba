// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package asset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest is the top-level mod descriptor: the ordered list of mod
// content paths to load (later paths override earlier ones on name
// collision), the default render pipeline name to activate, and the
// default tactical-camera preset name.
type Manifest struct {
	ModPaths        []string `yaml:"mod_paths"`
	DefaultPipeline string   `yaml:"default_pipeline"`
	DefaultCamera   string   `yaml:"default_camera"`
}

// ParseManifest decodes a mod_manifest.yaml document's bytes into a
// Manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: manifest: %v", ErrParseFailure, err)
	}
	return m, nil
}
