// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads Parameters from a YAML file, layered on top of base (any
// field absent from the file keeps base's value). This mirrors the
// defaults-then-overrides layering the teacher's builder/runtime config
// files used, generalized to YAML instead of ad hoc Go struct copies.
func LoadYAML(path string, base Parameters) (Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Parameters{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	p := base
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Parameters{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return p, nil
}
