package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type presetFile struct {
	Presets []ModePreset `yaml:"presets"`
}

// LoadRegistry builds the registry from the built-ins, then overrides or
// extends it with entries from the YAML file at path. An empty path returns
// the built-ins untouched. A file that cannot be read or parsed, or an entry
// missing required fields, is a startup error.
func LoadRegistry(path string) (*Registry, error) {
	r := NewRegistry()
	if path == "" {
		return r, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f presetFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parsing preset file %s: %w", path, err)
	}
	for _, p := range f.Presets {
		if err := validatePreset(p); err != nil {
			return nil, fmt.Errorf("preset file %s: %w", path, err)
		}
		r.presets[p.Mode] = p
	}
	return r, nil
}
