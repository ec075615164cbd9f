// Package preset holds the mode-to-configuration dispatch table: each mode
// maps to a system instruction, a model identifier, and generation tuning
// values. Presets are pure data; adding a mode is adding one record.
package preset

import (
	"fmt"
	"sort"
)

// Mode keys known at build time.
const (
	ModeAssistant = "assistant"
	ModeTutor     = "tutor"
	ModeConcept   = "concept"
)

// GenerationConfig carries the provider tuning knobs for a mode. The values
// are validated for presence only; provider-specific legality is the remote
// service's concern.
type GenerationConfig struct {
	Temperature     float32 `yaml:"temperature"`
	TopP            float32 `yaml:"top_p"`
	TopK            float32 `yaml:"top_k"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
}

// ModePreset is one immutable registry entry.
type ModePreset struct {
	Mode              string           `yaml:"mode"`
	Model             string           `yaml:"model"`
	SystemInstruction string           `yaml:"system"`
	Generation        GenerationConfig `yaml:"generation"`
}

// Registry is the fixed mode→preset table. It is built once at startup and
// read-only afterwards, so concurrent lookups need no synchronization.
type Registry struct {
	presets map[string]ModePreset
}

// NewRegistry returns the built-in preset table.
func NewRegistry() *Registry {
	r := &Registry{presets: make(map[string]ModePreset)}
	for _, p := range builtinPresets() {
		r.presets[p.Mode] = p
	}
	return r
}

func builtinPresets() []ModePreset {
	return []ModePreset{
		{
			Mode:              ModeAssistant,
			Model:             "gemini-1.5-flash-latest",
			SystemInstruction: assistantPrompt,
			Generation: GenerationConfig{
				Temperature:     0.7,
				TopP:            0.95,
				TopK:            40,
				MaxOutputTokens: 8192,
			},
		},
		{
			Mode:              ModeTutor,
			Model:             "gemini-2.0-flash",
			SystemInstruction: tutorPrompt,
			Generation: GenerationConfig{
				Temperature:     0.55,
				TopP:            0.95,
				TopK:            32,
				MaxOutputTokens: 8192,
			},
		},
		{
			Mode:              ModeConcept,
			Model:             "gemini-2.0-flash",
			SystemInstruction: conceptPrompt,
			Generation: GenerationConfig{
				Temperature:     0.55,
				TopP:            0.95,
				TopK:            32,
				MaxOutputTokens: 8192,
			},
		},
	}
}

// Lookup resolves a mode key. The second return is false for any key outside
// the known set; callers must reject the request rather than default.
func (r *Registry) Lookup(mode string) (ModePreset, bool) {
	p, ok := r.presets[mode]
	return p, ok
}

// Modes returns the known mode keys in sorted order.
func (r *Registry) Modes() []string {
	out := make([]string, 0, len(r.presets))
	for k := range r.presets {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func validatePreset(p ModePreset) error {
	if p.Mode == "" {
		return fmt.Errorf("preset is missing a mode key")
	}
	if p.SystemInstruction == "" {
		return fmt.Errorf("preset %q is missing a system instruction", p.Mode)
	}
	if p.Model == "" {
		return fmt.Errorf("preset %q is missing a model identifier", p.Mode)
	}
	g := p.Generation
	if g.Temperature <= 0 || g.TopP <= 0 || g.TopK <= 0 || g.MaxOutputTokens <= 0 {
		return fmt.Errorf("preset %q has an incomplete generation config", p.Mode)
	}
	return nil
}
