package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, validates it, and normalizes it into
// Params. A missing file is not an error; all defaults apply.
func Load(path string) (Params, error) {
	raw, err := readYAML(path)
	if err != nil {
		return Params{}, fmt.Errorf("read config: %w", err)
	}
	if err := ValidateRaw(raw); err != nil {
		return Params{}, err
	}
	return normalize(raw), nil
}

// readYAML loads a YAML file into Raw. Missing files return zero cfg, no error.
func readYAML(path string) (Raw, error) {
	var cfg Raw
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Raw{}, nil
		}
		return Raw{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Raw{}, err
	}
	return cfg, nil
}

// normalize fills defaults for unset fields.
func normalize(raw Raw) Params {
	p := Params{
		Listen:    raw.Listen,
		Engine:    raw.Engine,
		MaxTrials: DefaultMaxTrials,
	}
	if p.Listen == "" {
		p.Listen = DefaultListen
	}
	if p.Engine == "" {
		p.Engine = DefaultEngine
	}
	if raw.Seed != nil {
		p.Seed = *raw.Seed
		p.SeedSet = true
	}
	if raw.Sim != nil && raw.Sim.MaxTrials != nil {
		p.MaxTrials = *raw.Sim.MaxTrials
	}
	return p
}
