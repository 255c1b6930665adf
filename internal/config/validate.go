package config

import (
	"fmt"
	"strings"
)

// ValidateRaw checks semantic constraints of a Raw config.
func ValidateRaw(cfg Raw) error {
	var errs []string

	switch cfg.Engine {
	case "", EngineLCG64, EngineXorShift32, EngineSplitMix64:
	default:
		errs = append(errs, fmt.Sprintf("engine must be one of: %s, %s, %s",
			EngineLCG64, EngineXorShift32, EngineSplitMix64))
	}

	if cfg.Sim != nil && cfg.Sim.MaxTrials != nil && *cfg.Sim.MaxTrials < 1 {
		errs = append(errs, "sim.max_trials must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
