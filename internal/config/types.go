// Package config loads and validates the YAML configuration for the
// sampling server.
package config

// Raw mirrors the YAML schema; optional fields are pointers so absence can
// be told apart from zero values.
type Raw struct {
	Listen string     `yaml:"listen,omitempty"`
	Engine string     `yaml:"engine,omitempty"`
	Seed   *uint64    `yaml:"seed,omitempty"`
	Sim    *SimConfig `yaml:"sim,omitempty"`
	Notes  string     `yaml:"notes,omitempty"`
}

// SimConfig bounds the simulation endpoint.
type SimConfig struct {
	MaxTrials *int `yaml:"max_trials,omitempty"`
}

// Params are the normalized server parameters after defaults are applied.
type Params struct {
	Listen    string
	Engine    string
	Seed      uint64
	SeedSet   bool // false means pick a fresh crypto seed at startup
	MaxTrials int
}

// Engine names accepted by the server.
const (
	EngineLCG64      = "lcg64"
	EngineXorShift32 = "xorshift32"
	EngineSplitMix64 = "splitmix64"
)

// Defaults used for fields the file leaves unset.
const (
	DefaultListen    = ":8080"
	DefaultEngine    = EngineLCG64
	DefaultMaxTrials = 1000000
)
