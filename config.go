package mh

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// CoolingSchedule names one of the three cooling schedules SimulatedAnnealing
// supports.
type CoolingSchedule string

const (
	CoolingExponential  CoolingSchedule = "exponential"
	CoolingLinear       CoolingSchedule = "linear"
	CoolingLogarithmic CoolingSchedule = "logarithmic"
)

// Config is an immutable-by-convention snapshot of every recognized
// tuning knob, resolved once before a Scheduler's run starts. Zero value
// is not valid; use NewConfig to get the documented defaults.
type Config struct {
	Seed uint64 `json:"seed"`

	MaxIterations             int64   `json:"mh_titer"`  // -1: unlimited
	MaxIterationsNoImprove    int64   `json:"mh_tciter"` // -1: unlimited
	MaxSeconds                float64 `json:"mh_ttime"`  // -1: unlimited
	TargetObjectiveSet        bool    `json:"mh_tobj_set"`
	TargetObjective           float64 `json:"mh_tobj"`
	LogFrequency              int64   `json:"mh_lfreq"`

	PopulationSize  int `json:"mh_pop_size"`
	TournamentSize  int `json:"mh_tournament_size"`
	DupElim         bool `json:"mh_dupelim"`

	SSGACrossProb float64 `json:"mh_ssga_cross_prob"`
	SSGALocProb   float64 `json:"mh_ssga_loc_prob"`

	VNSKMax int `json:"mh_vns_kmax"`

	SAInitialTemperature float64         `json:"mh_sa_initial_temperature"`
	SACoolingRate        float64         `json:"mh_sa_cooling_rate"`
	SACoolingSchedule    CoolingSchedule `json:"mh_sa_cooling_schedule"`
}

// NewConfig returns a Config populated with the documented defaults; the
// caller still must set fields relevant to the chosen strategy (e.g.
// PopulationSize for SSGA runs).
func NewConfig() *Config {
	return &Config{
		MaxIterations:          -1,
		MaxIterationsNoImprove: -1,
		MaxSeconds:             -1,
		LogFrequency:           100,
		PopulationSize:         100,
		TournamentSize:         10,
		SSGACrossProb:          1.0,
		SSGALocProb:            0.1,
		VNSKMax:                5,
		SAInitialTemperature:   100,
		SACoolingRate:          0.95,
		SACoolingSchedule:      CoolingExponential,
	}
}

// Validate aggregates every out-of-range recognized option into a single
// *InvalidConfigurationError rather than failing on the first violation,
// so a caller sees the full picture before fixing its configuration.
func (c *Config) Validate() error {
	var violations []string
	add := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	if c.MaxIterations < -1 {
		add("mh_titer must be -1 (unlimited) or >= 0 (got %d)", c.MaxIterations)
	}
	if c.MaxIterationsNoImprove < -1 {
		add("mh_tciter must be -1 (unlimited) or >= 0 (got %d)", c.MaxIterationsNoImprove)
	}
	if c.MaxSeconds < -1 {
		add("mh_ttime must be -1 (unlimited) or >= 0 (got %f)", c.MaxSeconds)
	}
	if c.PopulationSize < 2 {
		// Select reserves index 0, so a population needs at least one
		// other member to draw from.
		add("mh_pop_size must be >= 2 (got %d)", c.PopulationSize)
	}
	if c.TournamentSize < 1 {
		add("mh_tournament_size must be >= 1 (got %d)", c.TournamentSize)
	}
	if c.SSGACrossProb < 0 || c.SSGACrossProb > 1 {
		add("mh_ssga_cross_prob must be in [0,1] (got %f)", c.SSGACrossProb)
	}
	if c.SSGALocProb < 0 || c.SSGALocProb > 1 {
		add("mh_ssga_loc_prob must be in [0,1] (got %f)", c.SSGALocProb)
	}
	if c.VNSKMax < 1 {
		add("mh_vns_kmax must be >= 1 (got %d)", c.VNSKMax)
	}
	if c.SAInitialTemperature <= 0 {
		add("mh_sa_initial_temperature must be positive (got %f)", c.SAInitialTemperature)
	}
	switch c.SACoolingSchedule {
	case CoolingExponential:
		if c.SACoolingRate <= 0 || c.SACoolingRate >= 1 {
			add("mh_sa_cooling_rate must be in (0,1) for the exponential schedule (got %f)", c.SACoolingRate)
		}
	case CoolingLinear, CoolingLogarithmic:
		if c.SACoolingRate <= 0 {
			add("mh_sa_cooling_rate must be positive for the %s schedule (got %f)", c.SACoolingSchedule, c.SACoolingRate)
		}
	default:
		add("mh_sa_cooling_schedule must be one of exponential, linear, logarithmic (got %q)", c.SACoolingSchedule)
	}

	if len(violations) > 0 {
		return &InvalidConfigurationError{Violations: violations}
	}
	return nil
}

// LoadConfigJSON reads and validates a Config from a JSON file.
func LoadConfigJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// SaveJSON writes config as indented JSON to path.
func (c *Config) SaveJSON(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveBinary encodes config as an opaque gob blob. The format carries no
// compatibility guarantee beyond round-tripping the values this Config
// currently holds.
func (c *Config) SaveBinary(w io.Writer) error {
	// Encode through a method-less copy of the type: gob would otherwise
	// call Config.MarshalBinary, which calls SaveBinary again.
	type plainConfig Config
	if err := gob.NewEncoder(w).Encode((*plainConfig)(c)); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// LoadConfigBinary decodes a Config previously written by SaveBinary and
// validates it.
func LoadConfigBinary(r io.Reader) (*Config, error) {
	config := &Config{}
	if err := gob.NewDecoder(r).Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// MarshalBinary round-trips a Config through a byte slice, for callers
// embedding the blob elsewhere (e.g. inside another wire message) rather
// than writing it directly to a file.
func (c *Config) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.SaveBinary(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
