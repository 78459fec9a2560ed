// File: config.go
// Role: YAML sweep configuration with defaults and validation.

package experiment

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spectra/demand"
	"github.com/katalvlaran/spectra/rmlsa"
	"github.com/katalvlaran/spectra/spectrum"
)

// Sentinel errors for configuration contract violations.
var (
	// ErrNoLoads indicates an empty load list.
	ErrNoLoads = errors.New("experiment: at least one load level required")

	// ErrBadLoad indicates a non-positive load level.
	ErrBadLoad = errors.New("experiment: load levels must be positive")

	// ErrBadRuns indicates a non-positive runs-per-load count.
	ErrBadRuns = errors.New("experiment: runs per load must be positive")

	// ErrBadParallelism indicates a non-positive trial parallelism.
	ErrBadParallelism = errors.New("experiment: parallelism must be positive")
)

// Config is the YAML-backed sweep configuration. Zero fields take the
// defaults from DefaultConfig; Validate rejects the rest.
type Config struct {
	// Loads lists the demand counts to sweep, one batch size per level.
	Loads []int `yaml:"loads"`

	// RunsPerLoad is the number of independent trials at each load.
	RunsPerLoad int `yaml:"runs_per_load"`

	// MinBandwidthGbps and MaxBandwidthGbps bound generated demands.
	MinBandwidthGbps float64 `yaml:"min_bandwidth_gbps"`
	MaxBandwidthGbps float64 `yaml:"max_bandwidth_gbps"`

	// FanOut is the adaptive allocator's Normal-mode path count.
	FanOut int `yaml:"fan_out"`

	// Capacity is the per-link slot count of every trial ledger.
	Capacity int `yaml:"capacity"`

	// Parallelism bounds how many trials run concurrently.
	Parallelism int `yaml:"parallelism"`
}

// DefaultConfig returns the reference sweep: four load levels, five
// runs each, the standard bandwidth range and ledger capacity.
func DefaultConfig() Config {
	return Config{
		Loads:            []int{50, 100, 150, 200},
		RunsPerLoad:      5,
		MinBandwidthGbps: demand.MinBandwidthGbps,
		MaxBandwidthGbps: demand.MaxBandwidthGbps,
		FanOut:           3,
		Capacity:         spectrum.DefaultCapacity,
		Parallelism:      runtime.GOMAXPROCS(0),
	}
}

// LoadConfig reads a YAML file over the defaults: fields absent from
// the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("experiment: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("experiment: parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration contract, returning the first
// violated sentinel.
func (c Config) Validate() error {
	if len(c.Loads) == 0 {
		return ErrNoLoads
	}
	for _, l := range c.Loads {
		if l <= 0 {
			return fmt.Errorf("%w: got %d", ErrBadLoad, l)
		}
	}
	if c.RunsPerLoad <= 0 {
		return ErrBadRuns
	}
	if c.MinBandwidthGbps <= 0 || c.MinBandwidthGbps > c.MaxBandwidthGbps {
		return demand.ErrBadRange
	}
	if c.FanOut < 1 {
		return rmlsa.ErrBadFanOut
	}
	if c.Capacity <= 0 {
		return spectrum.ErrBadCapacity
	}
	if c.Parallelism <= 0 {
		return ErrBadParallelism
	}

	return nil
}
