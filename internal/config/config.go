package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultParticles  = 200
	DefaultSpread     = 200.0
	DefaultDt         = 0.02
	DefaultGrowthRate = 0.05
	DefaultDotSize    = 2
	DefaultFrameRate  = 30

	// Dot radius bounds for the renderer, in canvas sub-pixels.
	MinDotSize = 1
	MaxDotSize = 8
)

type Config struct {
	Law         string  `yaml:"law"`
	Particles   int     `yaml:"particles"`
	Spread      float64 `yaml:"spread"`
	Seed        int64   `yaml:"seed"`
	Dt          float64 `yaml:"dt"`
	GrowthRate  float64 `yaml:"growth_rate"`
	DotSize     int     `yaml:"dot_size"`
	FrameRate   int     `yaml:"frame_rate"`
	SnapshotDir string  `yaml:"snapshot_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Law:         "linear",
		Particles:   DefaultParticles,
		Spread:      DefaultSpread,
		Dt:          DefaultDt,
		GrowthRate:  DefaultGrowthRate,
		DotSize:     DefaultDotSize,
		FrameRate:   DefaultFrameRate,
		SnapshotDir: "snapshots",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the simulation cannot start with.
// Dot size is clamped rather than rejected.
func (c *Config) Validate() error {
	if c.Particles <= 0 {
		return fmt.Errorf("config: particles must be positive, got %d", c.Particles)
	}
	if c.Spread <= 0 || math.IsNaN(c.Spread) || math.IsInf(c.Spread, 0) {
		return fmt.Errorf("config: spread must be positive and finite, got %f", c.Spread)
	}
	if c.Dt <= 0 || math.IsNaN(c.Dt) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("config: dt must be positive and finite, got %f", c.Dt)
	}
	if c.GrowthRate < 0 || math.IsNaN(c.GrowthRate) || math.IsInf(c.GrowthRate, 0) {
		return fmt.Errorf("config: growth rate must be non-negative and finite, got %f", c.GrowthRate)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("config: frame rate must be positive, got %d", c.FrameRate)
	}
	c.DotSize = ClampDotSize(c.DotSize)
	return nil
}

// ClampDotSize keeps a dot radius within render bounds.
func ClampDotSize(size int) int {
	if size < MinDotSize {
		return MinDotSize
	}
	if size > MaxDotSize {
		return MaxDotSize
	}
	return size
}
