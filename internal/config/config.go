// Package config handles generator configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/holo-terrain/internal/terrain"
)

// Config holds all generator settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Loop    LoopConfig    `yaml:"loop"`
	Export  ExportConfig  `yaml:"export"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`

	// Source is the file the config was read from, empty when only defaults and flags apply.
	Source string `yaml:"-"`
}

// TerrainConfig holds heightmap size and generation schedule.
type TerrainConfig struct {
	WidthCm         int     `yaml:"width_cm"`
	HeightCm        int     `yaml:"height_cm"`
	Resolution      int     `yaml:"resolution"` // samples per centimetre
	Depth           int     `yaml:"depth"`
	MaxAmplitude    float32 `yaml:"max_amplitude"`
	MinAmplitude    float32 `yaml:"min_amplitude"`
	FilterFactor    float32 `yaml:"filter_factor"`
	IterationBudget int     `yaml:"iteration_budget"`
	Seed            uint64  `yaml:"seed"` // 0 picks a seed from the clock
}

// LoopConfig holds frame loop pacing.
type LoopConfig struct {
	TickRate          time.Duration `yaml:"tick_rate"`
	IterationsPerTick int           `yaml:"iterations_per_tick"`
}

// ExportConfig holds heightmap export settings.
type ExportConfig struct {
	Dir         string  `yaml:"dir"` // empty disables export
	Name        string  `yaml:"name"`
	HeightScale float32 `yaml:"height_scale"`
}

// MetricsConfig holds the Prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr"` // empty disables the endpoint
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	s := terrain.DefaultSettings()
	return &Config{
		Terrain: TerrainConfig{
			WidthCm:         s.WidthCm,
			HeightCm:        s.HeightCm,
			Resolution:      s.Resolution,
			Depth:           s.Depth,
			MaxAmplitude:    s.MaxAmplitude,
			MinAmplitude:    s.MinAmplitude,
			FilterFactor:    s.FilterFactor,
			IterationBudget: s.IterationBudget,
		},
		Loop: LoopConfig{
			TickRate:          time.Second / 60,
			IterationsPerTick: 1,
		},
		Export: ExportConfig{
			Dir:         "out",
			Name:        "terrain",
			HeightScale: 0.01,
		},
		Metrics: MetricsConfig{
			Addr: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Settings converts the terrain section for terrain.New.
func (c *Config) Settings() terrain.Settings {
	t := c.Terrain
	return terrain.Settings{
		WidthCm:         t.WidthCm,
		HeightCm:        t.HeightCm,
		Resolution:      t.Resolution,
		Depth:           t.Depth,
		MaxAmplitude:    t.MaxAmplitude,
		MinAmplitude:    t.MinAmplitude,
		FilterFactor:    t.FilterFactor,
		IterationBudget: t.IterationBudget,
	}
}

// Validate checks the loaded values before anything is allocated.
func (c *Config) Validate() error {
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("terrain: %w", err)
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("loop: tick_rate must be positive, got %v", c.Loop.TickRate)
	}
	if c.Loop.IterationsPerTick < 1 {
		return fmt.Errorf("loop: iterations_per_tick must be at least 1, got %d", c.Loop.IterationsPerTick)
	}
	if c.Export.Dir != "" && c.Export.Name == "" {
		return fmt.Errorf("export: name is required when dir is set")
	}
	return nil
}
