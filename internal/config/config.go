// Package config holds the YAML runtime configuration for the demo driver.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	Log     Log     `yaml:"log"`
	Run     Run     `yaml:"run"`
	Scene   Scene   `yaml:"scene"`
	Terrain Terrain `yaml:"terrain"`
}

// Log configures the structured logger.
type Log struct {
	Level string `yaml:"level"`
}

// Run configures the frame driver.
type Run struct {
	// Frames to simulate before exiting. Zero or negative runs a single frame.
	Frames int `yaml:"frames"`
	// FrameSeconds is the fixed delta time fed to each frame.
	FrameSeconds float64 `yaml:"frame_seconds"`
	// CycleSeconds is the accumulated time between OnCycle passes.
	CycleSeconds float64 `yaml:"cycle_seconds"`
}

// Scene configures the CSG shape scene.
type Scene struct {
	Enabled bool   `yaml:"enabled"`
	Seed    int64  `yaml:"seed"`
	Min     [3]int `yaml:"min"`
	Max     [3]int `yaml:"max"`
	Spheres int    `yaml:"spheres"`
}

// Terrain configures the noise terrain scene.
type Terrain struct {
	Enabled bool `yaml:"enabled"`
	// RandomSeed draws a fresh seed instead of using Seed. The drawn seed is
	// logged so a run can be reproduced.
	RandomSeed bool   `yaml:"random_seed"`
	Seed       uint32 `yaml:"seed"`
	Size       int    `yaml:"size"`
}

// Default returns the configuration the demo runs with when no file is given.
func Default() Config {
	return Config{
		Log: Log{Level: "info"},
		Run: Run{
			Frames:       120,
			FrameSeconds: 1.0 / 60.0,
			CycleSeconds: 10,
		},
		Scene: Scene{
			Enabled: true,
			Seed:    1,
			Min:     [3]int{-50, -50, -50},
			Max:     [3]int{50, 50, 50},
			Spheres: 15,
		},
		Terrain: Terrain{
			Enabled: true,
			Seed:    1337,
			Size:    64,
		},
	}
}

// Load decodes a YAML document over the defaults.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads and decodes a YAML config file.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Validate rejects configurations the runtime cannot honor.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	if c.Run.FrameSeconds <= 0 {
		return fmt.Errorf("config: frame_seconds must be positive, got %v", c.Run.FrameSeconds)
	}
	if c.Run.CycleSeconds <= 0 {
		return fmt.Errorf("config: cycle_seconds must be positive, got %v", c.Run.CycleSeconds)
	}
	if c.Scene.Enabled {
		for axis := 0; axis < 3; axis++ {
			if c.Scene.Min[axis] >= c.Scene.Max[axis] {
				return fmt.Errorf("config: scene bounds axis %d: min %d must be below max %d",
					axis, c.Scene.Min[axis], c.Scene.Max[axis])
			}
		}
		if c.Scene.Spheres < 0 {
			return fmt.Errorf("config: scene spheres must not be negative, got %d", c.Scene.Spheres)
		}
	}
	if c.Terrain.Enabled && c.Terrain.Size <= 0 {
		return fmt.Errorf("config: terrain size must be positive, got %d", c.Terrain.Size)
	}
	return nil
}
