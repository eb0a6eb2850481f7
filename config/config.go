// Package config loads sensor subsystem tuning from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gazekit/cursor"
	"github.com/lixenwraith/gazekit/parameter"
)

// Config is the root of the subsystem configuration
type Config struct {
	Pool        PoolConfig         `yaml:"pool"`
	Picker      PickerConfig       `yaml:"picker"`
	Controllers []ControllerConfig `yaml:"controllers"`
}

// PoolConfig tunes event recycling
type PoolConfig struct {
	// Capacity bounds the free list; 0 selects the default
	Capacity int `yaml:"capacity"`
}

// PickerConfig tunes ray casting
type PickerConfig struct {
	// MaxRange is the pick distance bound in scene units; 0 selects the default
	MaxRange float64 `yaml:"max_range"`
}

// ControllerConfig declares one input source
type ControllerConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"` // gaze, mouse, gamepad
}

// ControllerKind maps the declared kind name to a cursor.Kind
func (c ControllerConfig) ControllerKind() (cursor.Kind, error) {
	switch c.Kind {
	case "gaze":
		return cursor.KindGaze, nil
	case "mouse":
		return cursor.KindMouse, nil
	case "gamepad":
		return cursor.KindGamepad, nil
	default:
		return 0, fmt.Errorf("config: unknown controller kind %q", c.Kind)
	}
}

// Default returns the built-in configuration: one gaze controller,
// parameter-package defaults everywhere else
func Default() Config {
	return Config{
		Pool:   PoolConfig{Capacity: parameter.MaxRecycledEvents},
		Picker: PickerConfig{MaxRange: parameter.DefaultPickRange},
		Controllers: []ControllerConfig{
			{Name: "gaze", Kind: "gaze"},
		},
	}
}

// Load parses YAML data over the defaults
// Returns error on malformed YAML, unknown controller kinds, or negative bounds
func Load(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads and parses a YAML config file
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config read: %w", err)
	}
	return Load(data)
}

func (c Config) validate() error {
	if c.Pool.Capacity < 0 {
		return fmt.Errorf("config: pool capacity must be >= 0, got %d", c.Pool.Capacity)
	}
	if c.Picker.MaxRange < 0 {
		return fmt.Errorf("config: picker max_range must be >= 0, got %v", c.Picker.MaxRange)
	}
	for _, cc := range c.Controllers {
		if cc.Name == "" {
			return fmt.Errorf("config: controller with empty name")
		}
		if _, err := cc.ControllerKind(); err != nil {
			return err
		}
	}
	return nil
}

// BuildControllers constructs controllers from the declared set
func (c Config) BuildControllers() ([]*cursor.Controller, error) {
	out := make([]*cursor.Controller, 0, len(c.Controllers))
	for _, cc := range c.Controllers {
		kind, err := cc.ControllerKind()
		if err != nil {
			return nil, err
		}
		out = append(out, cursor.NewController(cc.Name, kind))
	}
	return out, nil
}
