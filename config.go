package walkthrough

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config tunes the camera controller, pointer tracker and interactive items.
// Zero fields take their defaults, so a config file only needs the values it
// changes.
type Config struct {
	// ClickTolerance is the click-vs-drag radius in screen pixels.
	ClickTolerance float64 `yaml:"click_tolerance" toml:"click_tolerance"`

	// LookDamping is the fraction of pending look input applied per frame.
	LookDamping float64 `yaml:"look_damping" toml:"look_damping"`
	// WheelDamping is the fraction of wheel thrust shed per frame.
	WheelDamping float64 `yaml:"wheel_damping" toml:"wheel_damping"`
	// Sensitivity scales drag deltas into look input.
	Sensitivity float64 `yaml:"sensitivity" toml:"sensitivity"`
	// SlowSpeed and FastSpeed are wheel movement speeds in units per second.
	SlowSpeed float64 `yaml:"slow_speed" toml:"slow_speed"`
	FastSpeed float64 `yaml:"fast_speed" toml:"fast_speed"`
	// FastKey is the key that switches to FastSpeed while held.
	FastKey string `yaml:"fast_key" toml:"fast_key"`
	// Epsilon is the snap-to-zero and look-target jitter threshold.
	Epsilon float64 `yaml:"epsilon" toml:"epsilon"`
	// NearPlaneMultiple blocks right-click moves to hits closer than
	// NearPlaneMultiple * camera.Near.
	NearPlaneMultiple float64 `yaml:"near_plane_multiple" toml:"near_plane_multiple"`
	// ApproachFraction is how far a right-click move travels toward the hit.
	ApproachFraction float64 `yaml:"approach_fraction" toml:"approach_fraction"`

	// ToggleDuration is the open/close animation length in seconds.
	ToggleDuration float64 `yaml:"toggle_duration" toml:"toggle_duration"`
	// DoorTravel is the door opening angle in radians.
	DoorTravel float64 `yaml:"door_travel" toml:"door_travel"`
	// HingeWindowTravel is the hinged window opening angle in radians.
	HingeWindowTravel float64 `yaml:"hinge_window_travel" toml:"hinge_window_travel"`
	// SashTravel is how far a sash window slides, in units.
	SashTravel float64 `yaml:"sash_travel" toml:"sash_travel"`

	// Items maps scene object names to interaction kinds ("hinge-door",
	// "sash-window-top", ...). When non-empty it replaces DefaultCatalog.
	Items map[string]string `yaml:"items" toml:"items"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		ClickTolerance:    defaultClickTolerance,
		LookDamping:       0.07,
		WheelDamping:      0.09,
		Sensitivity:       0.5,
		SlowSpeed:         2,
		FastSpeed:         5,
		FastKey:           "shift",
		Epsilon:           1e-3,
		NearPlaneMultiple: 3,
		ApproachFraction:  0.8,
		ToggleDuration:    1,
		DoorTravel:        1.48353,
		HingeWindowTravel: 0.349066,
		SashTravel:        0.3,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	fill := func(v *float64, def float64) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&c.ClickTolerance, d.ClickTolerance)
	fill(&c.LookDamping, d.LookDamping)
	fill(&c.WheelDamping, d.WheelDamping)
	fill(&c.Sensitivity, d.Sensitivity)
	fill(&c.SlowSpeed, d.SlowSpeed)
	fill(&c.FastSpeed, d.FastSpeed)
	fill(&c.Epsilon, d.Epsilon)
	fill(&c.NearPlaneMultiple, d.NearPlaneMultiple)
	fill(&c.ApproachFraction, d.ApproachFraction)
	fill(&c.ToggleDuration, d.ToggleDuration)
	fill(&c.DoorTravel, d.DoorTravel)
	fill(&c.HingeWindowTravel, d.HingeWindowTravel)
	fill(&c.SashTravel, d.SashTravel)
	if c.FastKey == "" {
		c.FastKey = d.FastKey
	}
	return c
}

// Catalog builds the interactive catalogue for this config.
func (c Config) Catalog() (Catalog, error) {
	if len(c.Items) == 0 {
		return DefaultCatalog(), nil
	}
	entries := make(map[string]InteractionKind, len(c.Items))
	for name, kindName := range c.Items {
		kind, err := ParseInteractionKind(kindName)
		if err != nil {
			return Catalog{}, fmt.Errorf("item %q: %w", name, err)
		}
		entries[name] = kind
	}
	return NewCatalog(entries)
}

// LoadConfigYAML decodes a YAML config. Empty input yields DefaultConfig.
func LoadConfigYAML(r io.Reader) (Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse yaml config: %w", err)
	}
	return c.validate()
}

// LoadConfigTOML decodes a TOML config. Empty input yields DefaultConfig.
func LoadConfigTOML(r io.Reader) (Config, error) {
	var c Config
	if err := toml.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("parse toml config: %w", err)
	}
	return c.validate()
}

// LoadConfigFile reads a config file, choosing the decoder by extension
// (.yaml, .yml or .toml).
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var c Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		c, err = LoadConfigYAML(f)
	case ".toml":
		c, err = LoadConfigTOML(f)
	default:
		return Config{}, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	logger.Debug("config loaded",
		zap.String("path", path),
		zap.Int("items", len(c.Items)))
	return c, nil
}

// validate fills defaults and checks the catalogue and numeric ranges.
func (c Config) validate() (Config, error) {
	c = c.withDefaults()
	if c.LookDamping < 0 || c.LookDamping > 1 {
		return Config{}, fmt.Errorf("look_damping %v outside [0, 1]", c.LookDamping)
	}
	if c.WheelDamping < 0 || c.WheelDamping > 1 {
		return Config{}, fmt.Errorf("wheel_damping %v outside [0, 1]", c.WheelDamping)
	}
	if c.ApproachFraction < 0 || c.ApproachFraction > 1 {
		return Config{}, fmt.Errorf("approach_fraction %v outside [0, 1]", c.ApproachFraction)
	}
	if _, err := c.Catalog(); err != nil {
		return Config{}, err
	}
	return c, nil
}
