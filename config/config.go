// Package config loads display, clock and audio settings from YAML and environment
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-timer/constant"
)

// Environment overrides
const (
	EnvAudioEnabled = "VI_TIMER_AUDIO_ENABLED"
	EnvVolume       = "VI_TIMER_VOLUME"
	EnvTimezone     = "VI_TIMER_TIMEZONE"
	EnvFPS          = "VI_TIMER_FPS"
)

// RGB is a color written as [r, g, b] in YAML
type RGB [3]int

type Config struct {
	Display DisplayConfig `yaml:"display"`
	Clock   ClockConfig   `yaml:"clock"`
	Audio   AudioConfig   `yaml:"audio"`

	// Keys rebinds actions, e.g. pause: [space, p]
	Keys map[string][]string `yaml:"keys,omitempty"`
}

type DisplayConfig struct {
	FPS         int     `yaml:"fps"`
	ScaleFactor float64 `yaml:"scale_factor"`
	MainColor   RGB     `yaml:"main_color"`
	PauseColor  RGB     `yaml:"pause_color"`
	Background  RGB     `yaml:"background"`
	HintColor   RGB     `yaml:"hint_color"`
	Penger      bool    `yaml:"penger"`
	HintLine    bool    `yaml:"hint_line"`
}

type ClockConfig struct {
	// Timezone is an IANA zone name, empty means local time
	Timezone string `yaml:"timezone"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0-1.0
	SampleRate int     `yaml:"sample_rate"`
	Chime      bool    `yaml:"chime"` // Play chime when a countdown finishes
	Click      bool    `yaml:"click"` // Play click on pause toggle
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			FPS:         constant.FPS,
			ScaleFactor: constant.ScaleFactor,
			MainColor:   constant.MainColor,
			PauseColor:  constant.PauseColor,
			Background:  constant.BackgroundColor,
			HintColor:   constant.HintColor,
			Penger:      true,
			HintLine:    true,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
			Chime:      true,
			Click:      false,
		},
	}
}

// Load reads path over the defaults, a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg as YAML to path
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays environment variables, malformed values are ignored
func ApplyEnv(cfg *Config) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	// Volume given as 0-100
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.Volume = float64(val) / 100.0
		}
	}

	if zone, ok := os.LookupEnv(EnvTimezone); ok {
		cfg.Clock.Timezone = zone
	}

	if fps := os.Getenv(EnvFPS); fps != "" {
		if val, err := strconv.Atoi(fps); err == nil && val > 0 {
			cfg.Display.FPS = val
		}
	}
}

// Validate clamps soft limits and rejects unusable values
func (c *Config) Validate() error {
	if c.Display.FPS <= 0 {
		return fmt.Errorf("display.fps must be positive, got %d", c.Display.FPS)
	}
	if c.Display.ScaleFactor <= 0 || c.Display.ScaleFactor >= 1 {
		return fmt.Errorf("display.scale_factor must be in (0, 1), got %g", c.Display.ScaleFactor)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}

	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	}
	if c.Audio.Volume > 1 {
		c.Audio.Volume = 1
	}
	return nil
}
