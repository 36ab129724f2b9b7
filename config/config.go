// Package config loads ledcube settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

const (
	// MaxCubeSize bounds N so N³ LEDs stay allocatable and coordinates fit the form
	MaxCubeSize = 64
	// MaxFPS keeps the frame interval well above zero
	MaxFPS = 1000
)

// Config holds all ledcube configuration
type Config struct {
	Cube     CubeConfig     `yaml:"cube"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Render   RenderConfig   `yaml:"render"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CubeConfig describes the LED cube
type CubeConfig struct {
	Size      int             `yaml:"size"`
	LEDs      LEDConfig       `yaml:"leds"`
	Highlight HighlightConfig `yaml:"highlight"`
}

// LEDConfig applies to every LED
type LEDConfig struct {
	DefaultColor string  `yaml:"default_color"` // Hex, e.g. FFFFFF
	Size         float64 `yaml:"size"`
	Opacity      float64 `yaml:"opacity"`
}

// HighlightConfig describes the selection marker
type HighlightConfig struct {
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
}

// CameraConfig sets up the perspective camera
// The camera starts at center*(1, 1, DistanceFactor) looking at the cube center
type CameraConfig struct {
	FOV            float64 `yaml:"fov"`
	Near           float64 `yaml:"near"`
	Far            float64 `yaml:"far"`
	DistanceFactor float64 `yaml:"distance_factor"`
}

// ControlsConfig tunes orbit controls
type ControlsConfig struct {
	EnableZoom  bool    `yaml:"enable_zoom"`
	RotateSpeed float64 `yaml:"rotate_speed"` // Radians per key press
	DragSpeed   float64 `yaml:"drag_speed"`   // Radians per dragged cell
}

// RenderConfig controls the redraw loop
type RenderConfig struct {
	FPS        int    `yaml:"fps"`
	Background string `yaml:"background"`
}

// AudioConfig controls selection cues
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// LoggingConfig controls the debug log file
type LoggingConfig struct {
	Debug     bool   `yaml:"debug"`
	Dir       string `yaml:"dir"`
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb"`
}

// DefaultConfig returns the stock eight-wide cube
func DefaultConfig() *Config {
	return &Config{
		Cube: CubeConfig{
			Size: 8,
			LEDs: LEDConfig{
				DefaultColor: "FFFFFF",
				Size:         0.3,
				Opacity:      0.5,
			},
			Highlight: HighlightConfig{
				Size:  0.5,
				Color: "FF0000",
			},
		},
		Camera: CameraConfig{
			FOV:            75,
			Near:           0.1,
			Far:            1000,
			DistanceFactor: 4,
		},
		Controls: ControlsConfig{
			EnableZoom:  false,
			RotateSpeed: 0.1,
			DragSpeed:   0.05,
		},
		Render: RenderConfig{
			FPS:        30,
			Background: "000000",
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  -2,
		},
		Logging: LoggingConfig{
			Debug:     false,
			Dir:       "logs",
			File:      "ledcube.log",
			MaxSizeMB: 10,
		},
	}
}

// Load reads path over the defaults and validates the result
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks numeric ranges; color strings are parsed where they are used
func (c *Config) Validate() error {
	switch {
	case c.Cube.Size < 1:
		return fmt.Errorf("%w: cube.size must be at least 1, got %d", ErrInvalidConfig, c.Cube.Size)
	case c.Cube.Size > MaxCubeSize:
		return fmt.Errorf("%w: cube.size must be at most %d, got %d", ErrInvalidConfig, MaxCubeSize, c.Cube.Size)
	case c.Cube.LEDs.Size <= 0:
		return fmt.Errorf("%w: cube.leds.size must be positive", ErrInvalidConfig)
	case c.Cube.LEDs.Opacity < 0 || c.Cube.LEDs.Opacity > 1:
		return fmt.Errorf("%w: cube.leds.opacity must be within [0, 1]", ErrInvalidConfig)
	case c.Cube.Highlight.Size <= 0:
		return fmt.Errorf("%w: cube.highlight.size must be positive", ErrInvalidConfig)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera.fov must be within (0, 180)", ErrInvalidConfig)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera requires 0 < near < far", ErrInvalidConfig)
	case c.Camera.DistanceFactor <= 1:
		return fmt.Errorf("%w: camera.distance_factor must exceed 1", ErrInvalidConfig)
	case c.Render.FPS < 1:
		return fmt.Errorf("%w: render.fps must be at least 1", ErrInvalidConfig)
	case c.Render.FPS > MaxFPS:
		return fmt.Errorf("%w: render.fps must be at most %d, got %d", ErrInvalidConfig, MaxFPS, c.Render.FPS)
	case c.Logging.MaxSizeMB < 1:
		return fmt.Errorf("%w: logging.max_size_mb must be at least 1", ErrInvalidConfig)
	}
	return nil
}
