package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fireanim/internal/colormap"
	"github.com/san-kum/fireanim/internal/render"
)

const (
	DefaultInput          = "data/output.csv"
	DefaultOutput         = "forest_fire.gif"
	DefaultHeightPerState = 300
	DefaultWidthPerState  = 300
	DefaultColormap       = "RdYlGn_r"
)

// ErrInvalidConfig indicates a configuration value the pipeline cannot use.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Input          string  `yaml:"input"`
	Output         string  `yaml:"output"`
	HeightPerState int     `yaml:"height_per_state"`
	WidthPerState  int     `yaml:"width_per_state"`
	DPI            float64 `yaml:"dpi"`
	SizeInches     float64 `yaml:"size_inches"`
	FontSize       float64 `yaml:"font_size"`
	Delay          int     `yaml:"delay"`
	Colormap       string  `yaml:"colormap"`
}

func DefaultConfig() *Config {
	return &Config{
		Input:          DefaultInput,
		Output:         DefaultOutput,
		HeightPerState: DefaultHeightPerState,
		WidthPerState:  DefaultWidthPerState,
		DPI:            render.DefaultDPI,
		SizeInches:     render.DefaultSizeInches,
		FontSize:       render.DefaultFontSize,
		Delay:          render.DefaultDelay,
		Colormap:       DefaultColormap,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := Overlay(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overlay sets only the fields present in the YAML file at path.
func Overlay(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first field the pipeline cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input path is empty", ErrInvalidConfig)
	case c.Output == "":
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	case c.HeightPerState <= 0:
		return fmt.Errorf("%w: height_per_state must be positive, got %d", ErrInvalidConfig, c.HeightPerState)
	case c.WidthPerState <= 0:
		return fmt.Errorf("%w: width_per_state must be positive, got %d", ErrInvalidConfig, c.WidthPerState)
	case c.DPI <= 0:
		return fmt.Errorf("%w: dpi must be positive, got %g", ErrInvalidConfig, c.DPI)
	case c.SizeInches <= 0:
		return fmt.Errorf("%w: size_inches must be positive, got %g", ErrInvalidConfig, c.SizeInches)
	case c.FontSize < 0:
		return fmt.Errorf("%w: font_size must not be negative, got %g", ErrInvalidConfig, c.FontSize)
	case c.Delay < 0:
		return fmt.Errorf("%w: delay must not be negative, got %d", ErrInvalidConfig, c.Delay)
	}
	if _, ok := colormap.Lookup(c.Colormap); !ok {
		return fmt.Errorf("%w: unknown colormap %q (available: %v)", ErrInvalidConfig, c.Colormap, colormap.Names())
	}
	return nil
}

// RenderOptions converts the appearance settings for the animator. Call
// Validate first; an unknown colormap falls back to the default.
func (c *Config) RenderOptions() render.Options {
	cm, ok := colormap.Lookup(c.Colormap)
	if !ok {
		cm = colormap.Default
	}
	return render.Options{
		SizeInches: c.SizeInches,
		DPI:        c.DPI,
		FontSize:   c.FontSize,
		Delay:      c.Delay,
		Colormap:   cm,
	}
}
