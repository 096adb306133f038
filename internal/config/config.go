package config

import (
	"fmt"
	"io"
	"strings"

	"ShapeBoard/internal/persist"
	"ShapeBoard/internal/state"

	"gopkg.in/yaml.v3"
)

// Window holds main window settings.
type Window struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Defaults holds the picker selections at startup.
type Defaults struct {
	Shape string `yaml:"shape"`
	Color string `yaml:"color"`
}

// Log holds logger settings.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Export holds the image size used when exporting to PNG.
type Export struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config holds the application configuration.
type Config struct {
	SaveFile    string   `yaml:"save_file"`
	PointRadius float64  `yaml:"point_radius"`
	Window      Window   `yaml:"window"`
	Defaults    Defaults `yaml:"defaults"`
	Log         Log      `yaml:"log"`
	Export      Export   `yaml:"export"`
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		SaveFile:    persist.DefaultPath,
		PointRadius: state.DefaultPointRadius,
		Window: Window{
			Title:  "2D Shape Drawer",
			Width:  800,
			Height: 600,
		},
		Defaults: Defaults{
			Shape: state.KindPoint.String(),
			Color: state.ColorBlack.String(),
		},
		Log: Log{Level: "info"},
		Export: Export{
			Width:  800,
			Height: 600,
		},
	}
}

// Parse reads YAML from r on top of the defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.SaveFile) == "" {
		problems = append(problems, "save_file must not be empty")
	}
	if c.PointRadius <= 0 {
		problems = append(problems, "point_radius must be positive")
	}
	if _, err := state.ParseKind(c.Defaults.Shape); err != nil {
		problems = append(problems, "defaults.shape: "+err.Error())
	}
	if col, err := state.ParseColor(c.Defaults.Color); err != nil || col == state.ColorNone {
		problems = append(problems, fmt.Sprintf("defaults.color: unknown color %q", c.Defaults.Color))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, "window size must be positive")
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		problems = append(problems, "export size must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Selection returns the startup kind and color. Call after Validate.
func (c *Config) Selection() (state.Kind, state.Color) {
	kind, _ := state.ParseKind(c.Defaults.Shape)
	col, _ := state.ParseColor(c.Defaults.Color)
	if col == state.ColorNone {
		col = state.ColorBlack
	}
	return kind, col
}

// String returns the configuration as YAML.
func (c *Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(out)
}
