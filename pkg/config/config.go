package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golangdaddy/desertbus/pkg/input"
	"github.com/golangdaddy/desertbus/pkg/road"
	"github.com/golangdaddy/desertbus/pkg/sim"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory
const FileName = "desertbus.json"

// WindowConfig holds the screen settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Scale  int    `mapstructure:"scale"`
	Title  string `mapstructure:"title"`
}

// RenderConfig holds rasterizer and frame timing settings
type RenderConfig struct {
	PixelScale      int     `mapstructure:"pixelScale"`
	MaxFrameSeconds float64 `mapstructure:"maxFrameSeconds"`
}

// Config is the fully resolved game configuration
type Config struct {
	LogLevel string              `mapstructure:"logLevel"`
	Debug    bool                `mapstructure:"debug"`
	TPS      int                 `mapstructure:"tps"`
	Window   WindowConfig        `mapstructure:"window"`
	Render   RenderConfig        `mapstructure:"render"`
	Sim      sim.Tuning          `mapstructure:"sim"`
	Palette  map[string]string   `mapstructure:"palette"`
	Input    map[string][]string `mapstructure:"input"`

	palette  road.Palette
	bindings input.Bindings
}

// SetDefaults registers every default value on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("debug", false)
	v.SetDefault("tps", 60)

	v.SetDefault("window.width", 640)
	v.SetDefault("window.height", 480)
	v.SetDefault("window.scale", 1)
	v.SetDefault("window.title", "Desert Bus")

	v.SetDefault("render.pixelScale", 1)
	v.SetDefault("render.maxFrameSeconds", 0.25)

	t := sim.DefaultTuning()
	v.SetDefault("sim.maxKmPerHour", t.MaxKmPerHour)
	v.SetDefault("sim.acceleration", t.Acceleration)
	v.SetDefault("sim.offroadLimit", t.OffroadLimit)
	v.SetDefault("sim.offroadBrake", t.OffroadBrake)
	v.SetDefault("sim.steerRate", t.SteerRate)
	v.SetDefault("sim.drift", t.Drift)
	v.SetDefault("sim.scrollRate", t.ScrollRate)

	for role, c := range road.DefaultPalette() {
		v.SetDefault("palette."+role.String(), c.Hex)
	}
	for action, keys := range input.DefaultBindings().Names() {
		v.SetDefault("input."+action, keys)
	}
}

// Load reads desertbus.json from configDir when present, applies
// DESERTBUS_* environment overrides and validates the result.
// A missing config file is not an error.
func Load(v *viper.Viper, configDir string) (*Config, error) {
	SetDefaults(v)

	v.SetConfigName(strings.TrimSuffix(FileName, ".json"))
	v.SetConfigType("json")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.SetEnvPrefix("DESERTBUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.resolve(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) resolve() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale < 1 {
		return fmt.Errorf("window scale must be at least 1, got %d", c.Window.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Render.PixelScale < 1 {
		return fmt.Errorf("render pixelScale must be at least 1, got %d", c.Render.PixelScale)
	}
	if c.Render.MaxFrameSeconds <= 0 {
		return fmt.Errorf("render maxFrameSeconds must be positive, got %v", c.Render.MaxFrameSeconds)
	}
	if err := c.Sim.Validate(); err != nil {
		return err
	}

	palette, err := road.ParsePalette(c.Palette)
	if err != nil {
		return err
	}
	if err := palette.Validate(); err != nil {
		return err
	}
	bindings, err := input.ParseBindings(c.Input)
	if err != nil {
		return err
	}

	c.palette = palette
	c.bindings = bindings
	return nil
}

// RoadPalette returns the parsed palette
func (c *Config) RoadPalette() road.Palette {
	return c.palette
}

// Bindings returns the parsed key bindings
func (c *Config) Bindings() input.Bindings {
	return c.bindings
}
