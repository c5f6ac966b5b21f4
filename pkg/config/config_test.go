package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golangdaddy/desertbus/pkg/input"
	"github.com/golangdaddy/desertbus/pkg/road"
	"github.com/golangdaddy/desertbus/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, WindowConfig{Width: 640, Height: 480, Scale: 1, Title: "Desert Bus"}, cfg.Window)
	assert.Equal(t, 1, cfg.Render.PixelScale)
	assert.Equal(t, 0.25, cfg.Render.MaxFrameSeconds)
	assert.Equal(t, sim.DefaultTuning(), cfg.Sim)
	assert.Equal(t, road.DefaultPalette(), cfg.RoadPalette())
	assert.Equal(t, input.DefaultBindings(), cfg.Bindings())
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := writeConfig(t, `{
		"logLevel": "debug",
		"window": { "width": 320, "height": 200, "scale": 3 },
		"render": { "pixelScale": 2 },
		"sim": { "maxKmPerHour": 72, "drift": 0 },
		"palette": { "sky": "#000000" },
		"input": { "up": ["Space", "W"] }
	}`)

	cfg, err := Load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 320, cfg.Window.Width)
	assert.Equal(t, 200, cfg.Window.Height)
	assert.Equal(t, 3, cfg.Window.Scale)
	assert.Equal(t, "Desert Bus", cfg.Window.Title)
	assert.Equal(t, 2, cfg.Render.PixelScale)
	assert.Equal(t, 72.0, cfg.Sim.MaxKmPerHour)
	assert.Equal(t, 0.0, cfg.Sim.Drift)
	assert.Equal(t, 0.35, cfg.Sim.Acceleration)
	assert.Equal(t, "#000000", cfg.RoadPalette()[road.Sky].Hex)
	assert.Equal(t, road.DefaultPalette()[road.Road], cfg.RoadPalette()[road.Road])
	assert.Equal(t, []ebiten.Key{ebiten.KeySpace, ebiten.KeyW}, cfg.Bindings()[input.Up])
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DESERTBUS_RENDER_PIXELSCALE", "4")
	t.Setenv("DESERTBUS_DEBUG", "true")

	cfg, err := Load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Render.PixelScale)
	assert.True(t, cfg.Debug)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := writeConfig(t, `{ "window": `)

	_, err := Load(viper.New(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero width", `{"window": {"width": 0}}`, "window size"},
		{"zero scale", `{"window": {"scale": 0}}`, "window scale"},
		{"zero tps", `{"tps": 0}`, "tps"},
		{"pixel scale", `{"render": {"pixelScale": 0}}`, "pixelScale"},
		{"frame cap", `{"render": {"maxFrameSeconds": -1}}`, "maxFrameSeconds"},
		{"negative tuning", `{"sim": {"steerRate": -0.1}}`, "steerRate"},
		{"bad colour", `{"palette": {"road": "tarmac"}}`, "palette road"},
		{"unknown role", `{"palette": {"kerb": "#ffffff"}}`, "unknown palette role"},
		{"unknown action", `{"input": {"brake": ["S"]}}`, "unknown action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(viper.New(), writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
