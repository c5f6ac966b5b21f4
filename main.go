package main

import (
	"os"

	"github.com/golangdaddy/desertbus/pkg/config"
	"github.com/golangdaddy/desertbus/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	configDir := pflag.String("config", ".", "directory containing "+config.FileName)
	pflag.Bool("debug", false, "show the TPS/FPS overlay")
	pflag.String("log-level", "", "log level (debug, info, warn, error)")
	pflag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	v := viper.New()
	if err := v.BindPFlag("debug", pflag.Lookup("debug")); err != nil {
		logger.Fatal().Err(err).Msg("binding flags")
	}
	if err := v.BindPFlag("logLevel", pflag.Lookup("log-level")); err != nil {
		logger.Fatal().Err(err).Msg("binding flags")
	}

	cfg, err := config.Load(v, *configDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().Err(err).Str("logLevel", cfg.LogLevel).Msg("parsing log level")
	}
	logger = logger.Level(level)
	logger.Info().
		Str("config", v.ConfigFileUsed()).
		Int("width", cfg.Window.Width).
		Int("height", cfg.Window.Height).
		Int("pixelScale", cfg.Render.PixelScale).
		Msg("config loaded")

	g := game.NewGame(game.NewOptions(cfg, logger))

	ebiten.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal().Err(err).Msg("game loop stopped")
	}
}
