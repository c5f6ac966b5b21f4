package game

import (
	"github.com/golangdaddy/desertbus/pkg/config"
	"github.com/golangdaddy/desertbus/pkg/input"
	"github.com/golangdaddy/desertbus/pkg/road"
	"github.com/golangdaddy/desertbus/pkg/sim"
	"github.com/golangdaddy/desertbus/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Options carries everything a driving session needs
type Options struct {
	Width           int
	Height          int
	PixelScale      int
	MaxFrameSeconds float64
	Debug           bool
	Tuning          sim.Tuning
	Palette         road.Palette
	Bindings        input.Bindings
	Logger          zerolog.Logger
}

// NewOptions resolves session options from the loaded config
func NewOptions(cfg *config.Config, logger zerolog.Logger) Options {
	return Options{
		Width:           cfg.Window.Width,
		Height:          cfg.Window.Height,
		PixelScale:      cfg.Render.PixelScale,
		MaxFrameSeconds: cfg.Render.MaxFrameSeconds,
		Debug:           cfg.Debug,
		Tuning:          cfg.Sim,
		Palette:         cfg.RoadPalette(),
		Bindings:        cfg.Bindings(),
		Logger:          logger,
	}
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	opts          Options
	currentScreen Screen
	logger        zerolog.Logger
}

// NewGame creates a new game instance starting on the title screen
func NewGame(opts Options) *Game {
	g := &Game{
		opts:   opts,
		logger: opts.Logger,
	}
	g.showTitle()
	return g
}

func (g *Game) showTitle() {
	g.logger.Info().Msg("showing title screen")
	g.currentScreen = ui.NewTitleScreen(g.opts.Palette[road.Sky].RGBA(), g.startDriving)
}

func (g *Game) startDriving() {
	g.logger.Info().Msg("starting drive")
	g.currentScreen = NewDrivingScreen(g.opts, func(final sim.State) {
		g.logger.Info().
			Float64("odometerKm", final.Odometer).
			Float64("kmh", final.KmPerHour(g.opts.Tuning)).
			Msg("drive ended")
		g.showTitle()
	})
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.opts.Width, g.opts.Height
}
