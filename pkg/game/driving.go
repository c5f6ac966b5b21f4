package game

import (
	"github.com/golangdaddy/desertbus/pkg/hud"
	"github.com/golangdaddy/desertbus/pkg/input"
	"github.com/golangdaddy/desertbus/pkg/road"
	"github.com/golangdaddy/desertbus/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// Controller is anything that can report the held controls for a frame
type Controller interface {
	Controls() sim.Controls
}

// DrivingScreen runs the endless road
type DrivingScreen struct {
	state      sim.State
	tuning     sim.Tuning
	controller Controller
	clock      *Clock
	rasterizer *road.Rasterizer
	frame      *road.Frame
	canvas     *ebiten.Image
	overlay    *hud.Overlay
	logger     zerolog.Logger
	onExit     func(sim.State) // Called when the driver gives up
}

// NewDrivingScreen creates a driving screen for a width×height canvas
func NewDrivingScreen(opts Options, onExit func(sim.State)) *DrivingScreen {
	return &DrivingScreen{
		tuning:     opts.Tuning,
		controller: input.NewKeyboard(opts.Bindings),
		clock:      NewClock(opts.MaxFrameSeconds),
		rasterizer: road.NewRasterizer(opts.Palette, opts.PixelScale),
		frame:      road.NewFrame(opts.Width, opts.Height),
		overlay:    hud.NewOverlay(opts.Tuning, opts.Debug),
		logger:     opts.Logger.With().Str("screen", "driving").Logger(),
		onExit:     onExit,
	}
}

// State returns the current vehicle state
func (ds *DrivingScreen) State() sim.State {
	return ds.state
}

// Update advances the simulation by one frame
func (ds *DrivingScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && ds.onExit != nil {
		ds.onExit(ds.state)
		return nil
	}
	// time spent in the background is not driven
	if !ebiten.IsFocused() {
		ds.clock.Reset()
		return nil
	}
	return ds.step()
}

func (ds *DrivingScreen) step() error {
	dt, err := ds.clock.Tick()
	if err != nil {
		ds.logger.Error().Err(err).Msg("frame time rejected")
		return err
	}

	wasOffroad := ds.state.Offroad(ds.tuning)
	ds.state = sim.Update(ds.state, ds.controller.Controls(), dt, ds.tuning)
	if offroad := ds.state.Offroad(ds.tuning); offroad != wasOffroad {
		ds.logger.Debug().
			Bool("offroad", offroad).
			Float64("offset", ds.state.Offset).
			Float64("speed", ds.state.Speed).
			Msg("shoulder")
	}
	return nil
}

// Draw rasterizes the road, blits it and draws the overlay
func (ds *DrivingScreen) Draw(screen *ebiten.Image) {
	ds.rasterizer.Render(ds.frame, ds.state)

	if ds.canvas == nil {
		ds.canvas = ebiten.NewImage(ds.frame.Width, ds.frame.Height)
	}
	ds.canvas.WritePixels(ds.frame.Pix)
	screen.DrawImage(ds.canvas, nil)

	ds.overlay.Draw(screen, ds.state)
}
