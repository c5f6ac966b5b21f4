package hud

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/desertbus/pkg/sim"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HorizonHeight = 3
	labelX        = 10
	speedY        = 16 // Baselines
	odometerY     = 32
)

var (
	horizonColor = color.RGBA{0x60, 0x87, 0xb9, 255}
	labelColor   = color.White
)

// SpeedLabel formats the speedometer
func SpeedLabel(s sim.State, t sim.Tuning) string {
	return fmt.Sprintf("%.2f Km/h", s.KmPerHour(t))
}

// OdometerLabel formats the distance driven
func OdometerLabel(s sim.State) string {
	return fmt.Sprintf("%.2f Km", s.Odometer)
}

// Overlay draws the horizon bar and readouts on top of the road
type Overlay struct {
	face   text.Face
	tuning sim.Tuning
	debug  bool
}

// NewOverlay creates an overlay using the bitmap font
func NewOverlay(tuning sim.Tuning, debug bool) *Overlay {
	return &Overlay{
		face:   text.NewGoXFace(bitmapfont.Face),
		tuning: tuning,
		debug:  debug,
	}
}

// Draw renders the overlay onto screen
func (o *Overlay) Draw(screen *ebiten.Image, s sim.State) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	vector.DrawFilledRect(screen, 0, float32(height/2), float32(width), HorizonHeight, horizonColor, false)

	o.drawLabel(screen, SpeedLabel(s, o.tuning), labelX, speedY)
	o.drawLabel(screen, OdometerLabel(s), labelX, odometerY)

	if o.debug {
		msg := fmt.Sprintf("TPS: %0.1f FPS: %0.1f offset: %+.3f", ebiten.ActualTPS(), ebiten.ActualFPS(), s.Offset)
		ebitenutil.DebugPrintAt(screen, msg, labelX, height-20)
	}
}

// drawLabel places str with its baseline at y
func (o *Overlay) drawLabel(screen *ebiten.Image, str string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-o.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, str, o.face, op)
}
