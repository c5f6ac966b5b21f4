package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	background     color.Color
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen painted in the sky colour
func NewTitleScreen(background color.Color, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		background:     background,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(ts.background)

	elapsed := time.Since(ts.startTime).Seconds()
	face := text.NewGoXFace(bitmapfont.Face)
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing scale effect (1.0 to 1.1)
	titleScale := 6.0 * (1.0 + 0.1*pulse(elapsed*2.0))
	drawCentered(screen, "DESERT BUS", face, titleScale, centerX, centerY-8, color.RGBA{0xd8, 0x92, 0x3a, 255})

	drawCentered(screen, "Tucson to Las Vegas", face, 2.0, centerX, centerY+80, color.RGBA{180, 180, 200, 255})

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		drawCentered(screen, "Press ENTER or SPACE to drive", face, 1.5, centerX, float64(height)-100, color.RGBA{150, 200, 255, 255})
	}

	// Horizon stripe across the lower third
	lineY := float32(height) * 5 / 6
	vector.DrawFilledRect(screen, 0, lineY, float32(width), 2, color.RGBA{0x60, 0x87, 0xb9, 255}, false)
}

// pulse returns a sine wave value between -1 and 1
func pulse(t float64) float64 {
	return math.Sin(t)
}

func drawCentered(screen *ebiten.Image, str string, face text.Face, scale, centerX, y float64, clr color.Color) {
	w := text.Advance(str, face) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-w/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
