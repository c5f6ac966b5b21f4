package road

import (
	"math"

	"github.com/golangdaddy/desertbus/pkg/sim"
)

// Frame is a row-major RGBA pixel buffer, 4 bytes per pixel
type Frame struct {
	Pix    []byte
	Width  int
	Height int
}

// NewFrame allocates a frame with every pixel opaque
func NewFrame(width, height int) *Frame {
	f := &Frame{
		Pix:    make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}
	for i := 3; i < len(f.Pix); i += 4 {
		f.Pix[i] = 0xff
	}
	return f
}

// Horizon is the first screen row of the road
func (f *Frame) Horizon() int {
	return f.Height / 2
}

func (f *Frame) set(x, y int, c Color) {
	idx := (y*f.Width + x) * 4
	f.Pix[idx+0] = c.R
	f.Pix[idx+1] = c.G
	f.Pix[idx+2] = c.B
}

// Row is the horizontal layout of a single scanline, in pixels.
// Boundaries are not clamped to the frame.
type Row struct {
	P          float64 // 0 at the horizon, approaching 1 at the bottom of the screen
	LeftGrass  float64 // grass ends, left rumble strip begins
	LeftClip   float64 // left rumble strip ends, tarmac begins
	RightClip  float64
	RightGrass float64
	MidLeft    float64 // centre line band, inclusive on both sides
	MidRight   float64
}

// Geometry lays out the scanline at perspective p for a car sitting offset
// from the road centre.
func Geometry(p, offset float64, width int) Row {
	roadWidth := p * 0.95
	clipWidth := roadWidth * 0.15
	laneLine := roadWidth * 0.03

	roadWidth *= 0.5

	mid := 0.5 + offset
	w := float64(width)
	return Row{
		P:          p,
		LeftGrass:  (mid - roadWidth - clipWidth) * w,
		LeftClip:   (mid - roadWidth) * w,
		RightClip:  (mid + roadWidth) * w,
		RightGrass: (mid + roadWidth + clipWidth) * w,
		MidLeft:    (mid - laneLine) * w,
		MidRight:   (mid + laneLine) * w,
	}
}

// Bands evaluates the three animated stripes for a scanline. Each reports
// whether its light (or visible) phase is showing.
func Bands(p, distance float64) (grassLight, clipLight, laneVisible bool) {
	q := 1.0 - p
	grassLight = math.Sin(20.0*q*q*q+distance*0.1) > 0.0
	clipLight = math.Sin(80.0*q*q+distance) > 0.0
	laneVisible = math.Sin(40.0*q*q*q+distance) > 0.0
	return
}

// Rasterizer draws the road into a frame
type Rasterizer struct {
	palette    Palette
	pixelScale int
}

// NewRasterizer creates a rasterizer. A pixelScale below 1 is treated as 1.
func NewRasterizer(palette Palette, pixelScale int) *Rasterizer {
	if pixelScale < 1 {
		pixelScale = 1
	}
	return &Rasterizer{
		palette:    palette,
		pixelScale: pixelScale,
	}
}

// Palette returns the colours the rasterizer paints with
func (r *Rasterizer) Palette() Palette {
	return r.palette
}

// Render overwrites every pixel of f: sky above the horizon, road below it.
// Alpha bytes are left alone.
func (r *Rasterizer) Render(f *Frame, s sim.State) {
	horizon := f.Horizon()
	sky := r.palette[Sky]
	for y := 0; y < horizon; y++ {
		for x := 0; x < f.Width; x++ {
			f.set(x, y, sky)
		}
	}

	half := float64(f.Height) / 2.0
	for y := 0; y < f.Height-horizon; y += r.pixelScale {
		row := Geometry(float64(y)/half, s.Offset, f.Width)
		grass, clip, lane := r.rowColours(row.P, s.Distance)

		for x := 0; x < f.Width; x += r.pixelScale {
			c := row.classify(float64(x), grass, clip, r.palette[Road], lane)
			r.fill(f, x, horizon+y, c)
		}
	}
}

func (r *Rasterizer) rowColours(p, distance float64) (grass, clip, lane Color) {
	grassLight, clipLight, laneVisible := Bands(p, distance)

	grass = r.palette[GrassDark]
	if grassLight {
		grass = r.palette[GrassLight]
	}
	clip = r.palette[ClipDark]
	if clipLight {
		clip = r.palette[ClipLight]
	}
	lane = r.palette[Road]
	if laneVisible {
		lane = r.palette[LaneMid]
	}
	return grass, clip, lane
}

// classify picks the colour at x. Every test runs and the last match wins,
// so the rumble strips and outer grass paint over the centre line where
// they overlap. Grass is the fallback when nothing matches.
func (row Row) classify(x float64, grass, clip, tarmac, lane Color) Color {
	c := grass
	if x >= 0 && x < row.LeftGrass {
		c = grass
	}
	if x >= row.LeftGrass && x < row.LeftClip {
		c = clip
	}
	if x >= row.LeftClip && x < row.RightClip {
		c = tarmac
	}
	if x >= row.MidLeft && x <= row.MidRight {
		c = lane
	}
	if x >= row.RightClip && x < row.RightGrass {
		c = clip
	}
	if x >= row.RightGrass {
		c = grass
	}
	return c
}

func (r *Rasterizer) fill(f *Frame, x0, y0 int, c Color) {
	x1 := min(x0+r.pixelScale, f.Width)
	y1 := min(y0+r.pixelScale, f.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			f.set(x, y, c)
		}
	}
}
