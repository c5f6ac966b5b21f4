package road

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Role names a slot in the road palette
type Role int

const (
	Sky Role = iota
	GrassLight
	GrassDark
	ClipLight
	ClipDark
	Road
	LaneMid
)

// Roles lists every palette slot in declaration order
var Roles = []Role{Sky, GrassLight, GrassDark, ClipLight, ClipDark, Road, LaneMid}

var roleNames = map[Role]string{
	Sky:        "sky",
	GrassLight: "grassLight",
	GrassDark:  "grassDark",
	ClipLight:  "clipLight",
	ClipDark:   "clipDark",
	Road:       "road",
	LaneMid:    "laneMid",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Color is an opaque RGB colour together with the hex string it was parsed from
type Color struct {
	R, G, B uint8
	Hex     string
}

// ParseHex reads "#rrggbb" (the leading # is optional)
func ParseHex(hex string) (Color, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid colour %q: want 6 hex digits", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return Color{
		R:   uint8(v >> 16),
		G:   uint8(v >> 8),
		B:   uint8(v),
		Hex: hex,
	}, nil
}

// MustParseHex is ParseHex for compile-time constants
func MustParseHex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA returns the colour as an opaque color.RGBA
func (c Color) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// Palette maps each role to its colour
type Palette map[Role]Color

// DefaultPalette is the sun-baked desert look
func DefaultPalette() Palette {
	return Palette{
		Sky:        MustParseHex("#24528F"),
		GrassLight: MustParseHex("#D8923A"),
		GrassDark:  MustParseHex("#955a0f"),
		ClipLight:  MustParseHex("#796005"),
		ClipDark:   MustParseHex("#3a300a"),
		Road:       MustParseHex("#444444"),
		LaneMid:    MustParseHex("#888800"),
	}
}

// ParsePalette builds a palette from role-name → hex pairs, falling back to
// the default colour for any role that is not mentioned.
func ParsePalette(hexes map[string]string) (Palette, error) {
	p := DefaultPalette()
	for name, hex := range hexes {
		role, ok := roleByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown palette role %q", name)
		}
		c, err := ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", name, err)
		}
		p[role] = c
	}
	return p, nil
}

// Validate checks that every role has a colour
func (p Palette) Validate() error {
	for _, r := range Roles {
		if _, ok := p[r]; !ok {
			return fmt.Errorf("palette is missing %s", r)
		}
	}
	return nil
}

func roleByName(name string) (Role, bool) {
	for r, n := range roleNames {
		if strings.EqualFold(n, name) {
			return r, true
		}
	}
	return 0, false
}
