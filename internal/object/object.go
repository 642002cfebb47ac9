// Package object defines the entities of the playfield and their per-frame
// movement rules. Collision outcomes and scheduling live in package game.
package object

import (
	"fmt"
	"math"
)

//go:generate go tool mockgen -destination=../game/mocks/random_mock.go -package=mocks . Random

// Random is a source of uniform numbers in [0, 1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// Screen is the playfield size in logical units.
type Screen struct {
	Width  float64
	Height float64
}

// DefaultScreen is the playfield every front-end renders.
var DefaultScreen = Screen{Width: 400, Height: 600}

// Color is an RGB colour carried by drawable entities.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Palette used by enemies, items and bursts.
var (
	ColorWhite  = Color{255, 255, 255}
	ColorGray   = Color{128, 128, 128}
	ColorRed    = Color{255, 0, 0}
	ColorYellow = Color{255, 255, 0}
	ColorOrange = Color{255, 165, 0}
)

// String formats the colour as a CSS hex string.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HueColor converts hsl(hue, 100%, 60%) to RGB. hue is in degrees.
func HueColor(hue float64) Color {
	const s, l = 1.0, 0.6
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
	}
}

// RandomColor picks a bright colour with a uniformly random hue.
func RandomColor(rng Random) Color {
	return HueColor(rng.Float64() * 360)
}

// Destructible is implemented by entities that are flagged during collision
// passes and removed during cleanup.
type Destructible interface {
	// MarkDestroyed flags the entity for removal in the next cleanup pass.
	MarkDestroyed()
	// IsDestroyed returns true if the entity is flagged for removal.
	IsDestroyed() bool
}
