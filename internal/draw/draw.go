// Package draw renders to ANSI terminals: a half-block pixel canvas for the
// playfield plus cursor and colour helpers for text overlays.
package draw

import (
	"strconv"
	"strings"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockMedium    = '▒'
	BlockLight     = '░'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Bar renders a horizontal gauge of width cells filled to frac.
// A cell at least half covered shows as a medium shade.
func Bar(width int, frac float64) string {
	if width <= 0 {
		return ""
	}
	filled := min(max(frac, 0), 1) * float64(width)
	full := int(filled)

	var b strings.Builder
	b.Grow(width * 3)
	for i := range width {
		switch {
		case i < full:
			b.WriteRune(BlockFull)
		case i == full && filled-float64(full) >= 0.5:
			b.WriteRune(BlockMedium)
		default:
			b.WriteRune(BlockLight)
		}
	}
	return b.String()
}

// Colour escape sequences.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
)

// Fg returns the 24-bit foreground colour escape for r, g, b.
func Fg(r, g, b uint8) string {
	return "\033[38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
