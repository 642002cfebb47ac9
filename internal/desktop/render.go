package desktop

import (
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oyw0322/galaxy-defender/internal/game"
	"github.com/oyw0322/galaxy-defender/internal/object"
	"golang.org/x/image/font/basicfont"
)

var (
	playerColor   = color.RGBA{0, 170, 255, 255}
	bulletColor   = color.RGBA{255, 255, 0, 255}
	shotColor     = color.RGBA{255, 68, 68, 255}
	bossShotColor = color.RGBA{255, 0, 255, 255}
	bossColor     = color.RGBA{160, 0, 255, 255}
	barBackground = color.RGBA{64, 0, 0, 255}
	healthyColor  = color.RGBA{0, 255, 0, 255}
	warningColumn = color.RGBA{100, 0, 0, 100}
)

const lowHPThreshold = 20

var face = basicfont.Face7x13

// rgba converts an entity colour, scaling alpha by a in [0, 1].
// The result is premultiplied, as ebiten expects.
func rgba(c object.Color, a float64) color.RGBA {
	a = min(max(a, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

func fillBox(dst *ebiten.Image, b game.Box, clr color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
}

// bar draws a gauge of the given size filled to n/total.
func bar(dst *ebiten.Image, x, y, w, h float32, n, total int, clr color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, barBackground, false)
	if total <= 0 {
		return
	}
	frac := min(max(float32(n)/float32(total), 0), 1)
	vector.DrawFilledRect(dst, x, y, w*frac, h, clr, false)
}

// centerX returns the x at which s is horizontally centred in width.
func centerX(s string, width float64) int {
	return int(width)/2 - len(s)*face.Advance/2
}

func drawSnapshot(dst *ebiten.Image, s game.Snapshot, now time.Time) {
	blink := now.UnixMilli()/125%2 == 0

	for _, e := range s.Enemies {
		fillBox(dst, e.Box, rgba(e.Color, 1))
		bar(dst, float32(e.X), float32(e.Y-6), float32(e.W), 4, e.HP, e.MaxHP, healthyColor)
	}

	if b := s.Boss; b != nil {
		fillBox(dst, b.Box, bossColor)
		vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, color.White, false)
		if s.Charging && blink {
			cx := float32(b.X + b.W/2)
			vector.DrawFilledRect(dst, cx-object.LaserWidth/2, float32(b.Y+b.H), object.LaserWidth, float32(s.Height), warningColumn, false)
		}
	}
	if l := s.Laser; l != nil {
		fillBox(dst, l.Box, rgba(object.ColorRed, l.Alpha))
	}

	for _, shot := range s.EnemyBullets {
		if shot.Boss {
			vector.DrawFilledCircle(dst, float32(shot.X+shot.W/2), float32(shot.Y+shot.H/2), float32(shot.W/2), bossShotColor, true)
			continue
		}
		fillBox(dst, shot.Box, shotColor)
	}
	for _, b := range s.Bullets {
		fillBox(dst, b, bulletColor)
	}
	for _, it := range s.Items {
		fillBox(dst, it.Box, rgba(it.Color, 1))
	}
	for _, fx := range s.Effects {
		vector.DrawFilledCircle(dst, float32(fx.X), float32(fx.Y), float32(fx.Radius), rgba(fx.Color, fx.Alpha), true)
	}

	if !s.Over {
		fillBox(dst, s.Player.Box, playerColor)
	}

	drawHUD(dst, s, blink)
}

func drawHUD(dst *ebiten.Image, s game.Snapshot, blink bool) {
	text.Draw(dst, "Score: "+strconv.Itoa(s.Score), face, 10, 20, color.White)

	hpColor := color.Color(healthyColor)
	if s.Player.HP <= lowHPThreshold {
		hpColor = rgba(object.ColorRed, 1)
	}
	bar(dst, 10, 28, 100, 8, s.Player.HP, s.Player.MaxHP, hpColor)

	if b := s.Boss; b != nil {
		bar(dst, 120, 10, float32(s.Width)-130, 10, b.HP, b.MaxHP, bossShotColor)
	} else {
		text.Draw(dst, "Stage "+strconv.Itoa(s.Stage), face, 10, 56, color.White)
	}

	if s.Charging && blink {
		msg := "WARNING!"
		text.Draw(dst, msg, face, centerX(msg, s.Width), 240, rgba(object.ColorRed, 1))
	}
	if s.Over {
		clr := rgba(object.ColorRed, 1)
		if s.Victory {
			clr = rgba(object.ColorYellow, 1)
		}
		text.Draw(dst, s.Message, face, centerX(s.Message, s.Width), int(s.Height/2), clr)
		prompt := "Press R to restart, Q to quit"
		text.Draw(dst, prompt, face, centerX(prompt, s.Width), int(s.Height/2)+30, color.White)
	}
}
