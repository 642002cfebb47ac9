package loop

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/oyw0322/galaxy-defender/internal/draw"
	"github.com/oyw0322/galaxy-defender/internal/game"
	"github.com/oyw0322/galaxy-defender/internal/loop/config"
	"github.com/oyw0322/galaxy-defender/internal/object"
)

// renderer draws snapshots onto a centred, bordered canvas. A whole frame is
// collected in a ChunkWriter and flushed once.
type renderer struct {
	termSize draw.TermSizeFunc
	canvas   *draw.Canvas
	out      *draw.ChunkWriter

	logicalWidth  float64
	logicalHeight float64
	clock         time.Duration // drives blinking
}

func newRenderer(w io.Writer, termSize draw.TermSizeFunc, logicalWidth, logicalHeight float64) *renderer {
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	r := &renderer{
		termSize:      termSize,
		canvas:        draw.NewScaledCanvas(1, 1, logicalWidth, logicalHeight),
		out:           draw.NewChunkWriter(w, 0, 0),
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	r.resize()
	return r
}

// resize refits the canvas to the current terminal size. A failed size query
// keeps the previous layout.
func (r *renderer) resize() {
	termWidth, termHeight, err := r.termSize()
	if err != nil {
		return
	}
	cols, rows := fitPlayfield(termWidth, termHeight, r.logicalWidth, r.logicalHeight)
	offsetCol, offsetRow := draw.CenterOffset(termWidth, termHeight, cols, rows)

	r.canvas.Resize(cols, rows)
	r.canvas.SetOffset(offsetCol, offsetRow)
	r.out.SetOffset(offsetCol, offsetRow)
}

// drawFrame clears the screen and draws one snapshot with its overlays.
func (r *renderer) drawFrame(snap game.Snapshot, delta time.Duration) error {
	r.clock += delta

	draw.ClearScreen(r.out)
	r.canvas.Clear()
	r.drawWorld(snap)

	if err := r.canvas.Render(r.out); err != nil {
		return err
	}
	if err := r.canvas.RenderBorder(r.out); err != nil {
		return err
	}

	// Text goes after the canvas so it stays on top.
	r.drawEnemyBars(snap)
	r.drawHUD(snap)
	if snap.Charging && r.blinkOn() {
		r.writeCentered(4, draw.Bold+fg(object.ColorRed)+"WARNING!"+draw.Reset)
	}
	if snap.Over {
		r.drawGameOver(snap)
	}
	return r.out.Flush()
}

func (r *renderer) blinkOn() bool {
	return math.Mod(r.clock.Seconds()*config.WarningBlinkHz, 1) < 0.5
}

func (r *renderer) drawWorld(snap game.Snapshot) {
	c := r.canvas

	for _, e := range snap.Enemies {
		switch e.Kind {
		case object.EnemyTanker.String():
			c.FillRect(e.X, e.Y, e.W, e.H)
		case object.EnemySpeedster.String():
			r.triangle(e.Box, false, false)
		default:
			r.triangle(e.Box, false, true)
		}
	}

	if b := snap.Boss; b != nil {
		c.FillRect(b.X, b.Y+b.H/4, b.W, b.H/2)
		c.StrokeRect(b.X+b.W/4, b.Y, b.W/2, b.H)
		if snap.Charging && r.blinkOn() {
			cx := b.X + b.W/2
			for y := b.Y + b.H; y < r.logicalHeight; y += 16 {
				c.FillRect(cx-1, y, 2, 6)
			}
		}
	}
	if l := snap.Laser; l != nil && l.Alpha > 0 {
		c.FillRect(l.X, l.Y, l.W, l.H)
	}

	for _, s := range snap.EnemyBullets {
		if s.Boss {
			c.FillCircle(s.X+s.W/2, s.Y+s.H/2, s.W/2)
			continue
		}
		c.FillRect(s.X, s.Y, s.W, s.H)
	}
	for _, b := range snap.Bullets {
		c.FillRect(b.X, b.Y, b.W, b.H)
	}

	for _, it := range snap.Items {
		if it.Kind == object.ItemHeal.String() {
			cx, cy := it.X+it.W/2, it.Y+it.H/2
			c.DrawLine(draw.Point{X: it.X, Y: cy}, draw.Point{X: it.X + it.W, Y: cy})
			c.DrawLine(draw.Point{X: cx, Y: it.Y}, draw.Point{X: cx, Y: it.Y + it.H})
			continue
		}
		c.FillCircle(it.X+it.W/2, it.Y+it.H/2, it.W/2)
	}

	for _, fx := range snap.Effects {
		if fx.Alpha > 0.25 {
			c.FillCircle(fx.X, fx.Y, fx.Radius)
		}
	}

	if !snap.Over {
		r.triangle(snap.Player.Box, true, true)
	}
}

// triangle draws a triangle inscribed in box, pointing up or down.
func (r *renderer) triangle(box game.Box, up, filled bool) {
	pts := r.canvas.BorrowPoints(3)
	if up {
		pts[0] = draw.Point{X: box.X + box.W/2, Y: box.Y}
		pts[1] = draw.Point{X: box.X, Y: box.Y + box.H}
		pts[2] = draw.Point{X: box.X + box.W, Y: box.Y + box.H}
	} else {
		pts[0] = draw.Point{X: box.X, Y: box.Y}
		pts[1] = draw.Point{X: box.X + box.W, Y: box.Y}
		pts[2] = draw.Point{X: box.X + box.W/2, Y: box.Y + box.H}
	}
	r.canvas.DrawPolygon(pts, filled)
}

// drawEnemyBars puts a small health gauge on top of each visible enemy.
func (r *renderer) drawEnemyBars(snap game.Snapshot) {
	for _, e := range snap.Enemies {
		col, row := r.canvas.LogicalToTerminal(e.X, e.Y)
		if row < 1 || row > r.canvas.TerminalHeight() || col < 1 {
			continue
		}
		bar := draw.Bar(config.EnemyBarWidth, ratio(e.HP, e.MaxHP))
		r.out.WriteAt(col, row, fg(e.Color)+bar+draw.Reset)
	}
}

// drawHUD draws score and health on the first row and stage or boss health
// on the second.
func (r *renderer) drawHUD(snap game.Snapshot) {
	width := r.canvas.TerminalWidth()

	r.out.WriteAt(2, 1, "SCORE "+strconv.Itoa(snap.Score))

	hp := snap.Player.HP
	hpColor := object.ColorWhite
	if hp <= config.LowHPThreshold {
		hpColor = object.ColorRed
	}
	hpText := fmt.Sprintf(" %3d", hp)
	bar := draw.Bar(config.HPBarWidth, ratio(hp, snap.Player.MaxHP))
	col := width - len("HP ") - config.HPBarWidth - len(hpText)
	r.out.WriteAt(max(col, 1), 1, "HP "+fg(hpColor)+bar+hpText+draw.Reset)

	if b := snap.Boss; b != nil {
		bossBar := draw.Bar(config.BossBarWidth, ratio(b.HP, b.MaxHP))
		r.out.WriteAt(2, 2, "BOSS "+fg(object.ColorRed)+bossBar+draw.Reset)
		return
	}
	r.out.WriteAt(2, 2, "STAGE "+strconv.Itoa(snap.Stage))
}

func (r *renderer) drawGameOver(snap game.Snapshot) {
	mid := r.canvas.TerminalHeight() / 2
	color := object.ColorRed
	if snap.Victory {
		color = object.ColorYellow
	}
	r.writeCentered(mid-1, draw.Bold+fg(color)+snap.Message+draw.Reset)
	r.writeCentered(mid+1, "Press R to restart, Q to quit")
}

// writeCentered writes s horizontally centred on row. Escape sequences in s
// do not count towards its width.
func (r *renderer) writeCentered(row int, s string) {
	col := (r.canvas.TerminalWidth()-visibleWidth(s))/2 + 1
	r.out.WriteAt(max(col, 1), row, s)
}

func visibleWidth(s string) int {
	n := 0
	for i := 0; i < len(s); {
		if s[i] == '\033' {
			// Skip to the final byte of the CSI sequence.
			for i < len(s) && (s[i] < '@' || s[i] > '~' || s[i] == '[') {
				i++
			}
			i++
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n++
	}
	return n
}

func ratio(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n) / float64(total)
}

func fg(c object.Color) string {
	return draw.Fg(c.R, c.G, c.B)
}
