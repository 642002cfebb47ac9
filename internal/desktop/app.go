// Package desktop runs a game session in an ebiten window.
package desktop

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oyw0322/galaxy-defender/internal/game"
)

// App adapts a Game to ebiten.Game. Ebiten calls Update at a fixed 60 TPS;
// the wall time between calls drives the game's timers.
type App struct {
	game    *game.Game
	last    time.Time
	pressed func(ebiten.Key) bool
}

// New creates an App with a fresh game.
func New(opts game.Options) *App {
	return &App{
		game:    game.New(opts),
		pressed: ebiten.IsKeyPressed,
	}
}

// WindowSize is the playfield size in pixels.
func (a *App) WindowSize() (int, int) {
	s := a.game.Screen()
	return int(s.Width), int(s.Height)
}

// Update reads the keyboard and advances the game one frame.
func (a *App) Update() error {
	if a.pressed(ebiten.KeyQ) || a.pressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if a.game.Over() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.game.Restart()
	}

	now := time.Now()
	dt := time.Second / time.Duration(ebiten.TPS())
	if !a.last.IsZero() {
		dt = now.Sub(a.last)
	}
	a.last = now

	a.game.Step(dt, a.intent())
	return nil
}

// intent maps held keys to the frame's input.
func (a *App) intent() game.Intent {
	return game.Intent{
		Left:  a.pressed(ebiten.KeyArrowLeft) || a.pressed(ebiten.KeyA),
		Right: a.pressed(ebiten.KeyArrowRight) || a.pressed(ebiten.KeyD),
		Fire:  a.pressed(ebiten.KeySpace),
	}
}

// Draw renders the latest snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	drawSnapshot(screen, a.game.Snapshot(), time.Now())
}

// Layout keeps the logical playfield size and lets ebiten scale the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.WindowSize()
}
