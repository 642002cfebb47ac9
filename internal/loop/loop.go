// Package loop runs a game session on an ANSI terminal: it polls keys, steps
// the simulation and renders each snapshot with half-block graphics.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/oyw0322/galaxy-defender/internal/draw"
	"github.com/oyw0322/galaxy-defender/internal/game"
	"github.com/oyw0322/galaxy-defender/internal/input"
	"github.com/oyw0322/galaxy-defender/internal/loop/config"
)

// Options configures a terminal session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	Random       game.Random
}

// Run plays one session on w, reading keys from r, until the player quits
// or r is exhausted. Input → Update → Draw, once per frame.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := game.New(game.Options{Logger: logger, Random: opts.Random})
	stream := input.StartStream(r)
	view := newRenderer(w, opts.TermSizeFunc, g.Screen().Width, g.Screen().Height)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastTime := time.Now()
	for {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit {
			break
		}
		if in.Restart && g.Over() {
			g.Restart()
		}

		// ===== UPDATE PHASE =====
		g.Step(delta, game.Intent{Left: in.Left, Right: in.Right, Fire: in.Fire})

		// ===== DRAW PHASE =====
		view.resize()
		if err := view.drawFrame(g.Snapshot(), delta); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// fitPlayfield returns the largest cols x rows area that fits the terminal
// inside a one-cell border and keeps the playfield's aspect ratio. Each cell
// holds two sub-pixels vertically, so sub-pixels come out roughly square.
func fitPlayfield(termWidth, termHeight int, logicalWidth, logicalHeight float64) (cols, rows int) {
	availW := min(termWidth-2, config.MaxTermWidth)
	availH := min(termHeight-2, config.MaxTermHeight)
	if availW < 1 || availH < 1 {
		return 1, 1
	}

	ratio := 2 * logicalWidth / logicalHeight // cols per row
	rows = min(availH, int(float64(availW)/ratio))
	rows = max(rows, 1)
	cols = max(int(math.Round(float64(rows)*ratio)), 1)
	return min(cols, availW), rows
}
