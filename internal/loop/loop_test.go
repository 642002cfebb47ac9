package loop

import (
	"bufio"
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyw0322/galaxy-defender/internal/draw"
	"github.com/oyw0322/galaxy-defender/internal/game"
)

func fixedSize(w, h int) draw.TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestFitPlayfieldKeepsAspect(t *testing.T) {
	cols, rows := fitPlayfield(80, 40, 400, 600)
	assert.Equal(t, 38, rows, "height bound")
	assert.Equal(t, 51, cols)

	cols, rows = fitPlayfield(400, 200, 400, 600)
	assert.Equal(t, 60, rows, "clamped to the max render size")
	assert.Equal(t, 80, cols)

	cols, rows = fitPlayfield(2, 2, 400, 600)
	assert.Equal(t, 1, cols)
	assert.Equal(t, 1, rows)
}

func TestDrawFrameGameOver(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out, fixedSize(80, 40), 400, 600)

	snap := game.Snapshot{
		Width:   400,
		Height:  600,
		Player:  game.PlayerView{Box: game.Box{X: 180, Y: 550, W: 40, H: 40}, HP: 0, MaxHP: 100},
		Stage:   2,
		Over:    true,
		Message: "GAME OVER! Final score: 7",
	}
	require.NoError(t, r.drawFrame(snap, 0))

	s := out.String()
	assert.Contains(t, s, "GAME OVER! Final score: 7")
	assert.Contains(t, s, "Press R to restart")
	assert.Contains(t, s, "STAGE 2")
	assert.Contains(t, s, draw.Fg(255, 0, 0)+draw.Bar(10, 0)+"   0", "low HP is highlighted")
}

func TestDrawFrameBossWarning(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out, fixedSize(80, 40), 400, 600)

	snap := game.Snapshot{
		Width:    400,
		Height:   600,
		Player:   game.PlayerView{Box: game.Box{X: 180, Y: 550, W: 40, H: 40}, HP: 100, MaxHP: 100},
		Boss:     &game.BossView{Box: game.Box{X: 140, Y: 50, W: 120, H: 120}, HP: 500, MaxHP: 1000},
		Charging: true,
		Stage:    1,
	}
	require.NoError(t, r.drawFrame(snap, 0))

	s := out.String()
	assert.Contains(t, s, "WARNING!")
	assert.Contains(t, s, "BOSS ")
	assert.NotContains(t, s, "STAGE")
	assert.Contains(t, s, draw.Bar(10, 1)+" 100")
}

func TestVisibleWidthSkipsEscapes(t *testing.T) {
	assert.Equal(t, 8, visibleWidth(draw.Bold+draw.Fg(255, 0, 0)+"WARNING!"+draw.Reset))
	assert.Equal(t, 2, visibleWidth("█▒"))
}

func TestRunEndsWhenInputCloses(t *testing.T) {
	var out bytes.Buffer
	err := Run(bufio.NewReader(strings.NewReader("  q")), &out, Options{
		TermSizeFunc: fixedSize(80, 40),
		Random:       rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "\033[?25l"), "cursor hidden first")
	assert.True(t, strings.HasSuffix(s, "\033[?25h"), "cursor restored last")
}
