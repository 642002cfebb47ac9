package desktop

import (
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyw0322/galaxy-defender/internal/game"
	"github.com/oyw0322/galaxy-defender/internal/object"
)

func newTestApp(keys ...ebiten.Key) *App {
	a := New(game.Options{Random: rand.New(rand.NewSource(1))})
	held := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		held[k] = true
	}
	a.pressed = func(k ebiten.Key) bool { return held[k] }
	return a
}

func TestIntentMapsKeys(t *testing.T) {
	assert.Equal(t, game.Intent{Left: true}, newTestApp(ebiten.KeyA).intent())
	assert.Equal(t, game.Intent{Right: true, Fire: true}, newTestApp(ebiten.KeyArrowRight, ebiten.KeySpace).intent())
	assert.Equal(t, game.Intent{}, newTestApp().intent())
}

func TestUpdateStepsTheGame(t *testing.T) {
	a := newTestApp(ebiten.KeyArrowLeft, ebiten.KeySpace)
	require.NoError(t, a.Update())

	snap := a.game.Snapshot()
	assert.Less(t, snap.Player.X, 180.0)
	assert.Len(t, snap.Bullets, 1)
}

func TestUpdateQuits(t *testing.T) {
	a := newTestApp(ebiten.KeyEscape)
	assert.ErrorIs(t, a.Update(), ebiten.Termination)
}

func TestLayoutUsesPlayfield(t *testing.T) {
	w, h := newTestApp().Layout(1920, 1080)
	assert.Equal(t, 400, w)
	assert.Equal(t, 600, h)
}

func TestRGBAPremultiplies(t *testing.T) {
	c := rgba(object.ColorOrange, 0.5)
	assert.Equal(t, uint8(127), c.R)
	assert.Equal(t, uint8(82), c.G)
	assert.Equal(t, uint8(127), c.A)

	assert.Equal(t, uint8(255), rgba(object.ColorWhite, 2).A, "alpha is clamped")
}

func TestCenterX(t *testing.T) {
	assert.Equal(t, 200-7*8/2, centerX("WARNING!", 400))
}
