package main

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oyw0322/galaxy-defender/internal/config"
	"github.com/oyw0322/galaxy-defender/internal/desktop"
	"github.com/oyw0322/galaxy-defender/internal/game"
)

func main() {
	logger := config.NewLogger(os.Stderr, "desktop")

	seed, err := config.GetEnvInt64("GAME_SEED", 0)
	if err != nil {
		logger.Fatal("invalid seed", "err", err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", seed)

	app := desktop.New(game.Options{
		Logger: logger,
		Random: rand.New(rand.NewSource(seed)),
	})
	ebiten.SetWindowSize(app.WindowSize())
	ebiten.SetWindowTitle("Galaxy Defender")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game error", "err", err)
	}
}
