// Package game is the simulation core: spawning, difficulty, the boss state
// machine and combat resolution, advanced one frame at a time by Step.
//
// A Game is not safe for concurrent use. Front-ends own one Game per session
// and drive it from a single goroutine.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/oyw0322/galaxy-defender/internal/object"
	"github.com/oyw0322/galaxy-defender/internal/timer"
)

// Random is a source of uniform numbers in [0, 1). *rand.Rand satisfies it.
type Random = object.Random

// Intent is the player's input for one frame.
type Intent struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Fire  bool `json:"fire"`
}

// Options configures a Game. Zero values pick sensible defaults.
type Options struct {
	Logger *log.Logger
	Random Random
	Screen object.Screen
}

// bossSeq numbers bosses across every Game in the process.
var bossSeq atomic.Uint64

func nextBossID() uint64 {
	return bossSeq.Add(1)
}

// Game drives one session of the simulation.
type Game struct {
	state  *State
	screen object.Screen
	rng    Random
	log    *log.Logger
	sched  *timer.Scheduler

	// epoch changes on every restart; delayed tasks captured under an older
	// epoch do nothing when they fire.
	epoch uint64

	spawnTask  timer.Handle
	shootTask  timer.Handle
	stageTask  timer.Handle
	hpItemTask timer.Handle
}

// New creates a game at stage 1 with its spawn timers running.
func New(opts Options) *Game {
	g := &Game{
		screen: opts.Screen,
		rng:    opts.Random,
		log:    opts.Logger,
		sched:  timer.New(),
	}
	if g.screen == (object.Screen{}) {
		g.screen = object.DefaultScreen
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	g.start()
	return g
}

// Screen returns the playfield size.
func (g *Game) Screen() object.Screen {
	return g.screen
}

// Over reports whether the session has ended, by defeat or victory.
func (g *Game) Over() bool {
	return g.state.Over
}

// Restart discards the session and starts a fresh one at stage 1.
// Attacks still pending from the old session become no-ops.
func (g *Game) Restart() {
	g.stopTasks()
	g.state.releaseEffects()
	g.epoch++
	g.start()
	g.log.Info("game restarted", "epoch", g.epoch)
}

func (g *Game) start() {
	g.state = newState()
	g.configureTimers()
	g.hpItemTask = g.sched.Every("hp-item", HPItemInterval, g.spawnHPItem)
}

// Step advances the simulation by one frame. dt is the wall time elapsed
// since the previous frame and drives the spawn and attack timers; movement
// is per frame. Once the game is over Step does nothing.
func (g *Game) Step(dt time.Duration, in Intent) {
	s := g.state
	if s.Over {
		return
	}
	if dt > MaxStep {
		dt = MaxStep
	}

	g.sched.Advance(dt)
	g.checkDifficulty()
	g.updateEffects()
	g.updatePlayer(in)
	g.updateBullets()

	if g.updateBoss() || s.Over {
		return
	}
	if g.updateLaser(); s.Over {
		return
	}
	if g.updateEnemies(); s.Over {
		return
	}
	g.cleanup()
	if g.updateEnemyBullets(); s.Over {
		return
	}
	g.updateItems()
}

// Damage applies n damage to the player. Health is clamped at zero and
// reaching zero ends the game. No-op once the game is over.
func (g *Game) Damage(n int) {
	s := g.state
	if s.Over {
		return
	}
	if s.Player.Damage(n) {
		g.finish(false)
	}
}

// Heal restores n health, clamped to the player's maximum.
// No-op once the game is over.
func (g *Game) Heal(n int) {
	if g.state.Over {
		return
	}
	g.state.Player.Heal(n)
}

// finish ends the session and stops every repeating task.
func (g *Game) finish(victory bool) {
	s := g.state
	s.Over = true
	s.Victory = victory
	g.stopTasks()

	if victory {
		s.Message = fmt.Sprintf("GAME CLEAR! Final score: %d", s.Score)
		g.log.Info("game cleared", "score", s.Score)
	} else {
		s.Message = fmt.Sprintf("GAME OVER! Final score: %d", s.Score)
		g.log.Info("game over", "score", s.Score, "stage", s.StageIndex+1)
	}
}

func (g *Game) stopTasks() {
	g.spawnTask.Stop()
	g.shootTask.Stop()
	g.stageTask.Stop()
	g.hpItemTask.Stop()
	g.spawnTask, g.shootTask, g.stageTask, g.hpItemTask = timer.Handle{}, timer.Handle{}, timer.Handle{}, timer.Handle{}
}

func (g *Game) updatePlayer(in Intent) {
	s := g.state
	s.Player.Move(in.Left, in.Right, g.screen)
	if in.Fire && !s.fireHeld {
		s.Bullets = append(s.Bullets, s.Player.Fire())
	}
	s.fireHeld = in.Fire
}

func (g *Game) updateEffects() {
	s := g.state
	kept := s.Effects[:0]
	for _, e := range s.Effects {
		if e.Update() {
			e.Release()
			continue
		}
		kept = append(kept, e)
	}
	clear(s.Effects[len(kept):])
	s.Effects = kept
}
