package game

import (
	"math/rand"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/oyw0322/galaxy-defender/internal/object"
)

func TestHealthStaysClamped(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New(Options{Random: fixedRandom(0.5)})
		ops := rapid.IntRange(1, 40).Draw(t, "ops")
		for range ops {
			n := rapid.IntRange(0, 80).Draw(t, "amount")
			if rapid.Bool().Draw(t, "damage") {
				g.Damage(n)
			} else {
				g.Heal(n)
			}

			hp := g.state.Player.HP
			if hp < 0 || hp > object.PlayerMaxHP {
				t.Fatalf("hp %d out of range", hp)
			}
			if (hp == 0) != g.Over() {
				t.Fatalf("hp %d but over=%v", hp, g.Over())
			}
		}
	})
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		g := New(Options{Random: rand.New(rand.NewSource(seed))})
		s := g.state
		prevStage := 0

		frames := rapid.IntRange(1, 300).Draw(t, "frames")
		for range frames {
			in := Intent{
				Left:  rapid.Bool().Draw(t, "left"),
				Right: rapid.Bool().Draw(t, "right"),
				Fire:  rapid.Bool().Draw(t, "fire"),
			}
			dt := time.Duration(rapid.IntRange(0, 300).Draw(t, "dt")) * time.Millisecond
			if rapid.IntRange(0, 10).Draw(t, "bonus") == 0 {
				s.Score += 10
			}

			g.Step(dt, in)

			if s.StageIndex < prevStage || s.StageIndex >= StageCount {
				t.Fatalf("stage went from %d to %d", prevStage, s.StageIndex)
			}
			prevStage = s.StageIndex

			if s.Boss != nil && (g.spawnTask.Active() || g.shootTask.Active() || g.stageTask.Active()) {
				t.Fatalf("spawn timers running during a boss fight")
			}
			if s.Player.HP < 0 || s.Player.HP > s.Player.MaxHP {
				t.Fatalf("hp %d out of range", s.Player.HP)
			}
			if s.Player.X < 0 || s.Player.X > g.screen.Width-s.Player.Width {
				t.Fatalf("player left the playfield at x=%v", s.Player.X)
			}
			if s.Over && g.spawnTask.Active() {
				t.Fatalf("timers survived game over")
			}
		}
	})
}

func TestBulletDamagesAtMostOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New(Options{Random: fixedRandom(0.5)})
		s := g.state
		s.Player.X = 0

		const hp = 1000
		n := rapid.IntRange(1, 6).Draw(t, "enemies")
		for range n {
			e := object.NewEnemy(object.EnemyTanker, rapid.Float64Range(0, 360).Draw(t, "ex"), 1, 1)
			e.Y = rapid.Float64Range(0, 400).Draw(t, "ey")
			e.HP, e.MaxHP = hp, hp
			s.Enemies = append(s.Enemies, e)
		}
		m := rapid.IntRange(1, 10).Draw(t, "bullets")
		for range m {
			s.Bullets = append(s.Bullets, object.NewBullet(
				rapid.Float64Range(0, 396).Draw(t, "bx"),
				rapid.Float64Range(20, 500).Draw(t, "by"),
			))
		}

		g.updateEnemies()

		lost := 0
		for _, e := range s.Enemies {
			lost += hp - e.HP
		}
		hits := 0
		for _, b := range s.Bullets {
			if b.Hit {
				hits++
			}
		}
		if lost != hits*object.BulletDamage {
			t.Fatalf("enemies lost %d hp from %d hits", lost, hits)
		}
	})
}

func TestLaserDamagesAtMostOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New(Options{Random: fixedRandom(0.5)})
		s := g.state
		b := fightingBoss(g)
		s.Laser = object.NewLaserBeam(b, g.screen)

		frames := rapid.IntRange(1, 40).Draw(t, "frames")
		for range frames {
			s.Player.X = rapid.Float64Range(0, 360).Draw(t, "px")
			g.updateLaser()
		}

		if taken := object.PlayerMaxHP - s.Player.HP; taken > object.LaserDamage {
			t.Fatalf("laser dealt %d", taken)
		}
		if s.Over {
			t.Fatalf("a single laser hit cannot end a full-health game")
		}
	})
}
