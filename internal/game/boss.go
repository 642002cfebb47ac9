package game

import (
	"time"

	"github.com/oyw0322/galaxy-defender/internal/object"
	"github.com/oyw0322/galaxy-defender/internal/physics"
)

// spawnBoss brings in a new boss and suspends regular spawning.
func (g *Game) spawnBoss() {
	s := g.state
	s.Boss = object.NewBoss(nextBossID(), g.screen)
	g.configureTimers()
	g.log.Info("boss spawned", "boss", s.Boss.ID, "stage", s.StageIndex+1, "score", s.Score)
}

// updateBoss runs one frame of the boss state machine.
// Returns true if the boss was defeated this frame.
func (g *Game) updateBoss() bool {
	s := g.state
	b := s.Boss
	if b == nil {
		return false
	}
	if b.Phase == object.PhaseEntrance {
		b.Move(g.screen)
		return false
	}

	b.Move(g.screen)
	g.bossAttack(b)

	bounds := b.Bounds()
	for _, bullet := range s.Bullets {
		if bullet.Hit || !physics.Overlaps(bounds, bullet.Bounds()) {
			continue
		}
		b.Hit(bullet.Damage)
		bullet.MarkDestroyed()
		object.SpawnBurst(bullet.X, bullet.Y, object.RandomColor(g.rng), g.rng, s)
	}

	if b.Defeated() {
		g.defeatBoss()
		return true
	}
	return false
}

// bossAttack picks an attack once the cooldown has elapsed. Nothing is
// chosen while the laser is charging.
func (g *Game) bossAttack(b *object.Boss) {
	s := g.state
	b.AttackTimer++
	if b.AttackTimer < b.AttackCooldown || s.Charging {
		return
	}

	if g.rng.Float64() < BurstChance {
		g.bossBurst(b)
		b.AttackTimer = 0
		return
	}
	g.chargeLaser(b)
}

// bossBurst schedules BurstShots aimed shots, BurstSpacing apart.
// Each shot aims at wherever the player is when it fires.
func (g *Game) bossBurst(b *object.Boss) {
	epoch, id := g.epoch, b.ID
	for i := range BurstShots {
		g.sched.After("boss-burst", time.Duration(i)*BurstSpacing, func() {
			g.bossShoot(epoch, id)
		})
	}
}

// bossShoot fires one homing shot if the boss that ordered it is still the
// active boss of the same session.
func (g *Game) bossShoot(epoch, bossID uint64) {
	b, ok := g.liveBoss(epoch, bossID)
	if !ok {
		return
	}
	s := g.state
	mx, my := b.Muzzle()
	tx, ty := s.Player.Bounds().Center()
	s.EnemyBullets = append(s.EnemyBullets, object.NewBossBullet(mx, my, tx, ty))
}

// chargeLaser latches the charge and schedules the beam.
func (g *Game) chargeLaser(b *object.Boss) {
	s := g.state
	s.Charging = true
	epoch, id := g.epoch, b.ID
	g.sched.After("laser-charge", LaserChargeTime, func() {
		g.fireLaser(epoch, id)
	})
	g.log.Debug("laser charging", "boss", id)
}

// fireLaser materializes the beam under the boss that charged it. If that
// boss is gone the charge is abandoned; defeat already released the latch.
func (g *Game) fireLaser(epoch, bossID uint64) {
	b, ok := g.liveBoss(epoch, bossID)
	if !ok {
		return
	}
	s := g.state
	s.Laser = object.NewLaserBeam(b, g.screen)
	s.Charging = false
	b.AttackTimer = 0
}

// liveBoss returns the current boss if it matches the session epoch and
// boss ID captured by a delayed task.
func (g *Game) liveBoss(epoch, bossID uint64) (*object.Boss, bool) {
	s := g.state
	if epoch != g.epoch || s.Over || s.Boss == nil || s.Boss.ID != bossID {
		return nil, false
	}
	return s.Boss, true
}

// defeatBoss scores the kill, clears the boss and either moves to the next
// stage or, on the last stage, ends the game in victory.
func (g *Game) defeatBoss() {
	s := g.state
	b := s.Boss
	s.Score += BossKillScore

	cx, cy := b.Bounds().Center()
	for range BossDefeatBursts {
		object.SpawnBurst(cx, cy, object.ColorYellow, g.rng, s)
	}

	s.Boss = nil
	s.Charging = false
	g.log.Info("boss defeated", "boss", b.ID, "stage", s.StageIndex+1, "score", s.Score)

	if s.StageIndex < StageCount-1 {
		g.advanceStage(triggerBoss)
		return
	}
	g.finish(true)
}

// updateLaser ages the beam and applies its one-time damage.
func (g *Game) updateLaser() {
	s := g.state
	l := s.Laser
	if l == nil {
		return
	}
	l.Track(s.Boss)
	if l.Update() {
		s.Laser = nil
		return
	}
	if physics.Overlaps(l.Bounds(), s.Player.Bounds()) {
		if d := l.Strike(); d > 0 {
			g.Damage(d)
		}
	}
}
