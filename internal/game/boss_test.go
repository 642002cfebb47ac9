package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyw0322/galaxy-defender/internal/object"
)

// readyBoss installs a fighting boss that attacks on the next frame.
func readyBoss(g *Game) *object.Boss {
	b := fightingBoss(g)
	b.AttackTimer = b.AttackCooldown - 1
	return b
}

func TestBurstRetargetsEachShot(t *testing.T) {
	g := New(Options{Random: fixedRandom(0.5)})
	s := g.state
	b := readyBoss(g)

	g.Step(frame, Intent{})
	assert.Zero(t, b.AttackTimer, "burst resets the timer immediately")
	assert.Empty(t, s.EnemyBullets, "first shot fires on the next frame")

	g.Step(frame, Intent{Right: true})
	require.Len(t, s.EnemyBullets, 1)
	first := *s.EnemyBullets[0]
	assert.True(t, first.Boss)
	assert.Equal(t, object.BossBulletDamage, first.Damage)

	for i := 0; len(s.EnemyBullets) < 2 && i < 20; i++ {
		g.Step(frame, Intent{Right: true})
	}
	require.Len(t, s.EnemyBullets, 2)
	second := s.EnemyBullets[1]
	assert.Greater(t, second.VX, first.VX, "aims where the player moved to")

	run(g, 250*time.Millisecond, frame, Intent{})
	assert.Len(t, s.EnemyBullets, BurstShots)
}

func TestBurstIsDroppedAfterRestart(t *testing.T) {
	g := New(Options{Random: fixedRandom(0.5)})
	readyBoss(g)
	g.Step(frame, Intent{})
	require.Equal(t, BurstShots+1, g.sched.Pending())

	g.Restart()
	run(g, 500*time.Millisecond, frame, Intent{})

	assert.Empty(t, g.state.EnemyBullets)
	assert.Nil(t, g.state.Boss)
}

func TestBurstIsDroppedAfterBossDefeat(t *testing.T) {
	g := New(Options{Random: fixedRandom(0.5)})
	readyBoss(g)
	g.Step(frame, Intent{})

	g.defeatBoss()
	run(g, 500*time.Millisecond, frame, Intent{})

	for _, b := range g.state.EnemyBullets {
		assert.False(t, b.Boss)
	}
}

func TestLaserChargesThenHitsOnce(t *testing.T) {
	g := New(Options{Random: fixedRandom(0.9)})
	s := g.state
	b := readyBoss(g)

	g.Step(frame, Intent{})
	require.True(t, s.Charging)
	assert.Contains(t, g.sched.Names(), "laser-charge")
	assert.Equal(t, b.AttackCooldown, b.AttackTimer, "timer is not reset while charging")

	run(g, LaserChargeTime-MaxStep, MaxStep, Intent{})
	assert.Nil(t, s.Laser)
	assert.True(t, s.Charging)

	g.Step(MaxStep, Intent{})
	require.NotNil(t, s.Laser)
	assert.False(t, s.Charging)
	assert.Equal(t, b.ID, s.Laser.BossID)
	assert.Equal(t, 1, b.AttackTimer)
	assert.Equal(t, object.PlayerMaxHP-object.LaserDamage, s.Player.HP)

	mx, _ := b.Muzzle()
	assert.Equal(t, mx-object.LaserWidth/2, s.Laser.X, "beam follows the boss")

	run(g, 40*frame, frame, Intent{})
	assert.Nil(t, s.Laser)
	assert.Equal(t, object.PlayerMaxHP-object.LaserDamage, s.Player.HP)
}

func TestLaserAbortsWhenBossDies(t *testing.T) {
	g := New(Options{Random: fixedRandom(0.9)})
	s := g.state
	readyBoss(g)
	g.Step(frame, Intent{})
	require.True(t, s.Charging)

	g.defeatBoss()
	assert.False(t, s.Charging, "defeat releases the charge")

	run(g, LaserChargeTime+MaxStep, MaxStep, Intent{})
	assert.Nil(t, s.Laser)
	assert.False(t, s.Charging)
}

func TestLaserIgnoresSuccessorBoss(t *testing.T) {
	g := New(Options{Random: fixedRandom(0.9)})
	s := g.state
	s.Score = BossSpawnScore
	old := readyBoss(g)
	g.Step(frame, Intent{})
	require.True(t, s.Charging)

	g.defeatBoss()
	g.Step(frame, Intent{})
	require.NotNil(t, s.Boss)
	require.NotEqual(t, old.ID, s.Boss.ID)

	run(g, LaserChargeTime+MaxStep, MaxStep, Intent{})
	assert.Nil(t, s.Laser)
	assert.False(t, s.Charging)
}

func TestLaserIsDroppedAfterRestart(t *testing.T) {
	g := New(Options{Random: fixedRandom(0.9)})
	s := g.state
	readyBoss(g)
	g.Step(frame, Intent{})
	require.True(t, s.Charging)

	g.Damage(1000)
	require.True(t, g.Over())
	g.Restart()
	s = g.state

	run(g, LaserChargeTime+MaxStep, MaxStep, Intent{})
	assert.False(t, g.Over())
	assert.Nil(t, s.Laser)
	assert.False(t, s.Charging)
	assert.Nil(t, s.Boss)
}

func TestLaserKeepsPositionWhenBossIsGone(t *testing.T) {
	g := New(Options{Random: fixedRandom(0.5)})
	s := g.state
	b := fightingBoss(g)
	s.Laser = object.NewLaserBeam(b, g.screen)
	x := s.Laser.X

	s.Boss = nil
	g.updateLaser()

	require.NotNil(t, s.Laser)
	assert.Equal(t, x, s.Laser.X)
	assert.Equal(t, object.LaserLifetime-1, s.Laser.Life)
}

func TestBossAttacksWaitForCooldown(t *testing.T) {
	g := New(Options{Random: fixedRandom(0.5)})
	b := fightingBoss(g)

	run(g, time.Duration(b.AttackCooldown-1)*frame, frame, Intent{})
	assert.Equal(t, b.AttackCooldown-1, b.AttackTimer)
	assert.Equal(t, 1, g.sched.Pending(), "only the hp item timer")

	g.Step(frame, Intent{})
	assert.Zero(t, b.AttackTimer)
	assert.Equal(t, 1+BurstShots, g.sched.Pending())
}
