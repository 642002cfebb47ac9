package game

import "time"

// Stage is one row of the difficulty table.
type Stage struct {
	ScoreThreshold       int
	SpawnInterval        time.Duration
	EnemySpeedMultiplier float64
	EnemyBulletSpeed     float64
	ShootInterval        time.Duration
	HPMultiplier         float64
}

var stages = [...]Stage{
	{ScoreThreshold: 0, SpawnInterval: 1000 * time.Millisecond, EnemySpeedMultiplier: 1.0, EnemyBulletSpeed: 4, ShootInterval: 1200 * time.Millisecond, HPMultiplier: 1.0},
	{ScoreThreshold: 50, SpawnInterval: 800 * time.Millisecond, EnemySpeedMultiplier: 1.2, EnemyBulletSpeed: 5, ShootInterval: 1000 * time.Millisecond, HPMultiplier: 1.2},
	{ScoreThreshold: 150, SpawnInterval: 600 * time.Millisecond, EnemySpeedMultiplier: 1.5, EnemyBulletSpeed: 6, ShootInterval: 800 * time.Millisecond, HPMultiplier: 1.5},
	{ScoreThreshold: 300, SpawnInterval: 500 * time.Millisecond, EnemySpeedMultiplier: 1.8, EnemyBulletSpeed: 7, ShootInterval: 600 * time.Millisecond, HPMultiplier: 2.0},
	{ScoreThreshold: 500, SpawnInterval: 400 * time.Millisecond, EnemySpeedMultiplier: 2.0, EnemyBulletSpeed: 8, ShootInterval: 500 * time.Millisecond, HPMultiplier: 2.5},
}

// StageCount is the number of difficulty stages.
const StageCount = len(stages)

// StageAt returns the stage for index i, clamped to the table.
func StageAt(i int) Stage {
	if i < 0 {
		i = 0
	}
	if i >= len(stages) {
		i = len(stages) - 1
	}
	return stages[i]
}

// Scheduling and scoring
const (
	BossSpawnScore = 100
	BossKillScore  = 1
	EnemyKillScore = 1

	StageDuration  = 50 * time.Second // Time-based stage advance
	HPItemInterval = 5 * time.Second

	BurstShots      = 3
	BurstSpacing    = 200 * time.Millisecond
	BurstChance     = 0.7 // Roll below this fires a burst, otherwise the laser
	LaserChargeTime = 2 * time.Second

	ContactDamage    = 10
	ScoreDropChance  = 0.3
	BossDefeatBursts = 50

	// MaxStep bounds the time one Step may advance the clock, so a stalled
	// front-end does not replay seconds of spawns in a single frame.
	MaxStep = 250 * time.Millisecond
)
