package object

import (
	"fmt"
	"math"

	"github.com/oyw0322/galaxy-defender/internal/physics"
)

// Enemy defaults.
const (
	EnemyWidth     = 40.0
	EnemyHeight    = 40.0
	EnemyBaseSpeed = 2.0

	speedsterBulletFactor = 1.5
)

// EnemyKind is the archetype of an enemy.
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyTanker
	EnemySpeedster
)

// RollEnemyKind maps a uniform roll in [0, 1) to a kind:
// 60% normal, 25% tanker, 15% speedster.
func RollEnemyKind(roll float64) EnemyKind {
	switch {
	case roll < 0.6:
		return EnemyNormal
	case roll < 0.85:
		return EnemyTanker
	default:
		return EnemySpeedster
	}
}

// BaseHP is the kind's health before stage scaling.
func (k EnemyKind) BaseHP() int {
	switch k {
	case EnemyNormal:
		return 10
	case EnemyTanker:
		return 30
	case EnemySpeedster:
		return 5
	}
	panic(fmt.Sprintf("object: unknown enemy kind %d", int(k)))
}

// SpeedMultiplier scales the stage's enemy speed for this kind.
func (k EnemyKind) SpeedMultiplier() float64 {
	switch k {
	case EnemyNormal:
		return 1.0
	case EnemyTanker:
		return 0.6
	case EnemySpeedster:
		return 2.0
	}
	panic(fmt.Sprintf("object: unknown enemy kind %d", int(k)))
}

// Color is the kind's body colour.
func (k EnemyKind) Color() Color {
	switch k {
	case EnemyNormal:
		return ColorWhite
	case EnemyTanker:
		return ColorGray
	case EnemySpeedster:
		return ColorRed
	}
	panic(fmt.Sprintf("object: unknown enemy kind %d", int(k)))
}

func (k EnemyKind) String() string {
	switch k {
	case EnemyNormal:
		return "normal"
	case EnemyTanker:
		return "tanker"
	case EnemySpeedster:
		return "speedster"
	}
	return fmt.Sprintf("EnemyKind(%d)", int(k))
}

// Enemy is a hostile craft descending from the top edge.
type Enemy struct {
	Kind          EnemyKind
	X, Y          float64
	Width, Height float64
	Speed         float64
	HP            int
	MaxHP         int
	Destroyed     bool
}

// NewEnemy creates an enemy of the given kind at (x, 0), scaled by the
// stage's speed and health multipliers.
func NewEnemy(kind EnemyKind, x, speedMult, hpMult float64) *Enemy {
	hp := int(math.Round(float64(kind.BaseHP()) * hpMult))
	return &Enemy{
		Kind:   kind,
		X:      x,
		Y:      0,
		Width:  EnemyWidth,
		Height: EnemyHeight,
		Speed:  EnemyBaseSpeed * speedMult * kind.SpeedMultiplier(),
		HP:     hp,
		MaxHP:  hp,
	}
}

// Move advances the enemy down one frame.
func (e *Enemy) Move() {
	e.Y += e.Speed
}

// OffScreen reports whether the enemy has passed the bottom edge.
func (e *Enemy) OffScreen(screen Screen) bool {
	return e.Y >= screen.Height
}

// Bounds returns the enemy's collision box.
func (e *Enemy) Bounds() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Hit subtracts damage from health, stopping at zero. Returns true if
// health is exhausted.
func (e *Enemy) Hit(damage int) bool {
	e.HP = max(e.HP-damage, 0)
	return e.HP <= 0
}

// Shoot creates a shot falling from the enemy's underside at the given
// stage bullet speed. Speedsters fire faster shots.
func (e *Enemy) Shoot(stageSpeed float64) *EnemyBullet {
	speed := stageSpeed
	if e.Kind == EnemySpeedster {
		speed *= speedsterBulletFactor
	}
	return NewEnemyBullet(e.X+e.Width/2-EnemyBulletWidth/2, e.Y+e.Height, speed)
}

// MarkDestroyed flags the enemy for removal (implements Destructible).
func (e *Enemy) MarkDestroyed() {
	e.Destroyed = true
}

// IsDestroyed returns true if the enemy is flagged for removal (implements Destructible).
func (e *Enemy) IsDestroyed() bool {
	return e.Destroyed
}
