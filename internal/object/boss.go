package object

import (
	"fmt"

	"github.com/oyw0322/galaxy-defender/internal/physics"
)

// Boss defaults.
const (
	BossWidth          = 120.0
	BossHeight         = 120.0
	BossSpeed          = 1.0
	BossMaxHP          = 1000
	BossStartY         = -100.0
	BossArenaY         = 50.0 // Entrance ends here
	BossAttackCooldown = 90   // Frames
	BossMoveBudget     = 120  // Frames before the boss turns around
)

// BossPhase is the boss's behavioural state.
type BossPhase int

const (
	// PhaseEntrance descends into the arena; the boss neither attacks nor takes damage.
	PhaseEntrance BossPhase = iota
	// PhaseFighting patrols horizontally and attacks.
	PhaseFighting
)

func (p BossPhase) String() string {
	switch p {
	case PhaseEntrance:
		return "entrance"
	case PhaseFighting:
		return "fighting"
	}
	return fmt.Sprintf("BossPhase(%d)", int(p))
}

// MarshalText encodes the phase by name.
func (p BossPhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Boss is the multi-phase enemy that appears once the score is high enough.
// ID distinguishes successive bosses so delayed attacks can tell whether the
// boss that launched them is still alive.
type Boss struct {
	ID             uint64
	X, Y           float64
	Width, Height  float64
	Speed          float64
	HP             int
	MaxHP          int
	Phase          BossPhase
	AttackCooldown int
	AttackTimer    int
	MoveDirection  float64
	MoveTime       int
}

// NewBoss creates a boss centred above the top edge, in its entrance phase.
func NewBoss(id uint64, screen Screen) *Boss {
	return &Boss{
		ID:             id,
		X:              screen.Width/2 - BossWidth/2,
		Y:              BossStartY,
		Width:          BossWidth,
		Height:         BossHeight,
		Speed:          BossSpeed,
		HP:             BossMaxHP,
		MaxHP:          BossMaxHP,
		Phase:          PhaseEntrance,
		AttackCooldown: BossAttackCooldown,
		MoveDirection:  1,
	}
}

// Move advances the boss one frame: descent while entering, horizontal
// patrol while fighting.
func (b *Boss) Move(screen Screen) {
	switch b.Phase {
	case PhaseEntrance:
		b.Y += b.Speed
		if b.Y >= BossArenaY {
			b.Phase = PhaseFighting
		}
	case PhaseFighting:
		b.X += b.Speed * b.MoveDirection
		b.MoveTime++
		if b.X <= 0 || b.X+b.Width >= screen.Width || b.MoveTime > BossMoveBudget {
			b.MoveDirection = -b.MoveDirection
			b.MoveTime = 0
			b.X = physics.Clamp(b.X, 0, screen.Width-b.Width)
		}
	}
}

// Muzzle is the point shots and the laser leave from: bottom centre.
func (b *Boss) Muzzle() (x, y float64) {
	return b.X + b.Width/2, b.Y + b.Height
}

// Bounds returns the boss's collision box.
func (b *Boss) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Hit subtracts damage from health, stopping at zero. Returns true if
// health is exhausted.
func (b *Boss) Hit(damage int) bool {
	b.HP = max(b.HP-damage, 0)
	return b.HP <= 0
}

// Defeated reports whether the boss has no health left.
func (b *Boss) Defeated() bool {
	return b.HP <= 0
}
