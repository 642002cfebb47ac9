package object

import "github.com/oyw0322/galaxy-defender/internal/physics"

// Player defaults.
const (
	PlayerWidth  = 40.0
	PlayerHeight = 40.0
	PlayerSpeed  = 5.0 // Units per frame
	PlayerStartX = 180.0
	PlayerStartY = 550.0
	PlayerMaxHP  = 100
)

// Player is the craft controlled by the user. Health lives alongside the
// position but is only changed through Damage and Heal.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	HP            int
	MaxHP         int
}

// NewPlayer creates a player at the start position with full health.
func NewPlayer() *Player {
	return &Player{
		X:      PlayerStartX,
		Y:      PlayerStartY,
		Width:  PlayerWidth,
		Height: PlayerHeight,
		Speed:  PlayerSpeed,
		HP:     PlayerMaxHP,
		MaxHP:  PlayerMaxHP,
	}
}

// Bounds returns the player's collision box.
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Move shifts the player horizontally and keeps it inside the playfield.
func (p *Player) Move(left, right bool, screen Screen) {
	if left {
		p.X -= p.Speed
	}
	if right {
		p.X += p.Speed
	}
	p.X = physics.Clamp(p.X, 0, screen.Width-p.Width)
}

// Fire creates a bullet leaving the nose of the craft.
func (p *Player) Fire() *Bullet {
	return NewBullet(p.X+p.Width/2-BulletWidth/2, p.Y)
}

// Damage subtracts n from health, clamping at zero.
// Returns true if the player has no health left.
func (p *Player) Damage(n int) bool {
	p.HP -= n
	if p.HP < 0 {
		p.HP = 0
	}
	return p.HP <= 0
}

// Heal adds n to health, clamping at the maximum.
func (p *Player) Heal(n int) {
	p.HP += n
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}
