package object

import "github.com/oyw0322/galaxy-defender/internal/physics"

// Player bullet defaults.
const (
	BulletWidth  = 4.0
	BulletHeight = 10.0
	BulletSpeed  = 7.0
	BulletDamage = 10
)

// Enemy and boss shot defaults.
const (
	EnemyBulletWidth  = 4.0
	EnemyBulletHeight = 10.0
	EnemyBulletDamage = 20

	BossBulletSize   = 8.0
	BossBulletSpeed  = 6.0
	BossBulletDamage = 30
)

// Bullet is a shot fired upward by the player. It damages the first target
// it overlaps; the Hit flag keeps it from damaging anything else before the
// cleanup pass removes it.
type Bullet struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Damage        int
	Hit           bool
}

// NewBullet creates a player bullet with its top-left corner at (x, y).
func NewBullet(x, y float64) *Bullet {
	return &Bullet{
		X:      x,
		Y:      y,
		Width:  BulletWidth,
		Height: BulletHeight,
		Speed:  BulletSpeed,
		Damage: BulletDamage,
	}
}

// Update moves the bullet up. Returns true once it has left the playfield.
func (b *Bullet) Update() bool {
	b.Y -= b.Speed
	return b.OffScreen()
}

// OffScreen reports whether the bullet has reached the top edge.
func (b *Bullet) OffScreen() bool {
	return b.Y <= 0
}

// Bounds returns the bullet's collision box.
func (b *Bullet) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// MarkDestroyed flags the bullet as spent (implements Destructible).
func (b *Bullet) MarkDestroyed() {
	b.Hit = true
}

// IsDestroyed returns true once the bullet has hit something (implements Destructible).
func (b *Bullet) IsDestroyed() bool {
	return b.Hit
}

// EnemyBullet is a shot aimed at the player. Ordinary shots fall straight
// down at Speed; boss shots follow the velocity fixed when they were fired.
type EnemyBullet struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	VX, VY        float64
	Damage        int
	Boss          bool
	Hit           bool
}

// NewEnemyBullet creates a straight falling shot.
func NewEnemyBullet(x, y, speed float64) *EnemyBullet {
	return &EnemyBullet{
		X:      x,
		Y:      y,
		Width:  EnemyBulletWidth,
		Height: EnemyBulletHeight,
		Speed:  speed,
		Damage: EnemyBulletDamage,
	}
}

// NewBossBullet creates a homing shot from (x, y) towards (tx, ty).
// The heading is computed once; the shot does not steer afterwards.
func NewBossBullet(x, y, tx, ty float64) *EnemyBullet {
	vx, vy := physics.Heading(x, y, tx, ty, BossBulletSpeed)
	return &EnemyBullet{
		X:      x,
		Y:      y,
		Width:  BossBulletSize,
		Height: BossBulletSize,
		Speed:  BossBulletSpeed,
		VX:     vx,
		VY:     vy,
		Damage: BossBulletDamage,
		Boss:   true,
	}
}

// Move advances the shot one frame.
func (b *EnemyBullet) Move() {
	if b.Boss {
		b.X += b.VX
		b.Y += b.VY
		return
	}
	b.Y += b.Speed
}

// OffScreen reports whether the shot is entirely outside the playfield.
func (b *EnemyBullet) OffScreen(screen Screen) bool {
	return b.Y >= screen.Height || b.Y+b.Height <= 0 ||
		b.X >= screen.Width || b.X+b.Width <= 0
}

// Bounds returns the shot's collision box.
func (b *EnemyBullet) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// MarkDestroyed flags the shot as spent (implements Destructible).
func (b *EnemyBullet) MarkDestroyed() {
	b.Hit = true
}

// IsDestroyed returns true once the shot has hit the player (implements Destructible).
func (b *EnemyBullet) IsDestroyed() bool {
	return b.Hit
}
