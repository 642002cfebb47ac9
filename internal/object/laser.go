package object

import "github.com/oyw0322/galaxy-defender/internal/physics"

// Laser defaults.
const (
	LaserWidth    = 10.0
	LaserLifetime = 30 // Frames
	LaserDamage   = 50
)

// LaserBeam is the boss's vertical beam. It deals its damage at most once;
// after the first hit Damage drops to zero for the rest of its life.
type LaserBeam struct {
	BossID        uint64
	X, Y          float64
	Width, Height float64
	Life          int
	MaxLife       int
	Damage        int
}

// NewLaserBeam creates a beam from the boss's muzzle to the bottom edge.
func NewLaserBeam(b *Boss, screen Screen) *LaserBeam {
	mx, my := b.Muzzle()
	return &LaserBeam{
		BossID:  b.ID,
		X:       mx - LaserWidth/2,
		Y:       my,
		Width:   LaserWidth,
		Height:  screen.Height - my,
		Life:    LaserLifetime,
		MaxLife: LaserLifetime,
		Damage:  LaserDamage,
	}
}

// Track keeps the beam under its boss's muzzle. A nil boss, or a different
// boss than the one that fired it, leaves the beam where it is.
func (l *LaserBeam) Track(b *Boss) {
	if b == nil || b.ID != l.BossID {
		return
	}
	mx, _ := b.Muzzle()
	l.X = mx - l.Width/2
}

// Update burns one frame of life. Returns true if the beam has expired.
func (l *LaserBeam) Update() bool {
	l.Life--
	return l.Life <= 0
}

// Strike returns the damage to apply to a target the beam overlaps and
// spends it, so later frames deal nothing.
func (l *LaserBeam) Strike() int {
	d := l.Damage
	l.Damage = 0
	return d
}

// Alpha is the remaining life as a fraction, for fading.
func (l *LaserBeam) Alpha() float64 {
	if l.MaxLife <= 0 {
		return 0
	}
	return float64(l.Life) / float64(l.MaxLife)
}

// Bounds returns the beam's collision box.
func (l *LaserBeam) Bounds() physics.Rect {
	return physics.Rect{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}
}
