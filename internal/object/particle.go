package object

import (
	"math"
	"sync"
)

// Burst defaults.
const (
	BurstSize       = 10
	EffectLifetime  = 30 // Frames
	effectMinSpeed  = 1.0
	effectSpeedSpan = 2.0
	effectMinRadius = 2.0
	effectRadSpan   = 3.0
)

// effectPool reuses Effect values; boss kills spawn hundreds at once.
var effectPool = sync.Pool{
	New: func() any {
		return &Effect{}
	},
}

// Effect is a short-lived particle. It has no collision.
type Effect struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Life    int // Frames remaining
	MaxLife int
	Color   Color
}

// NewEffect creates a single particle from the pool.
func NewEffect(x, y, vx, vy, radius float64, life int, c Color) *Effect {
	e := effectPool.Get().(*Effect)
	e.X = x
	e.Y = y
	e.VX = vx
	e.VY = vy
	e.Radius = radius
	e.Life = life
	e.MaxLife = life
	e.Color = c
	return e
}

// Release returns the particle to the pool.
// Call it once the particle has been removed from the effect store.
func (e *Effect) Release() {
	*e = Effect{}
	effectPool.Put(e)
}

// Update moves the particle and burns one frame of life.
// Returns true if the particle has expired.
func (e *Effect) Update() bool {
	e.X += e.VX
	e.Y += e.VY
	e.Life--
	return e.Life <= 0
}

// Alpha is the remaining life as a fraction, for fading.
func (e *Effect) Alpha() float64 {
	if e.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, float64(e.Life)/float64(e.MaxLife))
}

// EffectSpawner receives particles created by a burst.
type EffectSpawner interface {
	SpawnEffect(e *Effect)
}

// SpawnBurst emits BurstSize particles radiating from (x, y).
// Each particle takes a random direction, speed and radius, in that order.
func SpawnBurst(x, y float64, c Color, rng Random, spawner EffectSpawner) {
	if spawner == nil {
		return
	}
	for range BurstSize {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Float64()*effectSpeedSpan + effectMinSpeed
		radius := effectMinRadius + rng.Float64()*effectRadSpan

		spawner.SpawnEffect(NewEffect(
			x, y,
			math.Cos(angle)*speed,
			math.Sin(angle)*speed,
			radius,
			EffectLifetime,
			c,
		))
	}
}
