package game

import "github.com/oyw0322/galaxy-defender/internal/object"

// State holds everything one game session simulates. It is owned by a single
// Game and mutated only from Step and the tasks the Game schedules.
type State struct {
	Player       *object.Player
	Bullets      []*object.Bullet
	EnemyBullets []*object.EnemyBullet
	Enemies      []*object.Enemy
	Items        []*object.Item
	Effects      []*object.Effect

	Boss     *object.Boss      // At most one
	Laser    *object.LaserBeam // At most one
	Charging bool              // Laser charge in progress

	Score      int
	StageIndex int
	Over       bool
	Victory    bool
	Message    string

	fireHeld bool // Fire intent on the previous frame
}

func newState() *State {
	return &State{
		Player: object.NewPlayer(),
	}
}

// Stage returns the current row of the difficulty table.
func (s *State) Stage() Stage {
	return StageAt(s.StageIndex)
}

// SpawnEffect adds a particle (implements object.EffectSpawner).
func (s *State) SpawnEffect(e *object.Effect) {
	s.Effects = append(s.Effects, e)
}

// releaseEffects hands every particle back to the pool.
func (s *State) releaseEffects() {
	for _, e := range s.Effects {
		e.Release()
	}
	s.Effects = nil
}
