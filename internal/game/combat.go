package game

import (
	"github.com/oyw0322/galaxy-defender/internal/object"
	"github.com/oyw0322/galaxy-defender/internal/physics"
)

// updateBullets moves player bullets up and drops those past the top edge.
func (g *Game) updateBullets() {
	s := g.state
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.Update() {
			continue
		}
		kept = append(kept, b)
	}
	clear(s.Bullets[len(kept):])
	s.Bullets = kept
}

// updateEnemies moves enemies and resolves contact with the player and with
// player bullets. Enemies are resolved in list order, so a bullet overlapping
// two enemies damages the first one only.
func (g *Game) updateEnemies() {
	s := g.state
	player := s.Player.Bounds()

	for _, e := range s.Enemies {
		e.Move()
		bounds := e.Bounds()

		if physics.Overlaps(bounds, player) {
			g.Damage(ContactDamage)
			e.HP = 0
			if s.Over {
				return
			}
		}

		for _, b := range s.Bullets {
			if b.Hit || !physics.Overlaps(bounds, b.Bounds()) {
				continue
			}
			e.Hit(b.Damage)
			b.MarkDestroyed()
			object.SpawnBurst(b.X, b.Y, object.RandomColor(g.rng), g.rng, s)
		}

		if e.HP <= 0 && !e.Destroyed {
			g.killEnemy(e)
		}
	}
}

// killEnemy scores a destroyed enemy and may drop a score item.
func (g *Game) killEnemy(e *object.Enemy) {
	s := g.state
	e.MarkDestroyed()
	s.Score += EnemyKillScore
	if g.rng.Float64() < ScoreDropChance {
		x := e.X + e.Width/2 - object.ItemSize/2
		s.Items = append(s.Items, object.NewItem(object.ItemScore, x, e.Y))
	}
}

// cleanup removes spent bullets, destroyed enemies and enemies that left the
// playfield. Destroyed enemies burst at their centre.
func (g *Game) cleanup() {
	s := g.state

	bullets := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.IsDestroyed() || b.OffScreen() {
			continue
		}
		bullets = append(bullets, b)
	}
	clear(s.Bullets[len(bullets):])
	s.Bullets = bullets

	enemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.IsDestroyed() {
			cx, cy := e.Bounds().Center()
			object.SpawnBurst(cx, cy, object.RandomColor(g.rng), g.rng, s)
			continue
		}
		if e.OffScreen(g.screen) {
			continue
		}
		enemies = append(enemies, e)
	}
	clear(s.Enemies[len(enemies):])
	s.Enemies = enemies
}

// updateEnemyBullets moves enemy and boss shots and applies their damage.
// Removal waits until every shot has moved, so an early game over leaves the
// store intact for the final frame.
func (g *Game) updateEnemyBullets() {
	s := g.state
	player := s.Player.Bounds()

	for _, b := range s.EnemyBullets {
		b.Move()
		if physics.Overlaps(b.Bounds(), player) {
			g.Damage(b.Damage)
			b.MarkDestroyed()
			if s.Over {
				return
			}
		}
	}

	kept := s.EnemyBullets[:0]
	for _, b := range s.EnemyBullets {
		if b.IsDestroyed() || b.OffScreen(g.screen) {
			continue
		}
		kept = append(kept, b)
	}
	clear(s.EnemyBullets[len(kept):])
	s.EnemyBullets = kept
}

// updateItems moves items and applies any the player touches.
func (g *Game) updateItems() {
	s := g.state
	player := s.Player.Bounds()

	kept := s.Items[:0]
	for _, it := range s.Items {
		it.Move()
		if physics.Overlaps(it.Bounds(), player) {
			g.collect(it)
		}
		if it.IsDestroyed() || it.OffScreen(g.screen) {
			continue
		}
		kept = append(kept, it)
	}
	clear(s.Items[len(kept):])
	s.Items = kept
}

func (g *Game) collect(it *object.Item) {
	switch it.Kind {
	case object.ItemScore:
		g.state.Score += object.ScoreItemValue
	case object.ItemHeal:
		g.Heal(object.HealItemValue)
	}
	it.MarkDestroyed()
}
