package game

import "github.com/oyw0322/galaxy-defender/internal/object"

// spawnEnemy adds one enemy at the top edge. Suspended during boss fights.
func (g *Game) spawnEnemy() {
	s := g.state
	if s.Boss != nil || s.Over {
		return
	}
	st := s.Stage()
	x := g.rng.Float64() * (g.screen.Width - object.EnemyWidth)
	kind := object.RollEnemyKind(g.rng.Float64())
	s.Enemies = append(s.Enemies, object.NewEnemy(kind, x, st.EnemySpeedMultiplier, st.HPMultiplier))
}

// enemyShoot has one random enemy fire straight down.
func (g *Game) enemyShoot() {
	s := g.state
	n := len(s.Enemies)
	if n == 0 || s.Boss != nil || s.Over {
		return
	}
	i := int(g.rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	s.EnemyBullets = append(s.EnemyBullets, s.Enemies[i].Shoot(s.Stage().EnemyBulletSpeed))
}

// spawnHPItem drops a healing item at a random column.
func (g *Game) spawnHPItem() {
	s := g.state
	if s.Boss != nil || s.Over {
		return
	}
	x := g.rng.Float64() * (g.screen.Width - object.ItemSize)
	s.Items = append(s.Items, object.NewItem(object.ItemHeal, x, 0))
}
