package game

import "github.com/oyw0322/galaxy-defender/internal/object"

// Box is an axis-aligned rectangle in playfield units.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// PlayerView is the rendered state of the player.
type PlayerView struct {
	Box
	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
}

// ShotView is an enemy or boss shot.
type ShotView struct {
	Box
	Boss bool `json:"boss"`
}

// EnemyView is one enemy.
type EnemyView struct {
	Box
	Kind  string       `json:"kind"`
	Color object.Color `json:"color"`
	HP    int          `json:"hp"`
	MaxHP int          `json:"maxHp"`
}

// BossView is the active boss.
type BossView struct {
	Box
	HP    int              `json:"hp"`
	MaxHP int              `json:"maxHp"`
	Phase object.BossPhase `json:"phase"`
}

// LaserView is the active beam. Alpha fades from 1 to 0 over its life.
type LaserView struct {
	Box
	Alpha float64 `json:"alpha"`
}

// ItemView is one pickup.
type ItemView struct {
	Box
	Kind  string       `json:"kind"`
	Color object.Color `json:"color"`
}

// EffectView is one particle.
type EffectView struct {
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Radius float64      `json:"r"`
	Alpha  float64      `json:"alpha"`
	Color  object.Color `json:"color"`
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the simulation.
type Snapshot struct {
	Width        float64      `json:"width"`
	Height       float64      `json:"height"`
	Player       PlayerView   `json:"player"`
	Bullets      []Box        `json:"bullets"`
	EnemyBullets []ShotView   `json:"enemyBullets"`
	Enemies      []EnemyView  `json:"enemies"`
	Items        []ItemView   `json:"items"`
	Effects      []EffectView `json:"effects"`
	Boss         *BossView    `json:"boss,omitempty"`
	Laser        *LaserView   `json:"laser,omitempty"`
	Charging     bool         `json:"charging"`
	Score        int          `json:"score"`
	Stage        int          `json:"stage"` // 1-based
	Over         bool         `json:"over"`
	Victory      bool         `json:"victory"`
	Message      string       `json:"message,omitempty"`
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	snap := Snapshot{
		Width:  g.screen.Width,
		Height: g.screen.Height,
		Player: PlayerView{
			Box:   boxOf(s.Player.X, s.Player.Y, s.Player.Width, s.Player.Height),
			HP:    s.Player.HP,
			MaxHP: s.Player.MaxHP,
		},
		Bullets:      make([]Box, 0, len(s.Bullets)),
		EnemyBullets: make([]ShotView, 0, len(s.EnemyBullets)),
		Enemies:      make([]EnemyView, 0, len(s.Enemies)),
		Items:        make([]ItemView, 0, len(s.Items)),
		Effects:      make([]EffectView, 0, len(s.Effects)),
		Charging:     s.Charging,
		Score:        s.Score,
		Stage:        s.StageIndex + 1,
		Over:         s.Over,
		Victory:      s.Victory,
		Message:      s.Message,
	}

	for _, b := range s.Bullets {
		snap.Bullets = append(snap.Bullets, boxOf(b.X, b.Y, b.Width, b.Height))
	}
	for _, b := range s.EnemyBullets {
		snap.EnemyBullets = append(snap.EnemyBullets, ShotView{
			Box:  boxOf(b.X, b.Y, b.Width, b.Height),
			Boss: b.Boss,
		})
	}
	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			Box:   boxOf(e.X, e.Y, e.Width, e.Height),
			Kind:  e.Kind.String(),
			Color: e.Kind.Color(),
			HP:    e.HP,
			MaxHP: e.MaxHP,
		})
	}
	for _, it := range s.Items {
		snap.Items = append(snap.Items, ItemView{
			Box:   boxOf(it.X, it.Y, it.Width, it.Height),
			Kind:  it.Kind.String(),
			Color: it.Kind.Color(),
		})
	}
	for _, e := range s.Effects {
		snap.Effects = append(snap.Effects, EffectView{
			X:      e.X,
			Y:      e.Y,
			Radius: e.Radius,
			Alpha:  e.Alpha(),
			Color:  e.Color,
		})
	}
	if b := s.Boss; b != nil {
		snap.Boss = &BossView{
			Box:   boxOf(b.X, b.Y, b.Width, b.Height),
			HP:    b.HP,
			MaxHP: b.MaxHP,
			Phase: b.Phase,
		}
	}
	if l := s.Laser; l != nil {
		snap.Laser = &LaserView{
			Box:   boxOf(l.X, l.Y, l.Width, l.Height),
			Alpha: l.Alpha(),
		}
	}
	return snap
}

func boxOf(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}
