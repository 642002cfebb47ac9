// Package config centralizes the front-end tunables.
package config

import "time"

// Client rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Max render resolution in terminal cells. Larger terminals get a centred
// playfield instead of a stretched one.
const (
	MaxTermWidth  = 120
	MaxTermHeight = 60
)

// HUD
const (
	LowHPThreshold = 20 // HP at or below this is highlighted
	HPBarWidth     = 10
	BossBarWidth   = 20
	EnemyBarWidth  = 4
	WarningBlinkHz = 4.0
)

// Server tick rate for network sessions.
const (
	ServerTickRate = 60
	ServerTickTime = time.Second / ServerTickRate
)
