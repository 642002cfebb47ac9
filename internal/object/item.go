package object

import (
	"fmt"

	"github.com/oyw0322/galaxy-defender/internal/physics"
)

// Item defaults.
const (
	ItemSize  = 12.0
	ItemSpeed = 2.0

	ScoreItemValue = 10
	HealItemValue  = 30
)

// ItemKind is the effect an item has when collected.
type ItemKind int

const (
	ItemScore ItemKind = iota
	ItemHeal
)

// Color is the kind's body colour.
func (k ItemKind) Color() Color {
	switch k {
	case ItemScore:
		return ColorOrange
	case ItemHeal:
		return ColorRed
	}
	panic(fmt.Sprintf("object: unknown item kind %d", int(k)))
}

func (k ItemKind) String() string {
	switch k {
	case ItemScore:
		return "score"
	case ItemHeal:
		return "hp"
	}
	return fmt.Sprintf("ItemKind(%d)", int(k))
}

// Item is a pickup drifting toward the bottom edge.
type Item struct {
	Kind          ItemKind
	X, Y          float64
	Width, Height float64
	Speed         float64
	Collected     bool
}

// NewItem creates an item with its top-left corner at (x, y).
func NewItem(kind ItemKind, x, y float64) *Item {
	return &Item{
		Kind:   kind,
		X:      x,
		Y:      y,
		Width:  ItemSize,
		Height: ItemSize,
		Speed:  ItemSpeed,
	}
}

// Move advances the item down one frame.
func (i *Item) Move() {
	i.Y += i.Speed
}

// OffScreen reports whether the item has passed the bottom edge.
func (i *Item) OffScreen(screen Screen) bool {
	return i.Y >= screen.Height
}

// Bounds returns the item's collision box.
func (i *Item) Bounds() physics.Rect {
	return physics.Rect{X: i.X, Y: i.Y, Width: i.Width, Height: i.Height}
}

// MarkDestroyed flags the item as collected (implements Destructible).
func (i *Item) MarkDestroyed() {
	i.Collected = true
}

// IsDestroyed returns true once the item is collected (implements Destructible).
func (i *Item) IsDestroyed() bool {
	return i.Collected
}
