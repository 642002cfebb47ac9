package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	box := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same box", box, true},
		{"inside", Rect{X: 15, Y: 15, Width: 2, Height: 2}, true},
		{"partial overlap", Rect{X: 25, Y: 25, Width: 10, Height: 10}, true},
		{"touching right edge", Rect{X: 30, Y: 10, Width: 5, Height: 5}, false},
		{"touching bottom edge", Rect{X: 10, Y: 30, Width: 5, Height: 5}, false},
		{"left of box", Rect{X: 0, Y: 10, Width: 5, Height: 5}, false},
		{"above box", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(box, tt.other))
			assert.Equal(t, tt.want, Overlaps(tt.other, box), "overlap must be symmetric")
		})
	}
}

func TestHeading(t *testing.T) {
	vx, vy := Heading(0, 0, 0, 10, 6)
	assert.InDelta(t, 0, vx, 1e-9)
	assert.InDelta(t, 6, vy, 1e-9)

	vx, vy = Heading(10, 10, 13, 14, 5)
	assert.InDelta(t, 3, vx, 1e-9)
	assert.InDelta(t, 4, vy, 1e-9)
	assert.InDelta(t, 5, math.Hypot(vx, vy), 1e-9)
}

func TestClampAndCenter(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 360))
	assert.Equal(t, 360.0, Clamp(400, 0, 360))
	assert.Equal(t, 12.5, Clamp(12.5, 0, 360))

	cx, cy := Rect{X: 180, Y: 550, Width: 40, Height: 40}.Center()
	assert.Equal(t, 200.0, cx)
	assert.Equal(t, 570.0, cy)
}
