package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMapsKeys(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Input
	}{
		{"left letter", "a", Input{Left: true}},
		{"left arrow", "\x1b[D", Input{Left: true}},
		{"right arrow", "\x1b[C", Input{Right: true}},
		{"fire", " ", Input{Fire: true}},
		{"restart", "r", Input{Restart: true}},
		{"enter restarts", "\r", Input{Restart: true}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl c", "\x03", Input{Quit: true}},
		{"up arrow ignored", "\x1b[A", Input{}},
		{"combination", "a \x1b[C", Input{Left: true, Right: true, Fire: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Stream{}
			got := s.apply([]byte(tc.in), time.Now())
			got.Pressed = nil
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKeysAreHeldBriefly(t *testing.T) {
	s := &Stream{}
	now := time.Now()

	assert.True(t, s.apply([]byte("d"), now).Right)
	assert.True(t, s.apply(nil, now.Add(keyHoldDuration/2)).Right)
	assert.False(t, s.apply(nil, now.Add(keyHoldDuration)).Right)
}

func TestStreamQuitsWhenReaderEnds(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader(" ")))

	var sawFire bool
	require.Eventually(t, func() bool {
		in := ReadInput(s)
		sawFire = sawFire || in.Fire
		return in.Quit
	}, time.Second, time.Millisecond)
	assert.True(t, sawFire)
}
