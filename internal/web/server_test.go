package web

import (
	"context"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyw0322/galaxy-defender/internal/game"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := NewServer(Options{
		SSHHost:   "play.example.com",
		NewRandom: func() game.Random { return rand.New(rand.NewSource(1)) },
		Tick:      time.Millisecond,
	})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestLandingPage(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "ssh -t play.example.com")
	assert.NotContains(t, string(body), "{{.SSHHost}}")

	resp2, err := http.Get(ts.URL + "/missing")
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestPlaySessionStreamsSnapshots(t *testing.T) {
	ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/play"
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	var snap game.Snapshot
	require.NoError(t, wsjson.Read(ctx, conn, &snap))
	assert.Equal(t, 400.0, snap.Width)
	assert.Equal(t, 600.0, snap.Height)
	assert.Equal(t, 1, snap.Stage)
	assert.Equal(t, 100, snap.Player.HP)
	assert.Empty(t, snap.Bullets)

	require.NoError(t, wsjson.Write(ctx, conn, ClientMessage{
		Type:  MsgInput,
		Input: game.Intent{Fire: true, Left: true},
	}))

	// The intent applies on a later tick.
	var fired bool
	for range 200 {
		require.NoError(t, wsjson.Read(ctx, conn, &snap))
		if len(snap.Bullets) > 0 {
			fired = true
			break
		}
	}
	assert.True(t, fired, "holding fire shoots")
	assert.Less(t, snap.Player.X, 180.0, "holding left moves the player")

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
}

func TestIsNormalClose(t *testing.T) {
	assert.True(t, isNormalClose(nil))
	assert.True(t, isNormalClose(context.Canceled))
	assert.True(t, isNormalClose(io.EOF))
	assert.False(t, isNormalClose(assert.AnError))
}

func TestShortFireTapStillShoots(t *testing.T) {
	g := game.New(game.Options{Random: rand.New(rand.NewSource(1))})
	s := newSession(nil, g, time.Millisecond)

	s.record(ClientMessage{Type: MsgInput, Input: game.Intent{Fire: true}})
	s.record(ClientMessage{Type: MsgInput, Input: game.Intent{}})
	s.step(16 * time.Millisecond)
	assert.Len(t, g.Snapshot().Bullets, 1, "press and release within one tick")

	s.step(16 * time.Millisecond)
	s.record(ClientMessage{Type: MsgInput, Input: game.Intent{Fire: true}})
	s.step(16 * time.Millisecond)
	assert.Len(t, g.Snapshot().Bullets, 2, "the latch clears after one step")
}

func TestRestartOnlyWhenOver(t *testing.T) {
	g := game.New(game.Options{Random: rand.New(rand.NewSource(1))})
	s := newSession(nil, g, time.Millisecond)

	s.record(ClientMessage{Type: MsgInput, Input: game.Intent{Left: true}})
	s.step(16 * time.Millisecond)
	s.record(ClientMessage{Type: MsgRestart})
	s.step(16 * time.Millisecond)
	assert.Less(t, g.Snapshot().Player.X, 175.0, "restart is ignored mid-game")

	g.Damage(1000)
	s.record(ClientMessage{Type: MsgRestart})
	s.step(16 * time.Millisecond)
	assert.False(t, g.Over())
	assert.Equal(t, 100, g.Snapshot().Player.HP)
}
