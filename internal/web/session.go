package web

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/oyw0322/galaxy-defender/internal/game"
	"golang.org/x/sync/errgroup"
)

// Client message types.
const (
	MsgInput   = "input"
	MsgRestart = "restart"
)

// ClientMessage is what the browser sends: its current intent, or a
// restart request.
type ClientMessage struct {
	Type  string      `json:"type"`
	Input game.Intent `json:"input"`
}

// session pairs one connection with one game. The tick goroutine owns the
// game; the read goroutine only records what the browser asked for.
type session struct {
	conn *websocket.Conn
	game *game.Game
	tick time.Duration

	mu      sync.Mutex
	intent  game.Intent
	fired   bool // fire pressed since the last step
	restart bool
}

func newSession(conn *websocket.Conn, g *game.Game, tick time.Duration) *session {
	return &session{conn: conn, game: g, tick: tick}
}

// run blocks until the connection fails or ctx ends.
func (s *session) run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.readLoop(ctx)
	})
	eg.Go(func() error {
		return s.tickLoop(ctx)
	})
	return eg.Wait()
}

func (s *session) readLoop(ctx context.Context) error {
	for {
		var msg ClientMessage
		if err := wsjson.Read(ctx, s.conn, &msg); err != nil {
			return err
		}

		s.record(msg)
	}
}

// record stores what the browser asked for. A fire press is latched until
// the next step so a tap shorter than a tick still shoots.
func (s *session) record(msg ClientMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch msg.Type {
	case MsgInput:
		s.intent = msg.Input
		s.fired = s.fired || msg.Input.Fire
	case MsgRestart:
		s.restart = true
	}
}

func (s *session) tickLoop(ctx context.Context) error {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	last := time.Now()
	for {
		if err := wsjson.Write(ctx, s.conn, s.game.Snapshot()); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.step(now.Sub(last))
			last = now
		}
	}
}

func (s *session) step(dt time.Duration) {
	s.mu.Lock()
	in, restart := s.intent, s.restart
	in.Fire = in.Fire || s.fired
	s.fired, s.restart = false, false
	s.mu.Unlock()

	if restart && s.game.Over() {
		s.game.Restart()
	}
	s.game.Step(dt, in)
}
