// Package web serves the landing page and browser play sessions. Each
// websocket connection on /play gets its own game; the server streams a
// snapshot every tick and applies the latest intent the browser sent.
package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/oyw0322/galaxy-defender/internal/game"
	"github.com/oyw0322/galaxy-defender/internal/loop/config"
)

//go:embed index.html
var htmlPage string

// Options configures a Server.
type Options struct {
	Logger  *log.Logger
	SSHHost string // shown on the landing page
	// NewRandom seeds each session. Defaults to a time-seeded source.
	NewRandom func() game.Random
	Tick      time.Duration
	// InsecureSkipVerify disables the websocket origin check.
	InsecureSkipVerify bool
}

// Server hosts the landing page and the /play websocket endpoint.
type Server struct {
	log       *log.Logger
	page      string
	newRandom func() game.Random
	tick      time.Duration
	skipCheck bool
}

// NewServer creates a Server. Zero-valued options get defaults.
func NewServer(opts Options) *Server {
	s := &Server{
		log:       opts.Logger,
		page:      strings.ReplaceAll(htmlPage, "{{.SSHHost}}", opts.SSHHost),
		newRandom: opts.NewRandom,
		tick:      opts.Tick,
		skipCheck: opts.InsecureSkipVerify,
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	if s.newRandom == nil {
		s.newRandom = func() game.Random {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	if s.tick <= 0 {
		s.tick = config.ServerTickTime
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.servePage)
	mux.HandleFunc("GET /play", s.servePlay)
	return mux
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, s.page)
}

func (s *Server) servePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: s.skipCheck,
	})
	if err != nil {
		s.log.Error("failed to accept", "err", err)
		return
	}
	defer conn.CloseNow()

	id := uuid.New()
	sessLog := s.log.With("session", id.String(), "remote", r.RemoteAddr)
	sessLog.Info("play session started")

	g := game.New(game.Options{Logger: sessLog, Random: s.newRandom()})
	sess := newSession(conn, g, s.tick)

	err = sess.run(r.Context())
	switch {
	case isNormalClose(err):
		sessLog.Info("play session ended")
		_ = conn.Close(websocket.StatusNormalClosure, "")
	default:
		sessLog.Warn("play session failed", "err", err)
		_ = conn.Close(websocket.StatusInternalError, "session failed")
	}
}

// isNormalClose reports whether err is the browser or the server going away
// rather than a failure.
func isNormalClose(err error) bool {
	if err == nil {
		return true
	}
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}
