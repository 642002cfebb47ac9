package main

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oyw0322/galaxy-defender/internal/config"
	"github.com/oyw0322/galaxy-defender/internal/game"
	"github.com/oyw0322/galaxy-defender/internal/web"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

func main() {
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	seed, err := config.GetEnvInt64("GAME_SEED", 0)
	if err != nil {
		logger.Fatal("invalid seed", "err", err)
	}

	opts := web.Options{
		Logger:  logger,
		SSHHost: sshHost,
	}
	if seed != 0 {
		opts.NewRandom = func() game.Random { return rand.New(rand.NewSource(seed)) }
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           web.NewServer(opts).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Info("starting web server", "addr", "http://"+srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
