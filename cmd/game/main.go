package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/oyw0322/galaxy-defender/internal/config"
	"github.com/oyw0322/galaxy-defender/internal/loop"
	"golang.org/x/term"
)

func main() {
	seed, err := config.GetEnvInt64("GAME_SEED", 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid seed: %v\n", err)
		os.Exit(1)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// stdout is the playfield, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("GAME_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game")
	logger.Info("starting", "seed", seed)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(reader, os.Stdout, loop.Options{
		Logger: logger,
		Random: rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
