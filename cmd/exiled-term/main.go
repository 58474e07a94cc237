// Command exiled-term plays the game in a terminal. The level region is
// scaled onto the terminal grid; arrows or WASD move, the mouse fires the
// hook and Enter uses a door.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/exiled/configs"
	"github.com/younwookim/exiled/internal/application/level"
	"github.com/younwookim/exiled/internal/infrastructure/config"
)

func main() {
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	levelID := flag.String("level", "hub", "Level to start in")
	logFile := flag.String("log", "", "Write logs to file (the terminal is taken by the game)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	log, closeLog, err := newLogger(*logFile, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(*configDir, *levelID, log); err != nil {
		log.Error("exiled-term failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

func newLogger(path string, verbose bool) (*slog.Logger, func(), error) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: logLevel})), func() { _ = f.Close() }, nil
}

func run(configDir, levelID string, log *slog.Logger) error {
	loader := config.NewFSLoader(configs.FS, "configs")
	if configDir != "" {
		loader = config.NewLoader(configDir)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	m := level.NewManager(cfg, log)
	if err := m.Enter(levelID); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	s := newSession(m, screen, log)
	s.run(time.Second / time.Duration(cfg.Physics.Display.Framerate))
	return nil
}
