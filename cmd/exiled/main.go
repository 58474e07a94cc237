// Command exiled runs the game in an ebiten window, or replays a recorded
// session headlessly with -replay.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/exiled/configs"
	"github.com/younwookim/exiled/internal/application/game"
	"github.com/younwookim/exiled/internal/application/level"
	"github.com/younwookim/exiled/internal/application/replay"
	"github.com/younwookim/exiled/internal/application/scene/playing"
	"github.com/younwookim/exiled/internal/infrastructure/config"
)

func main() {
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	levelID := flag.String("level", "hub", "Level to start in")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recorded file headlessly and exit")
	watchFlag := flag.Bool("watch", false, "Reload configs when files in -config change")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	loader := newLoader(*configDir)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Error("failed to load config", "path", loader.BasePath(), "err", err)
		os.Exit(1)
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Error("failed to load replay", "path", *replayFlag, "err", err)
			os.Exit(1)
		}
		res, err := RunReplay(cfg, data, log)
		if err != nil {
			log.Error("replay failed", "path", *replayFlag, "err", err)
			os.Exit(1)
		}
		res.Log(log)
		return
	}

	m := level.NewManager(cfg, log)
	if err := m.Enter(*levelID); err != nil {
		log.Error("failed to enter level", "level", *levelID, "err", err)
		os.Exit(1)
	}

	var reload chan *config.GameConfig
	if *watchFlag {
		if *configDir == "" {
			log.Warn("-watch needs -config, embedded configs cannot change")
		} else {
			w, err := config.NewWatcher(*configDir, filepath.Join(*configDir, "levels"))
			if err != nil {
				log.Error("failed to watch config", "path", *configDir, "err", err)
				os.Exit(1)
			}
			defer func() { _ = w.Close() }()
			reload = make(chan *config.GameConfig, 1)
			go watchConfig(w, loader, reload, log)
		}
	}

	scene := playing.New(m, playing.Options{
		RecordPath: *recordFlag,
		Reload:     reload,
		Log:        log,
	})

	display := cfg.Physics.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate, log)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Exiled")

	if err := ebiten.RunGame(g); err != nil {
		log.Error("game exited", "err", err)
		os.Exit(1)
	}
}

// newLoader reads from dir, or from the embedded configs when dir is empty
func newLoader(dir string) *config.Loader {
	if dir == "" {
		return config.NewFSLoader(configs.FS, "configs")
	}
	return config.NewLoader(dir)
}

// watchConfig reloads every config on change and hands the result to the
// game loop. A config that fails to load is logged and skipped.
func watchConfig(w *config.Watcher, loader *config.Loader, out chan *config.GameConfig, log *slog.Logger) {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			cfg, err := loader.LoadAll()
			if err != nil {
				log.Warn("config reload failed", "changed", path, "err", err)
				continue
			}
			// Keep only the newest config if the game has not drained the last one.
			select {
			case <-out:
			default:
			}
			out <- cfg
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Warn("config watcher error", "err", err)
		}
	}
}
