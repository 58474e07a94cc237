// Package playing provides the main gameplay scene.
package playing

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/exiled/internal/application/level"
	"github.com/younwookim/exiled/internal/application/scene"
	"github.com/younwookim/exiled/internal/application/state"
	"github.com/younwookim/exiled/internal/infrastructure/config"
)

// Options configures a Playing scene
type Options struct {
	// Input defaults to EbitenInput
	Input InputSource
	// RecordPath enables input recording when not empty
	RecordPath string
	// Reload delivers configs to swap in between ticks
	Reload <-chan *config.GameConfig
	Log    *slog.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	levels *level.Manager
	state  state.GameState
	input  InputSource
	reload <-chan *config.GameConfig
	log    *slog.Logger

	screenW int
	screenH int

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene over a manager that has entered its
// first level
func New(m *level.Manager, opts Options) *Playing {
	if opts.Input == nil {
		opts.Input = EbitenInput{}
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}

	display := m.Config().Physics.Display
	p := &Playing{
		levels:         m,
		state:          state.StatePlaying,
		input:          opts.Input,
		reload:         opts.Reload,
		log:            opts.Log,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		recordFilename: opts.RecordPath,
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(p.levelID())
		p.log.Info("recording enabled", "path", opts.RecordPath, "level", p.levelID())
	}

	return p
}

func (p *Playing) levelID() string {
	if lvl := p.levels.Current(); lvl != nil {
		return lvl.Config.ID
	}
	return ""
}

// State returns the current game state
func (p *Playing) State() state.GameState { return p.state }

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.applyReload()

	c := p.input.Poll()
	if c.Quit {
		return nil, ebiten.Termination
	}

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying(c)
	case state.StatePaused:
		if c.Pause {
			p.state = p.state.TogglePause()
		}
	case state.StateGameOver:
		if c.Restart {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

// applyReload swaps in the newest config waiting on the reload channel
func (p *Playing) applyReload() {
	if p.reload == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-p.reload:
			if !ok {
				p.reload = nil
				return
			}
			p.levels.Reload(cfg)
		default:
			return
		}
	}
}

func (p *Playing) updatePlaying(c Controls) {
	if c.Pause {
		p.state = p.state.TogglePause()
		return
	}

	// F5: Save recording manually
	if c.Save && p.recorder != nil {
		p.saveRecording()
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(c.Tick)
	}

	p.levels.Tick(c.Tick)

	if p.levels.Player().Despawned() {
		p.state = state.StateGameOver
		p.log.Info("game over", "level", p.levelID(), "ticks", p.levels.World().Ticks())
		// Auto-save recording on game over
		if p.recorder != nil {
			p.saveRecording()
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Error("failed to save recording", "path", filename, "error", err)
		return
	}
	p.log.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

func (p *Playing) restart() {
	if err := p.levels.Restart(); err != nil {
		p.log.Error("failed to restart", "error", err)
		return
	}
	p.state = state.StatePlaying

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.levelID())
		p.log.Info("recording restarted", "level", p.levelID())
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.Debug("playing", "level", p.levelID())
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
