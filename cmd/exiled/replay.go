package main

import (
	"fmt"
	"log/slog"

	"github.com/younwookim/exiled/internal/application/level"
	"github.com/younwookim/exiled/internal/application/replay"
	"github.com/younwookim/exiled/internal/domain/entity"
	"github.com/younwookim/exiled/internal/infrastructure/config"
)

// ReplayResult is the state of a headless replay after its last frame
type ReplayResult struct {
	Frames    int
	Ticks     uint64
	Level     string
	Position  entity.Vec
	Velocity  entity.Vec
	State     entity.ActionState
	Dead      bool
	Despawned bool
	// Trajectory holds the player's centre after every frame
	Trajectory []entity.Vec
}

// Log writes the result as one info record
func (r ReplayResult) Log(log *slog.Logger) {
	log.Info("replay finished",
		"frames", r.Frames,
		"level", r.Level,
		"x", r.Position.X,
		"y", r.Position.Y,
		"state", r.State.String(),
		"dead", r.Dead,
	)
}

// RunReplay feeds every recorded frame to a fresh manager, starting in the
// recorded level. Playback stops early once the player despawns, which is
// where a recording ends on game over.
func RunReplay(cfg *config.GameConfig, data *replay.ReplayData, log *slog.Logger) (ReplayResult, error) {
	replayer := replay.NewReplayer(*data)

	m := level.NewManager(cfg, log)
	if err := m.Enter(replayer.Level()); err != nil {
		return ReplayResult{}, fmt.Errorf("replay start: %w", err)
	}

	result := ReplayResult{
		Trajectory: make([]entity.Vec, 0, replayer.TotalFrames()),
	}
	for {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		m.Tick(in)

		p := m.Player()
		result.Trajectory = append(result.Trajectory, p.Rect().Center())
		if p.Despawned() {
			break
		}
	}

	p := m.Player()
	body := p.Body()
	result.Frames = replayer.CurrentFrame()
	result.Ticks = m.World().Ticks()
	result.Level = m.Current().Config.ID
	result.Position = body.Rect.Center()
	result.Velocity = body.V
	result.State = p.State()
	result.Dead = p.Dead()
	result.Despawned = p.Despawned()
	return result, nil
}
