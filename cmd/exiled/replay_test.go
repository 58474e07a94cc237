package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/exiled/internal/application/level"
	"github.com/younwookim/exiled/internal/application/replay"
	"github.com/younwookim/exiled/internal/application/system"
	"github.com/younwookim/exiled/internal/domain/entity"
	"github.com/younwookim/exiled/internal/infrastructure/config"
)

func loadTestConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := newLoader("").LoadAll()
	require.NoError(t, err)
	return cfg
}

// walkingReplay idles for settle frames, then holds Right for walk frames
func walkingReplay(settle, walk int) *replay.ReplayData {
	data := replay.CreateTestReplayData(settle+walk, "hub")
	right := system.InputState{Held: system.NewKeySet(system.KeyRight)}
	for i := settle; i < settle+walk; i++ {
		data.Frames[i] = replay.FrameFromInput(i, right)
	}
	return &data
}

func TestRunReplay_IdlePlayerSettles(t *testing.T) {
	cfg := loadTestConfig(t)
	data := replay.CreateTestReplayData(300, "hub")

	res, err := RunReplay(cfg, &data, nil)
	require.NoError(t, err)

	assert.Equal(t, 300, res.Frames)
	assert.Equal(t, uint64(300), res.Ticks)
	assert.Equal(t, "hub", res.Level)
	assert.Equal(t, entity.Standing, res.State)
	assert.False(t, res.Dead)
	assert.True(t, res.Velocity.IsZero())
	require.Len(t, res.Trajectory, 300)

	region := cfg.Levels["hub"].Region
	assert.Equal(t, region.Y+region.H-cfg.Physics.Player.Height/2, res.Position.Y)

	// Falls straight down, never back up
	for i := 1; i < len(res.Trajectory); i++ {
		assert.Equal(t, res.Trajectory[0].X, res.Trajectory[i].X)
		assert.GreaterOrEqual(t, res.Trajectory[i].Y, res.Trajectory[i-1].Y)
	}
}

func TestRunReplay_Walking(t *testing.T) {
	cfg := loadTestConfig(t)

	res, err := RunReplay(cfg, walkingReplay(100, 30), nil)
	require.NoError(t, err)

	assert.Greater(t, res.Position.X, res.Trajectory[99].X)
	assert.Greater(t, res.Velocity.X, 0.0)
	assert.Equal(t, entity.MovingRight, res.State)
}

func TestRunReplay_Deterministic(t *testing.T) {
	cfg := loadTestConfig(t)
	data := walkingReplay(80, 60)

	first, err := RunReplay(cfg, data, nil)
	require.NoError(t, err)
	second, err := RunReplay(cfg, data, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunReplay_MatchesLiveSession(t *testing.T) {
	cfg := loadTestConfig(t)
	data := walkingReplay(50, 40)

	m := level.NewManager(cfg, nil)
	require.NoError(t, m.Enter("hub"))
	for _, f := range data.Frames {
		m.Tick(f.Input())
	}

	// Round-trip through the file format first
	var buf bytes.Buffer
	require.NoError(t, replay.Encode(&buf, *data))
	decoded, err := replay.Decode(&buf)
	require.NoError(t, err)

	res, err := RunReplay(cfg, decoded, nil)
	require.NoError(t, err)
	assert.Equal(t, m.Player().Rect().Center(), res.Position)
	assert.Equal(t, m.Player().Body().V, res.Velocity)
}

func TestRunReplay_UnknownLevel(t *testing.T) {
	cfg := loadTestConfig(t)
	data := replay.CreateTestReplayData(10, "nowhere")

	_, err := RunReplay(cfg, &data, nil)
	assert.ErrorIs(t, err, level.ErrUnknownLevel)
}

func TestNewLoader_Embedded(t *testing.T) {
	l := newLoader("")
	assert.Equal(t, "configs", l.BasePath())

	ids, err := l.LevelIDs()
	require.NoError(t, err)
	assert.Contains(t, ids, "hub")
}
