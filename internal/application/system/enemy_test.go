package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/exiled/internal/domain/entity"
)

var enemyRegion = entity.Rect{W: 1000, H: 600}

func newTestEnemy() *Enemy {
	return NewEnemy(1, EnemyTuningFrom(createTestPhysicsConfig()), enemyRegion, entity.Vec{X: 300, Y: 150})
}

func playerAt(x, y float64) Snapshot {
	return Snapshot{entity.PlayerName: entity.RectFromCenter(entity.Vec{X: x, Y: y}, 24, 40)}
}

func TestEnemy_Aggro(t *testing.T) {
	t.Run("fires when the player is in range", func(t *testing.T) {
		en := newTestEnemy()
		snap := playerAt(400, 150)

		for range en.tuning.FireInterval - 1 {
			step(en, snap, InputState{})
		}
		assert.True(t, en.TargetInRange())
		assert.Empty(t, en.Fireballs())

		step(en, snap, InputState{})
		require.Len(t, en.Fireballs(), 1)

		f := en.Fireballs()[0].Entity()
		assert.Equal(t, "Fireball1-1", f.Name)
		assert.InDelta(t, 1.0, f.InitialV.X, 1e-9)
		assert.InDelta(t, 0.0, f.InitialV.Y, 1e-9)
	})

	t.Run("ignores a player out of range", func(t *testing.T) {
		en := newTestEnemy()

		for range 200 {
			step(en, playerAt(1000, 150), InputState{})
		}

		assert.False(t, en.TargetInRange())
		assert.Empty(t, en.Fireballs())
	})

	t.Run("range is re-evaluated every tick", func(t *testing.T) {
		en := newTestEnemy()

		step(en, playerAt(400, 150), InputState{})
		assert.True(t, en.TargetInRange())

		step(en, Snapshot{}, InputState{})
		assert.False(t, en.TargetInRange())
	})

	t.Run("keeps only the most recent fireballs", func(t *testing.T) {
		en := newTestEnemy()
		snap := playerAt(400, 150)

		for range en.tuning.FireInterval * 7 {
			step(en, snap, InputState{})
		}

		fbs := en.Fireballs()
		require.Len(t, fbs, en.tuning.MaxFireballs)
		assert.Equal(t, "Fireball1-3", fbs[0].Name())
		assert.Equal(t, "Fireball1-7", fbs[len(fbs)-1].Name())
	})
}

func TestEnemy_Fireball(t *testing.T) {
	en := newTestEnemy()
	snap := playerAt(400, 150)
	for range en.tuning.FireInterval {
		step(en, snap, InputState{})
	}
	require.Len(t, en.Fireballs(), 1)
	f := en.Fireballs()[0]

	names := func() []string {
		var out []string
		for _, b := range en.Broadcasts() {
			out = append(out, b.Name)
		}
		return out
	}
	assert.Equal(t, []string{"Enemy1", "Fireball1-1"}, names())

	for range 85 {
		step(en, snap, InputState{})
	}

	assert.True(t, f.Entity().Resolved())
	assert.True(t, f.Despawned())
	assert.Equal(t, []string{"Enemy1"}, names())
}

func TestEnemy_HookKills(t *testing.T) {
	en := newTestEnemy()
	rect := en.Rect()

	for range 10 {
		step(en, Snapshot{}, InputState{})
	}
	assert.Equal(t, rect, en.Rect())

	step(en, Snapshot{entity.HookName: rect}, InputState{})
	assert.Equal(t, entity.Death, en.State())
	assert.True(t, en.IsTerminal())
	assert.Empty(t, en.Broadcasts())
	assert.False(t, en.Despawned())

	step(en, Snapshot{}, InputState{})
	assert.True(t, en.Despawned())
}
