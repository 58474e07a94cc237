package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/exiled/internal/domain/entity"
)

var projectileRegion = entity.Rect{W: 300, H: 300}

func newTestHook() *Projectile {
	h := entity.NewHook(entity.Vec{X: 100, Y: 100}, entity.Vec{X: 200, Y: 100}, entity.HookParams{
		Width:        12,
		Height:       12,
		Speed:        10,
		LaunchOffset: 3,
		Delay:        2,
		Acceleration: 1,
	})
	return NewHookProjectile(h, projectileRegion)
}

func TestHookProjectile(t *testing.T) {
	t.Run("waits for the launch delay", func(t *testing.T) {
		h := newTestHook()

		step(h, Snapshot{}, InputState{})
		assert.InDelta(t, 130.0, h.Rect().Center().X, 1e-9)

		step(h, Snapshot{}, InputState{})
		assert.InDelta(t, 140.0, h.Rect().Center().X, 1e-9)
		assert.Empty(t, h.Broadcasts())
	})

	t.Run("resolves before crossing the boundary", func(t *testing.T) {
		h := newTestHook()

		for range 30 {
			step(h, Snapshot{}, InputState{})
		}

		require.True(t, h.Entity().Resolved())
		assert.InDelta(t, 290.0, h.Entity().Finale.X, 1e-9)
		assert.InDelta(t, 100.0, h.Entity().Finale.Y, 1e-9)
		assert.Equal(t, []Broadcast{{Name: entity.HookName, Rect: h.Rect()}}, h.Broadcasts())
		assert.False(t, h.Despawned())
		assert.True(t, h.IsTerminal())
	})

	t.Run("stops on a platform", func(t *testing.T) {
		h := newTestHook()
		snap := Snapshot{"Platform1": {X: 200, Y: 50, W: 50, H: 100}}

		for range 30 {
			step(h, snap, InputState{})
		}

		require.True(t, h.Entity().Resolved())
		assert.InDelta(t, 200.0, h.Entity().Finale.X, 1e-9)
	})

	t.Run("flies through doors", func(t *testing.T) {
		h := newTestHook()
		snap := Snapshot{"Door1": {X: 200, Y: 50, W: 50, H: 100}}

		for range 30 {
			step(h, snap, InputState{})
		}

		assert.InDelta(t, 290.0, h.Entity().Finale.X, 1e-9)
	})
}

func TestFireballProjectile(t *testing.T) {
	f := NewFireballProjectile(
		entity.NewFireball("Fireball1-1", entity.Vec{X: 100, Y: 100}, entity.Vec{X: 5}, 16, 16),
		projectileRegion,
	)
	snap := Snapshot{entity.PlayerName: {X: 120, Y: 90, W: 24, H: 40}, "Platform1": {X: 0, Y: 0, W: 300, H: 300}}

	for range 3 {
		step(f, snap, InputState{})
		require.Len(t, f.Broadcasts(), 1)
	}
	assert.InDelta(t, 115.0, f.Rect().Center().X, 1e-9)

	step(f, snap, InputState{})

	assert.True(t, f.Entity().Resolved())
	assert.True(t, f.Despawned())
	assert.Empty(t, f.Broadcasts())
}
