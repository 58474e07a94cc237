package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/exiled/internal/domain/entity"
)

func hold(keys ...Key) InputState {
	return InputState{Held: NewKeySet(keys...)}
}

func click(b MouseButton, x, y float64) InputState {
	return InputState{Clicks: []MouseClick{{Button: b, Pos: entity.Vec{X: x, Y: y}}}}
}

func TestPlayer_Falling(t *testing.T) {
	t.Run("settles on the region floor", func(t *testing.T) {
		p := settledPlayer()

		assert.True(t, p.Grounded())
		assert.Equal(t, entity.Standing, p.State())
		assert.Equal(t, testRegion.Bottom(), p.Rect().Bottom())
		assert.True(t, p.Body().V.IsZero())
	})

	t.Run("lands on a platform", func(t *testing.T) {
		p := NewPlayer(PlayerTuningFrom(createTestPhysicsConfig()), testRegion, entity.Vec{X: 100, Y: 100})
		snap := Snapshot{"Platform1": {X: 50, Y: 200, W: 100, H: 20}}

		for range 200 {
			step(p, snap, InputState{})
		}

		assert.True(t, p.Grounded())
		assert.Equal(t, entity.Standing, p.State())
		assert.InDelta(t, 201.0, p.Rect().Bottom(), 1e-9)
	})

	t.Run("jumps off a platform", func(t *testing.T) {
		tun := PlayerTuningFrom(createTestPhysicsConfig())
		p := NewPlayer(tun, testRegion, entity.Vec{X: 100, Y: 100})
		snap := Snapshot{"Platform1": {X: 50, Y: 200, W: 100, H: 20}}
		for range 200 {
			step(p, snap, InputState{})
		}

		for range tun.JumpCharge + 1 {
			step(p, snap, hold(KeyUp))
		}
		for range 3 {
			step(p, snap, InputState{})
		}

		assert.Equal(t, entity.InAir, p.State())
		assert.Less(t, p.Rect().Bottom(), 200.0)
	})
}

func TestPlayer_Walking(t *testing.T) {
	p := settledPlayer()
	x := p.Rect().X

	step(p, Snapshot{}, hold(KeyRight))
	assert.Equal(t, entity.MovingRight, p.State())
	assert.InDelta(t, 0.9, p.Body().V.X, 1e-9)
	assert.Greater(t, p.Rect().X, x)

	for range 50 {
		step(p, Snapshot{}, hold(KeyRight))
		assert.LessOrEqual(t, p.Body().V.X, p.tuning.MaxWalkingSpeed+p.tuning.WalkingSpeed)
	}

	for range 60 {
		step(p, Snapshot{}, InputState{})
	}
	assert.Equal(t, 0.0, p.Body().V.X)
	assert.Equal(t, entity.Standing, p.State())
}

func TestPlayer_Jump(t *testing.T) {
	t.Run("charges before leaving the ground", func(t *testing.T) {
		p := settledPlayer()

		for range p.tuning.JumpCharge {
			step(p, Snapshot{}, hold(KeyUp))
			require.Equal(t, entity.Jumping, p.State())
		}
		step(p, Snapshot{}, hold(KeyUp))

		assert.Equal(t, entity.InAir, p.State())
		assert.Equal(t, 1, p.JumpsUsed())
		assert.Less(t, p.Body().V.Y, 0.0)
	})

	t.Run("air jumps are capped", func(t *testing.T) {
		region := entity.Rect{W: 400, H: 3000}
		p := NewPlayer(PlayerTuningFrom(createTestPhysicsConfig()), region, entity.Vec{X: 100, Y: 1500})

		for range 100 {
			step(p, Snapshot{}, hold(KeyUp))
		}

		// Falling without a take-off leaves one extra air jump
		assert.Equal(t, entity.InAir, p.State())
		assert.Equal(t, p.tuning.MaxAirJumps+1, p.JumpsUsed())
	})

	t.Run("take-off leaves every air jump", func(t *testing.T) {
		region := entity.Rect{W: 400, H: 3000}
		p := NewPlayer(PlayerTuningFrom(createTestPhysicsConfig()), region, entity.Vec{X: 100, Y: 1500})
		require.True(t, p.sm.Transition(entity.InAir))
		p.jumpsUsed = 1

		for range 100 {
			step(p, Snapshot{}, hold(KeyUp))
		}

		assert.Equal(t, entity.InAir, p.State())
		assert.Equal(t, p.tuning.MaxAirJumps, p.JumpsUsed()-1)
	})
}

func TestPlayer_Hook(t *testing.T) {
	p := settledPlayer()
	start := p.Rect()
	c := start.Center()

	step(p, Snapshot{}, click(ButtonLeft, c.X+200, c.Y))
	assert.Equal(t, entity.ShootRight, p.State())
	require.Len(t, p.Hooks(), 1)

	for range 100 {
		step(p, Snapshot{}, InputState{})
	}

	h := p.Hooks()[0].Entity()
	require.True(t, h.Resolved())
	finale := h.Finale
	assert.Equal(t, h.Body.Rect.Center(), finale)
	assert.InDelta(t, c.Y, finale.Y, 1e-9)
	assert.Greater(t, finale.X, c.X+200)
	assert.Equal(t, start, p.Rect())
	assert.Equal(t, entity.ShootRight, p.State())

	names := []string{}
	for _, b := range p.Broadcasts() {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{entity.PlayerName, entity.HookName}, names)

	for range 10 {
		step(p, Snapshot{}, InputState{})
	}
	assert.Equal(t, finale, h.Finale)
	assert.False(t, h.Resolve())

	step(p, Snapshot{}, click(ButtonRight, 0, 0))
	assert.Equal(t, entity.Standing, p.State())
	assert.Empty(t, p.Hooks())
	assert.Len(t, p.Broadcasts(), 1)
}

func TestPlayer_Climb(t *testing.T) {
	p := settledPlayer()
	start := p.Rect()
	c := start.Center()

	step(p, Snapshot{}, click(ButtonLeft, c.X, 0))
	assert.Equal(t, entity.ShootTop, p.State())

	for range p.tuning.ClimbInitialDelay - 2 {
		step(p, Snapshot{}, hold(KeyUp))
		require.Equal(t, start.Y, p.Rect().Y)
	}
	step(p, Snapshot{}, hold(KeyUp))

	assert.InDelta(t, start.Y-p.tuning.Hook.Speed*p.tuning.ClimbStride, p.Rect().Y, 1e-9)
	assert.InDelta(t, start.X, p.Rect().X, 1e-9)
	assert.Equal(t, entity.ShootTop, p.State())
}

func TestPlayer_Death(t *testing.T) {
	t.Run("enemy contact kills once", func(t *testing.T) {
		p := settledPlayer()
		enemy := entity.RectFromCenter(p.Rect().Center().Add(entity.Vec{X: 10}), 38, 38)
		snap := Snapshot{"Enemy1": enemy}

		step(p, snap, InputState{})
		require.True(t, p.Dead())
		assert.Equal(t, entity.Death, p.State())
		assert.True(t, p.IsTerminal())
		assert.Empty(t, p.Broadcasts())

		dead := p.Rect()
		for range p.tuning.DeathDelay - 1 {
			step(p, snap, click(ButtonLeft, 0, 0))
			require.Equal(t, dead, p.Rect())
			require.False(t, p.Despawned())
		}
		assert.Empty(t, p.Hooks())
		assert.True(t, p.Body().V.IsZero())

		step(p, snap, InputState{})
		assert.Greater(t, p.Rect().Center().Y, dead.Center().Y)
		assert.True(t, p.Despawned())
		assert.Equal(t, entity.Death, p.State())
	})

	t.Run("overlap kills while moving away", func(t *testing.T) {
		p := NewPlayer(PlayerTuningFrom(createTestPhysicsConfig()), testRegion, entity.Vec{X: 100, Y: 100})
		p.body.V.X = -3
		enemy := entity.Rect{X: p.Rect().Right() - 1, Y: 81, W: 38, H: 38}
		require.True(t, p.Rect().Overlaps(enemy))
		require.False(t, p.body.Rect.Translate(entity.Vec{X: -2.9}).Overlaps(enemy))

		step(p, Snapshot{"Enemy1": enemy}, InputState{})

		assert.True(t, p.Dead())
		assert.Equal(t, entity.Death, p.State())
		require.Len(t, p.Events(), 1)
		assert.Equal(t, "Enemy1", p.Events()[0].Name)
	})

	t.Run("contact counts only after the move", func(t *testing.T) {
		p := NewPlayer(PlayerTuningFrom(createTestPhysicsConfig()), testRegion, entity.Vec{X: 100, Y: 100})
		p.body.V.X = 3
		enemy := entity.Rect{X: p.Rect().Right() + 1, Y: 81, W: 38, H: 38}
		snap := Snapshot{"Enemy1": enemy}

		step(p, snap, InputState{})
		require.True(t, p.Rect().Overlaps(enemy))
		assert.False(t, p.Dead())

		step(p, snap, InputState{})
		assert.True(t, p.Dead())
	})

	t.Run("fireball contact kills", func(t *testing.T) {
		p := settledPlayer()
		snap := Snapshot{"Fireball2-1": entity.RectFromCenter(p.Rect().Center(), 16, 16)}

		step(p, snap, InputState{})

		assert.True(t, p.Dead())
	})

	t.Run("platforms and doors are harmless", func(t *testing.T) {
		p := settledPlayer()
		snap := Snapshot{"Door1": p.Rect(), "Platform1": {X: 300, Y: 0, W: 10, H: 10}}

		step(p, snap, InputState{})

		assert.False(t, p.Dead())
	})
}

func TestPlayer_NearDoor(t *testing.T) {
	p := settledPlayer()
	before := p.Rect()

	step(p, Snapshot{"Door2": before}, InputState{})

	n, ok := p.NearDoor()
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, before, p.Rect())

	step(p, Snapshot{}, InputState{})
	_, ok = p.NearDoor()
	assert.False(t, ok)
}

func TestPlayer_Place(t *testing.T) {
	p := settledPlayer()
	step(p, Snapshot{}, click(ButtonLeft, 300, 0))
	require.NotEmpty(t, p.Hooks())

	region := entity.Rect{X: 10, Y: 10, W: 200, H: 200}
	p.Place(region, entity.Vec{X: 50, Y: 50})

	assert.Equal(t, region, p.Region())
	assert.Equal(t, entity.Vec{X: 50, Y: 50}, p.Rect().Center())
	assert.Empty(t, p.Hooks())
	assert.Equal(t, entity.Standing, p.State())
}
