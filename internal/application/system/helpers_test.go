package system

import (
	"github.com/younwookim/exiled/internal/domain/entity"
	"github.com/younwookim/exiled/internal/infrastructure/config"
)

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Display: config.DisplayConfig{Framerate: 30},
		Physics: config.PhysicsSettings{
			Gravity:          1.0 / 3,
			Friction:         0.1,
			TerminalVelocity: 10,
			TimeStep:         1,
		},
		Collision: config.CollisionConfig{Gap: 5, RestingSink: 1},
		Player: config.PlayerConfig{
			Width:           24,
			Height:          40,
			WalkingSpeed:    1,
			MaxWalkingSpeed: 3,
		},
		Jump: config.JumpConfig{
			Velocity:    2,
			MaxAirJumps: 3,
			Cooldown:    0.5,
			ChargeTime:  0.8,
		},
		Hook: config.HookConfig{
			Width:        12,
			Height:       12,
			Speed:        10,
			LaunchOffset: 3,
			LaunchDelay:  1,
			Acceleration: 1.05,
			MaxHooks:     1,
			Climb: config.ClimbConfig{
				InitialDelay: 2,
				Interval:     1,
				Stride:       10,
			},
		},
		Death: config.DeathConfig{
			Delay:        2.2,
			StepInterval: 0.2,
			SinkFactor:   1.1,
		},
		Enemy: config.EnemyConfig{
			Width:       38,
			Height:      38,
			AggroMargin: 300,
			Fireball: config.FireballConfig{
				Width:        16,
				Height:       16,
				Interval:     3,
				SpeedDivisor: 100,
				MaxActive:    5,
			},
		},
	}
}

var testRegion = entity.Rect{X: 0, Y: 0, W: 400, H: 300}

// step runs one tick of an actor against a fixed snapshot
func step(a Actor, snap Snapshot, in InputState) {
	a.Observe(snap)
	a.HandleInput(in)
	a.UpdatePhysics()
}

// settledPlayer returns a player resting on the floor of testRegion
func settledPlayer() *Player {
	p := NewPlayer(PlayerTuningFrom(createTestPhysicsConfig()), testRegion, entity.Vec{X: 100, Y: 200})
	for range 300 {
		step(p, Snapshot{}, InputState{})
	}
	return p
}
