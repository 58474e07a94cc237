package system

import (
	"math"

	"github.com/younwookim/exiled/internal/domain/entity"
	"github.com/younwookim/exiled/internal/infrastructure/config"
)

// KinematicsConfig holds the constants of the integrator
type KinematicsConfig struct {
	Gravity          float64 // added to A.Y every tick
	Friction         float64 // subtracted from |v| on each axis every tick
	TerminalVelocity float64 // clamp bound for each velocity component
	TimeStep         float64
}

// KinematicsFrom extracts the integrator constants from the physics config
func KinematicsFrom(cfg *config.PhysicsConfig) KinematicsConfig {
	return KinematicsConfig{
		Gravity:          cfg.Physics.Gravity,
		Friction:         cfg.Physics.Friction,
		TerminalVelocity: cfg.Physics.TerminalVelocity,
		TimeStep:         cfg.Physics.TimeStep,
	}
}

// StepFlags alter a single Integrate call. They are never stored on a body,
// so each flag lives for exactly the call it is passed to.
type StepFlags struct {
	SkipGravity  bool
	SkipFriction bool
	// Displacement replaces the computed displacement when not nil
	Displacement *entity.Vec
}

// Integrate advances a body by one tick:
// gravity, friction, v = u + a*t clamped to terminal velocity,
// then s = u*t + a*t*t/2 unless the displacement is overridden.
func Integrate(b *entity.Body, cfg KinematicsConfig, flags StepFlags) {
	t := cfg.TimeStep
	if t == 0 {
		t = 1
	}

	if !flags.SkipGravity {
		b.A.Y += cfg.Gravity
	}

	if !flags.SkipFriction {
		b.V.X = applyFriction(b.V.X, cfg.Friction)
		b.V.Y = applyFriction(b.V.Y, cfg.Friction)
	}

	u := b.V
	b.V = entity.Vec{
		X: clampAbs(u.X+b.A.X*t, cfg.TerminalVelocity),
		Y: clampAbs(u.Y+b.A.Y*t, cfg.TerminalVelocity),
	}

	if flags.Displacement != nil {
		b.D = *flags.Displacement
		return
	}
	b.D = entity.Vec{
		X: u.X*t + 0.5*b.A.X*t*t,
		Y: u.Y*t + 0.5*b.A.Y*t*t,
	}
}

// applyFriction moves v toward zero by c, snapping to exactly zero once the
// next step would leave less than c
func applyFriction(v, c float64) float64 {
	if math.Abs(v)-c < c {
		return 0
	}
	if v > 0 {
		return v - c
	}
	return v + c
}

func clampAbs(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
