package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded config has values the game cannot run with
var ErrInvalidConfig = errors.New("invalid config")

func invalid(field string, format string, args ...any) error {
	return fmt.Errorf("%s %s: %w", field, fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// Validate checks the physics tuning
func (c *PhysicsConfig) Validate() error {
	switch {
	case c.Display.Framerate <= 0:
		return invalid("display.framerate", "must be positive, got %d", c.Display.Framerate)
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return invalid("display.screen", "must be positive, got %dx%d",
			c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Physics.TimeStep <= 0:
		return invalid("physics.timeStep", "must be positive, got %v", c.Physics.TimeStep)
	case c.Physics.TerminalVelocity <= 0:
		return invalid("physics.terminalVelocity", "must be positive, got %v", c.Physics.TerminalVelocity)
	case c.Physics.Friction < 0:
		return invalid("physics.friction", "must not be negative, got %v", c.Physics.Friction)
	case c.Collision.Gap < 0:
		return invalid("collision.gap", "must not be negative, got %v", c.Collision.Gap)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return invalid("player.size", "must be positive")
	case c.Jump.MaxAirJumps < 0:
		return invalid("jump.maxAirJumps", "must not be negative, got %d", c.Jump.MaxAirJumps)
	case c.Hook.MaxHooks <= 0:
		return invalid("hook.maxHooks", "must be positive, got %d", c.Hook.MaxHooks)
	case c.Hook.Speed <= 0:
		return invalid("hook.speed", "must be positive, got %v", c.Hook.Speed)
	case c.Death.StepInterval <= 0:
		return invalid("death.stepInterval", "must be positive, got %v", c.Death.StepInterval)
	case c.Enemy.Fireball.SpeedDivisor == 0:
		return invalid("enemy.fireball.speedDivisor", "must not be zero")
	case c.Enemy.Fireball.MaxActive <= 0:
		return invalid("enemy.fireball.maxActive", "must be positive, got %d", c.Enemy.Fireball.MaxActive)
	}
	return nil
}

// Validate checks a level layout
func (c *LevelConfig) Validate() error {
	if c.Region.W <= 0 || c.Region.H <= 0 {
		return invalid("region", "must have a positive size")
	}
	seen := make(map[int]bool, len(c.Doors))
	for _, d := range c.Doors {
		if d.Number <= 0 {
			return invalid("doors", "number must be positive, got %d", d.Number)
		}
		if seen[d.Number] {
			return invalid("doors", "duplicate number %d", d.Number)
		}
		seen[d.Number] = true
		if !d.Disabled && d.Target == "" {
			return invalid("doors", "door %d has no target", d.Number)
		}
	}
	if g := c.PlatformGrid; g != nil {
		if g.TileSize <= 0 || g.Columns <= 0 || g.Rows <= 0 {
			return invalid("platformGrid", "tileSize, columns and rows must be positive")
		}
	}
	return nil
}
