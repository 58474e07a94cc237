package system

import (
	"github.com/younwookim/exiled/internal/domain/entity"
	"github.com/younwookim/exiled/internal/infrastructure/config"
)

// CollisionConfig holds the normal-reaction constants
type CollisionConfig struct {
	// Gap is the interpenetration depth below which a contact stops the body
	// instead of bouncing it
	Gap float64
	// RestingSink is the downward displacement kept after landing on a
	// counterpart so the body still overlaps it on the next tick
	RestingSink float64
}

// CollisionFrom extracts the resolver constants from the physics config
func CollisionFrom(cfg *config.PhysicsConfig) CollisionConfig {
	return CollisionConfig{
		Gap:         cfg.Collision.Gap,
		RestingSink: cfg.Collision.RestingSink,
	}
}

// react returns the perpendicular velocity after a contact of the given depth
func react(v, depth, gap float64) float64 {
	if depth < gap {
		return 0
	}
	return entity.FloorDiv3(-v)
}

// ResolveBoundary applies the region's normal reaction for the predicted sides.
// The body is snapped flush with each hit edge and its displacement on that
// axis is cancelled.
func ResolveBoundary(b *entity.Body, sides entity.Side, region entity.Rect, cfg CollisionConfig) {
	p := b.Predicted()

	if sides.Has(entity.SideTop) {
		b.V.Y = react(b.V.Y, region.Top()-p.Top(), cfg.Gap)
		b.Rect.SetTop(region.Top())
		b.D.Y = 0
	}
	if sides.Has(entity.SideBottom) {
		b.V.Y = react(b.V.Y, p.Bottom()-region.Bottom(), cfg.Gap)
		b.Rect.SetBottom(region.Bottom())
		b.D.Y = 0
	}
	if sides.Has(entity.SideRight) {
		b.V.X = react(b.V.X, p.Right()-region.Right(), cfg.Gap)
		b.Rect.SetRight(region.Right())
		b.D.X = 0
	}
	if sides.Has(entity.SideLeft) {
		b.V.X = react(b.V.X, region.Left()-p.Left(), cfg.Gap)
		b.Rect.SetLeft(region.Left())
		b.D.X = 0
	}
}

// ResolveCounterparts applies the normal reaction of every solid counterpart
// in events and returns the sides that were resolved. Doors are skipped.
// A side only reacts when the body is moving into it, so a body leaving a
// surface is not pulled back onto it.
func ResolveCounterparts(b *entity.Body, events []CollisionEvent, cfg CollisionConfig) entity.Side {
	var applied entity.Side

	for _, ev := range events {
		if entity.IsDoor(ev.Name) {
			continue
		}
		p := b.Predicted()
		c := ev.Rect

		switch {
		case ev.Sides.Has(entity.SideTop) && b.V.Y <= 0:
			b.V.Y = react(b.V.Y, c.Bottom()-p.Top(), cfg.Gap)
			b.Rect.SetTop(c.Bottom())
			b.D.Y = 0
			applied |= entity.SideTop

		case ev.Sides.Has(entity.SideBottom) && b.V.Y >= 0:
			b.V.Y = react(b.V.Y, p.Bottom()-c.Top(), cfg.Gap)
			b.Rect.SetBottom(c.Top())
			b.D.Y = cfg.RestingSink
			applied |= entity.SideBottom

		case ev.Sides.Has(entity.SideRight) && b.V.X >= 0:
			b.V.X = react(b.V.X, p.Right()-c.Left(), cfg.Gap)
			b.Rect.SetRight(c.Left())
			b.D.X = 0
			applied |= entity.SideRight

		case ev.Sides.Has(entity.SideLeft) && b.V.X <= 0:
			b.V.X = react(b.V.X, c.Right()-p.Left(), cfg.Gap)
			b.Rect.SetLeft(c.Right())
			b.D.X = 0
			applied |= entity.SideLeft
		}
	}

	return applied
}
