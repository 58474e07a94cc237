package system

import (
	"math"
	"sort"

	"github.com/younwookim/exiled/internal/domain/entity"
)

// CollisionEvent records one overlap found during a tick.
// Events are rebuilt from scratch every tick.
type CollisionEvent struct {
	Name  string
	Sides entity.Side
	Rect  entity.Rect
}

// ClassifyCounterpart decides which side of e was hit by c.
// The centre offset is rotated by 45 degrees so each quadrant of the rotated
// frame maps to one side. Exact diagonal alignment has no side.
func ClassifyCounterpart(e, c entity.Rect) entity.Side {
	ec, cc := e.Center(), c.Center()
	dx := ec.X - cc.X
	dy := ec.Y - cc.Y

	rx := (dy + dx) / math.Sqrt2
	ry := (dy - dx) / math.Sqrt2

	switch {
	case rx > 0 && ry < 0:
		return entity.SideLeft
	case rx < 0 && ry > 0:
		return entity.SideRight
	case rx < 0 && ry < 0:
		return entity.SideBottom
	case rx > 0 && ry > 0:
		return entity.SideTop
	default:
		return entity.SideNone
	}
}

// PredictBoundary returns every region edge the predicted rect reaches or crosses
func PredictBoundary(predicted, region entity.Rect) entity.Side {
	var s entity.Side
	if predicted.Left() <= region.Left() {
		s |= entity.SideLeft
	}
	if predicted.Right() >= region.Right() {
		s |= entity.SideRight
	}
	if predicted.Bottom() >= region.Bottom() {
		s |= entity.SideBottom
	}
	if predicted.Top() <= region.Top() {
		s |= entity.SideTop
	}
	return s
}

// DetectCollisions returns an event for every counterpart overlapping rect,
// ordered by name
func DetectCollisions(rect entity.Rect, counterparts Counterparts) []CollisionEvent {
	var events []CollisionEvent
	for name, r := range counterparts {
		if !rect.Overlaps(r) {
			continue
		}
		events = append(events, CollisionEvent{
			Name:  name,
			Sides: ClassifyCounterpart(rect, r),
			Rect:  r,
		})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Name < events[j].Name })
	return events
}

// HasPrefixCollision returns the first event whose name has one of the prefixes
func HasPrefixCollision(events []CollisionEvent, prefixes ...string) (CollisionEvent, bool) {
	for _, ev := range events {
		if entity.HasPrefix(ev.Name, prefixes...) {
			return ev, true
		}
	}
	return CollisionEvent{}, false
}
