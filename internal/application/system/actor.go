package system

import (
	"maps"

	"github.com/younwookim/exiled/internal/domain/entity"
)

//go:generate go tool mockgen -destination=./mocks/actor_mock.go -package=mocks . Actor

// Actor is anything the World steps once per tick
type Actor interface {
	// Name is the broadcast name of the actor's main body
	Name() string
	Rect() entity.Rect
	State() entity.ActionState

	// Observe hands the actor the snapshot published at the end of the
	// previous tick, without the actor's own broadcasts
	Observe(snap Snapshot)
	HandleInput(in InputState)
	UpdatePhysics()

	// Broadcasts lists every rect the actor publishes this tick
	Broadcasts() []Broadcast
	IsTerminal() bool
	// Despawned actors are removed from the World after the tick
	Despawned() bool
}

// Broadcast is a named rectangle announcement
type Broadcast struct {
	Name string
	Rect entity.Rect
}

// Snapshot maps broadcast names to rects
type Snapshot map[string]entity.Rect

// Without returns a copy of the snapshot minus the given names
func (s Snapshot) Without(names ...string) Snapshot {
	out := maps.Clone(s)
	if out == nil {
		out = Snapshot{}
	}
	for _, n := range names {
		delete(out, n)
	}
	return out
}

// Counterparts is an actor's own view of the other rects in the level
type Counterparts map[string]entity.Rect

// Filter returns the counterparts whose names have one of the prefixes
func (c Counterparts) Filter(prefixes ...string) Counterparts {
	out := make(Counterparts, len(c))
	for name, r := range c {
		if entity.HasPrefix(name, prefixes...) {
			out[name] = r
		}
	}
	return out
}

