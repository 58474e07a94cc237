package system

import (
	"log/slog"
	"slices"
)

// World steps every actor once per tick. Actors see the snapshot published
// at the end of the previous tick, so every reaction to another actor lags
// by exactly one tick regardless of update order.
type World struct {
	log *slog.Logger

	statics []Broadcast
	actors  []Actor
	owned   map[Actor][]string
	dead    map[Actor]bool

	published Snapshot
	tick      uint64
}

// NewWorld creates an empty world. A nil logger discards output.
func NewWorld(log *slog.Logger) *World {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	w := &World{log: log}
	w.Reset()
	return w
}

// AddStatic registers a rect that never moves, such as a door or platform.
// Statics are visible from the next tick on.
func (w *World) AddStatic(b Broadcast) {
	w.statics = append(w.statics, b)
	w.published[b.Name] = b.Rect
}

// Spawn adds an actor. Its broadcasts are published immediately so other
// actors see it on the next tick.
func (w *World) Spawn(a Actor) {
	w.actors = append(w.actors, a)
	w.publish(a, w.published)
	w.log.Debug("spawn", "actor", a.Name(), "state", a.State().String())
}

// Tick runs one frame: every live actor observes the previous snapshot
// (minus its own broadcasts), handles input and updates its physics. Then the
// snapshot is rebuilt and despawned actors are removed.
func (w *World) Tick(in InputState) {
	prev := w.published
	for _, a := range w.actors {
		if a.Despawned() {
			continue
		}
		a.Observe(prev.Without(w.owned[a]...))
		a.HandleInput(in)
		a.UpdatePhysics()
	}

	next := make(Snapshot, len(prev))
	for _, s := range w.statics {
		next[s.Name] = s.Rect
	}
	for _, a := range w.actors {
		if a.Despawned() {
			continue
		}
		w.publish(a, next)
		if a.IsTerminal() && !w.dead[a] {
			w.dead[a] = true
			w.log.Debug("terminal", "actor", a.Name(), "state", a.State().String(), "tick", w.tick)
		}
	}
	w.published = next
	w.prune()
	w.tick++
}

func (w *World) publish(a Actor, snap Snapshot) {
	bs := a.Broadcasts()
	names := make([]string, 0, len(bs))
	for _, b := range bs {
		snap[b.Name] = b.Rect
		names = append(names, b.Name)
	}
	if !slices.Contains(names, a.Name()) {
		names = append(names, a.Name())
	}
	w.owned[a] = names
}

func (w *World) prune() {
	w.actors = slices.DeleteFunc(w.actors, func(a Actor) bool {
		if !a.Despawned() {
			return false
		}
		delete(w.owned, a)
		delete(w.dead, a)
		w.log.Debug("despawn", "actor", a.Name(), "tick", w.tick)
		return true
	})
}

// Snapshot returns a copy of the last published snapshot
func (w *World) Snapshot() Snapshot {
	return w.published.Without()
}

// Actors returns the live actors in update order
func (w *World) Actors() []Actor {
	return w.actors
}

// Statics returns the registered static rects
func (w *World) Statics() []Broadcast {
	return w.statics
}

// Ticks returns the number of ticks run since the last reset
func (w *World) Ticks() uint64 {
	return w.tick
}

// Reset removes every actor and static and clears the snapshot
func (w *World) Reset() {
	w.statics = nil
	w.actors = nil
	w.owned = make(map[Actor][]string)
	w.dead = make(map[Actor]bool)
	w.published = Snapshot{}
	w.tick = 0
}
