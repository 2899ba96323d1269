package engine

import "github.com/lixenwraith/planet-offline/components"

// SpawnRequest is one queued air enemy
type SpawnRequest struct {
	Location components.Location
	Tier     int
}

// World owns the actor list and the air spawn queue
// Actors are updated in insertion order; removal is deferred to the end of the pass
type World struct {
	actors []*components.Actor
	spawns []SpawnRequest
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		actors: make([]*components.Actor, 0, 256),
	}
}

// Add appends actors; during Update they are visited later in the same pass
func (w *World) Add(actors ...*components.Actor) {
	w.actors = append(w.actors, actors...)
}

// Actors returns the live actor slice; callers must not retain it across Add or Update
func (w *World) Actors() []*components.Actor {
	return w.actors
}

// Len returns the number of actors, including ones flagged for removal
func (w *World) Len() int {
	return len(w.actors)
}

// Update calls fn for every actor not yet removed, including actors added by fn,
// then compacts the list
func (w *World) Update(fn func(a *components.Actor)) {
	for i := 0; i < len(w.actors); i++ {
		a := w.actors[i]
		if a.Removed {
			continue
		}
		fn(a)
	}
	w.Compact()
}

// Compact drops removed actors, preserving order
func (w *World) Compact() {
	kept := w.actors[:0]
	for _, a := range w.actors {
		if !a.Removed {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(w.actors); i++ {
		w.actors[i] = nil
	}
	w.actors = kept
}

// Find returns the first live actor matching pred, or nil
func (w *World) Find(pred func(a *components.Actor) bool) *components.Actor {
	for _, a := range w.actors {
		if !a.Removed && pred(a) {
			return a
		}
	}
	return nil
}

// Count returns the number of live actors of a kind
func (w *World) Count(kind components.Kind) int {
	n := 0
	for _, a := range w.actors {
		if !a.Removed && a.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all actors and queued spawns
func (w *World) Reset() {
	clear(w.actors)
	w.actors = w.actors[:0]
	w.spawns = nil
}

// QueueSpawn appends a request to the spawn FIFO
func (w *World) QueueSpawn(req SpawnRequest) {
	w.spawns = append(w.spawns, req)
}

// NextSpawn pops the oldest spawn request
func (w *World) NextSpawn() (SpawnRequest, bool) {
	if len(w.spawns) == 0 {
		return SpawnRequest{}, false
	}
	req := w.spawns[0]
	w.spawns = w.spawns[1:]
	return req, true
}

// PendingSpawns returns the length of the spawn queue
func (w *World) PendingSpawns() int {
	return len(w.spawns)
}
