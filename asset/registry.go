package asset

import (
	"errors"
	"fmt"
)

var (
	// ErrUnregistered is returned when an animation id has no definition
	ErrUnregistered = errors.New("animation not registered")

	// ErrIncomplete is returned by Validate when the table has gaps or empty definitions
	ErrIncomplete = errors.New("animation table incomplete")
)

// Registry maps every AnimID to its definition
// Lookups after a successful Validate cannot fail for ids below AnimCount
type Registry struct {
	defs [AnimCount]*Definition
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register installs or replaces the definition for id
func (r *Registry) Register(id AnimID, def Definition) {
	if id >= AnimCount {
		return
	}
	d := def
	r.defs[id] = &d
}

// Validate checks that every id other than AnimNone resolves to a playable definition
func (r *Registry) Validate() error {
	var errs []error
	for id := AnimNone + 1; id < AnimCount; id++ {
		def := r.defs[id]
		if def == nil {
			errs = append(errs, fmt.Errorf("%w: %s missing", ErrIncomplete, id))
			continue
		}
		if len(def.Steps) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s has no steps", ErrIncomplete, id))
			continue
		}
		for i, s := range def.Steps {
			if s.Frames <= 0 {
				errs = append(errs, fmt.Errorf("%w: %s step %d has no frames", ErrIncomplete, id, i))
			}
			if len(s.Sprite.Glyphs) == 0 && !s.Sprite.Rotates {
				errs = append(errs, fmt.Errorf("%w: %s step %d has no glyphs", ErrIncomplete, id, i))
			}
		}
	}
	return errors.Join(errs...)
}

// New starts a fresh instance of the animation
func (r *Registry) New(id AnimID) (*Animation, error) {
	if id >= AnimCount || r.defs[id] == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnregistered, id)
	}
	return &Animation{ID: id, def: r.defs[id]}, nil
}

// Sprite returns the first sprite of an animation for static drawing
func (r *Registry) Sprite(id AnimID) (*Sprite, error) {
	if id >= AnimCount || r.defs[id] == nil || len(r.defs[id].Steps) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnregistered, id)
	}
	return &r.defs[id].Steps[0].Sprite, nil
}

// Default builds and validates the game's animation table
func Default() (*Registry, error) {
	r := NewRegistry()
	registerLibrary(r)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
