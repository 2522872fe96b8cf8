package core

import "time"

// Entity is the contract every simulated object fulfils so the game loop
// can update, draw and cull it without knowing its concrete type.
type Entity interface {
	// Update advances the entity by elapsed time and reports whether
	// anything visible changed.
	Update(elapsed time.Duration) bool

	// Draw paints the entity into the frame.
	Draw(f *Frame)

	// Dead reports whether the entity should be removed.
	Dead() bool
}

// Audible is implemented by entities that make a sound when Update
// reports a change.
type Audible interface {
	ChangeSound() string
}
