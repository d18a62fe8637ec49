package flywheel

import "errors"

var (
	// ErrDeadEntity is returned when an operation addresses an entity that was
	// never spawned or has been destroyed.
	ErrDeadEntity = errors.New("ecs: entity is not alive")
	// ErrSelfParent is returned when an entity is bound as its own parent.
	ErrSelfParent = errors.New("ecs: entity cannot be its own parent")
)
