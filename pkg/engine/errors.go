package engine

import "errors"

// Sentinel errors returned by topology and registry operations. They are
// always wrapped with the offending coordinates; test with errors.Is.
var (
	// ErrOutOfBounds reports a coordinate outside the grid dimensions.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidWormhole reports a self-loop endpoint or a duplicate pair.
	ErrInvalidWormhole = errors.New("invalid wormhole")
	// ErrWormholeNotFound reports a remove of a pair that was never added.
	ErrWormholeNotFound = errors.New("wormhole not found")
)
