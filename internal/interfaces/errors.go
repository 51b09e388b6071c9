package interfaces

import "errors"

// Error taxonomy shared across services. Discovery-path errors (network,
// parse) are absorbed by the orchestrator and degrade to empty shadow
// results; ErrAuthRequired surfaces as a state transition, not a fault.
var (
	// ErrNetwork wraps transport, DNS and timeout failures.
	ErrNetwork = errors.New("network error")

	// ErrParse wraps malformed responses and elements missing required fields.
	ErrParse = errors.New("parse error")

	// ErrAuthRequired is returned when a gated action is attempted without a
	// stored session.
	ErrAuthRequired = errors.New("authentication required")

	// ErrGymNotFound is returned when an activation references an unknown gym id.
	ErrGymNotFound = errors.New("gym not found")

	// ErrSessionNotFound is returned when no session record is stored.
	ErrSessionNotFound = errors.New("session not found")
)
