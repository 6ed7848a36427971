package scru64

import "errors"

// Error kinds reported by this package. Concrete errors wrap one of these
// sentinels; match with errors.Is.
var (
	// ErrSyntax reports malformed textual or byte-level input: wrong length,
	// a character outside the digit alphabet, or a node spec that does not
	// match the grammar.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange reports a well-formed value outside its declared bound.
	ErrRange = errors.New("out of range")

	// ErrClockRollback is returned by the abort-style generate operations
	// when the supplied timestamp is behind the generator state by more than
	// the rollback allowance. Generator state is left untouched; this is the
	// documented rollback signal, not a fault.
	ErrClockRollback = errors.New("significant clock rollback")

	// ErrNotConfigured is returned when the process-default generator is
	// used before being configured, either explicitly or through the
	// SCRU64_NODE_SPEC environment variable.
	ErrNotConfigured = errors.New("default generator not configured")
)
