package level

import "errors"

// Error taxonomy for the level core. All failures are deterministic and
// raised synchronously at the point of detection; there is no retry policy.
var (
	// ErrInvalidDimension is returned when grid dimensions are non-positive.
	ErrInvalidDimension = errors.New("level: invalid grid dimension")

	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	// This is a programming error on the caller's side and is surfaced
	// immediately rather than silently clamped.
	ErrOutOfBounds = errors.New("level: coordinate out of bounds")

	// ErrInvalidArgument is returned for malformed call arguments,
	// such as a negative sample count.
	ErrInvalidArgument = errors.New("level: invalid argument")

	// ErrInvalidConfiguration is returned when level configuration is
	// unusable (non-positive width, height, or duration). Fatal at startup.
	ErrInvalidConfiguration = errors.New("level: invalid configuration")

	// ErrMissingCollaborator is returned when a required attached component
	// is absent at startup. Fatal, since the level cannot function without it.
	ErrMissingCollaborator = errors.New("level: missing collaborator")
)
