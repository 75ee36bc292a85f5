package cosmos

import "errors"

// Domain errors for expansion operations.
var (
	// ErrInvalidTimeStep indicates a tick was requested with a
	// non-positive or non-finite dt. The caller keeps the prior state.
	ErrInvalidTimeStep = errors.New("cosmos: invalid timestep (dt must be positive and finite)")

	// ErrEmptyField indicates an initial field with no particles.
	ErrEmptyField = errors.New("cosmos: field has no particles")

	// ErrInvalidField indicates non-finite initial particle data.
	ErrInvalidField = errors.New("cosmos: field contains non-finite coordinates")

	// ErrUnknownLaw indicates a growth law name with no registration.
	ErrUnknownLaw = errors.New("cosmos: unknown growth law")
)
