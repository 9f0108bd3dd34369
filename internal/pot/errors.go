package pot

import "errors"

// Typed failure kinds for pot computations. A wrong balance shown as right is
// worse than a visible error, so none of these may ever be absorbed into an
// empty result or a zero. Callers discriminate with errors.Is.
var (
	// ErrReadFailure wraps any source read that could not complete.
	ErrReadFailure = errors.New("pot: source read failed")

	// ErrMalformedRecord wraps a record missing a required date or numeric
	// field, or carrying a dangling engagement reference.
	ErrMalformedRecord = errors.New("pot: malformed record")

	// ErrConfigurationMissing is returned when no reconciliation config was
	// supplied or the configured cutoff is unset.
	ErrConfigurationMissing = errors.New("pot: reconciliation config missing")
)
