package simplify

import "errors"

var (
	// ErrSimplification reports a data consistency violation detected in
	// the middle of a pass: inputs that broke a documented precondition,
	// or an internal traversal invariant that failed to hold. It is never
	// user-correctable; the pass is abandoned and the structures involved
	// must be rebuilt.
	ErrSimplification = errors.New("simplification error")

	// ErrUnknownFlags is returned when SimplificationFlags carries bits
	// this version does not define.
	ErrUnknownFlags = errors.New("unknown simplification flags")
)
