package surrealex

import "errors"

// Errors
var (
	// ErrMissingTarget is returned by QueryBuilder.Build when no FROM
	// target was set. FROM is the only mandatory clause.
	ErrMissingTarget = errors.New("missing FROM target")

	// ErrMissingReturn is returned by ScriptBuilder.Build when no return
	// object was provided.
	ErrMissingReturn = errors.New("a return object is required")
)
