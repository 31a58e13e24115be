package nested

import "errors"

var (
	// ErrTooManyComponents signals a component list longer than the target dimension.
	ErrTooManyComponents = errors.New("nested: too many components for type")
	// ErrShapeMismatch signals a source value whose shape cannot fill the target type.
	ErrShapeMismatch = errors.New("nested: mismatched value shape")
)
