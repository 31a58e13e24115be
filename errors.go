package hyper

import "errors"

var (
	// ErrRankRange signals a rank outside [0, MaxRank].
	ErrRankRange = errors.New("hyper: rank out of range")
	// ErrTooManyComponents signals a component list longer than the target dimension.
	ErrTooManyComponents = errors.New("hyper: too many components for rank")
	// ErrShapeMismatch signals sub-value arguments of unequal or unusable rank.
	ErrShapeMismatch = errors.New("hyper: mismatched sub-value shape")
	// ErrRankMismatch signals an in-place operation with an operand of higher rank.
	ErrRankMismatch = errors.New("hyper: operand rank exceeds receiver rank")
	// ErrIllegalArguments signals a nil or otherwise unusable argument.
	ErrIllegalArguments = errors.New("hyper: illegal arguments")
)
