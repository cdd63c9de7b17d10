package ladybird

import "github.com/pkg/errors"

var (
	// ErrWrongReceiverType - a Set method was invoked on a receiver that
	// is not backed by the associative store.
	ErrWrongReceiverType = errors.New("method called on incompatible receiver")

	// ErrNotAnObject - an operand expected to be an object is not.
	ErrNotAnObject = errors.New("value is not an object")

	// ErrNotAFunction - a value expected to be callable is not.
	ErrNotAFunction = errors.New("value is not a function")

	// ErrSizeNotANumber - the size property coerced to NaN.
	ErrSizeNotANumber = errors.New("size is not a number")
)
