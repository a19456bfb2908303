package infoecon

import "errors"

// ErrInvalidDistribution is wrapped by every error caused by a method-weight
// vector that is empty, holds a negative or NaN weight, or does not sum to 1.
var ErrInvalidDistribution = errors.New("invalid distribution")

// ErrInvalidParameter is wrapped by every error caused by a model parameter
// outside its admissible range.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrUnknownAction is wrapped when an action script names something other
// than research or produce.
var ErrUnknownAction = errors.New("unknown action")
