package engine

import "errors"

// ErrInvalidDuration is returned for negative or non-finite fight lengths.
var ErrInvalidDuration = errors.New("invalid simulation duration")
