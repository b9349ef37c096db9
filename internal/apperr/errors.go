package apperr

import "errors"

// ErrInvalidInput is the root of every validation failure.
// Use errors.Is(err, apperr.ErrInvalidInput) to detect a rejected input
// regardless of which individual check failed.
var ErrInvalidInput = errors.New("invalid input")
