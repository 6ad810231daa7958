package service

import "errors"

// Caller-facing failures. Anything else that goes wrong talking to the
// upstream is absorbed into a fallback payload and never surfaces here.
var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid request")
)
