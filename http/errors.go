package http

import "errors"

// ErrInvalidKey is returned when a requested configuration key is malformed.
var ErrInvalidKey = errors.New("invalid key")
