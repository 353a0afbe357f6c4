package domain

import "errors"

// ErrValidation marks a structurally invalid request (missing or oversized
// fields). The message returned to clients is always generic.
var ErrValidation = errors.New("invalid request")
