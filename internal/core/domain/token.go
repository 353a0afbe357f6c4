package domain

import "errors"

// ErrTokenInvalid is returned for every token verification failure:
// malformed input, bad signature, wrong algorithm, expired claims. Callers
// must not be able to tell the causes apart.
var ErrTokenInvalid = errors.New("token invalid")
