package common

import "errors"

// ErrNoToken is returned when an operation needs a stored token and none exists.
var ErrNoToken = errors.New("no token stored")
