package model

import "errors"

// ErrNoSuchParam is returned when a name does not resolve to a declared
// parameter, directly or through an alias.
var ErrNoSuchParam = errors.New("no such parameter")
