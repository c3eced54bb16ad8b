package param

import "errors"

// ErrOutOfBounds is returned when a value falls outside a parameter's
// bounds.
var ErrOutOfBounds = errors.New("value outside bounds")

// ErrNotNumeric is returned when a parameter is assigned something other
// than a number or another Parameter.
var ErrNotNumeric = errors.New("numeric type required")
