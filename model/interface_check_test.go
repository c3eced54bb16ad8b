package model

// This file verifies that Base implements the Model interface.
// If this compiles, the interface is correctly implemented.

var _ Model = (*Base)(nil)
