package tensor

import "errors"

// Sentinel errors returned (wrapped) by tensor construction and arithmetic.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrInvalidShape  = errors.New("invalid shape")
)
