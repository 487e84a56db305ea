package ourtorch

import (
	"github.com/pkg/errors"

	"github.com/csotherden/ourtorch/engine"
)

var (
	ErrInvalidType = errors.New("ourtorch: invalid type")
	ErrShape       = errors.New("ourtorch: malformed shape")
	ErrNotScalar   = errors.New("ourtorch: not a single-element vector")

	// ErrShapeMismatch is returned unchanged from the engine.
	ErrShapeMismatch = engine.ErrShapeMismatch
)
