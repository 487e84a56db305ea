// engine.go
package engine

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// ErrShapeMismatch is returned when operand shapes are incompatible for
// MatMul or Add. Errors carrying it name both offending shapes.
var ErrShapeMismatch = errors.New("engine: shape mismatch")

// Eng is a tensor.Engine implementation that delegates to tensor.StdEng and
// overrides the three operations the ourtorch Tensor relies on: MatMul, Add
// and Sum. The overrides validate shapes up front so callers can match on
// ErrShapeMismatch instead of parsing StdEng's messages.
type Eng struct {
	tensor.StdEng
}

// NewEng constructs a new Eng.
func NewEng() *Eng {
	return &Eng{
		StdEng: tensor.StdEng{},
	}
}

// Compile-time check that *Eng satisfies tensor.Engine.
var _ tensor.Engine = (*Eng)(nil)

// isRowMajorContiguous reports whether d is a dense tensor with the
// standard packed row-major layout, i.e. its backing slice can be read
// front to back without an iterator.
func isRowMajorContiguous(d *tensor.Dense) bool {
	if d.RequiresIterator() {
		return false
	}
	return d.DataSize() >= d.Shape().TotalSize()
}
