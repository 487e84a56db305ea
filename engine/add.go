// add.go
package engine

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Add is elementwise addition. Both operands must have the same shape;
// no broadcasting is added on top of what StdEng already does.
func (e *Eng) Add(a, b tensor.Tensor, opts ...tensor.FuncOpt) (tensor.Tensor, error) {
	if !a.Shape().Eq(b.Shape()) {
		return nil, errors.Wrapf(ErrShapeMismatch, "Add: a=%v, b=%v", a.Shape(), b.Shape())
	}
	return e.StdEng.Add(a, b, opts...)
}
