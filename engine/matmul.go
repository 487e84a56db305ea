// matmul.go
package engine

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// MatMul multiplies two 2D matrices into prealloc. Shapes are checked before
// StdEng is invoked:
//
//	a = [m, k], b = [k, n], prealloc = [m, n]
//
// Any violation is reported as ErrShapeMismatch.
func (e *Eng) MatMul(a, b, prealloc tensor.Tensor) error {
	shapeA := a.Shape()
	shapeB := b.Shape()
	shapeC := prealloc.Shape()

	if len(shapeA) != 2 || len(shapeB) != 2 {
		return errors.Wrapf(ErrShapeMismatch, "MatMul needs two matrices: a=%v, b=%v", shapeA, shapeB)
	}

	m, kA := shapeA[0], shapeA[1]
	kB, n := shapeB[0], shapeB[1]

	if kA != kB {
		return errors.Wrapf(ErrShapeMismatch, "MatMul: a=%v, b=%v (inner dims %d vs %d)", shapeA, shapeB, kA, kB)
	}
	if len(shapeC) != 2 || shapeC[0] != m || shapeC[1] != n {
		return errors.Wrapf(ErrShapeMismatch, "MatMul prealloc: expected [%d %d], got %v", m, n, shapeC)
	}

	return e.StdEng.MatMul(a, b, prealloc)
}

// MatMulNew is MatMul with the result allocated for the caller.
func (e *Eng) MatMulNew(a, b tensor.Tensor) (*tensor.Dense, error) {
	shapeA := a.Shape()
	shapeB := b.Shape()
	if len(shapeA) != 2 || len(shapeB) != 2 {
		return nil, errors.Wrapf(ErrShapeMismatch, "MatMul needs two matrices: a=%v, b=%v", shapeA, shapeB)
	}

	out := tensor.New(
		tensor.Of(a.Dtype()),
		tensor.WithShape(shapeA[0], shapeB[1]),
	)
	if err := e.MatMul(a, b, out); err != nil {
		return nil, err
	}
	return out, nil
}
