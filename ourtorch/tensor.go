package ourtorch

import (
	"fmt"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/csotherden/ourtorch/engine"
)

// eng is stateless and shared by every Tensor.
var eng = engine.NewEng()

// Tensor wraps a float64 dense array. The shape is fixed at construction.
type Tensor struct {
	data *tensor.Dense
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() tensor.Shape {
	return t.data.Shape().Clone()
}

// Data returns the backing dense array. It is shared, not copied.
func (t *Tensor) Data() *tensor.Dense {
	return t.data
}

// packed returns the backing array laid out in row-major order. Views and
// transposes built by the caller are copied; packed arrays are returned as is.
func (t *Tensor) packed() *tensor.Dense {
	if !t.data.RequiresIterator() && !t.data.IsMaterializable() {
		return t.data
	}
	if d, ok := t.data.Materialize().(*tensor.Dense); ok {
		return d
	}
	return t.data.Clone().(*tensor.Dense)
}

// Float64s returns a copy of the elements in row-major order.
func (t *Tensor) Float64s() []float64 {
	d := t.packed()
	n := d.Shape().TotalSize()
	out := make([]float64, n)
	switch v := d.Data().(type) {
	case []float64:
		copy(out, v[:n])
	case float64:
		out[0] = v
	}
	return out
}

// Sum reduces every element into a one-element 1D tensor.
func (t *Tensor) Sum() *Tensor {
	out, err := eng.Sum(t.packed())
	if err != nil {
		// Only reachable for non-float dtypes, which FromDense rejects.
		panic(err)
	}
	return &Tensor{data: out.(*tensor.Dense)}
}

// MatMul returns the matrix product t·other. Both operands must be 2D.
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	if t == nil || other == nil {
		return nil, errors.Wrap(ErrInvalidType, "MatMul operand is nil")
	}
	out, err := eng.MatMulNew(t.packed(), other.packed())
	if err != nil {
		return nil, err
	}
	return &Tensor{data: out}, nil
}

// Add returns the elementwise sum t+other.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	if t == nil || other == nil {
		return nil, errors.Wrap(ErrInvalidType, "Add operand is nil")
	}
	out, err := eng.Add(t.packed(), other.packed())
	if err != nil {
		return nil, err
	}
	d, ok := out.(*tensor.Dense)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidType, "Add produced %T", out)
	}
	return &Tensor{data: d}, nil
}

// Item returns the only element of a 1D tensor of length one.
func (t *Tensor) Item() (float64, error) {
	if t == nil {
		return 0, errors.Wrap(ErrInvalidType, "Item on nil tensor")
	}
	shape := t.data.Shape()
	if len(shape) != 1 || shape[0] != 1 {
		return 0, errors.Wrapf(ErrNotScalar, "shape %v", shape)
	}
	v, err := t.data.At(0)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidType, "element is %T", v)
	}
	return f, nil
}

func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor: \n%v", t.data)
}
