// sum.go
//
// Full reductions are computed directly on the backing slice with the
// vecf64/vecf32 kernels when the layout allows it. Axis reductions and
// strided views go through StdEng.

package engine

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/vecf32"
	"gorgonia.org/vecf64"
)

// Sum reduces a. With explicit axes it defers to StdEng.Sum unchanged.
// Without axes every element is summed and the result is a 1D tensor
// holding exactly one element, never a 0D scalar, so that it can be read
// back with a single index.
func (e *Eng) Sum(a tensor.Tensor, along ...int) (tensor.Tensor, error) {
	if len(along) != 0 {
		return e.StdEng.Sum(a, along...)
	}

	if ad, ok := a.(*tensor.Dense); ok && isRowMajorContiguous(ad) {
		n := ad.Shape().TotalSize()
		switch data := ad.Data().(type) {
		case []float64:
			return vector([]float64{vecf64.Sum(data[:n])}), nil
		case []float32:
			return vector([]float32{vecf32.Sum(data[:n])}), nil
		}
	}

	return e.sumAllAxes(a)
}

// sumAllAxes reduces along every axis with StdEng, last axis first so the
// remaining axis numbers stay valid.
func (e *Eng) sumAllAxes(a tensor.Tensor) (tensor.Tensor, error) {
	var (
		ret tensor.Tensor = a
		err error
	)
	for axis := a.Dims() - 1; axis >= 0; axis-- {
		if ret, err = e.StdEng.Sum(ret, axis); err != nil {
			return nil, err
		}
	}

	dense, ok := ret.(*tensor.Dense)
	if !ok {
		return nil, errors.Errorf("engine: Sum produced %T, expected *tensor.Dense", ret)
	}

	switch v := dense.Data().(type) {
	case float64:
		return vector([]float64{v}), nil
	case []float64:
		return vector([]float64{v[0]}), nil
	case float32:
		return vector([]float32{v}), nil
	case []float32:
		return vector([]float32{v[0]}), nil
	}
	return nil, errors.Errorf("engine: Sum does not support dtype %v", dense.Dtype())
}

// vector wraps a one-element backing slice as a 1D dense tensor.
func vector(backing interface{}) *tensor.Dense {
	return tensor.New(
		tensor.WithShape(1),
		tensor.WithBacking(backing),
	)
}
