package ourtorch

import (
	"reflect"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// FromDense wraps d without copying it. Callers that keep a reference to d
// must not mutate it while the Tensor is in use.
func FromDense(d *tensor.Dense) (*Tensor, error) {
	if d == nil {
		return nil, errors.Wrap(ErrInvalidType, "nil dense array")
	}
	if d.Dtype() != tensor.Float64 {
		return nil, errors.Wrapf(ErrInvalidType, "dtype %v, want float64", d.Dtype())
	}
	if d.Dims() < 1 {
		return nil, errors.Wrapf(ErrShape, "rank 0 array, want rank >= 1")
	}
	return &Tensor{data: d}, nil
}

// FromScalar returns a 1D tensor of length one holding x.
func FromScalar(x float64) *Tensor {
	return &Tensor{data: dense([]float64{x}, 1)}
}

// FromSlice copies xs into a 1D tensor.
func FromSlice(xs []float64) (*Tensor, error) {
	if len(xs) == 0 {
		return nil, errors.Wrap(ErrShape, "empty slice")
	}
	backing := make([]float64, len(xs))
	copy(backing, xs)
	return &Tensor{data: dense(backing, len(xs))}, nil
}

// FromMatrix copies rows into a 2D tensor. Every row must have the same
// non-zero length.
func FromMatrix(rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrShape, "empty matrix")
	}
	cols := len(rows[0])
	backing := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrShape, "row %d has %d columns, want %d", i, len(row), cols)
		}
		backing = append(backing, row...)
	}
	return &Tensor{data: dense(backing, len(rows), cols)}, nil
}

// FromValue builds a Tensor from untyped input. Accepted values are a
// *tensor.Dense, any Go integer or float scalar, and slices of those
// nested to any depth (including []any), provided the nesting is
// rectangular. Everything else returns ErrInvalidType.
func FromValue(v any) (*Tensor, error) {
	switch x := v.(type) {
	case nil:
		return nil, errors.Wrap(ErrInvalidType, "nil input")
	case *tensor.Dense:
		return FromDense(x)
	case *Tensor:
		if x == nil {
			return nil, errors.Wrap(ErrInvalidType, "nil *Tensor")
		}
		return x, nil
	case []float64:
		return FromSlice(x)
	case [][]float64:
		return FromMatrix(x)
	}

	if f, ok := scalar(reflect.ValueOf(v)); ok {
		return FromScalar(f), nil
	}

	var (
		shape   []int
		backing []float64
	)
	if err := flatten(reflect.ValueOf(v), 0, &shape, &backing); err != nil {
		return nil, err
	}
	return &Tensor{data: dense(backing, shape...)}, nil
}

// flatten walks a nested slice depth-first, recording the extent of each
// level the first time it is reached and checking it on every later visit.
func flatten(rv reflect.Value, depth int, shape *[]int, backing *[]float64) error {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}

	if f, ok := scalar(rv); ok {
		if depth != len(*shape) {
			return errors.Wrapf(ErrShape, "scalar at depth %d, want depth %d", depth, len(*shape))
		}
		*backing = append(*backing, f)
		return nil
	}

	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return errors.Wrapf(ErrInvalidType, "unsupported element %s at depth %d", rv.Kind(), depth)
	}

	n := rv.Len()
	switch {
	case n == 0:
		return errors.Wrapf(ErrShape, "empty sequence at depth %d", depth)
	case depth == len(*shape):
		if len(*backing) > 0 {
			return errors.Wrapf(ErrShape, "sequence at depth %d where a scalar was expected", depth)
		}
		*shape = append(*shape, n)
	case depth > len(*shape) || (*shape)[depth] != n:
		return errors.Wrapf(ErrShape, "ragged sequence at depth %d", depth)
	}

	for i := 0; i < n; i++ {
		if err := flatten(rv.Index(i), depth+1, shape, backing); err != nil {
			return err
		}
	}
	return nil
}

// scalar converts numeric kinds to float64.
func scalar(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}
	return 0, false
}

func dense(backing []float64, shape ...int) *tensor.Dense {
	return tensor.New(
		tensor.WithShape(shape...),
		tensor.WithBacking(backing),
	)
}
