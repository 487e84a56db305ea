// Package ourtorch provides a minimal Tensor type over gorgonia dense
// arrays: construction, MatMul, Add, Sum and Item.
//
// Every operation returns a new Tensor; operands are never modified.
// Failures are reported as errors that match one of the package sentinels
// with errors.Is:
//
//	ErrInvalidType   an operand or constructor input has the wrong type
//	ErrShape         constructor input is empty or ragged
//	ErrShapeMismatch operand shapes are incompatible (from the engine)
//	ErrNotScalar     Item called on anything but a one-element 1D tensor
package ourtorch
