// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/minitensor/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense multi-dimensional array of float32 values.
//
// Example:
//
//	x := tensor.Ones(tensor.Shape{2, 3})
//	x.Sigmoid()
type Tensor = tensor.Tensor

// Errors

var (
	// ErrShapeMismatch is returned when data does not fit a shape, or when
	// two tensors of different shapes are added.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrInvalidShape is returned for shapes with a negative dimension.
	ErrInvalidShape = tensor.ErrInvalidShape
)

// Creation functions

// New creates a tensor from a data slice and a shape.
// Returns an error wrapping ErrShapeMismatch if len(data) != shape.NumElements().
//
// Example:
//
//	x, err := tensor.New([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
func New(data []float32, shape Shape) (*Tensor, error) {
	return tensor.New(data, shape)
}

// MustNew is like New but panics on error.
func MustNew(data []float32, shape Shape) *Tensor {
	return tensor.MustNew(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	x := tensor.Ones(tensor.Shape{23, 24})
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full(tensor.Shape{2, 3}, -1)
func Full(shape Shape, value float32) *Tensor {
	return tensor.Full(shape, value)
}

// Empty creates a tensor with no shape and no data.
func Empty() *Tensor {
	return tensor.Empty()
}

// FillLike creates a tensor shaped like like, with every element set to value.
//
// Example:
//
//	y := tensor.FillLike(x, 30)
func FillLike(like *Tensor, value float32) *Tensor {
	return tensor.FillLike(like, value)
}
