// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/minitensor/tensor"
)

// TestPublicAPI exercises the documented example end to end.
func TestPublicAPI(t *testing.T) {
	x, err := tensor.New([]float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, tensor.Shape{2, 2, 3})
	require.NoError(t, err)
	x.SetName("x")

	y := tensor.FillLike(x, 30)
	y.SetName("y")

	z, err := x.Add(y)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 2, 3}, z.Shape())
	assert.Equal(t, "[Tensor:size=12,shape=2, 2, 3] 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42", z.String())

	z.ReLU6()
	assert.Equal(t, tensor.Full(tensor.Shape{2, 2, 3}, 6).Data(), z.Data())
}

func TestPublicErrors(t *testing.T) {
	_, err := tensor.New([]float32{1, 2, 3}, tensor.Shape{2, 2})
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))

	_, err = tensor.Ones(tensor.Shape{2, 3}).Add(tensor.Ones(tensor.Shape{3, 2}))
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))

	_, err = tensor.New(nil, tensor.Shape{-2})
	assert.True(t, errors.Is(err, tensor.ErrInvalidShape))

	assert.Panics(t, func() { tensor.MustNew([]float32{1}, tensor.Shape{2}) })
}

func TestPublicCreation(t *testing.T) {
	assert.Equal(t, tensor.Full(tensor.Shape{3}, 1).Data(), tensor.Ones(tensor.Shape{3}).Data())
	assert.Equal(t, tensor.Full(tensor.Shape{3}, 0).Data(), tensor.Zeros(tensor.Shape{3}).Data())
	assert.Equal(t, "(Empty)", tensor.Empty().String())
}
