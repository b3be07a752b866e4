package tensor

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(err)
	}

	// make() zero-initializes the buffer
	return &Tensor{
		data:  make([]float32, shape.NumElements()),
		shape: shape.Clone(),
		name:  defaultName,
	}
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones(tensor.Shape{23, 24})
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full(shape Shape, value float32) *Tensor {
	t := Zeros(shape)
	t.fill(value)
	return t
}

// Empty creates a tensor with no shape and no data.
func Empty() *Tensor {
	return &Tensor{
		data:  []float32{},
		shape: Shape{},
		name:  defaultName,
	}
}

// FillLike creates a tensor with the same shape as like, every element set to value.
// The data of like is not read.
func FillLike(like *Tensor, value float32) *Tensor {
	t := &Tensor{
		data:  make([]float32, like.Size()),
		shape: like.Shape(),
		name:  defaultName,
	}
	t.fill(value)
	return t
}

func (t *Tensor) fill(value float32) {
	for i := range t.data {
		t.data[i] = value
	}
}
