// Package tensor provides the core float32 tensor type and its operations.
package tensor

import "fmt"

// defaultName is the display label given to every newly created tensor.
const defaultName = "?"

// Tensor is a dense multi-dimensional array of float32 values.
// The data is stored flat in row-major order.
//
// Every Tensor satisfies len(Data()) == Shape().NumElements(), except the
// empty tensor returned by Empty, which has no shape and no data.
//
// Example:
//
//	x, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	y := tensor.FillLike(x, 30)
//	z, err := x.Add(y)
type Tensor struct {
	data  []float32
	shape Shape
	name  string
}

// New creates a Tensor from a data slice and a shape.
// Both slices are copied into the tensor.
//
// Returns an error wrapping ErrShapeMismatch if len(data) does not equal the
// number of elements described by shape. The data is never truncated or padded.
func New(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape [%v] requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	buf := make([]float32, len(data))
	copy(buf, data)

	return &Tensor{
		data:  buf,
		shape: shape.Clone(),
		name:  defaultName,
	}, nil
}

// MustNew is like New but panics if the data does not fit the shape.
func MustNew(data []float32, shape Shape) *Tensor {
	t, err := New(data, shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Size returns the total number of elements.
// The empty tensor has size 0.
func (t *Tensor) Size() int {
	if t.IsEmpty() {
		return 0
	}
	return t.shape.NumElements()
}

// IsEmpty reports whether the tensor holds no data.
func (t *Tensor) IsEmpty() bool {
	return len(t.data) == 0
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Data returns the tensor's flat data.
//
// WARNING: The returned slice is the tensor's own buffer. Writes to it modify the tensor.
func (t *Tensor) Data() []float32 {
	return t.data
}

// Name returns the tensor's display label.
func (t *Tensor) Name() string {
	return t.name
}

// SetName sets the tensor's display label.
func (t *Tensor) SetName(name string) {
	t.name = name
}

// Clone creates a deep copy of the tensor, including its name.
func (t *Tensor) Clone() *Tensor {
	data := make([]float32, len(t.data))
	copy(data, t.data)
	return &Tensor{
		data:  data,
		shape: t.shape.Clone(),
		name:  t.name,
	}
}
