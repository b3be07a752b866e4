package tensor

import "fmt"

// Add performs element-wise addition and returns a new tensor.
// Neither operand is modified.
//
// Shapes must match exactly; there is no broadcasting. Returns an error
// wrapping ErrShapeMismatch otherwise, even when both shapes have the same
// number of elements.
//
// Example:
//
//	a := tensor.Ones(tensor.Shape{2, 3})
//	b := tensor.Full(tensor.Shape{2, 3}, 30)
//	c, err := a.Add(b) // all 31
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	if !t.shape.Equal(other.shape) {
		return nil, fmt.Errorf("%w: cannot add [%v] and [%v]", ErrShapeMismatch, t.shape, other.shape)
	}

	result := FillLike(t, 0)
	for i := range result.data {
		result.data[i] = t.data[i] + other.data[i]
	}
	return result, nil
}
