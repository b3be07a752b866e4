package tensor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements described by the shape.
// The product of an empty shape is 1.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative and that the number of
// elements fits in an int.
// Zero-extent dimensions are allowed and describe a tensor with no elements.
func (s Shape) Validate() error {
	hasZero := false
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
		if dim == 0 {
			hasZero = true
		}
	}
	if hasZero {
		return nil
	}

	n := 1
	for i, dim := range s {
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: element count overflows int at dimension %d", ErrInvalidShape, i)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String renders the extents separated by ", " (e.g. "2, 2, 3").
func (s Shape) String() string {
	var sb strings.Builder
	for i, dim := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(dim))
	}
	return sb.String()
}
