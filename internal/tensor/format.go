package tensor

import (
	"strconv"
	"strings"
)

// emptyMarker is the rendering of a tensor without data.
const emptyMarker = "(Empty)"

// String returns a human-readable representation of the tensor:
// its size and shape followed by the elements in buffer order.
//
//	[Tensor:size=4,shape=2, 2] 1, 2, 3, 4
//
// A tensor without data renders as "(Empty)".
func (t *Tensor) String() string {
	if t.IsEmpty() {
		return emptyMarker
	}

	var sb strings.Builder
	sb.WriteString("[Tensor:size=")
	sb.WriteString(strconv.Itoa(t.Size()))
	sb.WriteString(",shape=")
	sb.WriteString(t.shape.String())
	sb.WriteString("]")
	for i, v := range t.data {
		if i == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
	return sb.String()
}
