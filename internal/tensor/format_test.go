package tensor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input *Tensor
		want  string
	}{
		{"3d", MustNew(arange(12), Shape{2, 2, 3}), "[Tensor:size=12,shape=2, 2, 3] 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12"},
		{"filled", Full(Shape{2, 2}, 30), "[Tensor:size=4,shape=2, 2] 30, 30, 30, 30"},
		{"fractions", MustNew([]float32{0.5, -1.25, 0.1}, Shape{3}), "[Tensor:size=3,shape=3] 0.5, -1.25, 0.1"},
		{"scalar", MustNew([]float32{7}, Shape{}), "[Tensor:size=1,shape=] 7"},
		{"empty", Empty(), "(Empty)"},
		{"zero extent", Zeros(Shape{3, 0}), "(Empty)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.String())
		})
	}
}

func TestString_Stringer(t *testing.T) {
	x := Ones(Shape{2})
	assert.Equal(t, "[Tensor:size=2,shape=2] 1, 1", fmt.Sprint(x))
	assert.Equal(t, "(Empty)", fmt.Sprintf("%v", Empty()))
}

func TestString_IgnoresName(t *testing.T) {
	x := Ones(Shape{1})
	before := x.String()
	x.SetName("x")
	assert.Equal(t, before, x.String())
}
