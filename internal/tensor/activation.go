package tensor

import "math"

// ReLU replaces every element e with max(e, 0), in place.
// NaN elements become 0.
func (t *Tensor) ReLU() {
	for i, v := range t.data {
		if v > 0 {
			continue
		}
		t.data[i] = 0
	}
}

// ReLUX applies ReLU and then clamps every element to upper from above, in place.
//
// upper is not validated: a negative bound sets every element to upper.
func (t *Tensor) ReLUX(upper float32) {
	for i, v := range t.data {
		var r float32
		if v > 0 {
			r = v
		}
		if r > upper {
			r = upper
		}
		t.data[i] = r
	}
}

// ReLU6 clamps every element to [0, 6], in place.
func (t *Tensor) ReLU6() {
	t.ReLUX(6)
}

// Sigmoid replaces every element e with 1 / (1 + exp(-e)), in place.
func (t *Tensor) Sigmoid() {
	for i, v := range t.data {
		t.data[i] = float32(1.0 / (1.0 + math.Exp(-float64(v))))
	}
}
