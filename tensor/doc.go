// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a minimal dense float32 tensor.
//
// # Overview
//
// A Tensor is a flat float32 buffer interpreted through a Shape. The number
// of elements always equals the product of the shape's dimensions, which is
// checked when a tensor is built from caller data.
//
// # Basic Usage
//
//	import "github.com/born-ml/minitensor/tensor"
//
//	func main() {
//	    x, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    y := tensor.FillLike(x, 30)
//
//	    z, err := x.Add(y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    z.ReLU6()
//	    fmt.Println(z) // [Tensor:size=6,shape=2, 3] 6, 6, 6, 6, 6, 6
//	}
//
// # Activations
//
// Activation functions mutate the receiver in place:
//
//	x.ReLU()       // max(e, 0)
//	x.ReLUX(2.5)   // min(max(e, 0), 2.5)
//	x.ReLU6()      // min(max(e, 0), 6)
//	x.Sigmoid()    // 1 / (1 + exp(-e))
//
// # Errors
//
// New and Add report inconsistent shapes with errors wrapping ErrShapeMismatch.
// There is no broadcasting: Add requires identical shapes, not just equal sizes.
package tensor
