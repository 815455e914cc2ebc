// Copyright 2024 The Rainbow Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package linalg implements the GF(256) linear-algebra primitives the
// oil-and-vinegar central map is built from: dense and triangular
// matrix-vector products, the MQ evaluator, in-place Gauss-Jordan
// inversion, and the multiply-accumulate variants the key-composition
// dataflow composes.
package linalg

import "github.com/rainbow-sig/rainbow/internal/gf256"

// MatVec computes c = A*b where A is stored column-major: width
// successive columns of len(c) bytes each. c must not alias b.
//
//	A layout: A[i*len(c) : (i+1)*len(c)] is column i, for i in [0, width).
func MatVec(c []byte, a []byte, width int, b []byte) {
	n := len(c)
	for i := range c {
		c[i] = 0
	}
	for i := 0; i < width; i++ {
		gf256.Madd(c, a[i*n:(i+1)*n], b[i])
	}
}
