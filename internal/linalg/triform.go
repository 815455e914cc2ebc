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

package linalg

import "github.com/rainbow-sig/rainbow/internal/gf256"

// TriForm evaluates y = sum_{i<=j} A[i][j] * x[i] * x[j] where A is the
// upper-triangular batched matrix: row i holds (dim-i) batches of
// len(y) bytes each, contiguously. Each row is folded into a single
// column-sum accumulator before being multiplied by x[i] once, so the
// central-map quadratic form costs one extra multiply per row instead
// of one per (i,j) pair.
func TriForm(y []byte, triA []byte, x []byte, dim int) {
	batch := len(y)
	for i := range y {
		y[i] = 0
	}

	tmp := make([]byte, batch)
	pos := 0
	for i := 0; i < dim; i++ {
		for k := range tmp {
			tmp[k] = 0
		}
		for j := i; j < dim; j++ {
			gf256.Madd(tmp, triA[pos:pos+batch], x[j])
			pos += batch
		}
		gf256.Madd(y, tmp, x[i])
	}
}
