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

// MQ evaluates z = x^T * Q * x over the packed upper-triangular public
// key layout: row i holds (n-i) contiguous batches of len(z) bytes, for
// (i,j) pairs with j >= i, in row-major order.
//
// Rows where x[i] == 0 skip their entire batch run. This is safe only
// because verification's x (the candidate signature) is public input;
// signing must never call MQ on secret data with this shortcut enabled.
//
// The final diagonal term is computed as gf256.Mul(x[n-1], x[n-1])
// rather than read twice from x, matching the reference's use of a
// single GFMUL on the last column — semantically identical in GF(256),
// but implementations must agree on this to avoid a one-bit mismatch on
// adversarially crafted inputs (see spec's open question on this point).
func MQ(z []byte, pk []byte, x []byte, n int) {
	batch := len(z)
	for i := range z {
		z[i] = 0
	}

	tmp := make([]byte, batch)
	pos := 0
	for i := 0; i < n-1; i++ {
		if x[i] == 0 {
			pos += batch * (n - i)
			continue
		}

		for k := range tmp {
			tmp[k] = 0
		}
		for j := i; j < n; j++ {
			gf256.Madd(tmp, pk[pos:pos+batch], x[j])
			pos += batch
		}
		gf256.Madd(z, tmp, x[i])
	}

	last := gf256.Mul(x[n-1], x[n-1])
	gf256.Madd(z, pk[pos:pos+batch], last)
}
