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

package keygen

import (
	"github.com/rainbow-sig/rainbow/internal/format"
	"github.com/rainbow-sig/rainbow/internal/linalg"
)

// idxT returns the batch offset (in units of m-byte batches, m=O1+O2)
// of the (i,j) entry, j>=i, within the n*n upper-triangular public
// key. It matches idx_of_trimat in the reference's keypair composition.
func idxT(i, j, dim int) int {
	return linalg.IdxTriMat(i, j, dim)
}

// block identifies which of the three variable ranges an index falls
// in: vinegar [0,V1), oil1 [V1,V1+O1), oil2 [V1+O1,N).
func block(idx int) (kind int, offset int) {
	switch {
	case idx < format.V1:
		return 0, idx
	case idx < format.V1+format.O1:
		return 1, idx - format.V1
	default:
		return 2, idx - format.V1 - format.O1
	}
}

// entry returns the layer-1 and layer-2 coefficient batches (O1 and O2
// bytes respectively) for public-key position (i,j), j>=i.
func entry(ext *extPublicKey, i, j int) (l1, l2 []byte) {
	bi, oi := block(i)
	bj, oj := block(j)

	switch {
	case bi == 0 && bj == 0: // vinegar-vinegar: Q1 triangular
		pos := idxT(oi, oj, format.V1)
		return ext.l1Q1[pos*format.O1 : pos*format.O1+format.O1], ext.l2Q1[pos*format.O2 : pos*format.O2+format.O2]
	case bi == 0 && bj == 1: // vinegar-oil1: Q2 dense
		pos := oi*format.O1 + oj
		return ext.l1Q2[pos*format.O1 : pos*format.O1+format.O1], ext.l2Q2[pos*format.O2 : pos*format.O2+format.O2]
	case bi == 0 && bj == 2: // vinegar-oil2: Q3 dense
		pos := oi*format.O2 + oj
		return ext.l1Q3[pos*format.O1 : pos*format.O1+format.O1], ext.l2Q3[pos*format.O2 : pos*format.O2+format.O2]
	case bi == 1 && bj == 1: // oil1-oil1: Q5 triangular
		pos := idxT(oi, oj, format.O1)
		return ext.l1Q5[pos*format.O1 : pos*format.O1+format.O1], ext.l2Q5[pos*format.O2 : pos*format.O2+format.O2]
	case bi == 1 && bj == 2: // oil1-oil2: Q6 dense
		pos := oi*format.O2 + oj
		return ext.l1Q6[pos*format.O1 : pos*format.O1+format.O1], ext.l2Q6[pos*format.O2 : pos*format.O2+format.O2]
	default: // oil2-oil2: Q9 triangular
		pos := idxT(oi, oj, format.O2)
		return ext.l1Q9[pos*format.O1 : pos*format.O1+format.O1], ext.l2Q9[pos*format.O2 : pos*format.O2+format.O2]
	}
}

// pack writes the flat public-key layout into pk, which must be
// exactly format.PublicKeyBytes long.
func pack(pk []byte, ext *extPublicKey) {
	m := format.O1 + format.O2
	n := format.N
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			pos := idxT(i, j, n)
			dst := pk[pos*m : pos*m+m]
			l1, l2 := entry(ext, i, j)
			copy(dst[:format.O1], l1)
			copy(dst[format.O1:], l2)
		}
	}
}
