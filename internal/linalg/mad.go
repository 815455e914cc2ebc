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

// IdxTriMat returns the offset, in batches, of the (i,j) entry (j>=i)
// within a dim*dim upper-triangular matrix stored row-major with row i
// holding (dim-i) contiguous batches for columns j in [i, dim).
func IdxTriMat(i, j, dim int) int {
	return (2*dim-i+1)*i/2 + (j - i)
}

// MaddTriMat computes C += A*B where A is a dim*dim upper-triangular
// batched matrix (row i holding (dim-i) batches for columns
// [i, dim)), B is a dim*bWidth dense matrix of plain scalar bytes
// stored column-major (column j occupies dim consecutive bytes), and C
// is a dim*bWidth batched matrix, row-major.
func MaddTriMat(c, triA, b []byte, dim, bWidth, batch int) {
	triPos, cPos := 0, 0
	for i := 0; i < dim; i++ {
		rowLen := dim - i
		for j := 0; j < bWidth; j++ {
			for k := i; k < dim; k++ {
				gf256.Madd(c[cPos:cPos+batch], triA[triPos+(k-i)*batch:triPos+(k-i+1)*batch], b[j*dim+k])
			}
			cPos += batch
		}
		triPos += rowLen * batch
	}
}

// MaddTriMatTr computes C += A^T*B for the same upper-triangular A
// layout MaddTriMat uses; C is dim*bWidth batched, row-major.
func MaddTriMatTr(c, triA, b []byte, dim, bWidth, batch int) {
	cPos := 0
	for i := 0; i < dim; i++ {
		for j := 0; j < bWidth; j++ {
			for k := 0; k <= i; k++ {
				idx := IdxTriMat(k, i, dim)
				gf256.Madd(c[cPos:cPos+batch], triA[idx*batch:idx*batch+batch], b[j*dim+k])
			}
			cPos += batch
		}
	}
}

// MaddMat computes C += A*B where A is an aHeight*bHeight dense batched
// matrix (row-major), B is a bHeight*bWidth dense matrix of plain
// scalar bytes (column-major), and C is aHeight*bWidth batched,
// row-major.
func MaddMat(c, a []byte, aHeight int, b []byte, bHeight, bWidth, batch int) {
	aPos, cPos := 0, 0
	for i := 0; i < aHeight; i++ {
		for j := 0; j < bWidth; j++ {
			for k := 0; k < bHeight; k++ {
				gf256.Madd(c[cPos:cPos+batch], a[aPos+k*batch:aPos+(k+1)*batch], b[j*bHeight+k])
			}
			cPos += batch
		}
		aPos += bHeight * batch
	}
}

// MaddMatTr computes C += A^T*B where A is a bHeight*aWidth dense
// batched matrix, row-major (so A^T is aWidth*bHeight), B is
// bHeight*bWidth dense scalar bytes (column-major), and C is
// aWidth*bWidth batched, row-major.
func MaddMatTr(c, a []byte, aHeight, aWidth int, b []byte, bWidth, batch int) {
	cPos := 0
	for i := 0; i < aWidth; i++ {
		for j := 0; j < bWidth; j++ {
			for k := 0; k < aHeight; k++ {
				gf256.Madd(c[cPos:cPos+batch], a[(k*aWidth+i)*batch:(k*aWidth+i+1)*batch], b[j*aHeight+k])
			}
			cPos += batch
		}
	}
}

// MaddMatTrB computes C += A^T*B where, unlike MaddMatTr, it is B that
// carries the batches: A is an aHeight*aWidth dense matrix of plain
// scalar bytes stored column-major (column i occupies aHeight
// consecutive bytes, the same convention MatVec's operand uses), B is
// an aHeight*bWidth dense batched matrix (row-major), and C is
// aWidth*bWidth batched, row-major. This is the shape the T-map blocks
// need when they are the transposed operand against an already-batched
// oil-polynomial accumulator, e.g. T1^T * Q2.
func MaddMatTrB(c, a []byte, aHeight, aWidth int, b []byte, bWidth, batch int) {
	cPos := 0
	for i := 0; i < aWidth; i++ {
		for j := 0; j < bWidth; j++ {
			for k := 0; k < aHeight; k++ {
				scalar := a[i*aHeight+k]
				off := (k*bWidth + j) * batch
				gf256.Madd(c[cPos:cPos+batch], b[off:off+batch], scalar)
			}
			cPos += batch
		}
	}
}

// UpperTriangularize folds the width*width dense batched matrix a
// (row-major) into the upper-triangular batched output triC, computing
// triC += a + a^T restricted to the strict upper triangle and
// triC[i][i] += a[i][i] on the diagonal: triC[i][i:] gets
// a's own row i tail in one run, and triC[j][i] (j<i) additionally
// absorbs a[i][j] — the strict lower triangle folded back across the
// diagonal.
func UpperTriangularize(triC, a []byte, width, batch int) {
	running := 0
	for i := 0; i < width; i++ {
		for j := 0; j < i; j++ {
			idx := IdxTriMat(j, i, width)
			gf256.Add(triC[idx*batch:idx*batch+batch], a[batch*(i*width+j):batch*(i*width+j)+batch])
		}
		tailLen := batch * (width - i)
		gf256.Add(triC[running:running+tailLen], a[batch*(i*width+i):batch*(i*width+i)+tailLen])
		running += tailLen
	}
}
