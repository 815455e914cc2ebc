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

// GaussJordan reduces the h*w row-major matrix mat in place to reduced
// row-echelon form and reports whether every diagonal pivot was
// non-zero. On success, for a matrix built as [A|I] (w == 2h), the left
// half becomes the identity and the right half becomes A^-1.
//
// Row combination uses masked XOR rather than a conditional swap or
// branch: whether row j is folded into row i depends only on whether
// row i's pivot byte is currently zero and row j's is not, and that
// decision is applied as a bytewise AND-mask, never a Go if/else over
// element values. This keeps the routine's instruction trace
// independent of the matrix contents, which matters when it is called
// on the secret intermediate matrices the signer inverts; a singular
// pivot does not abort the reduction early; it only clears the
// returned success flag, so every call costs the same number of steps
// regardless of whether the matrix turns out to be invertible.
//
// The reference implementation pads each row to a 64-byte boundary so
// its vector ISA can load/store whole rows; that padding exists only to
// satisfy the hardware's instruction width and has no semantic effect,
// so this port operates directly on the caller's w-byte rows.
func GaussJordan(mat []byte, h, w int) bool {
	success := byte(0xFF)

	for i := 0; i < h; i++ {
		ai := mat[i*w : (i+1)*w]

		for j := i + 1; j < h; j++ {
			aj := mat[j*w : (j+1)*w]
			mask := zeroMask(ai[i]) & nonZeroMask(aj[i])
			condXor(ai, aj, mask)
		}

		success &= nonZeroMask(ai[i])

		pivotInv := gf256.Inv(ai[i])
		gf256.MulScalar(ai, pivotInv)

		for j := 0; j < h; j++ {
			if j == i {
				continue
			}
			aj := mat[j*w : (j+1)*w]
			gf256.Madd(aj, ai, aj[i])
		}
	}

	return success == 0xFF
}

// Invert computes dst = src^-1 for a dim*dim matrix, reporting whether
// src was invertible. dst and src must each be dim*dim bytes; dst may
// alias src, since src is copied out before dst is written. It builds the augmented [src|I] matrix sign.c's
// gf256mat_inv uses, runs GaussJordan over it, and copies out the right
// half.
func Invert(dst, src []byte, dim int) bool {
	w := 2 * dim
	aug := make([]byte, dim*w)
	for i := 0; i < dim; i++ {
		row := aug[i*w : (i+1)*w]
		copy(row[:dim], src[i*dim:(i+1)*dim])
		row[dim+i] = 1
	}

	ok := GaussJordan(aug, dim, w)

	for i := 0; i < dim; i++ {
		copy(dst[i*dim:(i+1)*dim], aug[i*w+dim:i*w+w])
	}

	return ok
}

func condXor(dst, src []byte, mask byte) {
	for k := range dst {
		dst[k] ^= src[k] & mask
	}
}

// nonZeroMask returns 0xFF if b != 0, else 0x00, without branching on b.
func nonZeroMask(b byte) byte {
	v := b
	nv := -v
	t := v | nv
	return byte(int8(t) >> 7)
}

func zeroMask(b byte) byte {
	return ^nonZeroMask(b)
}
