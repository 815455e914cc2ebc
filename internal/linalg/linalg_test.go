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

import (
	"math/rand"
	"testing"

	"github.com/rainbow-sig/rainbow/internal/gf256"
	"github.com/stretchr/testify/require"
)

func TestMatVecZeroWhenEmpty(t *testing.T) {
	c := []byte{1, 2, 3}
	MatVec(c, nil, 0, nil)
	require.Equal(t, []byte{0, 0, 0}, c)
}

func TestMatVecMatchesNaive(t *testing.T) {
	const n, width = 5, 4
	rng := rand.New(rand.NewSource(1))
	a := make([]byte, n*width) // width columns of n bytes, column-major
	b := make([]byte, width)
	for i := range a {
		a[i] = byte(rng.Intn(256))
	}
	for i := range b {
		b[i] = byte(rng.Intn(256))
	}

	c := make([]byte, n)
	MatVec(c, a, width, b)

	want := make([]byte, n)
	for col := 0; col < width; col++ {
		for row := 0; row < n; row++ {
			want[row] ^= gf256.Mul(a[col*n+row], b[col])
		}
	}
	require.Equal(t, want, c)
}

func TestInvertIdentity(t *testing.T) {
	const dim = 6
	id := make([]byte, dim*dim)
	for i := 0; i < dim; i++ {
		id[i*dim+i] = 1
	}
	out := make([]byte, dim*dim)
	ok := Invert(out, id, dim)
	require.True(t, ok)
	require.Equal(t, id, out)
}

func TestInvertRoundTrip(t *testing.T) {
	const dim = 8
	rng := rand.New(rand.NewSource(42))

	var mat, inv []byte
	for {
		mat = make([]byte, dim*dim)
		for i := range mat {
			mat[i] = byte(rng.Intn(256))
		}
		inv = make([]byte, dim*dim)
		if Invert(inv, mat, dim) {
			break
		}
	}

	// mat * inv should be the identity matrix.
	prod := make([]byte, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			var acc byte
			for k := 0; k < dim; k++ {
				acc ^= gf256.Mul(mat[i*dim+k], inv[k*dim+j])
			}
			prod[i*dim+j] = acc
		}
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			want := byte(0)
			if i == j {
				want = 1
			}
			require.Equal(t, want, prod[i*dim+j], "i=%d j=%d", i, j)
		}
	}
}

func TestGaussJordanDetectsSingular(t *testing.T) {
	// Two identical rows in the left half guarantee singularity.
	const dim = 3
	src := []byte{
		1, 2, 3,
		1, 2, 3,
		4, 5, 6,
	}
	out := make([]byte, dim*dim)
	require.False(t, Invert(out, src, dim))
}

func TestIdxTriMatCoversTriangleExactly(t *testing.T) {
	const dim = 7
	seen := make(map[int]bool)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			idx := IdxTriMat(i, j, dim)
			require.False(t, seen[idx], "duplicate index at i=%d j=%d", i, j)
			seen[idx] = true
		}
	}
	require.Len(t, seen, dim*(dim+1)/2)
}

func TestUpperTriangularizeFoldsTranspose(t *testing.T) {
	const width, batch = 3, 2
	a := make([]byte, width*width*batch)
	rng := rand.New(rand.NewSource(7))
	for i := range a {
		a[i] = byte(rng.Intn(256))
	}

	triC := make([]byte, (width*(width+1)/2)*batch)
	UpperTriangularize(triC, a, width, batch)

	for i := 0; i < width; i++ {
		for j := i; j < width; j++ {
			idx := IdxTriMat(i, j, width)
			got := triC[idx*batch : idx*batch+batch]
			want := make([]byte, batch)
			copy(want, a[(i*width+j)*batch:(i*width+j+1)*batch])
			if i != j {
				for k := 0; k < batch; k++ {
					want[k] ^= a[(j*width+i)*batch+k]
				}
			}
			require.Equal(t, want, got, "i=%d j=%d", i, j)
		}
	}
}

func TestMQMatchesDenseEvaluation(t *testing.T) {
	const n, batch = 5, 2
	rng := rand.New(rand.NewSource(99))

	// Build a dense symmetric-storage quadratic form and its packed
	// upper-triangular form together so MQ can be checked against a
	// naive double loop over all (i,j) with j>=i.
	coeff := make(map[[2]int][]byte)
	packed := make([]byte, 0, n*(n+1)/2*batch)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			b := make([]byte, batch)
			for k := range b {
				b[k] = byte(rng.Intn(256))
			}
			coeff[[2]int{i, j}] = b
			packed = append(packed, b...)
		}
	}

	x := make([]byte, n)
	for i := range x {
		x[i] = byte(rng.Intn(256))
	}
	x[2] = 0 // exercise the zero-row skip path

	z := make([]byte, batch)
	MQ(z, packed, x, n)

	want := make([]byte, batch)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			xixj := gf256.Mul(x[i], x[j])
			gf256.Madd(want, coeff[[2]int{i, j}], xixj)
		}
	}
	require.Equal(t, want, z)
}
