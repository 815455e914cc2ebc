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

package gf256

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestInvZero(t *testing.T) {
	require.Equal(t, byte(0), Inv(0))
}

func TestInvIdentity(t *testing.T) {
	for k := 1; k < 256; k++ {
		require.Equal(t, byte(1), Mul(byte(k), Inv(byte(k))), "k=%d", k)
	}
}

func TestMulCommutative(t *testing.T) {
	props := gopter.NewProperties(nil)
	props.Property("a*b == b*a", prop.ForAll(
		func(a, b byte) bool {
			return Mul(a, b) == Mul(b, a)
		},
		gen.UInt8(),
		gen.UInt8(),
	))
	props.TestingRun(t)
}

func TestAddSelfInverse(t *testing.T) {
	a := []byte{1, 2, 3, 4, 5}
	b := append([]byte(nil), a...)
	Add(a, b)
	for _, v := range a {
		require.Zero(t, v)
	}
}

func TestMaddLongSpan(t *testing.T) {
	n := 130 // exercises the 64-byte block loop plus a tail
	a := make([]byte, n)
	c := make([]byte, n)
	for i := range a {
		a[i] = byte(i * 7)
	}
	Madd(c, a, 3)
	for i := range c {
		require.Equal(t, Mul(a[i], 3), c[i])
	}
}
