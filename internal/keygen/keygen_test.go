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
	"testing"

	"github.com/rainbow-sig/rainbow/internal/format"
	"github.com/stretchr/testify/require"
)

func TestSecretKeyBinding(t *testing.T) {
	sk := NewSecretKey()
	require.Len(t, sk.Bytes(), format.SecretKeyBytes)
	require.Len(t, sk.Seed, 32)
	require.Len(t, sk.S1, format.S1Bytes)
	require.Len(t, sk.T1, format.T1Bytes)
	require.Len(t, sk.T4, format.T4Bytes)
	require.Len(t, sk.T3, format.T3Bytes)
	require.Len(t, sk.L1F1, format.L1F1Bytes)
	require.Len(t, sk.L1F2, format.L1F2Bytes)
	require.Len(t, sk.L2F1, format.L2F1Bytes)
	require.Len(t, sk.L2F2, format.L2F2Bytes)
	require.Len(t, sk.L2F3, format.L2F3Bytes)
	require.Len(t, sk.L2F5, format.L2F5Bytes)
	require.Len(t, sk.L2F6, format.L2F6Bytes)
}

func TestLoadSecretKeyRoundTrip(t *testing.T) {
	sk := NewSecretKey()
	for i := range sk.S1 {
		sk.S1[i] = byte(i)
	}
	loaded := LoadSecretKey(sk.Bytes())
	require.Equal(t, sk.S1, loaded.S1)
}

func TestDeterministicGeneration(t *testing.T) {
	var seed [32]byte
	for i := range seed {
		seed[i] = byte(i)
	}

	sk1, pk1 := Generate(seed)
	sk2, pk2 := Generate(seed)

	require.Equal(t, sk1.Bytes(), sk2.Bytes())
	require.Equal(t, pk1, pk2)
	require.Len(t, pk1, format.PublicKeyBytes)
}

func TestDifferentSeedsDiffer(t *testing.T) {
	var seedA, seedB [32]byte
	seedB[0] = 1

	skA, pkA := Generate(seedA)
	skB, pkB := Generate(seedB)

	require.NotEqual(t, skA.Bytes(), skB.Bytes())
	require.NotEqual(t, pkA, pkB)
}

func TestPackCoversEveryEntryOnce(t *testing.T) {
	var seed [32]byte
	sk, _ := Generate(seed)
	_ = sk

	ext := newExtPublicKey()
	n := format.N
	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			l1, l2 := entry(ext, i, j)
			require.Len(t, l1, format.O1)
			require.Len(t, l2, format.O2)
			idx := idxT(i, j, n)
			require.False(t, seen[idx], "duplicate pk index at i=%d j=%d", i, j)
			seen[idx] = true
		}
	}
	require.Len(t, seen, n*(n+1)/2)
}
