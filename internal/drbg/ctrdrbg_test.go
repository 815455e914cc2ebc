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

package drbg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministic(t *testing.T) {
	var seed [32]byte
	for i := range seed {
		seed[i] = byte(i)
	}

	r1 := New(seed)
	r2 := New(seed)

	out1 := make([]byte, 200)
	out2 := make([]byte, 200)
	_, err := r1.Read(out1)
	require.NoError(t, err)
	_, err = r2.Read(out2)
	require.NoError(t, err)

	require.True(t, bytes.Equal(out1, out2))
}

func TestReseedResets(t *testing.T) {
	var seedA, seedB [32]byte
	seedB[0] = 1

	r := New(seedA)
	_, _ = r.Read(make([]byte, 64))
	r.Reseed(seedB)

	afterReseed := make([]byte, 32)
	_, _ = r.Read(afterReseed)

	fresh := New(seedB)
	direct := make([]byte, 32)
	_, _ = fresh.Read(direct)

	require.True(t, bytes.Equal(afterReseed, direct))
}

func TestContinuesStreamAcrossReads(t *testing.T) {
	var seed [32]byte
	r1 := New(seed)
	whole := make([]byte, 64)
	_, _ = r1.Read(whole)

	r2 := New(seed)
	first := make([]byte, 32)
	second := make([]byte, 32)
	_, _ = r2.Read(first)
	_, _ = r2.Read(second)

	require.True(t, bytes.Equal(whole[:32], first))
	require.True(t, bytes.Equal(whole[32:], second))
}
