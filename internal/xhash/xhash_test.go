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

package xhash

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandFirstBlockMatchesSHA256(t *testing.T) {
	msg := []byte("rainbow signature scheme")
	want := sha256.Sum256(msg)

	out := make([]byte, 20)
	Expand(out, msg)
	require.Equal(t, want[:20], out)
}

func TestExpandChainsBeyondOneBlock(t *testing.T) {
	msg := []byte("longer than one block of output")
	out := make([]byte, 72)
	Expand(out, msg)

	block0 := sha256.Sum256(msg)
	block1 := sha256.Sum256(block0[:])
	block2 := sha256.Sum256(block1[:])

	require.Equal(t, block0[:], out[:32])
	require.Equal(t, append(block1[:], block2[:8]...), out[32:72])
}

func TestExpandDeterministic(t *testing.T) {
	msg := []byte("same input, same output")
	a := make([]byte, 48)
	b := make([]byte, 48)
	Expand(a, msg)
	Expand(b, msg)
	require.Equal(t, a, b)
}
