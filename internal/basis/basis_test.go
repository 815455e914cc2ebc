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

package basis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	in := make([]byte, 256)
	for i := range in {
		in[i] = byte(i)
	}

	aes := make([]byte, 256)
	ToAES(aes, in)

	native := make([]byte, 256)
	ToNative(native, aes)

	require.Equal(t, in, native)
}

func TestAffineIsLinear(t *testing.T) {
	// ToAES(a) ^ ToAES(b) == ToAES(a^b), since the map is linear (no
	// additive constant).
	a, b := byte(0x53), byte(0xA7)
	out := make([]byte, 1)
	ToAES(out, []byte{a})
	va := out[0]
	ToAES(out, []byte{b})
	vb := out[0]
	ToAES(out, []byte{a ^ b})
	require.Equal(t, va^vb, out[0])
}

func TestAliasing(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03}
	want := make([]byte, 3)
	ToAES(want, buf)
	ToAES(buf, buf)
	require.Equal(t, want, buf)
}
