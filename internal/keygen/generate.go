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
	"github.com/rainbow-sig/rainbow/internal/basis"
	"github.com/rainbow-sig/rainbow/internal/drbg"
	"github.com/rainbow-sig/rainbow/internal/format"
)

// Generate derives a full keypair from a 32-byte seed: it expands the
// seed into the private trapdoor, composes and obfuscates the extended
// public quadratic form, and packs it. All arithmetic runs in the AES
// basis; the seed is used directly as the trapdoor expansion key and
// is never itself basis-converted, and both returned blobs are
// converted to the native basis before being handed back, matching the
// representation bridge's API-boundary convention.
func Generate(seed [32]byte) (sk *SecretKey, pk []byte) {
	sk = NewSecretKey()
	copy(sk.Seed, seed[:])

	rng := drbg.New(seed)
	for _, field := range [][]byte{
		sk.S1, sk.T1, sk.T4, sk.T3,
		sk.L1F1, sk.L1F2,
		sk.L2F1, sk.L2F2, sk.L2F3, sk.L2F5, sk.L2F6,
	} {
		mustRead(rng, field)
	}

	ext := composeExtended(sk)
	finalizeT4(sk)
	obfuscateLayer1(sk, ext)

	pk = make([]byte, format.PublicKeyBytes)
	pack(pk, ext)

	basis.ToNative(sk.raw[32:], sk.raw[32:])
	basis.ToNative(pk, pk)

	return sk, pk
}

func mustRead(r *drbg.Reader, p []byte) {
	if _, err := r.Read(p); err != nil {
		panic(err)
	}
}
