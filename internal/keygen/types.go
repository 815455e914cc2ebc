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

// Package keygen derives a Rainbow keypair from a 32-byte seed: it
// expands the seed into the private trapdoor (the S and T linear maps
// and the layer-1/layer-2 central polynomials), composes the extended
// public quadratic form from that trapdoor, obfuscates it with S, and
// packs the result into the flat public-key layout the verifier reads.
package keygen

import "github.com/rainbow-sig/rainbow/internal/format"

// SecretKey is a named view over the flat sk_t byte layout: every field
// is a slice into one contiguous backing array, in the same order the
// flat encoding lists them, so Bytes() and LoadSecretKey() are simple slice
// operations with no copying beyond the original allocation.
type SecretKey struct {
	raw []byte

	Seed []byte // 32B, retained verbatim for per-signature reseeding

	S1 []byte // O1*O2: off-diagonal block of the output map S
	T1 []byte // V1*O1
	T4 []byte // V1*O2: stores t2 until finalizeT4 folds in t1*t3
	T3 []byte // O1*O2

	L1F1 []byte // O1*T(V1)
	L1F2 []byte // O1*V1*O1

	L2F1 []byte // O2*T(V1)
	L2F2 []byte // O2*V1*O1
	L2F3 []byte // O2*V1*O2
	L2F5 []byte // O2*T(O1)
	L2F6 []byte // O2*O1*O2
}

// NewSecretKey allocates a zeroed SecretKey with every field sliced out
// of one backing buffer of format.SecretKeyBytes length.
func NewSecretKey() *SecretKey {
	raw := make([]byte, format.SecretKeyBytes)
	return bindSecretKey(raw)
}

// bindSecretKey slices raw, which must be exactly format.SecretKeyBytes
// long, into the named sub-arrays in flat-encoding order.
func bindSecretKey(raw []byte) *SecretKey {
	sk := &SecretKey{raw: raw}
	pos := 0
	take := func(n int) []byte {
		s := raw[pos : pos+n]
		pos += n
		return s
	}

	sk.Seed = take(32)
	sk.S1 = take(format.S1Bytes)
	sk.T1 = take(format.T1Bytes)
	sk.T4 = take(format.T4Bytes)
	sk.T3 = take(format.T3Bytes)
	sk.L1F1 = take(format.L1F1Bytes)
	sk.L1F2 = take(format.L1F2Bytes)
	sk.L2F1 = take(format.L2F1Bytes)
	sk.L2F2 = take(format.L2F2Bytes)
	sk.L2F3 = take(format.L2F3Bytes)
	sk.L2F5 = take(format.L2F5Bytes)
	sk.L2F6 = take(format.L2F6Bytes)

	return sk
}

// Bytes returns the flat encoding backing sk. The returned slice aliases
// sk's fields; callers that persist it own scrubbing it afterward.
func (sk *SecretKey) Bytes() []byte { return sk.raw }

// LoadSecretKey wraps an existing flat-encoded buffer of exactly
// format.SecretKeyBytes bytes without copying it.
func LoadSecretKey(raw []byte) *SecretKey { return bindSecretKey(raw) }

// extPublicKey holds the twelve transient extended-public-key arrays
// calc_pk produces before packing (ext_cpk_t in the data model). Each
// field mirrors the corresponding central-polynomial block's shape.
type extPublicKey struct {
	l1Q1, l1Q2, l1Q3, l1Q5, l1Q6, l1Q9 []byte
	l2Q1, l2Q2, l2Q3, l2Q5, l2Q6, l2Q9 []byte
}

func newExtPublicKey() *extPublicKey {
	return &extPublicKey{
		l1Q1: make([]byte, format.O1*tri(format.V1)),
		l1Q2: make([]byte, format.O1*format.V1*format.O1),
		l1Q3: make([]byte, format.O1*format.V1*format.O2),
		l1Q5: make([]byte, format.O1*tri(format.O1)),
		l1Q6: make([]byte, format.O1*format.O1*format.O2),
		l1Q9: make([]byte, format.O1*tri(format.O2)),

		l2Q1: make([]byte, format.O2*tri(format.V1)),
		l2Q2: make([]byte, format.O2*format.V1*format.O1),
		l2Q3: make([]byte, format.O2*format.V1*format.O2),
		l2Q5: make([]byte, format.O2*tri(format.O1)),
		l2Q6: make([]byte, format.O2*format.O1*format.O2),
		l2Q9: make([]byte, format.O2*tri(format.O2)),
	}
}

func tri(k int) int { return k * (k + 1) / 2 }
