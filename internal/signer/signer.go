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

// Package signer implements the Rainbow signing state machine: vinegar
// resampling, two triangular-layer linear solves, salt resampling, and
// the final T-inverse reassembly into the message preimage.
package signer

import (
	"crypto/sha256"

	"github.com/rainbow-sig/rainbow/internal/basis"
	"github.com/rainbow-sig/rainbow/internal/drbg"
	"github.com/rainbow-sig/rainbow/internal/format"
	"github.com/rainbow-sig/rainbow/internal/gf256"
	"github.com/rainbow-sig/rainbow/internal/keygen"
	"github.com/rainbow-sig/rainbow/internal/linalg"
	"github.com/rainbow-sig/rainbow/internal/logger"
	"github.com/rainbow-sig/rainbow/internal/scrub"
	"github.com/rainbow-sig/rainbow/internal/xhash"
)

// maxAttempts bounds the combined vinegar-resample and salt-resample
// budget; a seed that exhausts it without producing an invertible pair
// of layer matrices is treated as a signing failure, never an infinite
// loop.
const maxAttempts = 128

// Sign computes a signature over digest (format.HashBytes bytes, the
// caller's already-hashed message) under the flat-encoded secret key
// skRaw. It returns false if the attempt budget is exhausted before
// both layer solves succeed, which does not happen for a correctly
// generated key but is possible in principle for adversarial secret
// material.
func Sign(skRaw []byte, digest []byte) ([]byte, bool) {
	sk := keygen.LoadSecretKey(append([]byte(nil), skRaw...))
	defer scrub.Bytes(sk.Bytes())

	raw := sk.Bytes()
	basis.ToAES(raw[32:], raw[32:])

	var seedDigest [32]byte
	h := sha256.New()
	h.Write(sk.Seed)
	h.Write(digest)
	copy(seedDigest[:], h.Sum(nil))
	rng := drbg.New(seedDigest)

	vinegar := make([]byte, format.V1)
	matL1 := make([]byte, format.O1*format.O1)
	defer scrub.Bytes(vinegar)
	defer scrub.Bytes(matL1)

	attempts := 0
	for attempts < maxAttempts {
		if _, err := rng.Read(vinegar); err != nil {
			panic(err)
		}
		attempts++

		linalg.MatVec(matL1, sk.L1F2, format.V1, vinegar)
		if !linalg.Invert(matL1, matL1, format.O1) {
			logger.Logger().Debug().Msg("layer-1 vinegar matrix singular, resampling")
			continue
		}

		w, ok := tryLayer2(sk, rng, digest, vinegar, matL1, &attempts)
		if ok {
			return w, true
		}
		if attempts >= maxAttempts {
			break
		}
	}

	out := make([]byte, format.SignatureBytes)
	return out, false
}

// tryLayer2 runs the precompute and salt-resample loop for a fixed
// vinegar assignment, returning the finished signature on success. It
// reports failure either when the attempt budget runs out or as soon as
// the layer-2 matrix comes out singular, in which case a fresh vinegar
// sample is needed (the caller's outer loop handles that resample).
func tryLayer2(sk *keygen.SecretKey, rng *drbg.Reader, digest, vinegar, matL1 []byte, attempts *int) ([]byte, bool) {
	rL1F1 := make([]byte, format.O1)
	rL2F1 := make([]byte, format.O2)
	matL2F3 := make([]byte, format.O2*format.O2)
	matL2F2 := make([]byte, format.O2*format.O1)
	defer scrub.Bytes(rL1F1)
	defer scrub.Bytes(rL2F1)
	defer scrub.Bytes(matL2F3)
	defer scrub.Bytes(matL2F2)

	linalg.TriForm(rL1F1, sk.L1F1, vinegar, format.V1)
	linalg.TriForm(rL2F1, sk.L2F1, vinegar, format.V1)
	linalg.MatVec(matL2F3, sk.L2F3, format.V1, vinegar)
	linalg.MatVec(matL2F2, sk.L2F2, format.V1, vinegar)

	salt := make([]byte, format.SaltBytes)
	z := make([]byte, format.DigestBytes)
	y := make([]byte, format.DigestBytes)
	temp := make([]byte, format.O2)
	matL2 := make([]byte, format.O2*format.O2)
	xO1 := make([]byte, format.O1)
	xO2 := make([]byte, format.O2)
	defer scrub.Bytes(salt)
	defer scrub.Bytes(z)
	defer scrub.Bytes(y)
	defer scrub.Bytes(temp)
	defer scrub.Bytes(matL2)
	defer scrub.Bytes(xO1)
	defer scrub.Bytes(xO2)

	for *attempts < maxAttempts {
		if _, err := rng.Read(salt); err != nil {
			panic(err)
		}
		*attempts++

		xhash.Expand(z, append(append([]byte(nil), digest...), salt...))
		basis.ToAES(z, z)

		copy(y, z)
		s1z := make([]byte, format.O1)
		linalg.MatVec(s1z, sk.S1, format.O2, z[format.O1:])
		gf256.Add(y[:format.O1], s1z)

		tmp1 := make([]byte, format.O1)
		gf256.Add(tmp1, rL1F1)
		gf256.Add(tmp1, y[:format.O1])
		linalg.MatVec(xO1, matL1, format.O1, tmp1)

		linalg.MatVec(temp, matL2F2, format.O1, xO1)
		f5 := make([]byte, format.O2)
		linalg.TriForm(f5, sk.L2F5, xO1, format.O1)
		gf256.Add(temp, f5)
		gf256.Add(temp, rL2F1)
		gf256.Add(temp, y[format.O1:])

		linalg.MatVec(matL2, sk.L2F6, format.O1, xO1)
		gf256.Add(matL2, matL2F3)

		if !linalg.Invert(matL2, matL2, format.O2) {
			logger.Logger().Debug().Msg("layer-2 matrix singular, resampling vinegar")
			return nil, false
		}

		linalg.MatVec(xO2, matL2, format.O2, temp)

		w := make([]byte, format.N)
		copy(w[:format.V1], vinegar)
		copy(w[format.V1:format.V1+format.O1], xO1)
		copy(w[format.V1+format.O1:], xO2)

		t1x := make([]byte, format.V1)
		linalg.MatVec(t1x, sk.T1, format.O1, xO1)
		gf256.Add(w[:format.V1], t1x)

		t4x := make([]byte, format.V1)
		linalg.MatVec(t4x, sk.T4, format.O2, xO2)
		gf256.Add(w[:format.V1], t4x)

		t3x := make([]byte, format.O1)
		linalg.MatVec(t3x, sk.T3, format.O2, xO2)
		gf256.Add(w[format.V1:format.V1+format.O1], t3x)

		basis.ToNative(w, w)

		out := make([]byte, format.SignatureBytes)
		copy(out[:format.N], w)
		copy(out[format.N:], salt)

		scrub.Bytes(w)
		scrub.Bytes(t1x)
		scrub.Bytes(t3x)
		scrub.Bytes(t4x)
		scrub.Bytes(tmp1)
		scrub.Bytes(s1z)
		scrub.Bytes(f5)

		return out, true
	}

	return nil, false
}
