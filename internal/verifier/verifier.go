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

// Package verifier evaluates a Rainbow signature against a packed
// public key: it runs the public quadratic form on the candidate
// preimage and compares the result against the salted message hash.
package verifier

import (
	"crypto/subtle"

	"github.com/rainbow-sig/rainbow/internal/basis"
	"github.com/rainbow-sig/rainbow/internal/format"
	"github.com/rainbow-sig/rainbow/internal/linalg"
	"github.com/rainbow-sig/rainbow/internal/xhash"
)

// Verify reports whether sig is a valid signature over digest under
// pk. It never returns an error: a malformed or forged signature and a
// structurally invalid one are indistinguishable to a caller, by
// design, so there is nothing to diagnose beyond true or false.
func Verify(pk, sig, digest []byte) bool {
	if len(sig) != format.SignatureBytes {
		return false
	}

	w := append([]byte(nil), sig[:format.N]...)
	salt := sig[format.N:]

	basis.ToAES(w, w)

	pkAES := make([]byte, len(pk))
	basis.ToAES(pkAES, pk)

	zPrime := make([]byte, format.DigestBytes)
	linalg.MQ(zPrime, pkAES, w, format.N)

	z := make([]byte, format.DigestBytes)
	xhash.Expand(z, append(append([]byte(nil), digest...), salt...))
	basis.ToAES(z, z)

	return subtle.ConstantTimeCompare(z, zPrime) == 1
}
