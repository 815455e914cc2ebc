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

package rainbow

import (
	"errors"
	"fmt"

	"github.com/rainbow-sig/rainbow/internal/keygen"
	"github.com/rainbow-sig/rainbow/internal/signer"
	"github.com/rainbow-sig/rainbow/internal/verifier"
)

// ErrSigningFailed is returned by Sign when the attempt budget is
// exhausted without producing a signature. Check for it with
// errors.Is; it does not happen for a correctly generated key.
var ErrSigningFailed = errors.New("rainbow: signing attempt budget exhausted")

// Keypair derives a public/secret keypair from a 32-byte seed. It is
// bytewise deterministic: the same seed always yields the same pair.
func Keypair(seed [32]byte) (pk, sk []byte) {
	secret, pub := keygen.Generate(seed)
	return pub, secret.Bytes()
}

// Sign computes a signature over a 48-byte message digest under sk. It
// is bytewise deterministic in (sk, digest): the internal PRNG is
// reseeded from a hash of both on every call, so resampling attempts
// never depend on process-wide randomness.
func Sign(sk, digest []byte) ([]byte, error) {
	if len(sk) != SecretKeyBytes {
		return nil, fmt.Errorf("rainbow: secret key must be %d bytes, got %d", SecretKeyBytes, len(sk))
	}
	if len(digest) != DigestBytes {
		return nil, fmt.Errorf("rainbow: digest must be %d bytes, got %d", DigestBytes, len(digest))
	}

	sig, ok := signer.Sign(sk, digest)
	if !ok {
		return nil, ErrSigningFailed
	}
	return sig, nil
}

// Verify reports whether sig is a valid signature over digest under
// pk. A malformed pk, sig, or digest length is treated the same as an
// invalid signature: Verify never explains why it rejected.
func Verify(pk, sig, digest []byte) bool {
	if len(pk) != PublicKeyBytes || len(digest) != DigestBytes {
		return false
	}
	return verifier.Verify(pk, sig, digest)
}
