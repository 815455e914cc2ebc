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

// Package testvectors defines the shape of a known-answer fixture (a
// seed, the digest signed, and the expected public key, secret key, and
// signature bytes) and its CBOR encoding. No fixture data is stored in
// this package, and the public API tests do not load any. CBOR
// (rather than the module's own wire format) is deliberate: fixtures
// are test-only data, never part of the signing/verification path, so
// reusing the format the signatures themselves are defined not to have
// keeps no ambiguity about which bytes are "the real thing".
package testvectors

import "github.com/fxamacker/cbor/v2"

// Vector is one fixed-seed known-answer entry.
type Vector struct {
	Name      string `cbor:"name"`
	Seed      []byte `cbor:"seed"`
	Digest    []byte `cbor:"digest"`
	PublicKey []byte `cbor:"pk"`
	SecretKey []byte `cbor:"sk"`
	Signature []byte `cbor:"sig"`
}

// Encode marshals a set of vectors to CBOR.
func Encode(vectors []Vector) ([]byte, error) {
	return cbor.Marshal(vectors)
}

// Decode unmarshals a set of vectors previously produced by Encode.
func Decode(data []byte) ([]Vector, error) {
	var vectors []Vector
	if err := cbor.Unmarshal(data, &vectors); err != nil {
		return nil, err
	}
	return vectors, nil
}
