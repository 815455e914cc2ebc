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

// Package drbg implements the deterministic byte provider the keypair
// and signing operations draw vinegar values, salts, and central-map
// coefficients from. It is an AES-256 CTR-mode generator seeded once
// from a 32-byte key and re-keyed (not merely re-counted) on every
// Reseed, matching the reference's seed-expansion construction: a
// signing attempt's randomness is fully determined by the secret seed
// and the message digest, never by the process's ambient entropy pool.
package drbg

import (
	"crypto/aes"
	"crypto/cipher"
)

// Reader is a deterministic byte stream keyed on a 32-byte seed. It is
// not safe for concurrent use; a signer owns one Reader per Sign call
// and draws every attempt's vinegar and salt from it.
type Reader struct {
	block   cipher.Block
	counter [aes.BlockSize]byte
}

// New creates a Reader keyed on seed, a 32-byte AES-256 key. The
// internal counter starts at zero.
func New(seed [32]byte) *Reader {
	block, err := aes.NewCipher(seed[:])
	if err != nil {
		// aes.NewCipher only fails on a key of the wrong length, which
		// [32]byte rules out.
		panic(err)
	}
	return &Reader{block: block}
}

// Reseed re-keys the generator from a fresh 32-byte seed and resets its
// counter to zero, so that two Readers reseeded with the same seed
// produce identical output regardless of how much either was read from
// before the call.
func (r *Reader) Reseed(seed [32]byte) {
	block, err := aes.NewCipher(seed[:])
	if err != nil {
		panic(err)
	}
	r.block = block
	r.counter = [aes.BlockSize]byte{}
}

// Read fills p with the next len(p) bytes of keystream, CTR-mode
// encryptions of the successive counter values starting from the
// generator's current position. It always returns len(p), nil.
func (r *Reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	stream := cipher.NewCTR(r.block, r.counter[:])
	stream.XORKeyStream(p, p)
	r.advance(len(p))
	return len(p), nil
}

// advance moves the counter forward by the number of AES blocks n bytes
// of keystream consumed, rounded up, so the next Read call continues
// the same keystream rather than repeating it.
func (r *Reader) advance(n int) {
	blocks := (n + aes.BlockSize - 1) / aes.BlockSize
	for ; blocks > 0; blocks-- {
		for i := aes.BlockSize - 1; i >= 0; i-- {
			r.counter[i]++
			if r.counter[i] != 0 {
				break
			}
		}
	}
}
