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

// Package xhash implements the message digest expansion the signer and
// verifier use to turn an arbitrary-length message into the fixed O1+O2
// bytes the central map's target value requires. It chains SHA-256:
// block 0 is SHA256(message), block k+1 is SHA256(block k), and the
// blocks are concatenated and truncated to the requested length.
package xhash

import "crypto/sha256"

// Expand writes exactly len(out) bytes of chained-SHA-256 digest
// material derived from msg into out.
func Expand(out, msg []byte) {
	block := sha256.Sum256(msg)
	n := copy(out, block[:])
	for n < len(out) {
		block = sha256.Sum256(block[:])
		n += copy(out[n:], block[:])
	}
}
