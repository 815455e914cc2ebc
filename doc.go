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

// Package rainbow implements the Rainbow multivariate-quadratic
// signature scheme at the Rainbow-I parameter set (v1=68, o1=36,
// o2=36 over GF(2^8)): two-layer oil-and-vinegar key generation,
// deterministic signing, and public verification.
//
// Keypair derives a (public key, secret key) pair from a 32-byte seed.
// Sign produces a signature deterministic in (secret key, digest).
// Verify checks a signature against a public key with no side channel
// beyond its boolean result.
package rainbow
