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

// Package format pins the fixed-layout byte lengths of this module's
// key and signature material to a single source, and stamps them with
// a semantic version that callers who persist those blobs can record
// to tell this parameter set apart from a future one (a different
// v1/o1/o2 triple). This is not a serialization format in the
// wire-protocol sense: keys and signatures remain flat byte blobs with
// no framing; no code in this module reads or compares Version.
package format

import "github.com/blang/semver/v4"

// Version identifies the parameter set and byte layout this build of
// the module implements. Bump the minor component for layout-compatible
// additions and the major component if V1/O1/O2 ever change.
var Version = semver.MustParse("1.0.0")

// Rainbow-I parameter set, GF(256), two oil layers.
const (
	V1 = 68
	O1 = 36
	O2 = 36

	N  = V1 + O1 + O2
	O  = O1 + O2
	V2 = V1 + O1

	SaltBytes = 16
	HashBytes = 48 // the caller-supplied, already-hashed message digest

	// DigestBytes is the SHA-256-chain-expanded length (m = O1+O2) the
	// internal central-map evaluation works in, distinct from HashBytes.
	DigestBytes = O1 + O2
)

// tri is the triangle number T(k) = k(k+1)/2 used throughout the
// central-polynomial sizing below.
func tri(k int) int { return k * (k + 1) / 2 }

// Byte sizes of the named secret-key sub-arrays (see sk_t in the data
// model): the off-diagonal S block, the three T blocks, and the seven
// layer-1/layer-2 central-polynomial blocks.
const (
	S1Bytes = O1 * O2
	T1Bytes = V1 * O1
	T4Bytes = V1 * O2
	T3Bytes = O1 * O2
)

var (
	L1F1Bytes = O1 * tri(V1)
	L1F2Bytes = O1 * V1 * O1
	L2F1Bytes = O2 * tri(V1)
	L2F2Bytes = O2 * V1 * O1
	L2F3Bytes = O2 * V1 * O2
	L2F5Bytes = O2 * tri(O1)
	L2F6Bytes = O2 * O1 * O2
)

// Lengths of the flat, unframed byte encodings the root package reads
// and writes. A caller that persists these blobs is responsible for
// recording Version alongside them; this package only defines the
// lengths (the root package checks inputs against them) and never
// embeds a version tag into the blob itself.
var SecretKeyBytes = 32 + S1Bytes + T1Bytes + T4Bytes + T3Bytes +
	L1F1Bytes + L1F2Bytes + L2F1Bytes + L2F2Bytes + L2F3Bytes + L2F5Bytes + L2F6Bytes

const SignatureBytes = N + SaltBytes

// PublicKeyBytes is m*T(n), the packed upper-triangular public
// quadratic form.
var PublicKeyBytes = O * tri(N)

