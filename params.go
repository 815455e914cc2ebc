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

import "github.com/rainbow-sig/rainbow/internal/format"

// Fixed byte sizes of this module's public API. SeedBytes and
// DigestBytes are caller-supplied input lengths; SecretKeyBytes,
// PublicKeyBytes, and SignatureBytes are this build's output lengths
// for the Rainbow-I (v1=68, o1=36, o2=36) parameter set.
var (
	SeedBytes      = 32
	DigestBytes    = format.HashBytes
	SecretKeyBytes = format.SecretKeyBytes
	PublicKeyBytes = format.PublicKeyBytes
	SignatureBytes = format.SignatureBytes
)
