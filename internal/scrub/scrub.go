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

// Package scrub provides the zeroing helper for the buffers holding
// secret material during signing. Bytes clears a buffer with a plain
// store loop and then passes it to runtime.KeepAlive, so the buffer
// stays reachable until after the zeroing stores.
package scrub

import "runtime"

// Bytes zeroes every byte of b, then keeps b live with runtime.KeepAlive.
func Bytes(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b[0])
}
