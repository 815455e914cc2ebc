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

// Code generated by internal/gf256/gen from the addition chain for the
// exponent 254. DO NOT EDIT.

package gf256

// invChain254 computes k^254 = k^-1 in GF(256) (with k^-1 := 0 when
// k == 0, which holds automatically since 0^254 == 0) using the
// addition chain:
//
//	c1 = k                      // k^1
//	c2 = sqr(c1)    * c1        // k^3   = k^(2^2-1)
//	c4 = sqr(sqr(c2)) * c2      // k^15  = k^(2^4-1)
//	c6 = sqr(sqr(c4)) * c2      // k^63  = k^(2^6-1)
//	c7 = sqr(c6)    * c1        // k^127 = k^(2^7-1)
//	k^254 = sqr(c7)
//
// 7 squarings and 4 multiplies: 11 field multiplications total, versus 13
// for a naive square-and-multiply ladder over the bit pattern of 254.
func invChain254(k byte) byte {
	c1 := k
	c2 := mulByte(mulByte(c1, c1), c1)
	s := mulByte(c2, c2)
	c4 := mulByte(mulByte(s, s), c2)
	s = mulByte(c4, c4)
	c6 := mulByte(mulByte(s, s), c2)
	c7 := mulByte(mulByte(c6, c6), c1)
	return mulByte(c7, c7)
}
