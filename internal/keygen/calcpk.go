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

package keygen

import (
	"github.com/rainbow-sig/rainbow/internal/format"
	"github.com/rainbow-sig/rainbow/internal/gf256"
	"github.com/rainbow-sig/rainbow/internal/linalg"
)

// composeExtended builds the twelve extended-public-key arrays from the
// private trapdoor sk, substituting the T map into the two layers of
// the central map. The composition mirrors each central polynomial's
// own quadratic structure: a block that already carries a native
// central-map contribution (Q1/Q2/Q3/Q6 whenever the corresponding F
// block exists) starts life as a copy of that block; a block with no
// native contribution (Q5, Q9, and layer-1's Q6) starts at zero and is
// built up purely from the T substitution.
func composeExtended(sk *SecretKey) *extPublicKey {
	ext := newExtPublicKey()

	composeLayer1(sk, ext)
	composeLayer2(sk, ext)

	return ext
}

func composeLayer1(sk *SecretKey, ext *extPublicKey) {
	const batch = format.O1

	copy(ext.l1Q1, sk.L1F1)
	copy(ext.l1Q2, sk.L1F2)

	linalg.MaddTriMat(ext.l1Q2, sk.L1F1, sk.T1, format.V1, format.O1, batch)

	tempQ1 := make([]byte, format.O1*format.O1*batch)
	linalg.MaddMatTrB(tempQ1, sk.T1, format.V1, format.O1, ext.l1Q2, format.O1, batch)

	linalg.MaddTriMatTr(ext.l1Q2, sk.L1F1, sk.T1, format.V1, format.O1, batch)

	linalg.UpperTriangularize(ext.l1Q5, tempQ1, format.O1, batch)

	linalg.MaddTriMat(ext.l1Q3, sk.L1F1, sk.T4, format.V1, format.O2, batch)
	linalg.MaddMat(ext.l1Q3, sk.L1F2, format.V1, sk.T3, format.O1, format.O2, batch)

	tempQ9 := make([]byte, format.O2*format.O2*batch)
	linalg.MaddMatTrB(tempQ9, sk.T4, format.V1, format.O2, ext.l1Q3, format.O2, batch)
	linalg.UpperTriangularize(ext.l1Q9, tempQ9, format.O2, batch)

	linalg.MaddTriMatTr(ext.l1Q3, sk.L1F1, sk.T4, format.V1, format.O2, batch)

	linalg.MaddMatTr(ext.l1Q6, sk.L1F2, format.V1, format.O1, sk.T4, format.O2, batch)
	linalg.MaddMatTrB(ext.l1Q6, sk.T1, format.V1, format.O1, ext.l1Q3, format.O2, batch)
}

func composeLayer2(sk *SecretKey, ext *extPublicKey) {
	const batch = format.O2

	copy(ext.l2Q1, sk.L2F1)
	copy(ext.l2Q2, sk.L2F2)

	linalg.MaddTriMat(ext.l2Q2, sk.L2F1, sk.T1, format.V1, format.O1, batch)

	tempQ5 := make([]byte, format.O1*format.O1*batch)
	linalg.MaddMatTrB(tempQ5, sk.T1, format.V1, format.O1, ext.l2Q2, format.O1, batch)

	linalg.MaddTriMatTr(ext.l2Q2, sk.L2F1, sk.T1, format.V1, format.O1, batch)

	linalg.UpperTriangularize(ext.l2Q5, tempQ5, format.O1, batch)

	copy(ext.l2Q3, sk.L2F3)
	linalg.MaddTriMat(ext.l2Q3, sk.L2F1, sk.T4, format.V1, format.O2, batch)
	linalg.MaddMat(ext.l2Q3, sk.L2F2, format.V1, sk.T3, format.O1, format.O2, batch)

	tempQ9 := make([]byte, format.O2*format.O2*batch)
	linalg.MaddMatTrB(tempQ9, sk.T4, format.V1, format.O2, ext.l2Q3, format.O2, batch)
	linalg.UpperTriangularize(ext.l2Q9, tempQ9, format.O2, batch)

	linalg.MaddTriMatTr(ext.l2Q3, sk.L2F1, sk.T4, format.V1, format.O2, batch)

	copy(ext.l2Q6, sk.L2F6)
	linalg.MaddMatTr(ext.l2Q6, sk.L2F2, format.V1, format.O1, sk.T4, format.O2, batch)
	linalg.MaddTriMat(ext.l2Q6, sk.L2F5, sk.T3, format.O1, format.O2, batch)
	linalg.MaddTriMatTr(ext.l2Q6, sk.L2F5, sk.T3, format.O1, format.O2, batch)
	linalg.MaddMatTrB(ext.l2Q6, sk.T1, format.V1, format.O1, ext.l2Q3, format.O2, batch)
}

// finalizeT4 corrects sk.T4 in place from the raw value calc_pk
// composed against (which holds t2) into the value the signer's T^-1
// reassembly needs, t4 = t2 + t1*t3. GF(256) has characteristic 2, so
// addition and subtraction coincide and the field formula in the data
// model (t4 = t1*t3 - t2) is computed the same way.
func finalizeT4(sk *SecretKey) {
	col := make([]byte, format.V1)
	for j := 0; j < format.O2; j++ {
		for k := range col {
			col[k] = 0
		}
		linalg.MatVec(col, sk.T1, format.O1, sk.T3[j*format.O1:(j+1)*format.O1])
		gf256.Add(sk.T4[j*format.V1:(j+1)*format.V1], col)
	}
}

// obfuscateLayer1 applies the S-obfuscation step: for each of the six
// shape-matched (l1, l2) array pairs, l1 += s1*l2 viewed position by
// position, with l2's batch at a position treated as an O2-length
// vector and s1 (O1xO2, column-major) mapping it into an O1-length
// correction added into l1's batch at the same position.
func obfuscateLayer1(sk *SecretKey, ext *extPublicKey) {
	obfuscate(sk.S1, ext.l1Q1, ext.l2Q1)
	obfuscate(sk.S1, ext.l1Q2, ext.l2Q2)
	obfuscate(sk.S1, ext.l1Q3, ext.l2Q3)
	obfuscate(sk.S1, ext.l1Q5, ext.l2Q5)
	obfuscate(sk.S1, ext.l1Q6, ext.l2Q6)
	obfuscate(sk.S1, ext.l1Q9, ext.l2Q9)
}

func obfuscate(s1, l1, l2 []byte) {
	positions := len(l2) / format.O2
	tmp := make([]byte, format.O1)
	for pos := 0; pos < positions; pos++ {
		for k := range tmp {
			tmp[k] = 0
		}
		linalg.MatVec(tmp, s1, format.O2, l2[pos*format.O2:(pos+1)*format.O2])
		dst := l1[pos*format.O1 : (pos+1)*format.O1]
		for k := range dst {
			dst[k] ^= tmp[k]
		}
	}
}
