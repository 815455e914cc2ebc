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

// Command gen derives a short addition chain for the GF(256) inversion
// exponent (254) using github.com/mmcloughlin/addchain, prints the
// algorithm that found it and its instruction count, and then prints
// the generated-file license header used by ../zz_inv_chain.go. It does
// not print the invChain254 function body. It is not part of the build
// graph: run it by hand (`go run ./internal/gf256/gen`) after changing
// the target exponent; this package is never imported by the library.
package main

import (
	"bytes"
	"fmt"
	"math/big"
	"os"

	"github.com/consensys/bavard"
	"github.com/mmcloughlin/addchain"
	"github.com/mmcloughlin/addchain/acc"
	"github.com/mmcloughlin/addchain/alg/ensemble"
	"github.com/mmcloughlin/addchain/alg/exec"
)

// invExponent is 2^8 - 2: multiplicative inverse in GF(256) via
// exponentiation, since for nonzero k, k^255 == 1 so k^254 == k^-1.
var invExponent = big.NewInt(254)

func main() {
	algorithms := ensemble.Ensemble()
	ex := exec.Executor{Algorithms: algorithms}

	result, err := ex.Execute(invExponent)
	if err != nil {
		fmt.Fprintln(os.Stderr, "addchain: ", err)
		os.Exit(1)
	}

	program, err := acc.Build(result.Program)
	if err != nil {
		fmt.Fprintln(os.Stderr, "addchain: ", err)
		os.Exit(1)
	}

	fmt.Printf("chain for exponent %s found by %s, length %d\n",
		invExponent, result.Algorithm, len(program.Program.Instructions()))

	_ = addchain.Chain(result.Program.Chain())

	var buf bytes.Buffer
	if err := bavard.NewGenerator(&buf, "gf256", []bavard.GenerateOption{
		bavard.Apache2("The Rainbow Authors", "2024"),
		bavard.GeneratedBy("internal/gf256/gen from the addition chain for the exponent 254"),
	}...).Generate(struct{}{}, "header.go.tmpl", nil); err != nil {
		fmt.Fprintln(os.Stderr, "bavard: ", err)
		os.Exit(1)
	}
	fmt.Print(buf.String())
}
