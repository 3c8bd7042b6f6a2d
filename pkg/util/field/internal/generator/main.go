// Copyright Ingonyama.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Ingonyama."

// wrapperSpec describes one gnark-crypto field to wrap behind the generic
// Element interface.
type wrapperSpec struct {
	// Package name of the wrapper.
	Package string
	// Import path of the underlying gnark-crypto field.
	Import string
	// Local alias for the import.
	Alias string
	// Doc string for the Modulus method.
	ModulusDoc string
	// Whether the field fits a single 32-bit word.
	SingleWord bool
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "air-icicle")

	specs := []wrapperSpec{
		{
			Package:    "babybear",
			Import:     "github.com/consensys/gnark-crypto/field/babybear",
			Alias:      "bb",
			ModulusDoc: "the BabyBear prime",
			SingleWord: true,
		},
		{
			Package:    "bls12_377",
			Import:     "github.com/consensys/gnark-crypto/ecc/bls12-377/fr",
			Alias:      "fr",
			ModulusDoc: "the order of the BLS12-377 scalar field",
			SingleWord: false,
		},
	}

	for _, spec := range specs {
		err := bgen.Generate(spec, spec.Package, "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element.go", spec.Package),
				Templates: []string{"element.go.tmpl"},
			},
		)
		//
		if err != nil {
			fmt.Printf("for field %q: %v\n", spec.Package, err)
			os.Exit(1)
		}
	}
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	//
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	//
	if err := cmd.Run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
