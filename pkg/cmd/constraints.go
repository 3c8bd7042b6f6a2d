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
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ingonyama-zk/air-icicle/pkg/air"
)

// constraintsCmd prints the symbolic constraints of a built-in circuit.
var constraintsCmd = &cobra.Command{
	Use:   "constraints [flags] circuit",
	Short: "print the symbolic constraints of a circuit.",
	Long: `Print every constraint of a built-in circuit, optionally in
polynomial normal form, along with the constraint count, the maximum
constraint degree and the log quotient degree.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			c         = getCircuit(cmd, args[0])
			height    = GetUint(cmd, "height")
			normalise = GetFlag(cmd, "normalise")
		)
		//
		schema, err := c.schema(height)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		for _, constraint := range schema.Constraints() {
			if normalise {
				fmt.Printf("%s: %s\n", constraint.Handle, air.NormalForm[bb](constraint.Expr))
			} else {
				fmt.Printf("%s: %s\n", constraint.Handle, constraint.Expr)
			}
		}
		//
		fmt.Printf("%d constraints, max degree %d, log quotient degree %d\n",
			len(schema.Constraints()), schema.MaxConstraintDegree(), schema.LogQuotientDegree())
	},
}

func init() {
	rootCmd.AddCommand(constraintsCmd)
	constraintsCmd.Flags().Uint("height", 8, "trace height (must be a power of two)")
	constraintsCmd.Flags().BoolP("normalise", "n", false, "print polynomial normal forms")
}
