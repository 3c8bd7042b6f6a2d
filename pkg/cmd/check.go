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

	"github.com/ingonyama-zk/air-icicle/pkg/trace"
)

// checkCmd generates a trace for a built-in circuit and checks it against the
// circuit's constraints.
var checkCmd = &cobra.Command{
	Use:   "check [flags] circuit",
	Short: "generate a trace and check it against its constraints.",
	Long: `Generate the execution trace of a built-in circuit and evaluate
every constraint on every row, reporting any violations found.  Constraint
evaluation runs through the selected execution target.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			c      = getCircuit(cmd, args[0])
			height = GetUint(cmd, "height")
			ctx    = newContext(cmd)
		)
		//
		schema, err := c.schema(height)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		first, err := c.first()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		tr, err := trace.Generate(schema, first)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		violations, err := trace.CheckConstraints(schema, tr, c.publics(height), ctx)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		for _, v := range violations {
			fmt.Println(v)
		}
		//
		if len(violations) != 0 {
			os.Exit(1)
		}
		//
		fmt.Printf("%s: %d constraints hold over %d rows\n",
			args[0], len(schema.Constraints()), tr.Height())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Uint("height", 8, "trace height (must be a power of two)")
}
