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

// traceCmd generates and prints the execution trace of a built-in circuit.
var traceCmd = &cobra.Command{
	Use:   "trace [flags] circuit",
	Short: "generate and print the execution trace of a circuit.",
	Long: `Generate the execution trace of a built-in circuit by folding its
transition function, then print it with one line per column.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			c      = getCircuit(cmd, args[0])
			height = GetUint(cmd, "height")
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
		printer := trace.NewPrinter().MaxCellWidth(GetUint(cmd, "max-width"))
		trace.PrintTrace(printer, os.Stdout, tr)
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().Uint("height", 8, "trace height (must be a power of two)")
	traceCmd.Flags().Uint("max-width", 16, "maximum cell width to print")
}
