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
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ingonyama-zk/air-icicle/pkg/air"
	"github.com/ingonyama-zk/air-icicle/pkg/backend"
	"github.com/ingonyama-zk/air-icicle/pkg/backend/icicle"
	"github.com/ingonyama-zk/air-icicle/pkg/examples/fibonacci"
	"github.com/ingonyama-zk/air-icicle/pkg/examples/prodinv"
	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
	"github.com/ingonyama-zk/air-icicle/pkg/util/field/babybear"
)

type bb = babybear.Element

// GetFlag gets an expected flag, or exit if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exit if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exit if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// circuit packages up everything needed to run one of the built-in example
// circuits from the command line.
type circuit struct {
	// Construct the schema for a given height.
	schema func(height uint) (*air.Schema[bb], error)
	// Construct the first trace row.
	first func() ([]bb, error)
	// Construct the public inputs for a given height.
	publics func(height uint) []bb
}

var circuits = map[string]circuit{
	"fibonacci": {
		schema: fibonacci.NewSchema[bb],
		first: func() ([]bb, error) {
			return fibonacci.FirstRow(babybear.New(0), babybear.New(1)), nil
		},
		publics: func(height uint) []bb {
			return fibonacci.PublicInputs(babybear.New(0), babybear.New(1), height)
		},
	},
	"prodinv": {
		schema: prodinv.NewSchema[bb],
		first: func() ([]bb, error) {
			return prodinv.FirstRow(babybear.New(1))
		},
		publics: func(height uint) []bb {
			return []bb{babybear.New(1)}
		},
	},
}

// circuitNames lists the available circuits in a stable order.
func circuitNames() []string {
	names := make([]string, 0, len(circuits))
	//
	for name := range circuits {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	return names
}

// getCircuit resolves a circuit name given on the command line, or exits.  The
// field configuration is checked first: the built-in circuits are instantiated
// over BabyBear, so other configs are recognised but rejected here.
func getCircuit(cmd *cobra.Command, name string) circuit {
	fieldName := GetString(cmd, "field")
	//
	cfg := field.GetConfig(fieldName)
	if cfg == nil {
		fmt.Printf("unknown field %q (available: %v)\n", fieldName, fieldNames())
		os.Exit(2)
	} else if cfg.Name != field.BABY_BEAR.Name {
		fmt.Printf("field %q not supported for built-in circuits\n", cfg.Name)
		os.Exit(2)
	}
	//
	c, ok := circuits[name]
	//
	if !ok {
		fmt.Printf("unknown circuit %q (available: %v)\n", name, circuitNames())
		os.Exit(2)
	}
	//
	return c
}

// fieldNames lists the supported field configurations.
func fieldNames() []string {
	names := make([]string, len(field.FIELD_CONFIGS))
	//
	for i, cfg := range field.FIELD_CONFIGS {
		names[i] = cfg.Name
	}
	//
	return names
}

// newContext builds the backend execution context from the persistent flags.
// Requesting the device target attaches the ICICLE accelerator when the
// runtime is compiled in and initialises; otherwise execution transparently
// degrades to the host.
func newContext(cmd *cobra.Command) *backend.Context[bb] {
	target, err := backend.ParseTarget(GetString(cmd, "target"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	opts := []backend.Option[bb]{backend.WithTarget[bb](target)}
	//
	if size := GetUint(cmd, "batch-size"); size != 0 {
		opts = append(opts, backend.WithMinBatchSize[bb](size))
	}
	//
	if target == backend.Device {
		if accel, aerr := icicle.NewAccelerator(); aerr != nil {
			log.WithField("reason", aerr).Warn("device unavailable: executing on host")
		} else {
			opts = append(opts, backend.WithAccelerator[bb](accel))
		}
	}
	//
	ctx, err := backend.New(opts...)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return ctx
}

// configureLogging applies the persistent logging flags.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}
